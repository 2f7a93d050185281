package xiangqi

// 将/帅：九宫内横竖一格
func generalReaches(side Side, from, to Pos) bool {
	if !inPalace(side, to) {
		return false
	}
	return from.FileDist(to)+from.RankDist(to) == 1
}

// 士：九宫内斜走一格
func advisorReaches(side Side, from, to Pos) bool {
	if !inPalace(side, to) {
		return false
	}
	return from.FileDist(to) == 1 && from.RankDist(to) == 1
}

// 象：田字，塞象眼，不能过河
func (s *State) elephantReaches(side Side, from, to Pos) bool {
	if from.FileDist(to) != 2 || from.RankDist(to) != 2 {
		return false
	}
	if crossedRiver(side, to.Rank) {
		return false
	}
	eye := Pos{File: (from.File + to.File) / 2, Rank: (from.Rank + to.Rank) / 2}
	return s.PieceAt(eye) == nil
}

// 车：横竖任意距离，路径（不含两端）必须全空
func (s *State) chariotReaches(from, to Pos) bool {
	if from.File != to.File && from.Rank != to.Rank {
		return false
	}
	return s.countBetween(from, to) == 0
}

// 炮：走空格和车一样；吃子必须正好隔一个炮架
func (s *State) cannonReaches(from, to Pos) bool {
	if from.File != to.File && from.Rank != to.Rank {
		return false
	}
	between := s.countBetween(from, to)
	if s.PieceAt(to) != nil {
		return between == 1
	}
	return between == 0
}

// countBetween 数同一条直线上严格位于 from、to 之间的存活棋子。
// 调用前提：from、to 同行或同列。
func (s *State) countBetween(from, to Pos) int {
	df := sign(to.File - from.File)
	dr := sign(to.Rank - from.Rank)
	n := 0
	p := Pos{File: from.File + df, Rank: from.Rank + dr}
	for p != to {
		if s.PieceAt(p) != nil {
			n++
		}
		p.File += df
		p.Rank += dr
	}
	return n
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
