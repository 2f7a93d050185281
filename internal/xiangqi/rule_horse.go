package xiangqi

// 马 8 种“日”字：终点偏移 + 马腿偏移。
// 马腿在长轴方向上紧挨着起点，被占就憋腿。
var horseLegMoves = [8]struct {
	DFile, DRank int // 终点
	LFile, LRank int // 马腿
}{
	{-2, -1, -1, 0},
	{-2, +1, -1, 0},
	{+2, -1, +1, 0},
	{+2, +1, +1, 0},
	{-1, -2, 0, -1},
	{+1, -2, 0, -1},
	{-1, +2, 0, +1},
	{+1, +2, 0, +1},
}

func (s *State) horseReaches(from, to Pos) bool {
	for _, m := range horseLegMoves {
		if from.File+m.DFile != to.File || from.Rank+m.DRank != to.Rank {
			continue
		}
		leg := Pos{File: from.File + m.LFile, Rank: from.Rank + m.LRank}
		return s.PieceAt(leg) == nil
	}
	return false
}
