package xiangqi

// IsLegalMove 判断某个棋子走到 to 是否完全合法：
// 目标在棋盘内、不落在己方存活子上、满足棋种走法，
// 且走完之后自己的将不被将军（送将非法）。
// 对结构不合法的输入（死子、越界）一律返回 false，不报错。
func (s *State) IsLegalMove(id PieceID, to Pos) bool {
	pc := s.Piece(id)
	if pc == nil || !pc.Alive {
		return false
	}
	if !to.InBounds() {
		return false
	}
	if occ := s.PieceAt(to); occ != nil && occ.Side == pc.Side {
		return false
	}
	if !s.pieceReaches(pc, to) {
		return false
	}

	// 送将检测：在副本上走这一步，再看自己的将是否被将军。
	// 这是整个搜索最大的开销来源，但正确性离不开它。
	probe := s.Clone()
	probe.movePiece(id, to)
	return !probe.IsInCheck(pc.Side)
}

// LegalMoves 穷举某个棋子所有合法落点。扫描顺序固定为先列后行，
// 语义上顺序不重要，但测试依赖它的稳定性。
func (s *State) LegalMoves(id PieceID) []Pos {
	pc := s.Piece(id)
	if pc == nil || !pc.Alive {
		return nil
	}
	var out []Pos
	for f := 0; f < Files; f++ {
		for r := 0; r < Ranks; r++ {
			to := Pos{File: f, Rank: r}
			if s.IsLegalMove(id, to) {
				out = append(out, to)
			}
		}
	}
	return out
}

// AllLegalMoves 生成某方全部合法着法，按棋子表顺序排列。
func (s *State) AllLegalMoves(side Side) []Move {
	var out []Move
	for i := range s.Pieces {
		pc := &s.Pieces[i]
		if !pc.Alive || pc.Side != side {
			continue
		}
		for _, to := range s.LegalMoves(pc.ID) {
			out = append(out, Move{Piece: pc.ID, To: to})
		}
	}
	return out
}

// hasAnyLegalMove 只回答有没有，找到第一步就停。
func (s *State) hasAnyLegalMove(side Side) bool {
	for i := range s.Pieces {
		pc := &s.Pieces[i]
		if !pc.Alive || pc.Side != side {
			continue
		}
		for f := 0; f < Files; f++ {
			for r := 0; r < Ranks; r++ {
				if s.IsLegalMove(pc.ID, Pos{File: f, Rank: r}) {
					return true
				}
			}
		}
	}
	return false
}

// Reaches 只看棋种走法（含阻挡、马腿、炮架），不做送将检测。
// 评估层拿它问“这个子现在盯没盯住那一格”。
func (s *State) Reaches(id PieceID, to Pos) bool {
	pc := s.Piece(id)
	if pc == nil || !pc.Alive || !to.InBounds() {
		return false
	}
	if occ := s.PieceAt(to); occ != nil && occ.Side == pc.Side {
		return false
	}
	return s.pieceReaches(pc, to)
}

// pieceReaches：棋种走法本身是否允许从当前格走到 to。
// 不考虑送将，也不管目标是不是己方子（上层处理）。
func (s *State) pieceReaches(pc *Piece, to Pos) bool {
	if pc.Pos == to {
		return false
	}
	switch pc.Type {
	case PieceGeneral:
		return generalReaches(pc.Side, pc.Pos, to)
	case PieceAdvisor:
		return advisorReaches(pc.Side, pc.Pos, to)
	case PieceElephant:
		return s.elephantReaches(pc.Side, pc.Pos, to)
	case PieceHorse:
		return s.horseReaches(pc.Pos, to)
	case PieceChariot:
		return s.chariotReaches(pc.Pos, to)
	case PieceCannon:
		return s.cannonReaches(pc.Pos, to)
	case PieceSoldier:
		return soldierReaches(pc.Side, pc.Pos, to)
	}
	return false
}
