package xiangqi

// IsAttacked 判断 target 这个格子是否被 bySide 一方攻击：
// 对方任何一个存活棋子按棋种走法能走到这里就算。
// 炮的隔山打、马腿、象眼都由 pieceReaches 自己处理。
func (s *State) IsAttacked(target Pos, bySide Side) bool {
	for i := range s.Pieces {
		pc := &s.Pieces[i]
		if !pc.Alive || pc.Side != bySide {
			continue
		}
		if s.pieceReaches(pc, target) {
			return true
		}
	}
	return false
}

// generalsFacing：两将同列且中间无子（“对脸”）。
// 任意一方将不在了就谈不上对脸。
func (s *State) generalsFacing() bool {
	rg := s.General(Red)
	bg := s.General(Black)
	if rg == nil || bg == nil {
		return false
	}
	if rg.Pos.File != bg.Pos.File {
		return false
	}
	return s.countBetween(bg.Pos, rg.Pos) == 0
}

// IsInCheck 判断 side 一方是否被将军。
// 两将对脸本身算将军（双方查询都为 true，胜负由 GameOutcome 裁）。
// 将已被吃时返回 false，终局交给 GameOutcome 报。
func (s *State) IsInCheck(side Side) bool {
	g := s.General(side)
	if g == nil {
		return false
	}
	if s.generalsFacing() {
		return true
	}
	return s.IsAttacked(g.Pos, opposite(side))
}

// GameOutcome 终局判定，按优先级：
//  1. 一方将被吃 -> 对方胜
//  2. 两将对脸 -> 轮走方胜（沿用原始规则，不要“修正”）
//  3. 轮走方无任何合法步（困毙/将死）-> 对方胜
func (s *State) GameOutcome() Outcome {
	if s.General(Red) == nil {
		return OutcomeBlackWins
	}
	if s.General(Black) == nil {
		return OutcomeRedWins
	}
	if s.generalsFacing() {
		return winnerOutcome(s.Turn)
	}
	if !s.hasAnyLegalMove(s.Turn) {
		return winnerOutcome(opposite(s.Turn))
	}
	return OutcomeOngoing
}
