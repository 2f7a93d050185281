package xiangqi

// 兵/卒：过河前只能前进一格；过河后可以前进或横走，永远不能后退。
func soldierReaches(side Side, from, to Pos) bool {
	dir := forwardDir(side)

	// 前进一格任何时候都行
	if to.File == from.File && to.Rank == from.Rank+dir {
		return true
	}

	// 横走一格只有过河后才行
	if crossedRiver(side, from.Rank) {
		return to.Rank == from.Rank && from.FileDist(to) == 1
	}
	return false
}
