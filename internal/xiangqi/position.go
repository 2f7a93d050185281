package xiangqi

const (
	Files      = 9
	Ranks      = 10
	NumSquares = Files * Ranks
)

// Pos 是棋盘坐标：file 0..8（列），rank 0..9（行）。
// rank 0 是黑方底线，rank 9 是红方底线。
type Pos struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

func (p Pos) InBounds() bool {
	return p.File >= 0 && p.File < Files && p.Rank >= 0 && p.Rank < Ranks
}

// FileDist / RankDist：到另一格的列/行距离（绝对值）。
func (p Pos) FileDist(q Pos) int { return abs(p.File - q.File) }
func (p Pos) RankDist(q Pos) int { return abs(p.Rank - q.Rank) }

func squareIndex(p Pos) int { return p.Rank*Files + p.File }

func opposite(side Side) Side {
	if side == Red {
		return Black
	}
	if side == Black {
		return Red
	}
	return NoSide
}

// 兵的前进方向：红向上（rank 减小），黑向下（rank 增大）。
func forwardDir(side Side) int {
	if side == Red {
		return -1
	}
	if side == Black {
		return +1
	}
	return 0
}

// 是否已经过河
func crossedRiver(side Side, rank int) bool {
	if side == Red {
		return rank <= 4
	}
	if side == Black {
		return rank >= 5
	}
	return false
}

// 是否在己方九宫（3×3）
func inPalace(side Side, p Pos) bool {
	if p.File < 3 || p.File > 5 {
		return false
	}
	if side == Black {
		return p.Rank >= 0 && p.Rank <= 2
	}
	if side == Red {
		return p.Rank >= 7 && p.Rank <= 9
	}
	return false
}

// 红黑位置表共用：黑方按中线镜像取红方的行
func mirrorRank(rank int) int { return Ranks - 1 - rank }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
