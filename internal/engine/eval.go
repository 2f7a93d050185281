package engine

import (
	"github.com/lx719679895/chinese-chess-trae/internal/xiangqi"
)

// ======= 基础子力估值 =======

// 将的子力分只是名义值：真被吃掉对局早就结束了。
var pieceValue = map[xiangqi.PieceType]int{
	xiangqi.PieceGeneral:  1000,
	xiangqi.PieceChariot:  500,
	xiangqi.PieceHorse:    300,
	xiangqi.PieceCannon:   250,
	xiangqi.PieceElephant: 150,
	xiangqi.PieceAdvisor:  100,
	xiangqi.PieceSoldier:  50,
}

// 一些权重，可之后慢慢调
const (
	checkBonus            = 50
	mobilityWeight        = 2
	centerWeight          = 3
	kingRingPenalty       = 30
	generalMissingPenalty = 1500
)

// Evaluate 静态评估，从 perspective 一方视角给分（正数对它有利）。
// 子力 + 位置表 + 被小子盯住折减 + 将军 + 机动性 + 中心控制 + 王安全。
func Evaluate(s *xiangqi.State, perspective xiangqi.Side) int {
	score := 0 // 先按红方视角算

	for i := range s.Pieces {
		pc := &s.Pieces[i]
		if !pc.Alive {
			continue
		}
		val := pieceValue[pc.Type] + positionBonus(pc.Type, pc.Side, pc.Pos)
		// 被价值不高于自己的对方子攻击：这个子大概率要折损
		if attackedByCheaperOrEqual(s, pc) {
			val -= pieceValue[pc.Type] / 2
		}
		if pc.Side == xiangqi.Red {
			score += val
		} else {
			score -= val
		}
	}

	if s.IsInCheck(xiangqi.Black) {
		score += checkBonus
	}
	if s.IsInCheck(xiangqi.Red) {
		score -= checkBonus
	}

	// 机动性和中心控制都按“真合法步”算，贵但和规则语义完全一致
	redMoves := s.AllLegalMoves(xiangqi.Red)
	blackMoves := s.AllLegalMoves(xiangqi.Black)
	score += (len(redMoves) - len(blackMoves)) * mobilityWeight
	score += (countCenterLandings(redMoves) - countCenterLandings(blackMoves)) * centerWeight

	score -= kingSafetyPenalty(s, xiangqi.Red)
	score += kingSafetyPenalty(s, xiangqi.Black)

	if perspective == xiangqi.Black {
		return -score
	}
	return score
}

// 中心 3×3 区域：3..5 列 × 4..6 行
func inCenterRegion(p xiangqi.Pos) bool {
	return p.File >= 3 && p.File <= 5 && p.Rank >= 4 && p.Rank <= 6
}

func countCenterLandings(moves []xiangqi.Move) int {
	n := 0
	for _, mv := range moves {
		if inCenterRegion(mv.To) {
			n++
		}
	}
	return n
}

// attackedByCheaperOrEqual：有没有价值不高于 pc 的对方存活子正盯着它。
// 将不参与：将被盯上就是将军，checkBonus 单独计分，这里再折减
// 将的子力就是重复计分，一次将军能盖过整只车。
func attackedByCheaperOrEqual(s *xiangqi.State, pc *xiangqi.Piece) bool {
	if pc.Type == xiangqi.PieceGeneral {
		return false
	}
	myValue := pieceValue[pc.Type]
	for i := range s.Pieces {
		q := &s.Pieces[i]
		if !q.Alive || q.Side == pc.Side {
			continue
		}
		if pieceValue[q.Type] > myValue {
			continue
		}
		if s.Reaches(q.ID, pc.Pos) {
			return true
		}
	}
	return false
}

// kingSafetyPenalty：王周边被压制的程度（正数，调用方决定加减号）。
// 将没了给一个大罚分——终局判定应该先兜住，这里只保证不崩。
func kingSafetyPenalty(s *xiangqi.State, side xiangqi.Side) int {
	g := s.General(side)
	if g == nil {
		return generalMissingPenalty
	}
	enemy := xiangqi.Red
	if side == xiangqi.Red {
		enemy = xiangqi.Black
	}
	penalty := 0
	ring := [4]xiangqi.Pos{
		{File: g.Pos.File - 1, Rank: g.Pos.Rank},
		{File: g.Pos.File + 1, Rank: g.Pos.Rank},
		{File: g.Pos.File, Rank: g.Pos.Rank - 1},
		{File: g.Pos.File, Rank: g.Pos.Rank + 1},
	}
	for _, p := range ring {
		if !p.InBounds() {
			continue
		}
		if s.IsAttacked(p, enemy) {
			penalty += kingRingPenalty
		}
	}
	return penalty
}

// ======= 位置表 =======
//
// 全部按红方视角写（rank 9 是红方底线），黑方按中线镜像取行。
// 每行都是左右对称的，保证开局双方位置分抵消。

func positionBonus(pt xiangqi.PieceType, side xiangqi.Side, pos xiangqi.Pos) int {
	table, ok := positionTables[pt]
	if !ok {
		return 0
	}
	rank := pos.Rank
	if side == xiangqi.Black {
		rank = xiangqi.Ranks - 1 - rank
	}
	return table[rank][pos.File]
}

type positionTable [xiangqi.Ranks][xiangqi.Files]int

var positionTables = map[xiangqi.PieceType]*positionTable{
	xiangqi.PieceSoldier:  &soldierTable,
	xiangqi.PieceChariot:  &chariotTable,
	xiangqi.PieceHorse:    &horseTable,
	xiangqi.PieceCannon:   &cannonTable,
	xiangqi.PieceElephant: &elephantTable,
	xiangqi.PieceAdvisor:  &advisorTable,
	xiangqi.PieceGeneral:  &generalTable,
}

// 兵：过河之后越深入越值钱，底线老兵略微贬值
var soldierTable = positionTable{
	{0, 0, 0, 10, 14, 10, 0, 0, 0},
	{20, 26, 32, 36, 40, 36, 32, 26, 20},
	{16, 22, 28, 32, 36, 32, 28, 22, 16},
	{12, 16, 20, 24, 28, 24, 20, 16, 12},
	{8, 10, 14, 16, 18, 16, 14, 10, 8},
	{2, 0, 6, 0, 8, 0, 6, 0, 2},
	{0, 0, 0, 0, 4, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
}

// 车：占中路、压对方半场
var chariotTable = positionTable{
	{12, 14, 14, 16, 16, 16, 14, 14, 12},
	{14, 16, 18, 20, 20, 20, 18, 16, 14},
	{12, 14, 16, 18, 18, 18, 16, 14, 12},
	{12, 14, 16, 16, 16, 16, 16, 14, 12},
	{10, 12, 14, 14, 14, 14, 14, 12, 10},
	{10, 12, 12, 14, 14, 14, 12, 12, 10},
	{6, 8, 10, 12, 12, 12, 10, 8, 6},
	{4, 8, 8, 12, 12, 12, 8, 8, 4},
	{2, 6, 6, 8, 8, 8, 6, 6, 2},
	{0, 4, 4, 6, 6, 6, 4, 4, 0},
}

// 马：靠中比贴边强，窝在家里最差
var horseTable = positionTable{
	{0, 4, 8, 8, 4, 8, 8, 4, 0},
	{4, 10, 14, 14, 14, 14, 14, 10, 4},
	{8, 12, 16, 18, 16, 18, 16, 12, 8},
	{8, 14, 18, 20, 20, 20, 18, 14, 8},
	{6, 12, 16, 18, 18, 18, 16, 12, 6},
	{4, 10, 14, 16, 14, 16, 14, 10, 4},
	{2, 8, 10, 12, 10, 12, 10, 8, 2},
	{0, 4, 8, 8, 8, 8, 8, 4, 0},
	{-2, 2, 4, 4, -2, 4, 4, 2, -2},
	{-4, 0, 2, 2, 2, 2, 2, 0, -4},
}

// 炮：中路和对方底线（沉底炮）略好
var cannonTable = positionTable{
	{6, 6, 2, 2, 2, 2, 2, 6, 6},
	{4, 4, 2, 4, 8, 4, 2, 4, 4},
	{2, 2, 4, 6, 10, 6, 4, 2, 2},
	{0, 2, 4, 6, 8, 6, 4, 2, 0},
	{0, 0, 2, 4, 6, 4, 2, 0, 0},
	{0, 0, 2, 4, 6, 4, 2, 0, 0},
	{0, 0, 0, 2, 6, 2, 0, 0, 0},
	{2, 0, 2, 2, 4, 2, 2, 0, 2},
	{0, 2, 0, 4, 4, 4, 0, 2, 0},
	{0, 0, 2, 2, 2, 2, 2, 0, 0},
}

// 象：守在家里的正位给点分
var elephantTable = positionTable{
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 2, 0, 0, 0, 2, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{2, 0, 0, 0, 6, 0, 0, 0, 2},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 4, 0, 0, 0, 4, 0, 0},
}

// 士：中宫那格最稳
var advisorTable = positionTable{
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 6, 0, 0, 0, 0},
	{0, 0, 0, 2, 0, 2, 0, 0, 0},
}

// 将：待在底线中路，出宫另有安全罚分兜着
var generalTable = positionTable{
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, -2, 0, -2, 0, 0, 0},
	{0, 0, 0, 0, 2, 0, 0, 0, 0},
	{0, 0, 0, 2, 4, 2, 0, 0, 0},
}
