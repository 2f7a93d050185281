package xiangqi

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0 // 红先
	Black  Side = 1
)

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Black:
		return "black"
	}
	return "none"
}

type PieceType int8

const (
	PieceNone     PieceType = iota
	PieceGeneral            // 将/帅
	PieceAdvisor            // 士
	PieceElephant           // 象/相
	PieceHorse              // 马
	PieceChariot            // 车
	PieceCannon             // 炮
	PieceSoldier            // 兵/卒
)

// PieceID 是棋子在棋子表里的下标，整局不变（被吃也不变）。
type PieceID int16

const NoPiece PieceID = -1

// Piece：类型和阵营创建后不再变；位置和存活只通过走子改变。
// 被吃的棋子不从棋子表里删除，只把 Alive 置 false，这样 ID 永远稳定。
type Piece struct {
	ID    PieceID   `json:"id"`
	Type  PieceType `json:"type"`
	Side  Side      `json:"side"`
	Pos   Pos       `json:"pos"`
	Alive bool      `json:"alive"`
}

// Move：某个棋子走到某格。Score 只给搜索排序用。
type Move struct {
	Piece PieceID `json:"piece"`
	To    Pos     `json:"to"`
	Score int     `json:"-"`
}

type Outcome int8

const (
	OutcomeOngoing Outcome = iota
	OutcomeRedWins
	OutcomeBlackWins
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRedWins:
		return "red_wins"
	case OutcomeBlackWins:
		return "black_wins"
	}
	return "ongoing"
}

// Winner 返回赢家；对局未结束时 ok 为 false。
func (o Outcome) Winner() (Side, bool) {
	switch o {
	case OutcomeRedWins:
		return Red, true
	case OutcomeBlackWins:
		return Black, true
	}
	return NoSide, false
}

func winnerOutcome(side Side) Outcome {
	if side == Red {
		return OutcomeRedWins
	}
	return OutcomeBlackWins
}
