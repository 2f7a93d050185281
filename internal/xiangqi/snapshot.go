package xiangqi

import "fmt"

// Snapshot 是 State 的纯数据形式，持久化/前端都用它。
// 往返必须无损：RestoreSnapshot(s.Snapshot()) 等价于原局面。
type Snapshot struct {
	Pieces  []PieceSnapshot `json:"pieces"`
	Turn    string          `json:"turn"`
	Checked bool            `json:"checked"`
	Outcome string          `json:"outcome"`
}

type PieceSnapshot struct {
	ID    int    `json:"id"`
	Type  string `json:"type"`
	Side  string `json:"side"`
	File  int    `json:"file"`
	Rank  int    `json:"rank"`
	Alive bool   `json:"alive"`
}

var pieceTypeNames = map[PieceType]string{
	PieceGeneral:  "general",
	PieceAdvisor:  "advisor",
	PieceElephant: "elephant",
	PieceHorse:    "horse",
	PieceChariot:  "chariot",
	PieceCannon:   "cannon",
	PieceSoldier:  "soldier",
}

func (pt PieceType) String() string {
	if name, ok := pieceTypeNames[pt]; ok {
		return name
	}
	return "none"
}

func parsePieceType(name string) (PieceType, bool) {
	for pt, n := range pieceTypeNames {
		if n == name {
			return pt, true
		}
	}
	return PieceNone, false
}

func parseSide(name string) (Side, bool) {
	switch name {
	case "red":
		return Red, true
	case "black":
		return Black, true
	}
	return NoSide, false
}

func parseOutcome(name string) (Outcome, bool) {
	switch name {
	case "ongoing":
		return OutcomeOngoing, true
	case "red_wins":
		return OutcomeRedWins, true
	case "black_wins":
		return OutcomeBlackWins, true
	}
	return OutcomeOngoing, false
}

func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Pieces:  make([]PieceSnapshot, len(s.Pieces)),
		Turn:    s.Turn.String(),
		Checked: s.Checked,
		Outcome: s.Outcome.String(),
	}
	for i := range s.Pieces {
		pc := &s.Pieces[i]
		snap.Pieces[i] = PieceSnapshot{
			ID:    int(pc.ID),
			Type:  pc.Type.String(),
			Side:  pc.Side.String(),
			File:  pc.Pos.File,
			Rank:  pc.Pos.Rank,
			Alive: pc.Alive,
		}
	}
	return snap
}

// RestoreSnapshot 从纯数据形式重建 State。
// 要求棋子按 ID 顺序排列（Snapshot 生成的就是），哈希重新全量算。
func RestoreSnapshot(snap Snapshot) (*State, error) {
	turn, ok := parseSide(snap.Turn)
	if !ok {
		return nil, fmt.Errorf("restore snapshot: bad turn %q", snap.Turn)
	}
	outcome, ok := parseOutcome(snap.Outcome)
	if !ok {
		return nil, fmt.Errorf("restore snapshot: bad outcome %q", snap.Outcome)
	}

	s := &State{
		Pieces:  make([]Piece, 0, len(snap.Pieces)),
		Turn:    turn,
		Checked: snap.Checked,
		Outcome: outcome,
	}
	for i, ps := range snap.Pieces {
		if ps.ID != i {
			return nil, fmt.Errorf("restore snapshot: piece %d has id %d", i, ps.ID)
		}
		pt, ok := parsePieceType(ps.Type)
		if !ok {
			return nil, fmt.Errorf("restore snapshot: bad piece type %q", ps.Type)
		}
		side, ok := parseSide(ps.Side)
		if !ok {
			return nil, fmt.Errorf("restore snapshot: bad side %q", ps.Side)
		}
		pos := Pos{File: ps.File, Rank: ps.Rank}
		if !pos.InBounds() {
			return nil, fmt.Errorf("restore snapshot: piece %d off board", i)
		}
		s.Pieces = append(s.Pieces, Piece{
			ID:    PieceID(i),
			Type:  pt,
			Side:  side,
			Pos:   pos,
			Alive: ps.Alive,
		})
	}
	s.Hash = s.CalculateHash()
	return s, nil
}
