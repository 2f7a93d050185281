package xiangqi

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// State 聚合整盘棋：棋子表（按创建顺序，ID = 下标）、轮到谁走、
// 走子方是否被将军、终局结果，以及增量维护的 Zobrist 哈希。
// 棋子被吃只标记 Alive=false，所有查询都要过滤存活。
type State struct {
	Pieces  []Piece
	Turn    Side
	Checked bool // 走子方当前是否被将军（派生值）
	Outcome Outcome
	Hash    uint64
}

var letterToPieceType = map[rune]PieceType{
	'r': PieceChariot,
	'h': PieceHorse,
	'e': PieceElephant,
	'a': PieceAdvisor,
	'g': PieceGeneral,
	'c': PieceCannon,
	's': PieceSoldier,
}

func pieceToChar(pt PieceType, side Side) rune {
	var base rune
	for k, v := range letterToPieceType {
		if v == pt {
			base = k
			break
		}
	}
	if base == 0 {
		return '.'
	}
	if side == Red {
		return unicode.ToUpper(base)
	}
	return base
}

// 初始盘面：rank 0 在最上面（黑方底线），大写是红方。
const initialBoardString = `rheagaehr
.........
.c.....c.
s.s.s.s.s
.........
.........
S.S.S.S.S
.C.....C.
.........
RHEAGAEHR`

// NewGameState 创建开局局面。两边各 16 子，按扫描顺序分配 ID（0..31）。
func NewGameState() *State {
	s := &State{
		Pieces: make([]Piece, 0, 32),
		Turn:   Red, // 红先
	}
	lines := make([]string, 0, Ranks)
	for _, line := range strings.Split(initialBoardString, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != Ranks {
		panic("initialBoardString 行数不为 10")
	}
	for r := 0; r < Ranks; r++ {
		if len(lines[r]) != Files {
			panic("initialBoardString 列数不为 9")
		}
		for f, ch := range lines[r] {
			if ch == '.' {
				continue
			}
			pt, ok := letterToPieceType[unicode.ToLower(ch)]
			if !ok {
				panic("unknown piece letter: " + string(ch))
			}
			side := Black
			if unicode.IsUpper(ch) {
				side = Red
			}
			s.addPiece(pt, side, Pos{File: f, Rank: r})
		}
	}
	s.Hash = s.CalculateHash()
	s.Checked = s.IsInCheck(s.Turn)
	return s
}

func (s *State) addPiece(pt PieceType, side Side, pos Pos) {
	s.Pieces = append(s.Pieces, Piece{
		ID:    PieceID(len(s.Pieces)),
		Type:  pt,
		Side:  side,
		Pos:   pos,
		Alive: true,
	})
}

// Clone 深拷贝：棋子按值复制、保留 ID，和原局面不共享任何可变存储。
func (s *State) Clone() *State {
	ns := *s
	ns.Pieces = make([]Piece, len(s.Pieces))
	copy(ns.Pieces, s.Pieces)
	return &ns
}

// Piece 按 ID 取棋子；ID 越界返回 nil。
func (s *State) Piece(id PieceID) *Piece {
	if id < 0 || int(id) >= len(s.Pieces) {
		return nil
	}
	return &s.Pieces[id]
}

// PieceAt 返回某格上的存活棋子，没有则为 nil。
func (s *State) PieceAt(pos Pos) *Piece {
	for i := range s.Pieces {
		if s.Pieces[i].Alive && s.Pieces[i].Pos == pos {
			return &s.Pieces[i]
		}
	}
	return nil
}

// General 返回某方的将/帅；已被吃时返回 nil（调用方必须容忍）。
func (s *State) General(side Side) *Piece {
	for i := range s.Pieces {
		pc := &s.Pieces[i]
		if pc.Alive && pc.Side == side && pc.Type == PieceGeneral {
			return pc
		}
	}
	return nil
}

var (
	ErrDeadPiece    = errors.New("apply move: piece is not alive")
	ErrWrongTurn    = errors.New("apply move: piece does not belong to side to move")
	ErrOffBoard     = errors.New("apply move: target out of bounds")
	ErrOwnOccupied  = errors.New("apply move: target occupied by own piece")
	ErrUnknownPiece = errors.New("apply move: no such piece id")
)

// ApplyMove 落子：吃掉目标格上的子（若有）、挪动棋子、换边，并增量更新
// 哈希和将军标志。只做结构校验，不做走法规则校验——合法性由上层用
// IsLegalMove 把关。对死子/错边落子是调用方的 bug，这里直接报错。
func (s *State) ApplyMove(id PieceID, to Pos) (PieceID, error) {
	pc := s.Piece(id)
	if pc == nil {
		return NoPiece, fmt.Errorf("%w: %d", ErrUnknownPiece, id)
	}
	if !pc.Alive {
		return NoPiece, fmt.Errorf("%w: %d", ErrDeadPiece, id)
	}
	if pc.Side != s.Turn {
		return NoPiece, fmt.Errorf("%w: %d", ErrWrongTurn, id)
	}
	if !to.InBounds() {
		return NoPiece, fmt.Errorf("%w: %+v", ErrOffBoard, to)
	}
	if occ := s.PieceAt(to); occ != nil && occ.Side == pc.Side {
		return NoPiece, fmt.Errorf("%w: %+v", ErrOwnOccupied, to)
	}

	captured := s.movePiece(id, to)
	s.Turn = opposite(s.Turn)
	s.Hash ^= zobristSide
	s.Checked = s.IsInCheck(s.Turn)
	return captured, nil
}

// movePiece 只做吃子+挪子+增量哈希，不换边不校验。
// 合法性探测（走一步看看自己会不会被将军）也走这条路。
func (s *State) movePiece(id PieceID, to Pos) PieceID {
	pc := &s.Pieces[id]
	captured := NoPiece
	if occ := s.PieceAt(to); occ != nil {
		occ.Alive = false
		captured = occ.ID
		s.Hash ^= pieceHashKey(occ.Side, occ.Type, squareIndex(to))
	}
	s.Hash ^= pieceHashKey(pc.Side, pc.Type, squareIndex(pc.Pos))
	s.Hash ^= pieceHashKey(pc.Side, pc.Type, squareIndex(to))
	pc.Pos = to
	return captured
}

// RefreshStatus 重算派生状态（将军标志 + 终局结果）并返回结果。
// 终局判定要扫全部合法步，别在搜索内层调它。
func (s *State) RefreshStatus() Outcome {
	s.Checked = s.IsInCheck(s.Turn)
	s.Outcome = s.GameOutcome()
	return s.Outcome
}
