package xiangqi

import (
	"errors"
	"strings"
	"unicode"
)

// 简单 FEN-like：10 行用“/”隔开，空位用数字压缩；空格后 w/b 表示先后。
// 大写红方小写黑方，字母表和 initialBoardString 一致。
func (s *State) Encode() string {
	var board [Ranks][Files]rune
	for i := range s.Pieces {
		pc := &s.Pieces[i]
		if !pc.Alive {
			continue
		}
		board[pc.Pos.Rank][pc.Pos.File] = pieceToChar(pc.Type, pc.Side)
	}

	var sb strings.Builder
	for r := 0; r < Ranks; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for f := 0; f < Files; f++ {
			ch := board[r][f]
			if ch == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(ch)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if s.Turn == Red {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}

var ErrInvalidFEN = errors.New("invalid FEN")

// DecodeState 从 FEN 重建局面。棋子 ID 按扫描顺序重新分配，
// 派生状态（将军标志、终局）解码完顺手重算。
func DecodeState(fen string) (*State, error) {
	parts := strings.Split(fen, " ")
	if len(parts) < 2 {
		return nil, ErrInvalidFEN
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Ranks {
		return nil, ErrInvalidFEN
	}

	s := &State{Pieces: make([]Piece, 0, 32)}
	for r := 0; r < Ranks; r++ {
		f := 0
		for _, ch := range rows[r] {
			if f >= Files {
				return nil, ErrInvalidFEN
			}
			if ch >= '1' && ch <= '9' {
				f += int(ch - '0')
				continue
			}
			if ch == '.' {
				f++
				continue
			}
			pt, ok := letterToPieceType[unicode.ToLower(ch)]
			if !ok {
				return nil, ErrInvalidFEN
			}
			side := Black
			if unicode.IsUpper(ch) {
				side = Red
			}
			s.addPiece(pt, side, Pos{File: f, Rank: r})
			f++
		}
		if f != Files {
			return nil, ErrInvalidFEN
		}
	}

	switch parts[1] {
	case "w":
		s.Turn = Red
	case "b":
		s.Turn = Black
	default:
		return nil, ErrInvalidFEN
	}

	s.Hash = s.CalculateHash()
	s.RefreshStatus()
	return s, nil
}
