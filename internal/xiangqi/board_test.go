package xiangqi

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewGameStateLayout(t *testing.T) {
	s := NewGameState()
	if len(s.Pieces) != 32 {
		t.Fatalf("piece count = %d, want 32", len(s.Pieces))
	}
	var red, black int
	for i := range s.Pieces {
		pc := &s.Pieces[i]
		if pc.ID != PieceID(i) {
			t.Fatalf("piece %d has id %d", i, pc.ID)
		}
		if !pc.Alive {
			t.Fatalf("piece %d should start alive", i)
		}
		if pc.Side == Red {
			red++
		} else {
			black++
		}
	}
	if red != 16 || black != 16 {
		t.Fatalf("red=%d black=%d, want 16/16", red, black)
	}
	if s.Turn != Red {
		t.Fatalf("red moves first, got %v", s.Turn)
	}
	if s.General(Red) == nil || s.General(Black) == nil {
		t.Fatalf("both generals must exist at the start")
	}
}

// 克隆隔离：在克隆上走子吃子，原局面一丝不动
func TestCloneIsolation(t *testing.T) {
	s := mustDecode(t, "3g5/9/9/9/r8/9/S8/9/9/4G4 w")
	soldier := s.PieceAt(Pos{File: 0, Rank: 6})
	victim := s.PieceAt(Pos{File: 0, Rank: 4})
	if soldier == nil || victim == nil {
		t.Fatalf("setup broken")
	}

	clone := s.Clone()
	if _, err := clone.ApplyMove(soldier.ID, Pos{File: 0, Rank: 5}); err != nil {
		t.Fatalf("apply on clone failed: %v", err)
	}

	if s.Piece(soldier.ID).Pos != (Pos{File: 0, Rank: 6}) {
		t.Fatalf("original soldier moved: %+v", s.Piece(soldier.ID))
	}
	if !s.Piece(victim.ID).Alive {
		t.Fatalf("original victim died from a clone move")
	}
	if s.Turn != Red {
		t.Fatalf("original turn changed to %v", s.Turn)
	}

	// 再从克隆吃掉那个车，原局面的车还得活着
	clone2 := s.Clone()
	sc := clone2.PieceAt(Pos{File: 0, Rank: 6})
	if _, err := clone2.ApplyMove(sc.ID, Pos{File: 0, Rank: 5}); err != nil {
		t.Fatalf("clone2 step 1: %v", err)
	}
	// 黑随便动一下将
	bg := clone2.General(Black)
	if _, err := clone2.ApplyMove(bg.ID, Pos{File: 4, Rank: 0}); err != nil {
		t.Fatalf("clone2 black reply: %v", err)
	}
	if _, err := clone2.ApplyMove(sc.ID, Pos{File: 0, Rank: 4}); err != nil {
		t.Fatalf("clone2 capture: %v", err)
	}
	if !s.Piece(victim.ID).Alive || s.Piece(victim.ID).Pos != (Pos{File: 0, Rank: 4}) {
		t.Fatalf("original rook affected by clone capture: %+v", s.Piece(victim.ID))
	}
}

func TestApplyMoveCaptures(t *testing.T) {
	s := mustDecode(t, "3g5/9/9/9/9/r8/S8/9/9/4G4 w")
	soldier := s.PieceAt(Pos{File: 0, Rank: 6})
	rook := s.PieceAt(Pos{File: 0, Rank: 5})

	captured, err := s.ApplyMove(soldier.ID, Pos{File: 0, Rank: 5})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if captured != rook.ID {
		t.Fatalf("captured = %v, want %v", captured, rook.ID)
	}
	if s.Piece(rook.ID).Alive {
		t.Fatalf("captured piece still alive")
	}
	// 死子不从棋子表里删，ID 稳定
	if s.Piece(rook.ID).ID != rook.ID {
		t.Fatalf("captured piece lost its id")
	}
	if s.Turn != Black {
		t.Fatalf("turn not flipped, got %v", s.Turn)
	}
}

// 对死子/错边走子是调用方 bug，必须报错
func TestApplyMoveFailsLoudly(t *testing.T) {
	s := mustDecode(t, "3g5/9/9/9/9/r8/S8/9/9/4G4 w")
	soldier := s.PieceAt(Pos{File: 0, Rank: 6})
	rook := s.PieceAt(Pos{File: 0, Rank: 5})

	if _, err := s.ApplyMove(rook.ID, Pos{File: 0, Rank: 4}); !errors.Is(err, ErrWrongTurn) {
		t.Fatalf("moving opponent piece: err = %v, want ErrWrongTurn", err)
	}

	if _, err := s.ApplyMove(soldier.ID, Pos{File: 0, Rank: 5}); err != nil {
		t.Fatalf("capture failed: %v", err)
	}
	// 现在车已经死了，黑方试图动它
	if _, err := s.ApplyMove(rook.ID, Pos{File: 0, Rank: 4}); !errors.Is(err, ErrDeadPiece) {
		t.Fatalf("moving dead piece: err = %v, want ErrDeadPiece", err)
	}

	if _, err := s.ApplyMove(PieceID(99), Pos{File: 0, Rank: 4}); !errors.Is(err, ErrUnknownPiece) {
		t.Fatalf("unknown id: err = %v, want ErrUnknownPiece", err)
	}
}

func TestFENRoundTrip(t *testing.T) {
	s := NewGameState()
	fen := s.Encode()
	decoded := mustDecode(t, fen)
	if decoded.Encode() != fen {
		t.Fatalf("fen round trip: got %q want %q", decoded.Encode(), fen)
	}
	if decoded.Hash != s.Hash {
		t.Fatalf("hash mismatch after round trip: %d vs %d", decoded.Hash, s.Hash)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewGameState()
	// 走几步，制造一个有死子的局面
	soldier := s.PieceAt(Pos{File: 4, Rank: 6})
	if _, err := s.ApplyMove(soldier.ID, Pos{File: 4, Rank: 5}); err != nil {
		t.Fatalf("move 1: %v", err)
	}
	bs := s.PieceAt(Pos{File: 4, Rank: 3})
	if _, err := s.ApplyMove(bs.ID, Pos{File: 4, Rank: 4}); err != nil {
		t.Fatalf("move 2: %v", err)
	}
	rs := s.PieceAt(Pos{File: 4, Rank: 5})
	if _, err := s.ApplyMove(rs.ID, Pos{File: 4, Rank: 4}); err != nil {
		t.Fatalf("move 3 (capture): %v", err)
	}
	s.RefreshStatus()

	snap := s.Snapshot()
	restored, err := RestoreSnapshot(snap)
	if err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if restored.Encode() != s.Encode() {
		t.Fatalf("board mismatch: %q vs %q", restored.Encode(), s.Encode())
	}
	if restored.Hash != s.Hash {
		t.Fatalf("hash mismatch: %d vs %d", restored.Hash, s.Hash)
	}
	if !reflect.DeepEqual(restored.Snapshot(), snap) {
		t.Fatalf("snapshot not stable across restore")
	}
}
