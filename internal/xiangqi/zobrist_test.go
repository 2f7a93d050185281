package xiangqi

import "testing"

func TestHashInitializedFromInitialAndFEN(t *testing.T) {
	s := NewGameState()
	if s.Hash != s.CalculateHash() {
		t.Fatalf("initial hash mismatch: got=%d want=%d", s.Hash, s.CalculateHash())
	}

	decoded := mustDecode(t, s.Encode())
	if decoded.Hash != decoded.CalculateHash() {
		t.Fatalf("decoded hash mismatch: got=%d want=%d", decoded.Hash, decoded.CalculateHash())
	}
}

func TestApplyMoveHashIncrementalMatchesFullRecompute(t *testing.T) {
	s := NewGameState()
	for ply := 0; ply < 24; ply++ {
		moves := s.AllLegalMoves(s.Turn)
		if len(moves) == 0 {
			return
		}
		mv := moves[len(moves)/2]
		if _, err := s.ApplyMove(mv.Piece, mv.To); err != nil {
			t.Fatalf("apply move failed at ply %d: %+v: %v", ply, mv, err)
		}
		got := s.Hash
		want := s.CalculateHash()
		if got != want {
			t.Fatalf("hash mismatch at ply %d: got=%d want=%d move=%+v", ply, got, want, mv)
		}
	}
}
