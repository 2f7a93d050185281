package engine

import (
	"testing"
	"time"

	"github.com/lx719679895/chinese-chess-trae/internal/xiangqi"
)

func mustDecode(t *testing.T, fen string) *xiangqi.State {
	t.Helper()
	s, err := xiangqi.DecodeState(fen)
	if err != nil {
		t.Fatalf("decode %q failed: %v", fen, err)
	}
	return s
}

// 随机关掉后，同一局面搜两次必须给出同一步
func TestHardSearchDeterministicWithoutRandom(t *testing.T) {
	const fen = "3g5/r8/9/9/9/9/9/9/8R/4G4 w"
	cfg := SearchConfig{MaxDepth: 2, TimeLimit: -1}

	e := NewEngine()
	e.SetRandom(nil)
	s1 := mustDecode(t, fen)
	first := e.ChooseMoveWith(s1, xiangqi.Red, Hard, cfg)
	if !first.HasMove {
		t.Fatalf("expected a move")
	}

	s2 := mustDecode(t, fen)
	second := e.ChooseMoveWith(s2, xiangqi.Red, Hard, cfg)
	if first.Move.Piece != second.Move.Piece || first.Move.To != second.Move.To {
		t.Fatalf("same engine diverged: %+v vs %+v", first.Move, second.Move)
	}

	// 清 TT、换全新引擎都不能改变结果
	e.ClearTT()
	third := e.ChooseMoveWith(mustDecode(t, fen), xiangqi.Red, Hard, cfg)
	if first.Move.Piece != third.Move.Piece || first.Move.To != third.Move.To {
		t.Fatalf("result changed after ClearTT: %+v vs %+v", first.Move, third.Move)
	}

	fresh := NewEngine()
	fresh.SetRandom(nil)
	fourth := fresh.ChooseMoveWith(mustDecode(t, fen), xiangqi.Red, Hard, cfg)
	if first.Move.Piece != fourth.Move.Piece || first.Move.To != fourth.Move.To {
		t.Fatalf("fresh engine diverged: %+v vs %+v", first.Move, fourth.Move)
	}
}

// 白送的车必须吃
func TestHardSearchTakesHangingChariot(t *testing.T) {
	s := mustDecode(t, "3g5/r8/9/9/9/R8/9/9/9/4G4 w")
	e := NewEngine()
	e.SetRandom(nil)

	res := e.ChooseMoveWith(s, xiangqi.Red, Hard, SearchConfig{MaxDepth: 1, TimeLimit: -1})
	if !res.HasMove {
		t.Fatalf("expected a move")
	}
	if res.Move.To != (xiangqi.Pos{File: 0, Rank: 1}) {
		t.Fatalf("best move = %+v, want capture on (0,1)", res.Move)
	}
	if pc := s.Piece(res.Move.Piece); pc.Type != xiangqi.PieceChariot {
		t.Fatalf("capturing piece = %v, want chariot", pc.Type)
	}
}

// 中等档：有将军步必走将军
func TestMediumPrefersCheck(t *testing.T) {
	s := mustDecode(t, "4g4/R8/9/9/9/9/9/9/9/3G5 w")
	e := NewEngine()

	res := e.ChooseMove(s, xiangqi.Red, Medium)
	if !res.HasMove {
		t.Fatalf("expected a move")
	}
	child := s.Clone()
	if _, err := child.ApplyMove(res.Move.Piece, res.Move.To); err != nil {
		t.Fatalf("apply chosen move: %v", err)
	}
	if !child.Checked {
		t.Fatalf("medium move %+v does not deliver check", res.Move)
	}
}

// 中等档：没将军步就吃子
func TestMediumPrefersCaptureWhenNoCheck(t *testing.T) {
	s := mustDecode(t, "4g4/s8/4s4/9/9/R8/9/9/9/3G5 w")
	e := NewEngine()

	res := e.ChooseMove(s, xiangqi.Red, Medium)
	if !res.HasMove {
		t.Fatalf("expected a move")
	}
	if res.Move.To != (xiangqi.Pos{File: 0, Rank: 1}) {
		t.Fatalf("medium move = %+v, want the only capture (0,1)", res.Move)
	}
}

// 无棋可走：三个档位都返回“没有着法”，和终局判定一致
func TestChooseMoveNoLegalMoves(t *testing.T) {
	const fen = "3g5/R8/9/9/9/9/9/9/4R4/4G4 b"
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		s := mustDecode(t, fen)
		e := NewEngine()
		res := e.ChooseMoveWith(s, xiangqi.Black, d, SearchConfig{MaxDepth: 1, TimeLimit: -1})
		if res.HasMove {
			t.Fatalf("difficulty %v returned a move in a dead position: %+v", d, res.Move)
		}
		if got := s.GameOutcome(); got != xiangqi.OutcomeRedWins {
			t.Fatalf("outcome = %v, want red_wins", got)
		}
	}
}

// 搜索绝不碰调用方的局面
func TestSearchDoesNotMutateState(t *testing.T) {
	s := xiangqi.NewGameState()
	before := s.Encode()
	hash := s.Hash

	e := NewEngine()
	e.SetRandom(nil)
	e.ChooseMoveWith(s, xiangqi.Red, Hard, SearchConfig{MaxDepth: 1, TimeLimit: -1})

	if s.Encode() != before {
		t.Fatalf("search mutated the canonical state")
	}
	if s.Hash != hash {
		t.Fatalf("search mutated the canonical hash")
	}
	if s.Turn != xiangqi.Red {
		t.Fatalf("search flipped the turn")
	}
}

// 异步入口和同步入口给出同一步（随机已关）
func TestAsyncMatchesSync(t *testing.T) {
	const fen = "3g5/r8/9/9/9/9/9/9/8R/4G4 w"
	cfg := SearchConfig{MaxDepth: 2, TimeLimit: -1}

	e := NewEngine()
	e.SetRandom(nil)
	sync := e.ChooseMoveWith(mustDecode(t, fen), xiangqi.Red, Hard, cfg)

	select {
	case async := <-e.ChooseMoveAsync(mustDecode(t, fen), xiangqi.Red, Hard, cfg):
		if sync.Move.Piece != async.Move.Piece || sync.Move.To != async.Move.To {
			t.Fatalf("async %+v != sync %+v", async.Move, sync.Move)
		}
	case <-time.After(30 * time.Second):
		t.Fatalf("async search did not finish")
	}
}

// 分数过了必胜阈值就停止加深。默认阈值靠静态评估够不着，
// 这里把阈值压低验证提前退出真的会触发
func TestWinScoreCutoffStopsDeepening(t *testing.T) {
	s := mustDecode(t, "3g5/r8/9/9/9/R8/9/9/9/4G4 w")
	e := NewEngine()
	e.SetRandom(nil)

	res := e.ChooseMoveWith(s, xiangqi.Red, Hard, SearchConfig{
		MaxDepth:  4,
		TimeLimit: -1,
		WinScore:  100,
	})
	if !res.HasMove {
		t.Fatalf("expected a move")
	}
	if res.Move.To != (xiangqi.Pos{File: 0, Rank: 1}) {
		t.Fatalf("best move = %+v, want capture on (0,1)", res.Move)
	}
	if res.Score < 100 {
		t.Fatalf("score %d below the cutoff that should have fired", res.Score)
	}
	if res.Depth != 1 {
		t.Fatalf("search kept deepening past a winning line: depth=%d", res.Depth)
	}
}

// 时间预算：给个极小的预算也必须返回一步合法棋
func TestTimeBudgetStillReturnsMove(t *testing.T) {
	s := xiangqi.NewGameState()
	e := NewEngine()
	e.SetRandom(nil)

	res := e.ChooseMoveWith(s, xiangqi.Red, Hard, SearchConfig{MaxDepth: 6, TimeLimit: 50 * time.Millisecond})
	if !res.HasMove {
		t.Fatalf("budgeted search returned no move")
	}
	if !s.IsLegalMove(res.Move.Piece, res.Move.To) {
		t.Fatalf("budgeted search returned illegal move %+v", res.Move)
	}
}
