package engine

import (
	"sort"
	"time"

	"github.com/lx719679895/chinese-chess-trae/internal/xiangqi"
)

const (
	// 一个足够大的值，当成正负无穷
	scoreInf = 1_000_000

	defaultMaxDepth  = 6
	defaultTimeLimit = 1500 * time.Millisecond
	defaultWinScore  = 10_000 // 搜到必胜分就停止加深
	defaultTopK      = 5
	defaultTopKProb  = 0.05
)

// SearchConfig 困难档搜索参数。零值字段取默认值；
// TimeLimit 传负数表示不限时，TopKProb 传负数表示永不随机挑选
// （SetRandom(nil) 也一样）。
type SearchConfig struct {
	MaxDepth  int
	TimeLimit time.Duration
	WinScore  int
	TopK      int
	TopKProb  float64
}

func (c SearchConfig) withDefaults() SearchConfig {
	if c.MaxDepth <= 0 {
		c.MaxDepth = defaultMaxDepth
	}
	if c.TimeLimit == 0 {
		c.TimeLimit = defaultTimeLimit
	}
	if c.WinScore <= 0 {
		c.WinScore = defaultWinScore
	}
	if c.TopK <= 0 {
		c.TopK = defaultTopK
	}
	if c.TopKProb == 0 {
		c.TopKProb = defaultTopKProb
	}
	return c
}

// 简单档：所有合法步里等概率挑一个。
func (e *Engine) chooseRandom(s *xiangqi.State) MoveChoice {
	start := time.Now()
	moves := s.AllLegalMoves(s.Turn)
	if len(moves) == 0 {
		return MoveChoice{}
	}
	return MoveChoice{
		Move:    e.pickUniform(moves),
		HasMove: true,
		Depth:   0,
		Nodes:   int64(len(moves)),
		Elapsed: time.Since(start),
	}
}

// 中等档：一步贪心。有将军步先将军，没有就吃子，再没有就随机。
// 每一档内部仍然等概率挑，保持不可预测。
func (e *Engine) chooseGreedy(s *xiangqi.State) MoveChoice {
	start := time.Now()
	moves := s.AllLegalMoves(s.Turn)
	if len(moves) == 0 {
		return MoveChoice{}
	}

	var checks, captures []xiangqi.Move
	for _, mv := range moves {
		child := s.Clone()
		captured, err := child.ApplyMove(mv.Piece, mv.To)
		if err != nil {
			continue
		}
		// ApplyMove 换边后顺手算了新走子方的将军标志
		if child.Checked {
			checks = append(checks, mv)
		} else if captured != xiangqi.NoPiece {
			captures = append(captures, mv)
		}
	}

	pool := moves
	if len(checks) > 0 {
		pool = checks
	} else if len(captures) > 0 {
		pool = captures
	}
	return MoveChoice{
		Move:    e.pickUniform(pool),
		HasMove: true,
		Depth:   1,
		Nodes:   int64(len(moves)),
		Elapsed: time.Since(start),
	}
}

// 困难档：迭代加深 + alpha-beta。
// 每层搜完按分数重排着法，浅层结果给下一层当排序用；
// 时间预算在每步评估之间和层与层之间检查，超了就拿目前最好的结果返回。
func (e *Engine) search(root *xiangqi.State, cfg SearchConfig) MoveChoice {
	cfg = cfg.withDefaults()
	start := time.Now()
	e.nodes = 0
	side := root.Turn

	moves := root.AllLegalMoves(side)
	if len(moves) == 0 {
		return MoveChoice{}
	}

	e.orderRootMoves(root, moves)

	var deadline time.Time
	if cfg.TimeLimit > 0 {
		deadline = start.Add(cfg.TimeLimit)
	}

	completedDepth := 0
	for depth := 1; depth <= cfg.MaxDepth; depth++ {
		if expired(deadline) {
			break
		}
		timedOut := false
		for i := range moves {
			if expired(deadline) {
				timedOut = true
				break
			}
			child := root.Clone()
			if _, err := child.ApplyMove(moves[i].Piece, moves[i].To); err != nil {
				continue
			}
			moves[i].Score = e.alphaBeta(child, depth-1, -scoreInf, scoreInf, side, deadline)
		}
		sortScoredMoves(moves)
		completedDepth = depth
		if timedOut {
			break
		}
		if moves[0].Score >= cfg.WinScore {
			break
		}
	}

	e.storeTT(root.Hash, completedDepth, moves[0])

	// 最终挑选：小概率从前几名里随机拿一个，防止被人背谱针对。
	best := moves[0]
	if e.rng != nil && cfg.TopKProb > 0 {
		k := cfg.TopK
		if k > len(moves) {
			k = len(moves)
		}
		if e.rng.Float64() < cfg.TopKProb {
			best = moves[e.rng.Intn(k)]
		}
	}

	return MoveChoice{
		Move:    best,
		HasMove: true,
		Score:   best.Score,
		Depth:   completedDepth,
		Nodes:   e.nodes,
		Elapsed: time.Since(start),
	}
}

// 内部递归：标准 alpha-beta。深度耗尽或无步可走就返回静态评估，
// 评估永远从根搜索方的视角给分。
func (e *Engine) alphaBeta(pos *xiangqi.State, depth, alpha, beta int, rootSide xiangqi.Side, deadline time.Time) int {
	e.nodes++

	if depth <= 0 {
		return Evaluate(pos, rootSide)
	}
	if expired(deadline) {
		// 超时：拿静态评估退出，不完美但保证能停
		return Evaluate(pos, rootSide)
	}

	moves := pos.AllLegalMoves(pos.Turn)
	if len(moves) == 0 {
		return Evaluate(pos, rootSide)
	}
	orderCapturesFirst(pos, moves)

	if pos.Turn == rootSide {
		best := -scoreInf
		for _, mv := range moves {
			child := pos.Clone()
			if _, err := child.ApplyMove(mv.Piece, mv.To); err != nil {
				continue
			}
			score := e.alphaBeta(child, depth-1, alpha, beta, rootSide, deadline)
			if score > best {
				best = score
			}
			if score > alpha {
				alpha = score
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := scoreInf
	for _, mv := range moves {
		child := pos.Clone()
		if _, err := child.ApplyMove(mv.Piece, mv.To); err != nil {
			continue
		}
		score := e.alphaBeta(child, depth-1, alpha, beta, rootSide, deadline)
		if score < best {
			best = score
		}
		if score < beta {
			beta = score
		}
		if beta <= alpha {
			break
		}
	}
	return best
}

// sortScoredMoves 分数降序；同分按 (棋子ID, 落点) 决出先后，
// 让排名和评估顺序、TT 提示都无关——随机关掉时结果必须完全可复现。
func sortScoredMoves(moves []xiangqi.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		if moves[i].Score != moves[j].Score {
			return moves[i].Score > moves[j].Score
		}
		if moves[i].Piece != moves[j].Piece {
			return moves[i].Piece < moves[j].Piece
		}
		if moves[i].To.Rank != moves[j].To.Rank {
			return moves[i].To.Rank < moves[j].To.Rank
		}
		return moves[i].To.File < moves[j].To.File
	})
}

// orderRootMoves 根节点排序：吃子 > 将军 > 其余。
// 同一优先级内部先洗牌再稳定排序，排序只影响剪枝效率不影响结果。
// 上一轮搜索在同一局面下的最佳着法（TT 提示）最后提到队首。
func (e *Engine) orderRootMoves(root *xiangqi.State, moves []xiangqi.Move) {
	e.shuffle(moves)

	class := make(map[xiangqi.Move]int, len(moves))
	for _, mv := range moves {
		child := root.Clone()
		captured, err := child.ApplyMove(mv.Piece, mv.To)
		if err != nil {
			class[mv] = 2
			continue
		}
		switch {
		case captured != xiangqi.NoPiece:
			class[mv] = 0
		case child.Checked:
			class[mv] = 1
		default:
			class[mv] = 2
		}
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return class[moves[i]] < class[moves[j]]
	})

	if entry, ok := e.tt[root.Hash]; ok {
		for i := range moves {
			if moves[i].Piece == entry.Move.Piece && moves[i].To == entry.Move.To {
				mv := moves[i]
				copy(moves[1:i+1], moves[:i])
				moves[0] = mv
				break
			}
		}
	}
}

// 内层节点用的粗排序：吃子步整体提前，其余保持原序。
func orderCapturesFirst(pos *xiangqi.State, moves []xiangqi.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		ci := pos.PieceAt(moves[i].To) != nil
		cj := pos.PieceAt(moves[j].To) != nil
		return ci && !cj
	})
}

func expired(deadline time.Time) bool {
	return !deadline.IsZero() && time.Now().After(deadline)
}
