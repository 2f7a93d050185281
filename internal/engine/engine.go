package engine

import (
	"math/rand"
	"time"

	"github.com/lx719679895/chinese-chess-trae/internal/xiangqi"
)

// Difficulty AI 档位，强度严格递增：随机 < 一步贪心 < 迭代加深 alpha-beta。
type Difficulty int8

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return "unknown"
}

// ParseDifficulty 解析 "easy"/"medium"/"hard"。
func ParseDifficulty(s string) (Difficulty, bool) {
	switch s {
	case "easy":
		return Easy, true
	case "medium":
		return Medium, true
	case "hard":
		return Hard, true
	}
	return Easy, false
}

// Engine 每次 ChooseMove 都是一次全新搜索，调用之间不保留任何影响结果的
// 状态。tt 只用来把上一轮搜到的最佳着法提到排序最前面，清掉它结果不变。
type Engine struct {
	tt    map[uint64]ttEntry
	nodes int64

	// rng 是唯一的随机源。置 nil 就完全确定（测试用）。
	// 随机只出现在同优先级着法洗牌和最终 top-K 挑选里，这是有意的
	// 反预测设计，不是 bug。
	rng *rand.Rand
}

func NewEngine() *Engine {
	return &Engine{
		tt:  make(map[uint64]ttEntry, 1<<14),
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetRandom 注入随机源；传 nil 禁用一切随机（结果完全确定）。
func (e *Engine) SetRandom(r *rand.Rand) { e.rng = r }

// ClearTT 清空排序提示表。对搜索结果没有影响，只影响剪枝效率。
func (e *Engine) ClearTT() { e.tt = make(map[uint64]ttEntry, 1<<14) }

// MoveChoice：一次选子的结果。HasMove 为 false 表示无棋可走，
// 终局判定由调用方再问 GameOutcome（两者必须一致）。
type MoveChoice struct {
	Move    xiangqi.Move
	HasMove bool
	Score   int
	Depth   int
	Nodes   int64
	Elapsed time.Duration
}

// ChooseMove 是 AI 的唯一入口。state 不会被改动：搜索全部在克隆上进行。
func (e *Engine) ChooseMove(state *xiangqi.State, side xiangqi.Side, d Difficulty) MoveChoice {
	return e.ChooseMoveWith(state, side, d, SearchConfig{})
}

// ChooseMoveWith 同上，但允许覆盖困难档的搜索参数。
func (e *Engine) ChooseMoveWith(state *xiangqi.State, side xiangqi.Side, d Difficulty, cfg SearchConfig) MoveChoice {
	// 防御：side 和轮走方不一致时在克隆上纠正，不碰调用方的局面。
	if state.Turn != side {
		state = state.Clone()
		state.Turn = side
		state.Hash = state.CalculateHash()
	}

	switch d {
	case Easy:
		return e.chooseRandom(state)
	case Medium:
		return e.chooseGreedy(state)
	default:
		return e.search(state, cfg)
	}
}

// ChooseMoveAsync 在后台任务里跑搜索，结果从通道拿。困难档最长会跑满
// 时间预算，交互线程别直接调同步版。搜索期间调用方不得改动 state，
// 契约和同步版一样。
func (e *Engine) ChooseMoveAsync(state *xiangqi.State, side xiangqi.Side, d Difficulty, cfg SearchConfig) <-chan MoveChoice {
	out := make(chan MoveChoice, 1)
	go func() {
		out <- e.ChooseMoveWith(state, side, d, cfg)
		close(out)
	}()
	return out
}

// pickUniform 从 moves 里等概率挑一个；rng 为 nil 时取第一个。
func (e *Engine) pickUniform(moves []xiangqi.Move) xiangqi.Move {
	if e.rng == nil {
		return moves[0]
	}
	return moves[e.rng.Intn(len(moves))]
}

// shuffle 原地洗牌；rng 为 nil 时保持原顺序。
func (e *Engine) shuffle(moves []xiangqi.Move) {
	if e.rng == nil {
		return
	}
	e.rng.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})
}
