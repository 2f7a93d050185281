package engine

import "github.com/lx719679895/chinese-chess-trae/internal/xiangqi"

// ttEntry 只存“这个局面上一次搜出来的最佳着法”，下次搜同一局面时
// 提到排序最前面。有意不存分数：缓存分数会让结果依赖缓存内容，
// 这里的契约是清掉 TT 结果也一模一样。
type ttEntry struct {
	Depth int
	Move  xiangqi.Move
}

const ttCap = 1_000_000

func (e *Engine) storeTT(key uint64, depth int, mv xiangqi.Move) {
	if len(e.tt) > ttCap {
		e.tt = make(map[uint64]ttEntry, 1<<14)
	}
	old, ok := e.tt[key]
	if !ok || depth >= old.Depth {
		e.tt[key] = ttEntry{Depth: depth, Move: mv}
	}
}
