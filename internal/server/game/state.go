package game

import (
	"sync"
	"time"

	"github.com/lx719679895/chinese-chess-trae/internal/xiangqi"
)

// GameState 一局棋。mu 保护 State：走子和 AI 请求可能并发打到同一局上。
type GameState struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time

	mu    sync.Mutex
	state *xiangqi.State
}

// Lock 拿住这局棋的锁并返回当前局面。调用方改完必须 Unlock。
func (g *GameState) Lock() *xiangqi.State {
	g.mu.Lock()
	return g.state
}

func (g *GameState) Unlock() {
	g.UpdatedAt = time.Now()
	g.mu.Unlock()
}

// View 返回当前局面的克隆，随便读，不用持锁。
func (g *GameState) View() *xiangqi.State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Clone()
}
