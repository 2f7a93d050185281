package game

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lx719679895/chinese-chess-trae/internal/xiangqi"
)

var ErrNotFound = errors.New("game not found")

// Manager 内存对局表。本地单机玩足够了，不落盘。
type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

func (m *Manager) NewGame() *GameState {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	g := &GameState{
		ID:        id,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		state:     xiangqi.NewGameState(),
	}
	m.games[id] = g
	return g
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	return g, nil
}

func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
