package httpserver

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// WatchEvent 观战端收到的单条消息
type WatchEvent struct {
	Type     string   `json:"type"` // "snapshot" / "move" / "ai_move"
	GameID   string   `json:"game_id"`
	Move     *MoveDTO `json:"move,omitempty"`
	Position string   `json:"position"`
	Turn     string   `json:"turn"`
	Checked  bool     `json:"checked"`
	Status   string   `json:"status"`
}

type watchClient struct {
	conn *websocket.Conn
	send chan []byte
}

func (c *watchClient) sendEvent(ev WatchEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	// 慢客户端直接丢消息，绝不反压到走子路径
	select {
	case c.send <- data:
	default:
	}
}

// WatchHub 按对局分房间广播。没人观战时 Broadcast 是空操作。
type WatchHub struct {
	mu    sync.Mutex
	rooms map[string]map[*watchClient]struct{}
}

func NewWatchHub() *WatchHub {
	return &WatchHub{rooms: make(map[string]map[*watchClient]struct{})}
}

func (h *WatchHub) Broadcast(gameID string, ev WatchEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.rooms[gameID] {
		c.sendEvent(ev)
	}
}

func (h *WatchHub) register(gameID string, c *watchClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[gameID]
	if !ok {
		room = make(map[*watchClient]struct{})
		h.rooms[gameID] = room
	}
	room[c] = struct{}{}
}

func (h *WatchHub) unregister(gameID string, c *watchClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[gameID]
	if !ok {
		return
	}
	if _, ok := room[c]; ok {
		delete(room, c)
		close(c.send)
	}
	if len(room) == 0 {
		delete(h.rooms, gameID)
	}
}

var watchUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // 本地服务，放开跨域
}

// ServeWatch 把连接升级成 websocket 并挂进对局房间。
// initial 作为首条 snapshot 立刻发下去，之后只推增量事件。
func (h *WatchHub) ServeWatch(w http.ResponseWriter, r *http.Request, gameID string, initial WatchEvent) {
	conn, err := watchUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	c := &watchClient{conn: conn, send: make(chan []byte, 16)}
	h.register(gameID, c)
	c.sendEvent(initial)

	go func() {
		defer conn.Close()
		for data := range c.send {
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		}
	}()

	// 读循环只为感知断线，观战端不该发任何东西
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.unregister(gameID, c)
			return
		}
	}
}
