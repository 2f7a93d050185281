package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/lx719679895/chinese-chess-trae/internal/engine"
	"github.com/lx719679895/chinese-chess-trae/internal/server/game"
	"github.com/lx719679895/chinese-chess-trae/internal/xiangqi"
)

// Handler 持有对局表、AI 引擎和观战广播。所有 /api/* 路由都挂在它上面。
type Handler struct {
	games *game.Manager
	ai    *engine.Engine
	hub   *WatchHub
}

func NewHandler() *Handler {
	return &Handler{
		games: game.NewManager(),
		ai:    engine.NewEngine(),
		hub:   NewWatchHub(),
	}
}

func (h *Handler) Engine() *engine.Engine { return h.ai }

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}

// lookupGame 统一的取局 + 404
func (h *Handler) lookupGame(w http.ResponseWriter, id string) *game.GameState {
	g, err := h.games.Get(id)
	if err != nil {
		if errors.Is(err, game.ErrNotFound) {
			http.Error(w, "game not found", http.StatusNotFound)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return nil
	}
	return g
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, StatusResponse{Games: h.games.Count()})
}

func (h *Handler) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	var req DeleteGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	g := h.lookupGame(w, req.GameID)
	if g == nil {
		return
	}
	h.games.Remove(g.ID)
	log.Printf("deleted game %s", g.ID)
	writeJSON(w, DeleteGameResponse{GameID: g.ID, Deleted: true})
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	g := h.games.NewGame()
	s := g.View()
	log.Printf("new game %s", g.ID)
	writeJSON(w, gameReply(g.ID, s))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	g := h.lookupGame(w, req.GameID)
	if g == nil {
		return
	}
	writeJSON(w, gameReply(g.ID, g.View()))
}

func (h *Handler) handleLegalMoves(w http.ResponseWriter, r *http.Request) {
	var req LegalMovesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	g := h.lookupGame(w, req.GameID)
	if g == nil {
		return
	}

	s := g.View()
	pc := s.Piece(xiangqi.PieceID(req.Piece))
	if pc == nil {
		http.Error(w, "no such piece", http.StatusBadRequest)
		return
	}

	resp := LegalMovesResponse{GameID: g.ID, Piece: req.Piece}
	if pc.Alive && pc.Side == s.Turn && s.Outcome == xiangqi.OutcomeOngoing {
		for _, to := range s.LegalMoves(pc.ID) {
			resp.Moves = append(resp.Moves, MoveDTO{Piece: req.Piece, File: to.File, Rank: to.Rank})
		}
	}
	writeJSON(w, resp)
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	g := h.lookupGame(w, req.GameID)
	if g == nil {
		return
	}

	s := g.Lock()
	defer g.Unlock()

	if s.Outcome != xiangqi.OutcomeOngoing {
		http.Error(w, "game already finished", http.StatusConflict)
		return
	}

	id := xiangqi.PieceID(req.Move.Piece)
	to := xiangqi.Pos{File: req.Move.File, Rank: req.Move.Rank}
	// IsLegalMove 不管轮次，轮次在这儿把关
	if pc := s.Piece(id); pc == nil || !pc.Alive || pc.Side != s.Turn {
		http.Error(w, "illegal move", http.StatusBadRequest)
		return
	}
	if !s.IsLegalMove(id, to) {
		http.Error(w, "illegal move", http.StatusBadRequest)
		return
	}
	if _, err := s.ApplyMove(id, to); err != nil {
		// IsLegalMove 刚刚点过头，到这儿还错就是内部不一致
		log.Printf("game %s: apply after legality check failed: %v", g.ID, err)
		http.Error(w, "apply move failed", http.StatusInternalServerError)
		return
	}
	s.RefreshStatus()

	reply := gameReply(g.ID, s)
	h.hub.Broadcast(g.ID, WatchEvent{
		Type:     "move",
		GameID:   g.ID,
		Move:     &req.Move,
		Position: reply.Position,
		Turn:     reply.Turn,
		Checked:  reply.Checked,
		Status:   reply.Status,
	})
	writeJSON(w, reply)
}

func (h *Handler) handleAiMove(w http.ResponseWriter, r *http.Request) {
	var req AiMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	g := h.lookupGame(w, req.GameID)
	if g == nil {
		return
	}

	difficulty := engine.Hard
	if req.Difficulty != "" {
		d, ok := engine.ParseDifficulty(req.Difficulty)
		if !ok {
			http.Error(w, "unknown difficulty", http.StatusBadRequest)
			return
		}
		difficulty = d
	}

	cfg := engine.SearchConfig{MaxDepth: req.MaxDepth}
	if req.TimeMs > 0 {
		cfg.TimeLimit = time.Duration(req.TimeMs) * time.Millisecond
	}

	// 搜索可能跑满时间预算，不能捏着对局锁思考：
	// 先拿克隆去搜，落子前再确认局面没被别人动过。
	before := g.View()
	if before.Outcome != xiangqi.OutcomeOngoing {
		writeJSON(w, AiMoveResponse{GameReply: gameReply(g.ID, before)})
		return
	}
	baseline := before.Encode()

	res := <-h.ai.ChooseMoveAsync(before, before.Turn, difficulty, cfg)

	s := g.Lock()
	defer g.Unlock()

	if s.Encode() != baseline {
		http.Error(w, "game advanced during search", http.StatusConflict)
		return
	}

	resp := AiMoveResponse{
		Score:  res.Score,
		Depth:  res.Depth,
		Nodes:  res.Nodes,
		TimeMs: res.Elapsed.Milliseconds(),
	}
	if !res.HasMove {
		// 无棋可走：终局判定兜底，不落子
		s.RefreshStatus()
		resp.GameReply = gameReply(g.ID, s)
		writeJSON(w, resp)
		return
	}

	if _, err := s.ApplyMove(res.Move.Piece, res.Move.To); err != nil {
		log.Printf("game %s: ai move rejected: %v", g.ID, err)
		http.Error(w, "ai move failed", http.StatusInternalServerError)
		return
	}
	s.RefreshStatus()

	mv := moveToDTO(res.Move)
	resp.Move = &mv
	resp.GameReply = gameReply(g.ID, s)
	h.hub.Broadcast(g.ID, WatchEvent{
		Type:     "ai_move",
		GameID:   g.ID,
		Move:     &mv,
		Position: resp.Position,
		Turn:     resp.Turn,
		Checked:  resp.Checked,
		Status:   resp.Status,
	})
	writeJSON(w, resp)
}
