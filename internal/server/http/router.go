package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter 把 API、观战 websocket 和静态资源都挂好。
// webDir / mobileDir 传空串就不挂静态路由（测试和 selfplay 用）。
func NewRouter(h *Handler, webDir, mobileDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/status", h.handleStatus)
	r.Post("/api/new_game", h.handleNewGame)
	r.Post("/api/delete_game", h.handleDeleteGame)
	r.Post("/api/state", h.handleState)
	r.Post("/api/play", h.handlePlay)
	r.Post("/api/legal_moves", h.handleLegalMoves)
	r.Post("/api/ai_move", h.handleAiMove)

	r.Get("/api/watch/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "id")
		g := h.lookupGame(w, id)
		if g == nil {
			return
		}
		reply := gameReply(g.ID, g.View())
		h.hub.ServeWatch(w, req, g.ID, WatchEvent{
			Type:     "snapshot",
			GameID:   g.ID,
			Position: reply.Position,
			Turn:     reply.Turn,
			Checked:  reply.Checked,
			Status:   reply.Status,
		})
	})

	if webDir != "" {
		registerStaticRoutes(r, webDir, mobileDir)
	}
	return r
}
