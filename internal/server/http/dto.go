package httpserver

import (
	"github.com/lx719679895/chinese-chess-trae/internal/xiangqi"
)

// 前端用的着法结构：棋子 ID + 落点
type MoveDTO struct {
	Piece int `json:"piece"`
	File  int `json:"file"`
	Rank  int `json:"rank"`
}

func moveToDTO(m xiangqi.Move) MoveDTO {
	return MoveDTO{Piece: int(m.Piece), File: m.To.File, Rank: m.To.Rank}
}

func movesToDTO(ms []xiangqi.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(m)
	}
	return out
}

// GameReply 各接口共用的局面视图
type GameReply struct {
	GameID     string           `json:"game_id"`
	Position   string           `json:"position"` // FEN 字符串
	Board      xiangqi.Snapshot `json:"board"`
	Turn       string           `json:"turn"`
	Checked    bool             `json:"checked"`
	Status     string           `json:"status"` // "ongoing" / "red_wins" / "black_wins"
	LegalMoves []MoveDTO        `json:"legal_moves"`
}

func gameReply(id string, s *xiangqi.State) GameReply {
	var legal []xiangqi.Move
	if s.Outcome == xiangqi.OutcomeOngoing {
		legal = s.AllLegalMoves(s.Turn)
	}
	return GameReply{
		GameID:     id,
		Position:   s.Encode(),
		Board:      s.Snapshot(),
		Turn:       s.Turn.String(),
		Checked:    s.Checked,
		Status:     s.Outcome.String(),
		LegalMoves: movesToDTO(legal),
	}
}

// State 请求：前端刷新时用 game_id 来要当前盘面
type StateRequest struct {
	GameID string `json:"game_id"`
}

// 服务器概况，前端健康检查用
type StatusResponse struct {
	Games int `json:"games"`
}

// DeleteGame 请求：对局收尾后让服务端忘掉它
type DeleteGameRequest struct {
	GameID string `json:"game_id"`
}

type DeleteGameResponse struct {
	GameID  string `json:"game_id"`
	Deleted bool   `json:"deleted"`
}

// Play 请求
type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

// LegalMoves 请求：问某个子当前能走哪些格
type LegalMovesRequest struct {
	GameID string `json:"game_id"`
	Piece  int    `json:"piece"`
}

type LegalMovesResponse struct {
	GameID string    `json:"game_id"`
	Piece  int       `json:"piece"`
	Moves  []MoveDTO `json:"moves"`
}

// AiMoveRequest 请求让 AI 替当前轮走方走一步
type AiMoveRequest struct {
	GameID     string `json:"game_id"`
	Difficulty string `json:"difficulty"` // "easy" / "medium" / "hard"，空值按 hard
	MaxDepth   int    `json:"max_depth"`  // 只对 hard 生效
	TimeMs     int64  `json:"time_ms"`    // 只对 hard 生效
}

type AiMoveResponse struct {
	GameReply

	Move   *MoveDTO `json:"move"` // null 表示没走（无棋可走或对局已结束）
	Score  int      `json:"score"`
	Depth  int      `json:"depth"`
	Nodes  int64    `json:"nodes"`
	TimeMs int64    `json:"time_ms"`
}
