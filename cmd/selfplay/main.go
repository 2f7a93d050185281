package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/lx719679895/chinese-chess-trae/internal/engine"
	"github.com/lx719679895/chinese-chess-trae/internal/xiangqi"
)

func main() {
	redLevel := flag.String("red", "hard", "red difficulty: easy/medium/hard")
	blackLevel := flag.String("black", "hard", "black difficulty: easy/medium/hard")
	depth := flag.Int("depth", 4, "search depth (hard only)")
	timeMs := flag.Int64("time", 1500, "time budget per move in ms (hard only)")
	maxMoves := flag.Int("maxmoves", 200, "max plies to play")
	flag.Parse()

	red, ok := engine.ParseDifficulty(*redLevel)
	if !ok {
		log.Fatalf("unknown difficulty %q", *redLevel)
	}
	black, ok := engine.ParseDifficulty(*blackLevel)
	if !ok {
		log.Fatalf("unknown difficulty %q", *blackLevel)
	}

	// pprof：调参的时候看搜索热点用
	go func() {
		log.Println("pprof listening on :6060")
		if err := http.ListenAndServe("localhost:6060", nil); err != nil {
			log.Printf("pprof failed: %v", err)
		}
	}()

	e := engine.NewEngine()
	cfg := engine.SearchConfig{
		MaxDepth:  *depth,
		TimeLimit: time.Duration(*timeMs) * time.Millisecond,
	}

	s := xiangqi.NewGameState()
	for i := 0; i < *maxMoves; i++ {
		difficulty := red
		if s.Turn == xiangqi.Black {
			difficulty = black
		}
		log.Printf("--- Ply %d, Side: %v (%v) ---", i+1, s.Turn, difficulty)

		res := e.ChooseMoveWith(s, s.Turn, difficulty, cfg)
		if !res.HasMove {
			log.Printf("Game over: no moves.")
			break
		}

		nps := int64(0)
		if secs := res.Elapsed.Seconds(); secs > 0 {
			nps = int64(float64(res.Nodes) / secs)
		}
		fmt.Printf("Move: %d->(%d,%d), Score: %d, Depth: %d, Nodes: %d, Time: %v, NPS: %d\n",
			res.Move.Piece, res.Move.To.File, res.Move.To.Rank,
			res.Score, res.Depth, res.Nodes, res.Elapsed, nps)

		if _, err := s.ApplyMove(res.Move.Piece, res.Move.To); err != nil {
			log.Fatalf("Failed to apply move %+v: %v", res.Move, err)
		}
		if outcome := s.RefreshStatus(); outcome != xiangqi.OutcomeOngoing {
			log.Printf("Game over: %v", outcome)
			break
		}
	}

	log.Println("Selfplay finished.")
	os.Exit(0)
}
