package main

import (
	"fmt"

	"github.com/lx719679895/chinese-chess-trae/internal/engine"
	"github.com/lx719679895/chinese-chess-trae/internal/xiangqi"
)

func main() {
	s := xiangqi.NewGameState()
	fmt.Println("FEN:", s.Encode())
	moves := s.AllLegalMoves(s.Turn)
	fmt.Println("Legal moves:", len(moves))
	fmt.Println("Eval (red):", engine.Evaluate(s, xiangqi.Red))
}
