package xiangqi

import "sync"

const zobristPieceTypes = 8 // PieceType 范围 [1..7]，0 保留空位不用

var (
	zobristOnce sync.Once

	zobristPieces [2][zobristPieceTypes][NumSquares]uint64
	zobristSide   uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for pt := 1; pt < zobristPieceTypes; pt++ {
				for sq := 0; sq < NumSquares; sq++ {
					zobristPieces[side][pt][sq] = next()
				}
			}
		}
		zobristSide = next()
	})
}

func pieceHashKey(side Side, pt PieceType, sq int) uint64 {
	initZobrist()
	if side != Red && side != Black {
		return 0
	}
	if pt <= 0 || int(pt) >= zobristPieceTypes || sq < 0 || sq >= NumSquares {
		return 0
	}
	return zobristPieces[side][pt][sq]
}

// CalculateHash 全量计算当前局面的 Zobrist 哈希。
// 正常走子用增量维护，这个只在建盘/反序列化和测试校验时用。
func (s *State) CalculateHash() uint64 {
	initZobrist()

	var h uint64
	for i := range s.Pieces {
		pc := &s.Pieces[i]
		if !pc.Alive {
			continue
		}
		h ^= pieceHashKey(pc.Side, pc.Type, squareIndex(pc.Pos))
	}
	if s.Turn == Black {
		h ^= zobristSide
	}
	return h
}
