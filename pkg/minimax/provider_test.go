package minimax_test

import (
	"context"
	"sync/atomic"

	"github.com/brianbob12/chess-with-llm/pkg/chess"
	"github.com/brianbob12/chess-with-llm/pkg/minimax"
)

// fakeProvider is a deterministic Provider stand-in: Successors enumerates
// every legal move with uniform probability, and Evaluate scores purely by
// material, both counted against calls so tests can assert single-flight
// behavior.
type fakeProvider struct {
	evalCalls   int64
	succCalls   int64
	evalValue   func(chess.GameState) float64
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{}
}

func (p *fakeProvider) Evaluate(ctx context.Context, state chess.GameState) (float64, error) {
	atomic.AddInt64(&p.evalCalls, 1)
	if p.evalValue != nil {
		return p.evalValue(state), nil
	}
	return materialScore(state), nil
}

func (p *fakeProvider) Successors(ctx context.Context, state chess.GameState) ([]minimax.Successor, error) {
	atomic.AddInt64(&p.succCalls, 1)
	moves := chess.LegalMoves(state, state.ToMove)
	out := make([]minimax.Successor, 0, len(moves))
	if len(moves) == 0 {
		return out, nil
	}
	p1 := 1.0 / float64(len(moves))
	for _, m := range moves {
		out = append(out, minimax.Successor{
			NextState:   chess.Apply(state, m),
			Move:        m,
			Probability: p1,
		})
	}
	return out, nil
}

func (p *fakeProvider) EstimatedSuccessorCount() int {
	return 20
}

func materialScore(s chess.GameState) float64 {
	value := map[chess.PieceType]float64{
		chess.Pawn: 1, chess.Knight: 3, chess.Bishop: 3, chess.Rook: 5, chess.Queen: 9,
	}
	var total float64
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			cell := s.Board[r][c]
			if !cell.Occupied {
				continue
			}
			v := value[cell.Type]
			if cell.Color == chess.Black {
				v = -v
			}
			total += v
		}
	}
	return total / 39.0
}
