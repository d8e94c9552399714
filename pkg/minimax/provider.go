package minimax

import (
	"context"

	"github.com/brianbob12/chess-with-llm/pkg/chess"
)

// Successor is a candidate next state annotated with the move taken and
// the probability the Provider assigns to it. Across one call's results,
// probabilities sum to 1.
type Successor struct {
	NextState   chess.GameState
	Move        chess.Move
	Probability float64
}

// Provider supplies the two expensive oracle tasks the core depends on:
// leaf evaluation and successor proposal. An LLM-backed implementation is
// pkg/llmagent.Agent; a deterministic stand-in is used in tests.
type Provider interface {
	// Evaluate returns a leaf value for state. Checkmated states never reach
	// Evaluate — the core resolves checkmate directly to +/-1; stalemated
	// states are evaluated as leaves.
	Evaluate(ctx context.Context, state chess.GameState) (float64, error)

	// Successors returns the candidate next states for state, with
	// probabilities summing to 1. An empty, error-free result is treated
	// as ErrNoSuccessors by the core.
	Successors(ctx context.Context, state chess.GameState) ([]Successor, error)

	// EstimatedSuccessorCount is the branching factor assumed when a
	// state's successors are not yet cached, for leaf-vs-expand budgeting.
	EstimatedSuccessorCount() int
}
