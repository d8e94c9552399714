package minimax

import (
	"context"

	"github.com/brianbob12/chess-with-llm/pkg/chess"
)

// ExportedMinimaxForTest exposes Core.minimax to external tests, which need
// to drive individual cache-coordinated nodes directly to exercise
// single-flight and budget-upgrade behavior below the level of ChooseMove.
func ExportedMinimaxForTest(c *Core, ctx context.Context, state chess.GameState, budget float64, depth int) (float64, float64, error) {
	return c.minimax(ctx, state, budget, depth)
}
