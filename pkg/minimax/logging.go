package minimax

import (
	"context"

	"github.com/brianbob12/chess-with-llm/internal/eventlog"
	"github.com/brianbob12/chess-with-llm/pkg/chess"
	"github.com/seekerror/logw"
)

func (c *Core) logEval(ctx context.Context, depth int, value, usedBudget float64, hash chess.StateHash) {
	logw.Debugf(ctx, "evaluate: depth=%v value=%.4f usedBudget=%.2f", depth, value, usedBudget)
	c.Log.Write(eventlog.StateEvaluation{
		Kind:       "stateEvaluation",
		Depth:      depth,
		Value:      value,
		UsedBudget: usedBudget,
		StateHash:  string(hash),
	})
}

func (c *Core) logIter(ctx context.Context, depth int, value, usedBudget float64, hash chess.StateHash) {
	logw.Debugf(ctx, "minimax: depth=%v value=%.4f usedBudget=%.2f", depth, value, usedBudget)
	c.Log.Write(eventlog.MinimaxIter{
		Kind:       "minimaxIter",
		Depth:      depth,
		Value:      value,
		UsedBudget: usedBudget,
		StateHash:  string(hash),
	})
}
