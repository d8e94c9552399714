package minimax

import (
	"context"
	"fmt"
	"math"

	"github.com/brianbob12/chess-with-llm/internal/eventlog"
	"github.com/brianbob12/chess-with-llm/pkg/chess"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"golang.org/x/sync/errgroup"
)

// Core is the budgeted, parallel, cache-coordinated minimax search.
// It is safe for concurrent use: ChooseMove/minimax may be called
// concurrently for overlapping or unrelated states, and transpositions
// reached from different callers share the same in-flight computation.
type Core struct {
	Cost     CostSetup
	Provider Provider

	// Serial disables parallel child expansion in favor of live alpha-beta
	// pruning, e.g. to respect oracle rate limits.
	Serial bool

	Log *eventlog.Writer

	minimax   *minimaxCache
	successor *successorsCache
}

// NewCore constructs a Core. log may be nil to disable JSONL iteration
// logging.
func NewCore(cost CostSetup, provider Provider, log *eventlog.Writer) *Core {
	return &Core{
		Cost:      cost,
		Provider:  provider,
		Log:       log,
		minimax:   newMinimaxCache(),
		successor: newSuccessorsCache(),
	}
}

// ChooseMove picks the best move for state.ToMove. The root always expands
// children in parallel, regardless of Serial.
func (c *Core) ChooseMove(ctx context.Context, state chess.GameState) (chess.Move, error) {
	hash := chess.Hash(state)

	successors, _, err := c.successor.get(hash, func() ([]Successor, error) {
		return c.Provider.Successors(ctx, state)
	})
	if err != nil {
		return chess.Move{}, fmt.Errorf("minimax: root successors: %w", err)
	}
	if len(successors) == 0 {
		return chess.Move{}, fmt.Errorf("minimax: %w", ErrNoSuccessors)
	}

	values := make([]float64, len(successors))
	g, gctx := errgroup.WithContext(ctx)
	for i, succ := range successors {
		i, succ := i, succ
		g.Go(func() error {
			v, _, err := c.minimax(gctx, succ.NextState, c.Cost.TotalBudget*succ.Probability, 1)
			if err != nil {
				return err
			}
			values[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return chess.Move{}, err
	}

	idx := selectRootIndex(values, state.ToMove == chess.White)
	logw.Infof(ctx, "chooseMove: %v candidates, selected %v (value=%.4f)", len(successors), successors[idx].Move, values[idx])
	return successors[idx].Move, nil
}

// selectRootIndex applies the root's documented tie-break: on ties,
// the max (white-to-move) reduction keeps the first child; the min
// (black-to-move) reduction keeps the last.
func selectRootIndex(values []float64, maximizing bool) int {
	best := 0
	for i := 1; i < len(values); i++ {
		if maximizing {
			if values[i] > values[best] {
				best = i
			}
		} else {
			if values[i] <= values[best] {
				best = i
			}
		}
	}
	return best
}

// minimax evaluates state at the given budget and ply depth, honoring the
// minimax cache's single-flight/budget-upgrade discipline.
func (c *Core) minimax(ctx context.Context, state chess.GameState, budget float64, depth int) (value float64, usedBudget float64, err error) {
	hash := chess.Hash(state)

	slot, owner := c.minimax.probeOrPublish(hash, budget)
	if !owner {
		v, err := slot.future.await(ctx)
		return v, 0, err
	}

	value, usedBudget, err = c.computeNode(ctx, state, hash, budget, depth)
	slot.future.resolve(value, err)
	return value, usedBudget, err
}

func (c *Core) computeNode(ctx context.Context, state chess.GameState, hash chess.StateHash, budget float64, depth int) (float64, float64, error) {
	if contextx.IsCancelled(ctx) {
		return 0, 0, ctx.Err()
	}

	usedBudget := c.Cost.BasicMinimaxCost

	eg := chess.DetectEndgame(state)
	if cmColor, ok := eg.Checkmate.V(); ok {
		value := 1.0
		if cmColor == chess.White {
			value = -1.0
		}
		c.logIter(ctx, depth, value, usedBudget, hash)
		return value, usedBudget, nil
	}

	maximizing := state.ToMove == chess.White

	isLeaf := depth >= c.Cost.MaxDepth
	var realizedGetSuccessorsCost float64
	estimated := c.Provider.EstimatedSuccessorCount()
	if cached, ok := c.successor.peek(hash); ok {
		estimated = len(cached)
	} else {
		realizedGetSuccessorsCost = c.Cost.GetSuccessorsCost
	}
	if !isLeaf && !eg.Draw {
		needed := usedBudget + realizedGetSuccessorsCost + float64(estimated)*c.Cost.StateEvaluationCost
		isLeaf = budget < needed
	}
	if eg.Draw {
		isLeaf = true
	}

	if isLeaf {
		usedBudget += c.Cost.StateEvaluationCost
		value, err := c.Provider.Evaluate(ctx, state)
		if err != nil {
			return 0, usedBudget, err
		}
		c.logEval(ctx, depth, value, usedBudget, hash)
		return value, usedBudget, nil
	}

	successors, wasCached, err := c.successor.get(hash, func() ([]Successor, error) {
		return c.Provider.Successors(ctx, state)
	})
	if !wasCached {
		usedBudget += realizedGetSuccessorsCost
	}
	if err != nil {
		return 0, usedBudget, err
	}
	if len(successors) == 0 {
		return 0, usedBudget, ErrNoSuccessors
	}

	remaining := budget - usedBudget
	if remaining < 0 {
		remaining = 0
	}

	var value float64
	var childUsed float64
	if c.Serial {
		value, childUsed, err = c.expandSerial(ctx, successors, remaining, depth, maximizing)
	} else {
		value, childUsed, err = c.expandParallel(ctx, successors, remaining, depth)
	}
	usedBudget += childUsed
	if err != nil {
		return 0, usedBudget, err
	}

	c.logIter(ctx, depth, value, usedBudget, hash)
	return value, usedBudget, nil
}

// expandParallel launches every child concurrently with no pruning
// (alpha=-inf, beta=+inf), the default mode.
func (c *Core) expandParallel(ctx context.Context, successors []Successor, remaining float64, depth int) (float64, float64, error) {
	values := make([]float64, len(successors))
	useds := make([]float64, len(successors))

	g, gctx := errgroup.WithContext(ctx)
	for i, succ := range successors {
		i, succ := i, succ
		g.Go(func() error {
			v, used, err := c.minimax(gctx, succ.NextState, remaining*succ.Probability, depth+1)
			if err != nil {
				return err
			}
			values[i] = v
			useds[i] = used
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, 0, err
	}

	total := 0.0
	for _, u := range useds {
		total += u
	}
	return foldValues(values, successors), total, nil
}

// expandSerial iterates children in order with live alpha/beta, pruning
// when beta <= alpha. Returns the same value as expandParallel in the
// absence of cutoffs; may be tighter with them.
func (c *Core) expandSerial(ctx context.Context, successors []Successor, remaining float64, depth int, maximizing bool) (float64, float64, error) {
	alpha, beta := math.Inf(-1), math.Inf(1)

	value := math.Inf(-1)
	if !maximizing {
		value = math.Inf(1)
	}
	total := 0.0

	for _, succ := range successors {
		v, used, err := c.minimax(ctx, succ.NextState, remaining*succ.Probability, depth+1)
		if err != nil {
			return 0, 0, err
		}
		total += used

		if maximizing {
			if v > value {
				value = v
			}
			if value > alpha {
				alpha = value
			}
		} else {
			if v < value {
				value = v
			}
			if value < beta {
				beta = value
			}
		}
		if beta <= alpha {
			break
		}
	}
	return value, total, nil
}

// foldValues reduces the child values by the parent's side to move, the
// side doing the choosing: max when white chooses, min when black chooses.
// The parent's color is read off the successors, whose side to move is the
// parent's opponent. All successors share the same parent, hence the same
// direction.
func foldValues(values []float64, successors []Successor) float64 {
	if len(successors) == 0 {
		return 0
	}
	parentIsWhite := successors[0].NextState.ToMove == chess.Black
	if parentIsWhite {
		best := values[0]
		for _, v := range values[1:] {
			if v > best {
				best = v
			}
		}
		return best
	}
	best := values[0]
	for _, v := range values[1:] {
		if v < best {
			best = v
		}
	}
	return best
}
