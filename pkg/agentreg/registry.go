package agentreg

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/brianbob12/chess-with-llm/internal/eventlog"
	"github.com/brianbob12/chess-with-llm/pkg/chess"
	"github.com/brianbob12/chess-with-llm/pkg/llmagent"
	"github.com/brianbob12/chess-with-llm/pkg/minimax"
	"github.com/brianbob12/chess-with-llm/pkg/oracle"
	"github.com/seekerror/logw"
)

// Registry binds the minimax descriptors to concrete, cache-warm Core
// instances, constructed once and reused across calls so transposition and
// description caches carry over between moves within a game.
type Registry struct {
	cores map[Descriptor]*minimax.Core
}

// New constructs a Registry with an HTTPOracle-backed minimax agent bound
// to each of MinimaxGPT35/MinimaxGPT4, logging oracle calls and minimax
// iterations to log (which may be nil to disable JSONL logging).
func New(log *eventlog.Writer) *Registry {
	r := &Registry{cores: map[Descriptor]*minimax.Core{}}
	for d, model := range map[Descriptor]oracle.Model{
		MinimaxGPT35: oracle.GPT35,
		MinimaxGPT4:  oracle.GPT4,
	} {
		o := oracle.NewHTTPOracle(oracle.ConfigFromEnv(model))
		agent := llmagent.NewAgent(o, llmagent.DefaultConfig(model), log)
		r.cores[d] = minimax.NewCore(minimax.DefaultCostSetup(), agent, log)
	}
	return r
}

// CallAgent is the registry's entry point: it resolves a descriptor to a
// move for state, dispatching to a human stub error, a uniform-random
// choice, or a bound minimax Core.
func (r *Registry) CallAgent(ctx context.Context, state chess.GameState, d Descriptor) (chess.Move, error) {
	switch d {
	case Human:
		return chess.Move{}, fmt.Errorf("agentreg: %w: human must be driven by the caller's UI", ErrIllegalDescriptor)
	case Random:
		return r.random(state)
	case MinimaxGPT35, MinimaxGPT4:
		core, ok := r.cores[d]
		if !ok {
			return chess.Move{}, fmt.Errorf("agentreg: %w: %v not constructed", ErrIllegalDescriptor, d)
		}
		logw.Infof(ctx, "callAgent: dispatching to %v", d)
		return core.ChooseMove(ctx, state)
	default:
		return chess.Move{}, fmt.Errorf("agentreg: %w: %v", ErrIllegalDescriptor, d)
	}
}

func (r *Registry) random(state chess.GameState) (chess.Move, error) {
	legal := chess.LegalMoves(state, state.ToMove)
	if len(legal) == 0 {
		return chess.Move{}, fmt.Errorf("agentreg: random: %w", minimax.ErrNoSuccessors)
	}
	return legal[rand.Intn(len(legal))], nil
}
