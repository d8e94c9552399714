package llmagent

import (
	"context"
	"sync"

	"github.com/brianbob12/chess-with-llm/internal/eventlog"
	"github.com/brianbob12/chess-with-llm/pkg/chess"
	"github.com/brianbob12/chess-with-llm/pkg/oracle"
	"github.com/google/uuid"
)

// Agent wraps an oracle.Oracle to implement minimax.Provider: Evaluate and
// Successors each describe the position first (cached, single-flighted per
// state) and feed that description into the corresponding oracle task.
type Agent struct {
	Oracle oracle.Oracle
	Config Config
	Log    *eventlog.Writer

	descMu sync.Mutex
	descFn map[chess.StateHash]*descFuture
}

type descFuture struct {
	done  chan struct{}
	value string
	err   error
}

// NewAgent constructs an Agent bound to oracle with cfg.
func NewAgent(o oracle.Oracle, cfg Config, log *eventlog.Writer) *Agent {
	return &Agent{
		Oracle: o,
		Config: cfg,
		Log:    log,
		descFn: map[chess.StateHash]*descFuture{},
	}
}

// EstimatedSuccessorCount reports the branching factor assumed for
// not-yet-cached states, for the minimax core's leaf-vs-expand budgeting.
func (a *Agent) EstimatedSuccessorCount() int {
	return a.Config.SuccessorCount
}

// describe returns the cached description for state, computing and
// publishing it (single-flighted across concurrent callers) if absent.
// The future is installed synchronously before any oracle call, so a
// second caller arriving while the first is still in flight attaches to
// the same pending computation rather than issuing a duplicate request.
func (a *Agent) describe(ctx context.Context, state chess.GameState) (string, error) {
	hash := chess.Hash(state)

	a.descMu.Lock()
	if f, ok := a.descFn[hash]; ok {
		a.descMu.Unlock()
		select {
		case <-f.done:
			return f.value, f.err
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	f := &descFuture{done: make(chan struct{})}
	a.descFn[hash] = f
	a.descMu.Unlock()

	f.value, f.err = a.computeDescription(ctx, state)
	close(f.done)
	return f.value, f.err
}

func (a *Agent) computeDescription(ctx context.Context, state chess.GameState) (string, error) {
	callID := uuid.NewString()
	prompt := describePrompt(state)

	var lastErr error
	for try := 0; try < maxLLMTries; try++ {
		choices, err := a.Oracle.Chat(ctx, []oracle.Message{
			{Role: oracle.User, Content: prompt},
		}, oracle.Options{MaxTokens: 400, Temperature: 0.2, N: 1})

		a.logOracleCall(callID, "describe", prompt, choices, err)
		if err != nil {
			lastErr = err
			continue
		}
		if len(choices) == 0 || choices[0].Message.Content == "" {
			lastErr = ErrGaveUp
			continue
		}
		return choices[0].Message.Content, nil
	}
	return "", lastErr
}

func (a *Agent) logOracleCall(callID, task, request string, choices []oracle.Choice, err error) {
	errStr := ""
	if err != nil {
		errStr = err.Error()
	}
	a.Log.Write(eventlog.OracleCall{
		Kind:     "oracleCall",
		CallID:   callID,
		Task:     task,
		Model:    string(a.Config.Model),
		Request:  request,
		Response: choices,
		Err:      errStr,
	})
}
