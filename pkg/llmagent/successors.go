package llmagent

import (
	"context"

	"github.com/brianbob12/chess-with-llm/pkg/chess"
	"github.com/brianbob12/chess-with-llm/pkg/minimax"
	"github.com/brianbob12/chess-with-llm/pkg/oracle"
	"github.com/brianbob12/chess-with-llm/pkg/prompt"
	"github.com/google/uuid"
)

// Successors implements minimax.Provider: it describes state, asks the
// successor task for roughly Config.SuccessorCount candidate moves, and
// assigns each a uniform 1/k probability (the oracle gives no native
// likelihood weighting for this task). Malformed or empty responses are
// retried up to maxLLMTries before giving up.
func (a *Agent) Successors(ctx context.Context, state chess.GameState) ([]minimax.Successor, error) {
	legal := chess.LegalMoves(state, state.ToMove)
	if len(legal) == 0 {
		return nil, nil
	}

	description, err := a.describe(ctx, state)
	if err != nil {
		return nil, err
	}

	text := prompt.Successor(state, description, state.ToMove, a.Config.SuccessorCount, legal)
	callID := uuid.NewString()

	var lastErr error
	for try := 0; try < maxLLMTries; try++ {
		choices, err := a.Oracle.Chat(ctx, []oracle.Message{
			{Role: oracle.User, Content: text},
		}, oracle.Options{MaxTokens: 300, Temperature: 1, N: 1})

		a.logOracleCall(callID, "successors", text, choices, err)
		if err != nil {
			lastErr = err
			continue
		}
		if len(choices) == 0 {
			lastErr = ErrGaveUp
			continue
		}

		tokens := parseSuccessorTokens(choices[0].Message.Content)
		moves := matchLegal(tokens, legal)
		if len(moves) == 0 {
			lastErr = ErrGaveUp
			continue
		}

		p := 1.0 / float64(len(moves))
		out := make([]minimax.Successor, len(moves))
		for i, m := range moves {
			out[i] = minimax.Successor{
				NextState:   chess.Apply(state, m),
				Move:        m,
				Probability: p,
			}
		}
		return out, nil
	}
	return nil, lastErr
}
