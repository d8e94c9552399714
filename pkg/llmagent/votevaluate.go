package llmagent

import (
	"context"
	"strings"

	"github.com/brianbob12/chess-with-llm/pkg/chess"
	"github.com/brianbob12/chess-with-llm/pkg/oracle"
	"github.com/brianbob12/chess-with-llm/pkg/prompt"
)

// evaluateByCompletionVote is the disabled alternative evaluate strategy:
// instead of biasing a single token and reading back logprobs, it samples
// N independent completions at nonzero temperature and takes a majority
// vote of literal "white"/"black" answers. Documented as ineffective in
// practice (temperature-sampled votes are noisier than the logit-biased
// logprob read) and never wired into Agent.Evaluate or pkg/agentreg; kept
// only so the alternative is inspectable rather than erased.
func evaluateByCompletionVote(ctx context.Context, a *Agent, state chess.GameState, n int) (float64, error) {
	description, err := a.describe(ctx, state)
	if err != nil {
		return 0, err
	}

	text := prompt.Evaluate(state, description)
	choices, err := a.Oracle.Chat(ctx, []oracle.Message{
		{Role: oracle.User, Content: text},
	}, oracle.Options{MaxTokens: 1, Temperature: 1.0, N: n})
	if err != nil {
		return 0, err
	}

	var white, black int
	for _, c := range choices {
		switch strings.ToLower(strings.TrimSpace(c.Message.Content)) {
		case "white":
			white++
		case "black":
			black++
		}
	}
	if white+black == 0 {
		return 0, ErrGaveUp
	}
	return float64(white-black) / float64(white+black), nil
}
