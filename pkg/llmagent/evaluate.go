package llmagent

import (
	"context"
	"strings"

	"github.com/brianbob12/chess-with-llm/pkg/chess"
	"github.com/brianbob12/chess-with-llm/pkg/oracle"
	"github.com/brianbob12/chess-with-llm/pkg/prompt"
	"github.com/google/uuid"
)

// Evaluate implements minimax.Provider: it describes state, asks the
// evaluate task for a single-token white/black prediction with both
// literal tokens boosted via logit bias, and folds the returned
// logprobs into a value in [-1, 1] from white's perspective. If the
// oracle returns no logprobs, it falls back to the literal text of the
// answer (a hard +1/-1 rather than a softmax-weighted score).
func (a *Agent) Evaluate(ctx context.Context, state chess.GameState) (float64, error) {
	description, err := a.describe(ctx, state)
	if err != nil {
		return 0, err
	}

	text := prompt.Evaluate(state, description)
	tokens := oracle.TokensFor(a.Config.Model)
	callID := uuid.NewString()

	var lastErr error
	for try := 0; try < maxLLMTries; try++ {
		choices, err := a.Oracle.Chat(ctx, []oracle.Message{
			{Role: oracle.User, Content: text},
		}, oracle.Options{
			MaxTokens:   1,
			Temperature: 0,
			N:           1,
			LogitBias:   map[int]float64{tokens.White: 100, tokens.Black: 100},
			Logprobs:    true,
			TopLogprobs: 12,
		})

		a.logOracleCall(callID, "evaluate", text, choices, err)
		if err != nil {
			lastErr = err
			continue
		}
		if len(choices) == 0 {
			lastErr = ErrGaveUp
			continue
		}

		if v, ok := evaluateFromLogprobs(choices[0]); ok {
			return v, nil
		}
		if v, ok := evaluateFromText(choices[0].Message.Content); ok {
			return v, nil
		}
		lastErr = ErrGaveUp
	}
	return 0, lastErr
}

func evaluateFromLogprobs(c oracle.Choice) (float64, bool) {
	if len(c.Logprobs) == 0 {
		return 0, false
	}
	first := c.Logprobs[0]

	scores := make([]tokenScore, 0, len(first.TopLogprobs)+1)
	scores = append(scores, classify(first.Token, first.Logprob))
	for _, alt := range first.TopLogprobs {
		scores = append(scores, classify(alt.Token, alt.Logprob))
	}

	p := whiteWinProbability(scores)
	return 2*p - 1, true
}

func classify(token string, logprob float64) tokenScore {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "white":
		return tokenScore{kind: tokenWhite, logprob: logprob}
	case "black":
		return tokenScore{kind: tokenBlack, logprob: logprob}
	default:
		return tokenScore{kind: tokenOther, logprob: logprob}
	}
}

func evaluateFromText(content string) (float64, bool) {
	switch strings.ToLower(strings.TrimSpace(content)) {
	case "white":
		return 1, true
	case "black":
		return -1, true
	default:
		return 0, false
	}
}
