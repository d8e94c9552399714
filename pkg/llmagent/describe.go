package llmagent

import (
	"github.com/brianbob12/chess-with-llm/pkg/chess"
	"github.com/brianbob12/chess-with-llm/pkg/prompt"
)

func describePrompt(s chess.GameState) string {
	return prompt.Describe(s)
}
