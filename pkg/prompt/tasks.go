package prompt

import (
	"fmt"
	"strings"

	"github.com/brianbob12/chess-with-llm/pkg/chess"
)

// Describe renders the "describe" task prompt: the context block plus an
// instruction to summarize the position.
func Describe(s chess.GameState) string {
	return Context(s) + "\n" +
		"Describe the game state. Call out important pieces, danger, and tactics, " +
		"and their implications. Format your answer as three short sets of bullet points."
}

// Evaluate renders the "evaluate" task prompt: context + description,
// asking for a single-word winner prediction. The caller is expected to
// issue this with a 1-token ceiling, temperature 0, a logit bias of +100 on
// both the "white" and "black" tokens, and logprobs enabled.
func Evaluate(s chess.GameState, description string) string {
	return Context(s) + "\n" +
		"Description:\n" + description + "\n\n" +
		"Who is more likely to win this game? Just answer `black` or `white`, lowercase."
}

// Successor renders the "successor" task prompt: context + description,
// asking for roughly n candidate moves for the given side, drawn from the
// supplied legal-move list.
func Successor(s chess.GameState, description string, side chess.Color, n int, legal []chess.Move) string {
	algebraic := make([]string, len(legal))
	for i, m := range legal {
		algebraic[i] = m.Algebraic
	}

	var sb strings.Builder
	sb.WriteString(Context(s))
	sb.WriteString("\n")
	sb.WriteString("Description:\n")
	sb.WriteString(description)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "What moves is the %v player likely to make next? Select around %d. ", side, n)
	sb.WriteString("Finish with `Moves: ` followed by algebraic moves separated by commas. ")
	sb.WriteString("Choose from the following moves: ")
	sb.WriteString(strings.Join(algebraic, ", "))
	return sb.String()
}
