package llmagent

import (
	"strings"

	"github.com/brianbob12/chess-with-llm/pkg/chess"
)

// parseSuccessorTokens extracts the comma-separated move list after the
// "Moves:" marker the successor prompt asks for, salvaging common
// malformations before matching each token against legal.
func parseSuccessorTokens(content string) []string {
	_, after, ok := strings.Cut(content, "Moves:")
	if !ok {
		after = content
	}
	raw := strings.Split(after, ",")

	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		tok = strings.TrimSpace(tok)
		tok = strings.Trim(tok, ".")
		if tok == "" {
			continue
		}
		out = append(out, salvageToken(tok))
	}
	return out
}

// salvageToken rewrites common near-miss formattings an LLM produces for
// algebraic notation into the form chess.Move.Algebraic actually uses.
func salvageToken(tok string) string {
	switch tok {
	case "O-O", "o-o":
		return "0-0"
	case "O-O-O", "o-o-o":
		return "0-0-0"
	}
	if len(tok) > 1 && (tok[0] == 'P' || tok[0] == 'p') && tok[1] >= 'a' && tok[1] <= 'h' {
		return tok[1:]
	}
	return tok
}

// matchLegal resolves each salvaged token to a legal move by exact
// algebraic-string match, dropping tokens that match nothing (duplicates
// collapse to their first occurrence).
func matchLegal(tokens []string, legal []chess.Move) []chess.Move {
	byAlgebraic := make(map[string]chess.Move, len(legal))
	for _, m := range legal {
		if _, exists := byAlgebraic[m.Algebraic]; !exists {
			byAlgebraic[m.Algebraic] = m
		}
	}

	seen := make(map[string]bool, len(tokens))
	out := make([]chess.Move, 0, len(tokens))
	for _, tok := range tokens {
		if seen[tok] {
			continue
		}
		if m, ok := byAlgebraic[tok]; ok {
			out = append(out, m)
			seen[tok] = true
		}
	}
	return out
}
