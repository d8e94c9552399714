package prompt_test

import (
	"strings"
	"testing"

	"github.com/brianbob12/chess-with-llm/pkg/chess"
	"github.com/brianbob12/chess-with-llm/pkg/prompt"
	"github.com/stretchr/testify/assert"
)

func TestContextContainsBoardAndTurn(t *testing.T) {
	s := chess.Initial()
	ctx := prompt.Context(s)

	assert.Contains(t, ctx, "R N B Q K B N R")
	assert.Contains(t, ctx, "white's turn")
}

func TestSuccessorPromptListsLegalMoves(t *testing.T) {
	s := chess.Initial()
	legal := chess.LegalMoves(s, s.ToMove)

	p := prompt.Successor(s, "desc", chess.White, 8, legal)
	assert.True(t, strings.Contains(p, "Moves: "))
	for _, m := range legal {
		assert.Contains(t, p, m.Algebraic)
	}
}
