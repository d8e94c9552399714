package chess_test

import (
	"testing"

	"github.com/brianbob12/chess-with-llm/pkg/chess"
	"github.com/stretchr/testify/assert"
)

func TestHashDistinguishesDifferentStates(t *testing.T) {
	s := chess.Initial()
	moves := chess.LegalMoves(s, s.ToMove)

	seen := map[chess.StateHash]bool{}
	for _, m := range moves {
		h := chess.Hash(chess.Apply(s, m))
		assert.False(t, seen[h], "distinct legal first moves should not collide")
		seen[h] = true
	}
}

func TestHashStableAcrossTransposition(t *testing.T) {
	s := chess.Initial()

	nf3 := findMove(t, chess.LegalMoves(s, s.ToMove), "Nf3")
	a6 := findMoveAfter(t, s, nf3, "a6")
	nc3 := findMoveAfter(t, chess.Apply(s, nf3), a6, "Nc3")

	viaNf3 := chess.Apply(chess.Apply(chess.Apply(s, nf3), a6), nc3)

	s2 := chess.Initial()
	ncAfterA6 := findMove(t, chess.LegalMoves(s2, s2.ToMove), "Nc3")
	a6b := findMoveAfter(t, s2, ncAfterA6, "a6")
	nf3b := findMoveAfter(t, chess.Apply(s2, ncAfterA6), a6b, "Nf3")

	viaNc3 := chess.Apply(chess.Apply(chess.Apply(s2, ncAfterA6), a6b), nf3b)

	assert.Equal(t, chess.Hash(viaNf3), chess.Hash(viaNc3), "transposed move orders must hash equal")
}

func findMove(t *testing.T, moves []chess.Move, algebraic string) chess.Move {
	t.Helper()
	for _, m := range moves {
		if m.Algebraic == algebraic {
			return m
		}
	}
	t.Fatalf("move %q not found among %v", algebraic, moves)
	return chess.Move{}
}

func findMoveAfter(t *testing.T, s chess.GameState, from chess.Move, algebraic string) chess.Move {
	t.Helper()
	next := chess.Apply(s, from)
	return findMove(t, chess.LegalMoves(next, next.ToMove), algebraic)
}
