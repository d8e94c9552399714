package chess_test

import (
	"testing"

	"github.com/brianbob12/chess-with-llm/pkg/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyInvariants(t *testing.T) {
	s := chess.Initial()

	for i := 0; i < 6; i++ {
		moves := chess.LegalMoves(s, s.ToMove)
		require.NotEmpty(t, moves)

		for _, m := range moves {
			next := chess.Apply(s, m)

			assert.NotEqual(t, s.ToMove, next.ToMove, "side to move must flip")
			_, wok := next.KingSquare(chess.White)
			_, bok := next.KingSquare(chess.Black)
			assert.True(t, wok, "white king must survive legal move")
			assert.True(t, bok, "black king must survive legal move")
		}

		s = chess.Apply(s, moves[0])
	}
}

func TestApplyDeterministicHash(t *testing.T) {
	s := chess.Initial()
	moves := chess.LegalMoves(s, s.ToMove)
	require.NotEmpty(t, moves)

	h1 := chess.Hash(chess.Apply(s, moves[0]))
	h2 := chess.Hash(chess.Apply(s, moves[0]))
	assert.Equal(t, h1, h2)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	s := chess.Initial()
	before := chess.Hash(s)

	moves := chess.LegalMoves(s, s.ToMove)
	require.NotEmpty(t, moves)
	_ = chess.Apply(s, moves[0])

	assert.Equal(t, before, chess.Hash(s), "Apply must not mutate its input")
}

func TestLegalMovesExcludeSelfCheck(t *testing.T) {
	// White king on e1, black rook on e8: moving the king off the e-file
	// is fine, but a move that leaves it pinned/exposed along the e-file
	// must never appear (e.g. sliding a blocking piece away illegally).
	s := emptyBoard(chess.White)
	s.Board[0][4] = chess.Cell{Occupied: true, Color: chess.White, Type: chess.King}
	s.Board[7][4] = chess.Cell{Occupied: true, Color: chess.Black, Type: chess.Rook}
	s.Board[7][7] = chess.Cell{Occupied: true, Color: chess.Black, Type: chess.King}

	for _, m := range chess.LegalMoves(s, chess.White) {
		next := chess.Apply(s, m)
		assert.False(t, chess.IsCheck(next, chess.White), "move %v leaves king in check", m)
	}
}

func emptyBoard(toMove chess.Color) chess.GameState {
	var s chess.GameState
	s.ToMove = toMove
	return s
}
