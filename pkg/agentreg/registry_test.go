package agentreg_test

import (
	"context"
	"errors"
	"testing"

	"github.com/brianbob12/chess-with-llm/pkg/agentreg"
	"github.com/brianbob12/chess-with-llm/pkg/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHumanDescriptorIsRejected(t *testing.T) {
	r := agentreg.New(nil)
	_, err := r.CallAgent(context.Background(), chess.Initial(), agentreg.Human)
	require.Error(t, err)
	assert.True(t, errors.Is(err, agentreg.ErrIllegalDescriptor))
}

func TestUnknownDescriptorIsRejected(t *testing.T) {
	r := agentreg.New(nil)
	_, err := r.CallAgent(context.Background(), chess.Initial(), agentreg.Descriptor("bogus"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, agentreg.ErrIllegalDescriptor))
}

func TestRandomDescriptorReturnsALegalMove(t *testing.T) {
	r := agentreg.New(nil)
	state := chess.Initial()

	m, err := r.CallAgent(context.Background(), state, agentreg.Random)
	require.NoError(t, err)

	legal := chess.LegalMoves(state, state.ToMove)
	found := false
	for _, lm := range legal {
		if lm.Equals(m) {
			found = true
		}
	}
	assert.True(t, found, "random descriptor must return a legal move")
}
