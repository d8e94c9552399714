// Package agentreg is the fixed entry point through which an external
// collaborator (a UI, an HTTP/RPC handler) asks for a move without knowing
// whether it is talking to a human, a uniform-random stand-in, or an
// LLM-backed minimax search.
package agentreg

import "errors"

// Descriptor names one of the four agent kinds callAgent recognizes.
type Descriptor string

const (
	Human        Descriptor = "human"
	Random       Descriptor = "random"
	MinimaxGPT35 Descriptor = "minimax-gpt3.5"
	MinimaxGPT4  Descriptor = "minimax-gpt4"
)

func (d Descriptor) String() string {
	return string(d)
}

// ErrIllegalDescriptor is returned for human and any descriptor the
// registry does not recognize; it is the caller's problem to route around.
var ErrIllegalDescriptor = errors.New("agentreg: illegal descriptor")
