// Package llmagent implements minimax.Provider on top of an oracle.Oracle:
// three oracle-backed tasks (describe, evaluate, successors), each with its
// own retry loop (descriptions are also cached per state), composed into the leaf-evaluation and
// successor-generation surface the minimax core depends on.
package llmagent

import (
	"errors"

	"github.com/brianbob12/chess-with-llm/pkg/oracle"
)

// ErrGaveUp is returned when an oracle task exhausts its retry budget and
// its last attempt produced no usable output: no choices, a successor list
// with no legal move, an answer naming neither "white" nor "black". If the
// last attempt failed with an oracle error, that error is returned instead.
var ErrGaveUp = errors.New("llmagent: gave up after retries")

// maxLLMTries bounds each task's retry loop. An attempt is retried both when
// the oracle call returns an error and when its output is unusable; an
// oracle.Oracle may additionally retry transport failures internally.
const maxLLMTries = 5

// Config selects the model and branching target for an Agent.
type Config struct {
	Model oracle.Model

	// SuccessorCount is the target number of candidate moves requested per
	// Successors call (the "around n" in the successor prompt).
	SuccessorCount int
}

// DefaultConfig matches the packaged minimax-gpt3.5/minimax-gpt4 agent
// descriptors' branching target.
func DefaultConfig(model oracle.Model) Config {
	return Config{Model: model, SuccessorCount: 5}
}
