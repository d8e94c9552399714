// Package oracle abstracts an LLM behind one Chat call: free-form chat
// completion with optional per-token log-probabilities and logit biases.
// Single-token classification uses the same call (LogitBias plus Logprobs,
// with token ids from TokenTable); this package has no separate wrapper for it.
// The oracle is expected to handle its own retries/rate limits internally;
// this package treats any returned error as the call having failed outright.
package oracle

import (
	"context"
	"errors"
)

// ErrExhausted is returned by HTTPOracle when every attempt of a call failed
// with a transient error (a transport failure, a 5xx or a 429 status). A
// non-transient failure is returned at once, without ErrExhausted.
var ErrExhausted = errors.New("oracle: exhausted retries")

// Role is a chat message role.
type Role string

const (
	System    Role = "system"
	User      Role = "user"
	Assistant Role = "assistant"
)

// Message is one chat turn.
type Message struct {
	Role    Role
	Content string
}

// TokenLogprob is a single token's log-probability, as returned alongside a
// Choice when Options.Logprobs is set.
type TokenLogprob struct {
	Token        string
	Logprob      float64
	TopLogprobs  []TokenLogprob // alternates considered at this position, if TopLogprobs > 0
}

// Choice is one completion candidate.
type Choice struct {
	Message  Message
	Logprobs []TokenLogprob // one entry per generated token, if requested
}

// Options configures a chat call.
type Options struct {
	MaxTokens        int
	Temperature      float64
	N                int // number of independent completions to sample
	Stop             []string
	FrequencyPenalty float64
	PresencePenalty  float64

	// LogitBias adds the given bias to the given token id's logit prior to
	// sampling. Keyed by model-specific token id (see TokenTable).
	LogitBias map[int]float64

	Logprobs     bool
	TopLogprobs  int
}

// Oracle is the LLM capability surface the agent depends on.
type Oracle interface {
	// Chat issues one chat completion request and returns its choices.
	// The oracle implementation is responsible for request-level retries
	// and rate limiting; a returned error means the call failed outright.
	Chat(ctx context.Context, messages []Message, opt Options) ([]Choice, error)
}
