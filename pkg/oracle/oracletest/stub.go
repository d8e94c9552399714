// Package oracletest provides a hand-rolled Oracle test double, in keeping
// with the reference corpus's preference for purpose-built fakes over a
// mocking library (none appears anywhere in the retrieved examples).
package oracletest

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/brianbob12/chess-with-llm/pkg/oracle"
)

// Responder produces a response (or error) for one Chat call.
type Responder func(messages []oracle.Message, opt oracle.Options) ([]oracle.Choice, error)

// Stub is a counting, optionally-delayed Oracle double for exercising the
// single-flight and retry properties of the core search.
type Stub struct {
	mu    sync.Mutex
	calls int64

	// Respond is invoked for every Chat call still holding no lock.
	Respond Responder

	// Release, if non-nil, is read from before Respond runs, letting a
	// test hold N concurrent callers in flight before letting any of
	// them complete (used to prove single-flight de-duplication).
	Release <-chan struct{}
}

func New(respond Responder) *Stub {
	return &Stub{Respond: respond}
}

func (s *Stub) Chat(ctx context.Context, messages []oracle.Message, opt oracle.Options) ([]oracle.Choice, error) {
	atomic.AddInt64(&s.calls, 1)
	if s.Release != nil {
		select {
		case <-s.Release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.Respond(messages, opt)
}

// Calls returns the number of Chat invocations observed so far.
func (s *Stub) Calls() int64 {
	return atomic.LoadInt64(&s.calls)
}
