package chess_test

import (
	"regexp"
	"testing"

	"github.com/brianbob12/chess-with-llm/pkg/chess"
)

var algebraicPattern = regexp.MustCompile(`^[KQRBN]?x?[a-h][1-8](=[QRBN])?$|^0-0(-0)?$`)

func TestInitialPositionAlgebraicRoundTrip(t *testing.T) {
	s := chess.Initial()
	for _, m := range chess.LegalMoves(s, s.ToMove) {
		if !algebraicPattern.MatchString(m.Algebraic) {
			t.Errorf("move %v has non-conforming algebraic %q", m, m.Algebraic)
		}
	}
}

func TestPositionToAlgebraic(t *testing.T) {
	cases := map[string][2]int{
		"a1": {0, 0},
		"h1": {0, 7},
		"e4": {3, 4},
		"a8": {7, 0},
	}
	for want, rc := range cases {
		if got := chess.PositionToAlgebraic(rc[0], rc[1]); got != want {
			t.Errorf("PositionToAlgebraic(%d,%d) = %q, want %q", rc[0], rc[1], got, want)
		}
	}
}
