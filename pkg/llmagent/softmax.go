package llmagent

import "math"

// whiteWinProbability turns a single token's top-logprob alternates into
// P(white), softmax-normalized over just the two literal tokens the
// evaluate task biases for. top is expected to include at least the
// "white" and "black" token alternates (guaranteed by a sufficiently large
// TopLogprobs alongside the logit bias forcing both into contention).
func whiteWinProbability(top []tokenScore) float64 {
	var white, black float64
	var whiteSeen, blackSeen bool

	for _, t := range top {
		switch t.kind {
		case tokenWhite:
			white = math.Exp(t.logprob)
			whiteSeen = true
		case tokenBlack:
			black = math.Exp(t.logprob)
			blackSeen = true
		}
	}
	if !whiteSeen && !blackSeen {
		return 0.5
	}
	total := white + black
	if total == 0 {
		return 0.5
	}
	return white / total
}

type tokenKind int

const (
	tokenOther tokenKind = iota
	tokenWhite
	tokenBlack
)

type tokenScore struct {
	kind    tokenKind
	logprob float64
}
