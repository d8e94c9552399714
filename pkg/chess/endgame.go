package chess

import "github.com/seekerror/stdlib/pkg/lang"

// Endgame describes the terminal status of a state, for the side to move.
// Threefold repetition and the fifty-move rule are intentionally not
// detected (see SPEC_FULL.md): positions only terminate on
// checkmate or stalemate.
type Endgame struct {
	InProgress bool
	// Checkmate holds the color that has been checkmated (the side to
	// move, which has no legal moves while in check), if any.
	Checkmate lang.Optional[Color]
	Draw      bool
}

// DetectEndgame classifies s. A state with no legal moves for the side to
// move is terminal: checkmate if that side is in check, stalemate
// (a draw) otherwise.
func DetectEndgame(s GameState) Endgame {
	if len(LegalMoves(s, s.ToMove)) > 0 {
		return Endgame{InProgress: true}
	}
	if IsCheck(s, s.ToMove) {
		return Endgame{Checkmate: lang.Some(s.ToMove)}
	}
	return Endgame{Draw: true}
}
