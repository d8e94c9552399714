package chess

import "github.com/seekerror/stdlib/pkg/lang"

func someP(p PieceType) lang.Optional[PieceType] {
	return lang.Some(p)
}

func someSide(side CastlingSide) lang.Optional[CastlingSide] {
	return lang.Some(side)
}
