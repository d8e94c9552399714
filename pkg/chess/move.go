package chess

import "github.com/seekerror/stdlib/pkg/lang"

// CastlingSide distinguishes king-side from queen-side castling.
type CastlingSide uint8

const (
	KingSide CastlingSide = iota
	QueenSide
)

func (s CastlingSide) String() string {
	if s == QueenSide {
		return "0-0-0"
	}
	return "0-0"
}

// Move is self-describing: Algebraic is derived from the pre-move board, so
// the move can be logged or displayed without carrying extra context.
type Move struct {
	From, To  Square
	Algebraic string

	EnPassant     bool
	Castling      lang.Optional[CastlingSide]
	IsPawnMoving2 bool
	Promotion     lang.Optional[PieceType]
}

func (m Move) String() string {
	return m.Algebraic
}

// Equals reports whether two moves represent the same from/to/promotion,
// ignoring the derived Algebraic field.
func (m Move) Equals(o Move) bool {
	mp, mok := m.Promotion.V()
	op, ook := o.Promotion.V()
	return m.From == o.From && m.To == o.To && mok == ook && mp == op
}
