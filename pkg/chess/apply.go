package chess

// Apply returns the state resulting from playing m in s. Apply is pure: it
// never mutates s. Callers are expected to only pass moves drawn from
// LegalMoves(s, s.ToMove); Apply does not re-validate legality.
func Apply(s GameState, m Move) GameState {
	next := s // array fields copy by value

	mover := next.at(m.From)

	// justMoved2 is meaningful for exactly one ply; clear it everywhere
	// before possibly setting it on the moved pawn below.
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			next.Board[r][c].JustMoved2 = false
		}
	}

	if m.EnPassant {
		// The captured pawn sits beside the mover, on the mover's origin
		// rank, under the destination file.
		next.Board[m.From.Row][m.To.Col] = Cell{}
	}

	if side, ok := m.Castling.V(); ok {
		row := m.From.Row
		if side == KingSide {
			rook := next.Board[row][7]
			rook.HasMoved = true
			next.Board[row][7] = Cell{}
			next.Board[row][5] = rook
		} else {
			rook := next.Board[row][0]
			rook.HasMoved = true
			next.Board[row][0] = Cell{}
			next.Board[row][3] = rook
		}
	}

	next.Board[m.From.Row][m.From.Col] = Cell{}

	dest := mover
	dest.HasMoved = true
	if promo, ok := m.Promotion.V(); ok {
		dest.Type = promo
	}
	if m.IsPawnMoving2 {
		dest.JustMoved2 = true
	}
	next.Board[m.To.Row][m.To.Col] = dest

	next.ToMove = s.ToMove.Opponent()
	next.History = s.withMove(m)
	return next
}
