package chess

// rookDirs and bishopDirs are the sliding directions for rook-like and
// bishop-like attacks, respectively.
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}
var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// IsCheck reports whether the given color's king is currently attacked,
// tested as if the king square itself were attacking outward: sliding along
// ranks/files/diagonals to find rooks/queens/bishops, stepping like a
// knight to find knights, checking adjacency for the enemy king, and
// testing the two diagonally-forward squares (forward from the defender's
// perspective) for enemy pawns.
func IsCheck(s GameState, c Color) bool {
	king, ok := s.KingSquare(c)
	if !ok {
		return false
	}
	return isAttacked(s, king, c.Opponent())
}

// isAttacked reports whether sq is attacked by any piece of color attacker.
func isAttacked(s GameState, sq Square, attacker Color) bool {
	for _, d := range rookDirs {
		if slideHits(s, sq, d[0], d[1], attacker, Rook, Queen) {
			return true
		}
	}
	for _, d := range bishopDirs {
		if slideHits(s, sq, d[0], d[1], attacker, Bishop, Queen) {
			return true
		}
	}
	for _, o := range knightOffsets {
		t := sq.add(o[0], o[1])
		if t.OnBoard() {
			cell := s.at(t)
			if cell.Occupied && cell.Color == attacker && cell.Type == Knight {
				return true
			}
		}
	}
	for _, o := range kingOffsets {
		t := sq.add(o[0], o[1])
		if t.OnBoard() {
			cell := s.at(t)
			if cell.Occupied && cell.Color == attacker && cell.Type == King {
				return true
			}
		}
	}

	// Pawn attacks: an enemy pawn attacks diagonally forward from its own
	// perspective. A white pawn on (r,c) attacks (r+1,c-1) and (r+1,c+1);
	// a black pawn attacks (r-1,c-1) and (r-1,c+1). So, looking from sq
	// outward, the candidate attacker squares are offset by -1 rank
	// (attacker==White) or +1 rank (attacker==Black).
	dr := -1
	if attacker == Black {
		dr = 1
	}
	for _, dc := range [2]int{-1, 1} {
		t := sq.add(dr, dc)
		if t.OnBoard() {
			cell := s.at(t)
			if cell.Occupied && cell.Color == attacker && cell.Type == Pawn {
				return true
			}
		}
	}
	return false
}

// slideHits walks from sq in direction (dr, dc) until blocked or off-board,
// reporting whether the first occupied square belongs to attacker and is
// one of the given piece types.
func slideHits(s GameState, sq Square, dr, dc int, attacker Color, types ...PieceType) bool {
	t := sq.add(dr, dc)
	for t.OnBoard() {
		cell := s.at(t)
		if cell.Occupied {
			if cell.Color != attacker {
				return false
			}
			for _, pt := range types {
				if cell.Type == pt {
					return true
				}
			}
			return false
		}
		t = t.add(dr, dc)
	}
	return false
}
