package chess

// LegalMoves returns every move of color that does not leave color's own
// king in check, including castling and en passant.
func LegalMoves(s GameState, color Color) []Move {
	pseudo := pseudoLegalMoves(s, color)

	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if doesNotLeaveOwnKingInCheck(s, m, color) {
			legal = append(legal, m)
		}
	}
	return legal
}

func doesNotLeaveOwnKingInCheck(s GameState, m Move, color Color) bool {
	next := Apply(s, m)
	return !IsCheck(next, color)
}

func pseudoLegalMoves(s GameState, color Color) []Move {
	var moves []Move
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			cell := s.Board[r][c]
			if !cell.Occupied || cell.Color != color {
				continue
			}
			from := Square{Row: r, Col: c}
			switch cell.Type {
			case Pawn:
				moves = append(moves, pawnMoves(s, from, color)...)
			case Knight:
				moves = append(moves, steppingMoves(s, from, color, knightOffsets[:])...)
			case Bishop:
				moves = append(moves, slidingMoves(s, from, color, bishopDirs[:])...)
			case Rook:
				moves = append(moves, slidingMoves(s, from, color, rookDirs[:])...)
			case Queen:
				moves = append(moves, slidingMoves(s, from, color, rookDirs[:])...)
				moves = append(moves, slidingMoves(s, from, color, bishopDirs[:])...)
			case King:
				moves = append(moves, steppingMoves(s, from, color, kingOffsets[:])...)
				moves = append(moves, castlingMoves(s, from, color)...)
			}
		}
	}
	return moves
}

func steppingMoves(s GameState, from Square, color Color, offsets [][2]int) []Move {
	var moves []Move
	for _, o := range offsets {
		to := from.add(o[0], o[1])
		if !to.OnBoard() {
			continue
		}
		target := s.at(to)
		if target.Occupied && target.Color == color {
			continue
		}
		moves = append(moves, newMove(s, from, to))
	}
	return moves
}

func slidingMoves(s GameState, from Square, color Color, dirs [][2]int) []Move {
	var moves []Move
	for _, d := range dirs {
		to := from.add(d[0], d[1])
		for to.OnBoard() {
			target := s.at(to)
			if target.Occupied {
				if target.Color != color {
					moves = append(moves, newMove(s, from, to))
				}
				break
			}
			moves = append(moves, newMove(s, from, to))
			to = to.add(d[0], d[1])
		}
	}
	return moves
}

func pawnMoves(s GameState, from Square, color Color) []Move {
	var moves []Move

	dir, startRow, promoRow := 1, 1, 7
	if color == Black {
		dir, startRow, promoRow = -1, 6, 0
	}

	one := from.add(dir, 0)
	if one.OnBoard() && !s.at(one).Occupied {
		moves = append(moves, pawnAdvance(s, from, one, promoRow, false)...)

		if from.Row == startRow {
			two := from.add(2*dir, 0)
			if two.OnBoard() && !s.at(two).Occupied {
				m := Move{From: from, To: two, IsPawnMoving2: true}
				m.Algebraic = annotate(s, m)
				moves = append(moves, m)
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		to := from.add(dir, dc)
		if !to.OnBoard() {
			continue
		}
		target := s.at(to)
		if target.Occupied && target.Color != color {
			moves = append(moves, pawnAdvance(s, from, to, promoRow, false)...)
			continue
		}
		if !target.Occupied {
			// En passant: an adjacent enemy pawn on the origin rank that
			// just double-stepped authorizes capture onto the square
			// behind it, on this ply only.
			adjacent := Square{Row: from.Row, Col: to.Col}
			a := s.at(adjacent)
			if a.Occupied && a.Color != color && a.Type == Pawn && a.JustMoved2 {
				m := Move{From: from, To: to, EnPassant: true}
				m.Algebraic = annotate(s, m)
				moves = append(moves, m)
			}
		}
	}

	return moves
}

// pawnAdvance builds either a single promotion-free move, or one move per
// promotion piece when landing on the back rank.
func pawnAdvance(s GameState, from, to Square, promoRow int, _ bool) []Move {
	if to.Row == promoRow {
		out := make([]Move, 0, len(PromotionPieces))
		for _, p := range PromotionPieces {
			m := Move{From: from, To: to}
			m.Promotion = someP(p)
			m.Algebraic = annotate(s, m)
			out = append(out, m)
		}
		return out
	}
	m := Move{From: from, To: to}
	m.Algebraic = annotate(s, m)
	return []Move{m}
}

func castlingMoves(s GameState, from Square, color Color) []Move {
	king := s.at(from)
	if king.HasMoved || IsCheck(s, color) {
		return nil
	}

	row := from.Row
	var moves []Move

	if rook := s.Board[row][7]; rook.Occupied && !rook.HasMoved && rook.Color == color && rook.Type == Rook {
		empty := !s.Board[row][5].Occupied && !s.Board[row][6].Occupied
		if empty && !squaresAttacked(s, color.Opponent(), Square{row, 4}, Square{row, 5}, Square{row, 6}) {
			m := Move{From: from, To: Square{row, 6}}
			m.Castling = someSide(KingSide)
			m.Algebraic = annotate(s, m)
			moves = append(moves, m)
		}
	}
	if rook := s.Board[row][0]; rook.Occupied && !rook.HasMoved && rook.Color == color && rook.Type == Rook {
		empty := !s.Board[row][1].Occupied && !s.Board[row][2].Occupied && !s.Board[row][3].Occupied
		if empty && !squaresAttacked(s, color.Opponent(), Square{row, 4}, Square{row, 3}, Square{row, 2}) {
			m := Move{From: from, To: Square{row, 2}}
			m.Castling = someSide(QueenSide)
			m.Algebraic = annotate(s, m)
			moves = append(moves, m)
		}
	}
	return moves
}

func squaresAttacked(s GameState, attacker Color, squares ...Square) bool {
	for _, sq := range squares {
		if isAttacked(s, sq, attacker) {
			return true
		}
	}
	return false
}

func newMove(s GameState, from, to Square) Move {
	m := Move{From: from, To: to}
	m.Algebraic = annotate(s, m)
	return m
}
