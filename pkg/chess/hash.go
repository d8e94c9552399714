package chess

import "strings"

// StateHash is a deterministic, process-stable (not cryptographic) digest
// of a GameState. Two states hash equal iff they are behaviourally
// identical for the purposes of legal moves, including castling rights and
// en passant windows.
type StateHash string

// Hash computes the StateHash: side-to-move, then every cell's
// {color, type, hasMoved, justMoved2} tag, comma-separated.
func Hash(s GameState) StateHash {
	var sb strings.Builder
	sb.WriteString(s.ToMove.String())

	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			sb.WriteByte(',')
			cell := s.Board[r][c]
			if !cell.Occupied {
				sb.WriteString("empty")
				continue
			}
			sb.WriteString(cell.Color.String())
			sb.WriteByte('_')
			sb.WriteString(cell.Type.String())
			sb.WriteByte('_')
			if cell.HasMoved {
				sb.WriteString("moved")
			} else {
				sb.WriteString("unmoved")
			}
			if cell.Type == Pawn && cell.JustMoved2 {
				sb.WriteString("_justMoved2")
			}
		}
	}
	return StateHash(sb.String())
}
