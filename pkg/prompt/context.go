// Package prompt renders a chess.GameState into the canonical textual
// context block and the three oracle task prompts (describe, evaluate,
// successor) consumed by pkg/llmagent.
package prompt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/brianbob12/chess-with-llm/pkg/chess"
)

const legend = "Legend: uppercase letters are White's pieces, lowercase are Black's. " +
	"P/p=pawn, R/r=rook, N/n=knight, B/b=bishop, Q/q=queen, K/k=king, .=empty square."

// Context renders the shared textual context block for a state: an ASCII
// board, the legend, a piece census, per-piece positions grouped by color,
// the move history, and whose turn it is.
func Context(s chess.GameState) string {
	var sb strings.Builder

	sb.WriteString("Board:\n")
	sb.WriteString(asciiBoard(s))
	sb.WriteString("\n\n")
	sb.WriteString(legend)
	sb.WriteString("\n\n")
	sb.WriteString("Piece census:\n")
	sb.WriteString(pieceCensus(s))
	sb.WriteString("\n\n")
	sb.WriteString("Piece positions:\n")
	sb.WriteString(piecePositions(s))
	sb.WriteString("\n\n")
	sb.WriteString("Move history: ")
	sb.WriteString(moveHistory(s))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "It is %v's turn to move.\n", s.ToMove)

	return sb.String()
}

// asciiBoard renders the board with file letters and rank numbers on both
// sides, white pieces uppercase, black lowercase, '.' for empty squares.
func asciiBoard(s chess.GameState) string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for r := 7; r >= 0; r-- {
		fmt.Fprintf(&sb, "%d ", r+1)
		for c := 0; c < 8; c++ {
			cell := s.Board[r][c]
			if !cell.Occupied {
				sb.WriteString(". ")
				continue
			}
			sb.WriteString(pieceGlyph(cell))
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%d\n", r+1)
	}
	sb.WriteString("  a b c d e f g h")
	return sb.String()
}

func pieceGlyph(cell chess.Cell) string {
	glyphs := map[chess.PieceType]string{
		chess.Pawn: "p", chess.Rook: "r", chess.Knight: "n",
		chess.Bishop: "b", chess.Queen: "q", chess.King: "k",
	}
	g := glyphs[cell.Type]
	if cell.Color == chess.White {
		g = strings.ToUpper(g)
	}
	return g
}

// pieceCensus renders a JSON-like per-color object of piece counts, the
// natural completion of the "JSON-like pretty-printed object" format given
// positions are already grouped by color below (see SPEC_FULL.md).
func pieceCensus(s chess.GameState) string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for i, color := range []chess.Color{chess.White, chess.Black} {
		counts := map[chess.PieceType]int{}
		for r := 0; r < 8; r++ {
			for c := 0; c < 8; c++ {
				cell := s.Board[r][c]
				if cell.Occupied && cell.Color == color {
					counts[cell.Type]++
				}
			}
		}
		fmt.Fprintf(&sb, "  %q: {", color.String())
		order := []chess.PieceType{chess.Pawn, chess.Knight, chess.Bishop, chess.Rook, chess.Queen, chess.King}
		parts := make([]string, 0, len(order))
		for _, pt := range order {
			parts = append(parts, fmt.Sprintf("%q: %d", pt.String(), counts[pt]))
		}
		sb.WriteString(strings.Join(parts, ", "))
		sb.WriteString("}")
		if i == 0 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String()
}

// piecePositions lists every piece's square in algebraic form, grouped by
// color.
func piecePositions(s chess.GameState) string {
	var sb strings.Builder
	for i, color := range []chess.Color{chess.White, chess.Black} {
		var entries []string
		for r := 0; r < 8; r++ {
			for c := 0; c < 8; c++ {
				cell := s.Board[r][c]
				if cell.Occupied && cell.Color == color {
					sq := chess.Square{Row: r, Col: c}
					entries = append(entries, fmt.Sprintf("%s@%s", cell.Type.String(), sq.Algebraic()))
				}
			}
		}
		sort.Strings(entries)
		fmt.Fprintf(&sb, "%v: %s", color, strings.Join(entries, ", "))
		if i == 0 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// moveHistory renders the move list with 1-indexed full-move numbers, e.g.
// "1. e4 e5 2. Nf3 ...".
func moveHistory(s chess.GameState) string {
	if len(s.History) == 0 {
		return "(none)"
	}
	var sb strings.Builder
	for i, m := range s.History {
		if i%2 == 0 {
			if i > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "%d. ", i/2+1)
		} else {
			sb.WriteString(" ")
		}
		sb.WriteString(m.Algebraic)
	}
	return sb.String()
}
