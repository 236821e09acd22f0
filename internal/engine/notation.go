package engine

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// needsDisambiguation reports whether another piece of the same kind and
// colour also attacks the target square. It must run before the move is
// applied.
func needsDisambiguation(board *chess.Board, m *chess.Move) bool {
	if m.Piece.Kind == chess.Pawn || m.Piece.Kind == chess.King {
		return false
	}
	n := 0
	for _, a := range board.At(m.Target).Attackers {
		if a.Piece.Is(m.Piece.Kind, m.Piece.Colour) {
			n++
		}
	}
	return n > 1
}

// notation renders the move record for a committed move, prefixed with the
// full-move number: "1. e4", "3. Nxe5", "12. 0-0", "30. exd6e.p",
// "41. e8=Q#".
func (g *Game) notation(m *chess.Move, disambiguate bool, opponent *chess.Player) string {
	var sb strings.Builder

	sb.WriteString(strconv.Itoa((g.Turn + 1) / 2))
	sb.WriteString(". ")

	switch {
	case m.Type == chess.EnPassant:
		sb.WriteByte(m.Source.FileLetter())
		sb.WriteByte('x')
		sb.WriteString(m.Target.Name())
		sb.WriteString("e.p")
	case m.IsCastle():
		if m.Castle.Kingside() {
			sb.WriteString("0-0")
		} else {
			sb.WriteString("0-0-0")
		}
	case m.IsPromotion():
		if m.IsCapture() {
			sb.WriteByte(m.Source.FileLetter())
			sb.WriteByte('x')
		}
		sb.WriteString(m.Target.Name())
		sb.WriteString("=Q")
	default:
		if m.Piece.Kind == chess.Pawn {
			if m.IsCapture() {
				sb.WriteByte(m.Source.FileLetter())
				sb.WriteByte('x')
			}
		} else {
			sb.WriteString(m.Piece.Symbol())
			if disambiguate {
				sb.WriteByte(m.Source.FileLetter())
			}
			if m.IsCapture() {
				sb.WriteByte('x')
			}
		}
		sb.WriteString(m.Target.Name())
	}

	if opponent.IsCheck {
		if opponent.IsCheckMate {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('+')
		}
	}
	return sb.String()
}
