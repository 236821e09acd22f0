// Package engine implements the move protocol of a two-player chess game:
// move validation, commit and rollback, game-over detection, repetition
// tracking and move notation.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Setup is a position read from FEN: the board plus the fields that live
// on the game rather than on the board.
type Setup struct {
	Board         *chess.Board
	ToMove        chess.Colour
	HalfmoveClock int
	MoveNumber    int
}

// Turn returns the game turn matching the setup: 1 for Light's first move,
// incrementing every ply.
func (s *Setup) Turn() int {
	turn := 2*(s.MoveNumber-1) + 1
	if s.ToMove == chess.Dark {
		turn++
	}
	return turn
}

// ConvertFENCharToKind converts a FEN character to a piece kind.
func ConvertFENCharToKind(c byte) chess.Kind {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.NoKind
	}
}

// ParseFEN reads a FEN string. Missing trailing fields default to Light to
// move, no castling, no en passant, and move number 1.
func ParseFEN(fen string) (*Setup, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	s := &Setup{Board: chess.NewBoard(), ToMove: chess.Light, MoveNumber: 1}

	if err := parsePiecePositions(s.Board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(s, parts); err != nil {
		return nil, err
	}
	parseClocks(s, parts)
	setFirstMoveFlags(s.Board)
	if err := parseCastlingRights(s.Board, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(s, parts); err != nil {
		return nil, err
	}

	s.Board.CalculateAttackedSquares()
	return s, nil
}

// NewBoardFromFEN creates a board from a FEN string.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	s, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return s.Board, nil
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	b := chess.NewBoard()
	b.SetupInitialPosition()
	return b
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	rows := strings.Split(positions, "/")
	if len(rows) != chess.BoardSize {
		return fmt.Errorf("%d ranks in %q: %w", len(rows), positions, errors.ErrInvalidFEN)
	}

	kings := [2]int{}
	for row, text := range rows {
		file := 0
		for i := 0; i < len(text); i++ {
			c := text[i]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			kind := ConvertFENCharToKind(c)
			if kind == chess.NoKind {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if file >= chess.BoardSize {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := chess.Light
			if c >= 'a' && c <= 'z' {
				colour = chess.Dark
			}
			if kind == chess.King {
				kings[colour]++
			}
			board.Set(chess.Pos(file, row), chess.Piece{Kind: kind, Colour: colour})
			file++
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %q has %d files: %w", text, file, errors.ErrInvalidFEN)
		}
	}

	if kings[chess.Light] != 1 || kings[chess.Dark] != 1 {
		return fmt.Errorf("need exactly one king per side: %w", errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(s *Setup, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		s.ToMove = chess.Light
	case "b":
		s.ToMove = chess.Dark
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// setFirstMoveFlags marks pawns on their starting row as unmoved. Kings and
// rooks are marked by the castling field.
func setFirstMoveFlags(board *chess.Board) {
	for _, colour := range []chess.Colour{chess.Light, chess.Dark} {
		startRow := colour.HomeRow() + colour.Forward()
		for file := 0; file < chess.BoardSize; file++ {
			sq := board.At(chess.Pos(file, startRow))
			if sq.Piece.Is(chess.Pawn, colour) {
				sq.Piece.FirstMove = true
			}
		}
	}
}

// parseCastlingRights turns the castling availability field into FirstMove
// flags on the king and the corner rooks.
func parseCastlingRights(board *chess.Board, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		colour := chess.Light
		var rookFile int
		switch c {
		case 'K':
			rookFile = chess.BoardSize - 1
		case 'Q':
			rookFile = 0
		case 'k':
			colour, rookFile = chess.Dark, chess.BoardSize-1
		case 'q':
			colour, rookFile = chess.Dark, 0
		default:
			return fmt.Errorf("invalid castling right: %c: %w", c, errors.ErrInvalidFEN)
		}

		home := colour.HomeRow()
		king := board.At(chess.Pos(4, home))
		rook := board.At(chess.Pos(rookFile, home))
		if !king.Piece.Is(chess.King, colour) || !rook.Piece.Is(chess.Rook, colour) {
			// A right without the pieces in place is ignored.
			continue
		}
		king.Piece.FirstMove = true
		rook.Piece.FirstMove = true
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(s *Setup, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	square, err := chess.ParsePosition(parts[3])
	if err != nil {
		return fmt.Errorf("en passant square %q: %w", parts[3], errors.ErrInvalidFEN)
	}
	// The pawn that skipped the square stands one step further on, in the
	// direction of its own advance.
	captured := square.Offset(0, -s.ToMove.Forward())
	if !captured.InBoard() || !s.Board.At(captured).Piece.Is(chess.Pawn, s.ToMove.Opposite()) {
		return nil
	}
	s.Board.EnPassant = chess.EnPassantState{
		Available: true,
		Square:    square,
		Captured:  captured,
		Turn:      s.Turn(),
	}
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(s *Setup, parts []string) {
	if len(parts) >= 5 {
		if n, err := strconv.Atoi(parts[4]); err == nil && n >= 0 {
			s.HalfmoveClock = n
		}
	}
	if len(parts) >= 6 {
		if n, err := strconv.Atoi(parts[5]); err == nil && n > 0 {
			s.MoveNumber = n
		}
	}
}

// BoardToFEN converts a board to a FEN string. Castling rights are derived
// from the FirstMove flags of kings and corner rooks.
func BoardToFEN(board *chess.Board, toMove chess.Colour, halfmoveClock, moveNumber int) string {
	var sb strings.Builder

	sb.WriteString(board.Placement())
	sb.WriteByte(' ')
	if toMove == chess.Light {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	if board.EnPassant.Available {
		sb.WriteString(board.EnPassant.Square.Name())
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " %d %d", halfmoveClock, moveNumber)

	return sb.String()
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, colour := range []chess.Colour{chess.Light, chess.Dark} {
		home := colour.HomeRow()
		king := board.At(chess.Pos(4, home)).Piece
		if !king.Is(chess.King, colour) || !king.FirstMove {
			continue
		}
		for _, side := range []struct {
			file   int
			letter byte
		}{{chess.BoardSize - 1, 'K'}, {0, 'Q'}} {
			rook := board.At(chess.Pos(side.file, home)).Piece
			if rook.Is(chess.Rook, colour) && rook.FirstMove {
				letter := side.letter
				if colour == chess.Dark {
					letter += 'a' - 'A'
				}
				sb.WriteByte(letter)
				hasCastling = true
			}
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// PlacementField returns the piece placement field of a FEN string.
func PlacementField(fen string) string {
	if i := strings.IndexByte(fen, ' '); i >= 0 {
		return fen[:i]
	}
	return fen
}

// PromotedFEN rewrites the placement field of fen so that any pawn of the
// given colour on its promotion row is shown as a Queen. Fields after the
// placement are kept as they are.
func PromotedFEN(fen string, colour chess.Colour) string {
	placement := PlacementField(fen)
	rest := fen[len(placement):]

	rows := strings.Split(placement, "/")
	row := colour.PromotionRow()
	if row >= len(rows) {
		return fen
	}

	pawn, queen := "P", "Q"
	if colour == chess.Dark {
		pawn, queen = "p", "q"
	}
	rows[row] = strings.ReplaceAll(rows[row], pawn, queen)
	return strings.Join(rows, "/") + rest
}
