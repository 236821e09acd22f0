package chess

import (
	"strings"
)

// EnPassantState describes a live en passant opportunity created by a
// two-square pawn advance.
type EnPassantState struct {
	// Available is true while the capture may be made.
	Available bool

	// Square is the square the advancing pawn skipped over.
	Square Position

	// Captured is the square of the pawn that would be removed.
	Captured Position

	// Turn is the game turn on which the capture is allowed.
	Turn int
}

// Targets reports whether a pawn of the given colour may capture en
// passant onto the square.
func (e EnPassantState) Targets(to Position, capturer Colour) bool {
	if !e.Available || e.Square != to {
		return false
	}
	// The capturer lands on the skipped square, one step beyond the pawn
	// in its own forward direction.
	return e.Square.Row-e.Captured.Row == capturer.Forward()
}

// Board is the 8x8 grid of squares, indexed Squares[row][file].
type Board struct {
	Squares [BoardSize][BoardSize]Square

	// EnPassant holds the en passant square opened by the last move, if any.
	EnPassant EnPassantState
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{}
	for row := 0; row < BoardSize; row++ {
		for file := 0; file < BoardSize; file++ {
			b.Squares[row][file].Position = Pos(file, row)
		}
	}
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[0][file].Piece = NewPiece(backRank[file], Dark)
		b.Squares[1][file].Piece = NewPiece(Pawn, Dark)
		b.Squares[6][file].Piece = NewPiece(Pawn, Light)
		b.Squares[7][file].Piece = NewPiece(backRank[file], Light)
	}
	b.CalculateAttackedSquares()
}

// Clear removes every piece and attacker from the board.
func (b *Board) Clear() {
	for row := range b.Squares {
		for file := range b.Squares[row] {
			b.Squares[row][file].Piece = Piece{}
			b.Squares[row][file].clearAttackers()
		}
	}
	b.EnPassant = EnPassantState{}
}

// At returns the square at a position. The position must be on the board.
func (b *Board) At(p Position) *Square {
	return &b.Squares[p.Row][p.File]
}

// SquareAt returns the square at the given coordinates, or nil if they are
// off the board.
func (b *Board) SquareAt(file, row int) *Square {
	if !IsInBoard(file, row) {
		return nil
	}
	return &b.Squares[row][file]
}

// SquareByName returns the square with the given name, e.g. "E2".
func (b *Board) SquareByName(name string) (*Square, error) {
	p, err := ParsePosition(name)
	if err != nil {
		return nil, err
	}
	return b.At(p), nil
}

// Set places a piece on a square, replacing whatever stood there.
func (b *Board) Set(p Position, piece Piece) {
	b.At(p).Piece = piece
}

// PlacePiece copies the piece on from onto to. The source is left as is.
func (b *Board) PlacePiece(from, to Position) {
	b.At(to).Piece = b.At(from).Piece
}

// RemovePiece empties a square.
func (b *Board) RemovePiece(p Position) {
	b.At(p).Piece = Piece{}
}

// ReversePiece moves the piece on to back to from and puts restored on to.
func (b *Board) ReversePiece(from, to Position, restored Piece) {
	b.At(from).Piece = b.At(to).Piece
	b.At(to).Piece = restored
}

// CalculateAttackedSquares rebuilds every square's attacker set from the
// current piece placement. It must run after any mutation and before any
// check or legality query reads attackers.
func (b *Board) CalculateAttackedSquares() {
	for row := range b.Squares {
		for file := range b.Squares[row] {
			b.Squares[row][file].clearAttackers()
		}
	}
	for row := range b.Squares {
		for file := range b.Squares[row] {
			sq := &b.Squares[row][file]
			if !sq.IsOccupied() {
				continue
			}
			for _, to := range sq.Piece.AttackSet(b, sq.Position) {
				target := b.At(to)
				target.Attackers = append(target.Attackers, Attacker{Piece: sq.Piece, From: sq.Position})
			}
		}
	}
}

// Clone returns a deep copy of the board; attacker sets are not shared.
func (b *Board) Clone() *Board {
	c := &Board{}
	c.copyFrom(b)
	return c
}

// Restore makes b an exact copy of a snapshot taken with Clone.
func (b *Board) Restore(snapshot *Board) {
	b.copyFrom(snapshot)
}

func (b *Board) copyFrom(src *Board) {
	for row := range src.Squares {
		for file := range src.Squares[row] {
			s := &src.Squares[row][file]
			d := &b.Squares[row][file]
			d.Position = s.Position
			d.Piece = s.Piece
			d.Attackers = append(d.Attackers[:0], s.Attackers...)
		}
	}
	b.EnPassant = src.EnPassant
}

// KingSquare returns the square of the king of the given colour, or nil if
// there is none.
func (b *Board) KingSquare(colour Colour) *Square {
	for row := range b.Squares {
		for file := range b.Squares[row] {
			if b.Squares[row][file].Piece.Is(King, colour) {
				return &b.Squares[row][file]
			}
		}
	}
	return nil
}

// IsInCheck reports whether the king of the given colour is attacked.
// Attacker sets must be current.
func (b *Board) IsInCheck(colour Colour) bool {
	king := b.KingSquare(colour)
	return king != nil && king.AttackedBy(colour.Opposite()) > 0
}

// Occupied returns every occupied square of the given colour in row-major
// order.
func (b *Board) Occupied(colour Colour) []*Square {
	var out []*Square
	for row := range b.Squares {
		for file := range b.Squares[row] {
			sq := &b.Squares[row][file]
			if sq.IsOccupied() && sq.Piece.Colour == colour {
				out = append(out, sq)
			}
		}
	}
	return out
}

// Placement returns the piece placement field of FEN for the board,
// starting from rank 8.
func (b *Board) Placement() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		empty := 0
		for file := 0; file < BoardSize; file++ {
			p := b.Squares[row][file].Piece
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row < BoardSize-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// String renders the board as an 8-line diagram, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for file := 0; file < BoardSize; file++ {
			p := b.Squares[row][file].Piece
			if p.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(p.Letter())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
