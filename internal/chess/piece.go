package chess

import "unicode"

// Piece is a coloured piece value. The zero value is "no piece".
// A piece does not know which square it stands on; the board grid does.
type Piece struct {
	Kind   Kind
	Colour Colour

	// FirstMove is true until the piece has moved. It gates castling and
	// the two-square pawn advance.
	FirstMove bool
}

// NewPiece creates a piece that has not moved yet.
func NewPiece(kind Kind, colour Colour) Piece {
	return Piece{Kind: kind, Colour: colour, FirstMove: true}
}

// IsEmpty reports whether p represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Is reports whether p is of the given kind and colour.
func (p Piece) Is(kind Kind, colour Colour) bool {
	return p.Kind == kind && p.Colour == colour
}

// Name returns the display name of the piece kind.
func (p Piece) Name() string {
	return p.Kind.String()
}

// Symbol returns the notation symbol; pawns have none.
func (p Piece) Symbol() string {
	if p.Kind == Pawn || p.Kind == NoKind {
		return ""
	}
	return string(p.Kind.Letter())
}

// Letter returns the FEN letter: uppercase for Light, lowercase for Dark.
func (p Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Colour == Dark {
		l = byte(unicode.ToLower(rune(l)))
	}
	return l
}

// Points returns the material value of the piece.
func (p Piece) Points() int {
	return p.Kind.Points()
}

// String implements fmt.Stringer.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// AttackSet returns the squares this piece threatens from the given
// position. Pawns attack diagonally whether or not they could move there.
// The result never contains off-board positions.
func (p Piece) AttackSet(b *Board, from Position) []Position {
	if p.IsEmpty() {
		return nil
	}
	return behaviours[p.Kind].attacks(b, from, p)
}

// IsLegalDestination reports whether the piece may go from one square to
// another under geometry and occupancy rules for the given move type.
// It does not consider whether the mover's king would be left in check.
func (p Piece) IsLegalDestination(b *Board, from, to Position, mt MoveType) bool {
	if p.IsEmpty() || !from.InBoard() || !to.InBoard() || from == to {
		return false
	}
	target := b.At(to).Piece
	switch mt {
	case Normal, Castle:
		if !target.IsEmpty() {
			return false
		}
	case Capture:
		if target.IsEmpty() || target.Colour == p.Colour {
			return false
		}
	case EnPassant:
		if p.Kind != Pawn || !target.IsEmpty() || !b.EnPassant.Targets(to, p.Colour) {
			return false
		}
	case Promotion:
		if p.Kind != Pawn || to.Row != p.Colour.PromotionRow() {
			return false
		}
		if !target.IsEmpty() && target.Colour == p.Colour {
			return false
		}
	}
	return behaviours[p.Kind].legal(b, from, to, p)
}
