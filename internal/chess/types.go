// Package chess provides the board model of the rules engine: positions,
// squares, pieces and their move/attack behaviour, and players.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Light Colour = iota
	Dark
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == Light {
		return "Light"
	}
	return "Dark"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == Light {
		return Dark
	}
	return Light
}

// Forward returns the row delta a pawn of this colour advances by.
// Row 0 is rank 8, so Light pawns move towards smaller rows.
func (c Colour) Forward() int {
	if c == Light {
		return -1
	}
	return 1
}

// HomeRow returns the back row of the colour.
func (c Colour) HomeRow() int {
	if c == Light {
		return BoardSize - 1
	}
	return 0
}

// PromotionRow returns the row on which a pawn of this colour promotes.
func (c Colour) PromotionRow() int {
	return c.Opposite().HomeRow()
}

// Kind identifies a piece variant.
type Kind int

const (
	NoKind Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Points returns the material value of a kind.
func (k Kind) Points() int {
	switch k {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	default:
		return 0
	}
}

// IsSlider reports whether the kind attacks along rays.
func (k Kind) IsSlider() bool {
	return k == Bishop || k == Rook || k == Queen
}

// MoveType classifies a requested transition.
type MoveType int

const (
	Normal MoveType = iota
	Capture
	EnPassant
	Castle
	Promotion
)

// String returns the string representation of a move type.
func (t MoveType) String() string {
	switch t {
	case Normal:
		return "Normal"
	case Capture:
		return "Capture"
	case EnPassant:
		return "EnPassant"
	case Castle:
		return "Castle"
	case Promotion:
		return "Promotion"
	default:
		return "Unknown"
	}
}

// Board dimensions and square naming.
const (
	BoardSize = 8

	FileBase = 'a'
	RankBase = '1'
)
