package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Position is a board coordinate. File 0..7 maps to a..h; Row 0 is rank 8
// and Row 7 is rank 1.
type Position struct {
	File int
	Row  int
}

// IsInBoard reports whether the coordinate lies on the board.
func IsInBoard(file, row int) bool {
	return file >= 0 && file < BoardSize && row >= 0 && row < BoardSize
}

// Pos returns the position for a file/row pair.
func Pos(file, row int) Position {
	return Position{File: file, Row: row}
}

// InBoard reports whether p lies on the board.
func (p Position) InBoard() bool {
	return IsInBoard(p.File, p.Row)
}

// Offset returns p shifted by the given file and row deltas.
func (p Position) Offset(df, dr int) Position {
	return Position{File: p.File + df, Row: p.Row + dr}
}

// FileLetter returns the lowercase file letter.
func (p Position) FileLetter() byte {
	return byte(FileBase + p.File)
}

// RankDigit returns the rank digit character.
func (p Position) RankDigit() byte {
	return byte(RankBase + BoardSize - 1 - p.Row)
}

// Name returns the square name, e.g. "e4".
func (p Position) Name() string {
	if !p.InBoard() {
		return fmt.Sprintf("[%d, %d]", p.Row, p.File)
	}
	return string([]byte{p.FileLetter(), p.RankDigit()})
}

// String implements fmt.Stringer.
func (p Position) String() string {
	return p.Name()
}

// ParsePosition converts a square name such as "E2" or "e2" into a Position.
// The file letter is case-insensitive.
func ParsePosition(name string) (Position, error) {
	if len(name) != 2 {
		return Position{}, fmt.Errorf("square %q: %w", name, errors.ErrInvalidSquare)
	}
	f := name[0]
	if f >= 'A' && f <= 'H' {
		f += 'a' - 'A'
	}
	r := name[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return Position{}, fmt.Errorf("square %q: %w", name, errors.ErrInvalidSquare)
	}
	return Position{File: int(f - FileBase), Row: BoardSize - 1 - int(r-RankBase)}, nil
}

// MustParsePosition is like ParsePosition but panics on malformed input.
// Intended for constants and tests.
func MustParsePosition(name string) Position {
	p, err := ParsePosition(name)
	if err != nil {
		panic(err)
	}
	return p
}
