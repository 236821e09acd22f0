package chess

// behaviour holds the per-kind move and attack rules.
type behaviour struct {
	attacks func(b *Board, from Position, p Piece) []Position
	legal   func(b *Board, from, to Position, p Piece) bool
}

var (
	knightOffsets   = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets     = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs    = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs    = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allDirs         = append(append([][2]int{}, diagonalDirs...), straightDirs...)
	kingsideRookCol = BoardSize - 1
)

// behaviours is indexed by Kind. NoKind has no behaviour.
var behaviours = [NumKinds]behaviour{
	Pawn:   {attacks: pawnAttacks, legal: pawnLegal},
	Knight: {attacks: knightAttacks, legal: offsetLegal(knightOffsets)},
	Bishop: {attacks: sliderAttacks(diagonalDirs), legal: sliderLegal(diagonalDirs)},
	Rook:   {attacks: sliderAttacks(straightDirs), legal: sliderLegal(straightDirs)},
	Queen:  {attacks: sliderAttacks(allDirs), legal: sliderLegal(allDirs)},
	King:   {attacks: kingAttacks, legal: kingLegal},
}

func pawnAttacks(_ *Board, from Position, p Piece) []Position {
	var out []Position
	dir := p.Colour.Forward()
	for _, df := range []int{-1, 1} {
		if to := from.Offset(df, dir); to.InBoard() {
			out = append(out, to)
		}
	}
	return out
}

func pawnLegal(b *Board, from, to Position, p Piece) bool {
	dir := p.Colour.Forward()
	df := to.File - from.File
	dr := to.Row - from.Row
	target := b.At(to).Piece

	if df == 0 {
		if !target.IsEmpty() {
			return false
		}
		if dr == dir {
			return true
		}
		return dr == 2*dir && p.FirstMove && !b.At(from.Offset(0, dir)).IsOccupied()
	}

	if abs(df) != 1 || dr != dir {
		return false
	}
	if !target.IsEmpty() {
		return target.Colour != p.Colour
	}
	return b.EnPassant.Targets(to, p.Colour)
}

func knightAttacks(_ *Board, from Position, _ Piece) []Position {
	return offsetTargets(from, knightOffsets)
}

func kingAttacks(_ *Board, from Position, _ Piece) []Position {
	return offsetTargets(from, kingOffsets)
}

func offsetTargets(from Position, offsets [][2]int) []Position {
	out := make([]Position, 0, len(offsets))
	for _, o := range offsets {
		if to := from.Offset(o[0], o[1]); to.InBoard() {
			out = append(out, to)
		}
	}
	return out
}

func offsetLegal(offsets [][2]int) func(*Board, Position, Position, Piece) bool {
	return func(b *Board, from, to Position, p Piece) bool {
		df, dr := to.File-from.File, to.Row-from.Row
		for _, o := range offsets {
			if o[0] == df && o[1] == dr {
				return notOwn(b, to, p)
			}
		}
		return false
	}
}

// sliderAttacks walks each ray up to and including the first occupied square.
func sliderAttacks(dirs [][2]int) func(*Board, Position, Piece) []Position {
	return func(b *Board, from Position, _ Piece) []Position {
		var out []Position
		for _, d := range dirs {
			for to := from.Offset(d[0], d[1]); to.InBoard(); to = to.Offset(d[0], d[1]) {
				out = append(out, to)
				if b.At(to).IsOccupied() {
					break // Blocked
				}
			}
		}
		return out
	}
}

func sliderLegal(dirs [][2]int) func(*Board, Position, Position, Piece) bool {
	attacks := sliderAttacks(dirs)
	return func(b *Board, from, to Position, p Piece) bool {
		for _, sq := range attacks(b, from, p) {
			if sq == to {
				return notOwn(b, to, p)
			}
		}
		return false
	}
}

func kingLegal(b *Board, from, to Position, p Piece) bool {
	df, dr := to.File-from.File, to.Row-from.Row
	if abs(df) <= 1 && abs(dr) <= 1 {
		return notOwn(b, to, p)
	}
	return dr == 0 && abs(df) == 2 && canCastle(b, from, to, p)
}

// canCastle checks the castling preconditions: an unmoved king and corner
// rook, empty squares between them, and no enemy attack on the king's
// origin, transit or destination square.
func canCastle(b *Board, from, to Position, king Piece) bool {
	if !king.FirstMove || from.Row != king.Colour.HomeRow() {
		return false
	}
	rookFrom, _ := CastleRookSquares(from, to)
	rook := b.At(rookFrom).Piece
	if !rook.Is(Rook, king.Colour) || !rook.FirstMove {
		return false
	}

	step := sign(rookFrom.File - from.File)
	for f := from.File + step; f != rookFrom.File; f += step {
		if b.At(Pos(f, from.Row)).IsOccupied() {
			return false
		}
	}

	enemy := king.Colour.Opposite()
	for _, sq := range []Position{from, from.Offset(step, 0), to} {
		if b.At(sq).AttackedBy(enemy) > 0 {
			return false
		}
	}
	return true
}

// CastleRookSquares returns where the castling rook starts and ends for a
// king moving two files from one square to another.
func CastleRookSquares(kingFrom, kingTo Position) (rookFrom, rookTo Position) {
	if kingTo.File > kingFrom.File {
		return Pos(kingsideRookCol, kingFrom.Row), Pos(kingTo.File-1, kingFrom.Row)
	}
	return Pos(0, kingFrom.Row), Pos(kingTo.File+1, kingFrom.Row)
}

// notOwn reports whether the target square is empty or enemy-occupied.
func notOwn(b *Board, to Position, p Piece) bool {
	target := b.At(to).Piece
	return target.IsEmpty() || target.Colour != p.Colour
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
