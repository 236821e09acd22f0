package chess

// Attacker records a piece that threatens a square and where it stands.
type Attacker struct {
	Piece Piece
	From  Position
}

// Square is one board cell. Piece is the zero value when the square is empty.
type Square struct {
	Position  Position
	Piece     Piece
	Attackers []Attacker
}

// Name returns the square name, e.g. "e4".
func (s *Square) Name() string {
	return s.Position.Name()
}

// IsOccupied reports whether a piece stands on the square.
func (s *Square) IsOccupied() bool {
	return !s.Piece.IsEmpty()
}

// AttackedBy returns how many pieces of the given colour attack the square.
func (s *Square) AttackedBy(colour Colour) int {
	n := 0
	for _, a := range s.Attackers {
		if a.Piece.Colour == colour {
			n++
		}
	}
	return n
}

// AttackersOf returns the attackers of the given colour.
func (s *Square) AttackersOf(colour Colour) []Attacker {
	var out []Attacker
	for _, a := range s.Attackers {
		if a.Piece.Colour == colour {
			out = append(out, a)
		}
	}
	return out
}

// clearAttackers empties the attacker set while keeping its storage.
func (s *Square) clearAttackers() {
	s.Attackers = s.Attackers[:0]
}
