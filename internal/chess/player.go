package chess

// Player holds the per-side state of a game.
type Player struct {
	ID     string
	Name   string
	Colour Colour

	HasToMove                bool
	IsCheck                  bool
	IsCheckMate              bool
	IsThreefoldDrawAvailable bool

	// CapturedPieces counts captured enemy pieces by name.
	CapturedPieces map[string]int

	// Points is the material value of everything captured.
	Points int
}

// NewPlayer creates a player with an empty capture tally.
func NewPlayer(id, name string) *Player {
	return &Player{
		ID:             id,
		Name:           name,
		CapturedPieces: make(map[string]int),
	}
}

// TakePiece records a captured piece and adds its value to the score.
func (p *Player) TakePiece(piece Piece) {
	if p.CapturedPieces == nil {
		p.CapturedPieces = make(map[string]int)
	}
	p.CapturedPieces[piece.Name()]++
	p.Points += piece.Points()
}

// CapturedCount returns the number of captured pieces.
func (p *Player) CapturedCount() int {
	n := 0
	for _, c := range p.CapturedPieces {
		n += c
	}
	return n
}
