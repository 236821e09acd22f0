package chess

// PromotionState records an automatic pawn promotion.
type PromotionState struct {
	// Promoted is true when the moving pawn reaches its last row.
	Promoted bool

	// Piece is the replacement piece (always a Queen of the mover's colour).
	Piece Piece

	// FEN is the caller-supplied position rewritten to show the promoted
	// piece, when the caller supplied one.
	FEN string
}

// CastleState records the rook relocation of a castling move.
type CastleState struct {
	RookFrom Position
	RookTo   Position
}

// Kingside reports whether the castling went towards the h-file.
func (c CastleState) Kingside() bool {
	return c.RookFrom.File == BoardSize-1
}

// Move describes one requested transition. It is a scratch value built per
// attempt and carries the special-move details the game needs to apply,
// undo and record it.
type Move struct {
	Source Position
	Target Position

	// Piece is the moving piece as it stood before the move.
	Piece Piece

	// Captured is the piece removed by the move (zero value if none).
	Captured Piece

	Type MoveType

	EnPassant EnPassantState
	Promotion PromotionState
	Castle    CastleState
}

// IsCapture returns true if this move removes an enemy piece.
func (m *Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// IsPromotion returns true if this move is a pawn promotion.
func (m *Move) IsPromotion() bool {
	return m.Promotion.Promoted
}

// IsCastle returns true if this move is a castling move.
func (m *Move) IsCastle() bool {
	return m.Type == Castle
}

// IsDoublePawnAdvance reports whether a pawn moved two squares forward.
func (m *Move) IsDoublePawnAdvance() bool {
	return m.Piece.Kind == Pawn && m.Source.File == m.Target.File && abs(m.Target.Row-m.Source.Row) == 2
}

// Classify builds the Move for going from one square to another on the
// current board, inferring its type from occupancy and piece identity.
// It does not check legality.
func (b *Board) Classify(from, to Position) Move {
	piece := b.At(from).Piece
	target := b.At(to).Piece
	m := Move{Source: from, Target: to, Piece: piece, Captured: target, Type: Normal}

	switch {
	case !target.IsEmpty():
		m.Type = Capture
	case piece.Kind == Pawn && from.File != to.File && b.EnPassant.Targets(to, piece.Colour):
		m.Type = EnPassant
		m.EnPassant = b.EnPassant
		m.Captured = b.At(b.EnPassant.Captured).Piece
	case piece.Kind == King && from.Row == to.Row && abs(to.File-from.File) == 2:
		m.Type = Castle
		m.Castle.RookFrom, m.Castle.RookTo = CastleRookSquares(from, to)
	}

	if piece.Kind == Pawn && to.Row == piece.Colour.PromotionRow() {
		m.Type = Promotion
		m.Promotion.Promoted = true
		m.Promotion.Piece = Piece{Kind: Queen, Colour: piece.Colour}
	}
	return m
}

// ApplyMove relocates the pieces of a move: the moving piece, the pawn
// taken en passant, and the rook of a castling move. Promotion is not
// applied here. Attacker sets are stale afterwards.
func (b *Board) ApplyMove(m *Move) {
	b.PlacePiece(m.Source, m.Target)
	b.RemovePiece(m.Source)

	switch m.Type {
	case EnPassant:
		b.RemovePiece(m.EnPassant.Captured)
	case Castle:
		b.PlacePiece(m.Castle.RookFrom, m.Castle.RookTo)
		b.RemovePiece(m.Castle.RookFrom)
	}
}

// IsSafeAfter reports whether the mover's king is unattacked once the move
// is made. The check runs on a clone; b is not modified.
func (b *Board) IsSafeAfter(m *Move) bool {
	trial := b.Clone()
	trial.ApplyMove(m)
	trial.CalculateAttackedSquares()
	return !trial.IsInCheck(m.Piece.Colour)
}

// IsLegal reports whether a classified move is fully legal: the piece may
// make it and it does not leave the mover's king attacked.
func (b *Board) IsLegal(m *Move) bool {
	return m.Piece.IsLegalDestination(b, m.Source, m.Target, m.Type) && b.IsSafeAfter(m)
}

// LegalDestinations returns every square the piece on from can legally move
// to, in row-major order.
func (b *Board) LegalDestinations(from Position) []Position {
	var out []Position
	b.eachLegalMove(from, func(m *Move) bool {
		out = append(out, m.Target)
		return true
	})
	return out
}

// HasAnyLegalMove reports whether the piece on from has at least one legal
// move.
func (b *Board) HasAnyLegalMove(from Position) bool {
	found := false
	b.eachLegalMove(from, func(*Move) bool {
		found = true
		return false
	})
	return found
}

// eachLegalMove calls fn for every legal move of the piece on from until fn
// returns false.
func (b *Board) eachLegalMove(from Position, fn func(m *Move) bool) {
	piece := b.At(from).Piece
	if piece.IsEmpty() {
		return
	}
	for row := 0; row < BoardSize; row++ {
		for file := 0; file < BoardSize; file++ {
			to := Pos(file, row)
			if to == from || !notOwn(b, to, piece) {
				continue
			}
			m := b.Classify(from, to)
			if b.IsLegal(&m) && !fn(&m) {
				return
			}
		}
	}
}

// HasLegalMoves reports whether any piece of the colour can legally move.
func (b *Board) HasLegalMoves(colour Colour) bool {
	for _, sq := range b.Occupied(colour) {
		if b.HasAnyLegalMove(sq.Position) {
			return true
		}
	}
	return false
}
