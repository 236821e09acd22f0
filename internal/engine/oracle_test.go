package engine

import (
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// oracleFENs are positions whose legal move sets are compared against
// dragontoothmg's generator.
var oracleFENs = map[string]string{
	"Initial":         InitialFEN,
	"Kiwipete":        "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"EnPassant":       "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"PinnedEnPassant": "8/8/8/KPp4r/8/8/8/6k1 w - c6 0 2",
	"Endgame":         "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"Promotions":      "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
	"Position4":       "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"Check":           "rnbqkbnr/ppp2ppp/8/1B1pp3/4P3/8/PPPP1PPP/RNBQK1NR b KQkq - 1 3",
	"FoolsMate":       "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
	"Stalemate":       "7k/5K2/6Q1/8/8/8/8/8 b - - 0 1",
	"PinnedDefender":  "5R1k/6bp/8/8/8/8/8/B1K5 b - - 0 1",
}

// oracleMoves returns dragontoothmg's legal moves as sorted source-target
// strings. Promotions appear once per piece type there, so they are
// truncated and deduplicated.
func oracleMoves(fen string) (moves []string, inCheck bool) {
	board := dragontoothmg.ParseFen(fen)
	legal := board.GenerateLegalMoves()
	seen := make(map[string]bool)
	for i := range legal {
		s := legal[i].String()[:4]
		if !seen[s] {
			seen[s] = true
			moves = append(moves, s)
		}
	}
	sort.Strings(moves)
	return moves, board.OurKingInCheck()
}

func engineMoves(t *testing.T, fen string) ([]string, *Setup) {
	t.Helper()
	s, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) error: %v", fen, err)
	}
	var moves []string
	for _, m := range LegalMoves(s.Board, s.ToMove) {
		m := m
		moves = append(moves, CoordinateString(&m))
	}
	sort.Strings(moves)
	return moves, s
}

func TestLegalMoves_MatchOracle(t *testing.T) {
	for name, fen := range oracleFENs {
		t.Run(name, func(t *testing.T) {
			want, _ := oracleMoves(fen)
			got, _ := engineMoves(t, fen)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("legal moves mismatch (-oracle +engine):\n%s", diff)
			}
		})
	}
}

func TestGameState_MatchOracle(t *testing.T) {
	for name, fen := range oracleFENs {
		t.Run(name, func(t *testing.T) {
			moves, inCheck := oracleMoves(fen)
			_, s := engineMoves(t, fen)

			if got := s.Board.IsInCheck(s.ToMove); got != inCheck {
				t.Errorf("IsInCheck = %v, oracle %v", got, inCheck)
			}
			wantMate := inCheck && len(moves) == 0
			if got := IsCheckmate(s.Board, s.ToMove); got != wantMate {
				t.Errorf("IsCheckmate = %v, oracle %v", got, wantMate)
			}
			wantStale := !inCheck && len(moves) == 0
			if got := IsStalemate(s.Board, s.ToMove); got != wantStale {
				t.Errorf("IsStalemate = %v, oracle %v", got, wantStale)
			}
		})
	}
}

// TestAttackSets_OnBoard verifies no piece ever attacks off the board.
func TestAttackSets_OnBoard(t *testing.T) {
	for name, fen := range oracleFENs {
		t.Run(name, func(t *testing.T) {
			_, s := engineMoves(t, fen)
			for _, colour := range []chess.Colour{chess.Light, chess.Dark} {
				for _, sq := range s.Board.Occupied(colour) {
					for _, p := range sq.Piece.AttackSet(s.Board, sq.Position) {
						if !p.InBoard() {
							t.Errorf("%v on %s attacks off-board %+v", sq.Piece, sq.Name(), p)
						}
					}
				}
			}
		})
	}
}
