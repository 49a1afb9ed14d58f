package model

import "fmt"

type GameStatus uint8

const (
	Playing GameStatus = iota
	Check
	Checkmate
	Stalemate
)

func (s GameStatus) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "playing"
}

func (s GameStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *GameStatus) UnmarshalText(text []byte) error {
	for _, status := range []GameStatus{Playing, Check, Checkmate, Stalemate} {
		if status.String() == string(text) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("unknown game status %q", string(text))
}

// Terminal reports whether the side to move has no legal moves left.
func (s GameStatus) Terminal() bool {
	return s == Checkmate || s == Stalemate
}

// Game is a single rules session. It is not safe for concurrent use; the
// caller serializes access.
type Game struct {
	pos      Position
	history  []MoveRecord
	captured CapturedPieces
	status   GameStatus
}

func NewGame() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// Reset restores the initial layout with white to move.
func (g *Game) Reset() {
	g.setPosition(newPosition())
}

func (g *Game) setPosition(pos Position) {
	g.pos = pos
	g.history = make([]MoveRecord, 0)
	g.captured = newCapturedPieces()
	g.updateStatus()
}

func (g *Game) updateStatus() {
	side := g.pos.toMove
	inCheck := g.pos.isInCheck(side)
	hasLegal := g.pos.hasLegalMoves(side)
	switch {
	case inCheck && !hasLegal:
		g.status = Checkmate
	case inCheck:
		g.status = Check
	case !hasLegal:
		g.status = Stalemate
	default:
		g.status = Playing
	}
}

func (g *Game) Status() GameStatus {
	return g.status
}

func (g *Game) ToMove() Color {
	return g.pos.toMove
}

func (g *Game) IsInCheck(color Color) bool {
	return g.pos.isInCheck(color)
}

func (g *Game) IsSquareAttacked(sq Square, by Color) bool {
	return g.pos.IsSquareAttacked(sq, by)
}

// PieceAt returns a copy of the piece on sq.
func (g *Game) PieceAt(sq Square) (Piece, bool) {
	p := g.pos.pieceAt(sq)
	if p == nil {
		return Piece{}, false
	}
	return *p, true
}

func (g *Game) CastleRights() CastleRights {
	return g.pos.castling
}

// EnPassant returns the square of the pawn that can currently be taken en
// passant.
func (g *Game) EnPassant() (Square, bool) {
	if g.pos.enPassant == nil {
		return Square{}, false
	}
	return *g.pos.enPassant, true
}

func (g *Game) History() []MoveRecord {
	return append([]MoveRecord(nil), g.history...)
}

func (g *Game) Captured() CapturedPieces {
	return CapturedPieces{
		White: append(make([]Piece, 0, len(g.captured.White)), g.captured.White...),
		Black: append(make([]Piece, 0, len(g.captured.Black)), g.captured.Black...),
	}
}

// LegalMoves lists the legal destinations from sq. It is empty when sq is
// empty or holds a piece of the side not to move.
func (g *Game) LegalMoves(sq Square) []Square {
	piece := g.pos.pieceAt(sq)
	if piece == nil || piece.Color != g.pos.toMove {
		return []Square{}
	}
	return g.pos.legalMoves(sq)
}

// AnalysisMoves is LegalMoves without the turn restriction.
func (g *Game) AnalysisMoves(sq Square) []Square {
	if g.pos.pieceAt(sq) == nil {
		return []Square{}
	}
	return g.pos.legalMoves(sq)
}

// AllLegalMoves lists every legal move of the side to move.
func (g *Game) AllLegalMoves() []SimpleMove {
	moves := []SimpleMove{}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			from := Square{Row: row, Col: col}
			for _, to := range g.LegalMoves(from) {
				moves = append(moves, SimpleMove{From: from, To: to})
			}
		}
	}
	return moves
}

// NeedsPromotion reports whether moving the piece on from to to would put a
// pawn on its last rank.
func (g *Game) NeedsPromotion(from, to Square) bool {
	piece := g.pos.pieceAt(from)
	return piece != nil && piece.Type == Pawn && to.Row == piece.Color.promotionRow()
}

// MakeMove validates and plays from->to. promotion may be NoPieceType, in
// which case a promoting pawn becomes a queen. A rejected move leaves the
// game untouched.
func (g *Game) MakeMove(from, to Square, promotion PieceType) error {
	piece := g.pos.pieceAt(from)
	if piece == nil {
		return ErrNoPiece
	}
	if piece.Color != g.pos.toMove {
		return ErrNotYourTurn
	}
	if !to.Valid() || !containsSquare(g.pos.legalMoves(from), to) {
		return fmt.Errorf("%w: %s%s", ErrIllegalMove, from, to)
	}
	if g.NeedsPromotion(from, to) {
		switch promotion {
		case NoPieceType:
			promotion = Queen
		case Knight, Bishop, Rook, Queen:
		default:
			return fmt.Errorf("%w: %s", ErrInvalidPromotion, promotion)
		}
	} else {
		promotion = NoPieceType
	}

	g.executeMove(from, to, promotion)
	return nil
}
