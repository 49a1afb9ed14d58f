package model

type SideRights struct {
	KingSide  bool `json:"kingSide"`
	QueenSide bool `json:"queenSide"`
}

type CastleRights struct {
	White SideRights `json:"white"`
	Black SideRights `json:"black"`
}

func fullCastleRights() CastleRights {
	return CastleRights{
		White: SideRights{KingSide: true, QueenSide: true},
		Black: SideRights{KingSide: true, QueenSide: true},
	}
}

func (c *CastleRights) of(color Color) *SideRights {
	if color == White {
		return &c.White
	}
	return &c.Black
}

// Position is the reversible part of a game: board, side to move, castling
// rights and the en passant window. Copying a Position copies the board
// array, so a copy can be used for trial moves.
type Position struct {
	board    Board
	toMove   Color
	castling CastleRights
	// enPassant is the square of the pawn that just advanced two squares.
	enPassant *Square
}

func newPosition() Position {
	return Position{
		board:    newBoard(),
		toMove:   White,
		castling: fullCastleRights(),
	}
}

func (p *Position) pieceAt(sq Square) *Piece {
	if !sq.Valid() {
		return nil
	}
	return p.board.at(sq)
}

// relocate moves whatever stands on from to to and returns the previous
// occupant of to.
func (p *Position) relocate(from, to Square) *Piece {
	captured := p.board.at(to)
	p.board.set(to, p.board.at(from))
	p.board.set(from, nil)
	return captured
}
