package model

// WSMove is a move as clients submit it, squares in algebraic notation.
type WSMove struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Promotion PieceType `json:"promotion"`
}

type SimpleMove struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// MoveRecord holds everything needed to take a move back. It is plain value
// data; Piece and Captured are snapshots taken before the move.
type MoveRecord struct {
	From        Square       `json:"from"`
	To          Square       `json:"to"`
	Piece       Piece        `json:"piece"`
	Captured    *Piece       `json:"capturedPiece"`
	CapturedAt  Square       `json:"capturedAt"`
	IsCastling  bool         `json:"isCastling"`
	IsEnPassant bool         `json:"isEnPassant"`
	Promotion   PieceType    `json:"promotion"`
	// RightsBefore covers both colors; capturing a rook on its corner
	// changes the opponent's rights too.
	RightsBefore    CastleRights `json:"-"`
	EnPassantBefore *Square      `json:"-"`
	Notation        string       `json:"notation"`
}

// CapturedPieces lists captured pieces by the color of the captured piece.
type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

func newCapturedPieces() CapturedPieces {
	return CapturedPieces{
		White: make([]Piece, 0),
		Black: make([]Piece, 0),
	}
}

func (c *CapturedPieces) of(color Color) *[]Piece {
	if color == White {
		return &c.White
	}
	return &c.Black
}

func (c *CapturedPieces) push(p Piece) {
	list := c.of(p.Color)
	*list = append(*list, p)
}

func (c *CapturedPieces) pop(color Color) {
	list := c.of(color)
	if n := len(*list); n > 0 {
		*list = (*list)[:n-1]
	}
}
