package model

import (
	"errors"
	"fmt"
)

type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var pieceTypeNames = [...]string{
	NoPieceType: "",
	Pawn:        "pawn",
	Knight:      "knight",
	Bishop:      "bishop",
	Rook:        "rook",
	Queen:       "queen",
	King:        "king",
}

func (p PieceType) String() string {
	if int(p) < len(pieceTypeNames) {
		return pieceTypeNames[p]
	}
	return fmt.Sprintf("PieceType(%d)", uint8(p))
}

func (p PieceType) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *PieceType) UnmarshalText(text []byte) error {
	t, err := ParsePieceType(string(text))
	if err != nil {
		return err
	}
	*p = t
	return nil
}

// ParsePieceType accepts the lowercase name ("queen") or the letter code
// ("Q"/"q"). The empty string maps to NoPieceType.
func ParsePieceType(s string) (PieceType, error) {
	if s == "" {
		return NoPieceType, nil
	}
	if len(s) == 1 {
		if t, ok := pieceTypeFromLetter(rune(s[0])); ok {
			return t, nil
		}
	}
	for t, name := range pieceTypeNames {
		if t != int(NoPieceType) && name == s {
			return PieceType(t), nil
		}
	}
	return NoPieceType, fmt.Errorf("unknown piece type %q", s)
}

// letter returns the uppercase notation letter, "P" for pawns.
func (p PieceType) letter() byte {
	switch p {
	case Pawn:
		return 'P'
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Rook:
		return 'R'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	}
	return '?'
}

func pieceTypeFromLetter(r rune) (PieceType, bool) {
	switch r {
	case 'P', 'p':
		return Pawn, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'R', 'r':
		return Rook, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	}
	return NoPieceType, false
}

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	switch string(text) {
	case "white":
		*c = White
	case "black":
		*c = Black
	default:
		return fmt.Errorf("unknown color %q", string(text))
	}
	return nil
}

// homeRow is the back rank of the color; pawnRow is where its pawns start.
func (c Color) homeRow() int {
	if c == White {
		return 7
	}
	return 0
}

func (c Color) pawnRow() int {
	if c == White {
		return 6
	}
	return 1
}

// forward is the row delta of a pawn push.
func (c Color) forward() int {
	if c == White {
		return -1
	}
	return 1
}

// promotionRow is the farthest rank for the color's pawns.
func (c Color) promotionRow() int {
	if c == White {
		return 0
	}
	return 7
}

type Piece struct {
	Type  PieceType `json:"type"`
	Color Color     `json:"color"`
}

// Square addresses the board by row and column. Row 0 is black's back rank.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

var ErrBadSquare = errors.New("invalid square")

func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < 8 && s.Col >= 0 && s.Col < 8
}

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+s.Col, 8-s.Row)
}

func (s Square) file() string {
	return string(rune('a' + s.Col))
}

func (s Square) offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// ParseSquare converts algebraic notation ("e4") to a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrBadSquare, s)
	}
	sq := Square{Row: 8 - int(s[1]-'0'), Col: int(s[0] - 'a')}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("%w: %q", ErrBadSquare, s)
	}
	return sq, nil
}

type Board [8][8]*Piece

func (b *Board) at(sq Square) *Piece {
	return b[sq.Row][sq.Col]
}

func (b *Board) set(sq Square, p *Piece) {
	b[sq.Row][sq.Col] = p
}

func (b *Board) kingSquare(color Color) (Square, bool) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b[row][col]
			if p != nil && p.Type == King && p.Color == color {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}

// clone deep-copies the pieces so the copy can be mutated freely.
func (b *Board) clone() Board {
	var out Board
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := b[row][col]; p != nil {
				cp := *p
				out[row][col] = &cp
			}
		}
	}
	return out
}

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func newBoard() Board {
	var board Board
	for col := 0; col < 8; col++ {
		board[Black.homeRow()][col] = &Piece{Type: backRank[col], Color: Black}
		board[Black.pawnRow()][col] = &Piece{Type: Pawn, Color: Black}
		board[White.pawnRow()][col] = &Piece{Type: Pawn, Color: White}
		board[White.homeRow()][col] = &Piece{Type: backRank[col], Color: White}
	}
	return board
}
