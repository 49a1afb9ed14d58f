package model

import (
	"fmt"
	"strings"
	"unicode"
)

// StartSetup is the initial layout in setup notation.
const StartSetup = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"

// ParseSetup builds a game from a compact setup string: eight ranks from
// black's back rank down separated by '/', a side to move token ("w" or
// "b"), and optionally a castling field and an en passant target square.
// Without a castling field all rights are granted.
func ParseSetup(setup string) (*Game, error) {
	pos, err := parsePosition(setup)
	if err != nil {
		return nil, err
	}
	g := &Game{}
	g.setPosition(pos)
	return g, nil
}

// Load replaces the game with the parsed setup. On error the game is left
// as it was.
func (g *Game) Load(setup string) error {
	pos, err := parsePosition(setup)
	if err != nil {
		return err
	}
	g.setPosition(pos)
	return nil
}

func parsePosition(setup string) (Position, error) {
	fields := strings.Fields(setup)
	if len(fields) < 2 {
		return Position{}, fmt.Errorf("%w: need placement and side to move, got %d fields", ErrMalformedSetup, len(fields))
	}

	var pos Position
	if err := parsePlacement(&pos.board, fields[0]); err != nil {
		return Position{}, err
	}

	switch fields[1] {
	case "w":
		pos.toMove = White
	case "b":
		pos.toMove = Black
	default:
		return Position{}, fmt.Errorf("%w: %q", ErrBadSideToMove, fields[1])
	}

	pos.castling = fullCastleRights()
	if len(fields) > 2 {
		rights, err := parseCastling(fields[2])
		if err != nil {
			return Position{}, err
		}
		pos.castling = rights
	}

	if len(fields) > 3 && fields[3] != "-" {
		ep, err := parseEnPassant(&pos, fields[3])
		if err != nil {
			return Position{}, err
		}
		pos.enPassant = &ep
	}
	return pos, nil
}

func parsePlacement(board *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: got %d", ErrBadRankCount, len(ranks))
	}

	kings := [2]int{}
	for row, rank := range ranks {
		col := 0
		for _, r := range rank {
			if r >= '1' && r <= '8' {
				col += int(r - '0')
				if col > 8 {
					return fmt.Errorf("%w: %q", ErrBadRankLength, rank)
				}
				continue
			}
			pieceType, ok := pieceTypeFromLetter(r)
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownPiece, r)
			}
			if col >= 8 {
				return fmt.Errorf("%w: %q", ErrBadRankLength, rank)
			}
			color := White
			if unicode.IsLower(r) {
				color = Black
			}
			if pieceType == King {
				kings[color]++
				if kings[color] > 1 {
					return fmt.Errorf("%w: %s", ErrTooManyKings, color)
				}
			}
			board[row][col] = &Piece{Type: pieceType, Color: color}
			col++
		}
		if col != 8 {
			return fmt.Errorf("%w: %q", ErrBadRankLength, rank)
		}
	}
	return nil
}

func parseCastling(field string) (CastleRights, error) {
	var rights CastleRights
	if field == "-" {
		return rights, nil
	}
	for _, r := range field {
		switch r {
		case 'K':
			rights.White.KingSide = true
		case 'Q':
			rights.White.QueenSide = true
		case 'k':
			rights.Black.KingSide = true
		case 'q':
			rights.Black.QueenSide = true
		default:
			return CastleRights{}, fmt.Errorf("%w: %q", ErrBadCastling, field)
		}
	}
	return rights, nil
}

// parseEnPassant takes the passed-over square and returns the square of the
// pawn that made the double step, which must hold an enemy pawn.
func parseEnPassant(pos *Position, field string) (Square, error) {
	target, err := ParseSquare(field)
	if err != nil {
		return Square{}, fmt.Errorf("%w: %q", ErrBadEnPassant, field)
	}
	mover := pos.toMove.Opponent()
	pawnSq := target.offset(mover.forward(), 0)
	if pawnSq.Row != mover.pawnRow()+2*mover.forward() {
		return Square{}, fmt.Errorf("%w: %q is not on the passed rank", ErrBadEnPassant, field)
	}
	pawn := pos.board.at(pawnSq)
	if pawn == nil || pawn.Type != Pawn || pawn.Color != mover {
		return Square{}, fmt.Errorf("%w: no %s pawn on %s", ErrBadEnPassant, mover, pawnSq)
	}
	return pawnSq, nil
}

// Setup serializes the position with all four fields.
func (g *Game) Setup() string {
	pos := &g.pos
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < 8; col++ {
			p := pos.board[row][col]
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			letter := p.Type.letter()
			if p.Color == Black {
				letter = byte(unicode.ToLower(rune(letter)))
			}
			sb.WriteByte(letter)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}

	if pos.toMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	rights := ""
	if pos.castling.White.KingSide {
		rights += "K"
	}
	if pos.castling.White.QueenSide {
		rights += "Q"
	}
	if pos.castling.Black.KingSide {
		rights += "k"
	}
	if pos.castling.Black.QueenSide {
		rights += "q"
	}
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)

	sb.WriteByte(' ')
	sb.WriteString(enPassantField(pos))
	return sb.String()
}

func enPassantField(pos *Position) string {
	if pos.enPassant == nil {
		return "-"
	}
	pawn := pos.pieceAt(*pos.enPassant)
	if pawn == nil {
		return "-"
	}
	return pos.enPassant.offset(-pawn.Color.forward(), 0).String()
}
