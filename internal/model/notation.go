package model

import "strings"

// notation renders a short algebraic label for a played move. status is the
// state of the side to move after it.
func notation(record MoveRecord, status GameStatus) string {
	var sb strings.Builder
	switch {
	case record.IsCastling && record.To.Col == 6:
		sb.WriteString("O-O")
	case record.IsCastling:
		sb.WriteString("O-O-O")
	default:
		if record.Piece.Type != Pawn {
			sb.WriteByte(record.Piece.Type.letter())
		} else if record.Captured != nil {
			sb.WriteString(record.From.file())
		}
		if record.Captured != nil {
			sb.WriteByte('x')
		}
		sb.WriteString(record.To.String())
		if record.Promotion != NoPieceType {
			sb.WriteByte('=')
			sb.WriteByte(record.Promotion.letter())
		}
	}

	switch status {
	case Check:
		sb.WriteByte('+')
	case Checkmate:
		sb.WriteByte('#')
	}
	return sb.String()
}
