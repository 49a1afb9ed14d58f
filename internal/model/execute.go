package model

// executeMove plays a move already known to be legal.
func (g *Game) executeMove(from, to Square, promotion PieceType) {
	pos := &g.pos
	piece := pos.board.at(from)

	record := MoveRecord{
		From:         from,
		To:           to,
		Piece:        *piece,
		CapturedAt:   to,
		RightsBefore: pos.castling,
	}
	if pos.enPassant != nil {
		ep := *pos.enPassant
		record.EnPassantBefore = &ep
	}

	// captures, en passant takes the pawn beside the mover
	if victim, ok := pos.enPassantVictim(from, to); ok {
		record.IsEnPassant = true
		record.CapturedAt = victim
	}
	if captured := pos.board.at(record.CapturedAt); captured != nil {
		snapshot := *captured
		record.Captured = &snapshot
		g.captured.push(snapshot)
		pos.board.set(record.CapturedAt, nil)
	}

	if isCastlingMove(piece, from, to) {
		side, _ := castleSideFor(to.Col)
		pos.relocate(Square{Row: from.Row, Col: side.rookCol}, Square{Row: from.Row, Col: side.rookTo})
		record.IsCastling = true
	}

	pos.updateCastleRights(piece, from, record.Captured, record.CapturedAt)

	pos.enPassant = nil
	if piece.Type == Pawn && abs(to.Row-from.Row) == 2 {
		sq := to
		pos.enPassant = &sq
	}

	pos.relocate(from, to)

	if promotion != NoPieceType {
		piece.Type = promotion
		record.Promotion = promotion
	}

	g.history = append(g.history, record)
	pos.toMove = pos.toMove.Opponent()
	g.updateStatus()
	g.history[len(g.history)-1].Notation = notation(record, g.status)
}

// updateCastleRights drops both rights on a king move, one right when a rook
// leaves file a or h, and one right when a rook is captured on its corner.
func (p *Position) updateCastleRights(mover *Piece, from Square, captured *Piece, capturedAt Square) {
	rights := p.castling.of(mover.Color)
	switch mover.Type {
	case King:
		rights.KingSide = false
		rights.QueenSide = false
	case Rook:
		clearFileRight(rights, from.Col)
	}
	if captured != nil && captured.Type == Rook {
		clearCornerRight(p.castling.of(captured.Color), captured.Color, capturedAt)
	}
}

func clearFileRight(rights *SideRights, col int) {
	switch col {
	case 0:
		rights.QueenSide = false
	case 7:
		rights.KingSide = false
	}
}

func clearCornerRight(rights *SideRights, color Color, sq Square) {
	if sq.Row == color.homeRow() {
		clearFileRight(rights, sq.Col)
	}
}

// UndoMove takes back the last move. The captured piece, if any, goes back
// to the square it was taken from, which differs from the destination for
// en passant.
func (g *Game) UndoMove() error {
	if len(g.history) == 0 {
		return ErrNoHistory
	}
	record := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	pos := &g.pos

	piece := pos.board.at(record.To)
	pos.board.set(record.To, nil)
	piece.Type = record.Piece.Type
	pos.board.set(record.From, piece)

	if record.Captured != nil {
		restored := *record.Captured
		pos.board.set(record.CapturedAt, &restored)
		g.captured.pop(restored.Color)
	}

	if record.IsCastling {
		side, _ := castleSideFor(record.To.Col)
		row := record.From.Row
		pos.relocate(Square{Row: row, Col: side.rookTo}, Square{Row: row, Col: side.rookCol})
	}

	pos.castling = record.RightsBefore
	pos.enPassant = nil
	if record.EnPassantBefore != nil {
		ep := *record.EnPassantBefore
		pos.enPassant = &ep
	}
	pos.toMove = record.Piece.Color
	g.updateStatus()
	return nil
}
