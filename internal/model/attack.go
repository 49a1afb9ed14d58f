package model

// IsSquareAttacked reports whether any piece of color by controls sq, knight
// augmentation included. Attack maps are rebuilt from scratch on every call.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			piece := p.board[row][col]
			if piece == nil || piece.Color != by {
				continue
			}
			if containsSquare(p.pseudoMoves(Square{Row: row, Col: col}, attackGen), sq) {
				return true
			}
		}
	}
	return false
}

// isInCheck is false for a side without a king.
func (p *Position) isInCheck(color Color) bool {
	king, ok := p.board.kingSquare(color)
	if !ok {
		return false
	}
	return p.IsSquareAttacked(king, color.Opponent())
}

// leavesKingSafe plays from->to on a copy of the position and reports
// whether the mover's king is out of check afterwards. The receiver is
// never modified.
func (p *Position) leavesKingSafe(from, to Square) bool {
	mover := p.pieceAt(from)
	if mover == nil {
		return false
	}
	trial := *p
	if victim, ok := p.enPassantVictim(from, to); ok {
		trial.board.set(victim, nil)
	}
	trial.relocate(from, to)
	return !trial.isInCheck(mover.Color)
}

// legalMoves filters the pseudo-legal destinations of the piece on from,
// whatever its color, down to those that keep its king safe.
func (p *Position) legalMoves(from Square) []Square {
	legal := []Square{}
	for _, to := range p.pseudoMoves(from, moveGen) {
		if p.leavesKingSafe(from, to) {
			legal = append(legal, to)
		}
	}
	return legal
}

func (p *Position) hasLegalMoves(color Color) bool {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			piece := p.board[row][col]
			if piece != nil && piece.Color == color && len(p.legalMoves(Square{Row: row, Col: col})) > 0 {
				return true
			}
		}
	}
	return false
}
