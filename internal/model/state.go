package model

// GameState is the JSON view of a game handed to clients.
type GameState struct {
	Board          Board          `json:"board"`
	ToMove         Color          `json:"toMove"`
	Status         GameStatus     `json:"status"`
	IsCheck        bool           `json:"isCheck"`
	CastleRights   CastleRights   `json:"castleRights"`
	EnPassant      *Square        `json:"enPassant"`
	LastMove       *MoveRecord    `json:"lastMove"`
	MoveHistory    []string       `json:"moveHistory"`
	CapturedPieces CapturedPieces `json:"capturedPieces"`
	Setup          string         `json:"setup"`
}

// State takes a snapshot that shares nothing with the game.
func (g *Game) State() GameState {
	state := GameState{
		Board:          g.pos.board.clone(),
		ToMove:         g.pos.toMove,
		Status:         g.status,
		IsCheck:        g.status == Check || g.status == Checkmate,
		CastleRights:   g.pos.castling,
		MoveHistory:    make([]string, 0, len(g.history)),
		CapturedPieces: g.Captured(),
		Setup:          g.Setup(),
	}
	if ep, ok := g.EnPassant(); ok {
		state.EnPassant = &ep
	}
	for _, record := range g.history {
		state.MoveHistory = append(state.MoveHistory, record.Notation)
	}
	if n := len(g.history); n > 0 {
		last := g.history[n-1]
		state.LastMove = &last
	}
	return state
}
