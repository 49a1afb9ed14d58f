package service

import (
	"fmt"
	"log"

	"github.com/benbeisheim/ponychess-backend/internal/model"
	"github.com/google/uuid"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

// CreateGame starts a session from the standard layout, or from setup when
// it is not empty.
func (gs *GameService) CreateGame(setup string) (string, model.GameState, error) {
	if setup == "" {
		setup = model.StartSetup
	}
	game, err := model.ParseSetup(setup)
	if err != nil {
		return "", model.GameState{}, err
	}

	gameID := uuid.New().String()
	if err := gs.gameManager.CreateGame(gameID, game); err != nil {
		return "", model.GameState{}, fmt.Errorf("failed to create game: %w", err)
	}
	log.Printf("game %s created", gameID)
	return gameID, game.State(), nil
}

func (gs *GameService) DeleteGame(gameID string) error {
	if err := gs.gameManager.RemoveGame(gameID); err != nil {
		return err
	}
	log.Printf("game %s removed", gameID)
	return nil
}

func (gs *GameService) GameExists(gameID string) bool {
	_, err := gs.gameManager.GetSession(gameID)
	return err == nil
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.withState(gameID, func(g *model.Game) error { return nil })
}

// LegalMoves lists destinations from square. With analysis set the turn is
// ignored, so either side's pieces can be inspected.
func (gs *GameService) LegalMoves(gameID, square string, analysis bool) ([]model.Square, error) {
	from, err := model.ParseSquare(square)
	if err != nil {
		return nil, err
	}

	var moves []model.Square
	err = gs.do(gameID, func(g *model.Game) error {
		if analysis {
			moves = g.AnalysisMoves(from)
		} else {
			moves = g.LegalMoves(from)
		}
		return nil
	})
	return moves, err
}

func (gs *GameService) NeedsPromotion(gameID, fromSquare, toSquare string) (bool, error) {
	from, err := model.ParseSquare(fromSquare)
	if err != nil {
		return false, err
	}
	to, err := model.ParseSquare(toSquare)
	if err != nil {
		return false, err
	}

	var needs bool
	err = gs.do(gameID, func(g *model.Game) error {
		needs = g.NeedsPromotion(from, to)
		return nil
	})
	return needs, err
}

func (gs *GameService) HandleMove(gameID string, move model.WSMove) (model.GameState, error) {
	from, err := model.ParseSquare(move.From)
	if err != nil {
		return model.GameState{}, err
	}
	to, err := model.ParseSquare(move.To)
	if err != nil {
		return model.GameState{}, err
	}

	return gs.withState(gameID, func(g *model.Game) error {
		if err := g.MakeMove(from, to, move.Promotion); err != nil {
			log.Printf("game %s: rejected %s%s: %v", gameID, from, to, err)
			return err
		}
		return nil
	})
}

func (gs *GameService) Undo(gameID string) (model.GameState, error) {
	return gs.withState(gameID, func(g *model.Game) error {
		return g.UndoMove()
	})
}

func (gs *GameService) Reset(gameID string) (model.GameState, error) {
	return gs.withState(gameID, func(g *model.Game) error {
		g.Reset()
		return nil
	})
}

func (gs *GameService) LoadSetup(gameID, setup string) (model.GameState, error) {
	return gs.withState(gameID, func(g *model.Game) error {
		return g.Load(setup)
	})
}

func (gs *GameService) do(gameID string, fn func(g *model.Game) error) error {
	session, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return err
	}
	return session.Do(fn)
}

// withState runs fn and snapshots the game under the same lock.
func (gs *GameService) withState(gameID string, fn func(g *model.Game) error) (model.GameState, error) {
	var state model.GameState
	err := gs.do(gameID, func(g *model.Game) error {
		if err := fn(g); err != nil {
			return err
		}
		state = g.State()
		return nil
	})
	return state, err
}
