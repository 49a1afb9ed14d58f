package controller

import (
	"errors"

	"github.com/benbeisheim/ponychess-backend/internal/model"
	"github.com/benbeisheim/ponychess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type setupRequest struct {
	Setup string `json:"setup"`
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var req setupRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return errorResponse(c, fiber.StatusBadRequest, err)
		}
	}

	gameID, state, err := gc.gameService.CreateGame(req.Setup)
	if err != nil {
		return errorResponse(c, statusFor(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
		"state":   state,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	state, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return errorResponse(c, statusFor(err), err)
	}
	return c.JSON(state)
}

func (gc *GameController) DeleteGame(c *fiber.Ctx) error {
	if err := gc.gameService.DeleteGame(c.Params("gameId")); err != nil {
		return errorResponse(c, statusFor(err), err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LegalMoves answers GET /moves/:square; ?analysis=true lifts the turn
// restriction.
func (gc *GameController) LegalMoves(c *fiber.Ctx) error {
	square := c.Params("square")
	moves, err := gc.gameService.LegalMoves(c.Params("gameId"), square, c.QueryBool("analysis"))
	if err != nil {
		return errorResponse(c, statusFor(err), err)
	}

	names := make([]string, 0, len(moves))
	for _, m := range moves {
		names = append(names, m.String())
	}
	return c.JSON(fiber.Map{
		"from":  square,
		"moves": names,
	})
}

func (gc *GameController) NeedsPromotion(c *fiber.Ctx) error {
	needs, err := gc.gameService.NeedsPromotion(c.Params("gameId"), c.Query("from"), c.Query("to"))
	if err != nil {
		return errorResponse(c, statusFor(err), err)
	}
	return c.JSON(fiber.Map{"needsPromotion": needs})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var move model.WSMove
	if err := c.BodyParser(&move); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err)
	}

	state, err := gc.gameService.HandleMove(c.Params("gameId"), move)
	if err != nil {
		return errorResponse(c, statusFor(err), err)
	}
	return c.JSON(state)
}

func (gc *GameController) Undo(c *fiber.Ctx) error {
	state, err := gc.gameService.Undo(c.Params("gameId"))
	if err != nil {
		return errorResponse(c, statusFor(err), err)
	}
	return c.JSON(state)
}

func (gc *GameController) Reset(c *fiber.Ctx) error {
	state, err := gc.gameService.Reset(c.Params("gameId"))
	if err != nil {
		return errorResponse(c, statusFor(err), err)
	}
	return c.JSON(state)
}

func (gc *GameController) LoadSetup(c *fiber.Ctx) error {
	var req setupRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err)
	}

	state, err := gc.gameService.LoadSetup(c.Params("gameId"), req.Setup)
	if err != nil {
		return errorResponse(c, statusFor(err), err)
	}
	return c.JSON(state)
}

func errorResponse(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrTooManyGames):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, model.ErrMalformedSetup), errors.Is(err, model.ErrBadSquare):
		return fiber.StatusBadRequest
	case errors.Is(err, model.ErrNoPiece),
		errors.Is(err, model.ErrNotYourTurn),
		errors.Is(err, model.ErrIllegalMove),
		errors.Is(err, model.ErrInvalidPromotion),
		errors.Is(err, model.ErrNoHistory):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}
