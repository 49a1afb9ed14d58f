package middleware

import (
	"github.com/benbeisheim/ponychess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

// RequireGame rejects requests whose :gameId does not name a live game and
// stores the id in Locals("gameID") for the handlers behind it.
func RequireGame(gameService *service.GameService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		gameID := c.Params("gameId")
		if gameID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "game ID is required",
			})
		}
		if !gameService.GameExists(gameID) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": service.ErrGameNotFound.Error(),
			})
		}

		c.Locals("gameID", gameID)
		return c.Next()
	}
}
