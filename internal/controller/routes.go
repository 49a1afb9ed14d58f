package controller

import (
	"github.com/benbeisheim/ponychess-backend/internal/middleware"
	"github.com/benbeisheim/ponychess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
)

type AppOptions struct {
	AllowOrigins string
	// RequestLog turns on per-request access logging.
	RequestLog bool
}

// NewApp builds the fiber application with every route mounted.
func NewApp(gameService *service.GameService, opts AppOptions) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "ponychess",
	})

	app.Use(recover.New())
	if opts.RequestLog {
		app.Use(logger.New())
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: opts.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))

	gameController := NewGameController(gameService)
	wsController := NewWebSocketController(gameService)

	requireGame := middleware.RequireGame(gameService)

	api := app.Group("/api")
	api.Post("/game", gameController.CreateGame)
	api.Get("/game/:gameId", requireGame, gameController.GetGameState)
	api.Delete("/game/:gameId", requireGame, gameController.DeleteGame)
	api.Get("/game/:gameId/moves/:square", requireGame, gameController.LegalMoves)
	api.Get("/game/:gameId/promotion", requireGame, gameController.NeedsPromotion)
	api.Post("/game/:gameId/move", requireGame, gameController.MakeMove)
	api.Post("/game/:gameId/undo", requireGame, gameController.Undo)
	api.Post("/game/:gameId/reset", requireGame, gameController.Reset)
	api.Post("/game/:gameId/load", requireGame, gameController.LoadSetup)

	app.Get("/ws/game/:gameId",
		requireGame,
		middleware.WebSocketUpgrade(),
		websocket.New(wsController.HandleConnection, websocket.Config{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		}),
	)

	return app
}
