package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/benbeisheim/ponychess-backend/internal/config"
	"github.com/benbeisheim/ponychess-backend/internal/controller"
	"github.com/benbeisheim/ponychess-backend/internal/service"
)

func main() {
	cfg, err := config.Load(os.Getenv("CHESS_CONFIG"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Printf("Starting ponychess (%s)", cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize services
	gameManager := service.NewGameManager(cfg.Games.MaxGames, cfg.IdleTTL())
	gameService := service.NewGameService(gameManager)
	if cfg.SweepInterval() > 0 {
		go gameManager.RunSweeper(ctx, cfg.SweepInterval())
	}

	app := controller.NewApp(gameService, controller.AppOptions{
		AllowOrigins: cfg.CORS.AllowOrigins,
		RequestLog:   cfg.RequestLog,
	})

	go func() {
		<-ctx.Done()
		log.Println("Shutting down")
		if err := app.Shutdown(); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	if err := app.Listen(cfg.Addr()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
