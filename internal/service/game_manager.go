package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/benbeisheim/ponychess-backend/internal/model"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
	ErrTooManyGames = errors.New("too many active games")
)

// Session wraps one engine instance. The engine itself has no locking, so
// every access goes through Do.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	game     *model.Game
	lastUsed time.Time
}

// Do runs fn with exclusive access to the session's game.
func (s *Session) Do(fn func(g *model.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed = time.Now()
	return fn(s.game)
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

type GameManager struct {
	games    map[string]*Session
	maxGames int
	idleTTL  time.Duration
	mu       sync.RWMutex
}

// NewGameManager creates an empty registry. maxGames <= 0 means unbounded,
// idleTTL <= 0 disables sweeping.
func NewGameManager(maxGames int, idleTTL time.Duration) *GameManager {
	return &GameManager{
		games:    make(map[string]*Session),
		maxGames: maxGames,
		idleTTL:  idleTTL,
	}
}

func (gm *GameManager) CreateGame(gameID string, game *model.Game) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return ErrGameExists
	}
	if gm.maxGames > 0 && len(gm.games) >= gm.maxGames {
		return ErrTooManyGames
	}

	now := time.Now()
	gm.games[gameID] = &Session{
		ID:        gameID,
		CreatedAt: now,
		game:      game,
		lastUsed:  now,
	}
	return nil
}

func (gm *GameManager) GetSession(gameID string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	session, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return session, nil
}

func (gm *GameManager) RemoveGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; !exists {
		return ErrGameNotFound
	}
	delete(gm.games, gameID)
	return nil
}

func (gm *GameManager) Count() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.games)
}

// RunSweeper drops idle sessions every interval until ctx is done.
func (gm *GameManager) RunSweeper(ctx context.Context, interval time.Duration) {
	if gm.idleTTL <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := gm.sweep(now); n > 0 {
				log.Printf("swept %d idle games", n)
			}
		}
	}
}

func (gm *GameManager) sweep(now time.Time) int {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	removed := 0
	for id, session := range gm.games {
		if now.Sub(session.idleSince()) > gm.idleTTL {
			delete(gm.games, id)
			removed++
		}
	}
	return removed
}
