package matchmaker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/astralfront/supremacy/internal/dependencies/random"
	"github.com/astralfront/supremacy/internal/model"
	"github.com/astralfront/supremacy/internal/services/galaxy"
	"github.com/astralfront/supremacy/internal/services/identity"
)

// idAttempts bounds the collision retry loop when minting game ids
const idAttempts = 5

// Service is the stateless coordinator between players and games: it
// mints a fresh game id, creates the game actor at that id, and records
// the game against the creator. It holds no durable state of its own.
type Service struct {
	galaxy   *galaxy.Service
	identity *identity.Service
	random   random.Random
	logger   *slog.Logger
}

// New creates a new matchmaker service
func New(galaxySvc *galaxy.Service, identitySvc *identity.Service, rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		galaxy:   galaxySvc,
		identity: identitySvc,
		random:   rnd,
		logger:   logger,
	}
}

// CreateGame creates a new game for the caller and returns its id
func (s *Service) CreateGame(ctx context.Context, ident model.Identity, settings model.GameSettings) (model.GameID, error) {
	gameID, err := s.mintGameID(ctx)
	if err != nil {
		return "", err
	}

	if _, err := s.galaxy.Create(ctx, gameID, ident.UserID, settings); err != nil {
		return "", err
	}

	track := model.UserGame{ID: gameID, Side: settings.Faction}
	if err := s.identity.TrackGame(ctx, ident.Username, track); err != nil {
		return "", err
	}

	s.logger.Info("game matched",
		slog.String("game_id", string(gameID)),
		slog.String("user_id", string(ident.UserID)),
		slog.String("faction", string(settings.Faction)),
	)
	return gameID, nil
}

// mintGameID generates an id no existing game actor holds
func (s *Service) mintGameID(ctx context.Context) (model.GameID, error) {
	for i := 0; i < idAttempts; i++ {
		gameID := model.GameID("g_" + s.random.Hex(8))
		exists, err := s.galaxy.Exists(ctx, gameID)
		if err != nil {
			return "", err
		}
		if !exists {
			return gameID, nil
		}
	}
	return "", fmt.Errorf("could not mint a unique game id after %d attempts", idAttempts)
}
