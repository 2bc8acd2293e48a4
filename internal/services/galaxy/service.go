package galaxy

import (
	"context"
	"errors"
	"log/slog"

	"github.com/astralfront/supremacy/internal/actor"
	"github.com/astralfront/supremacy/internal/dependencies/clock"
	"github.com/astralfront/supremacy/internal/dependencies/random"
	"github.com/astralfront/supremacy/internal/model"
	"github.com/astralfront/supremacy/internal/storage"
)

// Durable fields of a game actor
const (
	fieldState = "state"
)

func viewField(faction model.Faction) string {
	return "view:" + string(faction)
}

func assignField(userID model.UserID) string {
	return "assign:" + string(userID)
}

// Service owns game actors: one per game, holding canonical state, the
// precomputed per-faction views, and player faction assignments.
// Creation is the only write path today; a turn-resolution engine can
// reuse the same per-game serialization to order all future mutations.
type Service struct {
	runtime *actor.Runtime
	store   storage.Store
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new galaxy service
func New(runtime *actor.Runtime, store storage.Store, clk clock.Clock, rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		runtime: runtime,
		store:   store,
		clock:   clk,
		random:  rnd,
		logger:  logger,
	}
}

// Key derives the game actor key for a game id
func (s *Service) Key(gameID model.GameID) actor.Key {
	return actor.KeyFor(actor.KindGame, string(gameID))
}

// Create generates a new galaxy, projects both factions' views once,
// and persists canonical state, views and the creator's faction
// assignment in the game actor.
func (s *Service) Create(ctx context.Context, gameID model.GameID, creator model.UserID, settings model.GameSettings) (*model.GameState, error) {
	if !settings.Faction.Playable() {
		return nil, model.ErrInvalidFaction
	}
	if settings.GalaxySize.SectorCount() == 0 {
		return nil, model.ErrInvalidGalaxySize
	}

	key := s.Key(gameID)

	var state *model.GameState
	err := s.runtime.Do(ctx, key, func(ctx context.Context) error {
		state = generate(gameID, settings, s.random)

		if err := storage.PutJSON(ctx, s.store, key, fieldState, state); err != nil {
			return err
		}

		for _, faction := range model.PlayableFactions() {
			view := Project(state, faction)
			if err := storage.PutJSON(ctx, s.store, key, viewField(faction), view); err != nil {
				return err
			}
		}

		return storage.PutJSON(ctx, s.store, key, assignField(creator), settings.Faction)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("game created",
		slog.String("game_id", string(gameID)),
		slog.String("creator", string(creator)),
		slog.String("galaxy_size", string(settings.GalaxySize)),
		slog.Int("sectors", len(state.Sectors)),
		slog.Int("planets", len(state.Planets)),
	)

	return state, nil
}

// View returns the cached fog-of-war view for the caller's assigned
// faction. Users without an assignment in this game are rejected.
func (s *Service) View(ctx context.Context, gameID model.GameID, userID model.UserID) (*model.GameView, error) {
	key := s.Key(gameID)

	var view model.GameView
	err := s.runtime.Do(ctx, key, func(ctx context.Context) error {
		var faction model.Faction
		if err := storage.GetJSON(ctx, s.store, key, assignField(userID), &faction); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return model.ErrNotGameMember
			}
			return err
		}

		if !faction.Playable() {
			return model.ErrInvalidFaction
		}

		if err := storage.GetJSON(ctx, s.store, key, viewField(faction), &view); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return model.ErrViewNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// Exists reports whether a game actor holds canonical state
func (s *Service) Exists(ctx context.Context, gameID model.GameID) (bool, error) {
	key := s.Key(gameID)

	found := false
	err := s.runtime.Do(ctx, key, func(ctx context.Context) error {
		_, err := s.store.Get(ctx, key, fieldState)
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	return found, err
}
