package identity

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

// Durable fields of an identity actor
const (
	fieldUser  = "user"
	fieldGames = "games"
)

// allowedScopes is a static allow-list granted to every user. There is
// no per-user authorization policy yet; this is a placeholder gate, not
// a real one.
var allowedScopes = map[model.Scope]bool{
	model.ScopeGameCreate: true,
	model.ScopeGameView:   true,
	model.ScopeGameList:   true,
}

// Service owns identity actors: one per username, holding the immutable
// user record and the user's in-progress game list.
type Service struct {
	runtime *actor.Runtime
	store   storage.Store
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new identity service
func New(runtime *actor.Runtime, store storage.Store, clk clock.Clock, rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		runtime: runtime,
		store:   store,
		clock:   clk,
		random:  rnd,
		logger:  logger,
	}
}

// Key derives the identity actor key for a username. The derivation is
// deterministic so any caller holding a username can route to the actor.
func (s *Service) Key(username string) actor.Key {
	return actor.KeyFor(actor.KindIdentity, username)
}

// Signup creates the user record if and only if it does not exist.
// A second signup for the same username returns ErrUserExists.
func (s *Service) Signup(ctx context.Context, username string) (*model.User, error) {
	key := s.Key(username)

	var user model.User
	err := s.runtime.Do(ctx, key, func(ctx context.Context) error {
		err := storage.GetJSON(ctx, s.store, key, fieldUser, &user)
		if err == nil {
			return model.ErrUserExists
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		now := s.clock.Now()
		user = model.User{
			ID:        model.UserID("u_" + s.random.Hex(8)),
			Username:  username,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return storage.PutJSON(ctx, s.store, key, fieldUser, user)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user created",
		slog.String("user_id", string(user.ID)),
		slog.String("username", username),
	)
	return &user, nil
}

// Get fetches the user record for a username
func (s *Service) Get(ctx context.Context, username string) (*model.User, error) {
	key := s.Key(username)

	var user model.User
	err := s.runtime.Do(ctx, key, func(ctx context.Context) error {
		if err := storage.GetJSON(ctx, s.store, key, fieldUser, &user); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return model.ErrUserNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// HasScope reports whether the user holds the scope. Every user holds
// the same fixed allow-list.
func (s *Service) HasScope(ctx context.Context, userID model.UserID, scope model.Scope) bool {
	return allowedScopes[scope]
}

// TrackGame upserts a game into the user's game list by game id and
// stamps LastPlayed, creating the list on first write.
func (s *Service) TrackGame(ctx context.Context, username string, game model.UserGame) error {
	key := s.Key(username)

	return s.runtime.Do(ctx, key, func(ctx context.Context) error {
		var games []model.UserGame
		if err := storage.GetJSON(ctx, s.store, key, fieldGames, &games); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		game.LastPlayed = s.clock.Now()

		replaced := false
		for i := range games {
			if games[i].ID == game.ID {
				games[i] = game
				replaced = true
				break
			}
		}
		if !replaced {
			games = append(games, game)
		}

		return storage.PutJSON(ctx, s.store, key, fieldGames, games)
	})
}

// Games returns the user's in-progress games; completed games are
// filtered out of the list view.
func (s *Service) Games(ctx context.Context, username string) ([]model.UserGame, error) {
	key := s.Key(username)

	var games []model.UserGame
	err := s.runtime.Do(ctx, key, func(ctx context.Context) error {
		if err := storage.GetJSON(ctx, s.store, key, fieldGames, &games); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	inProgress := make([]model.UserGame, 0, len(games))
	for _, g := range games {
		if !g.Completed {
			inProgress = append(inProgress, g)
		}
	}
	return inProgress, nil
}
