package matchmaker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/astralfront/supremacy/internal/actor"
	"github.com/astralfront/supremacy/internal/dependencies/mocks"
	"github.com/astralfront/supremacy/internal/dependencies/random"
	"github.com/astralfront/supremacy/internal/model"
	"github.com/astralfront/supremacy/internal/services/galaxy"
	"github.com/astralfront/supremacy/internal/services/identity"
	"github.com/astralfront/supremacy/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	galaxy   *galaxy.Service
	identity *identity.Service
	service  *Service
	ctx      context.Context
	ident    model.Identity
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	store := memory.New()
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	runtime := actor.NewRuntime()
	rnd := random.New()

	s.galaxy = galaxy.New(runtime, store, clk, rnd, logger)
	s.identity = identity.New(runtime, store, clk, rnd, logger)
	s.service = New(s.galaxy, s.identity, rnd, logger)
	s.ctx = context.Background()

	user, err := s.identity.Signup(s.ctx, "leia")
	s.Require().NoError(err)
	s.ident = model.Identity{UserID: user.ID, Username: "leia"}
}

func (s *ServiceSuite) settings() model.GameSettings {
	return model.GameSettings{
		Faction:    model.FactionRebellion,
		GalaxySize: model.GalaxySmall,
	}
}

func (s *ServiceSuite) TestCreateGameReturnsRoutableID() {
	gameID, err := s.service.CreateGame(s.ctx, s.ident, s.settings())
	s.Require().NoError(err)
	s.NotEmpty(gameID)

	view, err := s.galaxy.View(s.ctx, gameID, s.ident.UserID)
	s.Require().NoError(err)
	s.Equal(model.FactionRebellion, view.Side)
}

func (s *ServiceSuite) TestCreateGameTracksCreatorGame() {
	gameID, err := s.service.CreateGame(s.ctx, s.ident, s.settings())
	s.Require().NoError(err)

	games, err := s.identity.Games(s.ctx, "leia")
	s.Require().NoError(err)
	s.Require().Len(games, 1)
	s.Equal(gameID, games[0].ID)
	s.Equal(model.FactionRebellion, games[0].Side)
}

func (s *ServiceSuite) TestCreateGameMintsDistinctIDs() {
	first, err := s.service.CreateGame(s.ctx, s.ident, s.settings())
	s.Require().NoError(err)

	second, err := s.service.CreateGame(s.ctx, s.ident, s.settings())
	s.Require().NoError(err)

	s.NotEqual(first, second)
}

func (s *ServiceSuite) TestCreateGamePropagatesValidation() {
	settings := s.settings()
	settings.Faction = model.FactionNeutral

	_, err := s.service.CreateGame(s.ctx, s.ident, settings)
	s.ErrorIs(err, model.ErrInvalidFaction)

	games, err := s.identity.Games(s.ctx, "leia")
	s.Require().NoError(err)
	s.Empty(games)
}
