package galaxy

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
	"github.com/astralfront/supremacy/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	s.service = New(actor.NewRuntime(), s.storage, clk, random.New(), logger)
	s.ctx = context.Background()
}

func (s *ServiceSuite) settings(size model.GalaxySize) model.GameSettings {
	return model.GameSettings{
		Faction:      model.FactionRebellion,
		Difficulty:   "Normal",
		GalaxySize:   size,
		WinCondition: "Headquarters",
		Mode:         "Singleplayer",
	}
}

// Create tests

func (s *ServiceSuite) TestCreateSizesGalaxy() {
	cases := []struct {
		size    model.GalaxySize
		sectors int
	}{
		{model.GalaxySmall, 10},
		{model.GalaxyMedium, 15},
		{model.GalaxyLarge, 20},
	}

	for _, tc := range cases {
		state, err := s.service.Create(s.ctx, model.GameID("g_"+string(tc.size)), "u_1", s.settings(tc.size))
		s.Require().NoError(err, "size %s", tc.size)
		s.Len(state.Sectors, tc.sectors, "size %s", tc.size)
		s.Len(state.Planets, tc.sectors*model.PlanetsPerSector, "size %s", tc.size)
	}
}

func (s *ServiceSuite) TestCreateMarksInnerRimDiscovered() {
	state, err := s.service.Create(s.ctx, "g_1", "u_1", s.settings(model.GalaxyLarge))
	s.Require().NoError(err)

	innerRim := 0
	for _, sector := range state.Sectors {
		if sector.InnerRim {
			innerRim++
		}
	}
	s.Equal(20/3, innerRim)

	for id, planet := range state.Planets {
		s.Equal(state.Sectors[planet.Metadata.SectorID].InnerRim, planet.Discovered,
			"planet %s discovery should follow its sector's rim flag", id)
	}
}

func (s *ServiceSuite) TestCreateBuildsBothFactionStates() {
	state, err := s.service.Create(s.ctx, "g_1", "u_1", s.settings(model.GalaxySmall))
	s.Require().NoError(err)

	s.Require().Contains(state.Factions, model.FactionEmpire)
	s.Require().Contains(state.Factions, model.FactionRebellion)
	s.NotContains(state.Factions, model.FactionNeutral)
}

func (s *ServiceSuite) TestCreateRejectsInvalidFaction() {
	settings := s.settings(model.GalaxySmall)
	settings.Faction = model.FactionNeutral

	_, err := s.service.Create(s.ctx, "g_1", "u_1", settings)
	s.ErrorIs(err, model.ErrInvalidFaction)
}

func (s *ServiceSuite) TestCreateRejectsUnknownGalaxySize() {
	settings := s.settings(model.GalaxySize("Enormous"))

	_, err := s.service.Create(s.ctx, "g_1", "u_1", settings)
	s.ErrorIs(err, model.ErrInvalidGalaxySize)
}

// View tests

func (s *ServiceSuite) TestViewReturnsCreatorSide() {
	_, err := s.service.Create(s.ctx, "g_1", "u_1", s.settings(model.GalaxySmall))
	s.Require().NoError(err)

	view, err := s.service.View(s.ctx, "g_1", "u_1")
	s.Require().NoError(err)
	s.Equal(model.FactionRebellion, view.Side)
	s.Len(view.Sectors, 10)
	s.Len(view.Planets, 100)
}

func (s *ServiceSuite) TestViewMatchesFreshProjection() {
	state, err := s.service.Create(s.ctx, "g_1", "u_1", s.settings(model.GalaxySmall))
	s.Require().NoError(err)

	view, err := s.service.View(s.ctx, "g_1", "u_1")
	s.Require().NoError(err)

	expected := Project(state, model.FactionRebellion)
	for id, pv := range expected.Planets {
		got := view.Planets[id]
		s.Require().NotNil(got, "planet %s", id)
		s.Equal(pv.Visible(), got.Visible(), "planet %s", id)
	}
}

func (s *ServiceSuite) TestViewRejectsUnknownUser() {
	_, err := s.service.Create(s.ctx, "g_1", "u_1", s.settings(model.GalaxySmall))
	s.Require().NoError(err)

	_, err = s.service.View(s.ctx, "g_1", "u_stranger")
	s.ErrorIs(err, model.ErrNotGameMember)
}

func (s *ServiceSuite) TestViewRejectsUnknownGame() {
	_, err := s.service.View(s.ctx, "g_missing", "u_1")
	s.ErrorIs(err, model.ErrNotGameMember)
}

func (s *ServiceSuite) TestViewRejectsCorruptFactionAssignment() {
	_, err := s.service.Create(s.ctx, "g_1", "u_1", s.settings(model.GalaxySmall))
	s.Require().NoError(err)

	key := s.service.Key("g_1")
	_ = s.storage.Put(s.ctx, key, "assign:u_1", []byte(`"Pirates"`))

	_, err = s.service.View(s.ctx, "g_1", "u_1")
	s.ErrorIs(err, model.ErrInvalidFaction)
}

func (s *ServiceSuite) TestViewMissingProjection() {
	_, err := s.service.Create(s.ctx, "g_1", "u_1", s.settings(model.GalaxySmall))
	s.Require().NoError(err)

	key := s.service.Key("g_1")
	_ = s.storage.Delete(s.ctx, key, "view:Rebellion")

	_, err = s.service.View(s.ctx, "g_1", "u_1")
	s.ErrorIs(err, model.ErrViewNotFound)
}

// Exists tests

func (s *ServiceSuite) TestExists() {
	found, err := s.service.Exists(s.ctx, "g_1")
	s.Require().NoError(err)
	s.False(found)

	_, err = s.service.Create(s.ctx, "g_1", "u_1", s.settings(model.GalaxySmall))
	s.Require().NoError(err)

	found, err = s.service.Exists(s.ctx, "g_1")
	s.Require().NoError(err)
	s.True(found)
}
