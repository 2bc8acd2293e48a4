package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/astralfront/supremacy/internal/model"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func (s *IntegrationSuite) settings(size model.GalaxySize) model.GameSettings {
	return model.GameSettings{
		Faction:      model.FactionEmpire,
		Difficulty:   "Medium",
		GalaxySize:   size,
		WinCondition: "Standard",
		Mode:         "Standard",
	}
}

// Test: signup through playing a first game
func (s *IntegrationSuite) TestSignupToFirstGame() {
	clientID := model.ClientID("device-1")

	// Step 1: Sign up
	pair, err := s.app.CredentialService.Signup(s.ctx, "thrawn", "art-of-war", clientID)
	s.Require().NoError(err)
	s.NotEmpty(pair.AccessToken)
	s.NotEmpty(pair.RefreshToken)

	// Step 2: Verify the access token resolves our identity
	ident, err := s.app.CredentialService.VerifyAccessToken(s.ctx, pair.AccessToken, clientID, model.ScopeGameCreate)
	s.Require().NoError(err)
	s.Equal("thrawn", ident.Username)
	s.False(ident.Anonymous)

	// Step 3: Create a small game
	gameID, err := s.app.MatchmakerService.CreateGame(s.ctx, *ident, s.settings(model.GalaxySmall))
	s.Require().NoError(err)
	s.NotEmpty(gameID)

	// Step 4: The creator sees their own fogged view
	view, err := s.app.GalaxyService.View(s.ctx, gameID, ident.UserID)
	s.Require().NoError(err)
	s.Equal(model.FactionEmpire, view.Side)
	s.Len(view.Sectors, 10)
	s.Len(view.Planets, 10*model.PlanetsPerSector)

	// Step 5: The game shows up in the player's list
	games, err := s.app.IdentityService.Games(s.ctx, ident.Username)
	s.Require().NoError(err)
	s.Require().Len(games, 1)
	s.Equal(gameID, games[0].ID)
	s.Equal(model.FactionEmpire, games[0].Side)
}

// Test: login from a second device keeps the first device's tokens alive
func (s *IntegrationSuite) TestTwoDevices() {
	phone := model.ClientID("phone")
	laptop := model.ClientID("laptop")

	phonePair, err := s.app.CredentialService.Signup(s.ctx, "ackbar", "its-a-trap", phone)
	s.Require().NoError(err)

	laptopPair, err := s.app.CredentialService.Login(s.ctx, "ackbar", "its-a-trap", laptop)
	s.Require().NoError(err)
	s.NotEqual(phonePair.AccessToken, laptopPair.AccessToken)

	// Refreshing on the laptop must not disturb the phone's grants
	_, err = s.app.CredentialService.Refresh(s.ctx, laptopPair.RefreshToken, laptop)
	s.Require().NoError(err)

	_, err = s.app.CredentialService.VerifyAccessToken(s.ctx, phonePair.AccessToken, phone, model.ScopeGameList)
	s.NoError(err)
}

// Test: a stranger to the game cannot view it
func (s *IntegrationSuite) TestViewRequiresMembership() {
	clientID := model.ClientID("device-1")

	pair, err := s.app.CredentialService.Signup(s.ctx, "palpatine", "unlimited-power", clientID)
	s.Require().NoError(err)
	ident, err := s.app.CredentialService.VerifyAccessToken(s.ctx, pair.AccessToken, clientID, model.ScopeGameCreate)
	s.Require().NoError(err)

	gameID, err := s.app.MatchmakerService.CreateGame(s.ctx, *ident, s.settings(model.GalaxySmall))
	s.Require().NoError(err)

	otherPair, err := s.app.CredentialService.Signup(s.ctx, "mothma", "rebellions-hope", clientID)
	s.Require().NoError(err)
	other, err := s.app.CredentialService.VerifyAccessToken(s.ctx, otherPair.AccessToken, clientID, model.ScopeGameView)
	s.Require().NoError(err)

	_, err = s.app.GalaxyService.View(s.ctx, gameID, other.UserID)
	s.ErrorIs(err, model.ErrNotGameMember)
}

// Test: duplicate signup is rejected once a credential record exists
func (s *IntegrationSuite) TestDuplicateSignup() {
	clientID := model.ClientID("device-1")

	_, err := s.app.CredentialService.Signup(s.ctx, "veers", "maximum-firepower", clientID)
	s.Require().NoError(err)

	_, err = s.app.CredentialService.Signup(s.ctx, "veers", "different-password", clientID)
	s.ErrorIs(err, model.ErrUserExists)
}
