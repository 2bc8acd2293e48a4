package response

import (
	"github.com/astralfront/supremacy/internal/model"
)

// TokenPair is the wire shape of an issued token pair. Expiries are
// millisecond epoch timestamps.
type TokenPair struct {
	AccessToken        string `json:"accessToken"`
	RefreshToken       string `json:"refreshToken"`
	AccessTokenExpiry  int64  `json:"accessTokenExpiry"`
	RefreshTokenExpiry int64  `json:"refreshTokenExpiry"`
	ClientID           string `json:"clientId"`
}

// TokenPairFromModel converts a model.TokenPair to its wire shape
func TokenPairFromModel(p *model.TokenPair) TokenPair {
	return TokenPair{
		AccessToken:        p.AccessToken,
		RefreshToken:       p.RefreshToken,
		AccessTokenExpiry:  p.AccessExpiry.UnixMilli(),
		RefreshTokenExpiry: p.RefreshExpiry.UnixMilli(),
		ClientID:           string(p.ClientID),
	}
}

// CreateGameResponse carries the id of a freshly created game
type CreateGameResponse struct {
	GameID string `json:"gameId"`
}

// UserGame is one entry in the game list response
type UserGame struct {
	GameID     string `json:"gameId"`
	Side       string `json:"side"`
	LastPlayed int64  `json:"lastPlayed"`
}

// GameList wraps the user's in-progress games
type GameList struct {
	Games []UserGame `json:"games"`
}

// GameListFromModel converts the identity service's game list
func GameListFromModel(games []model.UserGame) GameList {
	out := GameList{Games: make([]UserGame, 0, len(games))}
	for _, g := range games {
		out.Games = append(out.Games, UserGame{
			GameID:     string(g.ID),
			Side:       string(g.Side),
			LastPlayed: g.LastPlayed.UnixMilli(),
		})
	}
	return out
}
