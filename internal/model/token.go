package model

import "time"

// ClientID identifies one connected client (browser tab, CLI, ...) of a user.
// Each client holds its own independent token grant.
type ClientID string

// CredentialRecord holds a user's password material. It is overwritten
// wholesale on signup and read-only on login.
type CredentialRecord struct {
	Salt         []byte `json:"salt"`
	PasswordHash []byte `json:"passwordHash"`
}

// TokenGrant is one stored token (access or refresh) scoped to a client
type TokenGrant struct {
	ClientID ClientID  `json:"clientId"`
	Token    string    `json:"token"`
	Expiry   time.Time `json:"expiry"`
}

// Matches reports whether the grant covers the given token for the given
// client and is still live at the given instant
func (g *TokenGrant) Matches(token string, clientID ClientID, now time.Time) bool {
	return g.ClientID == clientID && g.Token == token && now.Before(g.Expiry)
}

// TokenPair is a freshly issued access/refresh pair for one client
type TokenPair struct {
	AccessToken   string
	RefreshToken  string
	AccessExpiry  time.Time
	RefreshExpiry time.Time
	ClientID      ClientID
}
