package credential

import (
	"strings"

	"github.com/astralfront/supremacy/internal/actor"
	"github.com/astralfront/supremacy/internal/model"
)

// Token kind prefixes on the wire
const (
	accessTokenPrefix  = "swa"
	refreshTokenPrefix = "swr"
)

// tokenRandomBytes is the entropy of a token body (48 hex chars)
const tokenRandomBytes = 24

// formatToken builds an opaque token string. The owning credential
// actor's key is embedded so a token carries its own routing address;
// verifying a token never needs a separate lookup table.
func formatToken(prefix string, key actor.Key, body string) string {
	return prefix + ":" + string(key) + ":" + body
}

// parseToken splits a token into its kind prefix and actor key.
// Anything that does not look like one of our tokens is ErrTokenInvalid.
func parseToken(token string) (string, actor.Key, error) {
	parts := strings.SplitN(token, ":", 3)
	if len(parts) != 3 || parts[2] == "" {
		return "", "", model.ErrTokenInvalid
	}

	prefix := parts[0]
	if prefix != accessTokenPrefix && prefix != refreshTokenPrefix {
		return "", "", model.ErrTokenInvalid
	}

	kind, _, err := actor.ParseKey(parts[1])
	if err != nil || kind != actor.KindCredential {
		return "", "", model.ErrTokenInvalid
	}

	return prefix, actor.Key(parts[1]), nil
}
