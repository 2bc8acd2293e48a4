package credential

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astralfront/supremacy/internal/actor"
	"github.com/astralfront/supremacy/internal/model"
)

func TestFormatAndParseToken(t *testing.T) {
	key := actor.KeyFor(actor.KindCredential, "u_1234")
	token := formatToken(accessTokenPrefix, key, "deadbeef")

	assert.Equal(t, "swa:credential/u_1234:deadbeef", token)

	prefix, parsedKey, err := parseToken(token)
	require.NoError(t, err)
	assert.Equal(t, accessTokenPrefix, prefix)
	assert.Equal(t, key, parsedKey)
}

func TestParseTokenRefreshKind(t *testing.T) {
	key := actor.KeyFor(actor.KindCredential, "u_1234")
	token := formatToken(refreshTokenPrefix, key, "deadbeef")

	prefix, _, err := parseToken(token)
	require.NoError(t, err)
	assert.Equal(t, refreshTokenPrefix, prefix)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	cases := []string{
		"",
		"swa",
		"swa:credential/u_1",
		"swa:credential/u_1:",
		"jwt:credential/u_1:deadbeef",
		"swa:identity/alice:deadbeef",
		"swa:game/g_1:deadbeef",
		"swa:notakey:deadbeef",
	}

	for _, token := range cases {
		_, _, err := parseToken(token)
		assert.ErrorIs(t, err, model.ErrTokenInvalid, "token %q", token)
	}
}
