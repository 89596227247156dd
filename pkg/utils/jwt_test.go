package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AriqGChowdhury/WSU-Forum/config"
)

func testConfig() config.Config {
	return config.Config{
		JWT: config.JWT{
			Secret:           "test-secret",
			ExpiredIn:        900,
			RefreshExpiredIn: 604800,
		},
	}
}

func TestGenerateJWTToken_PairRoundTrip(t *testing.T) {
	cfg := testConfig()
	userID := uuid.New()

	access, refresh, err := GenerateJWTToken(userID, true, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := ParseAccessToken(access, cfg)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.True(t, claims.IsStaff)

	claims, err = ParseRefreshToken(refresh, cfg)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestParseAccessToken_RejectsRefreshToken(t *testing.T) {
	cfg := testConfig()

	_, refresh, err := GenerateJWTToken(uuid.New(), false, cfg)
	require.NoError(t, err)

	_, err = ParseAccessToken(refresh, cfg)
	assert.Error(t, err)
}

func TestParseAccessToken_RejectsWrongSecret(t *testing.T) {
	cfg := testConfig()

	access, _, err := GenerateJWTToken(uuid.New(), false, cfg)
	require.NoError(t, err)

	other := testConfig()
	other.JWT.Secret = "another-secret"
	_, err = ParseAccessToken(access, other)
	assert.Error(t, err)
}

func TestParseAccessToken_RejectsExpired(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.ExpiredIn = -60

	access, _, err := GenerateJWTToken(uuid.New(), false, cfg)
	require.NoError(t, err)

	_, err = ParseAccessToken(access, cfg)
	assert.Error(t, err)
}

func TestParseAccessToken_RejectsGarbage(t *testing.T) {
	_, err := ParseAccessToken("not-a-token", testConfig())
	assert.Error(t, err)
}
