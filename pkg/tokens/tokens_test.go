package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_RoundTrip(t *testing.T) {
	g := NewGenerator("secret", 24*time.Hour)

	token := g.Make("user-1", "active=false")
	assert.True(t, g.Check("user-1", "active=false", token))
}

func TestGenerator_StateChangeInvalidates(t *testing.T) {
	g := NewGenerator("secret", 24*time.Hour)

	token := g.Make("user-1", "active=false")
	require.True(t, g.Check("user-1", "active=false", token))

	// once the account activates the same token must stop verifying
	assert.False(t, g.Check("user-1", "active=true", token))
}

func TestGenerator_WrongEntity(t *testing.T) {
	g := NewGenerator("secret", 24*time.Hour)

	token := g.Make("user-1", "active=false")
	assert.False(t, g.Check("user-2", "active=false", token))
}

func TestGenerator_Expiry(t *testing.T) {
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	now := issued

	g := NewGenerator("secret", time.Hour).WithClock(func() time.Time { return now })
	token := g.Make("user-1", "active=false")

	now = issued.Add(59 * time.Minute)
	assert.True(t, g.Check("user-1", "active=false", token))

	now = issued.Add(61 * time.Minute)
	assert.False(t, g.Check("user-1", "active=false", token))
}

func TestGenerator_FutureTimestampRejected(t *testing.T) {
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	now := issued

	g := NewGenerator("secret", time.Hour).WithClock(func() time.Time { return now })
	token := g.Make("user-1", "active=false")

	now = issued.Add(-time.Minute)
	assert.False(t, g.Check("user-1", "active=false", token))
}

func TestGenerator_GarbageToken(t *testing.T) {
	g := NewGenerator("secret", time.Hour)

	for _, token := range []string{"", "nodash", "zz-", "!!-abcd", "1-deadbeef"} {
		assert.False(t, g.Check("user-1", "active=false", token), "token %q", token)
	}
}

func TestEncodeDecodeID(t *testing.T) {
	id := "b2f6a8a0-9c41-4a8f-9d0a-1a2b3c4d5e6f"

	encoded := EncodeID(id)
	decoded, err := DecodeID(encoded)
	require.NoError(t, err)
	assert.Equal(t, id, decoded)

	_, err = DecodeID("%%%")
	assert.Error(t, err)
}
