package podcastindex

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignKnownVector(t *testing.T) {
	now := time.Unix(1700000000, 0)

	headers, err := sign("abc", "def", now)
	require.NoError(t, err)

	assert.Equal(t, "abc", headers.key)
	assert.Equal(t, "1700000000", headers.timestamp)
	assert.Equal(t, "4b441b27cc7e571834673d1e05b29806a6ad2c4a", headers.authorization)
}

func TestSignDeterministic(t *testing.T) {
	now := time.Unix(1700000000, 0)

	first, err := sign("test-key", "test-secret", now)
	require.NoError(t, err)
	second, err := sign("test-key", "test-secret", now)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "2782ad65bd878a76107dd3f1cdbfabe647607c5d", first.authorization)
}

func TestSignInputSensitivity(t *testing.T) {
	now := time.Unix(1700000000, 0)
	base, err := sign("test-key", "test-secret", now)
	require.NoError(t, err)

	otherKey, err := sign("other-key", "test-secret", now)
	require.NoError(t, err)
	otherSecret, err := sign("test-key", "other-secret", now)
	require.NoError(t, err)
	otherTime, err := sign("test-key", "test-secret", now.Add(time.Second))
	require.NoError(t, err)

	assert.NotEqual(t, base.authorization, otherKey.authorization)
	assert.NotEqual(t, base.authorization, otherSecret.authorization)
	assert.NotEqual(t, base.authorization, otherTime.authorization)
}

func TestSignSecretNeverExposed(t *testing.T) {
	headers, err := sign("test-key", "super-secret-value", time.Unix(1700000000, 0))
	require.NoError(t, err)

	assert.NotContains(t, headers.key, "super-secret-value")
	assert.NotContains(t, headers.timestamp, "super-secret-value")
	assert.NotContains(t, headers.authorization, "super-secret-value")
}

func TestSignInvalidClock(t *testing.T) {
	_, err := sign("test-key", "test-secret", time.Unix(0, 0))
	require.Error(t, err)

	var signErr *SigningError
	assert.True(t, errors.As(err, &signErr))

	_, err = sign("test-key", "test-secret", time.Unix(-5, 0))
	require.Error(t, err)
}

func TestAuthHeadersApply(t *testing.T) {
	headers, err := sign("test-key", "test-secret", time.Unix(1700000000, 0))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "https://api.example.com/search/byterm", nil)
	headers.apply(req)

	assert.Equal(t, "test-key", req.Header.Get("X-Auth-Key"))
	assert.Equal(t, "1700000000", req.Header.Get("X-Auth-Date"))
	assert.Equal(t, headers.authorization, req.Header.Get("Authorization"))
}
