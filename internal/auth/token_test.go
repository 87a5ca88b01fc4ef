package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"cbmpe-api/internal/model"
)

func TestTokenCodecRoundTrip(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("test-secret", 24*time.Hour)

	token, err := codec.Sign("76948000-a060-4b83-aade-8c9da712d8dc")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := codec.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "76948000-a060-4b83-aade-8c9da712d8dc", subject)
}

func TestTokenCodecExpiry(t *testing.T) {
	t.Parallel()

	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	newCodec := func() *TokenCodec {
		codec := NewTokenCodec("test-secret", 24*time.Hour)
		codec.now = func() time.Time { return issued }
		return codec
	}

	t.Run("token just inside the validity window verifies", func(t *testing.T) {
		codec := newCodec()
		token, err := codec.Sign("user-1")
		require.NoError(t, err)

		codec.now = func() time.Time { return issued.Add(24*time.Hour - time.Second) }
		subject, err := codec.Verify(token)
		require.NoError(t, err)
		require.Equal(t, "user-1", subject)
	})

	t.Run("token past the validity window fails with expired", func(t *testing.T) {
		codec := newCodec()
		token, err := codec.Sign("user-1")
		require.NoError(t, err)

		codec.now = func() time.Time { return issued.Add(24*time.Hour + time.Second) }
		_, err = codec.Verify(token)
		require.ErrorIs(t, err, model.ErrTokenExpired)
	})
}

func TestTokenCodecRejectsTampering(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("test-secret", 24*time.Hour)
	token, err := codec.Sign("user-1")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	t.Run("flipped signature byte", func(t *testing.T) {
		sig := []byte(parts[2])
		if sig[0] == 'A' {
			sig[0] = 'B'
		} else {
			sig[0] = 'A'
		}
		tampered := parts[0] + "." + parts[1] + "." + string(sig)

		_, err := codec.Verify(tampered)
		require.ErrorIs(t, err, model.ErrTokenInvalid)
	})

	t.Run("different signing secret", func(t *testing.T) {
		other := NewTokenCodec("rotated-secret", 24*time.Hour)
		_, err := other.Verify(token)
		require.ErrorIs(t, err, model.ErrTokenInvalid)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := codec.Verify("garbage")
		require.ErrorIs(t, err, model.ErrTokenInvalid)
	})

	t.Run("token without subject", func(t *testing.T) {
		empty, err := codec.Sign("")
		require.NoError(t, err)
		_, err = codec.Verify(empty)
		require.ErrorIs(t, err, model.ErrTokenInvalid)
	})
}
