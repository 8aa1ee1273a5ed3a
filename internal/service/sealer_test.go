package service

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Valid 32-byte key in hex (64 chars)
const testSealKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func TestXChaChaSealer_InvalidKey(t *testing.T) {
	_, err := NewXChaChaSealer("shortkey")
	assert.Error(t, err)

	_, err = NewXChaChaSealer("abcd")
	assert.ErrorContains(t, err, "must be 32 bytes")
}

func TestXChaChaSealer_RoundTrip(t *testing.T) {
	s, err := NewXChaChaSealer(testSealKey)
	require.NoError(t, err)

	sealed, err := s.Seal("upstream-bearer-token")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "upstream-bearer-token")

	opened, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "upstream-bearer-token", opened)
}

func TestXChaChaSealer_RandomKeyWhenEmpty(t *testing.T) {
	s1, err := NewXChaChaSealer("")
	require.NoError(t, err)
	s2, err := NewXChaChaSealer("")
	require.NoError(t, err)

	sealed, err := s1.Seal("token")
	require.NoError(t, err)

	_, err = s2.Open(sealed)
	assert.Error(t, err, "a different random key cannot open the value")
}

func TestXChaChaSealer_DifferentNonces(t *testing.T) {
	s, err := NewXChaChaSealer(testSealKey)
	require.NoError(t, err)

	c1, err := s.Seal("same")
	require.NoError(t, err)
	c2, err := s.Seal("same")
	require.NoError(t, err)
	assert.NotEqual(t, c1, c2)
}

func TestXChaChaSealer_Tampered(t *testing.T) {
	s, err := NewXChaChaSealer(testSealKey)
	require.NoError(t, err)

	sealed, err := s.Seal("secret")
	require.NoError(t, err)

	last := sealed[len(sealed)-1]
	flipped := byte('0')
	if last == '0' {
		flipped = '1'
	}
	_, err = s.Open(sealed[:len(sealed)-1] + string(flipped))
	assert.Error(t, err)

	_, err = s.Open("zz-not-hex")
	assert.Error(t, err)

	_, err = s.Open("abcdef")
	assert.ErrorContains(t, err, "too short")
}
