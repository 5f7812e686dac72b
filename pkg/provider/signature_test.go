package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifySignature(t *testing.T) {
	secret := "app-secret"
	body := []byte(`{"entry":[]}`)

	t.Run("valid signature", func(t *testing.T) {
		header := ComputeSignature(secret, body)
		assert.NoError(t, VerifySignature(secret, body, header))
	})

	t.Run("missing header", func(t *testing.T) {
		err := VerifySignature(secret, body, "")
		assert.ErrorIs(t, err, ErrMissingSignature)
	})

	t.Run("wrong prefix", func(t *testing.T) {
		err := VerifySignature(secret, body, "sha1=deadbeef")
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("non-hex digest", func(t *testing.T) {
		err := VerifySignature(secret, body, "sha256=not-hex!")
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("wrong secret", func(t *testing.T) {
		header := ComputeSignature("other-secret", body)
		err := VerifySignature(secret, body, header)
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("tampered body", func(t *testing.T) {
		header := ComputeSignature(secret, body)
		err := VerifySignature(secret, []byte(`{"entry":[{}]}`), header)
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})
}

func TestComputeSignature_Format(t *testing.T) {
	sig := ComputeSignature("secret", []byte("body"))
	require.Regexp(t, `^sha256=[0-9a-f]{64}$`, sig)
}
