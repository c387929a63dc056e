package iothubsas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialError(t *testing.T) {
	t.Run("message without details", func(t *testing.T) {
		err := NewCredentialError(ErrorCodeInvalidOption, "applying option", nil)
		assert.Equal(t, "applying option", err.Error())
		assert.Nil(t, errors.Unwrap(err))
	})

	t.Run("message with details", func(t *testing.T) {
		inner := errors.New("token ttl must be positive")
		err := NewCredentialError(ErrorCodeInvalidOption, "applying option", inner)
		assert.Equal(t, "applying option: token ttl must be positive", err.Error())
		assert.ErrorIs(t, err, inner)
	})

	t.Run("sentinel comparison through wrapping", func(t *testing.T) {
		err := NewCredentialError(ErrorCodePropertiesNil, "connection properties are required", ErrNilProperties)
		assert.ErrorIs(t, err, ErrNilProperties)
	})
}
