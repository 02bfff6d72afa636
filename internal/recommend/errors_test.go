package recommend

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	assert.Empty(t, UserMessage(nil))

	netMsg := UserMessage(&NetworkError{Op: "predict", Err: errors.New("dial tcp: refused")})
	assert.Contains(t, netMsg, "Could not reach")

	statusMsg := UserMessage(&ServiceError{Op: "predict", StatusCode: 503})
	assert.Contains(t, statusMsg, "HTTP 503")

	malformed := &ServiceError{Op: "predict", StatusCode: 200, Err: fmt.Errorf("%w: bad", ErrMalformedResponse)}
	assert.Contains(t, UserMessage(malformed), "unexpected response")

	assert.NotEmpty(t, UserMessage(errors.New("anything")))
}

func TestErrorsUnwrap(t *testing.T) {
	inner := errors.New("inner")
	assert.ErrorIs(t, &NetworkError{Op: "predict", Err: inner}, inner)
	assert.ErrorIs(t, &ServiceError{Op: "predict", Err: inner}, inner)

	wrapped := fmt.Errorf("request recommendations: %w", &ServiceError{Op: "predict", StatusCode: 404})
	var svcErr *ServiceError
	assert.True(t, errors.As(wrapped, &svcErr))
	assert.Equal(t, "predict: service error (HTTP 404)", svcErr.Error())
}
