package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusFromError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"bad request", fmt.Errorf("%w: %w", ErrBadRequest, ErrMissingRoomName), http.StatusBadRequest},
		{"unauthorized", ErrInvalidToken, http.StatusUnauthorized},
		{"expired", fmt.Errorf("verify: %w", ErrTokenExpired), http.StatusUnauthorized},
		{"rate limited", ErrTooManyRequests, http.StatusTooManyRequests},
		{"config", fmt.Errorf("%w: SERVER_URL_EU is not defined", ErrConfig), http.StatusInternalServerError},
		{"signing", fmt.Errorf("%w: %w", ErrInternalServer, ErrSigningFailed), http.StatusInternalServerError},
		{"api error", NewAPIError("teapot", http.StatusTeapot), http.StatusTeapot},
		{"unknown", fmt.Errorf("something else"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatusFromError(tc.err))
		})
	}
}

func TestPublicMessageHidesInternalDetails(t *testing.T) {
	err := fmt.Errorf("%w: secret key rejected", ErrInternalServer)
	assert.Equal(t, "Internal Server Error", PublicMessage(err))

	bad := fmt.Errorf("%w: %w", ErrBadRequest, ErrMissingParticipant)
	assert.Equal(t, "bad request: participantName is required", PublicMessage(bad))
}
