package utils

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodeOf(t *testing.T) {
	require.Equal(t, CodeNotFound, CodeOf(E(CodeNotFound, "gone")))
	require.Equal(t, CodeConflict, CodeOf(Wrap(CodeConflict, "taken", errors.New("dup key"))))
	require.Equal(t, CodeInternal, CodeOf(errors.New("plain")))
}

func TestMessageOf_HidesInternals(t *testing.T) {
	wrapped := Wrap(CodeInternal, "something went wrong", errors.New("connection refused"))
	require.Equal(t, "something went wrong", MessageOf(wrapped))
	require.Contains(t, wrapped.Error(), "connection refused")

	require.Equal(t, "an unexpected error occurred", MessageOf(errors.New("raw driver error")))
}

func TestWrap_PreservesChain(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := Wrap(CodeInternal, "outer", sentinel)
	require.ErrorIs(t, err, sentinel)
}

func TestHTTPStatus(t *testing.T) {
	cases := map[string]int{
		CodeValidation:          http.StatusBadRequest,
		CodeInvalidPin:          http.StatusBadRequest,
		CodeNotFound:            http.StatusNotFound,
		CodeForbidden:           http.StatusForbidden,
		CodeConflict:            http.StatusConflict,
		CodeInvalidState:        http.StatusConflict,
		CodeInsufficientBalance: http.StatusUnprocessableEntity,
		CodeInvalidCredentials:  http.StatusUnauthorized,
		CodeUnauthorized:        http.StatusUnauthorized,
		CodeInternal:            http.StatusInternalServerError,
		"SOMETHING_ELSE":        http.StatusInternalServerError,
	}
	for code, want := range cases {
		require.Equal(t, want, HTTPStatus(code), "code %s", code)
	}
}
