package errlocal

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_Error(t *testing.T) {
	err := &BaseError{
		Msg: "profile not found",
		Sys: SystemStore,
		DetailsMap: map[string]any{
			"profile_id": "p1",
			"attempt":    2,
		},
	}

	assert.Equal(t, "message: profile not found system: store details: attempt: 2, profile_id: p1", err.Error())
}

func TestBaseError_Error_PartialFields(t *testing.T) {
	tests := []struct {
		name     string
		err      *BaseError
		expected string
	}{
		{"all empty", &BaseError{}, ""},
		{"message only", &BaseError{Msg: "boom"}, "message: boom"},
		{"system only", &BaseError{Sys: "api"}, "system: api"},
		{"empty details map", &BaseError{Msg: "boom", DetailsMap: map[string]any{}}, "message: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestBaseError_Accessors(t *testing.T) {
	details := map[string]any{"key": "value"}
	err := &BaseError{Msg: "message", Sys: "system", DetailsMap: details}

	assert.Equal(t, "message", err.Message())
	assert.Equal(t, "system", err.System())
	assert.Equal(t, details, err.Details())
	assert.Equal(t, http.StatusInternalServerError, err.Code())
	assert.Same(t, err, err.Base())
}

func TestLocalError_Kinds(t *testing.T) {
	testCases := []struct {
		name         string
		err          LocalError
		expectedCode int
	}{
		{"bad request", NewErrBadRequest("bad", SystemAPI, nil), http.StatusBadRequest},
		{"unauthorized", NewErrUnauthorized("unauth", SystemAuth, nil), http.StatusUnauthorized},
		{"forbidden", NewErrForbidden("forbidden", SystemAPI, nil), http.StatusForbidden},
		{"not found", NewErrNotFound("not found", SystemStore, nil), http.StatusNotFound},
		{"conflict", NewErrConflict("conflict", SystemStore, nil), http.StatusConflict},
		{"too many requests", NewErrTooManyRequests("slow down", SystemRecognizer), http.StatusTooManyRequests},
		{"internal", NewErrInternal("internal", SystemStore, nil), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedCode, tc.err.Code())
			assert.NotEmpty(t, tc.err.Message())
			assert.NotNil(t, tc.err.Base())
			assert.Nil(t, tc.err.Details())
		})
	}
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("save profile: %w", NewErrConflict("stale version", SystemStore, nil))

	local, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, local.Code())

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestCodeOfAndPredicates(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, CodeOf(errors.New("plain")))
	assert.Equal(t, http.StatusNotFound, CodeOf(NewErrNotFound("x", SystemStore, nil)))

	assert.True(t, IsNotFound(fmt.Errorf("wrap: %w", NewErrNotFound("x", SystemStore, nil))))
	assert.False(t, IsNotFound(NewErrConflict("x", SystemStore, nil)))
	assert.True(t, IsConflict(NewErrConflict("x", SystemStore, nil)))
	assert.False(t, IsConflict(nil))
}
