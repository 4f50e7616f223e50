package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/cloudlearn-droid/CloudVault/internal/services"
)

func respondStatus(t *testing.T, err error) int {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	RespondError(c, err)
	return w.Code
}

func TestRespondErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{services.ErrNotFound, http.StatusNotFound},
		{services.ErrForbidden, http.StatusForbidden},
		{services.ErrInvalidInput, http.StatusBadRequest},
		{services.ErrInvalidCredentials, http.StatusUnauthorized},
		{services.ErrStorageUnavailable, http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := respondStatus(t, tc.err); got != tc.want {
			t.Errorf("RespondError(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestRespondErrorWrapped(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), services.ErrNotFound)
	if got := respondStatus(t, wrapped); got != http.StatusNotFound {
		t.Errorf("wrapped not-found = %d, want 404", got)
	}
}

func TestUserIDFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if _, ok := UserIDFromContext(c); ok {
		t.Error("missing user_id must not resolve")
	}

	c.Set("user_id", "u-1")
	id, ok := UserIDFromContext(c)
	if !ok || id != "u-1" {
		t.Errorf("got (%q, %v), want (u-1, true)", id, ok)
	}

	c.Set("user_id", "")
	if _, ok := UserIDFromContext(c); ok {
		t.Error("empty user_id must not resolve")
	}
}
