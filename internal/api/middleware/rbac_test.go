package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/genworx/product-service/internal/core/domain"
)

func newRoleContext(user *domain.User) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(ContextUser, user)
	}
	return c
}

func TestRequireRole_Allows(t *testing.T) {
	c := newRoleContext(&domain.User{ID: 1, Role: domain.RoleAdmin})

	called := false
	handler := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestRequireRole_Forbids(t *testing.T) {
	c := newRoleContext(&domain.User{ID: 2, Role: domain.RoleUser})

	err := RequireRole(domain.RoleAdmin)(failNext(t))(c)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequireRole_MissingUser(t *testing.T) {
	c := newRoleContext(nil)

	err := RequireRole(domain.RoleAdmin)(failNext(t))(c)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden when auth chain skipped, got %v", err)
	}
}
