package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/genworx/product-service/internal/core/auth"
	"github.com/genworx/product-service/internal/core/domain"
)

const testSecret = "test-secret"

type stubUserRepo struct {
	users map[int64]*domain.User
	err   error
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	return user, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func newAuthContext(t *testing.T, header string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func authChain(repo *stubUserRepo) echo.MiddlewareFunc {
	verifier := auth.NewVerifier(testSecret)
	resolver := auth.NewResolver(repo, zerolog.Nop())
	return Authenticate(verifier, resolver)
}

func issueToken(t *testing.T, userID int64, role string) string {
	t.Helper()
	token, err := auth.NewIssuer(testSecret, time.Hour).Issue(userID, role)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func TestAuthenticate_ValidToken(t *testing.T) {
	repo := &stubUserRepo{users: map[int64]*domain.User{
		42: {ID: 42, Username: "alice", Role: domain.RoleUser, IsActive: true},
	}}
	token := issueToken(t, 42, "user")
	c, rec := newAuthContext(t, "Bearer "+token)

	called := false
	handler := authChain(repo)(func(c echo.Context) error {
		called = true
		user, ok := c.Get(ContextUser).(*domain.User)
		if !ok || user.ID != 42 {
			t.Fatalf("user not injected: %v", c.Get(ContextUser))
		}
		claims, ok := c.Get(ContextClaims).(*auth.Claims)
		if !ok || claims.Role != "user" {
			t.Fatalf("claims not injected: %v", c.Get(ContextClaims))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	c, _ := newAuthContext(t, "")

	err := authChain(&stubUserRepo{})(failNext(t))(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 error, got %v", err)
	}
}

func TestAuthenticate_InvalidHeaderFormat(t *testing.T) {
	c, _ := newAuthContext(t, "Token abc")

	err := authChain(&stubUserRepo{})(failNext(t))(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 error, got %v", err)
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	c, _ := newAuthContext(t, "Bearer not-a-token")

	err := authChain(&stubUserRepo{})(failNext(t))(c)
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthenticate_UserDeletedAfterIssuance(t *testing.T) {
	// Token was valid when issued; the account is gone now.
	token := issueToken(t, 42, "user")
	c, _ := newAuthContext(t, "Bearer "+token)

	err := authChain(&stubUserRepo{users: map[int64]*domain.User{}})(failNext(t))(c)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthenticate_StoreFault(t *testing.T) {
	token := issueToken(t, 42, "user")
	c, _ := newAuthContext(t, "Bearer "+token)

	err := authChain(&stubUserRepo{err: errors.New("connection refused")})(failNext(t))(c)
	if !errors.Is(err, domain.ErrLookupFailed) {
		t.Fatalf("expected ErrLookupFailed, got %v", err)
	}
}

func TestAuthenticate_StaleRoleClaim(t *testing.T) {
	// Token carries role "user" from issuance; the stored role has since
	// been promoted to admin. The injected claims keep the stale snapshot
	// while the resolved user carries the fresh role.
	repo := &stubUserRepo{users: map[int64]*domain.User{
		42: {ID: 42, Username: "alice", Role: domain.RoleAdmin, IsActive: true},
	}}
	token := issueToken(t, 42, "user")
	c, _ := newAuthContext(t, "Bearer "+token)

	handler := authChain(repo)(func(c echo.Context) error {
		claims := c.Get(ContextClaims).(*auth.Claims)
		if claims.Role != "user" {
			t.Fatalf("claims role should stay at issuance snapshot, got %q", claims.Role)
		}
		user := c.Get(ContextUser).(*domain.User)
		if user.Role != domain.RoleAdmin {
			t.Fatalf("resolved user should carry the stored role, got %s", user.Role)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func failNext(t *testing.T) echo.HandlerFunc {
	return func(echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	}
}
