package auth

import (
	"errors"
	"testing"

	"github.com/genworx/product-service/internal/core/domain"
)

func TestRequire_Allows(t *testing.T) {
	admin := &domain.User{ID: 1, Role: domain.RoleAdmin}

	user, err := Require(admin, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("Require returned error: %v", err)
	}
	if user != admin {
		t.Fatalf("expected the same user back")
	}
}

func TestRequire_Forbids(t *testing.T) {
	regular := &domain.User{ID: 2, Role: domain.RoleUser}

	if _, err := Require(regular, domain.RoleAdmin); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequire_NilUser(t *testing.T) {
	if _, err := Require(nil, domain.RoleAdmin); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for nil user, got %v", err)
	}
}
