package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/genworx/product-service/internal/core/domain"
)

type stubUserRepo struct {
	users map[int64]*domain.User
	err   error
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	return user, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
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

func TestResolver_Found(t *testing.T) {
	repo := &stubUserRepo{users: map[int64]*domain.User{
		42: {ID: 42, Username: "alice", Role: domain.RoleUser},
	}}
	resolver := NewResolver(repo, zerolog.Nop())

	user, err := resolver.Resolve(context.Background(), 42)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestResolver_UserDeleted(t *testing.T) {
	repo := &stubUserRepo{users: map[int64]*domain.User{}}
	resolver := NewResolver(repo, zerolog.Nop())

	_, err := resolver.Resolve(context.Background(), 42)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if errors.Is(err, domain.ErrLookupFailed) {
		t.Fatalf("a missing user must not report as a store fault")
	}
}

func TestResolver_StoreFault(t *testing.T) {
	repo := &stubUserRepo{err: errors.New("connection refused")}
	resolver := NewResolver(repo, zerolog.Nop())

	_, err := resolver.Resolve(context.Background(), 42)
	if !errors.Is(err, domain.ErrLookupFailed) {
		t.Fatalf("expected ErrLookupFailed, got %v", err)
	}
	if errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("a store fault must not report as a missing user")
	}
}
