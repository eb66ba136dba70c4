package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/genworx/product-service/internal/core/domain"
	"github.com/genworx/product-service/internal/core/ports"
)

// Resolver maps verified token claims to a persisted user record with a
// single primary-key lookup per request.
type Resolver struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewResolver(repo ports.UserRepository, log zerolog.Logger) *Resolver {
	return &Resolver{repo: repo, log: log}
}

// Resolve loads the user behind a verified subject. A missing record is a
// credential problem (ErrUserNotFound); any other store fault is an
// infrastructure problem and maps to ErrLookupFailed. The distinction stays
// visible in logs even though both collapse to 401 at the edge.
func (r *Resolver) Resolve(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := r.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			r.log.Warn().Int64("user_id", userID).Msg("token subject has no user record")
			return nil, domain.ErrUserNotFound
		}
		r.log.Error().Err(err).Int64("user_id", userID).Msg("user lookup failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrLookupFailed, err)
	}
	return user, nil
}
