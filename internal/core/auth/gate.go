package auth

import "github.com/genworx/product-service/internal/core/domain"

// Require compares the resolved user's stored role against the required one.
// Pure check, no I/O; the stored role wins over whatever the token claimed.
func Require(user *domain.User, role domain.Role) (*domain.User, error) {
	if user == nil || user.Role != role {
		return nil, domain.ErrForbidden
	}
	return user, nil
}
