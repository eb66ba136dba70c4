// Package auth implements the authentication core: password hashing, token
// issuance and verification, identity resolution, and the role gate.
//
// The signing key is injected at construction time so issuer and verifier in
// the same process share the same key material without ambient globals.
package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/genworx/product-service/internal/core/domain"
)

// DefaultTokenTTL is the token lifetime used when none is configured.
const DefaultTokenTTL = 30 * time.Minute

// Claims is the verified content of a bearer token. Role is a point-in-time
// copy taken at issuance; it is not revalidated against the store.
type Claims struct {
	UserID int64
	Role   string
}

// Issuer builds signed, time-bounded bearer tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for the given user. The subject claim is serialized as
// a string regardless of the numeric identity type, as the JWT spec requires;
// a numeric sub produces tokens that conforming verifiers reject.
func (i *Issuer) Issue(userID int64, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(userID, 10),
		"role": role,
		"exp":  i.now().Add(i.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Verifier validates bearer tokens and extracts their claims.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// tokenClaims is the parse target; embedding RegisteredClaims gives exp
// validation for free.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Verify checks signature and expiry and extracts the identity claims.
// Malformed structure, bad signature and expiry all map to ErrInvalidToken;
// a subject that is present but not a valid integer identity maps to
// ErrInvalidSubject. Both render as the same unauthorized response at the
// edge but stay distinguishable for diagnostics.
func (v *Verifier) Verify(token string) (*Claims, error) {
	var tc tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &tc, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	if tc.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", domain.ErrInvalidToken)
	}

	userID, err := strconv.ParseInt(tc.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSubject, tc.Subject)
	}

	return &Claims{UserID: userID, Role: tc.Role}, nil
}
