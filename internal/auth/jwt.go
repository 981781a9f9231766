// Package auth verifies the bearer tokens issued by the external identity
// provider. Contributors are never registered here: the token subject is
// the contributor id.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/actas-backend/internal/domain"
	"github.com/heartmarshall/actas-backend/pkg/ctxutil"
)

// clockSkew tolerates drift between this host and the identity provider.
const clockSkew = 30 * time.Second

// Verifier validates HS256 access tokens.
type Verifier struct {
	secret []byte
	issuer string
	parser *jwt.Parser
}

// NewVerifier creates a verifier for tokens from issuer. Config validation
// guarantees the secret is at least 32 bytes.
func NewVerifier(secret string, issuer string) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		issuer: issuer,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithLeeway(clockSkew),
		),
	}
}

// accessClaims extends standard JWT claims with the contributor's role.
type accessClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// Issue signs a token the way the identity provider does. Used by the CLI
// to mint development tokens and by tests.
func (v *Verifier) Issue(contributorID uuid.UUID, role domain.ContributorRole, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   contributorID.String(),
			Issuer:    v.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: role.String(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks an access token and returns the caller it identifies.
// A token without a role claim is a plain contributor.
func (v *Verifier) Verify(_ context.Context, tokenString string) (ctxutil.Caller, error) {
	if tokenString == "" {
		return ctxutil.Caller{}, fmt.Errorf("token is empty")
	}

	token, err := v.parser.ParseWithClaims(tokenString, &accessClaims{}, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return ctxutil.Caller{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return ctxutil.Caller{}, fmt.Errorf("invalid token claims")
	}

	contributorID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctxutil.Caller{}, fmt.Errorf("invalid subject UUID: %w", err)
	}

	role := domain.ContributorRole(claims.Role)
	if claims.Role == "" {
		role = domain.ContributorRoleContributor
	}
	if !role.IsValid() {
		return ctxutil.Caller{}, fmt.Errorf("unknown role %q", claims.Role)
	}

	return ctxutil.Caller{ID: contributorID, Role: role.String()}, nil
}
