package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/souqly/marketplace-api/internal/core/domain"
	"github.com/souqly/marketplace-api/internal/core/ports"
)

// ErrRevocationDisabled is returned by Revoke when no revocation store is
// configured.
var ErrRevocationDisabled = errors.New("session revocation is not configured")

// BearerCredential extracts the credential from an "Authorization: Bearer x"
// header value.
func BearerCredential(authorization string) (string, error) {
	if strings.TrimSpace(authorization) == "" {
		return "", domain.ErrAuthMissing
	}
	scheme, credential, ok := strings.Cut(authorization, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", domain.ErrAuthMalformed
	}
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return "", domain.ErrAuthMalformed
	}
	return credential, nil
}

// Authenticator implements ports.SessionService. Tokens are stateless; the
// optional revocation store only remembers tokens ended by logout.
type Authenticator struct {
	tokens       *TokenService
	sharedSecret []byte
	revocations  ports.RevocationStore
	log          zerolog.Logger
}

// NewAuthenticator builds the request authenticator. revocations may be nil.
func NewAuthenticator(tokens *TokenService, sharedSecret string, revocations ports.RevocationStore, log zerolog.Logger) *Authenticator {
	return &Authenticator{
		tokens:       tokens,
		sharedSecret: []byte(sharedSecret),
		revocations:  revocations,
		log:          log,
	}
}

func (a *Authenticator) AuthenticateToken(ctx context.Context, authorization string) (domain.Claims, error) {
	raw, err := BearerCredential(authorization)
	if err != nil {
		return domain.Claims{}, err
	}

	claims, err := a.tokens.VerifyToken(raw)
	if err != nil {
		return domain.Claims{}, err
	}

	if a.revocations != nil && claims.TokenID != "" {
		revoked, err := a.revocations.IsRevoked(ctx, claims.TokenID)
		if err != nil {
			return domain.Claims{}, domain.Unavailable("check revocation", err)
		}
		if revoked {
			return domain.Claims{}, domain.ErrTokenRevoked
		}
	}
	return claims, nil
}

// AuthenticateSharedSecret compares the bearer credential with the configured
// api token in constant time.
func (a *Authenticator) AuthenticateSharedSecret(authorization string) error {
	raw, err := BearerCredential(authorization)
	if err != nil {
		return err
	}
	if len(a.sharedSecret) == 0 || subtle.ConstantTimeCompare([]byte(raw), a.sharedSecret) != 1 {
		return domain.ErrSharedSecretMismatch
	}
	return nil
}

func (a *Authenticator) CanRevoke() bool { return a.revocations != nil }

func (a *Authenticator) Revoke(ctx context.Context, claims domain.Claims) error {
	if a.revocations == nil {
		return ErrRevocationDisabled
	}
	if claims.TokenID == "" {
		return domain.ErrTokenMalformed
	}
	if err := a.revocations.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		return domain.Unavailable("revoke token", err)
	}
	a.log.Info().Int64("user_id", claims.UserID).Str("jti", claims.TokenID).Msg("session revoked")
	return nil
}
