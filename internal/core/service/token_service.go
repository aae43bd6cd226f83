package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/souqly/marketplace-api/internal/core/domain"
)

// sessionClaims is the wire form of domain.Claims.
type sessionClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 session tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = domain.SessionLifetime
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock replaces the time source used for iat, exp and expiry checks.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// IssueToken signs a token for the identity in c. TokenID, IssuedAt and
// ExpiresAt are filled in and returned alongside the token. Timestamps are
// truncated to whole seconds, the resolution of the encoded claims.
func (s *TokenService) IssueToken(c domain.Claims) (string, domain.Claims, error) {
	now := s.now().UTC().Truncate(time.Second)
	c.TokenID = uuid.NewString()
	c.IssuedAt = now
	c.ExpiresAt = now.Add(s.ttl)

	wire := sessionClaims{
		UserID:   c.UserID,
		Username: c.Username,
		Role:     c.Role,
		FullName: c.FullName,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        c.TokenID,
			Subject:   strconv.FormatInt(c.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(c.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(c.ExpiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, wire).SignedString(s.secret)
	if err != nil {
		return "", domain.Claims{}, err
	}
	return signed, c, nil
}

// VerifyToken checks the signature and expiry of token and returns its claims.
func (s *TokenService) VerifyToken(token string) (domain.Claims, error) {
	var wire sessionClaims
	_, err := jwt.ParseWithClaims(token, &wire,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		// exp has whole-second resolution; a token is expired only once
		// now is strictly past it.
		jwt.WithTimeFunc(func() time.Time { return s.now().Truncate(time.Second) }),
		jwt.WithLeeway(time.Second),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return domain.Claims{}, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return domain.Claims{}, domain.ErrTokenInvalidSignature
		default:
			return domain.Claims{}, domain.ErrTokenMalformed
		}
	}

	if wire.UserID == 0 || wire.Username == "" || !domain.ValidRole(wire.Role) {
		return domain.Claims{}, domain.ErrTokenMalformed
	}

	claims := domain.Claims{
		UserID:   wire.UserID,
		Username: wire.Username,
		Role:     wire.Role,
		FullName: wire.FullName,
		TokenID:  wire.ID,
	}
	if wire.IssuedAt != nil {
		claims.IssuedAt = wire.IssuedAt.UTC()
	}
	claims.ExpiresAt = wire.ExpiresAt.UTC()
	return claims, nil
}
