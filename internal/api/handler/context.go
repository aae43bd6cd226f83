package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/souqly/marketplace-api/internal/core/domain"
)

const claimsKey = "auth.claims"

// SetClaims stores the verified session claims on the request context.
func SetClaims(c echo.Context, claims domain.Claims) {
	c.Set(claimsKey, claims)
}

// ClaimsFrom returns the claims injected by the signed-token middleware.
func ClaimsFrom(c echo.Context) (domain.Claims, bool) {
	claims, ok := c.Get(claimsKey).(domain.Claims)
	return claims, ok && claims.UserID != 0
}

// principal fails fast when a protected handler runs without the
// signed-token middleware.
func principal(c echo.Context) (domain.Principal, error) {
	claims, ok := ClaimsFrom(c)
	if !ok {
		return domain.Principal{}, domain.ErrAuthMissing
	}
	return domain.PrincipalFromClaims(claims), nil
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.Invalid(name + " must be a positive integer")
	}
	return id, nil
}
