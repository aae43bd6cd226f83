package domain

import "time"

// SessionLifetime is how long an issued token stays valid.
const SessionLifetime = 24 * time.Hour

// Claims are the identity facts embedded in a signed session token. They are
// never persisted; a session ends when ExpiresAt passes.
type Claims struct {
	UserID    int64
	Username  string
	Role      string
	FullName  string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID   int64
	Username string
	Role     string
}

// PrincipalFromClaims derives the acting principal from verified claims.
func PrincipalFromClaims(c Claims) Principal {
	return Principal{UserID: c.UserID, Username: c.Username, Role: c.Role}
}

func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }

// Authorize allows p to mutate a resource owned by ownerID when p is an admin
// or the owner itself.
func Authorize(p Principal, ownerID int64) error {
	if p.IsAdmin() || (p.UserID != 0 && p.UserID == ownerID) {
		return nil
	}
	return ErrForbidden
}
