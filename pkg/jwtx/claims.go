package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role values carried in token claims.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// Claims is the identity payload embedded in a signed bearer token. The
// token is stateless: no server-side session record is kept and no expiry
// claim is set, so a token stays valid until the signing secret changes.
type Claims struct {
	jwt.RegisteredClaims

	// Username of the authenticated user.
	Username string `json:"username,omitempty"`

	// Role is the account role at issuance time ("member" or "admin").
	Role string `json:"role,omitempty"`
}

// NewClaims builds claims for a user. Subject carries the user id.
func NewClaims(userID, username, role, issuer string, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  userID,
			IssuedAt: jwt.NewNumericDate(now),
		},
		Username: username,
		Role:     role,
	}
}

// UserID returns the subject claim.
func (c Claims) UserID() string { return c.Subject }

// IsAdmin reports whether the claims carry the admin role.
func (c Claims) IsAdmin() bool { return c.Role == RoleAdmin }

// ValidateIssuer checks the issuer matches the expected value. An empty
// expectation enforces nothing.
func (c Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}
