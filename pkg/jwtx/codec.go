package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Codec signs and verifies bearer tokens.
type Codec interface {
	Sign(Claims) (string, error)
	Verify(token string) (Claims, error)
}

// HS256Codec signs tokens with a server-held symmetric secret. Sign and
// Verify are pure and safe under unlimited concurrency.
type HS256Codec struct {
	secret []byte
	issuer string
}

// NewHS256Codec creates a codec from a symmetric secret. The issuer is
// stamped into signed claims and enforced on verification; empty means
// "don't care".
func NewHS256Codec(secret, issuer string) (*HS256Codec, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &HS256Codec{secret: []byte(secret), issuer: issuer}, nil
}

// Sign produces a compact JWT over the claims.
func (c *HS256Codec) Sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return signed, nil
}

// Verify recomputes and checks the signature and returns the embedded
// claims. It never panics: any malformed, empty, or adversarial input
// yields ErrInvalidToken.
func (c *HS256Codec) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	var claims Claims
	token, err := parser.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	if err := claims.ValidateIssuer(c.issuer); err != nil {
		return Claims{}, err
	}
	if claims.Subject == "" {
		return Claims{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return claims, nil
}

// Invalid reports whether err is any verification failure, as opposed to an
// internal signing error.
func Invalid(err error) bool {
	return errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrIssuer)
}
