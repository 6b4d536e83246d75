package jwtx

import "errors"

var (
	// ErrInvalidToken covers malformed input, a bad signature, an
	// unexpected signing algorithm, or structurally wrong claims.
	ErrInvalidToken = errors.New("jwtx: invalid token")

	// ErrIssuer reports an issuer claim mismatch.
	ErrIssuer = errors.New("jwtx: issuer mismatch")

	// ErrEmptySecret reports a codec constructed without a signing secret.
	ErrEmptySecret = errors.New("jwtx: empty signing secret")
)
