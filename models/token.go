package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded payload of an access token.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set (sub, exp, iat,
// iss) and adds the identity fields the API needs on every authenticated
// request. Subject always mirrors UserID.
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`

	jwt.RegisteredClaims
}

// Token wraps a signed JWT together with the claims it was built from.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the payload embedded into the token.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
