package session

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformedToken = errors.New("malformed token")
	ErrMissingRole    = errors.New("token payload has no role claim")
	errUnknownRole    = errors.New("unknown role")
)

// Claims are the fields decoded from the token payload that the client
// actually uses. Anything else in the payload is ignored.
type Claims struct {
	ID    string `json:"id,omitempty"`
	Email string `json:"email,omitempty"`
	Role  Role   `json:"role"`
}

// DecodeClaims extracts the claims from a compact token without verifying
// the signature; verification is the backend's job and the client only needs
// the role for routing. Only the payload segment is inspected, so tokens
// with unparseable headers still decode as long as the payload is sound.
// Any structural failure must be treated as "no session", never as a
// partial one.
func DecodeClaims(token string) (Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return Claims{}, ErrMalformedToken
	}
	payload, err := jwt.NewParser().DecodeSegment(parts[1])
	if err != nil {
		return Claims{}, ErrMalformedToken
	}
	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return Claims{}, ErrMalformedToken
	}
	if claims.Role == "" {
		return Claims{}, ErrMissingRole
	}
	return claims, nil
}
