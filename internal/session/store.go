// Package session holds the server-side session state: an opaque token
// handed to the client maps to a serialized Principal until it expires or is
// revoked.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"

	"blog-gateway/internal/domain/entity"
)

// ErrNoSession reports a token that is absent, expired, or revoked.
var ErrNoSession = errors.New("no active session")

// Store is the session lifecycle: Unestablished -> Active -> Expired/Revoked.
type Store interface {
	// Establish issues a fresh unguessable token for the principal.
	// Called only after successful authentication or sign-up.
	Establish(ctx context.Context, p *entity.Principal) (string, error)

	// Resolve returns the principal for an active token. It is idempotent
	// and side-effect free; unknown or expired tokens yield ErrNoSession.
	Resolve(ctx context.Context, token string) (*entity.Principal, error)

	// Revoke invalidates the token server-side. Revocation is effective
	// even if the client never clears its cookie.
	Revoke(ctx context.Context, token string) error
}

const tokenBytes = 32

// NewToken returns a cryptographically random, URL-safe session identifier.
func NewToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
