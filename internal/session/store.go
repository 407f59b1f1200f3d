// Package session keeps the server-side session state behind an opaque
// cookie token. The store holds a snapshot of the signed-in user; handlers
// read it through the gin context.
package session

import (
	"context"
	"time"

	"kambaz-backend/internal/models"
)

const (
	// CookieName is the session cookie set at signin.
	CookieName = "kambaz_session"

	// TTL is how long a session lives without a new signin.
	TTL = 24 * time.Hour
)

// Store persists sessions. Get returns (nil, nil) for a missing or expired
// token.
type Store interface {
	Save(ctx context.Context, token string, user *models.User) error
	Get(ctx context.Context, token string) (*models.User, error)
	Delete(ctx context.Context, token string) error
}
