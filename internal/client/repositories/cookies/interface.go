// Package cookies persists the client's cookie jar in the local SQLite DB.
// It is the terminal counterpart of a browser profile's cookie storage.
package cookies

import (
	"context"
	"net/http"
)

// Repository stores cookies by name. Expiry is enforced by the caller;
// the repository returns whatever was written.
type Repository interface {
	// Get returns (nil, nil) when no cookie with that name exists.
	Get(ctx context.Context, name string) (*http.Cookie, error)
	Put(ctx context.Context, c *http.Cookie) error
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]*http.Cookie, error)
	Clear(ctx context.Context) error
}
