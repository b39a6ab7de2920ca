package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/finplanner/internal/client/repositories/cookies"
	"github.com/dmitrijs2005/finplanner/internal/dbx"
)

// CookieStore persists sessions in the local cookie jar.
type CookieStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewCookieStore(db *sql.DB) *CookieStore {
	return &CookieStore{db: db, now: time.Now}
}

func (s *CookieStore) repo(db dbx.DBTX) cookies.Repository {
	return cookies.NewSQLiteRepository(db)
}

func (s *CookieStore) Get(ctx context.Context, role Role) (string, error) {
	c, err := s.repo(s.db).Get(ctx, role.CookieName())
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}
	if c == nil {
		return "", nil
	}
	if !c.Expires.After(s.now()) {
		if err := s.repo(s.db).Delete(ctx, c.Name); err != nil {
			return "", fmt.Errorf("drop expired session: %w", err)
		}
		return "", nil
	}
	return c.Value, nil
}

func (s *CookieStore) Set(ctx context.Context, role Role, id string) error {
	c := Cookie(role, id)
	c.Expires = expiresAt(s.now())

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repo(tx).Put(ctx, c); err != nil {
			return fmt.Errorf("write session: %w", err)
		}
		return nil
	})
}

// Clear expires the role's cookie immediately, which removes it from the jar.
func (s *CookieStore) Clear(ctx context.Context, role Role) error {
	c := ExpiredCookie(role)
	if err := s.repo(s.db).Delete(ctx, c.Name); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
