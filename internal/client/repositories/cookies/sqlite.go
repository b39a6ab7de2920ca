package cookies

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/finplanner/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, name string) (*http.Cookie, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT name, value, path, same_site, expires_at FROM cookies WHERE name = ?`, name)

	c, err := scanCookie(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cookie[%s]: %w", name, err)
	}
	return c, nil
}

func (r *SQLiteRepository) Put(ctx context.Context, c *http.Cookie) error {
	path := c.Path
	if path == "" {
		path = "/"
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cookies (name, value, path, same_site, expires_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			value = excluded.value,
			path = excluded.path,
			same_site = excluded.same_site,
			expires_at = excluded.expires_at,
			updated_at = excluded.updated_at
	`, c.Name, c.Value, path, sameSiteName(c.SameSite), c.Expires.Unix(), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to put cookie[%s]: %w", c.Name, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cookies WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete cookie[%s]: %w", name, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cookies`)
	if err != nil {
		return fmt.Errorf("failed to clear cookies: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]*http.Cookie, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, value, path, same_site, expires_at FROM cookies ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cookies: %w", err)
	}
	defer rows.Close()

	var result []*http.Cookie
	for rows.Next() {
		c, err := scanCookie(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cookie row: %w", err)
		}
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cookie rows: %w", err)
	}

	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCookie(s scanner) (*http.Cookie, error) {
	var (
		c        http.Cookie
		sameSite string
		expires  int64
	)
	if err := s.Scan(&c.Name, &c.Value, &c.Path, &sameSite, &expires); err != nil {
		return nil, err
	}
	c.SameSite = parseSameSite(sameSite)
	c.Expires = time.Unix(expires, 0)
	return &c, nil
}

func sameSiteName(m http.SameSite) string {
	switch m {
	case http.SameSiteLaxMode:
		return "Lax"
	case http.SameSiteNoneMode:
		return "None"
	default:
		return "Strict"
	}
}

func parseSameSite(s string) http.SameSite {
	switch s {
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteStrictMode
	}
}
