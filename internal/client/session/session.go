// Package session keeps the authenticated identity of each role across
// client restarts.
//
// An identity is an opaque, server-assigned id stored as a cookie named after
// the role ("userId" or "adminId") with a one-year lifetime and a strict
// same-site policy. Reading the cookie at start-up is the only way a session
// is resumed: the client never asks the server whether the id is still valid.
package session

import (
	"context"
	"net/http"
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// MaxAge is the lifetime of a session cookie in seconds (one year).
const MaxAge = 31536000

// CookieName is the cookie holding the role's id.
func (r Role) CookieName() string {
	if r == RoleAdmin {
		return "adminId"
	}
	return "userId"
}

// Header is the request header carrying the role's id.
func (r Role) Header() string {
	if r == RoleAdmin {
		return "X-Admin-Id"
	}
	return "X-User-Id"
}

// Cookie builds the cookie written on login.
func Cookie(role Role, id string) *http.Cookie {
	return &http.Cookie{
		Name:     role.CookieName(),
		Value:    id,
		Path:     "/",
		MaxAge:   MaxAge,
		SameSite: http.SameSiteStrictMode,
	}
}

// ExpiredCookie builds the cookie written on logout; it renders as Max-Age=0.
func ExpiredCookie(role Role) *http.Cookie {
	return &http.Cookie{
		Name:     role.CookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		SameSite: http.SameSiteStrictMode,
	}
}

// Store is the session store. The two roles are independent: setting or
// clearing one never touches the other.
type Store interface {
	// Get returns "" when there is no live session for role.
	Get(ctx context.Context, role Role) (string, error)
	Set(ctx context.Context, role Role, id string) error
	Clear(ctx context.Context, role Role) error
}

func expiresAt(now time.Time) time.Time {
	return now.Add(MaxAge * time.Second)
}
