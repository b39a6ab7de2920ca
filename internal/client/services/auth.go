// Package services contains the application services of the finplanner
// clients. They sit between the terminal UI and the API client: every call
// starts at a user action, mutates local state only after the server
// confirmed it, and reports its outcome as a notification.
package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/finplanner/internal/client/api"
	"github.com/dmitrijs2005/finplanner/internal/client/models"
	"github.com/dmitrijs2005/finplanner/internal/client/notify"
	"github.com/dmitrijs2005/finplanner/internal/client/session"
	"github.com/dmitrijs2005/finplanner/internal/logging"
)

// UserSession exposes the current user id, "" when logged out.
type UserSession interface {
	UserID() string
}

// AdminSession exposes the current admin id, "" when logged out.
type AdminSession interface {
	AdminID() string
}

// Identity is what Restore found in the session store.
type Identity struct {
	UserID  string
	AdminID string
}

// AuthService handles logins and the stored sessions of both roles.
//
// Contract:
//   - Restore: read both session cookies once at start-up.
//   - Login / AdminLogin: authenticate and store the server-assigned id.
//   - Logout / AdminLogout: clear the role's cookie and forget the id.
//   - Profile: fetch the logged-in user's account.
//
// Failed logins never touch the stored session.
type AuthService interface {
	UserSession
	AdminSession
	Restore(ctx context.Context) (Identity, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	AdminLogin(ctx context.Context, email, password string) (models.Admin, error)
	Logout(ctx context.Context) error
	AdminLogout(ctx context.Context) error
	Profile(ctx context.Context) (models.User, error)
}

type authService struct {
	client   api.Client
	sessions session.Store
	reporter

	mu      sync.RWMutex
	userID  string
	adminID string
}

// NewAuthService constructs an AuthService over the API client and the
// session store.
func NewAuthService(client api.Client, sessions session.Store, notifier notify.Notifier, log logging.Logger) AuthService {
	return &authService{
		client:   client,
		sessions: sessions,
		reporter: reporter{notifier: notifier, log: log.With("component", "auth")},
	}
}

func (a *authService) UserID() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.userID
}

func (a *authService) AdminID() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.adminID
}

func (a *authService) Restore(ctx context.Context) (Identity, error) {
	userID, err := a.sessions.Get(ctx, session.RoleUser)
	if err != nil {
		return Identity{}, fmt.Errorf("restore user session: %w", err)
	}
	adminID, err := a.sessions.Get(ctx, session.RoleAdmin)
	if err != nil {
		return Identity{}, fmt.Errorf("restore admin session: %w", err)
	}

	a.mu.Lock()
	a.userID, a.adminID = userID, adminID
	a.mu.Unlock()

	a.log.Debug(ctx, "sessions restored", "user", userID != "", "admin", adminID != "")
	return Identity{UserID: userID, AdminID: adminID}, nil
}

func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	u, err := a.client.LoginUser(ctx, email, password)
	if err != nil {
		return models.User{}, a.fail(ctx, "login", err, "Login failed")
	}

	if err := a.sessions.Set(ctx, session.RoleUser, u.ID.String()); err != nil {
		return models.User{}, a.fail(ctx, "login", fmt.Errorf("save session: %w", err), "Could not save the session")
	}

	a.mu.Lock()
	a.userID = u.ID.String()
	a.mu.Unlock()

	a.ok(ctx, "Welcome", u.DisplayName())
	return u, nil
}

func (a *authService) AdminLogin(ctx context.Context, email, password string) (models.Admin, error) {
	adm, err := a.client.LoginAdmin(ctx, email, password)
	if err != nil {
		return models.Admin{}, a.fail(ctx, "admin login", err, "Invalid credentials")
	}

	if err := a.sessions.Set(ctx, session.RoleAdmin, adm.ID.String()); err != nil {
		return models.Admin{}, a.fail(ctx, "admin login", fmt.Errorf("save session: %w", err), "Could not save the session")
	}

	a.mu.Lock()
	a.adminID = adm.ID.String()
	a.mu.Unlock()

	a.ok(ctx, "Signed in", adm.Email)
	return adm, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx, session.RoleUser); err != nil {
		return fmt.Errorf("clear user session: %w", err)
	}
	a.mu.Lock()
	a.userID = ""
	a.mu.Unlock()
	return nil
}

func (a *authService) AdminLogout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx, session.RoleAdmin); err != nil {
		return fmt.Errorf("clear admin session: %w", err)
	}
	a.mu.Lock()
	a.adminID = ""
	a.mu.Unlock()
	return nil
}

func (a *authService) Profile(ctx context.Context) (models.User, error) {
	id := a.UserID()
	if id == "" {
		return models.User{}, ErrNotLoggedIn
	}
	u, err := a.client.GetProfile(ctx, id)
	if err != nil {
		return models.User{}, a.fail(ctx, "profile", err, "Could not load the profile")
	}
	return u, nil
}
