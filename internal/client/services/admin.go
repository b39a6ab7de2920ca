package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/finplanner/internal/client/api"
	"github.com/dmitrijs2005/finplanner/internal/client/models"
	"github.com/dmitrijs2005/finplanner/internal/client/notify"
	"github.com/dmitrijs2005/finplanner/internal/client/store"
	"github.com/dmitrijs2005/finplanner/internal/logging"
)

// AdminService manages user accounts from the admin client.
type AdminService interface {
	LoadUsers(ctx context.Context) error
	Users() []models.AdminUser
	Reset()

	// Dialog is the create-user flow; CreateUser submits its form.
	Dialog() *CreateUserDialog
	CreateUser(ctx context.Context, in models.NewUserInput) error
	DeleteUser(ctx context.Context, id models.ID) error
	// GrantPremium uses api.DefaultPremiumDays when days is not positive.
	GrantPremium(ctx context.Context, id models.ID, days int) error
	RevokePremium(ctx context.Context, id models.ID) error
}

type adminService struct {
	client  api.Client
	session AdminSession
	reporter

	users  *store.AdminUsers
	dialog *CreateUserDialog
}

func NewAdminService(client api.Client, session AdminSession, notifier notify.Notifier, log logging.Logger) AdminService {
	return &adminService{
		client:   client,
		session:  session,
		reporter: reporter{notifier: notifier, log: log.With("component", "admin")},
		users:    store.New[models.AdminUser](),
		dialog:   &CreateUserDialog{},
	}
}

func (s *adminService) Users() []models.AdminUser { return s.users.Items() }

func (s *adminService) Dialog() *CreateUserDialog { return s.dialog }

func (s *adminService) Reset() {
	s.users.Reset(nil)
	s.dialog.Close()
}

func (s *adminService) adminID(ctx context.Context) (string, error) {
	id := s.session.AdminID()
	if id == "" {
		return "", s.invalid(ctx, ErrNotLoggedIn)
	}
	return id, nil
}

func (s *adminService) LoadUsers(ctx context.Context) error {
	adminID, err := s.adminID(ctx)
	if err != nil {
		return err
	}

	users, err := s.client.ListUsers(ctx, adminID)
	if err != nil {
		return s.fail(ctx, "list users", err, "Could not load users")
	}
	s.users.Reset(users)
	return nil
}

func (s *adminService) CreateUser(ctx context.Context, in models.NewUserInput) error {
	adminID, err := s.adminID(ctx)
	if err != nil {
		return err
	}

	user, err := s.dialog.Submit(ctx, in, func(ctx context.Context, in models.NewUserInput) (models.CreatedUser, error) {
		return s.client.CreateUser(ctx, adminID, in)
	})
	if err != nil {
		if _, ok := api.AsFailure(err); ok {
			return s.fail(ctx, "create user", err, "Could not create the user")
		}
		return s.invalid(ctx, err)
	}

	s.users.ApplyCreate(user)
	s.ok(ctx, "User created", user.Email)
	return nil
}

func (s *adminService) DeleteUser(ctx context.Context, id models.ID) error {
	adminID, err := s.adminID(ctx)
	if err != nil {
		return err
	}

	if err := s.client.DeleteUser(ctx, adminID, id); err != nil {
		return s.fail(ctx, "delete user", err, "Could not delete the user")
	}

	s.users.ApplyDelete(id)
	s.ok(ctx, "User deleted", "")
	return nil
}

func (s *adminService) GrantPremium(ctx context.Context, id models.ID, days int) error {
	adminID, err := s.adminID(ctx)
	if err != nil {
		return err
	}
	if days <= 0 {
		days = api.DefaultPremiumDays
	}

	user, err := s.client.GrantPremium(ctx, adminID, id, days)
	if err != nil {
		return s.fail(ctx, "grant premium", err, "Could not grant premium")
	}

	s.applyPremium(user)
	s.ok(ctx, "Premium granted", fmt.Sprintf("%d days", days))
	return nil
}

func (s *adminService) RevokePremium(ctx context.Context, id models.ID) error {
	adminID, err := s.adminID(ctx)
	if err != nil {
		return err
	}

	user, err := s.client.RevokePremium(ctx, adminID, id)
	if err != nil {
		return s.fail(ctx, "revoke premium", err, "Could not revoke premium")
	}

	s.applyPremium(user)
	s.ok(ctx, "Premium revoked", "")
	return nil
}

// applyPremium merges only the premium fields: grant and revoke responses
// omit username and created_at.
func (s *adminService) applyPremium(u models.AdminUser) {
	cur, ok := s.users.Get(u.ID)
	if !ok {
		return
	}
	cur.IsPremium = u.IsPremium
	cur.PremiumExpiresAt = u.PremiumExpiresAt
	s.users.ApplyReplace(cur)
}
