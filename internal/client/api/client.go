package api

import (
	"context"

	"github.com/dmitrijs2005/finplanner/internal/client/models"
)

// Client is the full surface of the backend. userID and adminID are the ids
// held by the session store; they travel as headers only.
type Client interface {
	LoginUser(ctx context.Context, email, password string) (models.User, error)
	LoginAdmin(ctx context.Context, email, password string) (models.Admin, error)
	GetProfile(ctx context.Context, userID string) (models.User, error)

	ListTransactions(ctx context.Context, userID string) (TransactionList, error)
	CreateTransaction(ctx context.Context, userID string, in models.TransactionInput) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID string, id models.ID) error

	ListGoals(ctx context.Context, userID string) ([]models.Goal, error)
	CreateGoal(ctx context.Context, userID string, in models.GoalInput) (models.Goal, error)
	UpdateGoalProgress(ctx context.Context, userID string, p models.GoalProgress) (models.Goal, error)
	DeleteGoal(ctx context.Context, userID string, id models.ID) error

	ListOrganizations(ctx context.Context, userID string) ([]models.Organization, error)
	// CreateOrganization returns only the new id; the server sends no object.
	CreateOrganization(ctx context.Context, userID string, in models.OrganizationInput) (models.ID, error)
	UpdateOrganization(ctx context.Context, userID string, in models.OrganizationInput) error
	DeleteOrganization(ctx context.Context, userID string, id models.ID) error

	ListUsers(ctx context.Context, adminID string) ([]models.AdminUser, error)
	CreateUser(ctx context.Context, adminID string, in models.NewUserInput) (models.CreatedUser, error)
	DeleteUser(ctx context.Context, adminID string, id models.ID) error
	GrantPremium(ctx context.Context, adminID string, userID models.ID, days int) (models.AdminUser, error)
	RevokePremium(ctx context.Context, adminID string, userID models.ID) (models.AdminUser, error)
}

// TransactionList is the transactions-list payload. IsPremium is the only
// source of the user's premium status.
type TransactionList struct {
	Transactions []models.Transaction
	IsPremium    bool
}

// DefaultPremiumDays is the grant length used when the admin gives none.
const DefaultPremiumDays = 30
