package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/finplanner/internal/client/api"
	"github.com/dmitrijs2005/finplanner/internal/client/models"
)

// ---- fake client ----

// fakeClient implements api.Client with preset results and records the ids
// each call was made with.
type fakeClient struct {
	mu    sync.Mutex
	calls []string
	ids   []string

	LoginUserRet  models.User
	LoginUserErr  error
	LoginAdminRet models.Admin
	LoginAdminErr error
	ProfileRet    models.User
	ProfileErr    error

	ListTxRet   api.TransactionList
	ListTxErr   error
	CreateTxRet models.Transaction
	CreateTxErr error
	DeleteTxErr error

	ListGoalsRet   []models.Goal
	ListGoalsErr   error
	CreateGoalRet  models.Goal
	CreateGoalErr  error
	UpdateGoalRet  models.Goal
	UpdateGoalErr  error
	LastGoalUpdate models.GoalProgress
	DeleteGoalErr  error

	ListOrgsRet  []models.Organization
	ListOrgsErr  error
	CreateOrgRet models.ID
	CreateOrgErr error
	UpdateOrgErr error
	DeleteOrgErr error
	LastOrgInput models.OrganizationInput

	ListUsersRet  []models.AdminUser
	ListUsersErr  error
	CreateUserRet models.CreatedUser
	CreateUserErr error
	DeleteUserErr error
	GrantRet      models.AdminUser
	GrantErr      error
	LastGrantDays int
	RevokeRet     models.AdminUser
	RevokeErr     error
}

var _ api.Client = (*fakeClient)(nil)

func (f *fakeClient) record(call, id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	f.ids = append(f.ids, id)
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) IDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.ids...)
}

func (f *fakeClient) LoginUser(ctx context.Context, email, password string) (models.User, error) {
	f.record("LoginUser", "")
	return f.LoginUserRet, f.LoginUserErr
}

func (f *fakeClient) LoginAdmin(ctx context.Context, email, password string) (models.Admin, error) {
	f.record("LoginAdmin", "")
	return f.LoginAdminRet, f.LoginAdminErr
}

func (f *fakeClient) GetProfile(ctx context.Context, userID string) (models.User, error) {
	f.record("GetProfile", userID)
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) ListTransactions(ctx context.Context, userID string) (api.TransactionList, error) {
	f.record("ListTransactions", userID)
	return f.ListTxRet, f.ListTxErr
}

func (f *fakeClient) CreateTransaction(ctx context.Context, userID string, in models.TransactionInput) (models.Transaction, error) {
	f.record("CreateTransaction", userID)
	return f.CreateTxRet, f.CreateTxErr
}

func (f *fakeClient) DeleteTransaction(ctx context.Context, userID string, id models.ID) error {
	f.record("DeleteTransaction", userID)
	return f.DeleteTxErr
}

func (f *fakeClient) ListGoals(ctx context.Context, userID string) ([]models.Goal, error) {
	f.record("ListGoals", userID)
	return f.ListGoalsRet, f.ListGoalsErr
}

func (f *fakeClient) CreateGoal(ctx context.Context, userID string, in models.GoalInput) (models.Goal, error) {
	f.record("CreateGoal", userID)
	return f.CreateGoalRet, f.CreateGoalErr
}

func (f *fakeClient) UpdateGoalProgress(ctx context.Context, userID string, p models.GoalProgress) (models.Goal, error) {
	f.record("UpdateGoalProgress", userID)
	f.LastGoalUpdate = p
	return f.UpdateGoalRet, f.UpdateGoalErr
}

func (f *fakeClient) DeleteGoal(ctx context.Context, userID string, id models.ID) error {
	f.record("DeleteGoal", userID)
	return f.DeleteGoalErr
}

func (f *fakeClient) ListOrganizations(ctx context.Context, userID string) ([]models.Organization, error) {
	f.record("ListOrganizations", userID)
	return f.ListOrgsRet, f.ListOrgsErr
}

func (f *fakeClient) CreateOrganization(ctx context.Context, userID string, in models.OrganizationInput) (models.ID, error) {
	f.record("CreateOrganization", userID)
	f.LastOrgInput = in
	return f.CreateOrgRet, f.CreateOrgErr
}

func (f *fakeClient) UpdateOrganization(ctx context.Context, userID string, in models.OrganizationInput) error {
	f.record("UpdateOrganization", userID)
	f.LastOrgInput = in
	return f.UpdateOrgErr
}

func (f *fakeClient) DeleteOrganization(ctx context.Context, userID string, id models.ID) error {
	f.record("DeleteOrganization", userID)
	return f.DeleteOrgErr
}

func (f *fakeClient) ListUsers(ctx context.Context, adminID string) ([]models.AdminUser, error) {
	f.record("ListUsers", adminID)
	return f.ListUsersRet, f.ListUsersErr
}

func (f *fakeClient) CreateUser(ctx context.Context, adminID string, in models.NewUserInput) (models.CreatedUser, error) {
	f.record("CreateUser", adminID)
	return f.CreateUserRet, f.CreateUserErr
}

func (f *fakeClient) DeleteUser(ctx context.Context, adminID string, id models.ID) error {
	f.record("DeleteUser", adminID)
	return f.DeleteUserErr
}

func (f *fakeClient) GrantPremium(ctx context.Context, adminID string, userID models.ID, days int) (models.AdminUser, error) {
	f.record("GrantPremium", adminID)
	f.LastGrantDays = days
	return f.GrantRet, f.GrantErr
}

func (f *fakeClient) RevokePremium(ctx context.Context, adminID string, userID models.ID) (models.AdminUser, error) {
	f.record("RevokePremium", adminID)
	return f.RevokeRet, f.RevokeErr
}

// ---- failures ----

func premiumFailure(op string) error {
	return &api.Failure{Kind: api.KindPremiumRequired, Op: op, Status: 403, Raised: true,
		Message: "Premium subscription required", Envelope: api.Envelope{Error: "Premium subscription required", PremiumRequired: true}}
}

func businessFailure(op, msg string) error {
	return &api.Failure{Kind: api.KindBusiness, Op: op, Status: 400, Message: msg, Envelope: api.Envelope{Error: msg}}
}

func networkFailure(op string) error {
	return &api.Failure{Kind: api.KindNetwork, Op: op}
}

// ---- fixed sessions ----

type fixedSession struct{ user, admin string }

func (s fixedSession) UserID() string  { return s.user }
func (s fixedSession) AdminID() string { return s.admin }

func businessFailureStatus(op, msg string, status int) error {
	return &api.Failure{Kind: api.KindBusiness, Op: op, Status: status, Message: msg, Envelope: api.Envelope{Error: msg}}
}
