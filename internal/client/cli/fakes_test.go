package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/finplanner/internal/client/models"
	"github.com/dmitrijs2005/finplanner/internal/client/notify"
	"github.com/dmitrijs2005/finplanner/internal/client/services"
)

// ------------ helpers ------------

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

var fixedNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(io.Writer) ([]byte, error) {
		return []byte(pw), nil
	}
	t.Cleanup(func() { getPassword = orig })
}

func newTestApp(auth *fakeAuth, fin *fakeFinance, lines ...string) (*App, *bytes.Buffer, *notify.Recorder) {
	out := &bytes.Buffer{}
	rec := &notify.Recorder{}
	return &App{
		auth:     auth,
		finance:  fin,
		notifier: rec,
		reader:   readerFromLines(lines...),
		out:      out,
		now:      func() time.Time { return fixedNow },
	}, out, rec
}

func newTestAdminApp(auth *fakeAuth, adm *fakeAdmin, lines ...string) (*AdminApp, *bytes.Buffer, *notify.Recorder) {
	out := &bytes.Buffer{}
	rec := &notify.Recorder{}
	return &AdminApp{
		auth:     auth,
		admin:    adm,
		notifier: rec,
		reader:   readerFromLines(lines...),
		out:      out,
	}, out, rec
}

// ------------ fakes ------------

type fakeAuth struct {
	userID  string
	adminID string

	loginEmail, loginPassword string
	loginUser                 models.User
	loginErr                  error

	adminLoginEmail string
	admin           models.Admin
	adminLoginErr   error

	profile    models.User
	profileErr error

	logoutCalled      bool
	adminLogoutCalled bool
	logoutErr         error
}

func (f *fakeAuth) UserID() string { return f.userID }
func (f *fakeAuth) AdminID() string { return f.adminID }
func (f *fakeAuth) Restore(ctx context.Context) (services.Identity, error) {
	return services.Identity{UserID: f.userID, AdminID: f.adminID}, nil
}
func (f *fakeAuth) Login(ctx context.Context, email, password string) (models.User, error) {
	f.loginEmail, f.loginPassword = email, password
	if f.loginErr != nil {
		return models.User{}, f.loginErr
	}
	f.userID = f.loginUser.ID.String()
	return f.loginUser, nil
}
func (f *fakeAuth) AdminLogin(ctx context.Context, email, password string) (models.Admin, error) {
	f.adminLoginEmail = email
	if f.adminLoginErr != nil {
		return models.Admin{}, f.adminLoginErr
	}
	f.adminID = f.admin.ID.String()
	return f.admin, nil
}
func (f *fakeAuth) Logout(ctx context.Context) error {
	f.logoutCalled = true
	if f.logoutErr != nil {
		return f.logoutErr
	}
	f.userID = ""
	return nil
}
func (f *fakeAuth) AdminLogout(ctx context.Context) error {
	f.adminLogoutCalled = true
	if f.logoutErr != nil {
		return f.logoutErr
	}
	f.adminID = ""
	return nil
}
func (f *fakeAuth) Profile(ctx context.Context) (models.User, error) {
	return f.profile, f.profileErr
}

type fakeFinance struct {
	gate *services.PremiumGate

	txs   []models.Transaction
	goals []models.Goal
	orgs  []models.Organization

	loadCalls  int
	resetCalls int

	txIn       *models.TransactionInput
	goalIn     *models.GoalInput
	orgCreate  *models.OrganizationInput
	orgUpdate  *models.OrganizationInput
	progressID models.ID
	progressBy decimal.Decimal
	deleted    []string

	err error
}

func newFakeFinance(premium bool) *fakeFinance {
	return &fakeFinance{gate: services.NewPremiumGate(premium)}
}

func (f *fakeFinance) Load(ctx context.Context) error { f.loadCalls++; return f.err }
func (f *fakeFinance) Reset() { f.resetCalls++ }
func (f *fakeFinance) Transactions() []models.Transaction { return f.txs }
func (f *fakeFinance) Goals() []models.Goal { return f.goals }
func (f *fakeFinance) Organizations() []models.Organization { return f.orgs }
func (f *fakeFinance) Premium() *services.PremiumGate { return f.gate }
func (f *fakeFinance) CreateTransaction(ctx context.Context, in models.TransactionInput) (models.Transaction, error) {
	f.txIn = &in
	return models.Transaction{}, f.err
}
func (f *fakeFinance) DeleteTransaction(ctx context.Context, id models.ID) error {
	f.deleted = append(f.deleted, "tx:"+id.String())
	return f.err
}
func (f *fakeFinance) CreateGoal(ctx context.Context, in models.GoalInput) (models.Goal, error) {
	f.goalIn = &in
	return models.Goal{}, f.err
}
func (f *fakeFinance) AddGoalProgress(ctx context.Context, id models.ID, amount decimal.Decimal) (models.Goal, error) {
	f.progressID, f.progressBy = id, amount
	return models.Goal{}, f.err
}
func (f *fakeFinance) DeleteGoal(ctx context.Context, id models.ID) error {
	f.deleted = append(f.deleted, "goal:"+id.String())
	return f.err
}
func (f *fakeFinance) CreateOrganization(ctx context.Context, in models.OrganizationInput) error {
	f.orgCreate = &in
	return f.err
}
func (f *fakeFinance) UpdateOrganization(ctx context.Context, in models.OrganizationInput) error {
	f.orgUpdate = &in
	return f.err
}
func (f *fakeFinance) DeleteOrganization(ctx context.Context, id models.ID) error {
	f.deleted = append(f.deleted, "org:"+id.String())
	return f.err
}

type fakeAdmin struct {
	dialog *services.CreateUserDialog

	users      []models.AdminUser
	loadCalls  int
	resetCalls int

	created   models.CreatedUser
	createErr []error // consumed one per attempt
	inputs    []models.NewUserInput

	grantID   models.ID
	grantDays int
	revokeID  models.ID
	deletedID models.ID
}

func newFakeAdmin() *fakeAdmin {
	return &fakeAdmin{dialog: &services.CreateUserDialog{}}
}

func (f *fakeAdmin) LoadUsers(ctx context.Context) error { f.loadCalls++; return nil }
func (f *fakeAdmin) Users() []models.AdminUser { return f.users }
func (f *fakeAdmin) Reset() { f.resetCalls++ }
func (f *fakeAdmin) Dialog() *services.CreateUserDialog { return f.dialog }
func (f *fakeAdmin) DeleteUser(ctx context.Context, id models.ID) error {
	f.deletedID = id
	return nil
}
func (f *fakeAdmin) GrantPremium(ctx context.Context, id models.ID, days int) error {
	f.grantID, f.grantDays = id, days
	return nil
}
func (f *fakeAdmin) RevokePremium(ctx context.Context, id models.ID) error {
	f.revokeID = id
	return nil
}
func (f *fakeAdmin) CreateUser(ctx context.Context, in models.NewUserInput) error {
	f.inputs = append(f.inputs, in)
	_, err := f.dialog.Submit(ctx, in, func(context.Context, models.NewUserInput) (models.CreatedUser, error) {
		if len(f.createErr) > 0 {
			err := f.createErr[0]
			f.createErr = f.createErr[1:]
			if err != nil {
				return models.CreatedUser{}, err
			}
		}
		return f.created, nil
	})
	return err
}
