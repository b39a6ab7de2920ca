package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/finplanner/internal/client/api"
	"github.com/dmitrijs2005/finplanner/internal/client/models"
	"github.com/dmitrijs2005/finplanner/internal/client/notify"
	"github.com/dmitrijs2005/finplanner/internal/client/store"
	"github.com/dmitrijs2005/finplanner/internal/logging"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// FinanceService keeps the user's transactions, goals and organizations in
// sync with the server.
type FinanceService interface {
	// Load fetches all three lists concurrently. Each list lands in its own
	// store; a failed list leaves its store as it was.
	Load(ctx context.Context) error
	// Reset drops everything held in memory, e.g. on logout.
	Reset()

	Transactions() []models.Transaction
	Goals() []models.Goal
	Organizations() []models.Organization
	Premium() *PremiumGate

	CreateTransaction(ctx context.Context, in models.TransactionInput) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, id models.ID) error

	CreateGoal(ctx context.Context, in models.GoalInput) (models.Goal, error)
	AddGoalProgress(ctx context.Context, id models.ID, amount decimal.Decimal) (models.Goal, error)
	DeleteGoal(ctx context.Context, id models.ID) error

	CreateOrganization(ctx context.Context, in models.OrganizationInput) error
	UpdateOrganization(ctx context.Context, in models.OrganizationInput) error
	DeleteOrganization(ctx context.Context, id models.ID) error
}

type financeService struct {
	client  api.Client
	session UserSession
	reporter

	txs   *store.Transactions
	goals *store.Goals
	orgs  *store.Organizations
	gate  *PremiumGate
}

func NewFinanceService(client api.Client, session UserSession, notifier notify.Notifier, log logging.Logger) FinanceService {
	return &financeService{
		client:   client,
		session:  session,
		reporter: reporter{notifier: notifier, log: log.With("component", "finance")},
		txs:      store.New[models.Transaction](),
		goals:    store.New[models.Goal](),
		orgs:     store.New[models.Organization](),
		gate:     NewPremiumGate(false),
	}
}

func (s *financeService) Transactions() []models.Transaction   { return s.txs.Items() }
func (s *financeService) Goals() []models.Goal                 { return s.goals.Items() }
func (s *financeService) Organizations() []models.Organization { return s.orgs.Items() }
func (s *financeService) Premium() *PremiumGate                { return s.gate }

func (s *financeService) Reset() {
	s.txs.Reset(nil)
	s.goals.Reset(nil)
	s.orgs.Reset(nil)
	s.gate.set(false)
}

func (s *financeService) userID(ctx context.Context) (string, error) {
	id := s.session.UserID()
	if id == "" {
		return "", s.invalid(ctx, ErrNotLoggedIn)
	}
	return id, nil
}

func (s *financeService) Load(ctx context.Context) error {
	userID, err := s.userID(ctx)
	if err != nil {
		return err
	}

	// Plain Group: one failed list must not cancel the others.
	var g errgroup.Group

	g.Go(func() error {
		list, err := s.client.ListTransactions(ctx, userID)
		if err != nil {
			s.gate.set(false)
			return s.fail(ctx, "list transactions", err, "Could not load transactions")
		}
		s.txs.Reset(list.Transactions)
		s.gate.set(list.IsPremium)
		return nil
	})

	g.Go(func() error {
		goals, err := s.client.ListGoals(ctx, userID)
		if err != nil {
			return s.fail(ctx, "list goals", err, "Could not load goals")
		}
		s.goals.Reset(goals)
		return nil
	})

	g.Go(func() error {
		orgs, err := s.client.ListOrganizations(ctx, userID)
		if err != nil {
			return s.fail(ctx, "list organizations", err, "Could not load organizations")
		}
		s.orgs.Reset(orgs)
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("load: %w", err)
	}
	s.log.Debug(ctx, "data loaded",
		"transactions", s.txs.Len(),
		"goals", s.goals.Len(),
		"organizations", s.orgs.Len(),
		"premium", s.gate.IsPremium(),
	)
	return nil
}

func (s *financeService) CreateTransaction(ctx context.Context, in models.TransactionInput) (models.Transaction, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return models.Transaction{}, err
	}
	if err := in.Validate(); err != nil {
		return models.Transaction{}, s.invalid(ctx, err)
	}

	tx, err := s.client.CreateTransaction(ctx, userID, in)
	if err != nil {
		return models.Transaction{}, s.fail(ctx, "create transaction", err, "Could not add the transaction")
	}

	s.txs.ApplyCreate(tx)
	s.ok(ctx, "Transaction added", "")
	return tx, nil
}

func (s *financeService) DeleteTransaction(ctx context.Context, id models.ID) error {
	userID, err := s.userID(ctx)
	if err != nil {
		return err
	}

	if err := s.client.DeleteTransaction(ctx, userID, id); err != nil {
		return s.fail(ctx, "delete transaction", err, "Could not delete the transaction")
	}

	s.txs.ApplyDelete(id)
	s.ok(ctx, "Transaction deleted", "")
	return nil
}

func (s *financeService) CreateGoal(ctx context.Context, in models.GoalInput) (models.Goal, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return models.Goal{}, err
	}
	if err := in.Validate(); err != nil {
		return models.Goal{}, s.invalid(ctx, err)
	}

	goal, err := s.client.CreateGoal(ctx, userID, in)
	if err != nil {
		return models.Goal{}, s.fail(ctx, "create goal", err, "Could not add the goal")
	}

	s.goals.ApplyCreate(goal)
	s.ok(ctx, "Goal added", goal.Name)
	return goal, nil
}

// AddGoalProgress stores the goal the server returns, never a locally
// incremented copy.
func (s *financeService) AddGoalProgress(ctx context.Context, id models.ID, amount decimal.Decimal) (models.Goal, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return models.Goal{}, err
	}
	p := models.GoalProgress{ID: id, Amount: amount}
	if err := p.Validate(); err != nil {
		return models.Goal{}, s.invalid(ctx, err)
	}

	goal, err := s.client.UpdateGoalProgress(ctx, userID, p)
	if err != nil {
		return models.Goal{}, s.fail(ctx, "update goal", err, "Could not update the goal")
	}

	if !s.goals.ApplyReplace(goal) {
		s.log.Debug(ctx, "updated goal is not in the local list", "goal_id", goal.ID)
	}
	s.ok(ctx, "Progress added", goal.Name)
	return goal, nil
}

func (s *financeService) DeleteGoal(ctx context.Context, id models.ID) error {
	userID, err := s.userID(ctx)
	if err != nil {
		return err
	}

	if err := s.client.DeleteGoal(ctx, userID, id); err != nil {
		return s.fail(ctx, "delete goal", err, "Could not delete the goal")
	}

	s.goals.ApplyDelete(id)
	s.ok(ctx, "Goal deleted", "")
	return nil
}

func (s *financeService) CreateOrganization(ctx context.Context, in models.OrganizationInput) error {
	userID, err := s.userID(ctx)
	if err != nil {
		return err
	}
	in.ID = ""
	if err := in.Validate(); err != nil {
		return s.invalid(ctx, err)
	}

	id, err := s.client.CreateOrganization(ctx, userID, in)
	if err != nil {
		return s.fail(ctx, "create organization", err, "Could not save the organization")
	}

	s.ok(ctx, "Organization created", in.Name)
	s.log.Debug(ctx, "organization created", "organization_id", id)
	s.reloadOrganizations(ctx, userID)
	return nil
}

func (s *financeService) UpdateOrganization(ctx context.Context, in models.OrganizationInput) error {
	userID, err := s.userID(ctx)
	if err != nil {
		return err
	}
	if in.ID == "" {
		return s.invalid(ctx, models.ErrMissingID)
	}
	if err := in.Validate(); err != nil {
		return s.invalid(ctx, err)
	}

	if err := s.client.UpdateOrganization(ctx, userID, in); err != nil {
		return s.fail(ctx, "update organization", err, "Could not save the organization")
	}

	s.ok(ctx, "Organization updated", in.Name)
	s.reloadOrganizations(ctx, userID)
	return nil
}

func (s *financeService) DeleteOrganization(ctx context.Context, id models.ID) error {
	userID, err := s.userID(ctx)
	if err != nil {
		return err
	}

	if err := s.client.DeleteOrganization(ctx, userID, id); err != nil {
		return s.fail(ctx, "delete organization", err, "Could not delete the organization")
	}

	s.orgs.ApplyDelete(id)
	s.ok(ctx, "Organization deleted", "")
	return nil
}

// reloadOrganizations refreshes the list after a write: the server answers
// organization writes without the stored object.
func (s *financeService) reloadOrganizations(ctx context.Context, userID string) {
	orgs, err := s.client.ListOrganizations(ctx, userID)
	if err != nil {
		_ = s.fail(ctx, "list organizations", err, "Could not load organizations")
		return
	}
	s.orgs.Reset(orgs)
}
