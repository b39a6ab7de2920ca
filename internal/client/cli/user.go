package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/finplanner/internal/client/aggregate"
	"github.com/dmitrijs2005/finplanner/internal/client/models"
	"github.com/dmitrijs2005/finplanner/internal/client/render"
)

// Login prompts for credentials, stores the session on success and loads the
// user's data. The email may be given inline: login <email>.
func (a *App) Login(ctx context.Context, args []string) error {
	email, err := a.arg(args, 0, "Enter email")
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	u, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		return err
	}
	a.userName = u.DisplayName()

	return a.finance.Load(ctx)
}

// Logout clears the stored session and drops everything held in memory.
func (a *App) Logout(ctx context.Context, args []string) error {
	if err := a.auth.Logout(ctx); err != nil {
		return a.reject(ctx, err)
	}
	a.finance.Reset()
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context, args []string) error {
	u, err := a.auth.Profile(ctx)
	if err != nil {
		return err
	}
	a.userName = u.DisplayName()

	plan := "free"
	if a.isPremium() {
		plan = "premium"
	}
	fmt.Fprintf(a.out, "%s <%s>\nUsername: %s\nPlan: %s\n", u.DisplayName(), u.Email, u.Username, plan)
	return nil
}

func (a *App) Dashboard(ctx context.Context, args []string) error {
	return render.Dashboard(a.out, a.finance.Transactions(), a.finance.Goals(), a.isPremium())
}

func (a *App) List(ctx context.Context, args []string) error {
	return render.Transactions(a.out, a.finance.Transactions())
}

// Add prompts for a new transaction. An empty date means today.
func (a *App) Add(ctx context.Context, args []string) error {
	typ, err := a.ask("Type (income/expense)")
	if err != nil {
		return err
	}
	rawAmount, err := a.ask("Amount")
	if err != nil {
		return err
	}
	amount, err := parseAmount(rawAmount)
	if err != nil {
		return a.reject(ctx, err)
	}
	category, err := a.ask("Category")
	if err != nil {
		return err
	}
	rawDate, err := a.ask("Date (YYYY-MM-DD, empty for today)")
	if err != nil {
		return err
	}
	date, err := parseDateOr(rawDate, today(a.now()))
	if err != nil {
		return a.reject(ctx, err)
	}
	description, err := a.ask("Description (optional)")
	if err != nil {
		return err
	}

	_, err = a.finance.CreateTransaction(ctx, models.TransactionInput{
		Type:        models.TransactionType(strings.ToLower(typ)),
		Amount:      amount,
		Category:    category,
		Date:        date,
		Description: description,
	})
	return err
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.arg(args, 0, "Enter transaction ID")
	if err != nil {
		return err
	}
	return a.finance.DeleteTransaction(ctx, models.ID(id))
}

func (a *App) Goals(ctx context.Context, args []string) error {
	return render.Goals(a.out, a.finance.Goals())
}

func (a *App) AddGoal(ctx context.Context, args []string) error {
	name, err := a.ask("Goal name")
	if err != nil {
		return err
	}
	rawTarget, err := a.ask("Target amount")
	if err != nil {
		return err
	}
	target, err := parseAmount(rawTarget)
	if err != nil {
		return a.reject(ctx, err)
	}
	rawCurrent, err := a.ask("Already saved (empty for 0)")
	if err != nil {
		return err
	}
	current := decimal.Zero
	if rawCurrent != "" {
		if current, err = parseAmount(rawCurrent); err != nil {
			return a.reject(ctx, err)
		}
	}
	rawDeadline, err := a.ask("Deadline (YYYY-MM-DD)")
	if err != nil {
		return err
	}
	deadline, err := parseDateOr(rawDeadline, models.Date{})
	if err != nil {
		return a.reject(ctx, err)
	}

	_, err = a.finance.CreateGoal(ctx, models.GoalInput{
		Name:          name,
		TargetAmount:  target,
		CurrentAmount: current,
		Deadline:      deadline,
	})
	return err
}

// Progress tops up a goal: progress <id> <amount>.
func (a *App) Progress(ctx context.Context, args []string) error {
	id, err := a.arg(args, 0, "Enter goal ID")
	if err != nil {
		return err
	}
	raw, err := a.arg(args, 1, "Amount to add")
	if err != nil {
		return err
	}
	amount, err := parseAmount(raw)
	if err != nil {
		return a.reject(ctx, err)
	}
	_, err = a.finance.AddGoalProgress(ctx, models.ID(id), amount)
	return err
}

func (a *App) DeleteGoal(ctx context.Context, args []string) error {
	id, err := a.arg(args, 0, "Enter goal ID")
	if err != nil {
		return err
	}
	return a.finance.DeleteGoal(ctx, models.ID(id))
}

// orgsAllowed prints the premium banner instead of the organizations page
// for free accounts.
func (a *App) orgsAllowed() bool {
	if a.finance.Premium().OrganizationsVisible() {
		return true
	}
	render.Banner(a.out)
	return false
}

func (a *App) Orgs(ctx context.Context, args []string) error {
	if !a.orgsAllowed() {
		return errPremiumRequired
	}
	return render.Organizations(a.out, a.finance.Organizations())
}

func (a *App) AddOrg(ctx context.Context, args []string) error {
	if !a.orgsAllowed() {
		return errPremiumRequired
	}
	in, err := a.orgForm(ctx, models.OrganizationInput{})
	if err != nil {
		return err
	}
	return a.finance.CreateOrganization(ctx, in)
}

// EditOrg prompts for every field, showing the current value; an empty
// answer keeps it.
func (a *App) EditOrg(ctx context.Context, args []string) error {
	if !a.orgsAllowed() {
		return errPremiumRequired
	}
	id, err := a.arg(args, 0, "Enter organization ID")
	if err != nil {
		return err
	}

	var current *models.Organization
	for _, o := range a.finance.Organizations() {
		if o.ID == models.ID(id) {
			current = &o
			break
		}
	}
	if current == nil {
		return a.reject(ctx, fmt.Errorf("organization %q not found", id))
	}

	in, err := a.orgForm(ctx, current.Input())
	if err != nil {
		return err
	}
	return a.finance.UpdateOrganization(ctx, in)
}

func (a *App) DeleteOrg(ctx context.Context, args []string) error {
	if !a.orgsAllowed() {
		return errPremiumRequired
	}
	id, err := a.arg(args, 0, "Enter organization ID")
	if err != nil {
		return err
	}
	return a.finance.DeleteOrganization(ctx, models.ID(id))
}

// orgForm fills in from the answers. For the tax system "-" clears it.
func (a *App) orgForm(ctx context.Context, in models.OrganizationInput) (models.OrganizationInput, error) {
	name, err := a.ask(withDefault("Name", in.Name))
	if err != nil {
		return in, err
	}
	if name != "" {
		in.Name = name
	}

	rawType, err := a.ask(withDefault("Type ("+joinOrgTypes()+")", string(in.Type)))
	if err != nil {
		return in, err
	}
	if rawType != "" {
		t, err := models.ParseOrgType(rawType)
		if err != nil {
			return in, a.reject(ctx, err)
		}
		in.Type = t
	}

	currentTax := ""
	if in.TaxSystem != nil {
		currentTax = string(*in.TaxSystem)
	}
	rawTax, err := a.ask(withDefault("Tax system ("+joinTaxSystems()+", '-' for none)", currentTax))
	if err != nil {
		return in, err
	}
	switch rawTax {
	case "":
	case "-":
		in.TaxSystem = nil
	default:
		ts, err := models.ParseTaxSystem(rawTax)
		if err != nil {
			return in, a.reject(ctx, err)
		}
		in.TaxSystem = ts
	}
	return in, nil
}

func (a *App) Analytics(ctx context.Context, args []string) error {
	raw, err := a.arg(args, 0, "Period (day/week/month, empty for month)")
	if err != nil {
		return err
	}
	p, err := aggregate.ParsePeriod(strings.ToLower(raw))
	if err != nil {
		return a.reject(ctx, err)
	}
	return render.Analytics(a.out, a.finance.Transactions(), p, a.now())
}

func (a *App) Reload(ctx context.Context, args []string) error {
	return a.finance.Load(ctx)
}

func withDefault(prompt, current string) string {
	if current == "" {
		return prompt
	}
	return fmt.Sprintf("%s [%s]", prompt, current)
}

func joinOrgTypes() string {
	s := make([]string, len(models.OrgTypes))
	for i, t := range models.OrgTypes {
		s[i] = string(t)
	}
	return strings.Join(s, "/")
}

func joinTaxSystems() string {
	s := make([]string, len(models.TaxSystems))
	for i, t := range models.TaxSystems {
		s[i] = string(t)
	}
	return strings.Join(s, "/")
}
