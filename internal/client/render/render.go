package render

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/finplanner/internal/client/aggregate"
	"github.com/dmitrijs2005/finplanner/internal/client/models"
	"github.com/dustin/go-humanize"
)

const (
	dashboardGoals        = 3
	dashboardTransactions = 5
)

func table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func typeLabel(t models.TransactionType) string {
	if t == models.TransactionIncome {
		return "income"
	}
	return "expense"
}

// Dashboard shows balance, totals, the expense breakdown, the first active
// goals and the latest transactions.
func Dashboard(w io.Writer, txs []models.Transaction, goals []models.Goal, premium bool) error {
	s := aggregate.Summarize(txs)

	tw := table(w)
	fmt.Fprintf(tw, "Balance\t%s\n", Money(s.Balance))
	fmt.Fprintf(tw, "Income\t+%s\n", Money(s.Income))
	fmt.Fprintf(tw, "Expense\t-%s\n", Money(s.Expense))
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(s.Categories) > 0 {
		fmt.Fprintln(w, "\nExpenses by category")
		tw = table(w)
		for _, c := range s.Categories {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", c.Category, Money(c.Amount), Percent(c.Share))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if active := aggregate.ActiveGoals(goals, dashboardGoals); len(active) > 0 {
		fmt.Fprintln(w, "\nGoals")
		if err := goalRows(w, active); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "\nRecent transactions")
	if err := transactionRows(w, aggregate.Recent(txs, dashboardTransactions)); err != nil {
		return err
	}

	if !premium {
		fmt.Fprintln(w)
		Banner(w)
	}
	return nil
}

// Banner is shown to users without premium.
func Banner(w io.Writer) {
	fmt.Fprintln(w, "★ Premium unlocks goals, organizations and unlimited transactions. Ask the administrator to enable it.")
}

func Transactions(w io.Writer, txs []models.Transaction) error {
	return transactionRows(w, txs)
}

func transactionRows(w io.Writer, txs []models.Transaction) error {
	if len(txs) == 0 {
		fmt.Fprintln(w, "  (no transactions)")
		return nil
	}
	tw := table(w)
	fmt.Fprintln(tw, "  ID\tDATE\tTYPE\tCATEGORY\tAMOUNT\tDESCRIPTION")
	for _, t := range txs {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Date, typeLabel(t.Type), t.Category,
			Signed(t.Amount, t.Type == models.TransactionIncome), t.Description)
	}
	return tw.Flush()
}

func Goals(w io.Writer, goals []models.Goal) error {
	if len(goals) == 0 {
		fmt.Fprintln(w, "  (no goals)")
		return nil
	}
	return goalRows(w, goals)
}

func goalRows(w io.Writer, goals []models.Goal) error {
	tw := table(w)
	fmt.Fprintln(tw, "  ID\tNAME\tSAVED\tTARGET\tPROGRESS\tDEADLINE")
	for _, g := range goals {
		progress := Percent(g.Progress())
		if g.Completed() {
			progress += " ✓"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\n",
			g.ID, g.Name, Money(g.CurrentAmount), Money(g.TargetAmount), progress, g.Deadline)
	}
	return tw.Flush()
}

func Organizations(w io.Writer, orgs []models.Organization) error {
	if len(orgs) == 0 {
		fmt.Fprintln(w, "  (no organizations)")
		return nil
	}
	tw := table(w)
	fmt.Fprintln(tw, "  ID\tNAME\tTYPE\tTAX SYSTEM")
	for _, o := range orgs {
		tax := "-"
		if o.TaxSystem != nil {
			tax = string(*o.TaxSystem)
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", o.ID, o.Name, o.Type, tax)
	}
	return tw.Flush()
}

// Analytics compares income and expense over period as of now.
func Analytics(w io.Writer, txs []models.Transaction, period aggregate.Period, now time.Time) error {
	in := aggregate.FilterByPeriod(txs, period, now)
	s := aggregate.Summarize(in)

	fmt.Fprintf(w, "Period: %s (%d transactions)\n", period, len(in))
	tw := table(w)
	fmt.Fprintf(tw, "Income\t+%s\n", Money(s.Income))
	fmt.Fprintf(tw, "Expense\t-%s\n", Money(s.Expense))
	fmt.Fprintf(tw, "Net\t%s\n", Money(s.Balance))
	for _, c := range s.Categories {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", c.Category, Money(c.Amount), Percent(c.Share))
	}
	return tw.Flush()
}

// Users lists accounts for the admin. Premium expiry is shown relative to
// now, e.g. "3 weeks from now".
func Users(w io.Writer, users []models.AdminUser) error {
	if len(users) == 0 {
		fmt.Fprintln(w, "  (no users)")
		return nil
	}
	tw := table(w)
	fmt.Fprintln(tw, "  ID\tEMAIL\tNAME\tCREATED\tPREMIUM")
	for _, u := range users {
		premium := "no"
		if u.IsPremium {
			premium = "yes"
			if u.PremiumExpiresAt != nil && !u.PremiumExpiresAt.IsZero() {
				premium = "until " + u.PremiumExpiresAt.Format("2006-01-02") + " (" + humanize.Time(u.PremiumExpiresAt.Time) + ")"
			}
		}
		created := ""
		if !u.CreatedAt.IsZero() {
			created = u.CreatedAt.Format("2006-01-02")
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\n", u.ID, u.Email, u.FullName(), created, premium)
	}
	return tw.Flush()
}

// Credentials shows a generated login pair. It is printed once; nothing
// keeps it afterwards.
func Credentials(w io.Writer, c models.Credentials) {
	fmt.Fprintln(w, "User created. Save these credentials now, the password will not be shown again:")
	fmt.Fprintf(w, "  Email:    %s\n", c.Email)
	fmt.Fprintf(w, "  Password: %s\n", c.Password)
}
