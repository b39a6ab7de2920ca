// Package aggregate derives dashboard figures from the transaction list.
// Every function is pure; callers recompute on each render.
package aggregate

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/finplanner/internal/client/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Balance is total income minus total expense.
func Balance(txs []models.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txs {
		sum = sum.Add(t.Signed())
	}
	return sum
}

func TotalIncome(txs []models.Transaction) decimal.Decimal {
	return total(txs, models.TransactionIncome)
}

func TotalExpense(txs []models.Transaction) decimal.Decimal {
	return total(txs, models.TransactionExpense)
}

func total(txs []models.Transaction, typ models.TransactionType) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txs {
		if t.Type == typ {
			sum = sum.Add(t.Amount)
		}
	}
	return sum
}

// CategoryTotal is the expense spent in one category. Share is the percent
// of total expense.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
	Share    decimal.Decimal
}

// ExpensesByCategory groups expenses by category in order of first
// appearance in txs.
func ExpensesByCategory(txs []models.Transaction) []CategoryTotal {
	idx := make(map[string]int)
	var out []CategoryTotal
	for _, t := range txs {
		if t.Type != models.TransactionExpense {
			continue
		}
		i, ok := idx[t.Category]
		if !ok {
			i = len(out)
			idx[t.Category] = i
			out = append(out, CategoryTotal{Category: t.Category, Amount: decimal.Zero})
		}
		out[i].Amount = out[i].Amount.Add(t.Amount)
	}
	return out
}

type Summary struct {
	Balance    decimal.Decimal
	Income     decimal.Decimal
	Expense    decimal.Decimal
	Categories []CategoryTotal
}

// Summarize computes every dashboard figure, including category shares.
func Summarize(txs []models.Transaction) Summary {
	s := Summary{
		Income:     TotalIncome(txs),
		Expense:    TotalExpense(txs),
		Categories: ExpensesByCategory(txs),
	}
	s.Balance = s.Income.Sub(s.Expense)
	if s.Expense.IsPositive() {
		for i := range s.Categories {
			s.Categories[i].Share = s.Categories[i].Amount.Mul(hundred).Div(s.Expense)
		}
	}
	return s
}

type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return p, nil
	case "":
		return PeriodMonth, nil
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// FilterByPeriod keeps the transactions dated within p as seen at now:
// today, the last seven days including today, or the current calendar month.
// Transactions without a date are dropped.
func FilterByPeriod(txs []models.Transaction, p Period, now time.Time) []models.Transaction {
	today := models.NewDate(now.Year(), now.Month(), now.Day())
	var from models.Date
	switch p {
	case PeriodDay:
		from = today
	case PeriodWeek:
		from = models.Date{Time: today.AddDate(0, 0, -6)}
	default:
		from = models.NewDate(now.Year(), now.Month(), 1)
	}

	var out []models.Transaction
	for _, t := range txs {
		if t.Date.IsZero() {
			continue
		}
		if !t.Date.Before(from.Time) && !t.Date.After(today.Time) {
			out = append(out, t)
		}
	}
	return out
}

// Recent returns the first n transactions; the list is kept newest first.
func Recent(txs []models.Transaction, n int) []models.Transaction {
	if n < len(txs) {
		txs = txs[:n]
	}
	out := make([]models.Transaction, len(txs))
	copy(out, txs)
	return out
}

// ActiveGoals returns up to n goals that are not yet completed.
func ActiveGoals(goals []models.Goal, n int) []models.Goal {
	var out []models.Goal
	for _, g := range goals {
		if len(out) == n {
			break
		}
		if !g.Completed() {
			out = append(out, g)
		}
	}
	return out
}
