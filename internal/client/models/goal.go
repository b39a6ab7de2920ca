package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Goal is a savings target. Completion is derived, never stored.
type Goal struct {
	ID            ID              `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Deadline      Date            `json:"deadline"`
	CreatedAt     Timestamp       `json:"created_at"`
}

func (g Goal) Key() ID { return g.ID }

func (g Goal) Completed() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// Progress is the saved share of the target in percent. It may exceed 100.
func (g Goal) Progress() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	return g.CurrentAmount.Mul(hundred).Div(g.TargetAmount)
}

// Remaining is what is still missing to reach the target, never negative.
func (g Goal) Remaining() decimal.Decimal {
	rest := g.TargetAmount.Sub(g.CurrentAmount)
	if rest.IsNegative() {
		return decimal.Zero
	}
	return rest
}

// GoalInput is the body of a create-goal request. The backend reads the
// amounts in camelCase here while it returns them in snake_case.
type GoalInput struct {
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      Date            `json:"deadline"`
}

func (in GoalInput) MarshalJSON() ([]byte, error) {
	type wire GoalInput
	return json.Marshal(struct {
		wire
		TargetAmount  jsonNumber `json:"targetAmount"`
		CurrentAmount jsonNumber `json:"currentAmount"`
	}{wire(in), jsonNumber(in.TargetAmount), jsonNumber(in.CurrentAmount)})
}

func (in GoalInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrEmptyName
	}
	if !in.TargetAmount.IsPositive() {
		return ErrInvalidAmount
	}
	if in.CurrentAmount.IsNegative() {
		return ErrNegativeAmount
	}
	if in.Deadline.IsZero() {
		return ErrMissingDate
	}
	return nil
}

// GoalProgress adds Amount to a goal's current amount on the server.
// Only positive top-ups exist.
type GoalProgress struct {
	ID     ID              `json:"id"`
	Amount decimal.Decimal `json:"amount"`
}

func (p GoalProgress) MarshalJSON() ([]byte, error) {
	type wire GoalProgress
	return json.Marshal(struct {
		wire
		Amount jsonNumber `json:"amount"`
	}{wire(p), jsonNumber(p.Amount)})
}

func (p GoalProgress) Validate() error {
	if p.ID == "" {
		return ErrMissingID
	}
	if !p.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}
