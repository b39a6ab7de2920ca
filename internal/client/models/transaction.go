package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// Transaction is owned by one user account on the server. The client never
// edits one in place: it is created, listed and deleted.
type Transaction struct {
	ID          ID              `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        Date            `json:"date"`
	Description string          `json:"description"`
	CreatedAt   Timestamp       `json:"created_at"`
}

func (t Transaction) Key() ID { return t.ID }

// Signed returns the amount with the sign it contributes to the balance.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TransactionExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TransactionInput is the body of a create-transaction request.
type TransactionInput struct {
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        Date            `json:"date"`
	Description string          `json:"description"`
}

func (in TransactionInput) MarshalJSON() ([]byte, error) {
	type wire TransactionInput
	return json.Marshal(struct {
		wire
		Amount jsonNumber `json:"amount"`
	}{wire(in), jsonNumber(in.Amount)})
}

// Validate mirrors the backend's checks so obviously bad forms are not sent.
func (in TransactionInput) Validate() error {
	if !in.Type.Valid() {
		return ErrInvalidTransactionType
	}
	if !in.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(in.Category) == "" {
		return ErrEmptyCategory
	}
	if in.Date.IsZero() {
		return ErrMissingDate
	}
	return nil
}
