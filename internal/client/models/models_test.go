package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_DecodesServerPayload(t *testing.T) {
	raw := `{"id": 12, "type": "expense", "amount": 15000.5, "category": "Продукты",
		"description": "Супермаркет", "date": "2025-10-02", "created_at": "2025-10-02T10:00:00.5"}`

	var tx Transaction
	require.NoError(t, json.Unmarshal([]byte(raw), &tx))

	assert.Equal(t, ID("12"), tx.ID)
	assert.Equal(t, TransactionExpense, tx.Type)
	assert.True(t, decimal.RequireFromString("15000.5").Equal(tx.Amount))
	assert.Equal(t, "2025-10-02", tx.Date.String())
	assert.True(t, decimal.RequireFromString("-15000.5").Equal(tx.Signed()))
}

func TestTransactionInput_EncodesAmountAsNumber(t *testing.T) {
	in := TransactionInput{
		Type:     TransactionIncome,
		Amount:   decimal.RequireFromString("50000"),
		Category: "Зарплата",
		Date:     NewDate(2025, time.October, 1),
	}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"income","amount":50000,"category":"Зарплата","date":"2025-10-01","description":""}`, string(b))
}

func TestRequestBodies_LeaveDecimalDefaultsAlone(t *testing.T) {
	require.False(t, decimal.MarshalJSONWithoutQuotes)

	b, err := json.Marshal(decimal.RequireFromString("12.5"))
	require.NoError(t, err)
	assert.Equal(t, `"12.5"`, string(b))

	b, err = json.Marshal(TransactionInput{Type: TransactionExpense, Amount: decimal.RequireFromString("12.5")})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"amount":12.5`)
	assert.Equal(t, 1, strings.Count(string(b), `"amount"`))
}

func TestTransactionInput_Validate(t *testing.T) {
	valid := TransactionInput{
		Type:     TransactionExpense,
		Amount:   decimal.NewFromInt(10),
		Category: "Транспорт",
		Date:     NewDate(2025, time.October, 2),
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name string
		mut  func(*TransactionInput)
		want error
	}{
		{"bad type", func(in *TransactionInput) { in.Type = "transfer" }, ErrInvalidTransactionType},
		{"zero amount", func(in *TransactionInput) { in.Amount = decimal.Zero }, ErrInvalidAmount},
		{"negative amount", func(in *TransactionInput) { in.Amount = decimal.NewFromInt(-1) }, ErrInvalidAmount},
		{"blank category", func(in *TransactionInput) { in.Category = "  " }, ErrEmptyCategory},
		{"no date", func(in *TransactionInput) { in.Date = Date{} }, ErrMissingDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mut(&in)
			require.ErrorIs(t, in.Validate(), tt.want)
		})
	}
}

func TestGoal_DerivedFields(t *testing.T) {
	g := Goal{TargetAmount: decimal.NewFromInt(100000), CurrentAmount: decimal.NewFromInt(45000)}
	assert.False(t, g.Completed())
	assert.True(t, decimal.NewFromInt(45).Equal(g.Progress()))
	assert.True(t, decimal.NewFromInt(55000).Equal(g.Remaining()))

	g.CurrentAmount = decimal.NewFromInt(100000)
	assert.True(t, g.Completed())

	g.CurrentAmount = decimal.NewFromInt(120000)
	assert.True(t, g.Completed())
	assert.True(t, decimal.NewFromInt(120).Equal(g.Progress()))
	assert.True(t, g.Remaining().IsZero())

	assert.True(t, Goal{}.Progress().IsZero())
}

func TestGoalInput_UsesCamelCaseAmounts(t *testing.T) {
	in := GoalInput{
		Name:         "Отпуск",
		TargetAmount: decimal.NewFromInt(100000),
		Deadline:     NewDate(2025, time.December, 31),
	}
	require.NoError(t, in.Validate())

	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Отпуск","targetAmount":100000,"currentAmount":0,"deadline":"2025-12-31"}`, string(b))
}

func TestGoalInput_Validate(t *testing.T) {
	base := GoalInput{Name: "Car", TargetAmount: decimal.NewFromInt(5), Deadline: NewDate(2026, 1, 1)}

	in := base
	in.Name = ""
	require.ErrorIs(t, in.Validate(), ErrEmptyName)

	in = base
	in.TargetAmount = decimal.Zero
	require.ErrorIs(t, in.Validate(), ErrInvalidAmount)

	in = base
	in.CurrentAmount = decimal.NewFromInt(-1)
	require.ErrorIs(t, in.Validate(), ErrNegativeAmount)

	in = base
	in.Deadline = Date{}
	require.ErrorIs(t, in.Validate(), ErrMissingDate)
}

func TestGoalProgress_RejectsNonPositive(t *testing.T) {
	require.ErrorIs(t, GoalProgress{ID: "1", Amount: decimal.Zero}.Validate(), ErrInvalidAmount)
	require.ErrorIs(t, GoalProgress{ID: "1", Amount: decimal.NewFromInt(-5)}.Validate(), ErrInvalidAmount)
	require.ErrorIs(t, GoalProgress{Amount: decimal.NewFromInt(5)}.Validate(), ErrMissingID)
	require.NoError(t, GoalProgress{ID: "1", Amount: decimal.NewFromInt(5)}.Validate())

	b, err := json.Marshal(GoalProgress{ID: "7", Amount: decimal.RequireFromString("250.75")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"amount":250.75}`, string(b))
}

func TestOrganization_ParseEnums(t *testing.T) {
	typ, err := ParseOrgType("ооо")
	require.NoError(t, err)
	assert.Equal(t, OrgTypeOOO, typ)

	_, err = ParseOrgType("LLC")
	require.ErrorIs(t, err, ErrInvalidOrgType)

	tax, err := ParseTaxSystem("")
	require.NoError(t, err)
	assert.Nil(t, tax)

	tax, err = ParseTaxSystem("усн")
	require.NoError(t, err)
	require.NotNil(t, tax)
	assert.Equal(t, TaxUSN, *tax)

	_, err = ParseTaxSystem("VAT")
	require.ErrorIs(t, err, ErrInvalidTaxSystem)
}

func TestOrganizationInput_JSONAndValidate(t *testing.T) {
	in := OrganizationInput{Name: "Ромашка", Type: OrgTypeOOO}
	require.NoError(t, in.Validate())

	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ромашка","type":"ООО","tax_system":null}`, string(b))

	usn := TaxUSN
	upd := Organization{ID: "5", Name: "Ромашка", Type: OrgTypeIP, TaxSystem: &usn}.Input()
	b, err = json.Marshal(upd)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":5,"name":"Ромашка","type":"ИП","tax_system":"УСН"}`, string(b))

	require.ErrorIs(t, OrganizationInput{Type: OrgTypeAO}.Validate(), ErrEmptyName)
	require.ErrorIs(t, OrganizationInput{Name: strings.Repeat("я", 256), Type: OrgTypeAO}.Validate(), ErrNameTooLong)
	require.ErrorIs(t, OrganizationInput{Name: "x", Type: "LLC"}.Validate(), ErrInvalidOrgType)
	bad := TaxSystem("VAT")
	require.ErrorIs(t, OrganizationInput{Name: "x", Type: OrgTypeAO, TaxSystem: &bad}.Validate(), ErrInvalidTaxSystem)
}

func TestCreatedUser_DecodesPasswordAlongsideAccount(t *testing.T) {
	raw := `{"id": 9, "email": "user_ab12cd34@financeplanner.local", "first_name": "Ivan",
		"last_name": "Petrov", "created_at": "2025-10-05T09:00:00", "password": "s3cretPassw0"}`

	var cu CreatedUser
	require.NoError(t, json.Unmarshal([]byte(raw), &cu))

	assert.Equal(t, ID("9"), cu.ID)
	assert.Equal(t, "Ivan Petrov", cu.FullName())
	assert.Equal(t, Credentials{Email: "user_ab12cd34@financeplanner.local", Password: "s3cretPassw0"}, cu.Credentials())

	b, err := json.Marshal(cu.AdminUser)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "s3cretPassw0")
}

func TestUser_DisplayName(t *testing.T) {
	assert.Equal(t, "Ivan", User{FirstName: "Ivan"}.DisplayName())
	assert.Equal(t, "a@b.c", User{Email: "a@b.c"}.DisplayName())
}
