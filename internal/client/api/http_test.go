package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/finplanner/internal/client/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	method string
	path   string
	query  string
	header http.Header
	body   map[string]any
}

// newServer answers every request with status and body and records the
// last request it saw.
func newServer(t *testing.T, status int, body string) (*HTTPClient, *captured) {
	t.Helper()
	got := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.query = r.URL.RawQuery
		got.header = r.Header.Clone()
		if b, _ := io.ReadAll(r.Body); len(b) > 0 {
			got.body = map[string]any{}
			require.NoError(t, json.Unmarshal(b, &got.body))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return NewHTTPClient(EndpointsFromBase(srv.URL), srv.Client(), nil), got
}

func requireKind(t *testing.T, err error, kind Kind) *Failure {
	t.Helper()
	require.Error(t, err)
	f, ok := AsFailure(err)
	require.True(t, ok, "expected *Failure, got %T", err)
	require.Equal(t, kind, f.Kind)
	return f
}

func TestLoginUser_Success(t *testing.T) {
	c, got := newServer(t, 200, `{"success":true,"user":{"id":42,"first_name":"Ann"}}`)

	u, err := c.LoginUser(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, models.ID("42"), u.ID)
	assert.Equal(t, "Ann", u.FirstName)

	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/auth", got.path)
	assert.Equal(t, "application/json", got.header.Get("Content-Type"))
	assert.Equal(t, map[string]any{"email": "a@b.c", "password": "pw"}, got.body)
	assert.Empty(t, got.header.Get("X-User-Id"))
}

func TestLoginUser_ErrorWithoutSuccessField(t *testing.T) {
	c, _ := newServer(t, 401, `{"error":"Invalid credentials"}`)

	_, err := c.LoginUser(context.Background(), "a@b.c", "bad")
	f := requireKind(t, err, KindBusiness)
	assert.Equal(t, "Invalid credentials", f.Message)
	assert.True(t, f.Unauthorized())
	assert.True(t, errors.Is(err, ErrRejected))
	assert.False(t, errors.Is(err, ErrUnavailable))
}

func TestLoginAdmin_Success(t *testing.T) {
	c, got := newServer(t, 200, `{"success":true,"admin":{"id":1,"email":"root@x"}}`)

	a, err := c.LoginAdmin(context.Background(), "root@x", "pw")
	require.NoError(t, err)
	assert.Equal(t, models.Admin{ID: "1", Email: "root@x"}, a)
	assert.Equal(t, "/admin/auth", got.path)
}

func TestLogin_SuccessWithoutAccountIsNetworkFailure(t *testing.T) {
	c, _ := newServer(t, 200, `{"success":true}`)

	_, err := c.LoginUser(context.Background(), "a@b.c", "pw")
	requireKind(t, err, KindNetwork)
}

func TestListTransactions_SendsHeaderAndReadsPremium(t *testing.T) {
	c, got := newServer(t, 200, `{"success":true,"isPremium":true,"transactions":[
		{"id":1,"type":"income","amount":1000,"category":"Salary","date":"2024-05-01"},
		{"id":2,"type":"expense","amount":"250.50","category":"Food","date":"2024-05-02T00:00:00"}]}`)

	list, err := c.ListTransactions(context.Background(), "42")
	require.NoError(t, err)
	assert.True(t, list.IsPremium)
	require.Len(t, list.Transactions, 2)
	assert.True(t, decimal.RequireFromString("250.50").Equal(list.Transactions[1].Amount))

	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, "42", got.header.Get("X-User-Id"))
	assert.Empty(t, got.header.Get("Content-Type"))
}

func TestListTransactions_PremiumDefaultsToFalse(t *testing.T) {
	c, _ := newServer(t, 200, `{"success":true,"transactions":[]}`)

	list, err := c.ListTransactions(context.Background(), "42")
	require.NoError(t, err)
	assert.False(t, list.IsPremium)
	assert.Empty(t, list.Transactions)
}

func TestCreateTransaction_Created(t *testing.T) {
	c, got := newServer(t, 201, `{"success":true,"transaction":{"id":7,"type":"expense","amount":300,"category":"Food","date":"2024-05-03"}}`)

	tx, err := c.CreateTransaction(context.Background(), "42", models.TransactionInput{
		Type:     models.TransactionExpense,
		Amount:   decimal.NewFromInt(300),
		Category: "Food",
		Date:     models.NewDate(2024, 5, 3),
	})
	require.NoError(t, err)
	assert.Equal(t, models.ID("7"), tx.ID)

	assert.Equal(t, "expense", got.body["type"])
	assert.Equal(t, float64(300), got.body["amount"])
	assert.Equal(t, "2024-05-03", got.body["date"])
	assert.Equal(t, "42", got.header.Get("X-User-Id"))
}

func TestCreateTransaction_PremiumRequiredIsRaised(t *testing.T) {
	c, _ := newServer(t, 403, `{"error":"Premium subscription required","premiumRequired":true}`)

	_, err := c.CreateTransaction(context.Background(), "42", models.TransactionInput{})
	f := requireKind(t, err, KindPremiumRequired)
	assert.True(t, f.Raised)
	assert.Equal(t, http.StatusForbidden, f.Status)
	assert.True(t, errors.Is(err, ErrPremiumRequired))
}

func TestCreateTransaction_NonSuccessStatusFailsEvenWhenBodyClaimsSuccess(t *testing.T) {
	c, _ := newServer(t, 500, `{"success":true,"transaction":{"id":7}}`)

	_, err := c.CreateTransaction(context.Background(), "42", models.TransactionInput{})
	f := requireKind(t, err, KindBusiness)
	assert.True(t, f.Raised)
	assert.Equal(t, 500, f.Status)
}

func TestDeleteTransaction_NotRaisedOnStatus(t *testing.T) {
	c, got := newServer(t, 404, `{"error":"Transaction not found"}`)

	err := c.DeleteTransaction(context.Background(), "42", "9")
	f := requireKind(t, err, KindBusiness)
	assert.False(t, f.Raised)
	assert.Equal(t, "Transaction not found", f.Message)
	assert.Equal(t, http.MethodDelete, got.method)
	assert.Equal(t, "id=9", got.query)
}

func TestCreateGoal_CamelCaseBody(t *testing.T) {
	c, got := newServer(t, 201, `{"success":true,"goal":{"id":3,"name":"Car","target_amount":"1000.00","current_amount":"0.00","deadline":"2025-01-01"}}`)

	g, err := c.CreateGoal(context.Background(), "42", models.GoalInput{
		Name:         "Car",
		TargetAmount: decimal.NewFromInt(1000),
		Deadline:     models.NewDate(2025, 1, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, models.ID("3"), g.ID)
	assert.True(t, decimal.NewFromInt(1000).Equal(g.TargetAmount))

	assert.Contains(t, got.body, "targetAmount")
	assert.Contains(t, got.body, "currentAmount")
	assert.NotContains(t, got.body, "target_amount")
}

func TestCreateGoal_PremiumRequired(t *testing.T) {
	c, _ := newServer(t, 403, `{"error":"Premium subscription required","premiumRequired":true}`)

	_, err := c.CreateGoal(context.Background(), "42", models.GoalInput{})
	requireKind(t, err, KindPremiumRequired)
}

func TestUpdateGoalProgress_SendsIDAndAmount(t *testing.T) {
	c, got := newServer(t, 200, `{"success":true,"goal":{"id":3,"name":"Car","target_amount":1000,"current_amount":250}}`)

	g, err := c.UpdateGoalProgress(context.Background(), "42", models.GoalProgress{ID: "3", Amount: decimal.NewFromInt(250)})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(250).Equal(g.CurrentAmount))
	assert.Equal(t, http.MethodPut, got.method)
	assert.Equal(t, map[string]any{"id": float64(3), "amount": float64(250)}, got.body)
}

func TestListGoals_PremiumRequiredWithoutRaise(t *testing.T) {
	c, _ := newServer(t, 403, `{"error":"Premium subscription required","premiumRequired":true}`)

	_, err := c.ListGoals(context.Background(), "42")
	f := requireKind(t, err, KindPremiumRequired)
	assert.False(t, f.Raised)
}

func TestCreateOrganization_ReturnsID(t *testing.T) {
	c, got := newServer(t, 201, `{"success":true,"id":12}`)

	id, err := c.CreateOrganization(context.Background(), "42", models.OrganizationInput{ID: "99", Name: "Acme", Type: models.OrgTypeOOO})
	require.NoError(t, err)
	assert.Equal(t, models.ID("12"), id)
	assert.Equal(t, "/organizations", got.path)
	assert.NotContains(t, got.body, "id")
	assert.Contains(t, got.body, "tax_system")
	assert.Nil(t, got.body["tax_system"])
}

func TestUpdateOrganization_SendsID(t *testing.T) {
	c, got := newServer(t, 200, `{"success":true}`)

	usn := models.TaxUSN
	err := c.UpdateOrganization(context.Background(), "42", models.OrganizationInput{ID: "12", Name: "Acme", Type: models.OrgTypeIP, TaxSystem: &usn})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, got.method)
	assert.Equal(t, float64(12), got.body["id"])
	assert.Equal(t, "УСН", got.body["tax_system"])
}

func TestListUsers_AdminHeader(t *testing.T) {
	c, got := newServer(t, 200, `{"success":true,"users":[{"id":5,"email":"u@x","first_name":"U","is_premium":true,"premium_expires_at":"2025-01-01T00:00:00"}]}`)

	users, err := c.ListUsers(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.True(t, users[0].IsPremium)
	require.NotNil(t, users[0].PremiumExpiresAt)
	assert.Equal(t, "1", got.header.Get("X-Admin-Id"))
	assert.Empty(t, got.header.Get("X-User-Id"))
	assert.Equal(t, "/admin/users", got.path)
}

func TestCreateUser_ReturnsPassword(t *testing.T) {
	c, got := newServer(t, 201, `{"success":true,"user":{"id":6,"email":"ivan@x","first_name":"Ivan","last_name":"P","password":"s3cret"}}`)

	u, err := c.CreateUser(context.Background(), "1", models.NewUserInput{FirstName: "Ivan", LastName: "P"})
	require.NoError(t, err)
	assert.Equal(t, "s3cret", u.Password)
	assert.Equal(t, models.Credentials{Email: "ivan@x", Password: "s3cret"}, u.Credentials())
	assert.Equal(t, map[string]any{"first_name": "Ivan", "last_name": "P"}, got.body)
}

func TestGrantPremium_DefaultsTo30Days(t *testing.T) {
	c, got := newServer(t, 200, `{"success":true,"user":{"id":6,"is_premium":true}}`)

	u, err := c.GrantPremium(context.Background(), "1", "6", 0)
	require.NoError(t, err)
	assert.True(t, u.IsPremium)
	assert.Equal(t, map[string]any{"userId": float64(6), "action": "grant_premium", "days": float64(30)}, got.body)
}

func TestRevokePremium_Body(t *testing.T) {
	c, got := newServer(t, 200, `{"success":true,"user":{"id":6,"is_premium":false}}`)

	u, err := c.RevokePremium(context.Background(), "1", "6")
	require.NoError(t, err)
	assert.False(t, u.IsPremium)
	assert.Equal(t, map[string]any{"userId": float64(6), "action": "revoke_premium"}, got.body)
}

func TestDo_UndecodableBodyIsNetworkFailure(t *testing.T) {
	c, _ := newServer(t, 502, `<html>bad gateway</html>`)

	_, err := c.ListGoals(context.Background(), "42")
	f := requireKind(t, err, KindNetwork)
	assert.Equal(t, 502, f.Status)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestDo_TransportErrorIsNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(EndpointsFromBase(url), nil, nil)
	_, err := c.ListOrganizations(context.Background(), "42")
	f := requireKind(t, err, KindNetwork)
	assert.Zero(t, f.Status)
	assert.NotNil(t, f.Unwrap())
}

func TestDo_CanceledContext(t *testing.T) {
	c, _ := newServer(t, 200, `{"success":true}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.DeleteGoal(ctx, "42", "1")
	requireKind(t, err, KindNetwork)
	assert.True(t, errors.Is(err, context.Canceled))
}
