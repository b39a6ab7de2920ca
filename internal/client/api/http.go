package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/finplanner/internal/client/models"
	"github.com/dmitrijs2005/finplanner/internal/client/session"
	"github.com/dmitrijs2005/finplanner/internal/logging"
	"github.com/google/uuid"
)

var errNoPayload = errors.New("response has no payload")

var _ Client = (*HTTPClient)(nil)

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	endpoints Endpoints
	http      *http.Client
	log       logging.Logger
}

// NewHTTPClient returns a client for endpoints. A nil hc gets a plain
// http.Client without a timeout; a nil log discards output.
func NewHTTPClient(endpoints Endpoints, hc *http.Client, log logging.Logger) *HTTPClient {
	if hc == nil {
		hc = &http.Client{}
	}
	if log == nil {
		log = logging.Discard()
	}
	return &HTTPClient{endpoints: endpoints, http: hc, log: log.With("component", "api")}
}

type call struct {
	op     string
	method string
	url    string
	role   session.Role
	id     string
	query  url.Values
	body   any
	// strict calls fail on any non-2xx status, whatever the body says.
	strict bool
}

// do sends c and decodes the response body into out, which must embed
// Envelope through one of the response types below.
func (h *HTTPClient) do(ctx context.Context, c call, out any) error {
	u, err := url.Parse(c.url)
	if err != nil {
		return networkFailure(c.op, 0, fmt.Errorf("bad url %q: %w", c.url, err))
	}
	if len(c.query) > 0 {
		u.RawQuery = c.query.Encode()
	}

	var body io.Reader
	if c.body != nil {
		b, err := json.Marshal(c.body)
		if err != nil {
			return networkFailure(c.op, 0, fmt.Errorf("encode request: %w", err))
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, c.method, u.String(), body)
	if err != nil {
		return networkFailure(c.op, 0, err)
	}
	if c.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.id != "" {
		req.Header.Set(c.role.Header(), c.id)
	}

	requestID := uuid.NewString()
	start := time.Now()

	resp, err := h.http.Do(req)
	if err != nil {
		h.log.Debug(ctx, "request failed", "request_id", requestID, "method", c.method, "path", u.Path, "error", err)
		return networkFailure(c.op, 0, err)
	}
	defer resp.Body.Close()

	h.log.Debug(ctx, "request done",
		"request_id", requestID,
		"method", c.method,
		"path", u.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkFailure(c.op, resp.StatusCode, fmt.Errorf("read response: %w", err))
	}

	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return networkFailure(c.op, resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if c.strict && !ok {
		return rejection(c.op, resp.StatusCode, env, true)
	}
	if !env.Success {
		return rejection(c.op, resp.StatusCode, env, false)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return networkFailure(c.op, resp.StatusCode, fmt.Errorf("decode payload: %w", err))
		}
	}
	return nil
}

func byID(id models.ID) url.Values {
	return url.Values{"id": []string{id.String()}}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type premiumAction struct {
	UserID models.ID `json:"userId"`
	Action string    `json:"action"`
	Days   int       `json:"days,omitempty"`
}

func (h *HTTPClient) LoginUser(ctx context.Context, email, password string) (models.User, error) {
	var out struct {
		User *models.User `json:"user"`
	}
	err := h.do(ctx, call{
		op:     "user login",
		method: http.MethodPost,
		url:    h.endpoints.Auth,
		body:   credentials{Email: email, Password: password},
	}, &out)
	if err != nil {
		return models.User{}, err
	}
	if out.User == nil || out.User.ID == "" {
		return models.User{}, networkFailure("user login", http.StatusOK, errNoPayload)
	}
	return *out.User, nil
}

func (h *HTTPClient) LoginAdmin(ctx context.Context, email, password string) (models.Admin, error) {
	var out struct {
		Admin *models.Admin `json:"admin"`
	}
	err := h.do(ctx, call{
		op:     "admin login",
		method: http.MethodPost,
		url:    h.endpoints.AdminAuth,
		body:   credentials{Email: email, Password: password},
	}, &out)
	if err != nil {
		return models.Admin{}, err
	}
	if out.Admin == nil || out.Admin.ID == "" {
		return models.Admin{}, networkFailure("admin login", http.StatusOK, errNoPayload)
	}
	return *out.Admin, nil
}

func (h *HTTPClient) GetProfile(ctx context.Context, userID string) (models.User, error) {
	var out struct {
		User models.User `json:"user"`
	}
	err := h.do(ctx, call{
		op:     "get profile",
		method: http.MethodGet,
		url:    h.endpoints.Profile,
		role:   session.RoleUser,
		id:     userID,
	}, &out)
	return out.User, err
}

func (h *HTTPClient) ListTransactions(ctx context.Context, userID string) (TransactionList, error) {
	var out struct {
		Transactions []models.Transaction `json:"transactions"`
		IsPremium    bool                 `json:"isPremium"`
	}
	err := h.do(ctx, call{
		op:     "list transactions",
		method: http.MethodGet,
		url:    h.endpoints.Transactions,
		role:   session.RoleUser,
		id:     userID,
	}, &out)
	if err != nil {
		return TransactionList{}, err
	}
	return TransactionList{Transactions: out.Transactions, IsPremium: out.IsPremium}, nil
}

func (h *HTTPClient) CreateTransaction(ctx context.Context, userID string, in models.TransactionInput) (models.Transaction, error) {
	var out struct {
		Transaction *models.Transaction `json:"transaction"`
	}
	err := h.do(ctx, call{
		op:     "create transaction",
		method: http.MethodPost,
		url:    h.endpoints.Transactions,
		role:   session.RoleUser,
		id:     userID,
		body:   in,
		strict: true,
	}, &out)
	if err != nil {
		return models.Transaction{}, err
	}
	if out.Transaction == nil {
		return models.Transaction{}, networkFailure("create transaction", http.StatusCreated, errNoPayload)
	}
	return *out.Transaction, nil
}

func (h *HTTPClient) DeleteTransaction(ctx context.Context, userID string, id models.ID) error {
	return h.do(ctx, call{
		op:     "delete transaction",
		method: http.MethodDelete,
		url:    h.endpoints.Transactions,
		role:   session.RoleUser,
		id:     userID,
		query:  byID(id),
	}, nil)
}

func (h *HTTPClient) ListGoals(ctx context.Context, userID string) ([]models.Goal, error) {
	var out struct {
		Goals []models.Goal `json:"goals"`
	}
	err := h.do(ctx, call{
		op:     "list goals",
		method: http.MethodGet,
		url:    h.endpoints.Goals,
		role:   session.RoleUser,
		id:     userID,
	}, &out)
	return out.Goals, err
}

func (h *HTTPClient) CreateGoal(ctx context.Context, userID string, in models.GoalInput) (models.Goal, error) {
	var out struct {
		Goal *models.Goal `json:"goal"`
	}
	err := h.do(ctx, call{
		op:     "create goal",
		method: http.MethodPost,
		url:    h.endpoints.Goals,
		role:   session.RoleUser,
		id:     userID,
		body:   in,
		strict: true,
	}, &out)
	if err != nil {
		return models.Goal{}, err
	}
	if out.Goal == nil {
		return models.Goal{}, networkFailure("create goal", http.StatusCreated, errNoPayload)
	}
	return *out.Goal, nil
}

func (h *HTTPClient) UpdateGoalProgress(ctx context.Context, userID string, p models.GoalProgress) (models.Goal, error) {
	var out struct {
		Goal *models.Goal `json:"goal"`
	}
	err := h.do(ctx, call{
		op:     "update goal",
		method: http.MethodPut,
		url:    h.endpoints.Goals,
		role:   session.RoleUser,
		id:     userID,
		body:   p,
	}, &out)
	if err != nil {
		return models.Goal{}, err
	}
	if out.Goal == nil {
		return models.Goal{}, networkFailure("update goal", http.StatusOK, errNoPayload)
	}
	return *out.Goal, nil
}

func (h *HTTPClient) DeleteGoal(ctx context.Context, userID string, id models.ID) error {
	return h.do(ctx, call{
		op:     "delete goal",
		method: http.MethodDelete,
		url:    h.endpoints.Goals,
		role:   session.RoleUser,
		id:     userID,
		query:  byID(id),
	}, nil)
}

func (h *HTTPClient) ListOrganizations(ctx context.Context, userID string) ([]models.Organization, error) {
	var out struct {
		Organizations []models.Organization `json:"organizations"`
	}
	err := h.do(ctx, call{
		op:     "list organizations",
		method: http.MethodGet,
		url:    h.endpoints.Organizations,
		role:   session.RoleUser,
		id:     userID,
	}, &out)
	return out.Organizations, err
}

func (h *HTTPClient) CreateOrganization(ctx context.Context, userID string, in models.OrganizationInput) (models.ID, error) {
	in.ID = ""
	var out struct {
		ID models.ID `json:"id"`
	}
	err := h.do(ctx, call{
		op:     "create organization",
		method: http.MethodPost,
		url:    h.endpoints.Organizations,
		role:   session.RoleUser,
		id:     userID,
		body:   in,
	}, &out)
	return out.ID, err
}

func (h *HTTPClient) UpdateOrganization(ctx context.Context, userID string, in models.OrganizationInput) error {
	return h.do(ctx, call{
		op:     "update organization",
		method: http.MethodPut,
		url:    h.endpoints.Organizations,
		role:   session.RoleUser,
		id:     userID,
		body:   in,
	}, nil)
}

func (h *HTTPClient) DeleteOrganization(ctx context.Context, userID string, id models.ID) error {
	return h.do(ctx, call{
		op:     "delete organization",
		method: http.MethodDelete,
		url:    h.endpoints.Organizations,
		role:   session.RoleUser,
		id:     userID,
		query:  byID(id),
	}, nil)
}

func (h *HTTPClient) ListUsers(ctx context.Context, adminID string) ([]models.AdminUser, error) {
	var out struct {
		Users []models.AdminUser `json:"users"`
	}
	err := h.do(ctx, call{
		op:     "list users",
		method: http.MethodGet,
		url:    h.endpoints.AdminUsers,
		role:   session.RoleAdmin,
		id:     adminID,
	}, &out)
	return out.Users, err
}

func (h *HTTPClient) CreateUser(ctx context.Context, adminID string, in models.NewUserInput) (models.CreatedUser, error) {
	var out struct {
		User *models.CreatedUser `json:"user"`
	}
	err := h.do(ctx, call{
		op:     "create user",
		method: http.MethodPost,
		url:    h.endpoints.AdminUsers,
		role:   session.RoleAdmin,
		id:     adminID,
		body:   in,
	}, &out)
	if err != nil {
		return models.CreatedUser{}, err
	}
	if out.User == nil {
		return models.CreatedUser{}, networkFailure("create user", http.StatusCreated, errNoPayload)
	}
	return *out.User, nil
}

func (h *HTTPClient) DeleteUser(ctx context.Context, adminID string, id models.ID) error {
	return h.do(ctx, call{
		op:     "delete user",
		method: http.MethodDelete,
		url:    h.endpoints.AdminUsers,
		role:   session.RoleAdmin,
		id:     adminID,
		query:  byID(id),
	}, nil)
}

func (h *HTTPClient) GrantPremium(ctx context.Context, adminID string, userID models.ID, days int) (models.AdminUser, error) {
	if days <= 0 {
		days = DefaultPremiumDays
	}
	return h.premium(ctx, "grant premium", adminID, premiumAction{UserID: userID, Action: "grant_premium", Days: days})
}

func (h *HTTPClient) RevokePremium(ctx context.Context, adminID string, userID models.ID) (models.AdminUser, error) {
	return h.premium(ctx, "revoke premium", adminID, premiumAction{UserID: userID, Action: "revoke_premium"})
}

func (h *HTTPClient) premium(ctx context.Context, op, adminID string, body premiumAction) (models.AdminUser, error) {
	var out struct {
		User *models.AdminUser `json:"user"`
	}
	err := h.do(ctx, call{
		op:     op,
		method: http.MethodPut,
		url:    h.endpoints.AdminUsers,
		role:   session.RoleAdmin,
		id:     adminID,
		body:   body,
	}, &out)
	if err != nil {
		return models.AdminUser{}, err
	}
	if out.User == nil {
		return models.AdminUser{}, networkFailure(op, http.StatusOK, errNoPayload)
	}
	return *out.User, nil
}
