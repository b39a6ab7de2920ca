package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/dmitrijs2005/finplanner/internal/client/models"
)

type DialogState int

const (
	DialogClosed DialogState = iota
	DialogForm
	DialogReveal
)

func (s DialogState) String() string {
	switch s {
	case DialogForm:
		return "form"
	case DialogReveal:
		return "reveal"
	default:
		return "closed"
	}
}

var ErrDialogNotInForm = errors.New("create-user dialog is not showing the form")

// CreateUserDialog is the admin's create-user flow. A generated password is
// shown once, in the reveal state, and forgotten on Close or Open.
type CreateUserDialog struct {
	mu    sync.Mutex
	state DialogState
	creds *models.Credentials
}

// Open shows an empty form, whatever the previous state was.
func (d *CreateUserDialog) Open() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = DialogForm
	d.creds = nil
}

func (d *CreateUserDialog) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = DialogClosed
	d.creds = nil
}

func (d *CreateUserDialog) State() DialogState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Credentials returns the generated login pair while it is being revealed.
func (d *CreateUserDialog) Credentials() (models.Credentials, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != DialogReveal || d.creds == nil {
		return models.Credentials{}, false
	}
	return *d.creds, true
}

// Submit sends the form through create. The dialog moves to the reveal state
// only when create succeeds; otherwise it keeps showing the form.
func (d *CreateUserDialog) Submit(
	ctx context.Context,
	in models.NewUserInput,
	create func(context.Context, models.NewUserInput) (models.CreatedUser, error),
) (models.AdminUser, error) {
	if d.State() != DialogForm {
		return models.AdminUser{}, ErrDialogNotInForm
	}
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	if in.FirstName == "" || in.LastName == "" {
		return models.AdminUser{}, models.ErrEmptyName
	}

	created, err := create(ctx, in)
	if err != nil {
		return models.AdminUser{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != DialogForm {
		// closed while the request was in flight
		return created.AdminUser, nil
	}
	creds := created.Credentials()
	d.creds = &creds
	d.state = DialogReveal
	return created.AdminUser, nil
}
