package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dmitrijs2005/finplanner/internal/client/api"
	"github.com/dmitrijs2005/finplanner/internal/client/config"
	"github.com/dmitrijs2005/finplanner/internal/client/models"
	"github.com/dmitrijs2005/finplanner/internal/client/notify"
	"github.com/dmitrijs2005/finplanner/internal/client/render"
	"github.com/dmitrijs2005/finplanner/internal/client/services"
	"github.com/dmitrijs2005/finplanner/internal/logging"
)

// AdminApp is the admin panel.
type AdminApp struct {
	auth     services.AuthService
	admin    services.AdminService
	notifier notify.Notifier
	reader   *bufio.Reader
	out      io.Writer
	closer   io.Closer
	email    string
}

func NewAdminApp(ctx context.Context, c *config.Config, log logging.Logger) (*AdminApp, error) {
	rt, err := bootstrap(ctx, c, log, os.Stdout)
	if err != nil {
		return nil, err
	}

	return &AdminApp{
		auth:     rt.auth,
		admin:    services.NewAdminService(rt.client, rt.auth, rt.notifier, log),
		notifier: rt.notifier,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		closer:   rt.db,
	}, nil
}

func (a *AdminApp) Run(ctx context.Context) error {
	if a.closer != nil {
		defer a.closer.Close()
	}

	fmt.Fprintln(a.out, "finplanner admin panel (type 'help' for commands)")

	if _, err := a.auth.Restore(ctx); err != nil {
		return err
	}
	if a.isLoggedIn() {
		_ = a.admin.LoadUsers(ctx)
	}

	runAdminREPL(ctx, a, a.status, a.reader)
	return nil
}

func (a *AdminApp) isLoggedIn() bool {
	return a.auth.AdminID() != ""
}

func (a *AdminApp) status() string {
	switch {
	case !a.isLoggedIn():
		return "(logged out)"
	case a.email != "":
		return fmt.Sprintf("(%s)", a.email)
	default:
		return "(admin)"
	}
}

func (a *AdminApp) ask(prompt string) (string, error) {
	return getSimpleText(a.reader, prompt, a.out)
}

func (a *AdminApp) arg(args []string, i int, prompt string) (string, error) {
	if i < len(args) {
		return args[i], nil
	}
	return a.ask(prompt)
}

func (a *AdminApp) Login(ctx context.Context, args []string) error {
	email, err := a.arg(args, 0, "Enter admin email")
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	adm, err := a.auth.AdminLogin(ctx, email, string(password))
	if err != nil {
		return err
	}
	a.email = adm.Email

	return a.admin.LoadUsers(ctx)
}

func (a *AdminApp) Logout(ctx context.Context, args []string) error {
	if err := a.auth.AdminLogout(ctx); err != nil {
		a.notifier.Notify(ctx, notify.Failure("Error", err.Error()))
		return err
	}
	a.admin.Reset()
	a.email = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *AdminApp) Users(ctx context.Context, args []string) error {
	return render.Users(a.out, a.admin.Users())
}

func (a *AdminApp) Reload(ctx context.Context, args []string) error {
	return a.admin.LoadUsers(ctx)
}

// AddUser runs the create-user dialog. The form is asked again after a
// failed attempt; an empty first name cancels. On success the generated
// credentials are shown until the admin confirms.
func (a *AdminApp) AddUser(ctx context.Context, args []string) error {
	d := a.admin.Dialog()
	d.Open()
	defer d.Close()

	for d.State() == services.DialogForm {
		first, err := a.ask("First name (empty to cancel)")
		if err != nil {
			return err
		}
		if first == "" {
			return nil
		}
		last, err := a.ask("Last name")
		if err != nil {
			return err
		}

		err = a.admin.CreateUser(ctx, models.NewUserInput{FirstName: first, LastName: last})
		if errors.Is(err, services.ErrNotLoggedIn) {
			return err
		}
	}

	creds, ok := d.Credentials()
	if !ok {
		return nil
	}
	render.Credentials(a.out, creds)
	_, err := a.ask("Press Enter once the credentials are saved")
	return err
}

func (a *AdminApp) DeleteUser(ctx context.Context, args []string) error {
	id, err := a.arg(args, 0, "Enter user ID")
	if err != nil {
		return err
	}
	return a.admin.DeleteUser(ctx, models.ID(id))
}

// Grant gives premium: grant <id> [days]. Without days on the command line
// the admin is asked, and an empty answer means the server default.
func (a *AdminApp) Grant(ctx context.Context, args []string) error {
	id, err := a.arg(args, 0, "Enter user ID")
	if err != nil {
		return err
	}
	raw, err := a.arg(args, 1, fmt.Sprintf("Days (empty for %d)", api.DefaultPremiumDays))
	if err != nil {
		return err
	}
	days := 0
	if raw != "" {
		if days, err = strconv.Atoi(raw); err != nil || days <= 0 {
			err = fmt.Errorf("invalid number of days %q", raw)
			a.notifier.Notify(ctx, notify.Failure("Error", err.Error()))
			return err
		}
	}
	return a.admin.GrantPremium(ctx, models.ID(id), days)
}

func (a *AdminApp) Revoke(ctx context.Context, args []string) error {
	id, err := a.arg(args, 0, "Enter user ID")
	if err != nil {
		return err
	}
	return a.admin.RevokePremium(ctx, models.ID(id))
}
