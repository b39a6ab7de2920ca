package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/finplanner/internal/client/config"
	"github.com/dmitrijs2005/finplanner/internal/client/notify"
	"github.com/dmitrijs2005/finplanner/internal/client/services"
	"github.com/dmitrijs2005/finplanner/internal/logging"
)

var errPremiumRequired = errors.New("organizations require premium")

// App is the user client.
type App struct {
	auth     services.AuthService
	finance  services.FinanceService
	notifier notify.Notifier
	reader   *bufio.Reader
	out      io.Writer
	now      func() time.Time
	closer   io.Closer
	userName string
}

// NewApp opens the session database and builds the services the user
// client runs on.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	rt, err := bootstrap(ctx, c, log, os.Stdout)
	if err != nil {
		return nil, err
	}

	return &App{
		auth:     rt.auth,
		finance:  services.NewFinanceService(rt.client, rt.auth, rt.notifier, log),
		notifier: rt.notifier,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		now:      time.Now,
		closer:   rt.db,
	}, nil
}

// Run restores a stored session, loads the user's data when there is one
// and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) error {
	if a.closer != nil {
		defer a.closer.Close()
	}

	fmt.Fprintln(a.out, "Welcome to finplanner (type 'help' for commands)")

	if _, err := a.auth.Restore(ctx); err != nil {
		return err
	}
	if a.isLoggedIn() {
		_ = a.finance.Load(ctx)
	}

	runREPL(ctx, a, a.status, a.reader)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.auth.UserID() != ""
}

func (a *App) isPremium() bool {
	return a.finance.Premium().IsPremium()
}

func (a *App) status() string {
	switch {
	case !a.isLoggedIn():
		return "(logged out)"
	case a.userName != "":
		return fmt.Sprintf("(%s)", a.userName)
	default:
		return "(logged in)"
	}
}

func (a *App) ask(prompt string) (string, error) {
	return getSimpleText(a.reader, prompt, a.out)
}

// arg returns the i-th command-line argument, asking for it when the
// command was typed without it.
func (a *App) arg(args []string, i int, prompt string) (string, error) {
	if i < len(args) {
		return args[i], nil
	}
	return a.ask(prompt)
}

// reject shows a local input error the same way the services show theirs.
func (a *App) reject(ctx context.Context, err error) error {
	a.notifier.Notify(ctx, notify.Failure("Error", err.Error()))
	return err
}
