package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/finplanner/internal/client/api"
	"github.com/dmitrijs2005/finplanner/internal/client/config"
	"github.com/dmitrijs2005/finplanner/internal/client/notify"
	"github.com/dmitrijs2005/finplanner/internal/client/services"
	"github.com/dmitrijs2005/finplanner/internal/client/session"
	"github.com/dmitrijs2005/finplanner/internal/client/storage"
	"github.com/dmitrijs2005/finplanner/internal/logging"
)

// runtime is what both front ends share: the session database, the API
// client and the auth service on top of them.
type runtime struct {
	db       *sql.DB
	client   api.Client
	notifier notify.Notifier
	auth     services.AuthService
}

func bootstrap(ctx context.Context, cfg *config.Config, log logging.Logger, out io.Writer) (*runtime, error) {
	db, err := storage.InitDatabase(ctx, cfg.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing session database: %w", err)
	}

	// No client timeout: calls end with the server's answer or when ctx is
	// cancelled.
	client := api.NewHTTPClient(cfg.Endpoints(), &http.Client{}, log)
	notifier := notify.NewConsole(out)

	return &runtime{
		db:       db,
		client:   client,
		notifier: notifier,
		auth:     services.NewAuthService(client, session.NewCookieStore(db), notifier, log),
	}, nil
}
