package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/finplanner/internal/client/api"
	"github.com/dmitrijs2005/finplanner/internal/client/notify"
	"github.com/dmitrijs2005/finplanner/internal/logging"
)

// ErrNotLoggedIn is returned when an operation needs a session the client
// does not have.
var ErrNotLoggedIn = errors.New("not logged in")

const (
	titleError           = "Error"
	titlePremiumRequired = "Premium required"
	premiumContactAdmin  = "This feature is available with a premium subscription. Contact the administrator to get access."
)

// failureNotice turns a failed call into what the user sees. Business
// rejections show the server's message; fallback covers everything else.
func failureNotice(err error, fallback string) notify.Notification {
	f, ok := api.AsFailure(err)
	if !ok {
		return notify.Failure(titleError, fallback)
	}
	switch f.Kind {
	case api.KindPremiumRequired:
		return notify.Failure(titlePremiumRequired, premiumContactAdmin)
	case api.KindBusiness:
		if f.Message != "" {
			return notify.Failure(titleError, f.Message)
		}
	}
	return notify.Failure(titleError, fallback)
}

// reporter is shared by the services: it shows a failure to the user and
// logs it once.
type reporter struct {
	notifier notify.Notifier
	log      logging.Logger
}

func (r reporter) fail(ctx context.Context, op string, err error, fallback string) error {
	r.notifier.Notify(ctx, failureNotice(err, fallback))

	if f, ok := api.AsFailure(err); ok {
		if f.Unauthorized() {
			r.log.Warn(ctx, "server rejected the session id; keeping the stored session", "op", op)
		}
		r.log.Info(ctx, "operation failed", "op", op, "kind", f.Kind, "status", f.Status, "error", err)
	} else {
		r.log.Info(ctx, "operation failed", "op", op, "error", err)
	}
	return err
}

func (r reporter) ok(ctx context.Context, title, msg string) {
	r.notifier.Notify(ctx, notify.Success(title, msg))
}

func (r reporter) invalid(ctx context.Context, err error) error {
	r.notifier.Notify(ctx, notify.Failure(titleError, err.Error()))
	return err
}
