package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failed call.
type Kind string

const (
	// KindNetwork: the request did not complete or the body was not JSON.
	KindNetwork Kind = "network"
	// KindBusiness: the server answered and refused.
	KindBusiness Kind = "business"
	// KindPremiumRequired: the server refused because the user is not premium.
	KindPremiumRequired Kind = "premium_required"
)

var (
	ErrUnavailable     = errors.New("server unavailable")
	ErrRejected        = errors.New("request rejected")
	ErrPremiumRequired = errors.New("premium subscription required")
)

// Envelope is the part of every response body shared by all functions.
// Error responses frequently omit "success"; its absence reads as false.
type Envelope struct {
	Success         bool   `json:"success"`
	Error           string `json:"error,omitempty"`
	PremiumRequired bool   `json:"premiumRequired,omitempty"`
}

// Failure is the error returned by every Client method.
type Failure struct {
	Kind Kind
	// Op names the call, e.g. "create transaction".
	Op string
	// Status is 0 when no response was received.
	Status   int
	Message  string
	Envelope Envelope
	// Raised is set when the HTTP status alone made the call fail, even though
	// the body may have reported success.
	Raised bool
	Err    error
}

func (f *Failure) Error() string {
	switch {
	case f.Message != "":
		return fmt.Sprintf("%s: %s", f.Op, f.Message)
	case f.Err != nil:
		return fmt.Sprintf("%s: %v", f.Op, f.Err)
	case f.Status != 0:
		return fmt.Sprintf("%s: status %d", f.Op, f.Status)
	default:
		return fmt.Sprintf("%s: %s", f.Op, f.Kind)
	}
}

func (f *Failure) Unwrap() error { return f.Err }

// Is matches the sentinel of the failure's kind.
func (f *Failure) Is(target error) bool {
	switch target {
	case ErrUnavailable:
		return f.Kind == KindNetwork
	case ErrRejected:
		return f.Kind == KindBusiness
	case ErrPremiumRequired:
		return f.Kind == KindPremiumRequired
	}
	return false
}

// Unauthorized reports whether the server rejected the caller's identity.
func (f *Failure) Unauthorized() bool {
	return f.Status == http.StatusUnauthorized
}

// AsFailure extracts a *Failure from err.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

func networkFailure(op string, status int, err error) *Failure {
	return &Failure{Kind: KindNetwork, Op: op, Status: status, Err: err}
}

func rejection(op string, status int, env Envelope, raised bool) *Failure {
	kind := KindBusiness
	if env.PremiumRequired {
		kind = KindPremiumRequired
	}
	return &Failure{
		Kind:     kind,
		Op:       op,
		Status:   status,
		Message:  env.Error,
		Envelope: env,
		Raised:   raised,
	}
}
