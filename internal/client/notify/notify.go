// Package notify delivers short, transient messages about the outcome of a
// user action, the terminal counterpart of a toast.
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Notification struct {
	Level   Level
	Title   string
	Message string
}

func Success(title, msg string) Notification {
	return Notification{Level: LevelSuccess, Title: title, Message: msg}
}

func Failure(title, msg string) Notification {
	return Notification{Level: LevelError, Title: title, Message: msg}
}

// Notifier shows notifications to the person at the terminal.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Console prints notifications as single lines.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Notify(_ context.Context, n Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()

	mark := "✓"
	if n.Level == LevelError {
		mark = "✗"
	}
	if n.Message == "" {
		fmt.Fprintf(c.w, "%s %s\n", mark, n.Title)
		return
	}
	fmt.Fprintf(c.w, "%s %s: %s\n", mark, n.Title, n.Message)
}

// Recorder keeps every notification it receives.
type Recorder struct {
	mu  sync.Mutex
	all []Notification
}

func (r *Recorder) Notify(_ context.Context, n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.all = append(r.all, n)
}

func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.all))
	copy(out, r.all)
	return out
}

// Last returns the most recent notification, or the zero value.
func (r *Recorder) Last() Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.all) == 0 {
		return Notification{}
	}
	return r.all[len(r.all)-1]
}
