package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the user REPL needs.
// App satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isPremium() bool
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	WhoAmI(ctx context.Context, args []string) error
	Dashboard(ctx context.Context, args []string) error
	List(ctx context.Context, args []string) error
	Add(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Goals(ctx context.Context, args []string) error
	AddGoal(ctx context.Context, args []string) error
	Progress(ctx context.Context, args []string) error
	DeleteGoal(ctx context.Context, args []string) error
	Orgs(ctx context.Context, args []string) error
	AddOrg(ctx context.Context, args []string) error
	EditOrg(ctx context.Context, args []string) error
	DeleteOrg(ctx context.Context, args []string) error
	Analytics(ctx context.Context, args []string) error
	Reload(ctx context.Context, args []string) error
}

// adminExecIface is the admin panel's counterpart of execIface.
type adminExecIface interface {
	isLoggedIn() bool
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	Users(ctx context.Context, args []string) error
	Reload(ctx context.Context, args []string) error
	AddUser(ctx context.Context, args []string) error
	DeleteUser(ctx context.Context, args []string) error
	Grant(ctx context.Context, args []string) error
	Revoke(ctx context.Context, args []string) error
}

// readCommand prints the prompt and splits the next non-blank line into the
// command and its arguments. ok is false once input is exhausted.
func readCommand(prompt string, reader *bufio.Reader) (cmd string, args []string, ok bool) {
	for {
		printlnFn(prompt)
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return "", nil, false
		}
		if parts := strings.Fields(line); len(parts) > 0 {
			return parts[0], parts[1:], true
		}
		if err != nil {
			return "", nil, false
		}
	}
}

// runREPL starts the read–eval–print loop of the user client.
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help, login [email], exit | quit
//
//	Logged in:
//	  - dashboard | d                  balance, categories, goals, recent items
//	  - list | l, add, delete <id>     transactions
//	  - goals, addgoal, progress <id> <amount>, delgoal <id>
//	  - orgs, addorg, editorg <id>, delorg <id> (premium)
//	  - analytics [day|week|month]     income vs expense for a period
//	  - reload, whoami, logout, exit | quit
//
// Missing arguments are asked for interactively. Errors returned by command handlers are ignored here; the services have
// already shown them as notifications.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		cmd, args, ok := readCommand(fmt.Sprintf("fp %s> ", statusFn()), reader)
		if !ok {
			return
		}

		switch cmd {
		case "help":
			switch {
			case !a.isLoggedIn():
				printlnFn("Available commands: login, exit")
			case a.isPremium():
				printlnFn("Available commands: (d)ashboard, (l)ist, add, delete, goals, addgoal, progress, delgoal, orgs, addorg, editorg, delorg, analytics, reload, whoami, logout, exit")
			default:
				printlnFn("Available commands: (d)ashboard, (l)ist, add, delete, goals, addgoal, progress, delgoal, analytics, reload, whoami, logout, exit")
			}
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return

		case "login":
			_ = a.Login(ctx, args)
			continue
		}

		handler := userCommand(a, cmd)
		if handler == nil {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if !a.isLoggedIn() {
			printlnFn("Please login first")
			continue
		}
		_ = handler(ctx, args)
	}
}

func userCommand(a execIface, cmd string) func(context.Context, []string) error {
	switch cmd {
	case "logout":
		return a.Logout
	case "whoami":
		return a.WhoAmI
	case "d", "dashboard":
		return a.Dashboard
	case "l", "list":
		return a.List
	case "add":
		return a.Add
	case "delete":
		return a.Delete
	case "goals":
		return a.Goals
	case "addgoal":
		return a.AddGoal
	case "progress":
		return a.Progress
	case "delgoal":
		return a.DeleteGoal
	case "orgs":
		return a.Orgs
	case "addorg":
		return a.AddOrg
	case "editorg":
		return a.EditOrg
	case "delorg":
		return a.DeleteOrg
	case "analytics":
		return a.Analytics
	case "reload":
		return a.Reload
	}
	return nil
}

// runAdminREPL is the admin panel loop:
//
//	Not logged in:  help, login [email], exit | quit
//	Logged in:      users, reload, adduser, deluser <id>, grant <id> [days],
//	                revoke <id>, logout, exit | quit
func runAdminREPL(ctx context.Context, a adminExecIface, statusFn func() string, reader *bufio.Reader) {
	for {
		cmd, args, ok := readCommand(fmt.Sprintf("fp-admin %s> ", statusFn()), reader)
		if !ok {
			return
		}

		var handler func(context.Context, []string) error

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: users, reload, adduser, deluser, grant, revoke, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "login":
			_ = a.Login(ctx, args)
			continue
		case "logout":
			handler = a.Logout
		case "users":
			handler = a.Users
		case "reload":
			handler = a.Reload
		case "adduser":
			handler = a.AddUser
		case "deluser":
			handler = a.DeleteUser
		case "grant":
			handler = a.Grant
		case "revoke":
			handler = a.Revoke
		default:
			printlnFn("Unknown command:", cmd)
			continue
		}

		if !a.isLoggedIn() {
			printlnFn("Please login first")
			continue
		}
		_ = handler(ctx, args)
	}
}
