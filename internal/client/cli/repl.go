package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Browse(ctx context.Context) error
	Filter(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Show(ctx context.Context) error
	Create(ctx context.Context) error
	Mine(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	AddImage(ctx context.Context) error
	AddImageURL(ctx context.Context) error
	Analytics(ctx context.Context) error
}

// runREPL starts the read-eval-print loop of the marketplace client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands that mutate owned listings (create, mine, edit, delete, image
// management) require a session and redirect to login otherwise; analytics
// additionally requires the admin role. This gating is client-side
// convenience only; the server is the actual authorization boundary.
//
// Any errors returned by command handlers are printed here; handlers decide
// what detail to show. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	printlnFn("LankaList - type 'help' for commands")

	for {
		printlnFn(fmt.Sprintf("ll %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		var err error

		switch cmd {
		case "help":
			printHelp(a)

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "b", "browse":
			err = a.Browse(ctx)

		case "filter":
			err = a.Filter(ctx)

		case "s", "search":
			err = a.Search(ctx, strings.Join(args, " "))

		case "show":
			err = a.Show(ctx)

		case "create":
			if !requireLogin(a) {
				continue
			}
			err = a.Create(ctx)

		case "m", "mine":
			if !requireLogin(a) {
				continue
			}
			err = a.Mine(ctx)

		case "edit":
			if !requireLogin(a) {
				continue
			}
			err = a.Edit(ctx)

		case "delete":
			if !requireLogin(a) {
				continue
			}
			err = a.Delete(ctx)

		case "addimage":
			if !requireLogin(a) {
				continue
			}
			err = a.AddImage(ctx)

		case "addimageurl":
			if !requireLogin(a) {
				continue
			}
			err = a.AddImageURL(ctx)

		case "analytics", "refresh":
			if !requireLogin(a) {
				continue
			}
			if !a.isAdmin() {
				printlnFn("Access denied: only administrators can view analytics.")
				continue
			}
			err = a.Analytics(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}

// requireLogin gates protected commands, redirecting the user to login
// instead of running the handler.
func requireLogin(a execIface) bool {
	if a.isLoggedIn() {
		return true
	}
	printlnFn("Please login first (type 'login' or 'register').")
	return false
}

func printHelp(a execIface) {
	printlnFn("Browse:  (b)rowse, filter, (s)earch <query>, show")
	if a.isLoggedIn() {
		printlnFn("Manage:  create, (m)ine, edit, delete, addimage, addimageurl, logout")
	} else {
		printlnFn("Account: login, register")
	}
	if a.isAdmin() {
		printlnFn("Admin:   analytics, refresh")
	}
	printlnFn("Other:   help, exit")
}
