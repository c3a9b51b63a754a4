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
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) error
	List(ctx context.Context) error
	More(ctx context.Context) error
	Filter(ctx context.Context) error
	Show(ctx context.Context) error
	Categories(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	Study(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the techcards CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Browsing and studying are available without logging in; add, edit and
// delete are refused until a login succeeds, mirroring the server's write
// gate. Any errors returned by command handlers are ignored here; handlers
// print their own errors. This keeps the REPL loop resilient and focused
// on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("tc> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Available commands: (l)ist, more, filter, show, categories, study, login, exit")
			if a.isLoggedIn() {
				printlnFn("Editing commands: add, edit, delete, me, logout")
			} else {
				printlnFn("Log in to add, edit or delete cards.")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "me":
			_ = a.Me(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "more":
			_ = a.More(ctx)

		case "filter":
			_ = a.Filter(ctx)

		case "show":
			_ = a.Show(ctx)

		case "categories":
			_ = a.Categories(ctx)

		case "study":
			_ = a.Study(ctx)

		case "add":
			if !a.isLoggedIn() {
				printlnFn("Please login first")
			} else {
				_ = a.Add(ctx)
			}

		case "edit":
			if !a.isLoggedIn() {
				printlnFn("Please login first")
			} else {
				_ = a.Edit(ctx)
			}

		case "del", "delete":
			if !a.isLoggedIn() {
				printlnFn("Please login first")
			} else {
				_ = a.Delete(ctx)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
