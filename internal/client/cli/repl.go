package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/wellbeinghub/internal/client/brand"
	"github.com/dmitrijs2005/wellbeinghub/internal/client/client"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) error
	Status(ctx context.Context) error
	AddItem(ctx context.Context) error
	Items(ctx context.Context) error
	AddGroup(ctx context.Context) error
	Groups(ctx context.Context, location string) error
}

const (
	helpGuest    = "Available commands: register, login, status, help, exit"
	helpSignedIn = "Available commands: me, status, additem, items, addgroup, groups [location], logout, help, exit"
)

// runREPL reads a line from reader, parses the first token as the command,
// and dispatches to methods on a. The loop exits at end of input or when
// the user types "exit" or "quit".
//
// Handler errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("%s %s > ", brand.Paint(brand.Current().Primary, "wb"), statusFn()))

		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpGuest)
			}

		case "register":
			report(a.Register(ctx))

		case "login":
			report(a.Login(ctx))

		case "logout":
			report(a.Logout(ctx))

		case "me":
			report(a.Me(ctx))

		case "status":
			report(a.Status(ctx))

		case "additem":
			report(a.AddItem(ctx))

		case "items":
			report(a.Items(ctx))

		case "addgroup":
			report(a.AddGroup(ctx))

		case "groups":
			location := ""
			if len(args) > 0 {
				location = args[0]
			}
			report(a.Groups(ctx, location))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// report prints err for the user. Authorization failures get a hint.
func report(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, client.ErrUnauthorized) {
		printlnFn("Error:", err, "(try 'login')")
		return
	}
	printlnFn("Error:", err)
}
