package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	isLibrarian() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	ShowBooks(ctx context.Context, args []string) error
	AddBook(ctx context.Context) error
	EditBook(ctx context.Context) error
	DeleteBook(ctx context.Context) error

	ShowMembers(ctx context.Context) error
	AddMember(ctx context.Context) error
	EditMember(ctx context.Context) error
	DeleteMember(ctx context.Context) error

	ShowLoans(ctx context.Context, args []string) error
	Borrow(ctx context.Context) error
	ReturnLoan(ctx context.Context) error
	EditLoan(ctx context.Context) error
	DeleteLoan(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, help, exit"
	helpLoggedIn  = "Available commands: books, addbook, editbook, delbook, " +
		"members, addmember, editmember, delmember, " +
		"loans, borrow, return, editloan, delloan, whoami, logout, exit"
)

// runREPL reads a line, parses the first token as the command, and
// dispatches to methods on a. Handlers report their own errors to the
// user; the loop only cares about I/O. Exits on EOF or "exit"/"quit".
//
// Commands that mutate loans or delete entities are gated on the
// librarian role as a UX hint only; the backend enforces the real rule
// and its rejection is surfaced when a librarian-looking session turns
// out not to be one.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "bibliocli %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) || strings.TrimSpace(line) == "" {
				return
			}
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				fmt.Fprintln(w, helpLoggedOut)
			case "register":
				_ = a.Register(ctx)
			case "login":
				_ = a.Login(ctx)
			case "exit", "quit":
				fmt.Fprintln(w, "Bye!")
				return
			default:
				fmt.Fprintln(w, "Unknown command (or login required):", cmd)
			}
			continue
		}

		switch cmd {
		case "help":
			fmt.Fprintln(w, helpLoggedIn)

		case "books", "b":
			_ = a.ShowBooks(ctx, args)
		case "addbook":
			_ = a.AddBook(ctx)
		case "editbook":
			_ = a.EditBook(ctx)
		case "delbook":
			if requireLibrarian(a, w) {
				_ = a.DeleteBook(ctx)
			}

		case "members", "m":
			_ = a.ShowMembers(ctx)
		case "addmember":
			_ = a.AddMember(ctx)
		case "editmember":
			_ = a.EditMember(ctx)
		case "delmember":
			if requireLibrarian(a, w) {
				_ = a.DeleteMember(ctx)
			}

		case "loans", "l":
			_ = a.ShowLoans(ctx, args)
		case "borrow":
			if requireLibrarian(a, w) {
				_ = a.Borrow(ctx)
			}
		case "return":
			if requireLibrarian(a, w) {
				_ = a.ReturnLoan(ctx)
			}
		case "editloan":
			if requireLibrarian(a, w) {
				_ = a.EditLoan(ctx)
			}
		case "delloan":
			if requireLibrarian(a, w) {
				_ = a.DeleteLoan(ctx)
			}

		case "whoami":
			_ = a.WhoAmI(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}

func requireLibrarian(a execIface, w io.Writer) bool {
	if a.isLibrarian() {
		return true
	}
	fmt.Fprintln(w, "This command needs the BIBLIOTECARIO role.")
	return false
}
