package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mribeiro/bibliocli/internal/client/models"
	"github.com/mribeiro/bibliocli/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the new account's fields and creates it via
// POST /auth/register. Registration does not log the user in.
func (a *App) Register(ctx context.Context) error {
	nome, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	role, err := GetTextDefault(a.reader, "Role", models.RoleMember, a.out)
	if err != nil {
		return err
	}
	role = strings.ToUpper(role)

	req := models.RegisterRequest{Nome: nome, Email: email, Senha: string(password), Role: role}
	if err := a.api.RegisterUser(ctx, req); err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintln(a.out, "Account created. Use 'login' to sign in.")
	return nil
}

// Login prompts for credentials, exchanges them for a token, and persists
// the resulting session so it survives a restart.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	resp, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		a.printErr(err)
		return err
	}

	sess := session.Session{Token: resp.Token, UserID: resp.UserID, Nome: resp.Nome, Role: resp.Role}
	if err := a.session.Set(ctx, sess); err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", resp.Nome)
	return nil
}

// Logout clears the persisted session. Subsequent requests carry no
// Authorization header.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		a.printErr(err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI prints the current identity and, when the token carries an exp
// claim, its expiry. Display only: expiry is enforced by the backend.
func (a *App) WhoAmI(ctx context.Context) error {
	s := a.session.Current()
	if s == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "User:  %s (id %d)\n", s.Nome, s.UserID)
	fmt.Fprintf(a.out, "Role:  %s\n", s.Role)
	if exp, ok := session.TokenExpiry(s.Token); ok {
		fmt.Fprintf(a.out, "Token: expires %s\n", exp.Format(time.RFC3339))
	}
	return nil
}
