package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/mribeiro/bibliocli/internal/client/models"
)

// ShowMembers lists all members. The users endpoint is not paginated.
func (a *App) ShowMembers(ctx context.Context) error {
	if err := a.members.Reload(ctx); err != nil {
		a.printErr(err)
		return err
	}
	renderMembers(a.out, a.members.Items())
	return nil
}

func (a *App) promptMember(buf models.User) (models.User, error) {
	var err error
	if buf.Nome, err = GetTextDefault(a.reader, "Name", buf.Nome, a.out); err != nil {
		return buf, err
	}
	if buf.Email, err = GetTextDefault(a.reader, "Email", buf.Email, a.out); err != nil {
		return buf, err
	}
	role, err := GetTextDefault(a.reader, "Role", buf.Role, a.out)
	if err != nil {
		return buf, err
	}
	buf.Role = strings.ToUpper(role)
	return buf, nil
}

// AddMember creates a member. The password prompt does not echo.
func (a *App) AddMember(ctx context.Context) error {
	// a failed edit leaves the form in edit mode; adds always create
	a.memberForm.Reset()
	buf, err := a.promptMember(a.memberForm.Buffer())
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	buf.Senha = string(password)
	a.memberForm.SetBuffer(buf)

	saved, err := a.memberForm.Submit(ctx, a.api.Users())
	if err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintf(a.out, "Member saved (id %d).\n", saved.ID)
	return a.ShowMembers(ctx)
}

// EditMember pre-populates every editable field from the selected member
// except the password, which is never round-tripped by the server and so
// starts blank; leaving it blank keeps the current one.
func (a *App) EditMember(ctx context.Context) error {
	id, err := GetInt(a.reader, "Enter member id to edit", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	member, err := a.api.Users().Get(ctx, id)
	if err != nil {
		a.printErr(err)
		return err
	}

	a.memberForm.BeginEdit(id, member)
	buf, err := a.promptMember(a.memberForm.Buffer())
	if err != nil {
		return err
	}

	newPassword, err := GetTextDefault(a.reader, "New password (blank keeps current)", "", a.out)
	if err != nil {
		return err
	}
	buf.Senha = newPassword // omitted from the payload when empty
	a.memberForm.SetBuffer(buf)

	if _, err := a.memberForm.Submit(ctx, a.api.Users()); err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintln(a.out, "Member updated.")
	return a.ShowMembers(ctx)
}

// DeleteMember removes a member after explicit confirmation. A member
// with open loans is rejected by the backend with a conflict.
func (a *App) DeleteMember(ctx context.Context) error {
	id, err := GetInt(a.reader, "Enter member id to delete", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	if !GetConfirmation(a.reader, fmt.Sprintf("Delete member %d?", id), a.out) {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.api.Users().Remove(ctx, id); err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintln(a.out, "Member deleted.")
	return a.ShowMembers(ctx)
}
