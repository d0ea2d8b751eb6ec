package models

import (
	"fmt"
	"strings"
)

// Roles as stored by the backend.
const (
	RoleMember    = "MEMBRO"
	RoleLibrarian = "BIBLIOTECARIO"
)

// User is a library member. Senha is write-only: it is sent on create and
// (optionally) on update, but the backend never returns it, so it stays
// empty on entities read back from the server.
type User struct {
	ID    int64  `json:"id,omitempty"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Validate checks locally verifiable fields. Email uniqueness is enforced
// server-side and surfaces as a conflict error.
func (u User) Validate() error {
	if u.Nome == "" {
		return fmt.Errorf("%w: nome is required", ErrInvalid)
	}
	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return fmt.Errorf("%w: a valid email is required", ErrInvalid)
	}
	if u.ID == 0 && u.Senha == "" {
		return fmt.Errorf("%w: senha is required", ErrInvalid)
	}
	return nil
}
