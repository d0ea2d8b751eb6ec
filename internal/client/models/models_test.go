package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookValidate(t *testing.T) {
	valid := Book{Titulo: "Dom Casmurro", Autor: "Machado de Assis", AnoPublicacao: 1899, QuantidadeTotal: 3}

	tests := []struct {
		name   string
		mutate func(*Book)
		ok     bool
	}{
		{"valid", func(b *Book) {}, true},
		{"missing title", func(b *Book) { b.Titulo = "" }, false},
		{"missing author", func(b *Book) { b.Autor = "" }, false},
		{"zero year", func(b *Book) { b.AnoPublicacao = 0 }, false},
		{"zero copies", func(b *Book) { b.QuantidadeTotal = 0 }, false},
		{"isbn optional", func(b *Book) { b.ISBN = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid
			tt.mutate(&b)
			err := b.Validate()
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}

func TestBookAvailable(t *testing.T) {
	assert.False(t, Book{QuantidadeDisponivel: 0}.Available())
	assert.True(t, Book{QuantidadeDisponivel: 1}.Available())
}

func TestUserValidate(t *testing.T) {
	u := User{Nome: "Ana", Email: "ana@example.com", Senha: "secret"}
	require.NoError(t, u.Validate())

	t.Run("password required only on create", func(t *testing.T) {
		existing := User{ID: 7, Nome: "Ana", Email: "ana@example.com"}
		require.NoError(t, existing.Validate())

		fresh := existing
		fresh.ID = 0
		require.ErrorIs(t, fresh.Validate(), ErrInvalid)
	})

	t.Run("email must look like an email", func(t *testing.T) {
		bad := u
		bad.Email = "not-an-email"
		require.ErrorIs(t, bad.Validate(), ErrInvalid)
	})
}

func TestLoanRequestValidate(t *testing.T) {
	require.NoError(t, LoanRequest{BookID: 1, UserID: 2}.Validate())
	require.ErrorIs(t, LoanRequest{UserID: 2}.Validate(), ErrInvalid)
	require.ErrorIs(t, LoanRequest{BookID: 1}.Validate(), ErrInvalid)
}
