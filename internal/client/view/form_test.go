package view

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mribeiro/bibliocli/internal/client/api"
	"github.com/mribeiro/bibliocli/internal/client/models"
)

type fakeSubmitter struct {
	created   any
	updated   any
	updatedID int64
	out       models.User
	err       error
}

func (f *fakeSubmitter) Create(ctx context.Context, payload any) (models.User, error) {
	f.created = payload
	return f.out, f.err
}

func (f *fakeSubmitter) Update(ctx context.Context, id int64, payload any) (models.User, error) {
	f.updatedID = id
	f.updated = payload
	return f.out, f.err
}

func newUserForm() *Form[models.User, models.User] {
	return NewForm[models.User, models.User](
		func() models.User { return models.User{Role: models.RoleMember} },
		func(u models.User) error { return u.Validate() },
	)
}

func TestFormSubmitCreateResetsBuffer(t *testing.T) {
	ctx := context.Background()
	res := &fakeSubmitter{out: models.User{ID: 9, Nome: "Ana"}}
	f := newUserForm()

	f.SetBuffer(models.User{Nome: "Ana", Email: "ana@example.com", Senha: "pw", Role: models.RoleMember})
	saved, err := f.Submit(ctx, res)
	require.NoError(t, err)
	assert.EqualValues(t, 9, saved.ID)

	// success resets to create-mode defaults
	assert.Zero(t, f.EditingID())
	assert.False(t, f.IsEdit())
	assert.Equal(t, models.User{Role: models.RoleMember}, f.Buffer())

	sent, ok := res.created.(models.User)
	require.True(t, ok)
	assert.Equal(t, "ana@example.com", sent.Email)
}

func TestFormSubmitEditUsesUpdate(t *testing.T) {
	ctx := context.Background()
	res := &fakeSubmitter{out: models.User{ID: 5}}
	f := newUserForm()

	// the entity as read from the server: senha is never round-tripped,
	// so the buffer's password field starts blank in edit mode
	f.BeginEdit(5, models.User{ID: 5, Nome: "Bruno", Email: "b@example.com", Role: models.RoleMember})
	require.True(t, f.IsEdit())
	assert.Empty(t, f.Buffer().Senha)

	_, err := f.Submit(ctx, res)
	require.NoError(t, err)
	assert.EqualValues(t, 5, res.updatedID)
	assert.Zero(t, f.EditingID())
}

func TestFormSubmitFailureKeepsBuffer(t *testing.T) {
	ctx := context.Background()
	res := &fakeSubmitter{err: api.ErrConflict}
	f := newUserForm()

	buf := models.User{Nome: "Ana", Email: "dup@example.com", Senha: "pw"}
	f.SetBuffer(buf)
	_, err := f.Submit(ctx, res)
	require.ErrorIs(t, err, api.ErrConflict)

	// the user can correct and resubmit
	assert.Equal(t, buf, f.Buffer())
}

func TestFormLocalValidationBlocksNetworkCall(t *testing.T) {
	ctx := context.Background()
	res := &fakeSubmitter{}
	f := newUserForm()

	f.SetBuffer(models.User{Email: "no-name@example.com", Senha: "pw"})
	_, err := f.Submit(ctx, res)
	require.ErrorIs(t, err, models.ErrInvalid)
	assert.Nil(t, res.created, "invalid buffer must not reach the network")
}

type fakeLoanSubmitter struct {
	updatedID int64
	updated   any
	out       models.Loan
	err       error
}

func (f *fakeLoanSubmitter) Create(ctx context.Context, payload any) (models.Loan, error) {
	f.updated = payload
	return f.out, f.err
}

func (f *fakeLoanSubmitter) Update(ctx context.Context, id int64, payload any) (models.Loan, error) {
	f.updatedID = id
	f.updated = payload
	return f.out, f.err
}

func TestFormLoanEditBuffersRequest(t *testing.T) {
	ctx := context.Background()
	res := &fakeLoanSubmitter{out: models.Loan{ID: 8}}
	f := NewForm[models.LoanRequest, models.Loan](
		func() models.LoanRequest { return models.LoanRequest{} },
		func(r models.LoanRequest) error { return r.Validate() },
	)

	f.BeginEdit(8, models.LoanRequest{BookID: 2, UserID: 3})
	loan, err := f.Submit(ctx, res)
	require.NoError(t, err)
	assert.EqualValues(t, 8, loan.ID)
	assert.EqualValues(t, 8, res.updatedID)

	sent, ok := res.updated.(models.LoanRequest)
	require.True(t, ok)
	assert.EqualValues(t, 2, sent.BookID)
	assert.EqualValues(t, 3, sent.UserID)
}

func TestFormReset(t *testing.T) {
	f := newUserForm()
	f.BeginEdit(3, models.User{ID: 3, Nome: "C"})
	f.Reset()
	assert.Zero(t, f.EditingID())
	assert.Equal(t, models.User{Role: models.RoleMember}, f.Buffer())
}
