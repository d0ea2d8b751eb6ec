package view

import "context"

// Submitter is the mutation side of a remote resource; api.Resource
// satisfies it.
type Submitter[E any] interface {
	Create(ctx context.Context, payload any) (E, error)
	Update(ctx context.Context, id int64, payload any) (E, error)
}

// Form manages a single in-progress create-or-edit buffer, independent of
// the list. P is the payload the form edits, E the entity the server
// returns; for books and members they coincide, while a loan edit buffers
// a LoanRequest and gets a Loan back.
//
// editingID == 0 means create mode; otherwise edit mode, pre-populated
// from the selected entity. Sensitive fields (a member's password) must
// never be copied into the buffer on edit: the server never returns
// them, and BeginEdit takes the entity as the caller read it from the
// server, so they stay blank by construction.
type Form[P, E any] struct {
	buf       P
	editingID int64
	defaults  func() P
	validate  func(P) error
}

// NewForm builds a form. defaults produces a fresh buffer (it must not be
// nil); validate runs locally before any network call and may be nil.
func NewForm[P, E any](defaults func() P, validate func(P) error) *Form[P, E] {
	return &Form[P, E]{buf: defaults(), defaults: defaults, validate: validate}
}

// Buffer returns the current field values.
func (f *Form[P, E]) Buffer() P { return f.buf }

// SetBuffer replaces the field values, e.g. after prompting the user.
func (f *Form[P, E]) SetBuffer(buf P) { f.buf = buf }

// EditingID is 0 in create mode, the target entity's id in edit mode.
func (f *Form[P, E]) EditingID() int64 { return f.editingID }

func (f *Form[P, E]) IsEdit() bool { return f.editingID != 0 }

// BeginEdit switches to edit mode with the entity's editable fields as
// the buffer.
func (f *Form[P, E]) BeginEdit(id int64, buf P) {
	f.editingID = id
	f.buf = buf
}

// Reset clears the buffer back to defaults and leaves edit mode. Called
// after a successful submit or an explicit cancel.
func (f *Form[P, E]) Reset() {
	f.buf = f.defaults()
	f.editingID = 0
}

// Submit validates the buffer locally, then creates or updates through
// res depending on the mode. Success resets the form and returns the
// server's copy; failure returns the error with the buffer intact so the
// user can correct and resubmit.
func (f *Form[P, E]) Submit(ctx context.Context, res Submitter[E]) (E, error) {
	var zero E
	if f.validate != nil {
		if err := f.validate(f.buf); err != nil {
			return zero, err
		}
	}

	var (
		saved E
		err   error
	)
	if f.editingID == 0 {
		saved, err = res.Create(ctx, f.buf)
	} else {
		saved, err = res.Update(ctx, f.editingID, f.buf)
	}
	if err != nil {
		return zero, err
	}

	f.Reset()
	return saved, nil
}
