package models

import "fmt"

// Loan links a book to a member. Dates travel as LocalDate strings
// ("2006-01-02"); the client only displays them, so they are kept as-is.
type Loan struct {
	ID         int64   `json:"id,omitempty"`
	Book       Book    `json:"book"`
	User       User    `json:"user"`
	LoanDate   string  `json:"loanDate,omitempty"`
	ReturnDate *string `json:"returnDate,omitempty"`
	Returned   bool    `json:"returned"`
}

// LoanRequest is the payload for POST /loans/borrow and PUT /loans/{id}.
type LoanRequest struct {
	BookID int64 `json:"bookId"`
	UserID int64 `json:"userId"`
}

func (r LoanRequest) Validate() error {
	if r.BookID <= 0 {
		return fmt.Errorf("%w: bookId is required", ErrInvalid)
	}
	if r.UserID <= 0 {
		return fmt.Errorf("%w: userId is required", ErrInvalid)
	}
	return nil
}
