package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mribeiro/bibliocli/internal/client/models"
)

// Books is the catalog collection. Supported list filters: "titulo"
// (free-text search), "page", "size".
func (c *Client) Books() *Resource[models.Book] {
	return NewResource[models.Book](c, "/books")
}

// Users is the member collection.
func (c *Client) Users() *Resource[models.User] {
	return NewResource[models.User](c, "/users")
}

// Loans wraps the loan collection with its two domain transitions.
// Supported list filters: "userId", "returned".
func (c *Client) Loans() *LoansResource {
	return &LoansResource{NewResource[models.Loan](c, "/loans")}
}

// LoansResource adds borrow/return on top of the generic CRUD surface.
type LoansResource struct {
	*Resource[models.Loan]
}

// Borrow creates a loan. Eligibility (available copies, member standing)
// is checked server-side; an ineligible request comes back as a
// validation or conflict error with the backend's explanation.
func (l *LoansResource) Borrow(ctx context.Context, req models.LoanRequest) (models.Loan, error) {
	return l.Action(ctx, http.MethodPost, "/borrow", req)
}

// Return marks a loan as returned. The server sets returnDate and
// restores the book's available count.
func (l *LoansResource) Return(ctx context.Context, id int64) (models.Loan, error) {
	return l.Action(ctx, http.MethodPut, fmt.Sprintf("/%d/return", id), nil)
}
