package cli

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/mribeiro/bibliocli/internal/client/models"
)

// ShowLoans lists loans. Subcommands adjust the opaque filters:
//
//	loans               current filter
//	loans all           clear filters
//	loans open          only unreturned loans
//	loans returned      only returned loans
//	loans member <id>   one member's loans
func (a *App) ShowLoans(ctx context.Context, args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "all":
			a.loans.SetFilter("returned", "")
			a.loans.SetFilter("userId", "")
		case "open":
			a.loans.SetFilter("returned", "false")
		case "returned":
			a.loans.SetFilter("returned", "true")
		case "member":
			if len(args) < 2 {
				fmt.Fprintln(a.out, "Usage: loans member <id>")
				return nil
			}
			a.loans.SetFilter("userId", args[1])
		default:
			fmt.Fprintln(a.out, "Usage: loans [all | open | returned | member <id>]")
			return nil
		}
	}

	if err := a.loans.Reload(ctx); err != nil {
		a.printErr(err)
		return err
	}
	renderLoans(a.out, a.loans.Items())
	return nil
}

// borrowPageSize is the chunk size used to walk the catalog when
// collecting borrow candidates.
const borrowPageSize = 100

// Borrow creates a loan. Only books with available copies are offered:
// a book at zero availability is excluded from the selection, matching
// the rule the backend enforces anyway. The whole catalog is walked page
// by page so no candidate drops out on large collections.
func (a *App) Borrow(ctx context.Context) error {
	var catalog []models.Book
	for page := 0; ; page++ {
		filters := url.Values{}
		filters.Set("page", strconv.Itoa(page))
		filters.Set("size", strconv.Itoa(borrowPageSize))
		booksPage, err := a.api.Books().List(ctx, filters)
		if err != nil {
			a.printErr(err)
			return err
		}
		catalog = append(catalog, booksPage.Content...)
		if !booksPage.Paged || page+1 >= booksPage.TotalPages {
			break
		}
	}

	membersPage, err := a.api.Users().List(ctx, nil)
	if err != nil {
		a.printErr(err)
		return err
	}

	available := make([]models.Book, 0, len(catalog))
	for _, b := range catalog {
		if b.Available() {
			available = append(available, b)
		}
	}
	if len(available) == 0 {
		fmt.Fprintln(a.out, "No books with available copies.")
		return nil
	}

	fmt.Fprintln(a.out, "Select a book:")
	renderBooks(a.out, available)
	fmt.Fprintln(a.out, "Select a member:")
	renderMembers(a.out, membersPage.Content)

	bookID, err := GetInt(a.reader, "Enter book id", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	userID, err := GetInt(a.reader, "Enter member id", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	req := models.LoanRequest{BookID: bookID, UserID: userID}
	if err := req.Validate(); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	loan, err := a.api.Loans().Borrow(ctx, req)
	if err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintf(a.out, "Loan created (id %d).\n", loan.ID)
	return a.ShowLoans(ctx, nil)
}

// ReturnLoan marks a loan returned after explicit confirmation. The
// server sets the return date and restores availability.
func (a *App) ReturnLoan(ctx context.Context) error {
	id, err := GetInt(a.reader, "Enter loan id to return", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	if !GetConfirmation(a.reader, fmt.Sprintf("Confirm return of loan %d?", id), a.out) {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if _, err := a.api.Loans().Return(ctx, id); err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintln(a.out, "Return registered.")
	return a.ShowLoans(ctx, nil)
}

// EditLoan reassigns a loan's book and member (administrative edit).
func (a *App) EditLoan(ctx context.Context) error {
	a.loanForm.Reset()
	id, err := GetInt(a.reader, "Enter loan id to edit", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	loan, err := a.api.Loans().Get(ctx, id)
	if err != nil {
		a.printErr(err)
		return err
	}

	a.loanForm.BeginEdit(id, models.LoanRequest{BookID: loan.Book.ID, UserID: loan.User.ID})
	buf := a.loanForm.Buffer()
	if buf.BookID, err = GetIntDefault(a.reader, "Book id", buf.BookID, a.out); err != nil {
		return err
	}
	if buf.UserID, err = GetIntDefault(a.reader, "Member id", buf.UserID, a.out); err != nil {
		return err
	}
	a.loanForm.SetBuffer(buf)

	if _, err := a.loanForm.Submit(ctx, a.api.Loans()); err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintln(a.out, "Loan updated.")
	return a.ShowLoans(ctx, nil)
}

// DeleteLoan removes a loan record after explicit confirmation. The
// backend only permits this while the loan's state allows it; its
// rejection is surfaced verbatim.
func (a *App) DeleteLoan(ctx context.Context) error {
	id, err := GetInt(a.reader, "Enter loan id to delete", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	if !GetConfirmation(a.reader, fmt.Sprintf("Delete loan %d?", id), a.out) {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.api.Loans().Remove(ctx, id); err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintln(a.out, "Loan deleted.")
	return a.ShowLoans(ctx, nil)
}
