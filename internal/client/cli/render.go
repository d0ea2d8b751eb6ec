package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mribeiro/bibliocli/internal/client/models"
)

func renderBooks(w io.Writer, books []models.Book) {
	if len(books) == 0 {
		fmt.Fprintln(w, "No books found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tYEAR\tISBN\tAVAILABLE")
	for _, b := range books {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%d/%d\n",
			b.ID, b.Titulo, b.Autor, b.AnoPublicacao, b.ISBN, b.QuantidadeDisponivel, b.QuantidadeTotal)
	}
	tw.Flush()
}

func renderMembers(w io.Writer, users []models.User) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No members found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", u.ID, u.Nome, u.Email, u.Role)
	}
	tw.Flush()
}

func renderLoans(w io.Writer, loans []models.Loan) {
	if len(loans) == 0 {
		fmt.Fprintln(w, "No loans found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tBOOK\tMEMBER\tLOANED\tRETURNED")
	for _, l := range loans {
		returned := "open"
		if l.Returned {
			returned = "yes"
			if l.ReturnDate != nil {
				returned = *l.ReturnDate
			}
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", l.ID, l.Book.Titulo, l.User.Nome, l.LoanDate, returned)
	}
	tw.Flush()
}
