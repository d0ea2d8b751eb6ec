package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mribeiro/bibliocli/internal/client/models"
)

// ShowBooks lists the catalog. Subcommands adjust the client-held cursor
// before the reload fires:
//
//	books              current page
//	books search [t]   set the title filter (empty clears it)
//	books page <n>     jump to page n (zero-based)
//	books size <n>     change the page size
//
// Search and size changes reset the cursor to the first page.
func (a *App) ShowBooks(ctx context.Context, args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "search":
			term := strings.Join(args[1:], " ")
			a.books.SetSearch(term)
		case "page":
			if len(args) < 2 {
				fmt.Fprintln(a.out, "Usage: books page <n>")
				return nil
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Fprintln(a.out, "Usage: books page <n>")
				return nil
			}
			a.books.SetPage(n)
		case "size":
			if len(args) < 2 {
				fmt.Fprintln(a.out, "Usage: books size <n>")
				return nil
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Fprintln(a.out, "Usage: books size <n>")
				return nil
			}
			a.books.SetPageSize(n)
		default:
			fmt.Fprintln(a.out, "Usage: books [search <title> | page <n> | size <n>]")
			return nil
		}
	}

	if err := a.books.Reload(ctx); err != nil {
		a.printErr(err)
		return err
	}

	renderBooks(a.out, a.books.Items())
	if a.books.TotalPages() > 1 {
		fmt.Fprintf(a.out, "(page %d of %d, %d books total)\n",
			a.books.Page()+1, a.books.TotalPages(), a.books.Total())
	}
	return nil
}

// promptBook collects book fields, offering the buffer's current values
// as defaults so edits can keep what is already there.
func (a *App) promptBook(buf models.Book) (models.Book, error) {
	var err error
	if buf.Titulo, err = GetTextDefault(a.reader, "Title", buf.Titulo, a.out); err != nil {
		return buf, err
	}
	if buf.Autor, err = GetTextDefault(a.reader, "Author", buf.Autor, a.out); err != nil {
		return buf, err
	}
	year, err := GetIntDefault(a.reader, "Publication year", int64(buf.AnoPublicacao), a.out)
	if err != nil {
		return buf, err
	}
	buf.AnoPublicacao = int(year)
	if buf.ISBN, err = GetTextDefault(a.reader, "ISBN", buf.ISBN, a.out); err != nil {
		return buf, err
	}
	total, err := GetIntDefault(a.reader, "Total copies", int64(buf.QuantidadeTotal), a.out)
	if err != nil {
		return buf, err
	}
	buf.QuantidadeTotal = int(total)
	return buf, nil
}

// AddBook creates a new title. Available copies start equal to the total:
// the server maintains the count from there on.
func (a *App) AddBook(ctx context.Context) error {
	// a failed edit leaves the form in edit mode; adds always create
	a.bookForm.Reset()
	buf, err := a.promptBook(a.bookForm.Buffer())
	if err != nil {
		return err
	}
	buf.QuantidadeDisponivel = buf.QuantidadeTotal
	a.bookForm.SetBuffer(buf)

	saved, err := a.bookForm.Submit(ctx, a.api.Books())
	if err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintf(a.out, "Book saved (id %d).\n", saved.ID)
	return a.ShowBooks(ctx, nil)
}

// EditBook pre-populates the form from the server's copy of the selected
// book, prompts for changes, and submits an update.
func (a *App) EditBook(ctx context.Context) error {
	id, err := GetInt(a.reader, "Enter book id to edit", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	book, err := a.api.Books().Get(ctx, id)
	if err != nil {
		a.printErr(err)
		return err
	}

	a.bookForm.BeginEdit(id, book)
	buf, err := a.promptBook(a.bookForm.Buffer())
	if err != nil {
		return err
	}
	a.bookForm.SetBuffer(buf)

	if _, err := a.bookForm.Submit(ctx, a.api.Books()); err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintln(a.out, "Book updated.")
	return a.ShowBooks(ctx, nil)
}

// DeleteBook removes a title after explicit confirmation. A book with
// active loans is rejected by the backend with a conflict; the list is
// left untouched and the backend's message shown as-is.
func (a *App) DeleteBook(ctx context.Context) error {
	id, err := GetInt(a.reader, "Enter book id to delete", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	if !GetConfirmation(a.reader, fmt.Sprintf("Delete book %d?", id), a.out) {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.api.Books().Remove(ctx, id); err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintln(a.out, "Book deleted.")
	return a.ShowBooks(ctx, nil)
}
