// bookimport bulk-loads a book catalog from a CSV file through the same
// API the interactive client uses. It reuses the session persisted by the
// client, so sign in there first.
//
// CSV columns: titulo, autor, anoPublicacao, isbn, quantidadeTotal.
// A header row is detected and skipped.
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mribeiro/bibliocli/internal/client/api"
	"github.com/mribeiro/bibliocli/internal/client/config"
	"github.com/mribeiro/bibliocli/internal/client/models"
	"github.com/mribeiro/bibliocli/internal/client/session"
	"github.com/mribeiro/bibliocli/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	defaults := &config.Config{}
	defaults.LoadDefaults()

	var (
		serverAddr string
		sessionDB  string
		timeout    time.Duration
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:           "bookimport <file.csv>",
		Short:         "Bulk-import books into the library catalog",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), cmd.OutOrStdout(), serverAddr, sessionDB, timeout, dryRun, args[0])
		},
	}

	cmd.Flags().StringVarP(&serverAddr, "server", "a", defaults.ServerEndpointAddr, "API base address")
	cmd.Flags().StringVarP(&sessionDB, "session-db", "d", defaults.SessionDBPath, "path to the client's session database")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", defaults.RequestTimeout, "per-request timeout")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and validate only, create nothing")
	return cmd
}

func runImport(ctx context.Context, out io.Writer, serverAddr, sessionDB string, timeout time.Duration, dryRun bool, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.NewDiscard()

	store, err := session.OpenSQLite(ctx, sessionDB)
	if err != nil {
		return fmt.Errorf("opening session storage: %w", err)
	}
	defer store.Close()

	sessions := session.NewService(store, logger)
	if err := sessions.Load(ctx); err != nil {
		return fmt.Errorf("restoring session: %w", err)
	}
	if !sessions.IsLoggedIn() {
		return fmt.Errorf("not logged in: run the interactive client and 'login' first")
	}

	books, parseErrs, err := readCatalog(path)
	if err != nil {
		return err
	}
	for _, pe := range parseErrs {
		fmt.Fprintln(out, pe)
	}

	if dryRun {
		fmt.Fprintf(out, "Dry run: %d books parsed, %d rows rejected.\n", len(books), len(parseErrs))
		return nil
	}

	client := api.New(serverAddr, timeout, sessions, logger)
	resource := client.Books()

	imported, failed := 0, len(parseErrs)
	for _, b := range books {
		saved, err := resource.Create(ctx, b)
		if err != nil {
			fmt.Fprintf(out, "FAILED  %q: %s\n", b.Titulo, api.Message(err))
			failed++
			continue
		}
		fmt.Fprintf(out, "OK      %q (id %d)\n", saved.Titulo, saved.ID)
		imported++
	}

	fmt.Fprintf(out, "Imported %d books, %d failures.\n", imported, failed)
	if imported == 0 && failed > 0 {
		return fmt.Errorf("no books imported")
	}
	return nil
}

// readCatalog parses the CSV into validated books. Bad rows are reported
// and skipped; only an unreadable file aborts the import.
func readCatalog(path string) ([]models.Book, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 5
	r.TrimLeadingSpace = true

	var (
		books    []models.Book
		parseErr []string
		line     int
	)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			parseErr = append(parseErr, fmt.Sprintf("row %d: %v", line, err))
			continue
		}
		if line == 1 && strings.EqualFold(record[0], "titulo") {
			continue
		}

		book, err := parseRow(record)
		if err != nil {
			parseErr = append(parseErr, fmt.Sprintf("row %d: %v", line, err))
			continue
		}
		books = append(books, book)
	}
	return books, parseErr, nil
}

func parseRow(record []string) (models.Book, error) {
	year, err := strconv.Atoi(strings.TrimSpace(record[2]))
	if err != nil {
		return models.Book{}, fmt.Errorf("bad anoPublicacao %q", record[2])
	}
	total, err := strconv.Atoi(strings.TrimSpace(record[4]))
	if err != nil {
		return models.Book{}, fmt.Errorf("bad quantidadeTotal %q", record[4])
	}

	b := models.Book{
		Titulo:               strings.TrimSpace(record[0]),
		Autor:                strings.TrimSpace(record[1]),
		AnoPublicacao:        year,
		ISBN:                 strings.TrimSpace(record[3]),
		QuantidadeTotal:      total,
		QuantidadeDisponivel: total,
	}
	if err := b.Validate(); err != nil {
		return models.Book{}, err
	}
	return b, nil
}
