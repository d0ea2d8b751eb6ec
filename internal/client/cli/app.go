package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mribeiro/bibliocli/internal/client/api"
	"github.com/mribeiro/bibliocli/internal/client/config"
	"github.com/mribeiro/bibliocli/internal/client/models"
	"github.com/mribeiro/bibliocli/internal/client/session"
	"github.com/mribeiro/bibliocli/internal/client/view"
	"github.com/mribeiro/bibliocli/internal/logging"
)

// App wires the session, the API client, and one view-model per remote
// collection. All handlers run on the REPL goroutine; network calls block
// with the configured per-request timeout.
type App struct {
	config  *config.Config
	api     *api.Client
	session *session.Service
	store   *session.SQLiteStore
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer

	books   *view.Collection[models.Book]
	members *view.Collection[models.User]
	loans   *view.Collection[models.Loan]

	bookForm   *view.Form[models.Book, models.Book]
	memberForm *view.Form[models.User, models.User]
	loanForm   *view.Form[models.LoanRequest, models.Loan]
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	store, err := session.OpenSQLite(ctx, c.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("initializing session storage: %w", err)
	}

	sessions := session.NewService(store, logger)
	if err := sessions.Load(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("restoring session: %w", err)
	}

	apiClient := api.New(c.ServerEndpointAddr, c.RequestTimeout, sessions, logger)

	a := &App{
		config:  c,
		api:     apiClient,
		session: sessions,
		store:   store,
		log:     logger,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
	a.initViews()
	return a, nil
}

func (a *App) initViews() {
	a.books = view.NewCollection[models.Book](a.api.Books(),
		view.WithSearch[models.Book]("titulo"),
		view.WithPaging[models.Book](view.DefaultPageSize),
	)
	a.members = view.NewCollection[models.User](a.api.Users())
	a.loans = view.NewCollection[models.Loan](a.api.Loans())

	a.bookForm = view.NewForm[models.Book, models.Book](
		func() models.Book { return models.Book{QuantidadeTotal: 1} },
		models.Book.Validate,
	)
	a.memberForm = view.NewForm[models.User, models.User](
		func() models.User { return models.User{Role: models.RoleMember} },
		models.User.Validate,
	)
	a.loanForm = view.NewForm[models.LoanRequest, models.Loan](
		func() models.LoanRequest { return models.LoanRequest{} },
		models.LoanRequest.Validate,
	)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

func (a *App) isLibrarian() bool {
	s := a.session.Current()
	return s != nil && s.IsLibrarian()
}

// status renders the prompt suffix: the logged-in user and role, if any.
func (a *App) status() string {
	s := a.session.Current()
	if s == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", s.Nome, s.Role)
}

// printErr surfaces a classified error to the user, with a login hint on
// authorization failures (the session is not auto-cleared; the token may
// simply have expired).
func (a *App) printErr(err error) {
	fmt.Fprintln(a.out, "Error:", api.Message(err))
	if errors.Is(err, api.ErrUnauthorized) && a.isLoggedIn() {
		fmt.Fprintln(a.out, "Your session may have expired. Use 'login' to sign in again.")
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.store.Close()
	fmt.Fprintln(a.out, "Library client (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader, a.out)
}
