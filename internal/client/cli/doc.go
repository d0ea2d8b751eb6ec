// Package cli implements the interactive shell of the library client: a
// read-eval-print loop dispatching to per-collection command handlers
// (books, members, loans) plus login and session management. Handlers
// drive the generic collection view-models in internal/client/view and
// talk to the backend only through the API client.
package cli
