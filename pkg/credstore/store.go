// Package credstore persists the single bearer credential used by the admin
// console client. It is the module's analogue of the browser's well-known
// localStorage token slot: one opaque string, durable across restarts when
// the SQLite backend is used, never shared between store instances.
package credstore

import "context"

// Store holds at most one opaque bearer credential.
//
// Get returns the empty string when no credential is stored. Callers treat
// any Get failure the same as an absent credential; Set and Clear failures
// are logged by callers but never surfaced to API consumers.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, credential string) error
	Clear(ctx context.Context) error
}
