package domain

import "context"

// AccountRepository defines the interface for account storage operations.
// The core runs against an in-memory implementation; a durable backend can
// be swapped in behind this interface without touching the ledger.
type AccountRepository interface {
	// Add registers a new account under its number
	Add(ctx context.Context, account *Account) error

	// Get retrieves an account by number, returning ErrAccountNotFound when
	// no account carries it
	Get(ctx context.Context, number string) (*Account, error)

	// List retrieves all accounts in insertion order
	List(ctx context.Context) ([]*Account, error)
}
