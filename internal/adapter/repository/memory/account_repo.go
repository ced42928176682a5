package memory

import (
	"context"
	"fmt"

	"bankcore/internal/domain"
)

// accountRepository implements domain.AccountRepository with an in-process
// map. A separate order slice keeps List deterministic (insertion order);
// every account reachable by iteration is reachable by lookup and vice
// versa.
type accountRepository struct {
	accounts map[string]*domain.Account
	order    []string
}

// NewAccountRepository creates an empty in-memory account repository
func NewAccountRepository() domain.AccountRepository {
	return &accountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

// Add registers a new account under its number
func (r *accountRepository) Add(_ context.Context, account *domain.Account) error {
	number := account.Number()
	if _, exists := r.accounts[number]; exists {
		return fmt.Errorf("account %s already registered", number)
	}
	r.accounts[number] = account
	r.order = append(r.order, number)
	return nil
}

// Get retrieves an account by number
func (r *accountRepository) Get(_ context.Context, number string) (*domain.Account, error) {
	account, ok := r.accounts[number]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

// List retrieves all accounts in insertion order
func (r *accountRepository) List(_ context.Context) ([]*domain.Account, error) {
	out := make([]*domain.Account, 0, len(r.order))
	for _, number := range r.order {
		out = append(out, r.accounts[number])
	}
	return out, nil
}
