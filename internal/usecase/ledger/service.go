package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"bankcore/internal/domain"
)

// CreateAccountInput represents the input for opening an account
type CreateAccountInput struct {
	Kind           domain.AccountKind
	Holder         string
	InitialBalance decimal.Decimal
	InterestRate   decimal.Decimal // savings accounts only
}

// Statistics holds account counts and aggregate balances partitioned by
// kind, computed fresh on every call.
type Statistics struct {
	TotalAccounts    int
	CheckingAccounts int
	SavingsAccounts  int
	TotalBalance     decimal.Decimal
	CheckingBalance  decimal.Decimal
	SavingsBalance   decimal.Decimal
}

// TransferResult reports a transfer outcome as a value rather than an
// error: either both legs were recorded or neither was, and a failed
// transfer carries a human-readable reason.
type TransferResult struct {
	Transferred bool
	Reason      string
}

// Service is the ledger: it owns the set of accounts and every
// cross-account operation. A single mutex serializes all operations, which
// keeps the two-leg transfer atomic without per-account locking.
type Service struct {
	mu       sync.Mutex
	accounts domain.AccountRepository
}

// NewService creates a new ledger Service instance
func NewService(accounts domain.AccountRepository) *Service {
	return &Service{accounts: accounts}
}

// CreateAccount constructs the account variant matching input.Kind and
// registers it. Unknown kinds fail with ErrInvalidAccountKind; constructor
// errors (negative balance, out-of-range rate) propagate unchanged.
func (s *Service) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		account *domain.Account
		err     error
	)
	switch input.Kind {
	case domain.AccountKindChecking:
		account, err = domain.NewCheckingAccount(input.Holder, input.InitialBalance)
	case domain.AccountKindSavings:
		account, err = domain.NewSavingsAccount(input.Holder, input.InitialBalance, input.InterestRate)
	default:
		return nil, domain.ErrInvalidAccountKind
	}
	if err != nil {
		return nil, err
	}

	if err := s.accounts.Add(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to register account: %w", err)
	}
	return account, nil
}

// GetAccount retrieves an account by number. A missing number is reported
// as domain.ErrAccountNotFound, never a panic.
func (s *Service) GetAccount(ctx context.Context, number string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts.Get(ctx, number)
}

// ListAccounts returns all accounts in insertion order.
func (s *Service) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts.List(ctx)
}

// Deposit credits the named account.
func (s *Service) Deposit(ctx context.Context, number string, amount decimal.Decimal, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.accounts.Get(ctx, number)
	if err != nil {
		return err
	}
	return account.Deposit(amount, description)
}

// Withdraw debits the named account, enforcing the account's own rules.
func (s *Service) Withdraw(ctx context.Context, number string, amount decimal.Decimal, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.accounts.Get(ctx, number)
	if err != nil {
		return err
	}
	return account.Withdraw(amount, description)
}

// TransactionHistory returns a snapshot of the named account's transaction
// log in chronological order.
func (s *Service) TransactionHistory(ctx context.Context, number string) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.accounts.Get(ctx, number)
	if err != nil {
		return nil, err
	}
	return account.Transactions(), nil
}

// Transfer moves funds between two accounts. The operation is atomic: the
// outgoing leg is the only one that can fail, and if it does nothing is
// mutated on either side. Business failures are returned as a value with a
// reason, never as an error.
func (s *Service) Transfer(ctx context.Context, fromNumber, toNumber string, amount decimal.Decimal) TransferResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	from, err := s.accounts.Get(ctx, fromNumber)
	if err != nil {
		return TransferResult{Reason: fmt.Sprintf("source account %s not found", fromNumber)}
	}
	to, err := s.accounts.Get(ctx, toNumber)
	if err != nil {
		return TransferResult{Reason: fmt.Sprintf("destination account %s not found", toNumber)}
	}
	if fromNumber == toNumber {
		return TransferResult{Reason: domain.ErrSameAccount.Error()}
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return TransferResult{Reason: "transfer amount must be positive"}
	}
	// Fast-fail before any mutation; TransferOut below re-validates and
	// remains the single source of truth.
	if amount.GreaterThan(from.Balance()) {
		return TransferResult{Reason: fmt.Sprintf("insufficient funds: current balance is %s", from.Balance().StringFixed(2))}
	}

	if err := from.TransferOut(amount, to.Number()); err != nil {
		return TransferResult{Reason: err.Error()}
	}
	to.TransferIn(amount, from.Number())

	return TransferResult{Transferred: true}
}

// ApplyInterestToSavings accrues one month of interest on every savings
// account and returns the total applied. Checking accounts are skipped.
// The caller decides the accrual cadence; running the sweep twice in one
// cycle double-applies.
func (s *Service) ApplyInterestToSavings(ctx context.Context) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, account := range accounts {
		if account.Kind() != domain.AccountKindSavings {
			continue
		}
		total = total.Add(account.ApplyInterest())
	}
	return total, nil
}

// Statistics computes account counts and aggregate balances partitioned by
// kind. Pure read; nothing is cached.
func (s *Service) Statistics(ctx context.Context) (Statistics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return Statistics{}, err
	}

	stats := Statistics{
		TotalBalance:    decimal.Zero,
		CheckingBalance: decimal.Zero,
		SavingsBalance:  decimal.Zero,
	}
	for _, account := range accounts {
		stats.TotalAccounts++
		stats.TotalBalance = stats.TotalBalance.Add(account.Balance())
		switch account.Kind() {
		case domain.AccountKindChecking:
			stats.CheckingAccounts++
			stats.CheckingBalance = stats.CheckingBalance.Add(account.Balance())
		case domain.AccountKindSavings:
			stats.SavingsAccounts++
			stats.SavingsBalance = stats.SavingsBalance.Add(account.Balance())
		}
	}
	return stats, nil
}
