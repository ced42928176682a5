package domain

import "errors"

// Domain errors for business-rule violations. Construction and
// single-account operations return these unchanged; the ledger's transfer
// converts them into a value-typed result instead.
var (
	// ErrInvalidAmount is returned when an amount is zero or negative where
	// a positive amount is required, or when an initial balance is negative.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds is returned when a withdrawal or transfer exceeds
	// the current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrMonthlyWithdrawalLimitExceeded is returned when a savings account
	// has already used its monthly withdrawal allowance.
	ErrMonthlyWithdrawalLimitExceeded = errors.New("monthly withdrawal limit reached")

	// ErrInvalidAccountKind is returned when account creation names a kind
	// other than checking or savings.
	ErrInvalidAccountKind = errors.New("invalid account kind: choose 'checking' or 'savings'")

	// ErrAccountNotFound is returned when an account number has no
	// corresponding account.
	ErrAccountNotFound = errors.New("account not found")

	// ErrSameAccount is returned when a transfer names the same account as
	// source and destination.
	ErrSameAccount = errors.New("cannot transfer to the same account")

	// ErrInvalidRate is returned when a savings interest rate falls outside
	// the allowed range.
	ErrInvalidRate = errors.New("interest rate must be between 0 and 0.1")
)
