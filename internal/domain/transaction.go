package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind represents the type of ledger event a transaction records
type TransactionKind string

const (
	KindDeposit     TransactionKind = "deposit"
	KindWithdrawal  TransactionKind = "withdrawal"
	KindTransferIn  TransactionKind = "transfer-in"
	KindTransferOut TransactionKind = "transfer-out"
	KindInterest    TransactionKind = "interest"
)

// Transaction is an immutable record of a single ledger event. It is owned
// exclusively by the account that appended it and never mutated after
// creation.
type Transaction struct {
	ID          uuid.UUID
	Kind        TransactionKind
	Amount      decimal.Decimal // ABSOLUTE VALUE (Always Positive)
	Description string
	Timestamp   time.Time
}

// NewTransaction builds a transaction with a fresh ID stamped at the current
// time. Amount sign rules are enforced by the account appending the record,
// not here.
func NewTransaction(kind TransactionKind, amount decimal.Decimal, description string) Transaction {
	return Transaction{
		ID:          uuid.New(),
		Kind:        kind,
		Amount:      amount,
		Description: description,
		Timestamp:   time.Now(),
	}
}

// SignedAmount returns the amount with the sign implied by the kind:
// negative for outgoing money (withdrawal and transfer-out legs), positive
// otherwise. An account balance always equals its initial balance plus the
// sum of signed amounts.
func (t Transaction) SignedAmount() decimal.Decimal {
	switch t.Kind {
	case KindWithdrawal, KindTransferOut:
		return t.Amount.Neg()
	default:
		return t.Amount
	}
}
