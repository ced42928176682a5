package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountKind represents the type of account in the system
type AccountKind string

const (
	AccountKindChecking AccountKind = "checking"
	AccountKindSavings  AccountKind = "savings"
)

// Display returns the human-readable form of the kind ("Checking", "Savings").
func (k AccountKind) Display() string {
	switch k {
	case AccountKindChecking:
		return "Checking"
	case AccountKindSavings:
		return "Savings"
	default:
		return string(k)
	}
}

// Account is a bank account holding a balance and an append-only transaction
// log. The kind tag selects the variant: checking accounts carry no extra
// rules, savings accounts add interest accrual and a monthly withdrawal
// limit. All mutation goes through Deposit, Withdraw, the transfer legs and
// ApplyInterest, which keep the invariant
//
//	balance == initial balance + sum of signed transaction amounts
//
// and never let the balance go negative.
type Account struct {
	number       string
	holder       string
	kind         AccountKind
	balance      decimal.Decimal
	transactions []Transaction
	createdAt    time.Time

	// savings-only state
	interestRate         decimal.Decimal
	withdrawalsThisMonth int
	lastObservedMonth    int

	now func() time.Time
}

func newAccount(kind AccountKind, holder string, initialBalance, interestRate decimal.Decimal) (*Account, error) {
	if initialBalance.IsNegative() {
		return nil, ErrInvalidAmount
	}

	a := &Account{
		number:       newAccountNumber(),
		holder:       holder,
		kind:         kind,
		balance:      initialBalance,
		createdAt:    time.Now(),
		interestRate: interestRate,
		now:          time.Now,
	}
	a.lastObservedMonth = monthIndex(a.now())

	if initialBalance.IsPositive() {
		a.record(KindDeposit, initialBalance, "Initial deposit")
	}

	return a, nil
}

// NewCheckingAccount creates a checking account. The initial balance must be
// non-negative; a positive initial balance is recorded as a deposit.
func NewCheckingAccount(holder string, initialBalance decimal.Decimal) (*Account, error) {
	return newAccount(AccountKindChecking, holder, initialBalance, decimal.Zero)
}

// newAccountNumber returns an opaque 8-character account number.
func newAccountNumber() string {
	return uuid.NewString()[:8]
}

// monthIndex collapses a point in time to a comparable calendar-month index.
func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month())
}

// Number returns the account number.
func (a *Account) Number() string { return a.number }

// Holder returns the account holder's name.
func (a *Account) Holder() string { return a.holder }

// Kind returns the account kind tag.
func (a *Account) Kind() AccountKind { return a.kind }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal { return a.balance }

// CreatedAt returns the account creation time.
func (a *Account) CreatedAt() time.Time { return a.createdAt }

// Transactions returns a snapshot copy of the transaction log in
// chronological (insertion) order. Callers cannot mutate the live log.
func (a *Account) Transactions() []Transaction {
	out := make([]Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// Deposit credits the account. The amount must be positive; there is no
// upper bound on the balance.
func (a *Account) Deposit(amount decimal.Decimal, description string) error {
	return a.credit(KindDeposit, amount, description)
}

// Withdraw debits the account. The amount must be positive and no greater
// than the current balance. Savings accounts additionally enforce the
// monthly withdrawal limit and count the withdrawal against it only on
// success. On any failure nothing is mutated.
func (a *Account) Withdraw(amount decimal.Decimal, description string) error {
	return a.debit(KindWithdrawal, amount, description)
}

// TransferOut debits the account for the outgoing leg of a transfer,
// applying the same rules as Withdraw.
func (a *Account) TransferOut(amount decimal.Decimal, counterparty string) error {
	return a.debit(KindTransferOut, amount, "Transfer to account "+counterparty)
}

// TransferIn credits the account for the incoming leg of a transfer. The
// caller must have validated the amount; an incoming leg cannot fail, which
// is what makes the two-leg transfer atomic once the outgoing leg succeeds.
func (a *Account) TransferIn(amount decimal.Decimal, counterparty string) {
	a.balance = a.balance.Add(amount)
	a.record(KindTransferIn, amount, "Transfer from account "+counterparty)
}

func (a *Account) credit(kind TransactionKind, amount decimal.Decimal, description string) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	a.record(kind, amount, description)
	return nil
}

func (a *Account) debit(kind TransactionKind, amount decimal.Decimal, description string) error {
	if a.kind == AccountKindSavings {
		// Limit check runs before the base withdrawal checks, matching the
		// account's externally observable failure order.
		a.rollOverMonth()
		if a.withdrawalsThisMonth >= SavingsWithdrawalLimit {
			return ErrMonthlyWithdrawalLimitExceeded
		}
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}

	a.balance = a.balance.Sub(amount)
	a.record(kind, amount, description)
	if a.kind == AccountKindSavings {
		a.withdrawalsThisMonth++
	}
	return nil
}

// record appends a transaction without touching the balance.
func (a *Account) record(kind TransactionKind, amount decimal.Decimal, description string) {
	a.transactions = append(a.transactions, NewTransaction(kind, amount, description))
}

// Summary returns a human-readable multi-line description of the account.
// Savings accounts include their rate and withdrawal allowance.
func (a *Account) Summary() string {
	lines := []string{
		fmt.Sprintf("Account Type: %s", a.kind.Display()),
		fmt.Sprintf("Account Number: %s", a.number),
		fmt.Sprintf("Account Holder: %s", a.holder),
		fmt.Sprintf("Current Balance: %s", a.balance.StringFixed(2)),
		fmt.Sprintf("Created On: %s", a.createdAt.Format("2006-01-02 15:04:05")),
		fmt.Sprintf("Number of Transactions: %d", len(a.transactions)),
	}
	if a.kind == AccountKindSavings {
		lines = append(lines,
			fmt.Sprintf("Interest Rate: %s%%", a.interestRate.Mul(decimal.NewFromInt(100)).StringFixed(2)),
			fmt.Sprintf("Monthly Withdrawal Limit: %d", SavingsWithdrawalLimit),
			fmt.Sprintf("Withdrawals Remaining This Month: %d", a.WithdrawalsRemaining()),
		)
	}
	return strings.Join(lines, "\n")
}
