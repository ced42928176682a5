package domain

import "github.com/shopspring/decimal"

// SavingsWithdrawalLimit is the number of withdrawals a savings account
// allows per calendar month.
const SavingsWithdrawalLimit = 3

var (
	maxInterestRate = decimal.NewFromFloat(0.1)
	monthsPerYear   = decimal.NewFromInt(12)
)

// NewSavingsAccount creates a savings account with an annual interest rate.
// The rate must lie in [0, 0.1]; the initial balance must be non-negative.
func NewSavingsAccount(holder string, initialBalance, interestRate decimal.Decimal) (*Account, error) {
	if interestRate.IsNegative() || interestRate.GreaterThan(maxInterestRate) {
		return nil, ErrInvalidRate
	}
	return newAccount(AccountKindSavings, holder, initialBalance, interestRate)
}

// InterestRate returns the annual interest rate (zero for checking accounts).
func (a *Account) InterestRate() decimal.Decimal { return a.interestRate }

// WithdrawalsRemaining reports how many withdrawals the account may still
// make this calendar month, performing the lazy month rollover first. It is
// zero for checking accounts, which are not limited.
func (a *Account) WithdrawalsRemaining() int {
	if a.kind != AccountKindSavings {
		return 0
	}
	a.rollOverMonth()
	return SavingsWithdrawalLimit - a.withdrawalsThisMonth
}

// ApplyInterest accrues one month of interest, balance * rate / 12, credits
// it and appends an interest transaction when the amount is positive. It
// returns the amount applied (possibly zero) and does nothing on checking
// accounts. Calling it twice in the same cycle double-applies; the ledger is
// responsible for calling it at most once per accrual cycle.
func (a *Account) ApplyInterest() decimal.Decimal {
	if a.kind != AccountKindSavings {
		return decimal.Zero
	}

	interest := a.balance.Mul(a.interestRate).Div(monthsPerYear)
	if interest.IsPositive() {
		a.balance = a.balance.Add(interest)
		a.record(KindInterest, interest, "Monthly interest")
	}
	return interest
}

// rollOverMonth resets the withdrawal counter when the calendar month has
// changed since it was last observed. There is no background timer; the
// reset happens lazily on the next limit check or allowance query.
func (a *Account) rollOverMonth() {
	month := monthIndex(a.now())
	if month != a.lastObservedMonth {
		a.withdrawalsThisMonth = 0
		a.lastObservedMonth = month
	}
}
