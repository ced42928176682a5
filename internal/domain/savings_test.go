package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSavingsAccount(t *testing.T) {
	account, err := NewSavingsAccount("Carol", decimal.NewFromInt(1000), decimal.NewFromFloat(0.02))

	require.NoError(t, err)
	assert.Equal(t, AccountKindSavings, account.Kind())
	assert.True(t, account.InterestRate().Equal(decimal.NewFromFloat(0.02)))
	assert.Equal(t, SavingsWithdrawalLimit, account.WithdrawalsRemaining())
}

func TestNewSavingsAccount_InvalidRate(t *testing.T) {
	for _, rate := range []decimal.Decimal{decimal.NewFromFloat(-0.01), decimal.NewFromFloat(0.11)} {
		account, err := NewSavingsAccount("Carol", decimal.NewFromInt(1000), rate)
		assert.ErrorIs(t, err, ErrInvalidRate)
		assert.Nil(t, account)
	}
}

func TestNewSavingsAccount_BoundaryRates(t *testing.T) {
	for _, rate := range []decimal.Decimal{decimal.Zero, decimal.NewFromFloat(0.1)} {
		account, err := NewSavingsAccount("Carol", decimal.NewFromInt(1000), rate)
		require.NoError(t, err)
		assert.True(t, account.InterestRate().Equal(rate))
	}
}

func TestSavings_WithdrawalLimit(t *testing.T) {
	account, err := NewSavingsAccount("Carol", decimal.NewFromInt(1000), decimal.NewFromFloat(0.02))
	require.NoError(t, err)

	for i := 0; i < SavingsWithdrawalLimit; i++ {
		require.NoError(t, account.Withdraw(decimal.NewFromInt(10), ""))
	}
	assert.Equal(t, 0, account.WithdrawalsRemaining())

	err = account.Withdraw(decimal.NewFromInt(10), "")

	assert.ErrorIs(t, err, ErrMonthlyWithdrawalLimitExceeded)
	assert.True(t, account.Balance().Equal(decimal.NewFromInt(970)))
	assert.Len(t, account.Transactions(), 1+SavingsWithdrawalLimit)
}

func TestSavings_LimitCheckedBeforeAmountValidation(t *testing.T) {
	account, err := NewSavingsAccount("Carol", decimal.NewFromInt(1000), decimal.NewFromFloat(0.02))
	require.NoError(t, err)

	for i := 0; i < SavingsWithdrawalLimit; i++ {
		require.NoError(t, account.Withdraw(decimal.NewFromInt(10), ""))
	}

	// Once the limit is hit every further withdrawal reports the limit,
	// even an otherwise invalid one.
	err = account.Withdraw(decimal.NewFromInt(-5), "")
	assert.ErrorIs(t, err, ErrMonthlyWithdrawalLimitExceeded)
}

func TestSavings_WithdrawalLimitResetsNextMonth(t *testing.T) {
	account, err := NewSavingsAccount("Carol", decimal.NewFromInt(1000), decimal.NewFromFloat(0.02))
	require.NoError(t, err)

	current := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	account.now = func() time.Time { return current }
	account.lastObservedMonth = monthIndex(current)

	for i := 0; i < SavingsWithdrawalLimit; i++ {
		require.NoError(t, account.Withdraw(decimal.NewFromInt(10), ""))
	}
	require.ErrorIs(t, account.Withdraw(decimal.NewFromInt(10), ""), ErrMonthlyWithdrawalLimitExceeded)

	current = time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, SavingsWithdrawalLimit, account.WithdrawalsRemaining())
	assert.NoError(t, account.Withdraw(decimal.NewFromInt(10), ""))
}

func TestSavings_LimitNotResetBySameMonthNextYear(t *testing.T) {
	account, err := NewSavingsAccount("Carol", decimal.NewFromInt(1000), decimal.NewFromFloat(0.02))
	require.NoError(t, err)

	current := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	account.now = func() time.Time { return current }
	account.lastObservedMonth = monthIndex(current)

	for i := 0; i < SavingsWithdrawalLimit; i++ {
		require.NoError(t, account.Withdraw(decimal.NewFromInt(10), ""))
	}

	// A year later is a different month index, so the counter resets.
	current = time.Date(2027, time.March, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, SavingsWithdrawalLimit, account.WithdrawalsRemaining())
}

func TestSavings_ApplyInterest(t *testing.T) {
	account, err := NewSavingsAccount("Carol", decimal.NewFromInt(1200), decimal.NewFromFloat(0.12))
	require.NoError(t, err)

	interest := account.ApplyInterest()

	assert.Equal(t, "12.00", interest.StringFixed(2))
	assert.Equal(t, "1212.00", account.Balance().StringFixed(2))

	transactions := account.Transactions()
	require.Len(t, transactions, 2)
	assert.Equal(t, KindInterest, transactions[1].Kind)
	assert.Equal(t, "Monthly interest", transactions[1].Description)
}

func TestSavings_ApplyInterest_ZeroBalance(t *testing.T) {
	account, err := NewSavingsAccount("Carol", decimal.Zero, decimal.NewFromFloat(0.05))
	require.NoError(t, err)

	interest := account.ApplyInterest()

	assert.True(t, interest.IsZero())
	assert.True(t, account.Balance().IsZero())
	assert.Empty(t, account.Transactions())
}

func TestSavings_ApplyInterest_ZeroRate(t *testing.T) {
	account, err := NewSavingsAccount("Carol", decimal.NewFromInt(1000), decimal.Zero)
	require.NoError(t, err)

	interest := account.ApplyInterest()

	assert.True(t, interest.IsZero())
	assert.True(t, account.Balance().Equal(decimal.NewFromInt(1000)))
	assert.Len(t, account.Transactions(), 1)
}

func TestChecking_ApplyInterestIsNoop(t *testing.T) {
	account, err := NewCheckingAccount("Alice", decimal.NewFromInt(1000))
	require.NoError(t, err)

	interest := account.ApplyInterest()

	assert.True(t, interest.IsZero())
	assert.True(t, account.Balance().Equal(decimal.NewFromInt(1000)))
}

func TestChecking_WithdrawalsRemainingIsZero(t *testing.T) {
	account, err := NewCheckingAccount("Alice", decimal.NewFromInt(1000))
	require.NoError(t, err)

	assert.Equal(t, 0, account.WithdrawalsRemaining())
}

func TestSavings_Summary(t *testing.T) {
	account, err := NewSavingsAccount("Carol", decimal.NewFromInt(1000), decimal.NewFromFloat(0.02))
	require.NoError(t, err)
	require.NoError(t, account.Withdraw(decimal.NewFromInt(10), ""))

	summary := account.Summary()

	assert.Contains(t, summary, "Account Type: Savings")
	assert.Contains(t, summary, "Interest Rate: 2.00%")
	assert.Contains(t, summary, "Monthly Withdrawal Limit: 3")
	assert.Contains(t, summary, "Withdrawals Remaining This Month: 2")
}
