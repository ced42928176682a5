package cli

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bankcore/internal/domain"
	"bankcore/internal/usecase/ledger"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "£1234.50", money(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "£0.00", money(decimal.Zero))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "2.00%", percent(decimal.NewFromFloat(0.02)))
	assert.Equal(t, "12.00%", percent(decimal.NewFromFloat(0.12)))
}

func TestKindLabel(t *testing.T) {
	assert.Equal(t, "Deposit", kindLabel(domain.KindDeposit))
	assert.Equal(t, "Withdrawal", kindLabel(domain.KindWithdrawal))
	assert.Equal(t, "Transfer In", kindLabel(domain.KindTransferIn))
	assert.Equal(t, "Transfer Out", kindLabel(domain.KindTransferOut))
	assert.Equal(t, "Interest", kindLabel(domain.KindInterest))
}

func TestTransactionLine(t *testing.T) {
	tx := domain.NewTransaction(domain.KindDeposit, decimal.NewFromInt(50), "Salary")

	line := transactionLine(tx)

	assert.Contains(t, line, "Deposit: £50.00")
	assert.Contains(t, line, "Salary")
	assert.Contains(t, line, tx.Timestamp.Format("2006-01-02"))
}

func TestTransactionLine_NoDescription(t *testing.T) {
	tx := domain.NewTransaction(domain.KindWithdrawal, decimal.NewFromInt(20), "")

	line := transactionLine(tx)

	assert.Contains(t, line, "Withdrawal: £20.00")
	assert.NotContains(t, line, "| |")
}

func TestRenderHistory_Empty(t *testing.T) {
	assert.Equal(t, "No transactions to display\n", renderHistory(nil))
}

func TestRenderAccounts(t *testing.T) {
	account, err := domain.NewCheckingAccount("Alice", decimal.NewFromInt(100))
	require.NoError(t, err)

	out := renderAccounts("Test Bank", []*domain.Account{account})

	assert.Contains(t, out, "Test Bank Accounts")
	assert.Contains(t, out, account.Number())
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "£100.00")
}

func TestRenderStatistics(t *testing.T) {
	stats := ledger.Statistics{
		TotalAccounts:    2,
		CheckingAccounts: 1,
		SavingsAccounts:  1,
		TotalBalance:     decimal.NewFromInt(1500),
		CheckingBalance:  decimal.NewFromInt(300),
		SavingsBalance:   decimal.NewFromInt(1200),
	}

	out := renderStatistics("Test Bank", stats)

	assert.Contains(t, out, "Total accounts: 2")
	assert.Contains(t, out, "Total balance across all accounts: £1500.00")
	assert.Contains(t, out, "Total balance in checking accounts: £300.00")
	assert.Contains(t, out, "Total balance in savings accounts: £1200.00")
}
