package cli

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"bankcore/internal/domain"
	"bankcore/internal/usecase/ledger"
)

// Display formatting lives in the shell: the core reports plain numbers and
// the shell decides currency symbol, padding and percent rendering.

func money(amount decimal.Decimal) string {
	return "£" + amount.StringFixed(2)
}

func percent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

func kindLabel(kind domain.TransactionKind) string {
	switch kind {
	case domain.KindDeposit:
		return "Deposit"
	case domain.KindWithdrawal:
		return "Withdrawal"
	case domain.KindTransferIn:
		return "Transfer In"
	case domain.KindTransferOut:
		return "Transfer Out"
	case domain.KindInterest:
		return "Interest"
	default:
		return string(kind)
	}
}

func transactionLine(t domain.Transaction) string {
	line := fmt.Sprintf("%s | %s: %s",
		t.Timestamp.Format("2006-01-02 15:04:05"), kindLabel(t.Kind), money(t.Amount))
	if t.Description != "" {
		line += " | " + t.Description
	}
	return line
}

func accountLine(a *domain.Account) string {
	return fmt.Sprintf("%s | %-8s | %-20s | %s",
		a.Number(), a.Kind().Display(), a.Holder(), money(a.Balance()))
}

func renderAccounts(bankName string, accounts []*domain.Account) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n===== %s Accounts =====\n", bankName)
	b.WriteString("Account Number | Type     | Name                 | Balance\n")
	b.WriteString("---------------|----------|----------------------|------------\n")
	for _, a := range accounts {
		b.WriteString(accountLine(a))
		b.WriteString("\n")
	}
	b.WriteString("==============================\n")
	return b.String()
}

func renderHistory(transactions []domain.Transaction) string {
	if len(transactions) == 0 {
		return "No transactions to display\n"
	}
	var b strings.Builder
	b.WriteString("\n===== Transaction History =====\n")
	for _, t := range transactions {
		b.WriteString(transactionLine(t))
		b.WriteString("\n")
	}
	b.WriteString("===============================\n")
	return b.String()
}

func renderStatistics(bankName string, stats ledger.Statistics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n===== %s Statistics =====\n", bankName)
	fmt.Fprintf(&b, "Total accounts: %d\n", stats.TotalAccounts)
	fmt.Fprintf(&b, "Checking accounts: %d\n", stats.CheckingAccounts)
	fmt.Fprintf(&b, "Savings accounts: %d\n", stats.SavingsAccounts)
	fmt.Fprintf(&b, "Total balance across all accounts: %s\n", money(stats.TotalBalance))
	fmt.Fprintf(&b, "Total balance in checking accounts: %s\n", money(stats.CheckingBalance))
	fmt.Fprintf(&b, "Total balance in savings accounts: %s\n", money(stats.SavingsBalance))
	b.WriteString("===================================\n")
	return b.String()
}
