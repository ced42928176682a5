package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"bankcore/internal/domain"
	"bankcore/internal/usecase/ledger"
)

// Menu actions
const (
	actionCreate   = "create"
	actionSelect   = "select"
	actionList     = "list"
	actionTransfer = "transfer"
	actionInterest = "interest"
	actionStats    = "stats"
	actionExit     = "exit"

	subDeposit  = "deposit"
	subWithdraw = "withdraw"
	subHistory  = "history"
	subSummary  = "summary"
	subBack     = "back"
)

// Shell is the interactive menu driving the ledger. It owns all prompting,
// looping and display formatting; business rules stay in the core and their
// failures are printed, never fatal.
type Shell struct {
	bankName string
	ledger   *ledger.Service
	log      *log.Logger
}

// NewShell creates a new interactive shell over the given ledger
func NewShell(bankName string, svc *ledger.Service, logger *log.Logger) *Shell {
	return &Shell{
		bankName: bankName,
		ledger:   svc,
		log:      logger,
	}
}

// Run displays the main menu until the user exits or aborts.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Printf("\n%s\n%s\n%s\n", strings.Repeat("=", 40), center(s.bankName, 40), strings.Repeat("=", 40))

	for {
		var choice string
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Main Menu").
				Options(
					huh.NewOption("Create a new account", actionCreate),
					huh.NewOption("Select an existing account", actionSelect),
					huh.NewOption("Display all accounts", actionList),
					huh.NewOption("Transfer between accounts", actionTransfer),
					huh.NewOption("Apply interest to all savings accounts", actionInterest),
					huh.NewOption("Display bank statistics", actionStats),
					huh.NewOption("Exit", actionExit),
				).
				Value(&choice),
		))
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		var err error
		switch choice {
		case actionCreate:
			err = s.createAccount(ctx)
		case actionSelect:
			err = s.selectAccount(ctx)
		case actionList:
			err = s.listAccounts(ctx)
		case actionTransfer:
			err = s.transfer(ctx)
		case actionInterest:
			err = s.applyInterest(ctx)
		case actionStats:
			err = s.statistics(ctx)
		case actionExit:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) createAccount(ctx context.Context) error {
	var (
		kind    string
		holder  string
		initial string
	)
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Account type").
			Options(
				huh.NewOption("Checking Account", string(domain.AccountKindChecking)),
				huh.NewOption("Savings Account", string(domain.AccountKindSavings)),
			).
			Value(&kind),
		huh.NewInput().
			Title("Account holder's name").
			Validate(validateNonEmpty).
			Value(&holder),
		huh.NewInput().
			Title("Initial balance (£)").
			Validate(validateNonNegativeAmount).
			Value(&initial),
	))
	if err := form.Run(); err != nil {
		return cancelable(err)
	}

	input := ledger.CreateAccountInput{
		Kind:           domain.AccountKind(kind),
		Holder:         holder,
		InitialBalance: parseAmount(initial),
	}

	if input.Kind == domain.AccountKindSavings {
		var rate string
		rateForm := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Annual interest rate (e.g. 0.01 for 1%)").
				Validate(validateRate).
				Value(&rate),
		))
		if err := rateForm.Run(); err != nil {
			return cancelable(err)
		}
		input.InterestRate = parseAmount(rate)
	}

	account, err := s.ledger.CreateAccount(ctx, input)
	if err != nil {
		s.log.Error("could not create account", "err", err)
		return nil
	}

	fmt.Println("\nAccount created successfully!")
	fmt.Printf("Account Number: %s\n", account.Number())
	fmt.Printf("Account Type: %s\n", account.Kind().Display())
	fmt.Printf("Initial Balance: %s\n", money(account.Balance()))
	if account.Kind() == domain.AccountKindSavings {
		fmt.Printf("Interest Rate: %s\n", percent(account.InterestRate()))
		fmt.Printf("Monthly Withdrawal Limit: %d\n", domain.SavingsWithdrawalLimit)
	}
	return nil
}

func (s *Shell) selectAccount(ctx context.Context) error {
	account, err := s.pickAccount(ctx, "Select an account", nil)
	if err != nil || account == nil {
		return err
	}

	for {
		var choice string
		title := fmt.Sprintf("Account %s (%s): %s", account.Number(), account.Holder(), money(account.Balance()))
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(
					huh.NewOption("Deposit", subDeposit),
					huh.NewOption("Withdraw", subWithdraw),
					huh.NewOption("View transaction history", subHistory),
					huh.NewOption("View detailed account summary", subSummary),
					huh.NewOption("Return to main menu", subBack),
				).
				Value(&choice),
		))
		if err := form.Run(); err != nil {
			return cancelable(err)
		}

		switch choice {
		case subDeposit:
			if err := s.deposit(ctx, account.Number()); err != nil {
				return err
			}
		case subWithdraw:
			if err := s.withdraw(ctx, account.Number()); err != nil {
				return err
			}
		case subHistory:
			history, err := s.ledger.TransactionHistory(ctx, account.Number())
			if err != nil {
				s.log.Error("could not load history", "err", err)
				continue
			}
			fmt.Print(renderHistory(history))
		case subSummary:
			fmt.Printf("\n=== Detailed Account Summary ===\n%s\n", account.Summary())
		case subBack:
			return nil
		}
	}
}

func (s *Shell) deposit(ctx context.Context, number string) error {
	amount, description, err := s.promptAmount("Deposit amount (£)")
	if err != nil || amount.IsZero() {
		return err
	}
	if err := s.ledger.Deposit(ctx, number, amount, description); err != nil {
		s.log.Error("deposit failed", "err", err)
		return nil
	}
	fmt.Printf("Deposited %s successfully\n", money(amount))
	return nil
}

func (s *Shell) withdraw(ctx context.Context, number string) error {
	amount, description, err := s.promptAmount("Withdrawal amount (£)")
	if err != nil || amount.IsZero() {
		return err
	}
	if err := s.ledger.Withdraw(ctx, number, amount, description); err != nil {
		s.log.Error("withdrawal failed", "err", err)
		return nil
	}
	fmt.Printf("Withdrew %s successfully\n", money(amount))
	return nil
}

func (s *Shell) listAccounts(ctx context.Context) error {
	accounts, err := s.ledger.ListAccounts(ctx)
	if err != nil {
		return err
	}
	if len(accounts) == 0 {
		fmt.Println("No accounts to display")
		return nil
	}
	fmt.Print(renderAccounts(s.bankName, accounts))
	return nil
}

func (s *Shell) transfer(ctx context.Context) error {
	accounts, err := s.ledger.ListAccounts(ctx)
	if err != nil {
		return err
	}
	if len(accounts) < 2 {
		fmt.Println("You need at least two accounts to perform a transfer.")
		return nil
	}

	from, err := s.pickAccount(ctx, "Source account", nil)
	if err != nil || from == nil {
		return err
	}
	to, err := s.pickAccount(ctx, "Destination account", from)
	if err != nil || to == nil {
		return err
	}

	var raw string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Transfer amount (£)").
			Validate(validatePositiveAmount).
			Value(&raw),
	))
	if err := form.Run(); err != nil {
		return cancelable(err)
	}
	amount := parseAmount(raw)

	result := s.ledger.Transfer(ctx, from.Number(), to.Number(), amount)
	if !result.Transferred {
		fmt.Printf("Transfer failed: %s\n", result.Reason)
		return nil
	}
	fmt.Printf("Successfully transferred %s from account %s to %s\n", money(amount), from.Number(), to.Number())
	return nil
}

func (s *Shell) applyInterest(ctx context.Context) error {
	total, err := s.ledger.ApplyInterestToSavings(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Interest applied to all savings accounts. Total interest: %s\n", money(total))
	return nil
}

func (s *Shell) statistics(ctx context.Context) error {
	stats, err := s.ledger.Statistics(ctx)
	if err != nil {
		return err
	}
	fmt.Print(renderStatistics(s.bankName, stats))
	return nil
}

// pickAccount prompts for one of the existing accounts, excluding an
// optional account from the options. A nil account with nil error means
// there was nothing to pick or the user cancelled.
func (s *Shell) pickAccount(ctx context.Context, title string, exclude *domain.Account) (*domain.Account, error) {
	accounts, err := s.ledger.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]huh.Option[string], 0, len(accounts))
	for _, a := range accounts {
		if exclude != nil && a.Number() == exclude.Number() {
			continue
		}
		options = append(options, huh.NewOption(accountLine(a), a.Number()))
	}
	if len(options) == 0 {
		fmt.Println("No accounts exist. Please create an account first.")
		return nil, nil
	}

	var number string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Options(options...).
			Value(&number),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}
	return s.ledger.GetAccount(ctx, number)
}

// promptAmount asks for a positive amount and an optional description. A
// zero amount with nil error means the user cancelled.
func (s *Shell) promptAmount(title string) (decimal.Decimal, string, error) {
	var raw, description string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(title).
			Validate(validatePositiveAmount).
			Value(&raw),
		huh.NewInput().
			Title("Description (optional)").
			Value(&description),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return decimal.Zero, "", nil
		}
		return decimal.Zero, "", err
	}
	return parseAmount(raw), description, nil
}

// cancelable swallows user aborts so a cancelled flow returns to the menu.
func cancelable(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func validateNonEmpty(v string) error {
	if strings.TrimSpace(v) == "" {
		return errors.New("name cannot be empty")
	}
	return nil
}

func validatePositiveAmount(v string) error {
	amount, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		return errors.New("enter a valid number")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("amount must be positive")
	}
	return nil
}

func validateNonNegativeAmount(v string) error {
	amount, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		return errors.New("enter a valid number")
	}
	if amount.IsNegative() {
		return errors.New("amount cannot be negative")
	}
	return nil
}

func validateRate(v string) error {
	rate, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		return errors.New("enter a valid number")
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromFloat(0.1)) {
		return errors.New("rate must be between 0 and 0.1")
	}
	return nil
}

// parseAmount assumes the input already passed a decimal validator.
func parseAmount(v string) decimal.Decimal {
	amount, _ := decimal.NewFromString(strings.TrimSpace(v))
	return amount
}
