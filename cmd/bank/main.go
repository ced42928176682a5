package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"bankcore/internal/adapter/cli"
	"bankcore/internal/adapter/repository/memory"
	"bankcore/internal/usecase/ledger"
)

const defaultBankName = "Universal Banking System"

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "bank",
	})

	// 1. Load configuration (.env is optional for local runs)
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "err", err)
	}
	bankName := os.Getenv("BANK_NAME")
	if bankName == "" {
		bankName = defaultBankName
	}

	// 2. Initialize Repositories (in-memory)
	accountRepo := memory.NewAccountRepository()

	// 3. Initialize Services (Use Cases)
	ledgerService := ledger.NewService(accountRepo)

	// 4. Run the interactive shell
	shell := cli.NewShell(bankName, ledgerService, logger)
	if err := shell.Run(context.Background()); err != nil {
		logger.Fatal("shell exited", "err", err)
	}

	fmt.Printf("\nThank you for using %s. Goodbye!\n", bankName)
}
