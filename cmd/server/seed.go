package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lelec0/fintech-api/internal/domain"
)

// seedData populates the database with a small demo data set. It is a
// no-op when any user already exists.
func (app *application) seedData(ctx context.Context) error {
	users, err := app.userStore.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing users: %w", err)
	}
	if len(users) > 0 {
		app.logger.Info("Data already present, skipping seed")
		return nil
	}

	app.logger.Info("Seeding demo data...")

	user1, err := domain.NewUser("João Silva", "joao.silva@email.com", "12345678901")
	if err != nil {
		return fmt.Errorf("failed to build seed user: %w", err)
	}
	if err := app.userStore.Create(ctx, user1); err != nil {
		return fmt.Errorf("failed to create seed user: %w", err)
	}

	user2, err := domain.NewUser("Maria Santos", "maria.santos@email.com", "98765432100")
	if err != nil {
		return fmt.Errorf("failed to build seed user: %w", err)
	}
	if err := app.userStore.Create(ctx, user2); err != nil {
		return fmt.Errorf("failed to create seed user: %w", err)
	}

	account1, err := app.seedAccount(ctx, user1.ID, "5000.00", domain.AccountTypeChecking)
	if err != nil {
		return err
	}
	account2, err := app.seedAccount(ctx, user1.ID, "10000.00", domain.AccountTypeSavings)
	if err != nil {
		return err
	}
	if _, err := app.seedAccount(ctx, user2.ID, "3000.00", domain.AccountTypeChecking); err != nil {
		return err
	}

	now := time.Now().UTC()
	seedTransactions := []struct {
		accountID       uuid.UUID
		amount          string
		transactionType domain.TransactionType
		description     string
		date            time.Time
	}{
		{account1.ID, "1000.00", domain.TransactionTypeDeposit, "Initial deposit", now.AddDate(0, 0, -5)},
		{account1.ID, "500.00", domain.TransactionTypeWithdrawal, "ATM withdrawal", now.AddDate(0, 0, -2)},
		{account2.ID, "2000.00", domain.TransactionTypeDeposit, "Incoming transfer", now.AddDate(0, 0, -1)},
	}

	for _, seed := range seedTransactions {
		amount, err := decimal.NewFromString(seed.amount)
		if err != nil {
			return fmt.Errorf("failed to parse seed amount: %w", err)
		}

		transaction, err := domain.NewTransaction(seed.accountID, amount, seed.transactionType, seed.description)
		if err != nil {
			return fmt.Errorf("failed to build seed transaction: %w", err)
		}
		transaction.TransactionDate = seed.date

		if err := app.transactionStore.Create(ctx, transaction); err != nil {
			return fmt.Errorf("failed to create seed transaction: %w", err)
		}
	}

	app.logger.Info("Demo data seeded", "users", 2, "accounts", 3, "transactions", 3)
	return nil
}

// seedAccount creates one demo account with the given balance and type.
func (app *application) seedAccount(
	ctx context.Context,
	userID uuid.UUID,
	balance string,
	accountType domain.AccountType,
) (*domain.Account, error) {
	amount, err := decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("failed to parse seed balance: %w", err)
	}

	account, err := domain.NewAccount(userID, amount, accountType)
	if err != nil {
		return nil, fmt.Errorf("failed to build seed account: %w", err)
	}

	if err := app.accountStore.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create seed account: %w", err)
	}

	return account, nil
}
