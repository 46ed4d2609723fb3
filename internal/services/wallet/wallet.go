// Package wallet composes the account store, the ledger and the game engine
// into atomic settlement flows. Every balance-affecting operation runs in a
// single DB transaction so a balance delta and its history record commit
// together or not at all.
package wallet

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fastprodman/casino/internal/games"
	"github.com/fastprodman/casino/internal/repos/accounts"
	pgaccounts "github.com/fastprodman/casino/internal/repos/accounts/postgres"
	"github.com/fastprodman/casino/internal/repos/ledger"
	pgledger "github.com/fastprodman/casino/internal/repos/ledger/postgres"
	"github.com/fastprodman/casino/internal/repos/rounds"
	pgrounds "github.com/fastprodman/casino/internal/repos/rounds/postgres"
)

const defaultHistoryLimit = 10

var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnknownGame       = errors.New("unknown game")
	ErrMissingChoice     = errors.New("roulette requires a color choice")
)

type WalletService struct {
	db       *sql.DB
	accounts accounts.Accounts
	ledger   ledger.Ledger
	rounds   rounds.Rounds
	rng      games.Rand
}

func New(dbx *sql.DB, rng games.Rand) *WalletService {
	return &WalletService{
		db:       dbx,
		accounts: pgaccounts.New(dbx),
		ledger:   pgledger.New(dbx),
		rounds:   pgrounds.New(dbx),
		rng:      rng,
	}
}

// Balance returns the account's balance without locking. An account that has
// never been seen reports a zero balance rather than an error.
func (s *WalletService) Balance(ctx context.Context, accountID uint64) (decimal.Decimal, error) {
	balance, err := s.accounts.GetBalance(ctx, accountID)
	if err != nil {
		if errors.Is(err, accounts.ErrAccountNotFound) {
			return decimal.Zero, nil
		}

		return decimal.Decimal{}, fmt.Errorf("get balance: %w", err)
	}

	return balance, nil
}

// History returns the account's most recent ledger entries, newest first.
// A non-positive limit falls back to the default of 10.
func (s *WalletService) History(ctx context.Context, accountID uint64, limit int) ([]ledger.Entry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	entries, err := s.ledger.ListRecent(ctx, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	return entries, nil
}

// Rounds returns the account's most recent game rounds, newest first.
func (s *WalletService) Rounds(ctx context.Context, accountID uint64, limit int) ([]rounds.Round, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	result, err := s.rounds.ListRecent(ctx, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("list rounds: %w", err)
	}

	return result, nil
}
