package wallet

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fastprodman/casino/internal/games"
	"github.com/fastprodman/casino/internal/infra/pgutils"
	"github.com/fastprodman/casino/internal/metrics"
	"github.com/fastprodman/casino/internal/repos/rounds"
)

// WagerResult is the settled outcome of one round.
type WagerResult struct {
	Win     decimal.Decimal
	Balance decimal.Decimal
	Detail  games.Detail
}

// Wager settles one game round in a single DB transaction:
//
// 1) Lock the account row (FOR UPDATE).
// 2) Reject if the locked balance cannot cover the bet; no draw happens.
// 3) Resolve the game outcome.
// 4) Write balance - bet + win.
// 5) Append the game-round record.
//
// The balance needs no second non-negative check at step 4: it was verified
// >= bet under the lock and the win is never negative.
func (s *WalletService) Wager(ctx context.Context, accountID uint64, game games.Name, bet decimal.Decimal, choice string) (*WagerResult, error) {
	start := time.Now()
	result := "fail"

	defer func() { metrics.RecordWager(result, string(game), start) }()

	if bet.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	var g games.Game

	switch game {
	case games.Slots:
		g = games.NewSlots()
	case games.Roulette:
		if choice == "" {
			return nil, ErrMissingChoice
		}

		g = games.NewRoulette(choice)
	default:
		return nil, ErrUnknownGame
	}

	var out WagerResult

	err := pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		err := s.accounts.Exists(tx, accountID)
		if err != nil {
			return fmt.Errorf("check account exists: %w", err)
		}

		balance, err := s.accounts.LockBalance(tx, accountID)
		if err != nil {
			return fmt.Errorf("lock balance: %w", err)
		}

		if balance.LessThan(bet) {
			return fmt.Errorf("pre-check bet: %w", ErrInsufficientFunds)
		}

		win, detail := g.Play(bet, s.rng)

		newBalance := balance.Sub(bet).Add(win)

		err = s.accounts.SetBalance(tx, accountID, newBalance)
		if err != nil {
			return fmt.Errorf("set balance: %w", err)
		}

		rawDetail, err := json.Marshal(detail)
		if err != nil {
			return fmt.Errorf("marshal result detail: %w", err)
		}

		round := rounds.Round{
			ID:        uuid.New(),
			AccountID: accountID,
			Game:      string(game),
			BetAmount: bet,
			WinAmount: win,
			Detail:    rawDetail,
		}

		err = s.rounds.Insert(tx, round)
		if err != nil {
			return fmt.Errorf("insert game round: %w", err)
		}

		out = WagerResult{Win: win, Balance: newBalance, Detail: detail}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("wager: %w", err)
	}

	result = "success"

	return &out, nil
}
