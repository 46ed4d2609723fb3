package wallet

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fastprodman/casino/internal/infra/pgutils"
	"github.com/fastprodman/casino/internal/metrics"
	"github.com/fastprodman/casino/internal/repos/ledger"
)

type TransferKind string

const (
	Deposit  TransferKind = "deposit"
	Withdraw TransferKind = "withdraw"
)

// Transfer applies a deposit or withdrawal in a single DB transaction:
//
// 1) Lock the account row (FOR UPDATE).
// 2) Pre-check withdrawals against the locked balance.
// 3) Write the new balance.
// 4) Append the matching ledger entry.
//
// The amount is validated before any transaction opens; on any failure the
// whole unit rolls back and the balance is untouched.
func (s *WalletService) Transfer(ctx context.Context, accountID uint64, kind TransferKind, amount decimal.Decimal, recipient string) (decimal.Decimal, error) {
	start := time.Now()
	result := "fail"

	defer func() { metrics.RecordTransfer(result, string(kind), start) }()

	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, ErrInvalidAmount
	}

	var newBalance decimal.Decimal

	err := pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		err := s.accounts.Exists(tx, accountID)
		if err != nil {
			return fmt.Errorf("check account exists: %w", err)
		}

		balance, err := s.accounts.LockBalance(tx, accountID)
		if err != nil {
			return fmt.Errorf("lock balance: %w", err)
		}

		switch kind {
		case Deposit:
			newBalance = balance.Add(amount)

		case Withdraw:
			// pre-check against locked balance
			if balance.LessThan(amount) {
				return fmt.Errorf("pre-check withdraw: %w", ErrInsufficientFunds)
			}

			newBalance = balance.Sub(amount)

		default:
			return fmt.Errorf("invalid transfer kind: %s", kind)
		}

		err = s.accounts.SetBalance(tx, accountID, newBalance)
		if err != nil {
			return fmt.Errorf("set balance: %w", err)
		}

		entry := ledger.Entry{
			ID:          uuid.New(),
			AccountID:   accountID,
			Kind:        ledger.Kind(kind),
			Amount:      amount,
			Description: transferDescription(kind, amount, recipient),
		}

		err = s.ledger.Insert(tx, entry)
		if err != nil {
			return fmt.Errorf("insert ledger entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("transfer: %w", err)
	}

	result = "success"

	return newBalance, nil
}

func transferDescription(kind TransferKind, amount decimal.Decimal, recipient string) string {
	if kind == Withdraw {
		return fmt.Sprintf("Withdrawal of %s to %s", amount.StringFixed(2), recipient)
	}

	return fmt.Sprintf("Deposit of %s", amount.StringFixed(2))
}
