package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fastprodman/casino/internal/repos/accounts"
)

// GetBalance reads the balance without locking; suitable for the GET endpoint.
func (r *accountsRepo) GetBalance(ctx context.Context, accountID uint64) (decimal.Decimal, error) {
	var balance decimal.Decimal

	err := r.db.QueryRowContext(ctx, `
		SELECT balance
		FROM accounts
		WHERE id = $1
	`, accountID).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Decimal{}, accounts.ErrAccountNotFound
		}

		return decimal.Decimal{}, fmt.Errorf("get balance: %w", err)
	}

	return balance, nil
}
