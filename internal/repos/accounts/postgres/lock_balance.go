package accounts

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fastprodman/casino/internal/repos/accounts"
)

// LockBalance reads the balance under FOR UPDATE. Concurrent callers on the
// same account block here until the holding transaction ends; other accounts
// are unaffected.
func (r *accountsRepo) LockBalance(tx *sql.Tx, accountID uint64) (decimal.Decimal, error) {
	var balance decimal.Decimal

	err := tx.QueryRow(`
		SELECT balance
		FROM accounts
		WHERE id = $1
		FOR UPDATE
	`, accountID).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Decimal{}, accounts.ErrAccountNotFound
		}

		return decimal.Decimal{}, fmt.Errorf("lock/get balance: %w", err)
	}

	return balance, nil
}
