package accounts

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fastprodman/casino/internal/repos/accounts"
)

// SetBalance writes the candidate balance computed by the caller under the
// row lock. The schema's CHECK (balance >= 0) is a backstop only; callers
// must pre-check withdrawals against the locked balance.
func (r *accountsRepo) SetBalance(tx *sql.Tx, accountID uint64, balance decimal.Decimal) error {
	res, err := tx.Exec(`
		UPDATE accounts
		SET balance = $2
		WHERE id = $1
	`, accountID, balance)
	if err != nil {
		return fmt.Errorf("set balance: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if affected == 0 {
		return accounts.ErrAccountNotFound
	}

	return nil
}
