package accounts

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"
)

var ErrAccountNotFound = errors.New("account not found")

// Accounts owns the durable per-account balance. Balances are NUMERIC(20,2)
// in the database and must never go negative; mutation happens only through
// LockBalance + SetBalance inside a single transaction.
type Accounts interface {
	Exists(tx *sql.Tx, accountID uint64) error
	GetBalance(ctx context.Context, accountID uint64) (decimal.Decimal, error)
	LockBalance(tx *sql.Tx, accountID uint64) (decimal.Decimal, error)
	SetBalance(tx *sql.Tx, accountID uint64, balance decimal.Decimal) error
}
