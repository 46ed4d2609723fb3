package ledger

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrUnknownAccount = errors.New("ledger entry references unknown account")

type Kind string

const (
	KindDeposit  Kind = "deposit"
	KindWithdraw Kind = "withdraw"
)

// Entry is one append-only row of the deposit/withdraw history.
// Amount is always positive; the direction is carried by Kind.
type Entry struct {
	ID          uuid.UUID
	AccountID   uint64
	Kind        Kind
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
}

type Ledger interface {
	// Insert must run in the same transaction as the balance write it records.
	Insert(tx *sql.Tx, entry Entry) error
	// ListRecent returns up to limit entries, most recent first.
	ListRecent(ctx context.Context, accountID uint64, limit int) ([]Entry, error)
}
