package rounds

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrUnknownAccount = errors.New("game round references unknown account")

// Round is one resolved wager: the bet, the win (zero on a loss) and the
// game-specific outcome detail serialized as JSON.
type Round struct {
	ID        uuid.UUID
	AccountID uint64
	Game      string
	BetAmount decimal.Decimal
	WinAmount decimal.Decimal
	Detail    json.RawMessage
	CreatedAt time.Time
}

type Rounds interface {
	// Insert must run in the same transaction as the settlement balance write.
	Insert(tx *sql.Tx, round Round) error
	// ListRecent returns up to limit rounds, most recent first.
	ListRecent(ctx context.Context, accountID uint64, limit int) ([]Round, error)
}
