package rounds

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fastprodman/casino/internal/repos/rounds"
)

var _ rounds.Rounds = (*roundsRepo)(nil)

type roundsRepo struct{ db *sql.DB }

func New(db *sql.DB) *roundsRepo {
	return &roundsRepo{db: db}
}

func (r *roundsRepo) Insert(tx *sql.Tx, round rounds.Round) error {
	_, err := tx.Exec(`
		INSERT INTO game_rounds (id, account_id, game, bet_amount, win_amount, detail)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, round.ID, round.AccountID, round.Game, round.BetAmount, round.WinAmount, string(round.Detail))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23503" { // foreign_key_violation
				return rounds.ErrUnknownAccount
			}
		}

		return fmt.Errorf("insert game round: %w", err)
	}

	return nil
}

func (r *roundsRepo) ListRecent(ctx context.Context, accountID uint64, limit int) ([]rounds.Round, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, account_id, game, bet_amount, win_amount, detail, created_at
		FROM game_rounds
		WHERE account_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("list game rounds: %w", err)
	}
	defer rows.Close()

	var result []rounds.Round

	for rows.Next() {
		var (
			rnd    rounds.Round
			detail []byte
		)

		err = rows.Scan(&rnd.ID, &rnd.AccountID, &rnd.Game, &rnd.BetAmount, &rnd.WinAmount, &detail, &rnd.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan game round: %w", err)
		}

		rnd.Detail = detail
		result = append(result, rnd)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate game rounds: %w", err)
	}

	return result, nil
}
