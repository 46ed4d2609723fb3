package accounts

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fastprodman/casino/internal/infra/pgtestutil"
	"github.com/fastprodman/casino/internal/repos/accounts"
)

func TestAccounts_GetBalance_Table(t *testing.T) {
	t.Parallel()

	type seedFn func(db *sql.DB, t *testing.T)
	type tc struct {
		name        string
		seed        seedFn
		accountID   uint64
		wantBalance string
		wantErr     error
	}

	tests := []tc{
		{
			name: "account_exists_zero_balance",
			seed: func(db *sql.DB, t *testing.T) {
				_, err := db.Exec(`INSERT INTO accounts (id, balance) VALUES ($1, $2)`, 1, "0")
				if err != nil {
					t.Fatalf("seed account: %v", err)
				}
			},
			accountID:   1,
			wantBalance: "0",
		},
		{
			name: "account_exists_fractional_balance",
			seed: func(db *sql.DB, t *testing.T) {
				_, err := db.Exec(`INSERT INTO accounts (id, balance) VALUES ($1, $2)`, 2, "123.45")
				if err != nil {
					t.Fatalf("seed account: %v", err)
				}
			},
			accountID:   2,
			wantBalance: "123.45",
		},
		{
			name:      "account_not_found",
			seed:      func(_ *sql.DB, _ *testing.T) {},
			accountID: 999,
			wantErr:   accounts.ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, cleanup := pgtestutil.NewTestDB(t)
			defer cleanup()

			if tt.seed != nil {
				tt.seed(db, t)
			}

			repo := New(db)

			ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
			defer cancel()

			balance, err := repo.GetBalance(ctx, tt.accountID)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			want := decimal.RequireFromString(tt.wantBalance)
			if !balance.Equal(want) {
				t.Fatalf("balance mismatch: want %s, got %s", want, balance)
			}
		})
	}
}
