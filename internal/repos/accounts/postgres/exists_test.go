package accounts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fastprodman/casino/internal/infra/pgtestutil"
	"github.com/fastprodman/casino/internal/repos/accounts"
)

func TestAccounts_Exists(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	_, err := db.Exec(`INSERT INTO accounts (id, balance) VALUES ($1, $2)`, 7, "0")
	if err != nil {
		t.Fatalf("seed account: %v", err)
	}

	repo := New(db)

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	err = repo.Exists(tx, 7)
	if err != nil {
		t.Fatalf("existing account: %v", err)
	}

	err = repo.Exists(tx, 8)
	if !errors.Is(err, accounts.ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}
}
