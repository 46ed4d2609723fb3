package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fastprodman/casino/internal/games"
	"github.com/fastprodman/casino/internal/repos/accounts"
	"github.com/fastprodman/casino/internal/repos/ledger"
	"github.com/fastprodman/casino/internal/repos/rounds"
	"github.com/fastprodman/casino/internal/services/wallet"
)

// stubService returns canned results so handler behavior can be tested
// without a database.
type stubService struct {
	balance     decimal.Decimal
	balanceErr  error
	transferErr error
	wagerRes    *wallet.WagerResult
	wagerErr    error
	entries     []ledger.Entry
	rounds      []rounds.Round

	gotKind   wallet.TransferKind
	gotAmount decimal.Decimal
	gotGame   games.Name
	gotChoice string
	gotLimit  int
}

func (s *stubService) Balance(_ context.Context, _ uint64) (decimal.Decimal, error) {
	return s.balance, s.balanceErr
}

func (s *stubService) Transfer(_ context.Context, _ uint64, kind wallet.TransferKind, amount decimal.Decimal, _ string) (decimal.Decimal, error) {
	s.gotKind = kind
	s.gotAmount = amount

	return s.balance, s.transferErr
}

func (s *stubService) Wager(_ context.Context, _ uint64, game games.Name, _ decimal.Decimal, choice string) (*wallet.WagerResult, error) {
	s.gotGame = game
	s.gotChoice = choice

	return s.wagerRes, s.wagerErr
}

func (s *stubService) History(_ context.Context, _ uint64, limit int) ([]ledger.Entry, error) {
	s.gotLimit = limit

	return s.entries, nil
}

func (s *stubService) Rounds(_ context.Context, _ uint64, limit int) ([]rounds.Round, error) {
	s.gotLimit = limit

	return s.rounds, nil
}

func doRequest(t *testing.T, svc WalletService, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	router := NewRouter(svc)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestGetBalanceHandler(t *testing.T) {
	t.Parallel()

	svc := &stubService{balance: decimal.RequireFromString("12.30")}

	rec := doRequest(t, svc, http.MethodGet, "/account/1/balance", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	var resp map[string]any

	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	if err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["balance"] != "12.30" {
		t.Fatalf("balance mismatch: %v", resp["balance"])
	}
}

func TestGetBalanceHandler_BadAccountID(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/account/abc/balance", "/account/0/balance"} {
		rec := doRequest(t, &stubService{}, http.MethodGet, path, "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: want 400, got %d", path, rec.Code)
		}
	}
}

func TestTransferHandler_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "valid_deposit",
			body:       `{"type": "deposit", "amount": "10.00"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "valid_withdraw_with_recipient",
			body:       `{"type": "withdraw", "amount": "5.00", "recipient": "card"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "zero_amount_rejected",
			body:       `{"type": "deposit", "amount": "0"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative_amount_rejected",
			body:       `{"type": "deposit", "amount": "-3"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "three_decimals_rejected",
			body:       `{"type": "deposit", "amount": "1.234"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad_kind_rejected",
			body:       `{"type": "steal", "amount": "1.00"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty_body_rejected",
			body:       "",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown_field_rejected",
			body:       `{"type": "deposit", "amount": "1.00", "extra": true}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "insufficient_funds_maps_to_400",
			body:       `{"type": "withdraw", "amount": "100.00"}`,
			serviceErr: wallet.ErrInsufficientFunds,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown_account_maps_to_404",
			body:       `{"type": "deposit", "amount": "1.00"}`,
			serviceErr: accounts.ErrAccountNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &stubService{
				balance:     decimal.NewFromInt(1),
				transferErr: tt.serviceErr,
			}

			rec := doRequest(t, svc, http.MethodPost, "/account/1/transfer", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("want %d, got %d (%s)", tt.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestWagerHandler_RendersTypedResult(t *testing.T) {
	t.Parallel()

	svc := &stubService{
		wagerRes: &wallet.WagerResult{
			Win:     decimal.NewFromInt(175),
			Balance: decimal.NewFromInt(180),
			Detail:  games.RouletteDetail{Number: 0, Color: "green"},
		},
	}

	rec := doRequest(t, svc, http.MethodPost, "/account/1/wager",
		`{"game": "roulette", "bet": "5", "choice": "Green"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	if svc.gotGame != games.Roulette {
		t.Fatalf("game not forwarded: %s", svc.gotGame)
	}
	if svc.gotChoice != "green" {
		t.Fatalf("choice not normalized: %q", svc.gotChoice)
	}

	var resp struct {
		Win     string `json:"win"`
		Balance string `json:"balance"`
		Result  struct {
			Number int    `json:"number"`
			Color  string `json:"color"`
		} `json:"result"`
	}

	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	if err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Win != "175.00" || resp.Balance != "180.00" {
		t.Fatalf("amounts mismatch: win=%s balance=%s", resp.Win, resp.Balance)
	}
	if resp.Result.Number != 0 || resp.Result.Color != "green" {
		t.Fatalf("result mismatch: %+v", resp.Result)
	}
}

func TestWagerHandler_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		err  error
	}{
		{name: "zero_bet", body: `{"game": "slots", "bet": "0"}`},
		{name: "unknown_game", body: `{"game": "poker", "bet": "1"}`, err: wallet.ErrUnknownGame},
		{name: "missing_choice", body: `{"game": "roulette", "bet": "1"}`, err: wallet.ErrMissingChoice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &stubService{wagerErr: tt.err}

			rec := doRequest(t, svc, http.MethodPost, "/account/1/wager", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("want 400, got %d (%s)", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHistoryHandler(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := &stubService{
		entries: []ledger.Entry{
			{
				ID:          uuid.New(),
				AccountID:   1,
				Kind:        ledger.KindDeposit,
				Amount:      decimal.RequireFromString("10.00"),
				Description: "Deposit of 10.00",
				CreatedAt:   now,
			},
		},
	}

	rec := doRequest(t, svc, http.MethodGet, "/account/1/history?limit=5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	if svc.gotLimit != 5 {
		t.Fatalf("limit not forwarded: %d", svc.gotLimit)
	}

	var resp struct {
		Transactions []struct {
			Type      string `json:"type"`
			Amount    string `json:"amount"`
			CreatedAt string `json:"createdAt"`
		} `json:"transactions"`
	}

	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	if err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Transactions) != 1 {
		t.Fatalf("want 1 transaction, got %d", len(resp.Transactions))
	}
	if resp.Transactions[0].CreatedAt != "2025-06-01T12:00:00Z" {
		t.Fatalf("createdAt not RFC3339: %s", resp.Transactions[0].CreatedAt)
	}
}

func TestHistoryHandler_BadLimit(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, &stubService{}, http.MethodGet, "/account/1/history?limit=nope", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, &stubService{}, http.MethodGet, "/account/1/jackpot", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", rec.Code)
	}
}
