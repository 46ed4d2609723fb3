package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/fastprodman/casino/internal/games"
	"github.com/fastprodman/casino/internal/repos/accounts"
	"github.com/fastprodman/casino/internal/repos/ledger"
	"github.com/fastprodman/casino/internal/repos/rounds"
	"github.com/fastprodman/casino/internal/services/wallet"
)

// WalletService is the settlement surface the handlers need; satisfied by
// *wallet.WalletService and stubbed in handler tests.
type WalletService interface {
	Balance(ctx context.Context, accountID uint64) (decimal.Decimal, error)
	Transfer(ctx context.Context, accountID uint64, kind wallet.TransferKind, amount decimal.Decimal, recipient string) (decimal.Decimal, error)
	Wager(ctx context.Context, accountID uint64, game games.Name, bet decimal.Decimal, choice string) (*wallet.WagerResult, error)
	History(ctx context.Context, accountID uint64, limit int) ([]ledger.Entry, error)
	Rounds(ctx context.Context, accountID uint64, limit int) ([]rounds.Round, error)
}

// HandlerProvider wraps a WalletService and exposes HTTP handlers.
type HandlerProvider struct {
	svc WalletService
}

// NewHandler returns a new Handler provider.
func NewHandler(svc WalletService) *HandlerProvider {
	return &HandlerProvider{svc: svc}
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)

		// As best-effort, write a minimal error payload if headers not sent
		http.Error(w, `{"error":"internal json encode failure"}`, http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps domain errors onto the API's status contract:
// validation failures and insufficient funds are client errors (400),
// unknown accounts are 404, anything else is a 500 with the fault message.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, wallet.ErrInvalidAmount):
		writeError(w, http.StatusBadRequest, "amount must be greater than 0")
	case errors.Is(err, wallet.ErrMissingChoice):
		writeError(w, http.StatusBadRequest, "roulette requires a color choice")
	case errors.Is(err, wallet.ErrUnknownGame):
		writeError(w, http.StatusBadRequest, "unknown game")
	case errors.Is(err, wallet.ErrInsufficientFunds):
		writeError(w, http.StatusBadRequest, "insufficient funds")
	case errors.Is(err, accounts.ErrAccountNotFound):
		writeError(w, http.StatusNotFound, "account not found")
	default:
		slog.Error("internal error", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// parseAccountIDFromPath reads `{accountID}` from chi routes like:
//
//	GET  /account/{accountID}/balance
//	POST /account/{accountID}/wager
func parseAccountIDFromPath(r *http.Request) (uint64, error) {
	idStr := chi.URLParam(r, "accountID")
	if idStr == "" {
		return 0, fmt.Errorf("missing accountID")
	}

	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid accountID: %w", err)
	}
	if id == 0 {
		return 0, fmt.Errorf("invalid accountID: must be positive")
	}

	return id, nil
}

// parseAmount converts a decimal string with up to 2 fractional digits into
// an exact decimal. Anything not strictly positive is rejected.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("amount required")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount: %w", err)
	}

	if d.Exponent() < -2 {
		return decimal.Decimal{}, fmt.Errorf("amount supports up to 2 decimals")
	}

	if d.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, fmt.Errorf("amount must be > 0")
	}

	return d, nil
}

func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil // service applies its default
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, fmt.Errorf("invalid limit")
	}

	return limit, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	// Limit body size; disallow unknown fields
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB cap
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("empty body")
		}

		return fmt.Errorf("invalid JSON")
	}

	return nil
}

// --- Handlers ---

// GetBalanceHandler handles GET /account/{accountID}/balance
func (h *HandlerProvider) GetBalanceHandler(w http.ResponseWriter, r *http.Request) {
	accountID, err := parseAccountIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid accountID in path")
		return
	}

	balance, err := h.svc.Balance(r.Context(), accountID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := map[string]any{
		"accountId": accountID,
		"balance":   balance.StringFixed(2),
	}
	writeJSON(w, http.StatusOK, resp)
}

type transferRequest struct {
	Type      string `json:"type"`
	Amount    string `json:"amount"`
	Recipient string `json:"recipient"`
}

// TransferHandler handles POST /account/{accountID}/transfer
func (h *HandlerProvider) TransferHandler(w http.ResponseWriter, r *http.Request) {
	accountID, err := parseAccountIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid accountID in path")
		return
	}

	var req transferRequest

	err = decodeBody(w, r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var kind wallet.TransferKind

	switch strings.ToLower(strings.TrimSpace(req.Type)) {
	case "deposit":
		kind = wallet.Deposit
	case "withdraw":
		kind = wallet.Withdraw
	default:
		writeError(w, http.StatusBadRequest, "type must be deposit or withdraw")
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	balance, err := h.svc.Transfer(r.Context(), accountID, kind, amount, req.Recipient)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := map[string]any{
		"balance": balance.StringFixed(2),
		"message": "transaction completed",
	}
	writeJSON(w, http.StatusOK, resp)
}

type wagerRequest struct {
	Game   string `json:"game"`
	Bet    string `json:"bet"`
	Choice string `json:"choice"`
}

// WagerHandler handles POST /account/{accountID}/wager
func (h *HandlerProvider) WagerHandler(w http.ResponseWriter, r *http.Request) {
	accountID, err := parseAccountIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid accountID in path")
		return
	}

	var req wagerRequest

	err = decodeBody(w, r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	bet, err := parseAmount(req.Bet)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	game := games.Name(strings.ToLower(strings.TrimSpace(req.Game)))

	result, err := h.svc.Wager(r.Context(), accountID, game, bet, strings.ToLower(strings.TrimSpace(req.Choice)))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := map[string]any{
		"win":     result.Win.StringFixed(2),
		"balance": result.Balance.StringFixed(2),
		"result":  result.Detail,
	}
	writeJSON(w, http.StatusOK, resp)
}

// HistoryHandler handles GET /account/{accountID}/history
func (h *HandlerProvider) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	accountID, err := parseAccountIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid accountID in path")
		return
	}

	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := h.svc.History(r.Context(), accountID, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	transactions := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		transactions = append(transactions, map[string]any{
			"id":          e.ID,
			"type":        string(e.Kind),
			"amount":      e.Amount.StringFixed(2),
			"description": e.Description,
			"createdAt":   e.CreatedAt.Format(time.RFC3339),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"transactions": transactions})
}

// RoundsHandler handles GET /account/{accountID}/rounds
func (h *HandlerProvider) RoundsHandler(w http.ResponseWriter, r *http.Request) {
	accountID, err := parseAccountIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid accountID in path")
		return
	}

	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	list, err := h.svc.Rounds(r.Context(), accountID, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]map[string]any, 0, len(list))
	for _, rnd := range list {
		out = append(out, map[string]any{
			"id":        rnd.ID,
			"game":      rnd.Game,
			"bet":       rnd.BetAmount.StringFixed(2),
			"win":       rnd.WinAmount.StringFixed(2),
			"result":    rnd.Detail,
			"createdAt": rnd.CreatedAt.Format(time.RFC3339),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"rounds": out})
}
