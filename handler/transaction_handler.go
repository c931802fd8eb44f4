package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"bank-ledger/model"
	"bank-ledger/storage"
)

// RecordTransactionRequest defines the expected JSON body for recording a
// transaction. Date uses the compact YYYYMMDD form, matching the CLI token
// format.
type RecordTransactionRequest struct {
	Date      string          `json:"date"`
	AccountID string          `json:"account_id"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
}

// TransactionHandler holds dependencies for transaction-related handlers.
type TransactionHandler struct {
	ledger storage.LedgerStore
	logger *zap.Logger
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledger storage.LedgerStore, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{ledger: ledger, logger: logger}
}

// RecordTransactionHandler records a deposit or withdrawal and responds with
// the account's full transaction list, mirroring the CLI's post-transaction
// listing.
//
// Method: POST
// Path: /transactions
// Success: 201 Created
// Error: 400 Bad Request (invalid JSON, date, type or amount)
// Error: 422 Unprocessable Entity (first-transaction or insufficient-funds rule)
func (h *TransactionHandler) RecordTransactionHandler(w http.ResponseWriter, r *http.Request) {
	var req RecordTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	date, err := model.ParseDate(req.Date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	typ, err := model.ParseTransactionType(req.Type)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.AccountID == "" {
		http.Error(w, "Account ID is required", http.StatusBadRequest)
		return
	}

	txn, err := h.ledger.Record(date, req.AccountID, typ, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrFirstTransactionNotDeposit),
			errors.Is(err, storage.ErrInsufficientFunds):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, storage.ErrInvalidAmount), errors.Is(err, model.ErrInvalidType):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			h.logger.Error("record transaction", zap.Error(err))
			http.Error(w, "Failed to record transaction", http.StatusInternalServerError)
		}
		return
	}

	h.logger.Info("transaction recorded",
		zap.String("transaction_id", txn.TransactionID),
		zap.String("account_id", txn.AccountID))
	writeJSON(w, http.StatusCreated, h.ledger.Transactions(req.AccountID))
}

// ListTransactionsHandler returns an account's transactions in insertion
// order.
//
// Method: GET
// Path: /accounts/{account_id}/transactions
// Success: 200 OK
// Error: 404 Not Found (unknown account)
func (h *TransactionHandler) ListTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	accountID := mux.Vars(r)["account_id"]
	if !h.ledger.HasAccount(accountID) {
		http.Error(w, "Account not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, h.ledger.Transactions(accountID))
}
