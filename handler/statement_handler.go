package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"bank-ledger/model"
	"bank-ledger/statement"
)

// StatementHandler holds dependencies for statement handlers.
type StatementHandler struct {
	engine *statement.Engine
	logger *zap.Logger
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(engine *statement.Engine, logger *zap.Logger) *StatementHandler {
	return &StatementHandler{engine: engine, logger: logger}
}

// GetStatementHandler generates the monthly statement for an account. The
// month is passed as a YYYYMM query parameter.
//
// Method: GET
// Path: /accounts/{account_id}/statement?month=YYYYMM
// Success: 200 OK
// Error: 400 Bad Request (invalid month)
// Error: 404 Not Found (unknown account)
func (h *StatementHandler) GetStatementHandler(w http.ResponseWriter, r *http.Request) {
	accountID := mux.Vars(r)["account_id"]

	year, month, err := model.ParseYearMonth(r.URL.Query().Get("month"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	st, err := h.engine.Generate(accountID, year, month)
	if err != nil {
		switch {
		case errors.Is(err, statement.ErrUnknownAccount):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, model.ErrInvalidMonth):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			h.logger.Error("generate statement", zap.Error(err))
			http.Error(w, "Failed to generate statement", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, st)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already out; nothing useful left to send.
		return
	}
}
