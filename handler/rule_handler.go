package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"bank-ledger/model"
	"bank-ledger/storage"
)

// UpsertRuleRequest defines the expected JSON body for defining an interest
// rule.
type UpsertRuleRequest struct {
	Date   string          `json:"date"`
	RuleID string          `json:"rule_id"`
	Rate   decimal.Decimal `json:"rate"`
}

// RuleHandler holds dependencies for interest-rule handlers.
type RuleHandler struct {
	rules  storage.RuleStore
	logger *zap.Logger
}

// NewRuleHandler creates a new RuleHandler.
func NewRuleHandler(rules storage.RuleStore, logger *zap.Logger) *RuleHandler {
	return &RuleHandler{rules: rules, logger: logger}
}

// UpsertRuleHandler defines an interest rule, replacing any rule already
// effective on the same date, and responds with the full registry in
// effective-date order.
//
// Method: POST
// Path: /interest-rules
// Success: 200 OK
// Error: 400 Bad Request (invalid JSON, date, rule id or rate)
func (h *RuleHandler) UpsertRuleHandler(w http.ResponseWriter, r *http.Request) {
	var req UpsertRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	date, err := model.ParseDate(req.Date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rules, err := h.rules.Upsert(date, req.RuleID, req.Rate)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidRate), errors.Is(err, storage.ErrInvalidRuleID):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			h.logger.Error("upsert rule", zap.Error(err))
			http.Error(w, "Failed to define interest rule", http.StatusInternalServerError)
		}
		return
	}

	h.logger.Info("interest rule defined",
		zap.String("rule_id", req.RuleID),
		zap.String("effective_date", req.Date))
	writeJSON(w, http.StatusOK, rules)
}

// ListRulesHandler returns the rule registry in effective-date order.
//
// Method: GET
// Path: /interest-rules
// Success: 200 OK
func (h *RuleHandler) ListRulesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.rules.Rules())
}
