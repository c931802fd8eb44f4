package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// NewRouter wires the gateway routes and the request-logging middleware.
func NewRouter(txns *TransactionHandler, rules *RuleHandler, statements *StatementHandler, logger *zap.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogger(logger))

	r.HandleFunc("/transactions", txns.RecordTransactionHandler).Methods("POST")
	r.HandleFunc("/accounts/{account_id}/transactions", txns.ListTransactionsHandler).Methods("GET")
	r.HandleFunc("/interest-rules", rules.UpsertRuleHandler).Methods("POST")
	r.HandleFunc("/interest-rules", rules.ListRulesHandler).Methods("GET")
	r.HandleFunc("/accounts/{account_id}/statement", statements.GetStatementHandler).Methods("GET")
	return r
}

func requestLogger(logger *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("duration", time.Since(start)))
		})
	}
}
