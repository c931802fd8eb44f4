package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"bank-ledger/cli"
	"bank-ledger/config"
	"bank-ledger/handler"
	"bank-ledger/statement"
	"bank-ledger/storage"
)

func main() {
	serve := flag.Bool("serve", false, "run the HTTP gateway instead of the interactive console")
	configPath := flag.String("config", "", "path to a YAML config file (defaults to $BANK_CONFIG)")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ledger := storage.NewLedger()
	registry := storage.NewRuleRegistry()
	bootstrap, err := cfg.Rules()
	if err != nil {
		logger.Fatal("parse bootstrap rules", zap.Error(err))
	}
	for _, r := range bootstrap {
		if _, err := registry.Upsert(r.EffectiveDate, r.RuleID, r.Rate); err != nil {
			logger.Fatal("seed interest rule", zap.String("rule_id", r.RuleID), zap.Error(err))
		}
	}
	engine := statement.New(ledger, registry)

	if *serve {
		runServer(cfg.ListenAddr, ledger, registry, engine, logger)
		return
	}

	cli.New(os.Stdin, os.Stdout, ledger, registry, engine).Run()
}

// runServer starts the HTTP gateway and blocks until SIGINT/SIGTERM, then
// shuts down gracefully.
func runServer(addr string, ledger *storage.Ledger, registry *storage.RuleRegistry, engine *statement.Engine, logger *zap.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router := handler.NewRouter(
		handler.NewTransactionHandler(ledger, logger),
		handler.NewRuleHandler(registry, logger),
		handler.NewStatementHandler(engine, logger),
		logger,
	)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen and serve", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
