package storage

import "errors"

// Domain errors for the storage layer. The CLI and HTTP boundaries match on
// these with errors.Is and render them as a single diagnostic line or status
// code.
var (
	ErrInvalidAmount              = errors.New("amount must be greater than zero")
	ErrInvalidRate                = errors.New("interest rate must be greater than 0 and less than 100")
	ErrInvalidRuleID              = errors.New("rule id must not be empty")
	ErrFirstTransactionNotDeposit = errors.New("first transaction for an account cannot be a withdrawal")
	ErrInsufficientFunds          = errors.New("insufficient funds")
)
