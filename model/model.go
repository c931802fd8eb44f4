package model

import (
	"errors"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// ErrInvalidType rejects transaction type tokens other than D or W.
var ErrInvalidType = errors.New("transaction type must be D for deposit or W for withdrawal")

// Package model defines the data structures used in the banking ledger.

// Why we have used external package "github.com/shopspring/decimal"?
// The "github.com/shopspring/decimal" package is used for precise decimal arithmetic.
// Binary floating point cannot represent most decimal amounts exactly (0.1 + 0.2 != 0.3),
// and those rounding errors accumulate into incorrect balances. All amounts, balances,
// rates and interest figures in this module are decimal values; float64 never appears.

// TransactionType is the tagged variant for ledger entries. The external text
// format uses the single letters D/W/I.
type TransactionType string

const (
	Deposit    TransactionType = "D"
	Withdrawal TransactionType = "W"
	// Interest is synthesized by the statement engine and is never accepted
	// from user input.
	Interest TransactionType = "I"
)

// ParseTransactionType reads a user-supplied type token. Matching follows the
// reference behavior: the uppercased first letter decides, so "d", "D" and
// "deposit" all parse as Deposit. Interest is not parseable.
func ParseTransactionType(token string) (TransactionType, error) {
	if token == "" {
		return "", ErrInvalidType
	}
	switch strings.ToUpper(token)[0] {
	case 'D':
		return Deposit, nil
	case 'W':
		return Withdrawal, nil
	}
	return "", ErrInvalidType
}

// Transaction is an immutable ledger entry. TransactionID is YYYYMMDD-NN for
// user transactions and blank for the synthetic interest row on a statement.
type Transaction struct {
	Date          civil.Date      `json:"date"`
	AccountID     string          `json:"account_id"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	TransactionID string          `json:"transaction_id"`
}

// Signed returns the amount with the sign it carries in a balance: positive
// for deposits and interest, negative for withdrawals.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == Withdrawal {
		return t.Amount.Neg()
	}
	return t.Amount
}

// InterestRule is an annualized interest rate in percent, in force from
// EffectiveDate until a later rule supersedes it. Rate is strictly between
// 0 and 100. RuleID is a free-form label; uniqueness across dates is neither
// required nor checked.
type InterestRule struct {
	EffectiveDate civil.Date      `json:"effective_date"`
	RuleID        string          `json:"rule_id"`
	Rate          decimal.Decimal `json:"rate"`
}

// StatementRow is one line of a monthly statement with the running balance
// after applying the row.
type StatementRow struct {
	Date          civil.Date      `json:"date"`
	TransactionID string          `json:"transaction_id"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Balance       decimal.Decimal `json:"balance"`
}

// Statement is the structured monthly output of the statement engine for one
// account. Rows are date-ascending, insertion-ordered within a date, and the
// final row is always the synthetic interest credit dated the last day of
// the month. Interest is never posted back to the ledger.
type Statement struct {
	AccountID      string          `json:"account_id"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Rows           []StatementRow  `json:"rows"`
}

// ClosingBalance returns the running balance after the last row, or the
// opening balance for an empty statement.
func (s *Statement) ClosingBalance() decimal.Decimal {
	if len(s.Rows) == 0 {
		return s.OpeningBalance
	}
	return s.Rows[len(s.Rows)-1].Balance
}
