package storage

import (
	"fmt"
	"sync"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"bank-ledger/model"
)

// LedgerStore defines the ledger operations the statement engine and the
// front ends depend on.
type LedgerStore interface {
	Record(date civil.Date, accountID string, typ model.TransactionType, amount decimal.Decimal) (model.Transaction, error)
	Transactions(accountID string) []model.Transaction
	HasAccount(accountID string) bool
	Balance(accountID string) decimal.Decimal
}

// Ledger is the in-memory ledger store: an append-only, insertion-ordered
// transaction sequence per account, plus a per-date counter used to mint
// transaction ids. A single mutex serializes all access so the HTTP gateway
// can share the store with the CLI path.
type Ledger struct {
	mu        sync.Mutex
	accounts  map[string][]model.Transaction
	seqByDate map[civil.Date]int
}

var _ LedgerStore = (*Ledger)(nil)

// NewLedger creates an empty ledger store.
func NewLedger() *Ledger {
	return &Ledger{
		accounts:  make(map[string][]model.Transaction),
		seqByDate: make(map[civil.Date]int),
	}
}

// Record validates and appends a user transaction, returning the stored
// record with its freshly minted id.
//
// Amounts with more than two fractional digits are rounded half-up to two
// before validation. A withdrawal against an unknown account fails with
// ErrFirstTransactionNotDeposit; a withdrawal exceeding the current balance
// fails with ErrInsufficientFunds. The balance of every account therefore
// stays non-negative at every prefix of its sequence.
func (l *Ledger) Record(date civil.Date, accountID string, typ model.TransactionType, amount decimal.Decimal) (model.Transaction, error) {
	if typ != model.Deposit && typ != model.Withdrawal {
		return model.Transaction{}, model.ErrInvalidType
	}
	amount = amount.Round(2)
	if amount.Sign() <= 0 {
		return model.Transaction{}, ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	txns, known := l.accounts[accountID]
	if typ == model.Withdrawal {
		if !known {
			return model.Transaction{}, ErrFirstTransactionNotDeposit
		}
		if balanceOf(txns).LessThan(amount) {
			return model.Transaction{}, ErrInsufficientFunds
		}
	}

	// The counter is shared across accounts and never reset, so ids are
	// unique per date even if a transaction were ever removed.
	l.seqByDate[date]++
	txn := model.Transaction{
		Date:          date,
		AccountID:     accountID,
		Type:          typ,
		Amount:        amount,
		TransactionID: fmt.Sprintf("%s-%02d", model.FormatDate(date), l.seqByDate[date]),
	}
	l.accounts[accountID] = append(txns, txn)
	return txn, nil
}

// Transactions returns a copy of the account's transactions in insertion
// order. The copy is empty for unknown accounts.
func (l *Ledger) Transactions(accountID string) []model.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.Transaction, len(l.accounts[accountID]))
	copy(out, l.accounts[accountID])
	return out
}

// HasAccount reports whether the account has ever recorded a transaction.
func (l *Ledger) HasAccount(accountID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.accounts[accountID]
	return ok
}

// Balance returns the signed sum of all recorded transactions for the
// account: deposits minus withdrawals.
func (l *Ledger) Balance(accountID string) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return balanceOf(l.accounts[accountID])
}

func balanceOf(txns []model.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, t := range txns {
		balance = balance.Add(t.Signed())
	}
	return balance
}
