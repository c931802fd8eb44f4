// Package statement implements the monthly statement and interest engine.
//
// The engine is a stateless computation over read views of the ledger store
// and the rule registry: given an account and a calendar month it produces
// the opening balance, the ordered intra-month ledger with running balance,
// and a single aggregated interest credit dated the last day of the month.
// It never mutates either store; in particular the interest credit exists
// only in the returned statement and is not posted back to the ledger.
package statement

import (
	"errors"
	"sort"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"bank-ledger/model"
	"bank-ledger/storage"
)

// Engine-level errors.
var (
	ErrUnknownAccount = errors.New("account not found")
)

var (
	hundred     = decimal.NewFromInt(100)
	daysPerYear = decimal.NewFromInt(365)
)

// Engine computes monthly statements from the ledger and the rule registry.
type Engine struct {
	ledger storage.LedgerStore
	rules  storage.RuleStore
}

// New creates a statement engine reading from the given stores.
func New(ledger storage.LedgerStore, rules storage.RuleStore) *Engine {
	return &Engine{ledger: ledger, rules: rules}
}

// Generate produces the statement for one account and month.
//
// Row ordering: intra-month transactions in ascending date order, ties
// within a date in ledger insertion order, and the synthetic interest row
// always last, dated the last day of the month with a blank transaction id.
func (e *Engine) Generate(accountID string, year, month int) (*model.Statement, error) {
	if month < 1 || month > 12 {
		return nil, model.ErrInvalidMonth
	}
	if !e.ledger.HasAccount(accountID) {
		return nil, ErrUnknownAccount
	}

	first, last := model.MonthBounds(year, month)
	txns := e.ledger.Transactions(accountID)

	opening := decimal.Zero
	var monthTxns []model.Transaction
	for _, t := range txns {
		switch {
		case t.Date.Before(first):
			opening = opening.Add(t.Signed())
		case !t.Date.After(last):
			monthTxns = append(monthTxns, t)
		}
	}
	// Stable keeps ledger insertion order within a date.
	sort.SliceStable(monthTxns, func(i, j int) bool {
		return monthTxns[i].Date.Before(monthTxns[j].Date)
	})

	st := &model.Statement{
		AccountID:      accountID,
		OpeningBalance: opening,
		Rows:           make([]model.StatementRow, 0, len(monthTxns)+1),
	}
	balance := opening
	for _, t := range monthTxns {
		balance = balance.Add(t.Signed())
		st.Rows = append(st.Rows, model.StatementRow{
			Date:          t.Date,
			TransactionID: t.TransactionID,
			Type:          t.Type,
			Amount:        t.Amount,
			Balance:       balance,
		})
	}

	interest := e.interestFor(txns, first, last)
	st.Rows = append(st.Rows, model.StatementRow{
		Date:    last,
		Type:    model.Interest,
		Amount:  interest,
		Balance: balance.Add(interest),
	})
	return st, nil
}

// interestFor computes the month's aggregated interest credit.
//
// The month is partitioned into sub-periods by breakpoints: the first and
// last day of the month, every transaction date inside it, and every rule
// effective date inside it. Because every transaction date is a breakpoint,
// the end-of-day balance at a sub-period's start holds for the whole
// sub-period. Each sub-period contributes balance * rate * days / 100 at
// scale 4; the sum is divided by 365 at scale 4 and the total rounded to two
// decimal places, all half-up.
func (e *Engine) interestFor(txns []model.Transaction, first, last civil.Date) decimal.Decimal {
	breaks := breakpoints(txns, e.rules.Rules(), first, last)

	total := decimal.Zero
	for i := 0; i < len(breaks)-1; i++ {
		start := breaks[i]
		end := breaks[i+1].AddDays(-1)
		if i == len(breaks)-2 {
			end = last
		}

		rule, ok := e.rules.ApplicableOn(start)
		if !ok {
			continue
		}
		days := end.DaysSince(start) + 1
		contribution := balanceAt(txns, start).
			Mul(rule.Rate).
			Mul(decimal.NewFromInt(int64(days))).
			DivRound(hundred, 4)
		total = total.Add(contribution)
	}

	return total.DivRound(daysPerYear, 4).Round(2)
}

// breakpoints returns the sorted distinct partition dates for the month.
func breakpoints(txns []model.Transaction, rules []model.InterestRule, first, last civil.Date) []civil.Date {
	set := map[civil.Date]struct{}{first: {}, last: {}}
	for _, t := range txns {
		if !t.Date.Before(first) && !t.Date.After(last) {
			set[t.Date] = struct{}{}
		}
	}
	for _, r := range rules {
		if !r.EffectiveDate.Before(first) && !r.EffectiveDate.After(last) {
			set[r.EffectiveDate] = struct{}{}
		}
	}
	out := make([]civil.Date, 0, len(set))
	for d := range set {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// balanceAt returns the end-of-day balance: the signed sum of all
// transactions dated on or before the given date.
func balanceAt(txns []model.Transaction, date civil.Date) decimal.Decimal {
	balance := decimal.Zero
	for _, t := range txns {
		if !t.Date.After(date) {
			balance = balance.Add(t.Signed())
		}
	}
	return balance
}
