package cli

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"bank-ledger/model"
)

// Table rendering for the interactive console. Column widths follow the
// canonical statement format: dates as YYYYMMDD, transaction ids left-aligned
// to the width of a real id (11 characters, blank for interest rows), the
// type letter left-aligned to width 4, and amounts right-aligned to width 7
// with thousands separators and two decimal places.

// formatAmount renders a decimal as #,##0.00.
func formatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String() + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// renderTransactions renders the account listing printed after a successful
// transaction entry.
func renderTransactions(accountID string, txns []model.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\nAccount: %s\n", accountID)
	b.WriteString("| Date     | Txn Id      | Type | Amount |\n")
	for _, t := range txns {
		fmt.Fprintf(&b, "| %s | %-11s | %-4s | %6s |\n",
			model.FormatDate(t.Date), t.TransactionID, t.Type, t.Amount.StringFixed(2))
	}
	return b.String()
}

// renderRules renders the full rule registry listing.
func renderRules(rules []model.InterestRule) string {
	var b strings.Builder
	b.WriteString("\nInterest rules:\n")
	b.WriteString("| Date     | RuleId | Rate (%) |\n")
	for _, r := range rules {
		fmt.Fprintf(&b, "| %s | %-6s | %8s |\n",
			model.FormatDate(r.EffectiveDate), r.RuleID, r.Rate.StringFixed(2))
	}
	return b.String()
}

// renderStatement renders a monthly statement in the canonical text format.
func renderStatement(st *model.Statement) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\nAccount: %s\n", st.AccountID)
	b.WriteString("| Date     | Txn Id      | Type | Amount  | Balance |\n")
	for _, row := range st.Rows {
		fmt.Fprintf(&b, "| %s | %-11s | %-4s | %7s | %7s |\n",
			model.FormatDate(row.Date), row.TransactionID, row.Type,
			formatAmount(row.Amount), formatAmount(row.Balance))
	}
	return b.String()
}
