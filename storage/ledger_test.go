package storage

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bank-ledger/model"
)

func date(t *testing.T, token string) civil.Date {
	t.Helper()
	d, err := model.ParseDate(token)
	require.NoError(t, err)
	return d
}

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLedgerRecord(t *testing.T) {
	t.Run("first deposit creates the account", func(t *testing.T) {
		ledger := NewLedger()

		txn, err := ledger.Record(date(t, "20230505"), "AC001", model.Deposit, amt("100.00"))
		require.NoError(t, err)
		assert.Equal(t, "20230505-01", txn.TransactionID)
		assert.Equal(t, "AC001", txn.AccountID)
		assert.True(t, ledger.HasAccount("AC001"))
		assert.Equal(t, "100.00", ledger.Balance("AC001").StringFixed(2))
	})

	t.Run("withdrawal against unknown account is rejected", func(t *testing.T) {
		ledger := NewLedger()

		_, err := ledger.Record(date(t, "20230101"), "NEW", model.Withdrawal, amt("1.00"))
		assert.ErrorIs(t, err, ErrFirstTransactionNotDeposit)
		assert.False(t, ledger.HasAccount("NEW"))
		assert.Empty(t, ledger.Transactions("NEW"))
	})

	t.Run("withdrawal exceeding the balance is rejected", func(t *testing.T) {
		ledger := NewLedger()
		_, err := ledger.Record(date(t, "20230101"), "A", model.Deposit, amt("50.00"))
		require.NoError(t, err)

		_, err = ledger.Record(date(t, "20230102"), "A", model.Withdrawal, amt("60.00"))
		assert.ErrorIs(t, err, ErrInsufficientFunds)
		assert.Len(t, ledger.Transactions("A"), 1)
		assert.Equal(t, "50.00", ledger.Balance("A").StringFixed(2))
	})

	t.Run("withdrawal down to exactly zero is allowed", func(t *testing.T) {
		ledger := NewLedger()
		_, err := ledger.Record(date(t, "20230101"), "A", model.Deposit, amt("50.00"))
		require.NoError(t, err)

		_, err = ledger.Record(date(t, "20230102"), "A", model.Withdrawal, amt("50.00"))
		require.NoError(t, err)
		assert.Equal(t, "0.00", ledger.Balance("A").StringFixed(2))
	})

	t.Run("rejects zero and negative amounts", func(t *testing.T) {
		ledger := NewLedger()

		_, err := ledger.Record(date(t, "20230101"), "A", model.Deposit, amt("0"))
		assert.ErrorIs(t, err, ErrInvalidAmount)
		_, err = ledger.Record(date(t, "20230101"), "A", model.Deposit, amt("-5.00"))
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("rejects the interest type", func(t *testing.T) {
		ledger := NewLedger()

		_, err := ledger.Record(date(t, "20230101"), "A", model.Interest, amt("1.00"))
		assert.ErrorIs(t, err, model.ErrInvalidType)
	})

	t.Run("amounts are rounded half-up to two decimals before validation", func(t *testing.T) {
		ledger := NewLedger()

		txn, err := ledger.Record(date(t, "20230101"), "A", model.Deposit, amt("100.005"))
		require.NoError(t, err)
		assert.Equal(t, "100.01", txn.Amount.StringFixed(2))

		// Rounds to zero, so it fails amount validation.
		_, err = ledger.Record(date(t, "20230101"), "A", model.Deposit, amt("0.004"))
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestLedgerTransactionIDs(t *testing.T) {
	t.Run("counter is shared across accounts within a date", func(t *testing.T) {
		ledger := NewLedger()

		first, err := ledger.Record(date(t, "20230626"), "AC001", model.Deposit, amt("10.00"))
		require.NoError(t, err)
		second, err := ledger.Record(date(t, "20230626"), "AC002", model.Deposit, amt("10.00"))
		require.NoError(t, err)

		assert.Equal(t, "20230626-01", first.TransactionID)
		assert.Equal(t, "20230626-02", second.TransactionID)
	})

	t.Run("counter restarts per date", func(t *testing.T) {
		ledger := NewLedger()

		_, err := ledger.Record(date(t, "20230626"), "AC001", model.Deposit, amt("10.00"))
		require.NoError(t, err)
		next, err := ledger.Record(date(t, "20230627"), "AC001", model.Deposit, amt("10.00"))
		require.NoError(t, err)

		assert.Equal(t, "20230627-01", next.TransactionID)
	})
}

func TestLedgerTransactions(t *testing.T) {
	ledger := NewLedger()
	_, err := ledger.Record(date(t, "20230601"), "AC001", model.Deposit, amt("150.00"))
	require.NoError(t, err)
	_, err = ledger.Record(date(t, "20230626"), "AC001", model.Withdrawal, amt("20.00"))
	require.NoError(t, err)

	txns := ledger.Transactions("AC001")
	require.Len(t, txns, 2)
	assert.Equal(t, model.Deposit, txns[0].Type)
	assert.Equal(t, model.Withdrawal, txns[1].Type)

	// The read view is a copy; mutating it must not affect the store.
	txns[0].Amount = amt("999.00")
	assert.Equal(t, "130.00", ledger.Balance("AC001").StringFixed(2))
}
