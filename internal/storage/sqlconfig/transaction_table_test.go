package sqlconfig

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE transactions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			txn_date TEXT NOT NULL,
			description TEXT NOT NULL,
			amount TEXT NOT NULL
		)`)
	require.NoError(t, err)
	return db
}

func replaceForSession(t *testing.T, db *sql.DB, sessionID uuid.UUID, creates []*TransactionCreate) {
	t.Helper()
	tx, err := db.Begin()
	require.NoError(t, err)
	require.NoError(t, NewTransactionsWriter(tx).ReplaceForSession(context.Background(), sessionID, creates))
	require.NoError(t, tx.Commit())
}

func TestReplaceAndList_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	sessionID := uuid.Must(uuid.NewV4())

	creates := []*TransactionCreate{
		{
			Date:        time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
			Description: "CAFE",
			Amount:      decimal.RequireFromString("-4.50"),
		},
		{
			Date:        time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			Description: "SALARY",
			Amount:      decimal.RequireFromString("2000.00"),
		},
	}
	replaceForSession(t, db, sessionID, creates)

	rows, err := NewTransactionsTable(db).ListForSession(context.Background(), sessionID)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	// Insertion order is preserved, not date order.
	assert.Equal(t, "CAFE", rows[0].Description)
	assert.Equal(t, time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC), rows[0].Date)
	assert.True(t, rows[0].Amount.Equal(decimal.RequireFromString("-4.50")))
	assert.Equal(t, "SALARY", rows[1].Description)
	assert.Equal(t, sessionID, rows[1].SessionID)
}

func TestListForSession_UnknownSession(t *testing.T) {
	db := newTestDB(t)

	_, err := NewTransactionsTable(db).ListForSession(context.Background(), uuid.Must(uuid.NewV4()))

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestReplaceForSession_ReplacesExistingRows(t *testing.T) {
	db := newTestDB(t)
	sessionID := uuid.Must(uuid.NewV4())
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	replaceForSession(t, db, sessionID, []*TransactionCreate{
		{Date: date, Description: "OLD", Amount: decimal.RequireFromString("-1.00")},
		{Date: date, Description: "OLD", Amount: decimal.RequireFromString("-2.00")},
	})
	replaceForSession(t, db, sessionID, []*TransactionCreate{
		{Date: date, Description: "NEW", Amount: decimal.RequireFromString("-3.00")},
	})

	rows, err := NewTransactionsTable(db).ListForSession(context.Background(), sessionID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "NEW", rows[0].Description)
}

func TestSessions_AreIsolated(t *testing.T) {
	db := newTestDB(t)
	first := uuid.Must(uuid.NewV4())
	second := uuid.Must(uuid.NewV4())
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	replaceForSession(t, db, first, []*TransactionCreate{
		{Date: date, Description: "FIRST", Amount: decimal.RequireFromString("-1.00")},
	})
	replaceForSession(t, db, second, []*TransactionCreate{
		{Date: date, Description: "SECOND", Amount: decimal.RequireFromString("-2.00")},
	})

	rows, err := NewTransactionsTable(db).ListForSession(context.Background(), first)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "FIRST", rows[0].Description)
}
