package queries_test

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	db, err := gorm.Open(dialector, &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return db, mock
}

var orderColumnNames = []string{
	"id", "invoice_number", "invoice_date", "customer", "address", "locality", "status",
	"branch_id", "assigned_by", "assigned_at", "delivered_by", "delivered_at",
	"receiver_document", "signature_ref", "notes", "synced_at",
}

var invoiceDate = time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)
