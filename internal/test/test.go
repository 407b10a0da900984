// Package test provides shared helpers for handler and store tests.
package test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"meus-podcasts/internal/db"
)

// NewMockDB creates a Store backed by sqlmock. The connection is closed
// when the test finishes.
func NewMockDB(t *testing.T) (*db.Store, sqlmock.Sqlmock) {
	t.Helper()

	mockDb, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { mockDb.Close() })

	sqlxDB := sqlx.NewDb(mockDb, "sqlmock")
	return db.NewStore(sqlxDB), mock
}
