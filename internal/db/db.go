package db

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq" // Also registers the database driver
	"github.com/pressly/goose/v3"

	"meus-podcasts/internal/db/migrations"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint.
	ErrDuplicate = errors.New("record already exists")
)

// Store provides the data-access methods over a database handle. Each
// method owns its statement or transaction; there is no shared session.
type Store struct {
	db *sqlx.DB
}

// NewStore wraps a database connection.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Connect opens and pings a PostgreSQL connection.
func Connect(databaseURL string) (*sqlx.DB, error) {
	return sqlx.Connect("postgres", databaseURL)
}

// RunMigrations applies the embedded goose migrations, including the
// seeded initial podcast row.
func RunMigrations(ctx context.Context, db *sqlx.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db.DB, ".")
}

// isUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation. The constraint is the final arbiter under concurrent
// inserts; callers translate this to ErrDuplicate.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
