package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
)

//go:generate mockgen -source=user_repository.go -destination=mocks/mock_user_repository.go -package=mocks
//go:generate mockgen -source=product_repository.go -destination=mocks/mock_product_repository.go -package=mocks
//go:generate mockgen -source=favorite_repository.go -destination=mocks/mock_favorite_repository.go -package=mocks

var tracer = otel.Tracer("api.repository")

var (
	// ErrUniqueViolation is wrapped into errors caused by a UNIQUE constraint.
	ErrUniqueViolation = errors.New("unique constraint violation")
	// ErrForeignKeyViolation is wrapped into errors caused by a dangling reference.
	ErrForeignKeyViolation = errors.New("foreign key constraint violation")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"

	sqlitePrimaryKeyViolation = 1555
	sqliteUniqueViolation     = 2067
	sqliteForeignKeyViolation = 787
)

// classify tags err with ErrUniqueViolation or ErrForeignKeyViolation when the driver
// reports one of those constraints. Other errors pass through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
		}
		return err
	}

	// The SQLite driver exposes extended result codes through Code().
	var coded interface{ Code() int }
	if errors.As(err, &coded) {
		switch coded.Code() {
		case sqliteUniqueViolation, sqlitePrimaryKeyViolation:
			return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
		case sqliteForeignKeyViolation:
			return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
		}
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
	}
	return err
}
