package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"explorewithme/internal/domain"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// mapError translates driver errors into domain sentinels.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var perr *pq.Error
	if errors.As(err, &perr) {
		switch perr.Code {
		case pqUniqueViolation:
			return fmt.Errorf("%w: %s", domain.ErrConflict, perr.Message)
		case pqForeignKeyViolation:
			return fmt.Errorf("%w: %s", domain.ErrConflict, perr.Message)
		}
	}
	return err
}

// expectAffected returns ErrNotFound when a write touched no rows.
func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
