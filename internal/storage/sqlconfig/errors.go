package sqlconfig

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when no row matches both the record ID and the owning user.
var ErrNotFound = errors.New("sqlconfig: record not found")

func wrapErr(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
