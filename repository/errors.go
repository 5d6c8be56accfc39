package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicate        = errors.New("duplicate record")
	ErrReferenceMissing = errors.New("referenced record does not exist")
	ErrNullViolation    = errors.New("required column cannot be null")
	ErrInvalidDatetime  = errors.New("invalid date format")
	ErrNumericRange     = errors.New("numeric value out of range")
)

// ChildRecordsError blocks a header delete while detail rows still reference it.
type ChildRecordsError struct {
	Table string
}

func (e *ChildRecordsError) Error() string {
	return fmt.Sprintf("Cannot delete PO Header. Records exist in %s. Delete those records first.", e.Table)
}

// translate maps Postgres constraint and data errors onto the sentinels above.
func translate(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case "23503":
		return fmt.Errorf("%w: %s", ErrReferenceMissing, pqErr.Message)
	case "23505":
		return fmt.Errorf("%w: %s", ErrDuplicate, pqErr.Message)
	case "23502":
		return fmt.Errorf("%w: %s", ErrNullViolation, pqErr.Column)
	case "22007", "22008":
		return fmt.Errorf("%w: %s", ErrInvalidDatetime, pqErr.Message)
	case "22003":
		return fmt.Errorf("%w: %s", ErrNumericRange, pqErr.Message)
	}
	return err
}
