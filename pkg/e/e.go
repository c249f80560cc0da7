package e

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

func Wrap(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}

var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation failed")
	ErrPersistence = errors.New("persistence failed")
	ErrDeadline    = errors.New("deadline exceeded")
	ErrCanceled    = errors.New("context canceled")

	ErrInvalidCoordinates = fmt.Errorf("invalid coordinates: %w", ErrValidation)
)

// ValidationError lists the request fields that were missing or malformed.
type ValidationError struct {
	Fields []string
}

func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return ErrValidation.Error()
	}
	return fmt.Sprintf("%s: missing or invalid %s", ErrValidation, strings.Join(v.Fields, ", "))
}

func (v *ValidationError) Unwrap() error { return ErrValidation }

// Persistence marks err as a storage failure of op. Context errors keep
// their own sentinel as well so callers can tell a timeout from a broken store.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w: %w", op, ErrPersistence, ErrDeadline)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w: %w", op, ErrPersistence, ErrCanceled)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrPersistence, err)
}

func WrapError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrDeadline)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, ErrCanceled)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%s: pg error %s: %w", op, pgErr.Code, ErrPersistence)
	}
	return Persistence(op, err)
}
