package database

import (
	"errors"
	"fmt"
)

var (
	// ErrProductNotFound is returned when a write targets a product id that is not stored
	ErrProductNotFound = errors.New("product not found")
	// ErrBoxNotFound is returned when a box id or name does not resolve to a stored box
	ErrBoxNotFound = errors.New("box not found")
)

// ConnectionError reports that the backing store could not be opened or reached.
type ConnectionError struct {
	Driver string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to %s database: %v", e.Driver, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// QueryError wraps a failed statement with the operation that issued it.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// TransactionError wraps a failed begin, commit or rollback.
type TransactionError struct {
	Op  string
	Err error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("failed to %s transaction: %v", e.Op, e.Err)
}

func (e *TransactionError) Unwrap() error { return e.Err }

// queryErr wraps err as a QueryError unless it is nil or already classified
func queryErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrProductNotFound) || errors.Is(err, ErrBoxNotFound) {
		return err
	}
	var qe *QueryError
	if errors.As(err, &qe) {
		return err
	}
	return &QueryError{Op: op, Err: err}
}
