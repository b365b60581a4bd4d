package service

import (
	"errors"
	"fmt"
)

var (
	ErrMovieNotFound    = errors.New("movie not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrShowtimeNotFound = errors.New("showtime not found")
	ErrTicketNotFound   = errors.New("ticket not found")
	ErrComboNotFound    = errors.New("combo item not found")
	ErrOrderNotFound    = errors.New("order not found")
)

// DanglingReferenceError rejects a create/replace that names a foreign id
// with no matching record. It is a write-time failure, distinct from a plain
// not-found on the requested resource itself.
type DanglingReferenceError struct {
	Entity string
	ID     uint
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("%s not found with id %d", e.Entity, e.ID)
}

// DeletionDeniedError blocks a delete while other records still reference
// the target. Dependents carries the exact count reported in Reason.
type DeletionDeniedError struct {
	Entity     string
	Dependents int64
	Reason     string
}

func (e *DeletionDeniedError) Error() string {
	return e.Reason
}
