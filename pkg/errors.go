package pkg

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMalformedInput   = errors.New("malformed input")
	ErrNegativeDistance = errors.New("negative distance")
	ErrUnknownReference = errors.New("unknown reference location")
)

// MalformedInputError is returned when a row misses a field or carries a value that can not be parsed.
type MalformedInputError struct {
	Row    int // 1-based data row, 0 if unknown
	Record []string
	Reason string
}

func NewMalformedInputError(row int, record []string, reason string) *MalformedInputError {
	return &MalformedInputError{
		Row:    row,
		Record: append([]string(nil), record...),
		Reason: reason,
	}
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input at row %d [%s]: %s", e.Row, strings.Join(e.Record, ","), e.Reason)
}

func (e *MalformedInputError) Unwrap() error {
	return ErrMalformedInput
}

type NegativeDistanceError struct {
	Row      int
	ID1      int64
	ID2      int64
	Distance float64
}

func (e *NegativeDistanceError) Error() string {
	return fmt.Sprintf("negative distance %v between %d and %d at row %d", e.Distance, e.ID1, e.ID2, e.Row)
}

// a negative distance is also a malformed row.
func (e *NegativeDistanceError) Unwrap() []error {
	return []error{ErrNegativeDistance, ErrMalformedInput}
}

type UnknownReferenceError struct {
	Reference int64
}

func (e *UnknownReferenceError) Error() string {
	return fmt.Sprintf("reference location %d has no outbound distance records", e.Reference)
}

func (e *UnknownReferenceError) Unwrap() error {
	return ErrUnknownReference
}

// DisconnectedGraphWarning is not a failure. unreachable pairs stay +Inf in the matrix,
// the warning only carries them to the log.
type DisconnectedGraphWarning struct {
	UnreachablePairs [][2]int64
}

func (w DisconnectedGraphWarning) Error() string {
	return fmt.Sprintf("distance graph is disconnected: %d unreachable location pairs", len(w.UnreachablePairs))
}

func (w DisconnectedGraphWarning) Empty() bool {
	return len(w.UnreachablePairs) == 0
}
