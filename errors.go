package attendance

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure categories a generation run can hit.
// Every failure is terminal for the run; nothing is retried.
var (
	ErrDate         = errors.New("attendance: invalid date")
	ErrRoster       = errors.New("attendance: unreadable roster")
	ErrLogo         = errors.New("attendance: unusable logo")
	ErrEncode       = errors.New("attendance: QR payload cannot be encoded")
	ErrWrite        = errors.New("attendance: document cannot be written")
	ErrInvalidParam = errors.New("attendance: invalid parameter")
)

// SheetError represents an error that occurred during a specific generation
// step. It wraps an underlying error and includes the operation name for
// context.
type SheetError struct {
	Op  string // operation name, e.g. "Generate", "WriteFile"
	Err error  // underlying error
}

func (e *SheetError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("attendance.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("attendance.%s: unknown error", e.Op)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// newSheetError creates a new SheetError wrapping the given error with
// operation context.
func newSheetError(op string, err error) *SheetError {
	return &SheetError{Op: op, Err: err}
}
