package shift

import "context"

type ShiftRepository interface {
	// GetByID returns ErrShiftNotFound when no row matches
	GetByID(ctx context.Context, id string) (Shift, error)
}
