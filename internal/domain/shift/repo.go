package shift

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned by Repository lookups when no row matches the id.
// Any other repository error is a store-level fault and must not be read as
// a missing record.
var ErrNotFound = errors.New("shift not found")

// Repository is the only persistence contract the scheduling core depends
// on: CRUD plus the by-doctor overlap queries.
type Repository interface {
	Create(ctx context.Context, sh *Shift) error
	GetByID(ctx context.Context, id uuid.UUID) (*Shift, error)
	Update(ctx context.Context, sh *Shift) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context) ([]*Shift, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Shift, error)
	// ListOverlapCandidates returns all shifts for a doctor, optionally
	// excluding one shift id so an update never conflicts with its own
	// prior version.
	ListOverlapCandidates(ctx context.Context, doctorID uuid.UUID, excludeID *uuid.UUID) ([]*Shift, error)
}

// DoctorDirectory answers whether a doctor id references an existing doctor.
type DoctorDirectory interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// TxRunner scopes validate-check-write sequences to a single unit of work so
// partial writes cannot be observed. The pg implementation opens a database
// transaction; test fakes just invoke fn.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
