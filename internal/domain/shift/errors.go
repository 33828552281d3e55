package shift

import (
	"fmt"

	"github.com/google/uuid"
)

// The lifecycle manager reports exactly four expected failure kinds, each a
// typed error so the HTTP layer can map every variant to a status code with
// errors.As. Anything else coming out of the store propagates unclassified.

// InvalidTimeSlotError reports an interval whose start is not strictly
// before its end.
type InvalidTimeSlotError struct {
	Start TimeOfDay
	End   TimeOfDay
}

func (e *InvalidTimeSlotError) Error() string {
	return fmt.Sprintf("invalid time slot: start %s must be before end %s", e.Start, e.End)
}

// DoctorNotFoundError reports a doctor id that does not reference an
// existing doctor.
type DoctorNotFoundError struct {
	DoctorID uuid.UUID
}

func (e *DoctorNotFoundError) Error() string {
	return fmt.Sprintf("doctor %s not found", e.DoctorID)
}

// ShiftNotFoundError reports a shift id with no stored record.
type ShiftNotFoundError struct {
	ID uuid.UUID
}

func (e *ShiftNotFoundError) Error() string {
	return fmt.Sprintf("shift %s not found", e.ID)
}

// ShiftConflictError reports that a candidate interval overlaps an existing
// shift for the same doctor. Start and End carry the first conflicting
// interval for diagnostics.
type ShiftConflictError struct {
	DoctorID uuid.UUID
	Start    TimeOfDay
	End      TimeOfDay
}

func (e *ShiftConflictError) Error() string {
	return fmt.Sprintf("Shift conflict: Doctor %s already has a shift from %s to %s",
		e.DoctorID, e.Start, e.End)
}
