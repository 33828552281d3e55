package shift

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Service is the shift lifecycle manager. It is stateless between calls;
// all durable state lives in the Repository. Create and Update serialize
// per doctor so two concurrent writes cannot both pass the conflict check
// before either lands.
type Service struct {
	shifts  Repository
	doctors DoctorDirectory
	tx      TxRunner

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewService(shifts Repository, doctors DoctorDirectory, tx TxRunner) *Service {
	return &Service{
		shifts:  shifts,
		doctors: doctors,
		tx:      tx,
		locks:   make(map[uuid.UUID]*sync.Mutex),
	}
}

// doctorLock returns the write lock for one doctor's schedule.
func (s *Service) doctorLock(doctorID uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[doctorID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[doctorID] = l
	}
	return l
}

// FindConflicts returns every stored shift for the doctor whose interval
// overlaps the candidate, in store order. excludeID omits one shift from the
// check (used by Update). Read-only and idempotent for a fixed store state.
func (s *Service) FindConflicts(ctx context.Context, doctorID uuid.UUID, start, end TimeOfDay, excludeID *uuid.UUID) ([]*Shift, error) {
	candidates, err := s.shifts.ListOverlapCandidates(ctx, doctorID, excludeID)
	if err != nil {
		return nil, fmt.Errorf("list overlap candidates: %w", err)
	}
	var conflicts []*Shift
	for _, c := range candidates {
		if Overlaps(c.Start, c.End, start, end) {
			conflicts = append(conflicts, c)
		}
	}
	return conflicts, nil
}

// Create books a new shift. Checks run in a fixed order so error responses
// are deterministic: doctor existence, then slot shape, then conflicts.
func (s *Service) Create(ctx context.Context, doctorID uuid.UUID, start, end TimeOfDay, room string) (*Shift, error) {
	l := s.doctorLock(doctorID)
	l.Lock()
	defer l.Unlock()

	var created *Shift
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.checkDoctor(ctx, doctorID); err != nil {
			return err
		}
		if err := ValidateSlot(start, end); err != nil {
			return err
		}
		conflicts, err := s.FindConflicts(ctx, doctorID, start, end, nil)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			first := conflicts[0]
			return &ShiftConflictError{DoctorID: doctorID, Start: first.Start, End: first.End}
		}
		sh := &Shift{DoctorID: doctorID, Start: start, End: end, Room: room}
		if err := s.shifts.Create(ctx, sh); err != nil {
			return fmt.Errorf("create shift: %w", err)
		}
		created = sh
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update rebooks an existing shift with new values, re-validating every
// invariant against the new bounds. The shift itself is excluded from the
// conflict check so it never conflicts with its own prior state.
func (s *Service) Update(ctx context.Context, id, doctorID uuid.UUID, start, end TimeOfDay, room string) (*Shift, error) {
	l := s.doctorLock(doctorID)
	l.Lock()
	defer l.Unlock()

	var updated *Shift
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		sh, err := s.shifts.GetByID(ctx, id)
		if errors.Is(err, ErrNotFound) {
			return &ShiftNotFoundError{ID: id}
		}
		if err != nil {
			return fmt.Errorf("load shift: %w", err)
		}
		if err := s.checkDoctor(ctx, doctorID); err != nil {
			return err
		}
		sh.DoctorID = doctorID
		sh.Start = start
		sh.End = end
		sh.Room = room
		if err := ValidateSlot(start, end); err != nil {
			return err
		}
		conflicts, err := s.FindConflicts(ctx, doctorID, start, end, &id)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			first := conflicts[0]
			return &ShiftConflictError{DoctorID: doctorID, Start: first.Start, End: first.End}
		}
		if err := s.shifts.Update(ctx, sh); err != nil {
			return fmt.Errorf("update shift: %w", err)
		}
		updated = sh
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Get loads a shift by id. Only a repository ErrNotFound becomes a
// ShiftNotFoundError; store faults propagate unclassified.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Shift, error) {
	sh, err := s.shifts.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, &ShiftNotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("load shift: %w", err)
	}
	return sh, nil
}

// List returns all shifts, optionally filtered to one doctor.
func (s *Service) List(ctx context.Context, doctorID *uuid.UUID) ([]*Shift, error) {
	if doctorID != nil {
		return s.shifts.ListByDoctor(ctx, *doctorID)
	}
	return s.shifts.List(ctx)
}

// Delete removes a shift by id. The only invariant is existence.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		exists, err := s.shifts.ExistsByID(ctx, id)
		if err != nil {
			return fmt.Errorf("check shift exists: %w", err)
		}
		if !exists {
			return &ShiftNotFoundError{ID: id}
		}
		if err := s.shifts.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete shift: %w", err)
		}
		return nil
	})
}

func (s *Service) checkDoctor(ctx context.Context, doctorID uuid.UUID) error {
	exists, err := s.doctors.Exists(ctx, doctorID)
	if err != nil {
		return fmt.Errorf("check doctor exists: %w", err)
	}
	if !exists {
		return &DoctorNotFoundError{DoctorID: doctorID}
	}
	return nil
}
