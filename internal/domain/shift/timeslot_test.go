package shift

import (
	"errors"
	"testing"
)

func TestValidateSlot(t *testing.T) {
	if err := ValidateSlot(NewTimeOfDay(9, 0), NewTimeOfDay(17, 0)); err != nil {
		t.Errorf("valid slot rejected: %v", err)
	}

	var invalid *InvalidTimeSlotError

	err := ValidateSlot(NewTimeOfDay(9, 0), NewTimeOfDay(9, 0))
	if !errors.As(err, &invalid) {
		t.Errorf("zero-length slot: got %v, want InvalidTimeSlotError", err)
	}

	err = ValidateSlot(NewTimeOfDay(17, 0), NewTimeOfDay(9, 0))
	if !errors.As(err, &invalid) {
		t.Errorf("inverted slot: got %v, want InvalidTimeSlotError", err)
	}
}

// Endpoints built outside the JSON path still have to land within a day.
func TestValidateSlotRejectsOutOfDayBounds(t *testing.T) {
	var invalid *InvalidTimeSlotError

	if err := ValidateSlot(TimeOfDay(-10), NewTimeOfDay(9, 0)); !errors.As(err, &invalid) {
		t.Errorf("negative start: got %v, want InvalidTimeSlotError", err)
	}
	if err := ValidateSlot(NewTimeOfDay(9, 0), NewTimeOfDay(24, 30)); !errors.As(err, &invalid) {
		t.Errorf("end past midnight: got %v, want InvalidTimeSlotError", err)
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd TimeOfDay
		want                       bool
	}{
		{"disjoint", NewTimeOfDay(8, 0), NewTimeOfDay(10, 0), NewTimeOfDay(12, 0), NewTimeOfDay(14, 0), false},
		{"back to back", NewTimeOfDay(8, 0), NewTimeOfDay(12, 0), NewTimeOfDay(12, 0), NewTimeOfDay(16, 0), false},
		{"partial overlap", NewTimeOfDay(8, 0), NewTimeOfDay(12, 0), NewTimeOfDay(11, 0), NewTimeOfDay(15, 0), true},
		{"one minute overlap", NewTimeOfDay(8, 0), NewTimeOfDay(12, 1), NewTimeOfDay(12, 0), NewTimeOfDay(16, 0), true},
		{"containment", NewTimeOfDay(8, 0), NewTimeOfDay(18, 0), NewTimeOfDay(10, 0), NewTimeOfDay(12, 0), true},
		{"identical", NewTimeOfDay(9, 0), NewTimeOfDay(17, 0), NewTimeOfDay(9, 0), NewTimeOfDay(17, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			if got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric in the two intervals.
			sym := Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd)
			if sym != got {
				t.Errorf("Overlaps not symmetric: %v vs %v", got, sym)
			}
		})
	}
}
