package shift

// ValidateSlot enforces slot validity: both endpoints within a single day
// and start strictly before end. It is pure and always runs before any store
// access, so malformed input fails without a round trip.
func ValidateSlot(start, end TimeOfDay) error {
	if !start.Valid() || !end.Valid() || start >= end {
		return &InvalidTimeSlotError{Start: start, End: end}
	}
	return nil
}

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) overlap. Touching endpoints do not count, so back-to-back
// slots never conflict.
func Overlaps(aStart, aEnd, bStart, bEnd TimeOfDay) bool {
	return max(aStart, bStart) < min(aEnd, bEnd)
}
