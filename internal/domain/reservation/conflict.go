package reservation

import "github.com/google/uuid"

// FindConflicts scans a table's reservations and returns every one whose
// status is active under the policy and whose interval overlaps the
// candidate slot. excludeID skips the reservation being updated so it never
// conflicts with itself; pass uuid.Nil on create. Pure query, no side
// effects.
func FindConflicts(existing []*Reservation, candidate TimeSlot, excludeID uuid.UUID, policy ActivePolicy) []*Reservation {
	var conflicts []*Reservation
	for _, r := range existing {
		if r.ID() == excludeID {
			continue
		}
		if !policy.IsActive(r.Status()) {
			continue
		}
		if r.Slot().Overlaps(candidate) {
			conflicts = append(conflicts, r)
		}
	}
	return conflicts
}

// HasConflict is FindConflicts reduced to a predicate.
func HasConflict(existing []*Reservation, candidate TimeSlot, excludeID uuid.UUID, policy ActivePolicy) bool {
	return len(FindConflicts(existing, candidate, excludeID, policy)) > 0
}
