package reservation

type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCancelled Status = "Cancelled"
	StatusCompleted Status = "Completed"
	StatusNoShow    Status = "No-Show"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// ActivePolicy decides which statuses occupy a table for conflict purposes.
// Cancelled and No-Show never block; whether Completed keeps blocking its
// historical slot is configurable.
type ActivePolicy struct {
	CompletedBlocks bool
}

func DefaultActivePolicy() ActivePolicy {
	return ActivePolicy{CompletedBlocks: true}
}

func (p ActivePolicy) IsActive(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed:
		return true
	case StatusCompleted:
		return p.CompletedBlocks
	default:
		return false
	}
}
