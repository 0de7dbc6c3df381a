package domain

import "github.com/google/uuid"

// PlanGroupFilter contains filtering/pagination parameters for plan group listing.
// A zero StudentID matches every student.
type PlanGroupFilter struct {
	StudentID uuid.UUID
	Statuses  []PlanStatus
	Limit     int
	Offset    int
}

// SessionFilter narrows a plan group's sessions. Nil fields match everything.
type SessionFilter struct {
	PlanGroupID uuid.UUID
	From        *Date
	To          *Date
	Statuses    []ItemStatus
	Kind        *SessionKind
	BlockIndex  *int
}
