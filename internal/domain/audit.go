package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntityType names the kind of record an audit entry refers to.
type EntityType string

const (
	EntityTypePlanGroup     EntityType = "plan_group"
	EntityTypeSession       EntityType = "session"
	EntityTypeRescheduleLog EntityType = "reschedule_log"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypePlanGroup, EntityTypeSession, EntityTypeRescheduleLog:
		return true
	}
	return false
}

// AuditAction is the mutation an audit entry records.
type AuditAction string

const (
	AuditActionCreate       AuditAction = "create"
	AuditActionUpdate       AuditAction = "update"
	AuditActionDelete       AuditAction = "delete"
	AuditActionStatusChange AuditAction = "status_change"
	AuditActionGenerate     AuditAction = "generate"
	AuditActionReorder      AuditAction = "reorder"
	AuditActionReschedule   AuditAction = "reschedule"
	AuditActionRollback     AuditAction = "rollback"
)

func (a AuditAction) String() string { return string(a) }

// AuditRecord logs a mutation of a student's plan data.
type AuditRecord struct {
	ID         uuid.UUID      `json:"id"`
	StudentID  uuid.UUID      `json:"student_id"`
	EntityType EntityType     `json:"entity_type"`
	EntityID   *uuid.UUID     `json:"entity_id,omitempty"`
	Action     AuditAction    `json:"action"`
	Changes    map[string]any `json:"changes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// NewAuditRecord builds a record stamped with a fresh id and the current time.
func NewAuditRecord(studentID uuid.UUID, entityType EntityType, entityID uuid.UUID, action AuditAction, changes map[string]any) AuditRecord {
	return AuditRecord{
		ID:         uuid.New(),
		StudentID:  studentID,
		EntityType: entityType,
		EntityID:   &entityID,
		Action:     action,
		Changes:    changes,
		CreatedAt:  time.Now().UTC(),
	}
}
