package plan

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

const maxNameLength = 200

// CreatePlanGroupInput holds the parameters for creating a plan group.
// Either both period dates or a target date must be given.
type CreatePlanGroupInput struct {
	Name           string
	Purpose        string
	SchedulerType  string
	PeriodStart    *domain.Date
	PeriodEnd      *domain.Date
	TargetDate     *domain.Date
	OrganizationID *uuid.UUID
	TemplateID     *uuid.UUID
	BlockSetID     *uuid.UUID
	Settings       *domain.PartialSchedulerSettings
}

// Validate checks all fields and collects all errors.
func (i CreatePlanGroupInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateName(i.Name)...)
	errs = append(errs, validatePeriod(i.PeriodStart, i.PeriodEnd, i.TargetDate)...)
	errs = append(errs, settingsErrors(i.Settings)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdatePlanGroupInput holds the editable fields of a plan group. Nil fields
// are left unchanged.
type UpdatePlanGroupInput struct {
	PlanGroupID uuid.UUID
	Name        *string
	Purpose     *string
	PeriodStart *domain.Date
	PeriodEnd   *domain.Date
	TargetDate  *domain.Date
	BlockSetID  *uuid.UUID
	Settings    *domain.PartialSchedulerSettings
}

// Validate checks all fields and collects all errors.
func (i UpdatePlanGroupInput) Validate() error {
	var errs []domain.FieldError

	if i.PlanGroupID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "plan_group_id", Message: "required"})
	}
	if i.Name == nil && i.Purpose == nil && i.PeriodStart == nil && i.PeriodEnd == nil &&
		i.TargetDate == nil && i.BlockSetID == nil && i.Settings == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = append(errs, validateName(*i.Name)...)
	}
	errs = append(errs, settingsErrors(i.Settings)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListPlanGroupsInput holds filtering and pagination for listing.
type ListPlanGroupsInput struct {
	Statuses []domain.PlanStatus
	Limit    int
	Offset   int
}

// Validate checks all fields and collects all errors.
func (i ListPlanGroupsInput) Validate() error {
	var errs []domain.FieldError

	for _, s := range i.Statuses {
		if !s.IsValid() {
			errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status " + string(s)})
		}
	}
	if i.Limit < 0 || i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 100"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TransitionStatusInput requests a lifecycle transition.
type TransitionStatusInput struct {
	PlanGroupID uuid.UUID
	Status      domain.PlanStatus
}

// Validate checks all fields and collects all errors.
func (i TransitionStatusInput) Validate() error {
	var errs []domain.FieldError

	if i.PlanGroupID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "plan_group_id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddContentInput adds a content range to a plan group. Catalog items take
// their type and title from the catalog when omitted.
type AddContentInput struct {
	PlanGroupID   uuid.UUID
	ContentID     *uuid.UUID
	ContentType   domain.ContentType
	Title         string
	Subject       string
	IsWeakSubject bool
	StartRange    int
	EndRange      int
	UnitMinutes   *int
}

// Validate checks all fields and collects all errors.
func (i AddContentInput) Validate() error {
	var errs []domain.FieldError

	if i.PlanGroupID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "plan_group_id", Message: "required"})
	}
	if i.ContentID == nil {
		if !i.ContentType.IsValid() {
			errs = append(errs, domain.FieldError{Field: "content_type", Message: "must be one of: book, lecture, custom"})
		}
		if strings.TrimSpace(i.Title) == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
	} else if i.ContentType != "" && !i.ContentType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "content_type", Message: "must be one of: book, lecture, custom"})
	}
	if i.StartRange < 1 {
		errs = append(errs, domain.FieldError{Field: "start_range", Message: "must be at least 1"})
	}
	if i.EndRange < i.StartRange {
		errs = append(errs, domain.FieldError{Field: "end_range", Message: "must not be before start_range"})
	}
	if i.UnitMinutes != nil && *i.UnitMinutes < 1 {
		errs = append(errs, domain.FieldError{Field: "unit_minutes", Message: "must be at least 1"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListSessionsInput narrows the sessions of a plan group.
type ListSessionsInput struct {
	PlanGroupID uuid.UUID
	From        *domain.Date
	To          *domain.Date
	Statuses    []domain.ItemStatus
}

// Validate checks all fields and collects all errors.
func (i ListSessionsInput) Validate() error {
	var errs []domain.FieldError

	if i.PlanGroupID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "plan_group_id", Message: "required"})
	}
	if i.From != nil && i.To != nil && i.To.Before(*i.From) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
	}
	for _, s := range i.Statuses {
		if !s.IsValid() {
			errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status " + string(s)})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateSessionStatusInput moves a session along the item lane.
// Progress is optional; completing always sets it to 100.
type UpdateSessionStatusInput struct {
	SessionID uuid.UUID
	Status    domain.ItemStatus
	Progress  *int
}

// Validate checks all fields and collects all errors.
func (i UpdateSessionStatusInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	if i.Progress != nil && (*i.Progress < 0 || *i.Progress > 100) {
		errs = append(errs, domain.FieldError{Field: "progress", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReorderDayInput moves one timeline item of a day.
type ReorderDayInput struct {
	PlanGroupID    uuid.UUID
	Date           domain.Date
	MovedID        string
	InsertIndex    int
	Mode           domain.ReorderMode
	AcceptOverflow bool
}

// Validate checks all fields and collects all errors.
func (i ReorderDayInput) Validate() error {
	var errs []domain.FieldError

	if i.PlanGroupID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "plan_group_id", Message: "required"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be push or pull"})
	}
	if i.InsertIndex < 0 {
		errs = append(errs, domain.FieldError{Field: "insert_index", Message: "must not be negative"})
	}
	if strings.TrimSpace(i.MovedID) == "" {
		errs = append(errs, domain.FieldError{Field: "moved_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return []domain.FieldError{{Field: "name", Message: "required"}}
	}
	if len(name) > maxNameLength {
		return []domain.FieldError{{Field: "name", Message: "max 200 characters"}}
	}
	return nil
}

// validatePeriod requires a complete ordered period or a target date.
func validatePeriod(start, end, target *domain.Date) []domain.FieldError {
	switch {
	case (start == nil) != (end == nil) && target == nil:
		return []domain.FieldError{{Field: "period", Message: "period_start and period_end must be given together"}}
	case start == nil && end == nil && target == nil:
		return []domain.FieldError{{Field: "period", Message: "a period or a target_date is required"}}
	case start != nil && end != nil && end.Before(*start):
		return []domain.FieldError{{Field: "period_end", Message: "must not be before period_start"}}
	case start != nil && target != nil && end == nil && target.Before(*start):
		return []domain.FieldError{{Field: "target_date", Message: "must not be before period_start"}}
	}
	return nil
}

func settingsErrors(p *domain.PartialSchedulerSettings) []domain.FieldError {
	if err := p.Validate(); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			out := make([]domain.FieldError, len(ve.Errors))
			for i, fe := range ve.Errors {
				out[i] = domain.FieldError{Field: "settings." + fe.Field, Message: fe.Message}
			}
			return out
		}
		return []domain.FieldError{{Field: "settings", Message: err.Error()}}
	}
	return nil
}
