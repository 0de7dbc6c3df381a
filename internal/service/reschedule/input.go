package reschedule

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// SubmitInput is an accepted suggestion for one plan group.
type SubmitInput struct {
	PlanGroupID uuid.UUID
	Suggestion  domain.Suggestion
}

// Validate checks all fields and collects all errors.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	if i.PlanGroupID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "plan_group_id", Message: "required"})
	}
	if !i.Suggestion.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "suggestion.type", Message: "must be one of: compress_remaining, extend_period, redistribute"})
	}
	if i.Suggestion.Type == domain.SuggestionExtendPeriod && i.Suggestion.NewEndDate == nil {
		errs = append(errs, domain.FieldError{Field: "suggestion.new_end_date", Message: "required for extend_period"})
	}
	if i.Suggestion.PlanGroupID != uuid.Nil && i.Suggestion.PlanGroupID != i.PlanGroupID {
		errs = append(errs, domain.FieldError{Field: "suggestion.plan_group_id", Message: "does not match plan_group_id"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
