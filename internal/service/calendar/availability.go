package calendar

import (
	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/internal/service/plan/availability"
)

// ComputeAvailableDates lists the dates of [start, end] not excluded. A
// reversed range yields an empty list.
func (s *Service) ComputeAvailableDates(input AvailableDatesInput) ([]domain.Date, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return availability.ComputeAvailableDates(input.Start, input.End, input.Exclusions), nil
}
