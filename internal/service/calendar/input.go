package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

const (
	maxTitleLength   = 200
	maxTravelMinutes = 240
	// maxRangeDays bounds ComputeAvailableDates requests.
	maxRangeDays = 3660
)

// ListExclusionsInput narrows the listed exclusion days. Nil bounds are open.
type ListExclusionsInput struct {
	From *domain.Date
	To   *domain.Date
}

func (i ListExclusionsInput) Validate() error {
	if i.From != nil && i.To != nil && i.To.Before(*i.From) {
		return domain.NewValidationError("to", "must not be before from")
	}
	return nil
}

// CreateExclusionInput marks one date as unavailable. Reason defaults to other.
type CreateExclusionInput struct {
	Date   domain.Date
	Reason domain.ExclusionReason
}

func (i CreateExclusionInput) Validate() error {
	var errs []domain.FieldError

	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if i.Reason != "" && !i.Reason.IsValid() {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "must be one of: holiday, personal, exam, other"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateCommitmentInput describes a recurring weekly external window.
type CreateCommitmentInput struct {
	Title         string
	DayOfWeek     int
	Start         domain.Clock
	End           domain.Clock
	TravelMinutes int
}

func (i CreateCommitmentInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	errs = append(errs, dayOfWeekErrors("day_of_week", i.DayOfWeek)...)
	errs = append(errs, windowErrors("", i.Start, i.End)...)
	if i.TravelMinutes < 0 || i.TravelMinutes > maxTravelMinutes {
		errs = append(errs, domain.FieldError{Field: "travel_minutes", Message: "must be between 0 and 240"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// BlockInput is one block of a new block set.
type BlockInput struct {
	DayOfWeek  int
	BlockIndex int
	Start      domain.Clock
	End        domain.Clock
}

// CreateBlockSetInput describes a weekly time-block template.
type CreateBlockSetInput struct {
	Name   string
	Blocks []BlockInput
}

// Validate checks every block, the uniqueness of (day, block index) and that
// blocks of the same day do not overlap.
func (i CreateBlockSetInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if len(i.Blocks) == 0 {
		errs = append(errs, domain.FieldError{Field: "blocks", Message: "at least one block is required"})
	}

	type key struct{ day, index int }
	seen := make(map[key]struct{}, len(i.Blocks))
	byDay := map[int][]domain.TimeRange{}

	for n, b := range i.Blocks {
		prefix := fmt.Sprintf("blocks[%d].", n)
		dayErrs := dayOfWeekErrors(prefix+"day_of_week", b.DayOfWeek)
		errs = append(errs, dayErrs...)
		if b.BlockIndex < 0 {
			errs = append(errs, domain.FieldError{Field: prefix + "block_index", Message: "must not be negative"})
		}
		winErrs := windowErrors(prefix, b.Start, b.End)
		errs = append(errs, winErrs...)

		k := key{b.DayOfWeek, b.BlockIndex}
		if _, dup := seen[k]; dup {
			errs = append(errs, domain.FieldError{Field: prefix + "block_index", Message: "duplicate block index for this day"})
		}
		seen[k] = struct{}{}

		if len(dayErrs) > 0 || len(winErrs) > 0 {
			continue
		}
		r := domain.TimeRange{Start: b.Start, End: b.End}
		for _, other := range byDay[b.DayOfWeek] {
			if r.Overlaps(other) {
				errs = append(errs, domain.FieldError{Field: prefix + "start", Message: "overlaps another block of the same day"})
				break
			}
		}
		byDay[b.DayOfWeek] = append(byDay[b.DayOfWeek], r)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AvailableDatesInput is a date range and the exclusions to drop from it.
// Exclusions may carry a time of day; only the date counts.
type AvailableDatesInput struct {
	Start      domain.Date
	End        domain.Date
	Exclusions []time.Time
}

func (i AvailableDatesInput) Validate() error {
	var errs []domain.FieldError

	if i.Start.IsZero() {
		errs = append(errs, domain.FieldError{Field: "start", Message: "required"})
	}
	if i.End.IsZero() {
		errs = append(errs, domain.FieldError{Field: "end", Message: "required"})
	}
	if len(errs) == 0 && i.Start.DaysUntil(i.End) > maxRangeDays {
		errs = append(errs, domain.FieldError{Field: "end", Message: "range must not exceed 3660 days"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func dayOfWeekErrors(field string, day int) []domain.FieldError {
	if day < 0 || day > 6 {
		return []domain.FieldError{{Field: field, Message: "must be between 0 (Sunday) and 6 (Saturday)"}}
	}
	return nil
}

func windowErrors(prefix string, start, end domain.Clock) []domain.FieldError {
	var errs []domain.FieldError
	if !start.IsValid() {
		errs = append(errs, domain.FieldError{Field: prefix + "start", Message: "must be between 00:00 and 24:00"})
	}
	if !end.IsValid() {
		errs = append(errs, domain.FieldError{Field: prefix + "end", Message: "must be between 00:00 and 24:00"})
	}
	if len(errs) == 0 && end <= start {
		errs = append(errs, domain.FieldError{Field: prefix + "end", Message: "must be after start"})
	}
	return errs
}
