package domain

// StudyReviewRatio is the repeating cycle of study days followed by review days.
type StudyReviewRatio struct {
	StudyDays  int `json:"study_days"`
	ReviewDays int `json:"review_days"`
}

// SchedulerSettings is the fully resolved configuration consumed by the allocator.
type SchedulerSettings struct {
	StudyReviewRatio   StudyReviewRatio `json:"study_review_ratio"`
	StudyHours         TimeRange        `json:"study_hours"`
	LunchBreak         TimeRange        `json:"lunch_break"`
	WeakSubjectFocus   WeakSubjectFocus `json:"weak_subject_focus"`
	DefaultUnitMinutes int              `json:"default_unit_minutes"`
}

// DefaultSchedulerSettings is the fallback for fields absent at every level.
func DefaultSchedulerSettings() SchedulerSettings {
	return SchedulerSettings{
		StudyReviewRatio:   StudyReviewRatio{StudyDays: 6, ReviewDays: 1},
		StudyHours:         TimeRange{Start: 9 * 60, End: 22 * 60},
		LunchBreak:         TimeRange{Start: 12 * 60, End: 13 * 60},
		WeakSubjectFocus:   WeakSubjectFocusMedium,
		DefaultUnitMinutes: 30,
	}
}

// PartialStudyReviewRatio overrides the ratio field by field.
type PartialStudyReviewRatio struct {
	StudyDays  *int `json:"study_days,omitempty"`
	ReviewDays *int `json:"review_days,omitempty"`
}

// PartialSchedulerSettings is one override level (organization, template or
// plan group). A nil field means "not set at this level".
type PartialSchedulerSettings struct {
	StudyReviewRatio   *PartialStudyReviewRatio `json:"study_review_ratio,omitempty"`
	StudyHoursStart    *Clock                   `json:"study_hours_start,omitempty"`
	StudyHoursEnd      *Clock                   `json:"study_hours_end,omitempty"`
	LunchStart         *Clock                   `json:"lunch_start,omitempty"`
	LunchEnd           *Clock                   `json:"lunch_end,omitempty"`
	WeakSubjectFocus   *WeakSubjectFocus        `json:"weak_subject_focus,omitempty"`
	DefaultUnitMinutes *int                     `json:"default_unit_minutes,omitempty"`
}

// IsEmpty reports whether no field is set.
func (p *PartialSchedulerSettings) IsEmpty() bool {
	if p == nil {
		return true
	}
	ratioEmpty := p.StudyReviewRatio == nil ||
		(p.StudyReviewRatio.StudyDays == nil && p.StudyReviewRatio.ReviewDays == nil)
	return ratioEmpty && p.StudyHoursStart == nil && p.StudyHoursEnd == nil &&
		p.LunchStart == nil && p.LunchEnd == nil && p.WeakSubjectFocus == nil &&
		p.DefaultUnitMinutes == nil
}

// Validate checks the fields that are set.
func (p *PartialSchedulerSettings) Validate() error {
	if p == nil {
		return nil
	}
	var errs []FieldError

	if r := p.StudyReviewRatio; r != nil {
		if r.StudyDays != nil && *r.StudyDays < 1 {
			errs = append(errs, FieldError{Field: "study_review_ratio.study_days", Message: "must be at least 1"})
		}
		if r.ReviewDays != nil && *r.ReviewDays < 0 {
			errs = append(errs, FieldError{Field: "study_review_ratio.review_days", Message: "must not be negative"})
		}
	}
	for field, c := range map[string]*Clock{
		"study_hours_start": p.StudyHoursStart,
		"study_hours_end":   p.StudyHoursEnd,
		"lunch_start":       p.LunchStart,
		"lunch_end":         p.LunchEnd,
	} {
		if c != nil && !c.IsValid() {
			errs = append(errs, FieldError{Field: field, Message: "must be between 00:00 and 24:00"})
		}
	}
	if p.StudyHoursStart != nil && p.StudyHoursEnd != nil && *p.StudyHoursEnd <= *p.StudyHoursStart {
		errs = append(errs, FieldError{Field: "study_hours_end", Message: "must be after study_hours_start"})
	}
	if p.LunchStart != nil && p.LunchEnd != nil && *p.LunchEnd < *p.LunchStart {
		errs = append(errs, FieldError{Field: "lunch_end", Message: "must not be before lunch_start"})
	}
	if p.WeakSubjectFocus != nil && !p.WeakSubjectFocus.IsValid() {
		errs = append(errs, FieldError{Field: "weak_subject_focus", Message: "must be one of: low, medium, high"})
	}
	if p.DefaultUnitMinutes != nil && *p.DefaultUnitMinutes < 1 {
		errs = append(errs, FieldError{Field: "default_unit_minutes", Message: "must be at least 1"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// ResolveSettings merges override levels from least to most specific
// (organization, template, plan group). Each level wins field by field over
// the previous ones; nil levels are skipped. Fields unset everywhere take
// DefaultSchedulerSettings values. A merge that yields an empty study window
// or an inverted lunch break is a validation error even when every level is
// valid on its own.
func ResolveSettings(levels ...*PartialSchedulerSettings) (SchedulerSettings, error) {
	out := DefaultSchedulerSettings()

	for _, l := range levels {
		if l == nil {
			continue
		}
		if r := l.StudyReviewRatio; r != nil {
			setIfPresent(&out.StudyReviewRatio.StudyDays, r.StudyDays)
			setIfPresent(&out.StudyReviewRatio.ReviewDays, r.ReviewDays)
		}
		setIfPresent(&out.StudyHours.Start, l.StudyHoursStart)
		setIfPresent(&out.StudyHours.End, l.StudyHoursEnd)
		setIfPresent(&out.LunchBreak.Start, l.LunchStart)
		setIfPresent(&out.LunchBreak.End, l.LunchEnd)
		setIfPresent(&out.WeakSubjectFocus, l.WeakSubjectFocus)
		setIfPresent(&out.DefaultUnitMinutes, l.DefaultUnitMinutes)
	}

	if err := out.validateWindows(); err != nil {
		return SchedulerSettings{}, err
	}
	return out, nil
}

func (s SchedulerSettings) validateWindows() error {
	var errs []FieldError
	if s.StudyHours.End <= s.StudyHours.Start {
		errs = append(errs, FieldError{
			Field:   "study_hours_end",
			Message: "resolved study hours " + s.StudyHours.Start.String() + "-" + s.StudyHours.End.String() + " are empty",
		})
	}
	if s.LunchBreak.End < s.LunchBreak.Start {
		errs = append(errs, FieldError{
			Field:   "lunch_end",
			Message: "resolved lunch break " + s.LunchBreak.Start.String() + "-" + s.LunchBreak.End.String() + " is inverted",
		})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

func setIfPresent[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
