package domain

// Capabilities lists which non-status mutations a plan group status allows.
type Capabilities struct {
	Editable            bool `json:"editable"`
	Deletable           bool `json:"deletable"`
	ContentModifiable   bool `json:"content_modifiable"`
	ExclusionModifiable bool `json:"exclusion_modifiable"`
}

// planTransitions is the complete adjacency table of the plan lane.
// Nothing transitions into cancelled; it only exists on legacy rows.
var planTransitions = map[PlanStatus][]PlanStatus{
	PlanStatusDraft:     {PlanStatusSaved},
	PlanStatusSaved:     {PlanStatusActive},
	PlanStatusActive:    {PlanStatusPaused, PlanStatusCompleted},
	PlanStatusPaused:    {PlanStatusActive},
	PlanStatusCompleted: nil,
	PlanStatusCancelled: {PlanStatusActive},
}

var planCapabilities = map[PlanStatus]Capabilities{
	PlanStatusDraft:     {Editable: true, Deletable: true, ContentModifiable: true, ExclusionModifiable: true},
	PlanStatusSaved:     {Editable: true, Deletable: true, ContentModifiable: true, ExclusionModifiable: true},
	PlanStatusActive:    {Editable: true, Deletable: false, ContentModifiable: false, ExclusionModifiable: true},
	PlanStatusPaused:    {Editable: true, Deletable: true, ContentModifiable: false, ExclusionModifiable: true},
	PlanStatusCompleted: {},
	PlanStatusCancelled: {Deletable: true},
}

// itemTransitions is the adjacency table of the item lane used by sessions.
var itemTransitions = map[ItemStatus][]ItemStatus{
	ItemStatusPending:    {ItemStatusInProgress},
	ItemStatusInProgress: {ItemStatusCompleted, ItemStatusPaused, ItemStatusCancelled},
	ItemStatusCompleted:  nil,
	ItemStatusPaused:     nil,
	ItemStatusCancelled:  nil,
}

// CanTransition reports whether a plan group may move from one status to another.
// Self-transitions and unknown statuses are never allowed.
func CanTransition(from, to PlanStatus) bool {
	for _, next := range planTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the statuses reachable from s in one step.
func AllowedTransitions(s PlanStatus) []PlanStatus {
	next := planTransitions[s]
	out := make([]PlanStatus, len(next))
	copy(out, next)
	return out
}

// GetConstraints returns the capability flags for a status.
// Unknown statuses allow nothing.
func GetConstraints(s PlanStatus) Capabilities {
	return planCapabilities[s]
}

// CanTransitionItem reports whether a session may move between item-lane statuses.
func CanTransitionItem(from, to ItemStatus) bool {
	for _, next := range itemTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Action names used in StateConflictError messages.
const (
	ActionEdit            = "edit"
	ActionDelete          = "delete"
	ActionModifyContent   = "modify content of"
	ActionModifyExclusion = "change exclusions of"
	ActionReschedule      = "reschedule"
	ActionRollback        = "roll back"
)

// RequireCapability returns a StateConflictError when status does not allow action.
func RequireCapability(status PlanStatus, action string) error {
	c := GetConstraints(status)
	var ok bool
	switch action {
	case ActionEdit, ActionReschedule, ActionRollback:
		ok = c.Editable
	case ActionDelete:
		ok = c.Deletable
	case ActionModifyContent:
		ok = c.ContentModifiable
	case ActionModifyExclusion:
		ok = c.ExclusionModifiable
	}
	if !ok {
		return NewStateConflict(status, action)
	}
	return nil
}
