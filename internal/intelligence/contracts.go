package intelligence

import "github.com/alexanderramin/huddle/internal/domain"

// Intent is what the question is after: tactical play analysis or past
// game results.
type Intent string

const (
	IntentTactical   Intent = "tactical"
	IntentHistorical Intent = "historical"
)

// EntityRecord is the structured reading of one question. It is produced by
// Extract and must not be modified afterwards.
type EntityRecord struct {
	Teams       []string // canonical codes in order of first match
	PlayType    domain.PlayType
	Situation   domain.Situation
	Year        *int
	Intent      Intent
	HomeContext bool // weak signal: "en casa" or "en <team>" present
}

// HasTacticalSignal reports whether any of team, play type or situation was
// recognised.
func (r EntityRecord) HasTacticalSignal() bool {
	return len(r.Teams) > 0 || r.PlayType != "" || r.Situation.IsSet()
}

// PlanKind enumerates the dispatch outcomes.
type PlanKind string

const (
	PlanHistorical PlanKind = "historical"
	PlanTactical   PlanKind = "tactical"
	PlanAmbiguous  PlanKind = "ambiguous"
)

// DispatchPlan is the query chosen for a record. Exactly one of Historical
// and Tactical is set, except for PlanAmbiguous where both are nil.
type DispatchPlan struct {
	Kind       PlanKind
	Historical *domain.HistoricalFilter
	Tactical   *domain.TacticalFilter
}
