package contract

import (
	"github.com/alexanderramin/huddle/internal/analytics"
	"github.com/alexanderramin/huddle/internal/domain"
	"github.com/alexanderramin/huddle/internal/intelligence"
)

type AskOutcome string

const (
	OutcomeHistorical AskOutcome = "historical"
	OutcomeTactical   AskOutcome = "tactical"
	OutcomeNoResults  AskOutcome = "no_results"
	OutcomeFallback   AskOutcome = "fallback"
)

type AskRequest struct {
	Question string
}

func NewAskRequest(question string) AskRequest {
	return AskRequest{Question: question}
}

// AskResponse is the full answer to one question. Exactly one of Games,
// Summary or Help is populated, matching Outcome; a no-results response
// carries none of them.
type AskResponse struct {
	RequestID   string
	Question    string
	Record      intelligence.EntityRecord
	Plan        intelligence.DispatchPlan
	Outcome     AskOutcome
	Games       []domain.GameResult
	Summary     *analytics.TacticalSummary
	Help        *intelligence.HelpAnswer
	Diagnostics []string
}

// Empty reports whether the query ran but matched nothing.
func (r *AskResponse) Empty() bool {
	return r.Outcome == OutcomeNoResults
}
