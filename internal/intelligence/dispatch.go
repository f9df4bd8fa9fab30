package intelligence

import "github.com/alexanderramin/huddle/internal/domain"

// HistoricalLimit caps the number of games returned for a historical
// question.
const HistoricalLimit = 5

// Dispatch picks the query for a record. Historical wins over tactical: a
// question with a historical keyword and a team is answered with past
// results even when it also names a play type or situation.
func Dispatch(rec EntityRecord) DispatchPlan {
	if rec.Intent == IntentHistorical && len(rec.Teams) > 0 {
		teams := rec.Teams[:1]
		if len(rec.Teams) == 2 {
			teams = rec.Teams
		}
		return DispatchPlan{
			Kind: PlanHistorical,
			Historical: &domain.HistoricalFilter{
				Teams: append([]string(nil), teams...),
				Limit: HistoricalLimit,
			},
		}
	}

	if rec.HasTacticalSignal() {
		f := &domain.TacticalFilter{
			PlayType:  rec.PlayType,
			Situation: rec.Situation,
		}
		if rec.Year != nil {
			y := *rec.Year
			f.Season = &y
		}
		if len(rec.Teams) > 0 {
			f.Team = rec.Teams[0]
		}
		return DispatchPlan{Kind: PlanTactical, Tactical: f}
	}

	return DispatchPlan{Kind: PlanAmbiguous}
}
