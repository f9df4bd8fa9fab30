package analytics

import "github.com/alexanderramin/huddle/internal/domain"

// YardageBucket counts plays whose yards gained fall in [Min, Max]. A nil
// bound is open.
type YardageBucket struct {
	Label string
	Min   *int
	Max   *int
	Count int
}

// Contains reports whether yards falls inside the bucket.
func (b YardageBucket) Contains(yards int) bool {
	if b.Min != nil && yards < *b.Min {
		return false
	}
	if b.Max != nil && yards > *b.Max {
		return false
	}
	return true
}

// Comparison sets the selection's mean EPA against the league baseline.
type Comparison struct {
	Selection   float64
	League      float64
	Delta       float64
	AboveLeague bool
}

type TacticalSummary struct {
	Plays       int
	MeanEPA     float64
	SuccessRate float64 // percent of plays with epa > 0
	Touchdowns  int
	Yardage     []YardageBucket
	Comparison  Comparison
}

func bound(v int) *int { return &v }

// yardageBuckets returns a fresh, zeroed copy of the distribution bins.
func yardageBuckets() []YardageBucket {
	return []YardageBucket{
		{Label: "≤ -5", Max: bound(-5)},
		{Label: "-4 a 0", Min: bound(-4), Max: bound(0)},
		{Label: "1 a 3", Min: bound(1), Max: bound(3)},
		{Label: "4 a 6", Min: bound(4), Max: bound(6)},
		{Label: "7 a 9", Min: bound(7), Max: bound(9)},
		{Label: "10 a 19", Min: bound(10), Max: bound(19)},
		{Label: "20+", Min: bound(20)},
	}
}

// Summarize aggregates tactical rows and compares their mean EPA with
// baseline. An empty row set yields zero metrics; the comparison still
// carries the baseline.
func Summarize(rows []domain.PlayRow, baseline float64) TacticalSummary {
	s := TacticalSummary{
		Plays:   len(rows),
		Yardage: yardageBuckets(),
	}

	var total float64
	var successes int
	for _, r := range rows {
		total += r.EPA
		if r.EPA > 0 {
			successes++
		}
		if r.Touchdown {
			s.Touchdowns++
		}
		for i := range s.Yardage {
			if s.Yardage[i].Contains(r.YardsGained) {
				s.Yardage[i].Count++
				break
			}
		}
	}

	if s.Plays > 0 {
		s.MeanEPA = total / float64(s.Plays)
		s.SuccessRate = float64(successes) / float64(s.Plays) * 100
	}
	s.Comparison = Compare(s.MeanEPA, baseline)
	return s
}

// Compare builds the selection-versus-league comparison. Equal values count
// as below the league.
func Compare(selection, league float64) Comparison {
	return Comparison{
		Selection:   selection,
		League:      league,
		Delta:       selection - league,
		AboveLeague: selection > league,
	}
}
