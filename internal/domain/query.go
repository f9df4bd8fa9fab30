package domain

import "strconv"

// Situation is either a down ("1".."4") or the red-zone marker. The zero
// value means no situation was given.
type Situation string

const SituationRedZone Situation = "red_zone"

// DownSituation returns the situation for down d.
func DownSituation(d int) Situation {
	return Situation(strconv.Itoa(d))
}

func (s Situation) IsSet() bool     { return s != "" }
func (s Situation) IsRedZone() bool { return s == SituationRedZone }

// Down returns the down number when the situation is a down.
func (s Situation) Down() (int, bool) {
	if s == "" || s == SituationRedZone {
		return 0, false
	}
	n, err := strconv.Atoi(string(s))
	if err != nil || n < 1 || n > 4 {
		return 0, false
	}
	return n, true
}

// HistoricalFilter selects recent completed games. Two teams select their
// head-to-head games in either home/away order; otherwise only Teams[0] is
// used.
type HistoricalFilter struct {
	Teams []string
	Limit int
}

// HeadToHead reports whether the filter targets games between two teams.
func (f HistoricalFilter) HeadToHead() bool {
	return len(f.Teams) == 2
}

// TacticalFilter narrows the play-level aggregation. Zero values mean the
// filter is not applied.
type TacticalFilter struct {
	Season    *int
	Team      string
	PlayType  PlayType
	Situation Situation
}
