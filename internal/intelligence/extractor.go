package intelligence

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/alexanderramin/huddle/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var yearPattern = regexp.MustCompile(`202[1-5]`)

// Extract reads team, play type, situation, season and intent out of a
// free-text question. It never fails: unrecognised signals leave the
// corresponding field unset. Later steps may overwrite earlier ones, so the
// order below is part of the contract.
func Extract(text string) EntityRecord {
	lowered := cases.Lower(language.Spanish).String(text)
	rec := EntityRecord{Intent: IntentTactical}

	// Season comes from the original text; the first match wins.
	if m := yearPattern.FindString(text); m != "" {
		if y, err := strconv.Atoi(m); err == nil {
			rec.Year = &y
		}
	}

	rec.Teams = matchTeams(lowered)
	rec.HomeContext = hasHomeContext(lowered, rec.Teams)

	if containsAny(lowered, outcomeTriggers) {
		rec.Intent = IntentHistorical
	}

	// Last matching token wins for both play type and down.
	for _, tok := range Tokenize(lowered) {
		if pt, ok := playTypeAliases[tok]; ok {
			rec.PlayType = pt
		}
		for _, d := range downAliases {
			if strings.Contains(tok, d.key) {
				rec.Situation = domain.Situation(d.value)
			}
		}
	}

	// Red zone overrides any down, wherever it appears in the text.
	if containsAny(lowered, redZoneTriggers) {
		rec.Situation = domain.SituationRedZone
	}

	if containsAny(lowered, matchupTriggers) {
		rec.Intent = IntentHistorical
	}

	return rec
}

// matchTeams scans the alias table in declaration order and orders the
// matched codes by where they first occur in the text. Codes found at the
// same position keep table order.
func matchTeams(lowered string) []string {
	type hit struct {
		code string
		pos  int
	}
	var hits []hit
	index := make(map[string]int)
	for _, a := range teamAliases {
		pos := strings.Index(lowered, a.key)
		if pos < 0 {
			continue
		}
		if i, ok := index[a.value]; ok {
			if pos < hits[i].pos {
				hits[i].pos = pos
			}
			continue
		}
		index[a.value] = len(hits)
		hits = append(hits, hit{code: a.value, pos: pos})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	var teams []string
	for _, h := range hits {
		teams = append(teams, h.code)
	}
	return teams
}

func hasHomeContext(lowered string, teams []string) bool {
	if len(teams) == 0 {
		return false
	}
	return strings.Contains(lowered, homeContextPhrase) ||
		strings.Contains(lowered, "en "+strings.ToLower(teams[0]))
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
