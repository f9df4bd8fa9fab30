package intelligence

import "github.com/alexanderramin/huddle/internal/domain"

// alias maps a lowercase surface form to a canonical value.
type alias struct {
	key   string
	value string
}

// teamAliases is scanned in declaration order; a code enters EntityRecord.Teams
// the first time any of its aliases is found. Matching is plain substring
// containment, so short codes such as "no", "ne" or "chi" also fire inside
// unrelated words.
var teamAliases = []alias{
	// AFC East
	{"bills", "BUF"}, {"buffalo", "BUF"}, {"buf", "BUF"},
	{"dolphins", "MIA"}, {"miami", "MIA"}, {"mia", "MIA"},
	{"patriots", "NE"}, {"patriotas", "NE"}, {"ne", "NE"}, {"new england", "NE"},
	{"jets", "NYJ"}, {"nyj", "NYJ"},
	// AFC North
	{"ravens", "BAL"}, {"baltimore", "BAL"}, {"bal", "BAL"},
	{"bengals", "CIN"}, {"cincinnati", "CIN"}, {"cin", "CIN"},
	{"browns", "CLE"}, {"cleveland", "CLE"}, {"cle", "CLE"},
	{"steelers", "PIT"}, {"pittsburgh", "PIT"}, {"pit", "PIT"},
	// AFC South
	{"texans", "HOU"}, {"houston", "HOU"}, {"hou", "HOU"},
	{"colts", "IND"}, {"indianapolis", "IND"}, {"ind", "IND"},
	{"jaguars", "JAX"}, {"jacksonville", "JAX"}, {"jax", "JAX"},
	{"titans", "TEN"}, {"tennessee", "TEN"}, {"ten", "TEN"},
	// AFC West
	{"chiefs", "KC"}, {"kansas", "KC"}, {"kc", "KC"},
	{"broncos", "DEN"}, {"denver", "DEN"}, {"den", "DEN"},
	{"raiders", "LV"}, {"vegas", "LV"}, {"lv", "LV"},
	{"chargers", "LAC"}, {"lac", "LAC"},
	// NFC East
	{"eagles", "PHI"}, {"philadelphia", "PHI"}, {"phi", "PHI"}, {"águilas", "PHI"},
	{"cowboys", "DAL"}, {"dallas", "DAL"}, {"dal", "DAL"}, {"vaqueros", "DAL"},
	{"giants", "NYG"}, {"gigantes", "NYG"}, {"nyg", "NYG"},
	{"commanders", "WAS"}, {"washington", "WAS"}, {"was", "WAS"},
	// NFC North
	{"lions", "DET"}, {"detroit", "DET"}, {"det", "DET"},
	{"vikings", "MIN"}, {"minnesota", "MIN"}, {"min", "MIN"},
	{"packers", "GB"}, {"green bay", "GB"}, {"gb", "GB"},
	{"bears", "CHI"}, {"chicago", "CHI"}, {"chi", "CHI"},
	// NFC South
	{"falcons", "ATL"}, {"atlanta", "ATL"}, {"atl", "ATL"},
	{"panthers", "CAR"}, {"carolina", "CAR"}, {"car", "CAR"},
	{"saints", "NO"}, {"orleans", "NO"}, {"no", "NO"},
	{"buccaneers", "TB"}, {"tampa", "TB"}, {"tb", "TB"}, {"bucs", "TB"},
	// NFC West
	{"49ers", "SF"}, {"niners", "SF"}, {"francisco", "SF"}, {"sf", "SF"},
	{"seahawks", "SEA"}, {"seattle", "SEA"}, {"sea", "SEA"},
	{"cardinals", "ARI"}, {"arizona", "ARI"}, {"ari", "ARI"},
	{"rams", "LAR"}, {"los angeles", "LAR"}, {"lar", "LAR"},
}

// playTypeAliases match whole tokens only.
var playTypeAliases = map[string]domain.PlayType{
	"pase":    domain.PlayPass,
	"pass":    domain.PlayPass,
	"carrera": domain.PlayRun,
	"run":     domain.PlayRun,
}

// downAliases match as substrings of a token, scanned in this order.
var downAliases = []alias{
	{"1er", "1"}, {"1o", "1"},
	{"2do", "2"}, {"2o", "2"},
	{"3er", "3"}, {"3o", "3"},
	{"4to", "4"}, {"4o", "4"},
}

// outcomeTriggers and matchupTriggers overlap; a question is historical when
// it contains any keyword of either list.
var (
	outcomeTriggers = []string{"ganó", "perdió", "marcador", "resultado", "campeón", "vs"}
	matchupTriggers = []string{"ganó", "resultado", "vs", "enfrentamiento"}
)

var redZoneTriggers = []string{"zona roja", "red zone"}

var homeContextPhrase = "en casa"

// Roster order follows the division layout shown in the team list.
var (
	afcTeams = []string{"NE", "BUF", "MIA", "NYJ", "PIT", "BAL", "CLE", "CIN", "HOU", "IND", "TEN", "JAX", "KC", "LAC", "DEN", "LV"}
	nfcTeams = []string{"PHI", "DAL", "NYG", "WAS", "GB", "DET", "CHI", "MIN", "SF", "SEA", "LAR", "ARI", "CAR", "TB", "NO", "ATL"}
)

var teamCodes = func() map[string]bool {
	m := make(map[string]bool, len(afcTeams)+len(nfcTeams))
	for _, c := range afcTeams {
		m[c] = true
	}
	for _, c := range nfcTeams {
		m[c] = true
	}
	return m
}()

// IsTeamCode reports whether code is one of the 32 canonical team codes.
func IsTeamCode(code string) bool {
	return teamCodes[code]
}

// ConferenceRoster lists the team codes of one conference.
type ConferenceRoster struct {
	Conference domain.Conference
	Teams      []string
}

// Conferences returns both rosters. The returned slices are copies.
func Conferences() []ConferenceRoster {
	return []ConferenceRoster{
		{Conference: domain.ConferenceAFC, Teams: append([]string(nil), afcTeams...)},
		{Conference: domain.ConferenceNFC, Teams: append([]string(nil), nfcTeams...)},
	}
}

// TeamAliases returns the aliases recognised for code, in scan order.
func TeamAliases(code string) []string {
	var out []string
	for _, a := range teamAliases {
		if a.value == code {
			out = append(out, a.key)
		}
	}
	return out
}
