package domain

type PlayType string

const (
	PlayPass PlayType = "pass"
	PlayRun  PlayType = "run"
)

// ValidPlayTypes is the set of play types the dataset may carry. Only pass
// and run are reachable from questions; the others exist so imported
// play-by-play data round-trips.
var ValidPlayTypes = map[string]bool{
	"pass": true, "run": true, "punt": true, "field_goal": true,
	"kickoff": true, "extra_point": true, "qb_kneel": true,
	"qb_spike": true, "no_play": true,
}

type Conference string

const (
	ConferenceAFC Conference = "AFC"
	ConferenceNFC Conference = "NFC"
)

// RedZoneYardline is the largest distance to the goal line still counted as
// the red zone.
const RedZoneYardline = 20
