package importer

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDataset wraps every validation failure of an import file.
var ErrInvalidDataset = errors.New("invalid dataset")

// Dataset is the top-level structure of an import file. JSON files parse too,
// since JSON is a subset of YAML.
type Dataset struct {
	Games []GameImport `yaml:"games"`
	Plays []PlayImport `yaml:"plays"`
}

// GameImport is one game in the import file. Scores are omitted for games
// not yet played.
type GameImport struct {
	GameID    string `yaml:"game_id"`
	Season    int    `yaml:"season"`
	Week      int    `yaml:"week"`
	Gameday   string `yaml:"gameday"`
	HomeTeam  string `yaml:"home_team"`
	AwayTeam  string `yaml:"away_team"`
	HomeScore *int   `yaml:"home_score,omitempty"`
	AwayScore *int   `yaml:"away_score,omitempty"`
}

// PlayImport is one play-by-play row.
type PlayImport struct {
	GameID      string   `yaml:"game_id"`
	PosTeam     string   `yaml:"posteam,omitempty"`
	Down        *int     `yaml:"down,omitempty"`
	PlayType    string   `yaml:"play_type,omitempty"`
	YardsGained int      `yaml:"yards_gained"`
	Touchdown   bool     `yaml:"touchdown"`
	EPA         *float64 `yaml:"epa,omitempty"`
	Yardline100 *int     `yaml:"yardline_100,omitempty"`
}

// LoadDataset reads and parses an import file.
func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDataset(data)
}

// ParseDataset decodes an import document. Unknown keys are rejected.
func ParseDataset(data []byte) (*Dataset, error) {
	var ds Dataset
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &ds, nil
}
