package domain

// Play is one row of the plays table.
type Play struct {
	ID          int64
	GameID      string
	PosTeam     string
	Down        *int
	PlayType    string
	YardsGained int
	Touchdown   bool
	EPA         *float64
	Yardline100 *int
}

// PlayRow is the projection returned by the tactical query. EPA is always
// present because rows without it are filtered out in SQL.
type PlayRow struct {
	PosTeam     string
	Down        *int
	PlayType    string
	YardsGained int
	Touchdown   bool
	EPA         float64
}
