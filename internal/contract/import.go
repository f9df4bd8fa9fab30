package contract

type ImportRequest struct {
	Path    string
	Replace bool
}

type ImportResult struct {
	GameCount    int
	PlayCount    int
	Replaced     bool
	TotalGames   int
	TotalPlays   int
}
