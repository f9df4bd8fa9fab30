package contract

// StoreStats describes what the local database holds.
type StoreStats struct {
	Games    int
	Plays    int
	Baseline float64
}
