package v1

// PoolStatus defines model for PoolStatus.
type PoolStatus struct {
	Name    string `json:"name"`
	Workers int    `json:"workers"`
	Busy    int    `json:"busy"`
	Queued  int    `json:"queued"`
	Active  bool   `json:"active"`
}

// Error defines model for Error.
type Error struct {
	Error string `json:"error"`
}

// DemoReport defines model for DemoReport.
type DemoReport struct {
	Produced    int   `json:"produced"`
	Consumed    int   `json:"consumed"`
	ProducedSum int   `json:"producedSum"`
	ConsumedSum int   `json:"consumedSum"`
	ElapsedMs   int64 `json:"elapsedMs"`
}
