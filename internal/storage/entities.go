package storage

import "time"

// Snapshot is one archived summary report.
type Snapshot struct {
	ID        string
	BookName  string
	StartPage int
	EndPage   int
	Body      string
	CreatedAt time.Time
}

type SnapshotListFilter struct {
	Limit  int
	Offset int
}
