package ports

import "pdsutils/internal/domain"

// ScanHistory persists recorded scan runs
type ScanHistory interface {
	// Lifecycle
	Open(dbPath string) error
	Close() error

	Save(run *domain.ScanRun) error
	List(limit int) ([]domain.RunSummary, error)

	// Get returns nil, nil when no run matches id
	Get(id string) (*domain.ScanRun, error)
	Delete(id string) error
}
