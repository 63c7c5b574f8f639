package backup

import (
	"log/slog"
	"time"
)

// Scheduler handles automatic backup scheduling
type Scheduler struct {
	Manager        *BackupManager
	BackupInterval time.Duration
	done           chan struct{}
	stopChan       chan struct{}
}

// NewScheduler creates a new backup scheduler
func NewScheduler(manager *BackupManager, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = 24 * time.Hour // Default: daily
	}
	return &Scheduler{
		Manager:        manager,
		BackupInterval: interval,
		done:           make(chan struct{}),
		stopChan:       make(chan struct{}, 1),
	}
}

// Start begins the backup scheduler in a goroutine
// Returns a done channel that will be closed when scheduler stops
func (s *Scheduler) Start() <-chan struct{} {
	go func() {
		defer close(s.done)

		ticker := time.NewTicker(s.BackupInterval)
		defer ticker.Stop()

		// Run initial backup immediately
		s.runBackup("initial")

		// Loop until stopped
		for {
			select {
			case <-s.stopChan:
				return
			case <-ticker.C:
				s.runBackup("scheduled")
			}
		}
	}()

	return s.done
}

// Stop stops the backup scheduler
func (s *Scheduler) Stop() {
	select {
	case s.stopChan <- struct{}{}:
	default:
	}
}

// runBackup performs a single backup operation
func (s *Scheduler) runBackup(kind string) {
	path, err := s.Manager.CreateSnapshot()
	if err != nil {
		slog.Error("backup failed", "kind", kind, "error", err)
		return
	}
	slog.Info("backup written", "kind", kind, "path", path)
}
