package backup

import (
	"testing"
	"time"
)

func TestNewSchedulerDefaultInterval(t *testing.T) {
	manager := NewBackupManager(nil, "/tmp/backups", 0)
	scheduler := NewScheduler(manager, 0)
	if scheduler.Manager != manager {
		t.Fatal("scheduler manager not set correctly")
	}
	if scheduler.BackupInterval != 24*time.Hour {
		t.Errorf("expected daily default, got %v", scheduler.BackupInterval)
	}
}

func TestSchedulerRunsAndStops(t *testing.T) {
	database := setupTestDB(t)
	tmpDir := t.TempDir()
	manager := NewBackupManager(database, tmpDir, 0)
	scheduler := NewScheduler(manager, time.Hour)

	done := scheduler.Start()

	// The initial snapshot runs immediately
	deadline := time.Now().Add(2 * time.Second)
	for {
		names, _ := manager.ListSnapshots()
		if len(names) > 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("initial snapshot was not written")
		}
		time.Sleep(10 * time.Millisecond)
	}

	scheduler.Stop()

	select {
	case <-done:
		// Successfully stopped
	case <-time.After(1 * time.Second):
		t.Fatal("scheduler did not stop within timeout")
	}
}
