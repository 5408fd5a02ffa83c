package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/apstld/freelance-alert-bot/internal/modules/stats/domain"
)

func sampleStats() *domain.CycleStats {
	return &domain.CycleStats{
		StartedAt:     time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC),
		CycleDuration: 3 * time.Second,
		Keywords:      5,
		Users:         2,
		Fetched:       40,
		Sent:          3,
		Pruned:        10,
		Platforms: map[string]domain.PlatformStats{
			"freelancer": {Count: 35, Affiliate: true},
			"skywalker":  {Count: 5, Error: "timeout"},
		},
	}
}

func TestFileStorageRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats", "cycle.json")
	repo, err := NewFileStorage(path)
	if err != nil {
		t.Fatalf("NewFileStorage: %v", err)
	}
	ctx := context.Background()

	want := sampleStats()
	if err := repo.Write(ctx, want); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := repo.Read(ctx)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got == nil {
		t.Fatal("Read returned nil after Write")
	}
	if !got.StartedAt.Equal(want.StartedAt) || got.Sent != want.Sent || got.Pruned != want.Pruned {
		t.Errorf("Read = %+v, want %+v", got, want)
	}
	if got.Platforms["skywalker"].Error != "timeout" {
		t.Errorf("platform error lost: %+v", got.Platforms)
	}
}

func TestFileStorageReadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cycle.json")
	repo, err := NewFileStorage(path)
	if err != nil {
		t.Fatalf("NewFileStorage: %v", err)
	}

	got, err := repo.Read(context.Background())
	if err != nil {
		t.Fatalf("Read of missing file: %v", err)
	}
	if got != nil {
		t.Errorf("Read of missing file = %+v, want nil", got)
	}
}

func TestFileStorageOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cycle.json")
	repo, err := NewFileStorage(path)
	if err != nil {
		t.Fatalf("NewFileStorage: %v", err)
	}
	ctx := context.Background()

	first := sampleStats()
	if err := repo.Write(ctx, first); err != nil {
		t.Fatalf("Write: %v", err)
	}

	second := sampleStats()
	second.Sent = 99
	if err := repo.Write(ctx, second); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := repo.Read(ctx)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.Sent != 99 {
		t.Errorf("Sent = %d, want 99", got.Sent)
	}

	// No temp file left behind
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after write")
	}
}

func TestFileStorageReadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cycle.json")
	repo, err := NewFileStorage(path)
	if err != nil {
		t.Fatalf("NewFileStorage: %v", err)
	}
	if err := os.WriteFile(path, []byte("{torn"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := repo.Read(context.Background()); err == nil {
		t.Error("Read of corrupt file should return an error")
	}
}
