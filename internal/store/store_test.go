package store

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestWorldCRUD(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	w, err := s.CreateWorld(ctx, "Main", "12345", "survival world")
	if err != nil {
		t.Fatalf("CreateWorld: %v", err)
	}
	if w.ID == 0 || w.Name != "Main" || w.Seed != "12345" || w.Description != "survival world" {
		t.Fatalf("unexpected world: %+v", w)
	}
	if w.IsActive {
		t.Fatal("new world should not be active")
	}

	got, err := s.World(ctx, w.ID)
	if err != nil || got.Name != "Main" {
		t.Fatalf("World: %+v, %v", got, err)
	}

	name := "Renamed"
	if err := s.UpdateWorld(ctx, w.ID, WorldUpdate{Name: &name}); err != nil {
		t.Fatalf("UpdateWorld: %v", err)
	}
	got, _ = s.World(ctx, w.ID)
	if got.Name != "Renamed" || got.Seed != "12345" {
		t.Fatalf("partial update clobbered fields: %+v", got)
	}

	if err := s.DeleteWorld(ctx, w.ID); err != nil {
		t.Fatalf("DeleteWorld: %v", err)
	}
	if _, err := s.World(ctx, w.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSetActiveWorldIsExclusive(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	a, _ := s.CreateWorld(ctx, "A", "1", "")
	b, _ := s.CreateWorld(ctx, "B", "2", "")

	if err := s.SetActiveWorld(ctx, a.ID); err != nil {
		t.Fatalf("SetActiveWorld: %v", err)
	}
	if err := s.SetActiveWorld(ctx, b.ID); err != nil {
		t.Fatalf("SetActiveWorld: %v", err)
	}

	active, err := s.ActiveWorld(ctx)
	if err != nil {
		t.Fatalf("ActiveWorld: %v", err)
	}
	if active.ID != b.ID {
		t.Fatalf("active = %d, want %d", active.ID, b.ID)
	}

	worlds, _ := s.Worlds(ctx)
	activeCount := 0
	for _, w := range worlds {
		if w.IsActive {
			activeCount++
		}
	}
	if activeCount != 1 {
		t.Fatalf("%d active worlds, want 1", activeCount)
	}
}

func TestSetActiveWorldUnknownID(t *testing.T) {
	s := openTestStore(t)
	if err := s.SetActiveWorld(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBookmarkCRUD(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	w, _ := s.CreateWorld(ctx, "Main", "12345", "")
	b, err := s.CreateBookmark(ctx, Bookmark{
		WorldID:   w.ID,
		Name:      "Home base",
		X:         120,
		Y:         64,
		Z:         -340,
		Dimension: "overworld",
		Icon:      "📍",
		Category:  "base",
	})
	if err != nil {
		t.Fatalf("CreateBookmark: %v", err)
	}
	if b.X != 120 || b.Z != -340 || b.Category != "base" {
		t.Fatalf("unexpected bookmark: %+v", b)
	}

	x := 500
	if err := s.UpdateBookmark(ctx, b.ID, BookmarkUpdate{X: &x}); err != nil {
		t.Fatalf("UpdateBookmark: %v", err)
	}
	got, _ := s.Bookmark(ctx, b.ID)
	if got.X != 500 || got.Name != "Home base" {
		t.Fatalf("partial update clobbered fields: %+v", got)
	}

	list, err := s.BookmarksByWorld(ctx, w.ID)
	if err != nil || len(list) != 1 {
		t.Fatalf("BookmarksByWorld: %v, %d entries", err, len(list))
	}

	if err := s.DeleteBookmark(ctx, b.ID); err != nil {
		t.Fatalf("DeleteBookmark: %v", err)
	}
	if _, err := s.Bookmark(ctx, b.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestJobLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	w, _ := s.CreateWorld(ctx, "Main", "12345", "")
	j, err := s.CreateJob(ctx, w.ID, "structures", `{"radius":1000}`)
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}
	if j.Status != JobPending || j.Progress != 0 {
		t.Fatalf("new job: %+v", j)
	}

	if err := s.MarkJobRunning(ctx, j.ID); err != nil {
		t.Fatalf("MarkJobRunning: %v", err)
	}
	if err := s.SetJobProgress(ctx, j.ID, 50); err != nil {
		t.Fatalf("SetJobProgress: %v", err)
	}

	got, _ := s.Job(ctx, j.ID)
	if got.Status != JobRunning || got.Progress != 50 || got.StartedAt == "" {
		t.Fatalf("running job: %+v", got)
	}

	payload := `{"structures":[{"x":8,"z":8}]}`
	if err := s.CompleteJob(ctx, j.ID, []byte(payload)); err != nil {
		t.Fatalf("CompleteJob: %v", err)
	}
	got, _ = s.Job(ctx, j.ID)
	if got.Status != JobCompleted || got.Progress != 100 || got.CompletedAt == "" {
		t.Fatalf("completed job: %+v", got)
	}
	if got.Result != payload {
		t.Fatalf("result round-trip: %q", got.Result)
	}
}

func TestJobResultCompressionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	w, _ := s.CreateWorld(ctx, "Main", "1", "")
	j, _ := s.CreateJob(ctx, w.ID, "structures", "")

	// A large, repetitive payload that compression actually shrinks.
	big := strings.Repeat(`{"structure_type":"village","x":1000,"z":-2000},`, 5000)
	if err := s.CompleteJob(ctx, j.ID, []byte(big)); err != nil {
		t.Fatalf("CompleteJob: %v", err)
	}
	got, err := s.Job(ctx, j.ID)
	if err != nil {
		t.Fatalf("Job: %v", err)
	}
	if got.Result != big {
		t.Fatal("large result did not round-trip")
	}
}

func TestFailJob(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	w, _ := s.CreateWorld(ctx, "Main", "1", "")
	j, _ := s.CreateJob(ctx, w.ID, "biome", "")

	if err := s.FailJob(ctx, j.ID, "world not found"); err != nil {
		t.Fatalf("FailJob: %v", err)
	}
	got, _ := s.Job(ctx, j.ID)
	if got.Status != JobFailed || got.ErrorMessage != "world not found" {
		t.Fatalf("failed job: %+v", got)
	}
}

func TestJobsByWorldStatusFilter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	w, _ := s.CreateWorld(ctx, "Main", "1", "")
	j1, _ := s.CreateJob(ctx, w.ID, "structures", "")
	_, _ = s.CreateJob(ctx, w.ID, "biome", "")
	_ = s.FailJob(ctx, j1.ID, "boom")

	failed, err := s.JobsByWorld(ctx, w.ID, JobFailed)
	if err != nil {
		t.Fatalf("JobsByWorld: %v", err)
	}
	if len(failed) != 1 || failed[0].ID != j1.ID {
		t.Fatalf("status filter: %+v", failed)
	}

	all, _ := s.JobsByWorld(ctx, w.ID, "")
	if len(all) != 2 {
		t.Fatalf("all jobs: %d, want 2", len(all))
	}
}
