package jobs

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/OCharnyshevich/bedrockmate/internal/store"
)

func newTestRunner(t *testing.T) (*Runner, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "jobs.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRunner(st, log, 16, 5000), st
}

// waitForJob polls until the job leaves the pending/running states.
func waitForJob(t *testing.T, st *store.Store, id int64) store.Job {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		j, err := st.Job(context.Background(), id)
		if err != nil {
			t.Fatalf("load job: %v", err)
		}
		if j.Status == store.JobCompleted || j.Status == store.JobFailed {
			return j
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("job %d did not finish", id)
	return store.Job{}
}

func TestRunnerStructuresJob(t *testing.T) {
	r, st := newTestRunner(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)

	w, _ := st.CreateWorld(ctx, "Main", "12345", "")
	j, _ := st.CreateJob(ctx, w.ID, TypeStructures,
		`{"center_x":0,"center_z":0,"radius":1000,"structure_type":"village"}`)

	if err := r.Submit(j.ID); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	done := waitForJob(t, st, j.ID)
	if done.Status != store.JobCompleted {
		t.Fatalf("job failed: %s", done.ErrorMessage)
	}

	var result struct {
		Seed       int64 `json:"seed"`
		Structures []struct {
			Type     string  `json:"structure_type"`
			Distance float64 `json:"distance"`
		} `json:"structures"`
	}
	if err := json.Unmarshal([]byte(done.Result), &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.Seed != 12345 {
		t.Errorf("seed = %d", result.Seed)
	}
	if len(result.Structures) == 0 {
		t.Fatal("expected villages within 1000 blocks")
	}
	for _, s := range result.Structures {
		if s.Type != "village" {
			t.Errorf("unexpected type %q", s.Type)
		}
		if s.Distance > 1000 {
			t.Errorf("distance %f exceeds radius", s.Distance)
		}
	}
}

func TestRunnerSlimeMapJobIgnoresSeed(t *testing.T) {
	r, st := newTestRunner(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)

	// Non-numeric seed: slime maps must still succeed.
	w, _ := st.CreateWorld(ctx, "Named", "GlowstoneParadise", "")
	j, _ := st.CreateJob(ctx, w.ID, TypeSlimeMap, `{"radius":1000}`)

	if err := r.Submit(j.ID); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	done := waitForJob(t, st, j.ID)
	if done.Status != store.JobCompleted {
		t.Fatalf("job failed: %s", done.ErrorMessage)
	}

	var result struct {
		SlimeChunks []struct{ X, Z int32 } `json:"slime_chunks"`
	}
	if err := json.Unmarshal([]byte(done.Result), &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if len(result.SlimeChunks) > 100 {
		t.Fatalf("%d slime chunks exceed the stored limit", len(result.SlimeChunks))
	}
}

func TestRunnerFailsOnBadSeed(t *testing.T) {
	r, st := newTestRunner(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)

	w, _ := st.CreateWorld(ctx, "Named", "not-a-number", "")
	j, _ := st.CreateJob(ctx, w.ID, TypeBiome, `{"target":"jungle"}`)

	_ = r.Submit(j.ID)
	done := waitForJob(t, st, j.ID)
	if done.Status != store.JobFailed {
		t.Fatalf("expected failure, got %s", done.Status)
	}
	if done.ErrorMessage == "" {
		t.Fatal("expected an error message")
	}
}

func TestRunnerFailsOnUnknownType(t *testing.T) {
	r, st := newTestRunner(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)

	w, _ := st.CreateWorld(ctx, "Main", "1", "")
	j, _ := st.CreateJob(ctx, w.ID, "mystery", "")

	_ = r.Submit(j.ID)
	done := waitForJob(t, st, j.ID)
	if done.Status != store.JobFailed {
		t.Fatalf("expected failure, got %s", done.Status)
	}
}

func TestKnownType(t *testing.T) {
	for _, typ := range []string{TypeStructures, TypeNether, TypeBiome, TypeSlimeMap} {
		if !KnownType(typ) {
			t.Errorf("KnownType(%q) = false", typ)
		}
	}
	if KnownType("mystery") {
		t.Error(`KnownType("mystery") = true`)
	}
}
