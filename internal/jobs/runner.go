// Package jobs executes queued search computations against the finder and
// records their lifecycle in the store.
package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/OCharnyshevich/bedrockmate/internal/finder"
	"github.com/OCharnyshevich/bedrockmate/internal/report"
	"github.com/OCharnyshevich/bedrockmate/internal/store"
)

// Job types accepted by the runner.
const (
	TypeStructures = "structures"
	TypeNether     = "nether"
	TypeBiome      = "biome"
	TypeSlimeMap   = "slime_map"
)

// KnownType reports whether t is a job type the runner can execute.
func KnownType(t string) bool {
	switch t {
	case TypeStructures, TypeNether, TypeBiome, TypeSlimeMap:
		return true
	}
	return false
}

// ErrQueueFull is returned by Submit when the job queue is saturated.
var ErrQueueFull = errors.New("jobs: queue full")

// slimeResultLimit caps stored slime map entries.
const slimeResultLimit = 100

// Default search radii per job type when the parameters omit one, matching
// the CLI defaults.
const (
	defaultBiomeRadius  = 10000
	defaultSlimeRadius  = 1000
	defaultNetherRadius = 1000
)

// allKinds is the structure set searched for the "all" selector.
var allKinds = []finder.StructureKind{
	finder.Village,
	finder.PillagerOutpost,
	finder.OceanMonument,
	finder.WoodlandMansion,
}

// Runner consumes submitted job ids and executes them one at a time.
type Runner struct {
	store         *store.Store
	log           *slog.Logger
	defaultRadius int32

	ch chan int64
	wg sync.WaitGroup
}

// NewRunner creates a Runner with a bounded queue.
func NewRunner(st *store.Store, log *slog.Logger, queueSize int, defaultRadius int32) *Runner {
	return &Runner{
		store:         st,
		log:           log,
		defaultRadius: defaultRadius,
		ch:            make(chan int64, queueSize),
	}
}

// Start launches the worker goroutine; it stops when ctx is cancelled.
func (r *Runner) Start(ctx context.Context) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case id := <-r.ch:
				r.run(ctx, id)
			}
		}
	}()
}

// Wait blocks until the worker has exited.
func (r *Runner) Wait() {
	r.wg.Wait()
}

// Submit queues a job for execution without blocking.
func (r *Runner) Submit(id int64) error {
	select {
	case r.ch <- id:
		return nil
	default:
		return ErrQueueFull
	}
}

// params are the job parameters accepted in the job's JSON parameter
// blob. Zero values fall back to per-type defaults.
type params struct {
	CenterX       int32  `json:"center_x"`
	CenterZ       int32  `json:"center_z"`
	Radius        int32  `json:"radius"`
	StructureType string `json:"structure_type"`
	Target        string `json:"target"`
}

func (r *Runner) run(ctx context.Context, id int64) {
	job, err := r.store.Job(ctx, id)
	if err != nil {
		r.log.Error("load job", "job", id, "error", err)
		return
	}

	if err := r.store.MarkJobRunning(ctx, id); err != nil {
		r.log.Error("mark job running", "job", id, "error", err)
		return
	}

	result, err := r.execute(ctx, job)
	if err != nil {
		r.log.Warn("job failed", "job", id, "type", job.Type, "error", err)
		if ferr := r.store.FailJob(ctx, id, err.Error()); ferr != nil {
			r.log.Error("record job failure", "job", id, "error", ferr)
		}
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		_ = r.store.FailJob(ctx, id, fmt.Sprintf("encode result: %v", err))
		return
	}
	if err := r.store.CompleteJob(ctx, id, payload); err != nil {
		r.log.Error("record job completion", "job", id, "error", err)
		return
	}
	r.log.Info("job completed", "job", id, "type", job.Type)
}

func (r *Runner) execute(ctx context.Context, job store.Job) (any, error) {
	world, err := r.store.World(ctx, job.WorldID)
	if err != nil {
		return nil, fmt.Errorf("world %d not found", job.WorldID)
	}

	var p params
	if job.Parameters != "" {
		if err := json.Unmarshal([]byte(job.Parameters), &p); err != nil {
			return nil, fmt.Errorf("invalid parameters: %w", err)
		}
	}

	switch job.Type {
	case TypeStructures:
		seed, err := parseSeed(world.Seed)
		if err != nil {
			return nil, err
		}
		if p.Radius == 0 {
			p.Radius = r.defaultRadius
		}
		kinds := allKinds
		if p.StructureType != "" && p.StructureType != "all" {
			kind, ok := finder.ParseStructureKind(p.StructureType)
			if !ok {
				return nil, fmt.Errorf("unknown structure type %q", p.StructureType)
			}
			kinds = []finder.StructureKind{kind}
		}
		var found []finder.Structure
		for i, kind := range kinds {
			found = append(found, finder.FindStructures(seed, p.CenterX, p.CenterZ, p.Radius, kind)...)
			_ = r.store.SetJobProgress(ctx, job.ID, (i+1)*100/(len(kinds)+1))
		}
		return report.NewStructureSearch(seed, p.CenterX, p.CenterZ, p.Radius, found), nil

	case TypeNether:
		seed, err := parseSeed(world.Seed)
		if err != nil {
			return nil, err
		}
		if p.Radius == 0 {
			p.Radius = defaultNetherRadius
		}
		_ = r.store.SetJobProgress(ctx, job.ID, 50)
		found := finder.FindNetherStructures(seed, p.CenterX, p.CenterZ, p.Radius)
		return report.NewStructureSearch(seed, p.CenterX, p.CenterZ, p.Radius, found), nil

	case TypeBiome:
		seed, err := parseSeed(world.Seed)
		if err != nil {
			return nil, err
		}
		if p.Radius == 0 {
			p.Radius = defaultBiomeRadius
		}
		if p.Target == "" {
			p.Target = "jungle"
		}
		_ = r.store.SetJobProgress(ctx, job.ID, 50)
		match, found := finder.FindNearestBiome(seed, p.CenterX, p.CenterZ, p.Radius, p.Target)
		return report.NewBiomeSearch(seed, p.Target, match, found), nil

	case TypeSlimeMap:
		// Slime chunks are seed independent; no seed parse needed.
		if p.Radius == 0 {
			p.Radius = defaultSlimeRadius
		}
		_ = r.store.SetJobProgress(ctx, job.ID, 50)
		chunks := finder.FindSlimeChunks(p.CenterX, p.CenterZ, p.Radius)
		return report.NewSlimeSearch(p.CenterX, p.CenterZ, p.Radius, chunks, slimeResultLimit), nil

	default:
		return nil, fmt.Errorf("unknown job type %q", job.Type)
	}
}

func parseSeed(s string) (int64, error) {
	seed, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("world seed %q is not a 64-bit integer", s)
	}
	return seed, nil
}
