// Package simulation runs batches of batted ball plays through the physics
// and fielding models, fanning the work out over a worker pool.
package simulation

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/baseball-sim/physics-engine/fielding"
	"github.com/baseball-sim/physics-engine/models"
	"github.com/baseball-sim/physics-engine/physics"
)

// maxRollDurationSec bounds the roll phase appended to ground balls.
const maxRollDurationSec = 10.0

// Engine executes batches of plays. All plays in a batch share the same
// field layout, surface and environment; each play gets its own RNG seeded
// from the batch seed and the play index, so results do not depend on the
// worker count.
type Engine struct {
	sim     *physics.Simulator
	surface physics.Surface
	workers int

	mu         sync.RWMutex
	activeRuns map[string]*RunStatus
}

// RunStatus tracks the progress of a batch.
type RunStatus struct {
	RunID          string
	TotalPlays     int
	CompletedPlays int
	Status         string
	StartTime      time.Time
	CompletedTime  *time.Time
}

// NewEngine creates a batch engine. workers must be at least 1.
func NewEngine(cal physics.Calibration, layout *models.FieldLayout, surface physics.Surface, workers int) *Engine {
	if workers < 1 {
		workers = 1
	}
	return &Engine{
		sim:        physics.NewFieldSimulator(cal, layout),
		surface:    surface,
		workers:    workers,
		activeRuns: make(map[string]*RunStatus),
	}
}

// BatchRequest describes one batch of plays.
type BatchRequest struct {
	Conditions  []physics.InitialConditions `json:"conditions"`
	Environment *physics.Environment        `json:"environment"`
	Fielders    []models.FielderState       `json:"fielders"`
	Seed        int64                       `json:"seed"`
}

// PlayResult is the outcome of a single play in a batch.
type PlayResult struct {
	Index        int                         `json:"index"`
	BallType     physics.BattedBallType      `json:"ball_type"`
	DistanceFt   float64                     `json:"distance_ft"`
	FlightSec    float64                     `json:"flight_sec"`
	Fair         bool                        `json:"fair"`
	HomeRun      bool                        `json:"home_run"`
	WallContact  bool                        `json:"wall_contact"`
	Interception fielding.InterceptionResult `json:"interception"`
	Failure      string                      `json:"failure,omitempty"`
}

// Observer receives per-play results in play-index order.
type Observer interface {
	OnResult(PlayResult)
}

// BatchSummary aggregates a completed batch.
type BatchSummary struct {
	RunID          string        `json:"run_id"`
	TotalPlays     int           `json:"total_plays"`
	HomeRuns       int           `json:"home_runs"`
	WallContacts   int           `json:"wall_contacts"`
	FoulBalls      int           `json:"foul_balls"`
	Fielded        int           `json:"fielded"`
	FieldingErrors int           `json:"fielding_errors"`
	Unfielded      int           `json:"unfielded"`
	Failures       int           `json:"failures"`
	MeanDistanceFt float64       `json:"mean_distance_ft"`
	Elapsed        time.Duration `json:"elapsed"`
	Results        []PlayResult  `json:"results"`
}

// Status returns a copy of the tracked status for a run.
func (e *Engine) Status(runID string) (RunStatus, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	status, ok := e.activeRuns[runID]
	if !ok {
		return RunStatus{}, false
	}
	return *status, true
}

// RunBatch validates the request, simulates every play across the worker
// pool, and returns the aggregated summary. When obs is non-nil it is
// called once per play, in index order, after all workers finish.
func (e *Engine) RunBatch(req BatchRequest, obs Observer) (*BatchSummary, error) {
	if len(req.Conditions) == 0 {
		return nil, &physics.InvalidInputError{Field: "conditions", Value: 0, Reason: "batch must contain at least one play"}
	}
	if req.Environment == nil {
		return nil, &physics.InvalidInputError{Field: "environment", Value: 0, Reason: "must not be nil"}
	}
	for _, c := range req.Conditions {
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}

	runID := uuid.New().String()
	total := len(req.Conditions)

	e.mu.Lock()
	e.activeRuns[runID] = &RunStatus{
		RunID:      runID,
		TotalPlays: total,
		Status:     "running",
		StartTime:  time.Now(),
	}
	e.mu.Unlock()

	results := make([]PlayResult, total)
	var wg sync.WaitGroup

	perWorker := total / e.workers
	remainder := total % e.workers

	start := 0
	for i := 0; i < e.workers; i++ {
		count := perWorker
		if i < remainder {
			count++
		}
		if count == 0 {
			break
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for idx := lo; idx < hi; idx++ {
				results[idx] = e.simulatePlay(idx, req)
				e.incrementProgress(runID)
			}
		}(start, start+count)
		start += count
	}
	wg.Wait()

	if obs != nil {
		for _, r := range results {
			obs.OnResult(r)
		}
	}

	summary := e.summarize(runID, results)
	e.finishRun(runID)

	log.Printf("batch %s completed: %d plays in %v", runID, total, summary.Elapsed)
	return summary, nil
}

// simulatePlay runs one trajectory plus fielding resolution. The play RNG
// is seeded from the batch seed and the play index.
func (e *Engine) simulatePlay(idx int, req BatchRequest) PlayResult {
	play := PlayResult{Index: idx}
	rng := rand.New(rand.NewSource(req.Seed + int64(idx)))

	result, err := e.sim.Simulate(req.Conditions[idx], req.Environment)
	if err != nil {
		play.Failure = err.Error()
		return play
	}

	play.BallType = result.BallType
	play.DistanceFt = result.DistanceFt
	play.FlightSec = result.FlightTimeSec
	play.Fair = result.Fair
	play.HomeRun = result.HomeRun
	play.WallContact = result.WallContact

	if result.BallType == physics.GroundBall && result.Fair && !result.WallContact {
		if err := physics.ExtendWithRoll(result, e.surface, maxRollDurationSec); err != nil {
			play.Failure = err.Error()
			return play
		}
	}

	interception, err := fielding.FindBestInterception(result, req.Fielders, e.sim.Calibration(), rng)
	if err != nil {
		play.Failure = err.Error()
		return play
	}
	play.Interception = interception
	return play
}

func (e *Engine) summarize(runID string, results []PlayResult) *BatchSummary {
	summary := &BatchSummary{RunID: runID, TotalPlays: len(results), Results: results}

	var distSum float64
	var distCount int
	for _, r := range results {
		if r.Failure != "" {
			summary.Failures++
			continue
		}
		distSum += r.DistanceFt
		distCount++
		switch {
		case r.HomeRun:
			summary.HomeRuns++
		case r.WallContact:
			summary.WallContacts++
		case !r.Fair:
			summary.FoulBalls++
		case r.Interception.Fielded:
			summary.Fielded++
		case r.Interception.Error:
			summary.FieldingErrors++
		default:
			summary.Unfielded++
		}
	}
	if distCount > 0 {
		summary.MeanDistanceFt = distSum / float64(distCount)
	}

	e.mu.RLock()
	if status, ok := e.activeRuns[runID]; ok {
		summary.Elapsed = time.Since(status.StartTime)
	}
	e.mu.RUnlock()
	return summary
}

func (e *Engine) incrementProgress(runID string) {
	e.mu.Lock()
	if status, ok := e.activeRuns[runID]; ok {
		status.CompletedPlays++
	}
	e.mu.Unlock()
}

func (e *Engine) finishRun(runID string) {
	e.mu.Lock()
	if status, ok := e.activeRuns[runID]; ok {
		status.Status = "completed"
		status.CompletedPlays = status.TotalPlays
		now := time.Now()
		status.CompletedTime = &now
	}
	e.mu.Unlock()
}
