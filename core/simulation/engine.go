package simulation

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/AayushY02/Parking-MapAI/core/model"
	"github.com/AayushY02/Parking-MapAI/core/scenario"
)

type key struct {
	ti int
	id model.ScenarioID
}

// Engine memoizes snapshots of a Baseline. It is safe for concurrent use.
type Engine struct {
	base *Baseline

	mu    sync.RWMutex
	cache map[key]Snapshot
}

// NewEngine wraps b.
func NewEngine(b *Baseline) *Engine {
	return &Engine{base: b, cache: map[key]Snapshot{}}
}

// Baseline returns the wrapped baseline.
func (e *Engine) Baseline() *Baseline { return e.base }

// Snapshot returns the cached snapshot for (ti, id), computing it on a miss.
func (e *Engine) Snapshot(ti int, id model.ScenarioID) (Snapshot, error) {
	k := key{ti, id}
	e.mu.RLock()
	s, ok := e.cache[k]
	e.mu.RUnlock()
	if ok {
		return s, nil
	}
	s, err := e.base.Snapshot(ti, id)
	if err != nil {
		return Snapshot{}, err
	}
	e.mu.Lock()
	e.cache[k] = s
	e.mu.Unlock()
	return s, nil
}

// Cached reports how many snapshots are memoized.
func (e *Engine) Cached() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.cache)
}

// Scenarios lists the baseline followed by every catalog id.
func Scenarios() []model.ScenarioID {
	return append([]model.ScenarioID{model.ScenarioNone}, scenario.IDs()...)
}

// Sweep computes every slot under every scenario concurrently. Results are
// ordered scenario-major, then by slot.
func (e *Engine) Sweep(ctx context.Context) ([]Snapshot, error) {
	ids := Scenarios()
	slots := len(e.base.Slots)
	out := make([]Snapshot, len(ids)*slots)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for si, id := range ids {
		si, id := si, id
		for ti := 0; ti < slots; ti++ {
			ti := ti
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				s, err := e.Snapshot(ti, id)
				if err != nil {
					return err
				}
				out[si*slots+ti] = s
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
