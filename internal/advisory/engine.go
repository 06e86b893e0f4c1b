// Package advisory implements the rule-based recommendation engine: soil and
// fertilizer guidance, mock weather alerts, mock pest detection and sample
// mandi prices. Every function is total over its input domain and depends
// only on its arguments plus the engine's random source and clock.
package advisory

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Engine holds the injected random source and clock shared by the
// recommendation functions. The zero value is not usable; construct with
// New or NewWithSource.
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func New() *Engine {
	return NewWithSource(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), time.Now)
}

// NewWithSource builds an engine with an explicit random source and clock,
// so tests can seed draws and pin the date.
func NewWithSource(rng *rand.Rand, now func() time.Time) *Engine {
	return &Engine{rng: rng, now: now}
}

// randFloat returns a uniform draw in [0, 1). *rand.Rand is not safe for
// concurrent use, so draws are serialized here.
func (e *Engine) randFloat() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Float64()
}

func (e *Engine) randIndex(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.IntN(n)
}
