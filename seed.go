package randtok

import (
	"math/rand"
	"sync"
	"time"
)

// defaultRand is the process-wide source behind the default seed and pick
// functions. It is deliberately a plain *rand.Rand: access is not synchronized
// here, matching the cost profile of the hot path. Callers sharing
// default-constructed generators across goroutines serialize Fill themselves.
var defaultRand = rand.New(rand.NewSource(1)) //nolint:gosec // not for crypto use

// defaultSeed re-seeds the shared source from the wall clock. It is a var so
// package tests can instrument it with a counting stand-in.
var defaultSeed SeedFunc = func() {
	defaultRand.Seed(time.Now().UnixNano())
}

// defaultPick draws a uniform index from the shared source.
var defaultPick PickFunc = func(n int) int {
	return defaultRand.Intn(n)
}

// onceGuard is the process-scoped run-once seeding guard. Kept separate from
// any Generator instance so its lifetime is auditable: init on first
// default-seeded construction, never reset.
type onceGuard struct {
	once sync.Once
}

func (o *onceGuard) do(seed SeedFunc) {
	o.once.Do(seed)
}

// processSeed coordinates "seed exactly once" across every generator built
// with the default seed and pick functions, from any goroutine. The first
// construction to arrive runs the seed; the rest observe completion and skip.
var processSeed = &onceGuard{} //nolint:gochecknoglobals
