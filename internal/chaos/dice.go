// Package chaos implements the modules that are "sometimes wrong" on purpose.
// Every random decision goes through a Dice so tests can pin outcomes.
package chaos

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Dice is the random decision source used by the chaos modules and by
// fallback catalog picks.
type Dice interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n). n must be positive.
	IntN(n int) int
}

// LockedDice is a seeded Dice safe for concurrent use.
type LockedDice struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewDice returns a Dice seeded with seed. A zero seed is replaced by the
// current time so production runs differ between restarts.
func NewDice(seed uint64) *LockedDice {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &LockedDice{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (d *LockedDice) Float64() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rng.Float64()
}

func (d *LockedDice) IntN(n int) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rng.IntN(n)
}

// chance reports whether an event with probability p happens.
func chance(d Dice, p float64) bool {
	return d.Float64() < p
}
