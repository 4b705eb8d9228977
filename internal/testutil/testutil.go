// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
)

// MockGenerator is a mock text generator.
type MockGenerator struct {
	mock.Mock
}

// Generate provides a mock function with given fields: ctx, prompt
func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	ret := m.Called(ctx, prompt)
	return ret.String(0), ret.Error(1)
}

// NewMockGenerator creates a MockGenerator that asserts its expectations
// when the test ends.
func NewMockGenerator(t *testing.T) *MockGenerator {
	t.Helper()
	m := &MockGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// FixedDice replays scripted values, repeating the last one once the
// script runs out. With no script Float64 returns 0.99 (nothing glitches)
// and IntN returns 0.
type FixedDice struct {
	mu     sync.Mutex
	Floats []float64
	Ints   []int
}

func (d *FixedDice) Float64() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.Floats) == 0 {
		return 0.99
	}
	v := d.Floats[0]
	if len(d.Floats) > 1 {
		d.Floats = d.Floats[1:]
	}
	return v
}

func (d *FixedDice) IntN(n int) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.Ints) == 0 {
		return 0
	}
	v := d.Ints[0]
	if len(d.Ints) > 1 {
		d.Ints = d.Ints[1:]
	}
	return v % n
}
