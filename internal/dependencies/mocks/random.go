package mocks

import (
	"fmt"

	"github.com/astralfront/supremacy/internal/dependencies/random"
)

// MockRandom is a deterministic implementation of Random for testing.
// Intn returns queued values (0 when exhausted); Hex returns a counter
// so every call yields a distinct, predictable string.
type MockRandom struct {
	IntnResults []int
	intnIndex   int

	hexCounter int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result, or 0 if none remaining
func (r *MockRandom) Intn(n int) int {
	if r.intnIndex >= len(r.IntnResults) {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	return result
}

// Hex returns a deterministic unique hex-like string of 2n characters
func (r *MockRandom) Hex(n int) string {
	r.hexCounter++
	return fmt.Sprintf("%0*x", 2*n, r.hexCounter)
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.IntnResults = nil
	r.intnIndex = 0
	r.hexCounter = 0
}
