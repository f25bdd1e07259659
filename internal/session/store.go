package session

import (
	"fmt"
	"sync"

	"github.com/inletpara/inletpara/internal/compute"
)

// DefaultMaxInlets caps the collection size when the caller passes no limit.
const DefaultMaxInlets = 10

// Defaults returns the field values a newly added inlet starts with: a Mach-2
// inlet at sea-level stagnation pressure with a 0.98 design pressure ratio.
func Defaults() compute.Measurement {
	return compute.Measurement{
		Gamma:                    1.4,
		Mach:                     2.0,
		TheoreticalPressureRatio: 0.98,
		TotalPressureIn:          101325.0,
		TotalPressureOut:         95000.0,
		TotalTempIn:              300.0,
		TotalTempOut:             350.0,
		StaticTempIn:             280.0,
		StaticTempOut:            330.0,
		Extrema:                  &compute.Extrema{Max: 98000.0, Min: 92000.0, Avg: 95000.0},
	}
}

// Store is a thread-safe ordered collection of measurements. Indexes are
// 0-based and stable: Resize only ever appends or trims at the tail.
type Store struct {
	mu       sync.RWMutex
	inlets   []compute.Measurement
	max      int
	defaults compute.Measurement
}

// New creates a Store seeded with n default-valued inlets, capped at max.
// Non-positive max falls back to DefaultMaxInlets; n is clamped to [1, max].
func New(n, max int) *Store {
	if max <= 0 {
		max = DefaultMaxInlets
	}
	s := &Store{max: max, defaults: Defaults()}
	s.Resize(n)
	return s
}

// SetDefaults changes the template used for inlets added by future Resize
// calls. The Name field of d is ignored — new inlets are named by position.
func (s *Store) SetDefaults(d compute.Measurement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaults = d
}

// Max returns the configured collection size cap.
func (s *Store) Max() int { return s.max }

// Len returns the number of inlets currently held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.inlets)
}

// List returns a copy of the collection in order. Mutating the returned slice
// does not affect the store.
func (s *Store) List() []compute.Measurement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]compute.Measurement, len(s.inlets))
	for i, m := range s.inlets {
		out[i] = cloneMeasurement(m)
	}
	return out
}

// Get returns the measurement at index i.
func (s *Store) Get(i int) (compute.Measurement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.inlets) {
		return compute.Measurement{}, fmt.Errorf("session: index %d out of range [0, %d)", i, len(s.inlets))
	}
	return cloneMeasurement(s.inlets[i]), nil
}

// Set replaces the measurement at index i.
func (s *Store) Set(i int, m compute.Measurement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.inlets) {
		return fmt.Errorf("session: index %d out of range [0, %d)", i, len(s.inlets))
	}
	s.inlets[i] = cloneMeasurement(m)
	return nil
}

// Replace swaps in an entirely new collection.
// Rejects empty collections and collections above the cap.
func (s *Store) Replace(ms []compute.Measurement) error {
	if len(ms) == 0 {
		return fmt.Errorf("session: collection must hold at least one inlet")
	}
	if len(ms) > s.max {
		return fmt.Errorf("session: %d inlets exceeds the cap of %d", len(ms), s.max)
	}
	next := make([]compute.Measurement, len(ms))
	for i, m := range ms {
		next[i] = cloneMeasurement(m)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inlets = next
	return nil
}

// Resize grows or shrinks the collection to n inlets, clamped to [1, Max].
// Growing appends defaults named "Inlet N" by 1-based position; shrinking
// trims the tail and leaves the surviving entries untouched.
func (s *Store) Resize(n int) {
	if n < 1 {
		n = 1
	}
	if n > s.max {
		n = s.max
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case len(s.inlets) < n:
		for i := len(s.inlets); i < n; i++ {
			m := cloneMeasurement(s.defaults)
			m.Name = fmt.Sprintf("Inlet %d", i+1)
			s.inlets = append(s.inlets, m)
		}
	case len(s.inlets) > n:
		s.inlets = s.inlets[:n]
	}
}

// cloneMeasurement deep-copies m so callers and the store never share the
// Extrema pointer.
func cloneMeasurement(m compute.Measurement) compute.Measurement {
	if m.Extrema != nil {
		e := *m.Extrema
		m.Extrema = &e
	}
	return m
}
