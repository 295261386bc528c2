// Package monitor provides a lightweight duration sampler with rolling
// statistics. Consumers bracket operations with Start/End (or wrap them
// with Track) and query trailing-window aggregates to flag regressions.
// The monitor observes; it never influences the operations it measures.
package monitor

import (
	"sync"
	"time"
)

// DefaultCapacity is the per-name ring buffer size
const DefaultCapacity = 128

// DefaultSlowThreshold flags samples that blow a 60fps frame budget
const DefaultSlowThreshold = 16 * time.Millisecond

// Stats aggregates samples recorded within a trailing window
type Stats struct {
	Count int
	Avg   time.Duration
	Min   time.Duration
	Max   time.Duration
}

// SlowFunc is called when a sample exceeds the slow threshold
type SlowFunc func(name string, d time.Duration)

type sample struct {
	at  time.Time
	dur time.Duration
}

// ring is a fixed-size sample buffer; old samples are overwritten
type ring struct {
	samples []sample
	next    int
	full    bool
}

func (r *ring) add(s sample) {
	r.samples[r.next] = s
	r.next++
	if r.next == len(r.samples) {
		r.next = 0
		r.full = true
	}
}

func (r *ring) len() int {
	if r.full {
		return len(r.samples)
	}
	return r.next
}

// Monitor records named operation durations into bounded ring buffers
type Monitor struct {
	mu       sync.Mutex
	series   map[string]*ring
	starts   map[string]time.Time
	capacity int
	slow     time.Duration
	onSlow   SlowFunc
	exporter Exporter

	now func() time.Time
}

// Option configures a Monitor
type Option func(*Monitor)

// WithCapacity sets the per-name ring buffer size
func WithCapacity(n int) Option {
	return func(m *Monitor) {
		if n > 0 {
			m.capacity = n
		}
	}
}

// WithSlowThreshold sets the duration above which a sample is reported slow
func WithSlowThreshold(d time.Duration) Option {
	return func(m *Monitor) {
		m.slow = d
	}
}

// WithOnSlow registers a callback for slow samples
func WithOnSlow(fn SlowFunc) Option {
	return func(m *Monitor) {
		m.onSlow = fn
	}
}

// WithExporter forwards every sample to a metrics exporter
func WithExporter(e Exporter) Option {
	return func(m *Monitor) {
		m.exporter = e
	}
}

// New creates a new Monitor
func New(opts ...Option) *Monitor {
	m := &Monitor{
		series:   make(map[string]*ring),
		starts:   make(map[string]time.Time),
		capacity: DefaultCapacity,
		slow:     DefaultSlowThreshold,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start marks the beginning of a named operation. A second Start for the
// same name before End restarts the bracket.
func (m *Monitor) Start(name string) {
	m.mu.Lock()
	m.starts[name] = m.now()
	m.mu.Unlock()
}

// End closes the bracket opened by Start and records the elapsed
// duration. End without a matching Start is a no-op and returns 0.
func (m *Monitor) End(name string) time.Duration {
	m.mu.Lock()
	started, ok := m.starts[name]
	if !ok {
		m.mu.Unlock()
		return 0
	}
	delete(m.starts, name)
	d := m.now().Sub(started)
	m.recordLocked(name, d)
	onSlow := m.onSlow
	slow := m.slow
	exporter := m.exporter
	m.mu.Unlock()

	if exporter != nil {
		exporter.ObserveDuration(name, d)
	}
	if onSlow != nil && slow > 0 && d > slow {
		onSlow(name, d)
	}
	return d
}

// Track runs fn inside a Start/End bracket
func (m *Monitor) Track(name string, fn func()) time.Duration {
	m.Start(name)
	fn()
	return m.End(name)
}

// Record injects a sample directly, without a Start/End bracket
func (m *Monitor) Record(name string, d time.Duration) {
	m.mu.Lock()
	m.recordLocked(name, d)
	m.mu.Unlock()
}

func (m *Monitor) recordLocked(name string, d time.Duration) {
	r, ok := m.series[name]
	if !ok {
		r = &ring{samples: make([]sample, m.capacity)}
		m.series[name] = r
	}
	r.add(sample{at: m.now(), dur: d})
}

// Statistics aggregates the samples for name recorded within the
// trailing window. A non-positive window includes every buffered
// sample. Returns nil when no samples fall inside the window.
func (m *Monitor) Statistics(name string, window time.Duration) *Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.series[name]
	if !ok {
		return nil
	}

	var cutoff time.Time
	if window > 0 {
		cutoff = m.now().Add(-window)
	}

	var stats Stats
	var total time.Duration
	for i := 0; i < r.len(); i++ {
		s := r.samples[i]
		if !cutoff.IsZero() && s.at.Before(cutoff) {
			continue
		}
		if stats.Count == 0 || s.dur < stats.Min {
			stats.Min = s.dur
		}
		if s.dur > stats.Max {
			stats.Max = s.dur
		}
		total += s.dur
		stats.Count++
	}

	if stats.Count == 0 {
		return nil
	}
	stats.Avg = total / time.Duration(stats.Count)
	return &stats
}

// Names returns every operation name with at least one sample
func (m *Monitor) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.series))
	for name := range m.series {
		names = append(names, name)
	}
	return names
}

// Reset drops all samples and open brackets
func (m *Monitor) Reset() {
	m.mu.Lock()
	m.series = make(map[string]*ring)
	m.starts = make(map[string]time.Time)
	m.mu.Unlock()
}
