package core

import (
	"sync"
	"time"

	"github.com/spaghettifunk/crystalroom/engine/containers"
)

const AVG_COUNT int = 30

// Metrics keeps a rolling average over the last AVG_COUNT samples of a
// repeated operation, such as rebuilding the scene.
type Metrics struct {
	mu      sync.Mutex
	samples *containers.RingQueue[time.Duration]
	count   uint64
	last    time.Duration
}

func NewMetrics() *Metrics {
	return &Metrics{
		samples: containers.NewRingQueue[time.Duration](AVG_COUNT),
	}
}

func (m *Metrics) Update(elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.samples.Push(elapsed)
	m.last = elapsed

	// Count all samples.
	m.count++
}

// Average returns the mean of the retained samples, zero before the first one.
func (m *Metrics) Average() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.samples.IsEmpty() {
		return 0
	}
	var sum time.Duration
	m.samples.Each(func(d time.Duration) { sum += d })
	return sum / time.Duration(m.samples.Len())
}

func (m *Metrics) Count() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}

func (m *Metrics) Last() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}
