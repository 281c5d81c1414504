// pkg/metrics/counters.go
package metrics

import "sync"

// Registry is a process-local counter set exposed on /metrics.
// Counters only ever increase; Snapshot copies so readers never
// observe the map mid-update.
type Registry struct {
	mu     sync.RWMutex
	counts map[string]int64
}

func NewRegistry() *Registry {
	return &Registry{
		counts: make(map[string]int64),
	}
}

func (r *Registry) Inc(name string) {
	r.Add(name, 1)
}

func (r *Registry) Add(name string, delta int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[name] += delta
}

func (r *Registry) Get(name string) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.counts[name]
}

func (r *Registry) Snapshot() map[string]int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]int64, len(r.counts))
	for k, v := range r.counts {
		out[k] = v
	}
	return out
}
