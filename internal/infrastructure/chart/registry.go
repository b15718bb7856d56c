package chart

import (
	"sort"
	"sync"
)

// Registry records which canvases currently hold a live chart.
// A chart that is replaced without being destroyed stays here and shows up as a leak.
type Registry struct {
	mu   sync.Mutex
	live map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{live: make(map[string]struct{})}
}

func (r *Registry) add(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.live[id] = struct{}{}
}

func (r *Registry) remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.live[id]; !ok {
		return false
	}
	delete(r.live, id)
	return true
}

// Live returns the ids of all charts not yet destroyed.
func (r *Registry) Live() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.live))
	for id := range r.live {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
