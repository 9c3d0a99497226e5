package favorites

import (
	"sort"
	"sync"
)

// Registry множества избранных товаров по сессиям. Живёт только в
// памяти процесса и никогда не синхронизируется с каталогом
type Registry struct {
	mu   sync.RWMutex
	sets map[string]map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{sets: make(map[string]map[string]struct{})}
}

func (r *Registry) Add(sessionID, productID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.sets[sessionID]
	if !ok {
		set = make(map[string]struct{})
		r.sets[sessionID] = set
	}
	set[productID] = struct{}{}
}

func (r *Registry) Remove(sessionID, productID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sets[sessionID], productID)
}

func (r *Registry) Has(sessionID, productID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.sets[sessionID][productID]
	return ok
}

// List отдаёт отсортированный срез id для стабильного вывода
func (r *Registry) List(sessionID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.sets[sessionID]))
	for id := range r.sets[sessionID] {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
