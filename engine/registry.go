// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"sort"
	"strings"
	"sync"
)

// Registry for engine factories by file extension (e.g., "mod", "s3m").
// Keys are case-insensitive and a leading dot is ignored.
type Registry struct {
	factories map[string]Factory

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		mtx:       &sync.Mutex{},
	}
}

func normalizeFormat(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}

func (r *Registry) Register(format string, f Factory) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.factories[normalizeFormat(format)] = f
}

func (r *Registry) Get(format string) (Factory, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	f, ok := r.factories[normalizeFormat(format)]
	return f, ok
}

// Formats returns the registered keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	out := make([]string, 0, len(r.factories))
	for k := range r.factories {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
