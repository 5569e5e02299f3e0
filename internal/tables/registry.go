package tables

import (
	"fmt"
	"sort"
	"sync"
)

// Registry resolves panel table names to schemas. Backends use it when
// turning rows fetched off the device into records.
//
// A Registry is populated at startup and read-only afterwards. The
// mutex only guards against misuse during initialisation; steady-state
// access is lookup-only.
type Registry struct {
	mu      sync.RWMutex
	byTable map[string]*Schema
}

// NewRegistry creates an empty registry. Tests and embedders that need
// isolation build their own instead of sharing the package default.
func NewRegistry() *Registry {
	return &Registry{byTable: make(map[string]*Schema)}
}

// Register adds a schema under its table name.
// Returns ErrSchemaExists if the name is already taken.
func (r *Registry) Register(s *Schema) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.byTable[s.tableName]; dup {
		return fmt.Errorf("%w: %q", ErrSchemaExists, s.tableName)
	}
	r.byTable[s.tableName] = s
	return nil
}

// Lookup resolves a table name to its schema.
func (r *Registry) Lookup(tableName string) (*Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byTable[tableName]
	return s, ok
}

// Tables returns the registered table names in ascending order.
func (r *Registry) Tables() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byTable))
	for name := range r.byTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// defaultRegistry holds the built-in panel schemas, registered by
// models.go at package init.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry of built-in schemas.
func DefaultRegistry() *Registry { return defaultRegistry }
