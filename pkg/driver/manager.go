package driver

import (
	"sort"
	"strings"
	"sync"

	"github.com/rickardholmberg/spiggot/internal/logging"
)

// Manager tracks every registered camera driver and its state.
type Manager struct {
	mu      sync.RWMutex
	drivers map[string]Driver
	logger  logger
}

type logger interface {
	Debugf(format string, args ...interface{})
}

var defaultManager = &Manager{
	drivers: make(map[string]Driver),
	logger:  logging.NewLogger("driver"),
}

// GetManager returns the process-wide manager singleton.
func GetManager() *Manager {
	return defaultManager
}

// Register wraps a into a Driver and adds it to the registry. The wrapped
// driver is returned.
func (m *Manager) Register(a Adapter) Driver {
	d := wrapAdapter(a)

	m.mu.Lock()
	m.drivers[d.ID()] = d
	m.mu.Unlock()

	m.logger.Debugf("registered %s (%s)", d.Info().Label, d.ID())
	return d
}

// Unregister drops a driver from the registry. The driver itself is not
// closed.
func (m *Manager) Unregister(id string) {
	m.mu.Lock()
	delete(m.drivers, id)
	m.mu.Unlock()
}

// Query returns the drivers matching every given filter.
func (m *Manager) Query(filters ...FilterFn) []Driver {
	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]Driver, 0, len(m.drivers))
	for _, d := range m.drivers {
		if matches(d, filters) {
			results = append(results, d)
		}
	}
	// Map iteration order is random; keep query results stable.
	sort.Slice(results, func(i, j int) bool {
		li, lj := results[i].Info().Label, results[j].Info().Label
		if li != lj {
			return li < lj
		}
		return results[i].ID() < results[j].ID()
	})
	return results
}

// Lookup finds a driver by ID.
func (m *Manager) Lookup(id string) (Driver, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	d, ok := m.drivers[id]
	return d, ok
}

func matches(d Driver, filters []FilterFn) bool {
	for _, f := range filters {
		if !f(d) {
			return false
		}
	}
	return true
}

// FilterFn decides whether a driver belongs to a query result.
type FilterFn func(Driver) bool

// FilterModel matches drivers whose model name contains substr,
// case-insensitively.
func FilterModel(substr string) FilterFn {
	substr = strings.ToLower(substr)
	return func(d Driver) bool {
		return strings.Contains(strings.ToLower(d.Info().Model), substr)
	}
}

// FilterPort matches drivers on ports with the given prefix ("usb:").
func FilterPort(prefix string) FilterFn {
	return func(d Driver) bool {
		return strings.HasPrefix(d.Info().Port, prefix)
	}
}

// FilterState matches drivers in state s.
func FilterState(s State) FilterFn {
	return func(d Driver) bool {
		return d.Status() == s
	}
}

// FilterAnd returns a filter matching only when all given filters match.
func FilterAnd(filters ...FilterFn) FilterFn {
	return func(d Driver) bool {
		return matches(d, filters)
	}
}

// FilterNot inverts a filter.
func FilterNot(f FilterFn) FilterFn {
	return func(d Driver) bool {
		return !f(d)
	}
}
