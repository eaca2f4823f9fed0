package formatter

import (
	"sort"
	"sync"

	"github.com/docker/inspect2compose/internal/compose"
	"github.com/docker/inspect2compose/internal/formatter/driver"
	"github.com/pkg/errors"
)

var (
	driversMu sync.RWMutex
	drivers   = map[string]driver.Driver{}
)

// Register makes a formatter available by the provided name.
// If Register is called twice with the same name or if driver is nil,
// it panics.
func Register(name string, driver driver.Driver) {
	driversMu.Lock()
	defer driversMu.Unlock()
	if driver == nil {
		panic("formatter: Register driver is nil")
	}
	if _, dup := drivers[name]; dup {
		panic("formatter: Register called twice for driver " + name)
	}
	drivers[name] = driver
}

// Format uses the specified formatter to serialize the document.
// If the formatter is not registered, this errors out.
func Format(doc *compose.Document, formatter string) ([]byte, error) {
	driversMu.RLock()
	d, ok := drivers[formatter]
	driversMu.RUnlock()
	if !ok {
		return nil, errors.Errorf("unknown formatter %q", formatter)
	}
	return d.Format(doc)
}

// Drivers returns a sorted list of the names of the registered drivers.
func Drivers() []string {
	list := []string{}
	driversMu.RLock()
	for name := range drivers {
		list = append(list, name)
	}
	driversMu.RUnlock()
	sort.Strings(list)
	return list
}
