package driver

import (
	"github.com/docker/inspect2compose/internal/compose"
)

// Driver is the interface that must be implemented by a formatter driver.
type Driver interface {
	// Format serializes the Compose document
	Format(doc *compose.Document) ([]byte, error)
}
