// Package status holds the last-known availability of every device, as
// reported over the broker. It never queries devices directly.
package status

import "sync"

const (
	Available   = "available"
	Unavailable = "unavailable"
)

// Cache is a concurrency-safe map from device ID to availability status.
// Entries are never deleted; a device keeps its last reported status for
// the process lifetime. Writes come only from the broker message handler,
// reads from any number of request handlers.
type Cache struct {
	mu       sync.RWMutex
	statuses map[string]string
}

// NewCache creates an empty status cache.
func NewCache() *Cache {
	return &Cache{statuses: make(map[string]string)}
}

// Set records the status for a device, overwriting any previous value.
func (c *Cache) Set(deviceID, status string) {
	c.mu.Lock()
	c.statuses[deviceID] = status
	c.mu.Unlock()
}

// Get returns the last reported status for a device. Devices that have
// never reported are Unavailable.
func (c *Cache) Get(deviceID string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if status, ok := c.statuses[deviceID]; ok {
		return status
	}
	return Unavailable
}
