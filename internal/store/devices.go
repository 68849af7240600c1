// Package store reads the zigbee2mqtt device metadata file and owns the
// persisted group list. Read errors degrade to empty lists; a broken file
// never fails a request.
package store

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"zigbeectl/internal/models"
	"zigbeectl/internal/status"
)

// DeviceStore serves device records built from the zigbee2mqtt data
// directory joined with the availability snapshot. The metadata file is
// read-only input owned by the bridge; records are never persisted here.
type DeviceStore struct {
	dataDir  string
	statuses *status.Cache
}

// NewDeviceStore creates a device store over the given zigbee2mqtt data
// directory.
func NewDeviceStore(dataDir string, statuses *status.Cache) *DeviceStore {
	return &DeviceStore{dataDir: dataDir, statuses: statuses}
}

// List returns all known devices with their current availability. Missing
// or undecodable metadata yields an empty list.
func (s *DeviceStore) List() []models.Device {
	raw := s.readMetadata()
	devices := make([]models.Device, 0, len(raw))
	for _, entry := range raw {
		devices = append(devices, s.toDevice(entry))
	}
	return devices
}

// Get returns the device with the given ID, or false when absent.
func (s *DeviceStore) Get(deviceID string) (models.Device, bool) {
	for _, device := range s.List() {
		if device.DeviceID == deviceID {
			return device, true
		}
	}
	return models.Device{}, false
}

func (s *DeviceStore) readMetadata() []map[string]any {
	path := filepath.Join(s.dataDir, "devices.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Printf("STORE: ignoring undecodable device metadata at %s: %v", path, err)
		return nil
	}
	return raw
}

// toDevice joins one raw zigbee2mqtt descriptor with the status cache.
func (s *DeviceStore) toDevice(raw map[string]any) models.Device {
	deviceID := firstString(raw, "ieee_address", "friendly_name", "device_id")
	if deviceID == "" {
		deviceID = "unknown"
	}
	name := firstString(raw, "friendly_name", "name")
	if name == "" {
		name = deviceID
	}

	capabilities := raw["definition"]
	if capabilities == nil {
		capabilities = map[string]any{}
	}

	return models.Device{
		DeviceID:     deviceID,
		FriendlyName: name,
		Status:       s.statuses.Get(deviceID),
		LastSeenAt:   raw["last_seen"],
		Capabilities: capabilities,
	}
}

// firstString returns the first non-empty string value among the keys.
func firstString(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := raw[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}
