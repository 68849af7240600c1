package models

// Device is the record served to callers: persisted zigbee2mqtt metadata
// joined with the current availability snapshot. It is built fresh on every
// listing and never persisted by this service.
type Device struct {
	DeviceID     string `json:"device_id"`
	FriendlyName string `json:"friendly_name"`
	Status       string `json:"status"`
	LastSeenAt   any    `json:"last_seen_at"`
	Capabilities any    `json:"capabilities"`
}

// Group is a persisted logical set of devices. Groups are created once and
// never updated or deleted.
type Group struct {
	GroupID   string   `json:"group_id"`
	Name      string   `json:"name"`
	DeviceIDs []string `json:"device_ids"`
}

// MidiEvent is a single note event produced by the external MIDI bridge.
// Consumed once per request, never retained.
type MidiEvent struct {
	EventType *string
	Channel   int
	Key       *int
	Timestamp *string
}

// MidiActuation echoes the command computed from a MIDI event, including
// the exact topic and payload published to the broker.
type MidiActuation struct {
	DeviceID    string         `json:"device_id"`
	Slot        int            `json:"slot"`
	Key         *int           `json:"key"`
	EventType   *string        `json:"event_type"`
	Channel     int            `json:"channel"`
	Brightness  int            `json:"brightness"`
	Timestamp   *string        `json:"timestamp"`
	MQTTTopic   string         `json:"mqtt_topic"`
	MQTTPayload map[string]any `json:"mqtt_payload"`
}

// MappingEntry is one row of the computed channel->device mapping table.
// Group channels carry their fixed group name; unmapped bulb slots carry
// the sentinel from the normalized bulb list.
type MappingEntry struct {
	Channel  int    `json:"channel"`
	Slot     int    `json:"slot"`
	DeviceID string `json:"device_id"`
}

// PairingSession describes an opened pairing window. Paired devices are
// not tracked today, so the list is always empty.
type PairingSession struct {
	SessionID       string   `json:"session_id"`
	Status          string   `json:"status"`
	StartedAt       string   `json:"started_at"`
	PairedDeviceIDs []string `json:"paired_device_ids"`
}

// PairingStopResult describes a closed pairing window.
type PairingStopResult struct {
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
	StartedAt string `json:"started_at"`
	EndedAt   string `json:"ended_at"`
}
