package models

// PairingStartRequest opens a pairing window. Duration defaults to 180
// seconds when absent; a present value must be in 30..600.
type PairingStartRequest struct {
	DurationSeconds *int `json:"duration_seconds" binding:"omitnil,min=30,max=600"`
}

// StateRequest sets device or group state. Both fields are optional and
// forwarded as-is; brightness range is checked here at the router layer,
// not by the dispatcher.
type StateRequest struct {
	State      *string `json:"state"`
	Brightness *int    `json:"brightness" binding:"omitempty,min=0,max=254"`
}

// GroupCreateRequest creates a persisted group.
type GroupCreateRequest struct {
	Name      string   `json:"name" binding:"required"`
	DeviceIDs []string `json:"device_ids"`
}

// MidiEventRequest is one note event from the MIDI bridge. Channels 12..15
// are syntactically legal but rejected by the dispatcher as unmapped range.
type MidiEventRequest struct {
	EventType *string `json:"event_type"`
	Channel   *int    `json:"channel" binding:"required,min=0,max=15"`
	Key       *int    `json:"key" binding:"omitempty,min=0,max=17"`
	Timestamp *string `json:"timestamp"`
}
