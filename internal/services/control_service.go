// Package services implements the command dispatcher: each validated
// request becomes exactly one broker publish, with no intermediate state
// and nothing to roll back.
package services

import (
	"errors"
	"time"

	"zigbeectl/internal/midimap"
	"zigbeectl/internal/models"
	"zigbeectl/internal/mqtt"
	"zigbeectl/internal/store"

	"github.com/google/uuid"
)

var (
	// ErrChannelRange is returned for syntactically legal MIDI channels
	// outside the mapped range.
	ErrChannelRange = errors.New("channel is outside mapped range 0..11")

	// ErrChannelUnmapped is returned when a channel resolves to no real
	// device. Distinct from a range failure so callers can tell a config
	// gap from a bad request.
	ErrChannelUnmapped = errors.New("channel is not mapped to a real bulb ID, configure MIDI_BULB_IDS with real IDs")
)

// Publisher is the broker publish surface the dispatcher needs. Satisfied
// by mqtt.Client.
type Publisher interface {
	PublishJSON(topic string, payload map[string]any, source string) bool
}

// ControlService turns commands into broker publishes and queries into
// device snapshots. Publishing is fire-and-forget: responses echo the
// computed command or the current snapshot, never a broker acknowledgment.
type ControlService struct {
	publisher Publisher
	devices   *store.DeviceStore
	groups    *store.GroupStore
	bulbIDs   func() string // raw MIDI_BULB_IDS value, re-read per call
}

// NewControlService creates the dispatcher.
func NewControlService(publisher Publisher, devices *store.DeviceStore, groups *store.GroupStore, bulbIDs func() string) *ControlService {
	return &ControlService{
		publisher: publisher,
		devices:   devices,
		groups:    groups,
		bulbIDs:   bulbIDs,
	}
}

// ListDevices returns the current device snapshots.
func (s *ControlService) ListDevices() []models.Device {
	return s.devices.List()
}

// GetDevice returns the snapshot for one device.
func (s *ControlService) GetDevice(deviceID string) (models.Device, bool) {
	return s.devices.Get(deviceID)
}

// SetDeviceState forwards state/brightness to the device's command topic
// unchanged and returns the post-request snapshot. The snapshot reflects
// the status cache, not the command just issued.
func (s *ControlService) SetDeviceState(deviceID string, state *string, brightness *int) (models.Device, bool) {
	s.publisher.PublishJSON(
		mqtt.DeviceSetTopic(deviceID),
		map[string]any{"state": state, "brightness": brightness},
		"device_state",
	)
	return s.devices.Get(deviceID)
}

// RefreshDevice asks the bridge to re-read a device's metadata. The refresh
// is asynchronous and not awaited; the returned snapshot is the current
// (possibly stale) one.
func (s *ControlService) RefreshDevice(deviceID string) (models.Device, bool) {
	s.publisher.PublishJSON(
		mqtt.DeviceRefreshTopic,
		map[string]any{"id": deviceID},
		"device_refresh",
	)
	return s.devices.Get(deviceID)
}

// SetGroupState forwards state/brightness to a group's command topic.
func (s *ControlService) SetGroupState(groupID string, state *string, brightness *int) {
	s.publisher.PublishJSON(
		mqtt.DeviceSetTopic(groupID),
		map[string]any{"state": state, "brightness": brightness},
		"group_state",
	)
}

// StartPairing opens the bridge pairing window for the given duration.
func (s *ControlService) StartPairing(durationSeconds int) models.PairingSession {
	s.publisher.PublishJSON(
		mqtt.PermitJoinTopic,
		map[string]any{"value": true, "time": durationSeconds},
		"pairing_start",
	)
	return models.PairingSession{
		SessionID:       uuid.NewString(),
		Status:          "active",
		StartedAt:       nowISO(),
		PairedDeviceIDs: []string{},
	}
}

// StopPairing closes the bridge pairing window.
func (s *ControlService) StopPairing() models.PairingStopResult {
	s.publisher.PublishJSON(
		mqtt.PermitJoinTopic,
		map[string]any{"value": false},
		"pairing_stop",
	)
	now := nowISO()
	return models.PairingStopResult{
		SessionID: "none",
		Status:    "completed",
		StartedAt: now,
		EndedAt:   now,
	}
}

// ListGroups returns the persisted groups.
func (s *ControlService) ListGroups() []models.Group {
	return s.groups.List()
}

// CreateGroup persists a new group. Returns store.ErrGroupExists when the
// name or derived ID collides with an existing group.
func (s *ControlService) CreateGroup(name string, deviceIDs []string) (models.Group, error) {
	return s.groups.Create(name, deviceIDs)
}

// MappingTable returns the computed channel->device/group table for all
// twelve channels. Bulb rows carry the normalized slot entry, including
// the unmapped sentinel.
func (s *ControlService) MappingTable() []models.MappingEntry {
	bulbIDs := midimap.NormalizeBulbIDs(s.bulbIDs())

	table := make([]models.MappingEntry, 0, midimap.ChannelMax+1)
	for channel := midimap.ChannelMin; channel <= midimap.ChannelMax; channel++ {
		entry := models.MappingEntry{Channel: channel, Slot: midimap.ChannelToSlot(channel)}
		if name, ok := midimap.GroupForChannel(channel); ok {
			entry.DeviceID = name
		} else {
			entry.DeviceID = bulbIDs[entry.Slot]
		}
		table = append(table, entry)
	}
	return table
}

// HandleMidiEvent resolves a MIDI note event to a device or group, computes
// the brightness, and issues exactly one publish. The response echoes the
// resolved target and the exact topic/payload published, for testability
// and operational transparency.
func (s *ControlService) HandleMidiEvent(event models.MidiEvent) (models.MidiActuation, error) {
	if event.Channel < midimap.ChannelMin || event.Channel > midimap.ChannelMax {
		return models.MidiActuation{}, ErrChannelRange
	}

	deviceID := midimap.ResolveChannel(event.Channel, s.bulbIDs())
	if !midimap.IsRealDevice(deviceID) {
		return models.MidiActuation{}, ErrChannelUnmapped
	}

	// A release or a keyless event turns the target off; otherwise the
	// note drives intensity.
	brightness := 0
	if !isNoteOff(event.EventType) && event.Key != nil {
		brightness = midimap.NoteToBrightness(*event.Key)
	}

	topic := mqtt.DeviceSetTopic(deviceID)
	payload := map[string]any{"brightness": brightness}
	s.publisher.PublishJSON(topic, payload, "midi_event")

	return models.MidiActuation{
		DeviceID:    deviceID,
		Slot:        midimap.ChannelToSlot(event.Channel),
		Key:         event.Key,
		EventType:   event.EventType,
		Channel:     event.Channel,
		Brightness:  brightness,
		Timestamp:   event.Timestamp,
		MQTTTopic:   topic,
		MQTTPayload: payload,
	}, nil
}

func isNoteOff(eventType *string) bool {
	return eventType != nil && *eventType == "note_off"
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
