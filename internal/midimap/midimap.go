// Package midimap translates MIDI control channels into zigbee2mqtt device
// or group identifiers and quantizes note values into bulb brightness.
//
// All functions are pure. The configured bulb list is re-parsed on every
// call, so a configuration change takes effect on the next request.
package midimap

import (
	"math"
	"strings"
)

const (
	// BulbChannelCount is the number of individually addressable bulb slots.
	BulbChannelCount = 10

	// AllBulbsChannel and ExceptCeilingChannel are reserved group channels.
	// They resolve to fixed group names regardless of configuration.
	AllBulbsChannel      = 10
	ExceptCeilingChannel = 11

	ChannelMin = 0
	ChannelMax = ExceptCeilingChannel

	NoteMin = 0
	NoteMax = 17

	BrightnessMin = 1
	BrightnessMax = 254

	// Unmapped marks a bulb slot with no real device bound to it.
	Unmapped = "NONE"

	GroupAllBulbs      = "all_bulbs"
	GroupExceptCeiling = "except_ceiling"
)

// defaultBulbIDs maps bulb channels to their built-in device IDs. Slots 8
// and 9 have no default and normalize to the Unmapped sentinel.
var defaultBulbIDs = map[int]string{
	0: "0x3ccfb435d8988b8d",
	1: "0x3ccfb43613a08b93",
	2: "0x3ccfb43607d98b92",
	3: "0x3ccfb437793f8c4d",
	4: "0x3ccfb436f84e8c37",
	5: "0x3ccfb4362d078b96",
	6: "0x3ccfb4334dcc8ab1",
	7: "0x3ccfb43542b08b75",
}

// NormalizeBulbIDs parses a comma-delimited device ID list into exactly
// BulbChannelCount entries. Entries are trimmed and empties dropped. An
// empty result falls back to the built-in defaults; a non-empty result is
// truncated to BulbChannelCount and padded with the Unmapped sentinel.
func NormalizeBulbIDs(raw string) []string {
	var configured []string
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			configured = append(configured, id)
		}
	}

	if len(configured) == 0 {
		ids := make([]string, BulbChannelCount)
		for channel := 0; channel < BulbChannelCount; channel++ {
			if id, ok := defaultBulbIDs[channel]; ok {
				ids[channel] = id
			} else {
				ids[channel] = Unmapped
			}
		}
		return ids
	}

	if len(configured) > BulbChannelCount {
		configured = configured[:BulbChannelCount]
	}
	for len(configured) < BulbChannelCount {
		configured = append(configured, Unmapped)
	}
	return configured
}

// GroupForChannel returns the fixed group name for a reserved group channel.
func GroupForChannel(channel int) (string, bool) {
	switch channel {
	case AllBulbsChannel:
		return GroupAllBulbs, true
	case ExceptCeilingChannel:
		return GroupExceptCeiling, true
	}
	return "", false
}

// ChannelToSlot returns the zero-based bulb slot for a channel. Bulb
// channels map directly to their own index.
func ChannelToSlot(channel int) int {
	return channel
}

// ResolveChannel maps a MIDI channel to a device or group identifier using
// the raw configured bulb list. Group channels resolve unconditionally.
// Returns "" when the channel is out of range or the slot is unmapped.
func ResolveChannel(channel int, raw string) string {
	if name, ok := GroupForChannel(channel); ok {
		return name
	}

	ids := NormalizeBulbIDs(raw)
	slot := ChannelToSlot(channel)
	if slot < 0 || slot >= len(ids) {
		return ""
	}
	if ids[slot] == Unmapped {
		return ""
	}
	return ids[slot]
}

// NoteToBrightness quantizes a note in [NoteMin, NoteMax] linearly onto
// [BrightnessMin, BrightnessMax], rounding half away from zero. Callers
// must validate the note range first.
func NoteToBrightness(note int) int {
	step := note - NoteMin
	return BrightnessMin + int(math.Round(float64(step)*253.0/float64(NoteMax-NoteMin)))
}

// IsRealDevice reports whether id names an actual device rather than the
// Unmapped sentinel or an unresolved channel.
func IsRealDevice(id string) bool {
	return id != "" && id != Unmapped
}
