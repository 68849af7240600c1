package mqtt

import "strings"

// Namespace is the zigbee2mqtt base topic all traffic lives under.
const Namespace = "zigbee2mqtt"

// Subscription patterns and bridge control topics.
const (
	// AvailabilityPattern matches per-device availability reports with a
	// plain online/offline token payload.
	AvailabilityPattern = Namespace + "/+/availability"

	// DevicePattern matches per-device state messages with a structured
	// payload that may carry an availability field.
	DevicePattern = Namespace + "/+"

	// PermitJoinTopic toggles the bridge pairing window.
	PermitJoinTopic = Namespace + "/bridge/request/permit_join"

	// DeviceRefreshTopic asks the bridge to re-read a device's metadata.
	DeviceRefreshTopic = Namespace + "/bridge/request/device/refresh"
)

// DeviceSetTopic returns the command topic for a device or group.
func DeviceSetTopic(deviceOrGroupID string) string {
	return Namespace + "/" + deviceOrGroupID + "/set"
}

// SplitDeviceTopic extracts the device ID (second segment) and optional
// suffix (third segment) from an inbound topic. ok is false when the topic
// does not have the expected namespace/device shape.
func SplitDeviceTopic(topic string) (deviceID, suffix string, ok bool) {
	parts := strings.Split(topic, "/")
	if len(parts) < 2 || parts[0] != Namespace {
		return "", "", false
	}
	deviceID = parts[1]
	if len(parts) > 2 {
		suffix = parts[2]
	}
	return deviceID, suffix, true
}
