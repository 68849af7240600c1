// Package mqtt owns the single long-lived broker connection. It subscribes
// to zigbee2mqtt device topics, feeds availability reports into the status
// cache, and publishes commands on behalf of the request handlers.
package mqtt

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"zigbeectl/internal/status"

	MQTT "github.com/eclipse/paho.mqtt.golang"
)

// Client wraps the paho client. Reconnects and re-subscription are handled
// by paho's auto-reconnect plus the on-connect handler; the client holds no
// reconnect state of its own. Safe for concurrent publishing.
type Client struct {
	client   MQTT.Client
	statuses *status.Cache
}

// NewClient connects to the broker and subscribes to the availability and
// device-state patterns. Subscriptions are re-established on every
// (re)connect.
func NewClient(broker, clientID string, statuses *status.Cache) (*Client, error) {
	c := &Client{statuses: statuses}

	opts := MQTT.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetAutoReconnect(true)
	opts.SetOnConnectHandler(func(cl MQTT.Client) {
		log.Printf("MQTT: connected, subscribing to %s and %s", AvailabilityPattern, DevicePattern)
		cl.Subscribe(AvailabilityPattern, 0, c.onMessage)
		cl.Subscribe(DevicePattern, 0, c.onMessage)
	})
	opts.SetConnectionLostHandler(func(_ MQTT.Client, err error) {
		log.Printf("MQTT: connection lost: %v", err)
	})

	c.client = MQTT.NewClient(opts)
	if token := c.client.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	return c, nil
}

// Disconnect closes the broker connection.
func (c *Client) Disconnect() {
	c.client.Disconnect(250)
}

func (c *Client) onMessage(_ MQTT.Client, msg MQTT.Message) {
	c.handleMessage(msg.Topic(), msg.Payload())
}

// handleMessage routes one inbound broker message into the status cache.
// The broker transports third-party data, so anything malformed is dropped
// without being treated as an error.
func (c *Client) handleMessage(topic string, payload []byte) {
	deviceID, suffix, ok := SplitDeviceTopic(topic)
	if !ok {
		return
	}

	if suffix == "availability" {
		c.statuses.Set(deviceID, statusFromToken(string(payload)))
		return
	}

	var data map[string]any
	if err := json.Unmarshal(payload, &data); err != nil {
		return
	}
	if value, ok := data["availability"]; ok {
		c.statuses.Set(deviceID, statusFromToken(fmt.Sprintf("%v", value)))
	}
}

// statusFromToken maps a zigbee2mqtt online/offline token to a cache
// status. Anything other than "online" counts as unavailable.
func statusFromToken(token string) string {
	if strings.EqualFold(token, "online") {
		return status.Available
	}
	return status.Unavailable
}

// PublishJSON serializes the payload deterministically (compact JSON with
// sorted keys), publishes it fire-and-forget, and logs the request. It
// returns true unconditionally: transport-level delivery failures are not
// surfaced to callers. Known limitation.
func (c *Client) PublishJSON(topic string, payload map[string]any, source string) bool {
	serialized, err := json.Marshal(payload)
	if err != nil {
		log.Printf("MQTT: failed to serialize payload for %s: %v", topic, err)
		return true
	}
	c.client.Publish(topic, 0, false, serialized)
	log.Printf("MQTT: z2m_request source=%s published=true topic=%s payload=%s", source, topic, serialized)
	return true
}
