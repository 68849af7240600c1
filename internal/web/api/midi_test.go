package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"zigbeectl/internal/services"
	"zigbeectl/internal/status"
	"zigbeectl/internal/store"

	"github.com/gin-gonic/gin"
)

type recordingPublisher struct {
	calls       int
	lastPayload map[string]any
}

func (p *recordingPublisher) PublishJSON(topic string, payload map[string]any, source string) bool {
	p.calls++
	p.lastPayload = payload
	return true
}

func testRouter(t *testing.T) (*gin.Engine, *recordingPublisher) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	publisher := &recordingPublisher{}
	statuses := status.NewCache()
	devices := store.NewDeviceStore(t.TempDir(), statuses)
	groups := store.NewGroupStore(filepath.Join(t.TempDir(), "groups.json"))
	service := services.NewControlService(publisher, devices, groups, func() string { return "" })

	router := gin.New()
	RegisterDeviceRoutes(router, service)
	RegisterGroupRoutes(router, service)
	RegisterPairingRoutes(router, service)
	RegisterMidiRoutes(router, service)
	return router, publisher
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMidiEventNoteOn(t *testing.T) {
	router, publisher := testRouter(t)

	w := doJSON(router, http.MethodPost, "/midi/events",
		`{"channel":0,"key":17,"event_type":"note_on"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}

	var body struct {
		DeviceID    string         `json:"device_id"`
		Slot        int            `json:"slot"`
		Brightness  int            `json:"brightness"`
		MQTTTopic   string         `json:"mqtt_topic"`
		MQTTPayload map[string]any `json:"mqtt_payload"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.DeviceID != "0x3ccfb435d8988b8d" {
		t.Errorf("device_id = %q, want default slot 0 bulb", body.DeviceID)
	}
	if body.Brightness != 254 {
		t.Errorf("brightness = %d, want 254", body.Brightness)
	}
	if body.MQTTTopic != "zigbee2mqtt/0x3ccfb435d8988b8d/set" {
		t.Errorf("mqtt_topic = %q", body.MQTTTopic)
	}
	if publisher.calls != 1 {
		t.Errorf("publish count = %d, want 1", publisher.calls)
	}
}

func TestMidiEventChannelOutOfMappedRange(t *testing.T) {
	router, publisher := testRouter(t)

	w := doJSON(router, http.MethodPost, "/midi/events", `{"channel":12,"key":5}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if publisher.calls != 0 {
		t.Errorf("publish count = %d, want 0", publisher.calls)
	}
}

func TestMidiEventMissingChannel(t *testing.T) {
	router, _ := testRouter(t)

	w := doJSON(router, http.MethodPost, "/midi/events", `{"key":5}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestMidiEventKeyOutOfRange(t *testing.T) {
	router, _ := testRouter(t)

	w := doJSON(router, http.MethodPost, "/midi/events", `{"channel":0,"key":18}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestMidiMapping(t *testing.T) {
	router, _ := testRouter(t)

	w := doJSON(router, http.MethodGet, "/midi/mapping", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var table []struct {
		Channel  int    `json:"channel"`
		Slot     int    `json:"slot"`
		DeviceID string `json:"device_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &table); err != nil {
		t.Fatal(err)
	}
	if len(table) != 12 {
		t.Fatalf("len(table) = %d, want 12", len(table))
	}
	if table[10].DeviceID != "all_bulbs" || table[11].DeviceID != "except_ceiling" {
		t.Errorf("group rows = %q/%q, want all_bulbs/except_ceiling", table[10].DeviceID, table[11].DeviceID)
	}
}
