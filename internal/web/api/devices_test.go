package api

import (
	"net/http"
	"testing"
)

func TestGetDeviceNotFound(t *testing.T) {
	router, _ := testRouter(t)

	w := doJSON(router, http.MethodGet, "/devices/0xmissing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestSetUnknownDeviceStateStillPublishes(t *testing.T) {
	router, publisher := testRouter(t)

	w := doJSON(router, http.MethodPost, "/devices/0xmissing/state", `{"state":"ON"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if publisher.calls != 1 {
		t.Errorf("publish count = %d, want 1", publisher.calls)
	}
}

func TestSetDeviceStateBrightnessOutOfRange(t *testing.T) {
	router, publisher := testRouter(t)

	w := doJSON(router, http.MethodPost, "/devices/dev1/state", `{"brightness":255}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if publisher.calls != 0 {
		t.Errorf("publish count = %d, want 0", publisher.calls)
	}
}

func TestPairingStartDefaultsDuration(t *testing.T) {
	router, publisher := testRouter(t)

	w := doJSON(router, http.MethodPost, "/pairing/start", `{}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	if publisher.calls != 1 {
		t.Errorf("publish count = %d, want 1", publisher.calls)
	}
	if got := publisher.lastPayload["time"]; got != 180 {
		t.Errorf("published time = %v, want default 180", got)
	}
}

func TestPairingStartDurationOutOfRange(t *testing.T) {
	router, publisher := testRouter(t)

	// An explicit zero is a bad duration, not a request for the default.
	for _, body := range []string{
		`{"duration_seconds":0}`,
		`{"duration_seconds":10}`,
		`{"duration_seconds":601}`,
	} {
		w := doJSON(router, http.MethodPost, "/pairing/start", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, w.Code)
		}
	}
	if publisher.calls != 0 {
		t.Errorf("publish count = %d, want 0", publisher.calls)
	}
}

func TestCreateGroupDuplicateReturns400(t *testing.T) {
	router, _ := testRouter(t)

	w := doJSON(router, http.MethodPost, "/groups", `{"name":"Living Room","device_ids":["dev1"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("first create status = %d, want 200, body %s", w.Code, w.Body.String())
	}

	w = doJSON(router, http.MethodPost, "/groups", `{"name":"living room","device_ids":["dev2"]}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate create status = %d, want 400", w.Code)
	}
}
