package web

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/sweeney/lampd/internal/status"
)

func startTestServer(t *testing.T) (*status.Tracker, string, func()) {
	t.Helper()

	tracker := status.NewTracker(time.Now(), status.Config{
		PollMs:        50,
		TelemetryMs:   1000,
		Broker:        "tcp://127.0.0.1:1883",
		HTTPAddr:      ":0",
		Outputs:       4,
		DarkThreshold: 400,
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	srv := New(":0", tracker)
	go srv.Serve(ln)

	base := fmt.Sprintf("http://%s", ln.Addr())
	return tracker, base, func() {
		srv.Shutdown(context.Background())
	}
}

func TestJSONEndpoint(t *testing.T) {
	tracker, base, stop := startTestServer(t)
	defer stop()

	tracker.Update(350, true, "Auto", 2, true, false, status.Counts{ModeChanges: 3})

	resp, err := http.Get(base + "/index.json")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("content-type: %q", ct)
	}

	var doc status.StatusJSON
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Status.Mode != "Auto" || doc.Status.LDRRaw != 350 {
		t.Errorf("json: %+v", doc.Status)
	}
	if doc.Status.Counts.ModeChanges != 3 {
		t.Errorf("counts: %+v", doc.Status.Counts)
	}
}

func TestIndexPage(t *testing.T) {
	tracker, base, stop := startTestServer(t)
	defer stop()

	tracker.Update(4000, false, "Fiesta", 1, true, false, status.Counts{})

	resp, err := http.Get(base + "/")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	html := string(body)
	if !strings.Contains(html, "Fiesta") {
		t.Error("page should show the mode name")
	}
	if !strings.Contains(html, "4000") {
		t.Error("page should show the sensor reading")
	}
	if !strings.Contains(html, "1 / 4") {
		t.Error("page should show the on-count")
	}
}

func TestUnknownPathIs404(t *testing.T) {
	_, base, stop := startTestServer(t)
	defer stop()

	resp, err := http.Get(base + "/nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", resp.StatusCode)
	}
}
