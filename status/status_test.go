package status

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestMetricMapGetCachesPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(MetricKills)
	b := r.Ints.Get(MetricKills)
	if a != b {
		t.Fatal("Get returned different pointers for the same key")
	}
	a.Add(2)
	if b.Load() != 2 {
		t.Errorf("value = %d, want 2", b.Load())
	}
	if _, ok := r.Ints.Lookup("missing"); ok {
		t.Error("Lookup created a metric")
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("zero value should be empty")
	}
	s.Store(strings.Repeat("x", MaxStringLen+10))
	if len(s.Load()) != MaxStringLen {
		t.Errorf("len = %d, want %d", len(s.Load()), MaxStringLen)
	}
}

func TestAtomicStringKeepsRunesWhole(t *testing.T) {
	var s AtomicString
	s.Store(strings.Repeat("x", MaxStringLen-1) + "♥")
	got := s.Load()
	if got != strings.Repeat("x", MaxStringLen-1) {
		t.Errorf("got %q, want the heart dropped whole", got)
	}
}

func TestMetricMapKeysSorted(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	m.Get("speed")
	m.Get("alpha")
	m.Get("fuel")
	keys := m.Keys()
	want := []string{"alpha", "fuel", "speed"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
	if m.Count() != 3 {
		t.Errorf("count = %d, want 3", m.Count())
	}
}

func TestSnapshotAllTypes(t *testing.T) {
	r := NewRegistry()
	r.Bools.Get(MetricAudio).Store(true)
	r.Ints.Get(MetricScore).Store(300)
	r.Floats.Get(MetricSpeed).Set(0.4)
	r.Strings.Get(MetricPhase).Store("running")

	snap := r.Snapshot()
	if len(snap) != 4 || r.TotalCount() != 4 {
		t.Fatalf("snapshot has %d entries", len(snap))
	}
	if snap[MetricScore] != int64(300) || snap[MetricPhase] != "running" || snap[MetricAudio] != true {
		t.Errorf("snapshot = %v", snap)
	}
	if v, ok := r.Value(MetricSpeed); !ok || v != 0.4 {
		t.Errorf("Value(speed) = %v, %v", v, ok)
	}
}

func TestRouterEndpoints(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(MetricLives).Store(2)
	r.Strings.Get(MetricCamera).Store("follow")
	router := NewRouter(r)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /status = %d", rec.Code)
	}
	var all map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &all); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if all[MetricLives] != float64(2) || all[MetricCamera] != "follow" {
		t.Errorf("body = %v", all)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status/"+MetricCamera, nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "follow") {
		t.Errorf("GET one = %d %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET unknown = %d, want 404", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/status", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST = %d, want 405", rec.Code)
	}
}

func TestServeAndStop(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(MetricTicks).Store(42)
	srv, err := Serve("127.0.0.1:0", r)
	if err != nil {
		t.Fatalf("Serve: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := srv.Stop(ctx); err != nil {
			t.Errorf("Stop: %v", err)
		}
	}()

	resp, err := http.Get("http://" + srv.Addr() + "/status/" + MetricTicks)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "42") {
		t.Errorf("body = %s", body)
	}
}

func TestEndpointLifecycle(t *testing.T) {
	r := NewRegistry()
	r.Strings.Get(MetricPhase).Store("paused")
	e := NewEndpoint("127.0.0.1:0", r)

	if e.Name() != "status" {
		t.Errorf("Name = %q", e.Name())
	}
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	addr := e.Addr()
	if strings.HasSuffix(addr, ":0") {
		t.Fatalf("Addr = %q, want bound port", addr)
	}

	resp, err := http.Get("http://" + addr + "/status")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	var all map[string]any
	err = json.NewDecoder(resp.Body).Decode(&all)
	resp.Body.Close()
	if err != nil || all[MetricPhase] != "paused" {
		t.Errorf("snapshot = %v, err %v", all, err)
	}

	if err := e.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
	if err := e.Stop(); err != nil {
		t.Errorf("second Stop: %v", err)
	}
}
