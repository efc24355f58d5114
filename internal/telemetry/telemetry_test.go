/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package telemetry

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

type capture struct {
	mu      sync.Mutex
	events  [][]byte
	crashes [][]byte
}

func newCaptureServer(t *testing.T) (*httptest.Server, *capture) {
	t.Helper()
	c := &capture{}
	mux := http.NewServeMux()
	mux.HandleFunc("/events", func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		c.mu.Lock()
		c.events = append(c.events, b)
		c.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/crash", func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		c.mu.Lock()
		c.crashes = append(c.crashes, b)
		c.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, c
}

func (c *capture) counts() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events), len(c.crashes)
}

func TestEventAndCrashUpload(t *testing.T) {
	srv, rec := newCaptureServer(t)
	c := New(Config{OptIn: true, EventsURL: srv.URL + "/events", CrashURL: srv.URL + "/crash", Timeout: 2 * time.Second})
	defer c.Close()
	if !c.Enabled() {
		t.Fatalf("client with opt-in and URL must be enabled")
	}

	c.Event("dashboard_opened", map[string]any{"visuals": 3})
	c.Flush(context.Background())
	time.Sleep(50 * time.Millisecond)

	ecount, _ := rec.counts()
	if ecount == 0 {
		t.Fatalf("expected at least one event request")
	}
	var m map[string]any
	if err := json.Unmarshal(rec.events[0], &m); err != nil {
		t.Fatalf("event is not JSON: %v", err)
	}
	if m["name"] != "dashboard_opened" {
		t.Fatalf("wrong event name: %v", m["name"])
	}
	if _, ok := m["ts"].(string); !ok {
		t.Fatalf("event missing ts")
	}

	c.UploadCrash([]byte("STACKTRACE"))
	time.Sleep(50 * time.Millisecond)
	if _, ccount := rec.counts(); ccount == 0 {
		t.Fatalf("expected crash upload request")
	}
}

func TestDisabledClientSendsNothing(t *testing.T) {
	srv, rec := newCaptureServer(t)
	c := New(Config{OptIn: false, EventsURL: srv.URL + "/events", CrashURL: srv.URL + "/crash", Timeout: time.Second})
	defer c.Close()
	if c.Enabled() {
		t.Fatalf("client without opt-in must be disabled")
	}
	c.Event("ignored", nil)
	c.UploadCrash([]byte("ignored"))
	time.Sleep(50 * time.Millisecond)
	if e, cr := rec.counts(); e != 0 || cr != 0 {
		t.Fatalf("disabled client made requests: events=%d crashes=%d", e, cr)
	}
}

func TestEmptyEventNameIsDropped(t *testing.T) {
	srv, rec := newCaptureServer(t)
	c := New(Config{OptIn: true, EventsURL: srv.URL + "/events", Timeout: time.Second})
	defer c.Close()
	c.Event("", map[string]any{"x": 1})
	c.Flush(context.Background())
	time.Sleep(50 * time.Millisecond)
	if e, _ := rec.counts(); e != 0 {
		t.Fatalf("empty event name should not be sent")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GDB_TELEMETRY_OPT_IN", "yes")
	t.Setenv("GDB_TELEMETRY_URL", " http://127.0.0.1:0/events ")
	t.Setenv("GDB_CRASH_UPLOAD_URL", "")
	t.Setenv("GDB_TELEMETRY_TIMEOUT_MS", "250")

	cfg := FromEnv()
	if !cfg.OptIn {
		t.Fatalf("opt-in not parsed")
	}
	if cfg.EventsURL != "http://127.0.0.1:0/events" {
		t.Fatalf("events URL not trimmed: %q", cfg.EventsURL)
	}
	if cfg.Timeout != 250*time.Millisecond {
		t.Fatalf("timeout override not applied: %v", cfg.Timeout)
	}

	NewDefault(cfg)
	if !Enabled() {
		t.Fatalf("default client should be enabled with this env")
	}
}

func TestWithOptIn(t *testing.T) {
	cfg := Config{EventsURL: "http://127.0.0.1:0/events", Timeout: time.Second}

	// The user config can enable telemetry without the env var.
	c := New(cfg.WithOptIn(true))
	defer c.Close()
	if !c.Enabled() {
		t.Fatalf("config opt-in must enable the client")
	}

	// A false config value must not override an env opt-in.
	cfg.OptIn = true
	if !cfg.WithOptIn(false).OptIn {
		t.Fatalf("config opt-out must not cancel an env opt-in")
	}
	if (Config{}).WithOptIn(false).OptIn {
		t.Fatalf("nothing opted in, telemetry must stay disabled")
	}
}

func TestSendErrorsAreSwallowed(t *testing.T) {
	// Unroutable address: the sender must drop failures silently.
	c := New(Config{
		OptIn:        true,
		EventsURL:    "http://127.0.0.1:1/events",
		CrashURL:     "http://127.0.0.1:1/crash",
		Timeout:      50 * time.Millisecond,
		DebugLogging: true,
	})
	defer c.Close()
	c.Event("unreachable", map[string]any{"a": 1})
	c.Flush(context.Background())
	c.UploadCrash([]byte("oops"))
	time.Sleep(80 * time.Millisecond)
}
