/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package log

import (
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestInitAndComponentLogger(t *testing.T) {
	Init(Options{Level: "debug", Format: "console"})
	l := WithComponent("test")
	if l == nil {
		t.Fatalf("expected logger")
	}
	// Should not panic and should honor operation chaining.
	WithOperation(l, "op").Debug("hello", slog.Int("n", 1))
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestConsoleHandlerOutput(t *testing.T) {
	var sb strings.Builder
	h := &consoleHandler{level: slog.LevelInfo, w: &sb}
	l := slog.New(h).With(slog.String("component", "geom"))
	l.Info("clamped", slog.Int("count", 3))
	out := sb.String()
	if !strings.Contains(out, "INF") || !strings.Contains(out, "clamped") {
		t.Fatalf("unexpected console line: %q", out)
	}
	if !strings.Contains(out, "component=geom") || !strings.Contains(out, "count=3") {
		t.Fatalf("missing attrs in console line: %q", out)
	}
}

func TestConsoleHandlerLevelGate(t *testing.T) {
	h := &consoleHandler{level: slog.LevelWarn, w: &strings.Builder{}}
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatalf("info should be gated at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Fatalf("error should pass at warn level")
	}
}
