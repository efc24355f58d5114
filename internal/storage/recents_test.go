/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestRecents(t *testing.T) *Recents {
	t.Helper()
	r, err := OpenRecentsAt(filepath.Join(t.TempDir(), "recents.sqlite"))
	if err != nil {
		t.Fatalf("OpenRecentsAt: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestRecentsTouchAndList(t *testing.T) {
	r := openTestRecents(t)
	ctx := context.Background()

	if err := r.Touch(ctx, "/tmp/a.json", 3); err != nil {
		t.Fatalf("touch a: %v", err)
	}
	if err := r.Touch(ctx, "/tmp/b.json", 5); err != nil {
		t.Fatalf("touch b: %v", err)
	}
	// Re-touch a with a new count; it should move to the front.
	if err := r.Touch(ctx, "/tmp/a.json", 7); err != nil {
		t.Fatalf("re-touch a: %v", err)
	}

	list, err := r.List(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(list))
	}
	if list[0].Path != "/tmp/a.json" || list[0].WidgetCount != 7 {
		t.Fatalf("unexpected front entry: %+v", list[0])
	}
	if list[0].FirstOpened.After(list[0].LastOpened) {
		t.Fatalf("first_opened should not move forward on re-touch")
	}
}

func TestRecentsListLimit(t *testing.T) {
	r := openTestRecents(t)
	ctx := context.Background()
	for _, p := range []string{"/x/1", "/x/2", "/x/3"} {
		if err := r.Touch(ctx, p, 0); err != nil {
			t.Fatalf("touch: %v", err)
		}
	}
	list, err := r.List(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("limit ignored, got %d", len(list))
	}
}

func TestRecentsRemove(t *testing.T) {
	r := openTestRecents(t)
	ctx := context.Background()
	if err := r.Touch(ctx, "/tmp/gone.json", 1); err != nil {
		t.Fatalf("touch: %v", err)
	}
	if err := r.Remove(ctx, "/tmp/gone.json"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := r.Remove(ctx, "/tmp/never-there.json"); err != nil {
		t.Fatalf("removing a missing path should be a no-op: %v", err)
	}
	list, err := r.List(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty recents, got %d", len(list))
	}
}
