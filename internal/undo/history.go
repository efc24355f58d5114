/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package undo keeps an in-memory undo/redo history of serialized dashboard
// documents with memory and depth safeguards.
package undo

import (
	"sync"
	"time"
)

// Snapshot is one reversible document state, captured before a change is
// applied. Blob is an opaque serialized document; size is accounted as
// len(Blob). TS is the capture time.
type Snapshot struct {
	Label string
	Blob  []byte
	TS    time.Time
}

// Config controls memory and depth caps and coalescing behavior.
type Config struct {
	// MaxBytes is a soft cap; the oldest entries are pruned when exceeded.
	MaxBytes int
	// MaxDepth limits the number of undo entries kept (0 means unlimited).
	MaxDepth int
	// MinInterval coalesces snapshots captured within the interval: the
	// earlier entry already holds the state before the burst, so the newer
	// one is dropped. Rapid drag and resize moves then collapse into a
	// single history step.
	MinInterval time.Duration
}

// History is the undo/redo stack for a single open dashboard.
// It is safe for concurrent use.
type History struct {
	cfg Config
	mu  sync.Mutex

	undo []Snapshot
	redo []Snapshot

	totalBytes int
}

func NewHistory(cfg Config) *History {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = 16 * 1024 * 1024 // 16 MiB
	}
	if cfg.MinInterval <= 0 {
		cfg.MinInterval = 250 * time.Millisecond
	}
	return &History{cfg: cfg}
}

// Push records the state as it was just before a change. A push within
// MinInterval of the previous entry is coalesced away: that entry already
// holds the pre-burst state, only its timestamp is refreshed so the burst
// keeps extending. Any push clears the redo stack.
func (h *History) Push(s Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if n := len(h.undo); n > 0 {
		last := &h.undo[n-1]
		if s.TS.Sub(last.TS) < h.cfg.MinInterval {
			last.TS = s.TS
			h.redo = nil
			return
		}
	}
	h.undo = append(h.undo, s)
	h.totalBytes += len(s.Blob)
	h.redo = nil
	h.enforceCapsLocked()
}

// Undo exchanges states: current (the document as it is now) becomes the redo
// target and the newest pre-change snapshot is returned for the caller to
// apply. The returned snapshot's label names the step being undone.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.undo) == 0 {
		return Snapshot{}, false
	}
	s := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.totalBytes -= len(s.Blob)
	current.Label = s.Label
	h.redo = append(h.redo, current)
	return s, true
}

// Redo is the inverse exchange: current goes back onto the undo stack and the
// newest redo target is returned for the caller to apply.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.redo) == 0 {
		return Snapshot{}, false
	}
	s := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	current.Label = s.Label
	h.undo = append(h.undo, current)
	h.totalBytes += len(current.Blob)
	h.enforceCapsLocked()
	return s, true
}

// CanUndo and CanRedo report stack availability for menu enablement.
func (h *History) CanUndo() bool { h.mu.Lock(); defer h.mu.Unlock(); return len(h.undo) > 0 }
func (h *History) CanRedo() bool { h.mu.Lock(); defer h.mu.Unlock(); return len(h.redo) > 0 }

// Clear drops both stacks, e.g. after opening a different file.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.undo, h.redo = nil, nil
	h.totalBytes = 0
}

// Stats returns current sizes for diagnostics.
func (h *History) Stats() (totalBytes, depth int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.totalBytes, len(h.undo)
}

func (h *History) enforceCapsLocked() {
	if h.cfg.MaxDepth > 0 && len(h.undo) > h.cfg.MaxDepth {
		toDrop := len(h.undo) - h.cfg.MaxDepth
		for i := 0; i < toDrop; i++ {
			h.totalBytes -= len(h.undo[i].Blob)
		}
		h.undo = append([]Snapshot{}, h.undo[toDrop:]...)
	}
	for h.cfg.MaxBytes > 0 && h.totalBytes > h.cfg.MaxBytes && len(h.undo) > 0 {
		h.totalBytes -= len(h.undo[0].Blob)
		h.undo = h.undo[1:]
	}
}
