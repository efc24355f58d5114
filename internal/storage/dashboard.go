/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package storage persists dashboards as single JSON files with transactional
// writes and timestamped backups, and keeps a per-user index of recently used
// files.
package storage

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"godashboard/internal/dashboard"
)

// BackupsDirSuffix names the sibling directory holding timestamped backups of
// a dashboard file: <file>.backups/.
const BackupsDirSuffix = ".backups"

// Handle tracks one dashboard file on disk.
type Handle struct {
	Path string
	Dash *dashboard.Dashboard
}

// Create writes a fresh dashboard to path and returns its handle.
func Create(path string, d *dashboard.Dashboard) (*Handle, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("dashboard path is required")
	}
	if d == nil {
		d = dashboard.New()
	}
	h := &Handle{Path: path, Dash: d}
	if err := Save(h); err != nil {
		return nil, err
	}
	return h, nil
}

// Open loads a dashboard file. When the file cannot be read or parsed, the
// latest backup is tried before giving up.
func Open(path string) (*Handle, error) {
	d := dashboard.New()
	b, err := os.ReadFile(path)
	if err != nil {
		doc, berr := latestBackupDocument(path)
		if berr != nil {
			return nil, fmt.Errorf("open dashboard: %w; backup attempt: %v", err, berr)
		}
		d.LoadDocument(doc)
		return &Handle{Path: path, Dash: d}, nil
	}
	doc, perr := dashboard.ParseDocument(b)
	if perr != nil {
		bdoc, berr := latestBackupDocument(path)
		if berr != nil {
			return nil, fmt.Errorf("parse dashboard: %w; backup attempt: %v", perr, berr)
		}
		doc = bdoc
	}
	d.LoadDocument(doc)
	return &Handle{Path: path, Dash: d}, nil
}

// Save writes the handle's dashboard to disk with transactional semantics and
// a timestamped backup of the previous file (if present).
func Save(h *Handle) error {
	if h == nil || h.Dash == nil {
		return errors.New("nil dashboard handle")
	}
	if h.Path == "" {
		return errors.New("invalid dashboard handle: missing path")
	}
	data, err := dashboard.MarshalDocument(h.Dash.Serialize())
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(h.Path), 0o755); err != nil {
		return fmt.Errorf("ensure dashboard dir: %w", err)
	}

	// Keep a timestamped copy of the current file before replacing it.
	if _, statErr := os.Stat(h.Path); statErr == nil {
		bdir := BackupsDir(h.Path)
		if err := os.MkdirAll(bdir, 0o755); err != nil {
			return fmt.Errorf("ensure backups dir: %w", err)
		}
		stamp := time.Now().Format("20060102-150405")
		bpath := filepath.Join(bdir, fmt.Sprintf("%s.%s.bak", filepath.Base(h.Path), stamp))
		if cerr := copyFile(h.Path, bpath); cerr != nil {
			return fmt.Errorf("backup current dashboard: %w", cerr)
		}
	}

	// Transactional write: temp file in the same directory, then rename.
	dir := filepath.Dir(h.Path)
	temp := filepath.Join(dir, fmt.Sprintf(".%s.tmp-%d-%d", filepath.Base(h.Path), os.Getpid(), rand.Int()))
	if werr := writeFileSync(temp, data); werr != nil {
		return fmt.Errorf("write temp dashboard: %w", werr)
	}
	if _, err := os.Stat(h.Path); err == nil {
		_ = os.Remove(h.Path)
	}
	if rerr := os.Rename(temp, h.Path); rerr != nil {
		_ = os.Remove(temp)
		return fmt.Errorf("replace dashboard: %w", rerr)
	}
	return nil
}

// SaveAs re-targets the handle to a new path and saves there.
func SaveAs(h *Handle, newPath string) error {
	if h == nil {
		return errors.New("nil dashboard handle")
	}
	if strings.TrimSpace(newPath) == "" {
		return errors.New("new path is empty")
	}
	h.Path = newPath
	return Save(h)
}

// BackupsDir returns the backups directory for a dashboard file.
func BackupsDir(path string) string { return path + BackupsDirSuffix }

// AutosaveCrashSnapshot writes the current dashboard state to a crash
// snapshot next to the regular backups and returns its path.
func AutosaveCrashSnapshot(h *Handle) (string, error) {
	if h == nil || h.Dash == nil {
		return "", errors.New("nil dashboard handle")
	}
	data, err := dashboard.MarshalDocument(h.Dash.Serialize())
	if err != nil {
		return "", err
	}
	bdir := BackupsDir(h.Path)
	if err := os.MkdirAll(bdir, 0o755); err != nil {
		return "", fmt.Errorf("ensure backups dir: %w", err)
	}
	stamp := time.Now().Format("20060102-150405")
	path := filepath.Join(bdir, fmt.Sprintf("crash-autosave-%s.json", stamp))
	if err := writeFileSync(path, append(data, '\n')); err != nil {
		return "", fmt.Errorf("write crash autosave: %w", err)
	}
	return path, nil
}

// latestBackupDocument parses the newest timestamped backup of path.
func latestBackupDocument(path string) (dashboard.Document, error) {
	bdir := BackupsDir(path)
	ents, err := os.ReadDir(bdir)
	if err != nil {
		return dashboard.Document{}, fmt.Errorf("read backups dir: %w", err)
	}
	base := filepath.Base(path)
	var candidates []string
	for _, e := range ents {
		name := e.Name()
		if strings.HasPrefix(name, base+".") && strings.HasSuffix(name, ".bak") {
			candidates = append(candidates, filepath.Join(bdir, name))
		}
	}
	if len(candidates) == 0 {
		return dashboard.Document{}, errors.New("no backups found")
	}
	sort.Strings(candidates) // timestamps sort lexicographically
	latest := candidates[len(candidates)-1]
	b, err := os.ReadFile(latest)
	if err != nil {
		return dashboard.Document{}, fmt.Errorf("read latest backup: %w", err)
	}
	doc, err := dashboard.ParseDocument(b)
	if err != nil {
		return dashboard.Document{}, fmt.Errorf("parse latest backup: %w", err)
	}
	return doc, nil
}

// writeFileSync writes data to a file and flushes it to disk.
func writeFileSync(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if _, err := f.Write(data); err != nil {
		return err
	}
	if err := f.Sync(); err != nil {
		return err
	}
	return nil
}

// copyFile copies src to dst, overwriting dst if it exists.
func copyFile(src, dst string) (err error) {
	sf, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := sf.Close(); err == nil {
			err = cerr
		}
	}()
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	df, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := df.Close(); err == nil {
			err = cerr
		}
	}()
	if _, err := io.Copy(df, sf); err != nil {
		return err
	}
	if err := df.Sync(); err != nil {
		return err
	}
	return nil
}
