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
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"godashboard/internal/config"
	applog "godashboard/internal/log"

	// Pure-Go SQLite driver (CGO-free)
	_ "modernc.org/sqlite"
)

// RecentsFileName is the per-user recents database under the config dir.
const RecentsFileName = "recents.sqlite"

// Recents is the per-user index of recently opened or saved dashboard files.
type Recents struct {
	db *sql.DB
}

// RecentEntry is one row of the recents index, newest first.
type RecentEntry struct {
	Path        string
	WidgetCount int
	FirstOpened time.Time
	LastOpened  time.Time
}

// RecentsPath returns the full path of the recents database.
func RecentsPath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, RecentsFileName), nil
}

// OpenRecents opens (and if needed creates) the recents database.
func OpenRecents() (*Recents, error) {
	path, err := RecentsPath()
	if err != nil {
		return nil, err
	}
	return OpenRecentsAt(path)
}

// OpenRecentsAt opens a recents database at an explicit path.
func OpenRecentsAt(path string) (*Recents, error) {
	l := applog.WithOperation(applog.WithComponent("storage"), "recents_open").With(
		slog.String("path", path),
	)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create recents dir: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?cache=shared&_pragma=busy_timeout(5000)", filepath.ToSlash(path))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		l.Error("sqlite open failed", slog.Any("err", err))
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		_ = db.Close()
		l.Error("enable WAL failed", slog.Any("err", err))
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	ddl := `CREATE TABLE IF NOT EXISTS recents (
		path         TEXT PRIMARY KEY,
		widget_count INTEGER NOT NULL DEFAULT 0,
		first_opened TEXT NOT NULL,
		last_opened  TEXT NOT NULL
	);`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		_ = db.Close()
		l.Error("ensure recents schema failed", slog.Any("err", err))
		return nil, fmt.Errorf("ensure recents schema: %w", err)
	}
	return &Recents{db: db}, nil
}

// Touch records that a dashboard file was opened or saved just now.
func (r *Recents) Touch(ctx context.Context, path string, widgetCount int) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := r.db.ExecContext(ctx, `INSERT INTO recents (path, widget_count, first_opened, last_opened)
		VALUES(?,?,?,?)
		ON CONFLICT(path) DO UPDATE SET widget_count=excluded.widget_count, last_opened=excluded.last_opened`,
		path, widgetCount, now, now)
	if err != nil {
		return fmt.Errorf("touch recent: %w", err)
	}
	return nil
}

// List returns up to limit entries, most recently used first.
func (r *Recents) List(ctx context.Context, limit int) ([]RecentEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx, `SELECT path, widget_count, first_opened, last_opened
		FROM recents ORDER BY last_opened DESC, path LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list recents: %w", err)
	}
	defer rows.Close()

	var out []RecentEntry
	for rows.Next() {
		var e RecentEntry
		var first, last string
		if err := rows.Scan(&e.Path, &e.WidgetCount, &first, &last); err != nil {
			return nil, fmt.Errorf("scan recent: %w", err)
		}
		e.FirstOpened, _ = time.Parse(time.RFC3339, first)
		e.LastOpened, _ = time.Parse(time.RFC3339, last)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recents: %w", err)
	}
	return out, nil
}

// Remove drops a file from the index; missing paths are a no-op.
func (r *Recents) Remove(ctx context.Context, path string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM recents WHERE path=?`, path); err != nil {
		return fmt.Errorf("remove recent: %w", err)
	}
	return nil
}

// Close releases the database.
func (r *Recents) Close() error { return r.db.Close() }
