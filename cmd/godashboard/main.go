/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"godashboard/internal/config"
	"godashboard/internal/crash"
	"godashboard/internal/dashboard"
	"godashboard/internal/export"
	applog "godashboard/internal/log"
	"godashboard/internal/storage"
	"godashboard/internal/telemetry"
	"godashboard/internal/ui"
	"godashboard/internal/version"
)

func usage() {
	fmt.Println("Go Dashboard Studio — dashboard layout prototyper")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  godashboard version|-v|--version              Show version")
	fmt.Println("  godashboard new <file.json>                   Create a new dashboard file")
	fmt.Println("  godashboard open <file.json>                  Open a dashboard and print a summary")
	fmt.Println("  godashboard export <file.json> <out>          Export to .png, .svg or .pdf (by extension)")
	fmt.Println("  godashboard sample-theme <out.json>           Write the bundled sample theme")
	fmt.Println("  godashboard sample-background <out.json>      Write the sample canvas background")
	fmt.Println("  godashboard recents                           List recently used dashboard files")
	fmt.Println("  godashboard ui [<file.json>]                  Launch desktop UI (build with -tags fyne)")
}

func main() {
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("cli")

	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		l.Warn("config load failed, using defaults", slog.Any("err", cfgErr))
	}
	// Telemetry stays off unless the user opted in via config or env.
	telemetry.NewDefault(telemetry.FromEnv().WithOptIn(cfg.General.TelemetryOptIn))

	var h *storage.Handle
	defer func() { crash.Recover(h) }()

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) > 1 {
		switch args[1] {
		case "version", "--version", "-v":
			fmt.Println("Go Dashboard Studio")
			fmt.Println(version.String())
			return
		case "new":
			if len(args) < 3 {
				fmt.Println("new requires <file.json>")
				usage()
				os.Exit(2)
			}
			abs, _ := filepath.Abs(args[2])
			l.Info("new dashboard", slog.String("path", abs))
			d := dashboard.NewWithSize(cfg.Canvas.DefaultWidth, cfg.Canvas.DefaultHeight)
			nh, err := storage.Create(abs, d)
			if err != nil {
				l.Error("create failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			h = nh
			touchRecents(h, l)
			fmt.Println("Created dashboard at", abs)
			return
		case "open":
			if len(args) < 3 {
				fmt.Println("open requires <file.json>")
				usage()
				os.Exit(2)
			}
			abs, _ := filepath.Abs(args[2])
			l.Info("open dashboard", slog.String("path", abs))
			nh, err := storage.Open(abs)
			if err != nil {
				l.Error("open failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			h = nh
			touchRecents(h, l)
			cw, ch := h.Dash.CanvasSize()
			fmt.Printf("Opened dashboard: %s\n", abs)
			fmt.Printf("Canvas: %dx%d\n", cw, ch)
			fmt.Printf("Theme: %s\n", h.Dash.Theme().Name)
			fmt.Printf("Visuals: %d\n", h.Dash.WidgetCount())
			for _, wd := range h.Dash.Widgets() {
				fmt.Printf("  %-8s %-22s %q\n", wd.ID, wd.Kind, wd.Title)
			}
			return
		case "export":
			if len(args) < 4 {
				fmt.Println("export requires <file.json> and <out>")
				usage()
				os.Exit(2)
			}
			abs, _ := filepath.Abs(args[2])
			out, _ := filepath.Abs(args[3])
			nh, err := storage.Open(abs)
			if err != nil {
				l.Error("open before export failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			h = nh
			l.Info("export dashboard", slog.String("path", abs), slog.String("out", out))
			switch strings.ToLower(filepath.Ext(out)) {
			case ".png":
				err = export.WritePNG(h.Dash, out, export.PNGOptions{})
			case ".svg":
				err = export.WriteSVG(h.Dash, out)
			case ".pdf":
				err = export.WritePDF(h.Dash, out, export.PDFOptions{Title: filepath.Base(abs)})
			default:
				err = fmt.Errorf("unsupported export extension %q (use .png, .svg or .pdf)", filepath.Ext(out))
			}
			if err != nil {
				l.Error("export failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			fmt.Println("Exported to", out)
			return
		case "sample-theme":
			if len(args) < 3 {
				fmt.Println("sample-theme requires <out.json>")
				usage()
				os.Exit(2)
			}
			abs, _ := filepath.Abs(args[2])
			if err := storage.WriteSampleTheme(abs); err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			fmt.Println("Wrote sample theme to", abs)
			return
		case "sample-background":
			if len(args) < 3 {
				fmt.Println("sample-background requires <out.json>")
				usage()
				os.Exit(2)
			}
			abs, _ := filepath.Abs(args[2])
			if err := storage.WriteSampleBackground(abs); err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			fmt.Println("Wrote sample background to", abs)
			return
		case "recents":
			r, err := storage.OpenRecents()
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			defer func() { _ = r.Close() }()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			list, err := r.List(ctx, 10)
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			if len(list) == 0 {
				fmt.Println("No recent dashboards.")
				return
			}
			for _, e := range list {
				fmt.Printf("%s  (%d visuals, last opened %s)\n", e.Path, e.WidgetCount, e.LastOpened.Local().Format("2006-01-02 15:04"))
			}
			return
		case "ui":
			var file string
			if len(args) >= 3 {
				file = args[2]
			}
			if err := ui.Run(file); err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			return
		}
	}

	usage()
}

func touchRecents(h *storage.Handle, l *slog.Logger) {
	r, err := storage.OpenRecents()
	if err != nil {
		l.Debug("recents unavailable", slog.Any("err", err))
		return
	}
	defer func() { _ = r.Close() }()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := r.Touch(ctx, h.Path, h.Dash.WidgetCount()); err != nil {
		l.Debug("recents touch failed", slog.Any("err", err))
	}
}
