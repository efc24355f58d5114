//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ui

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	fstorage "fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"godashboard/internal/config"
	"godashboard/internal/crash"
	"godashboard/internal/dashboard"
	"godashboard/internal/export"
	applog "godashboard/internal/log"
	"godashboard/internal/render"
	"godashboard/internal/storage"
	"godashboard/internal/telemetry"
	"godashboard/internal/theme"
	"godashboard/internal/undo"
	"godashboard/internal/version"
)

// Run starts the Fyne-based dashboard editor.
func Run(dashboardFile string) error {
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("ui")
	l.Info("starting UI")

	cfg, cerr := config.Load()
	if cerr != nil {
		l.Warn("config load failed, using defaults", slog.Any("err", cerr))
	}
	telemetry.NewDefault(telemetry.FromEnv().WithOptIn(cfg.General.TelemetryOptIn))
	telemetry.Event("ui_start", nil)

	var h *storage.Handle
	defer func() { crash.Recover(h) }()

	fyneApp := app.NewWithID("godashboard")
	w := fyneApp.NewWindow("Go Dashboard Studio")
	prefs := fyneApp.Preferences()
	winW := prefs.IntWithFallback("window.width", 1280)
	winH := prefs.IntWithFallback("window.height", 860)
	if winW < 900 {
		winW = 900
	}
	if winH < 640 {
		winH = 640
	}
	w.Resize(fyne.NewSize(float32(winW), float32(winH)))

	status := widget.NewLabel("Ready")
	board := NewBoardCanvas()

	// Undo history over whole-document snapshots, captured just before each
	// change is applied; rapid bursts coalesce.
	history := undo.NewHistory(undo.Config{
		MaxBytes:    32 * 1024 * 1024,
		MaxDepth:    50,
		MinInterval: 300 * time.Millisecond,
	})
	captureSnapshot := func(label string) (undo.Snapshot, bool) {
		blob, err := dashboard.MarshalDocument(board.Dash.Serialize())
		if err != nil {
			l.Error("snapshot failed", slog.Any("err", err))
			return undo.Snapshot{}, false
		}
		return undo.Snapshot{Label: label, Blob: blob, TS: time.Now()}, true
	}
	pushSnapshot := func(label string) {
		if s, ok := captureSnapshot(label); ok {
			history.Push(s)
		}
	}
	applySnapshot := func(s undo.Snapshot) {
		doc, err := dashboard.ParseDocument(s.Blob)
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		board.Dash.LoadDocument(doc)
		board.Refresh()
	}

	var refreshFormatPane func()

	board.OnSelect = func(id string) {
		if id == "" {
			l.Info("selection cleared")
		} else {
			l.Info("widget selected", slog.String("id", id))
		}
		refreshFormatPane()
	}
	// Drags record the geometry as it was when the gesture started; the
	// snapshot is only committed to history once the gesture actually
	// changed something.
	var dragBaseline *undo.Snapshot
	board.OnBegin = func(id string) {
		dragBaseline = nil
		if s, ok := captureSnapshot("move/resize " + id); ok {
			dragBaseline = &s
		}
	}
	board.OnCommit = func(id string) {
		if dragBaseline != nil {
			dragBaseline.TS = time.Now()
			history.Push(*dragBaseline)
			dragBaseline = nil
		}
		refreshFormatPane()
	}

	// Format pane (right): edits the selected widget's title, series, and
	// payload. Rebuilt from scratch on every selection change, like the
	// original prototype re-renders its side panel.
	formatBox := container.NewVBox()
	refreshFormatPane = func() {
		formatBox.Objects = nil
		id := board.Dash.SelectedID()
		wd, ok := board.Dash.Widget(id)
		if !ok {
			formatBox.Add(widget.NewLabel("No visual selected"))
			formatBox.Refresh()
			return
		}
		formatBox.Add(widget.NewLabel(dashboard.DisplayName(wd.Kind)))

		titleEntry := widget.NewEntry()
		titleEntry.SetText(wd.Title)
		titleEntry.OnSubmitted = func(s string) {
			pushSnapshot("retitle")
			board.Dash.SetTitle(id, s)
			board.Refresh()
		}
		formatBox.Add(widget.NewForm(widget.NewFormItem("Title", titleEntry)))

		for i, s := range wd.Series {
			idx := i
			nameEntry := widget.NewEntry()
			nameEntry.SetText(s.Name)
			nameEntry.OnSubmitted = func(v string) {
				pushSnapshot("rename series")
				board.Dash.RenameSeries(id, idx, v)
				board.Refresh()
			}
			colorEntry := widget.NewEntry()
			colorEntry.SetText(s.Color)
			colorEntry.OnSubmitted = func(v string) {
				pushSnapshot("recolor series")
				board.Dash.OverrideSeriesColor(id, idx, v)
				board.Refresh()
			}
			formatBox.Add(container.NewGridWithColumns(2, nameEntry, colorEntry))
		}
		if len(wd.Series) > 0 {
			formatBox.Add(widget.NewButton("Reset colors to palette", func() {
				pushSnapshot("reset series colors")
				board.Dash.ResetSeriesColors(id)
				board.Refresh()
				refreshFormatPane()
			}))
		}

		switch wd.Kind {
		case dashboard.KindKPI:
			labelEntry := widget.NewEntry()
			labelEntry.SetText(wd.KPI.Label)
			valueEntry := widget.NewEntry()
			valueEntry.SetText(wd.KPI.Value)
			apply := func(string) {
				pushSnapshot("edit kpi")
				board.Dash.SetKPI(id, dashboard.KPIPayload{Label: labelEntry.Text, Value: valueEntry.Text})
				board.Refresh()
			}
			labelEntry.OnSubmitted = apply
			valueEntry.OnSubmitted = apply
			formatBox.Add(widget.NewForm(
				widget.NewFormItem("Label", labelEntry),
				widget.NewFormItem("Value", valueEntry),
			))
		case dashboard.KindCard:
			labelEntry := widget.NewEntry()
			labelEntry.SetText(wd.Card.Label)
			valueEntry := widget.NewEntry()
			valueEntry.SetText(wd.Card.Value)
			apply := func(string) {
				pushSnapshot("edit card")
				board.Dash.SetCard(id, dashboard.CardPayload{Label: labelEntry.Text, Value: valueEntry.Text})
				board.Refresh()
			}
			labelEntry.OnSubmitted = apply
			valueEntry.OnSubmitted = apply
			formatBox.Add(widget.NewForm(
				widget.NewFormItem("Label", labelEntry),
				widget.NewFormItem("Value", valueEntry),
			))
		case dashboard.KindTextBox:
			textEntry := widget.NewMultiLineEntry()
			textEntry.SetText(wd.TextBox.Text)
			sizeEntry := widget.NewEntry()
			sizeEntry.SetText(fmt.Sprintf("%.0f", wd.TextBox.FontSize))
			alignSelect := widget.NewSelect([]string{"left", "center", "right"}, nil)
			alignSelect.SetSelected(wd.TextBox.Align)
			boldCheck := widget.NewCheck("Bold", nil)
			boldCheck.SetChecked(wd.TextBox.Bold)
			formatBox.Add(widget.NewForm(
				widget.NewFormItem("Text", textEntry),
				widget.NewFormItem("Size", sizeEntry),
				widget.NewFormItem("Align", alignSelect),
				widget.NewFormItem("", boldCheck),
			))
			formatBox.Add(widget.NewButton("Apply text", func() {
				p := *wd.TextBox
				p.Text = textEntry.Text
				if v, err := strconv.ParseFloat(strings.TrimSpace(sizeEntry.Text), 64); err == nil && v > 0 {
					p.FontSize = v
				}
				p.Align = alignSelect.Selected
				p.Bold = boldCheck.Checked
				pushSnapshot("edit text box")
				board.Dash.SetTextBox(id, p)
				board.Refresh()
			}))
		case dashboard.KindImage:
			formatBox.Add(widget.NewButton("Replace image…", func() {
				open := dialog.NewFileOpen(func(uc fyne.URIReadCloser, err error) {
					if err != nil || uc == nil {
						return
					}
					defer func() { _ = uc.Close() }()
					dataURL, rerr := render.EncodeDataURL(uc)
					if rerr != nil {
						dialog.ShowError(rerr, w)
						return
					}
					pushSnapshot("replace image")
					board.Dash.SetImageData(id, dataURL)
					board.Refresh()
				}, w)
				open.SetFilter(fstorage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg", ".gif"}))
				open.Show()
			}))
		}
		formatBox.Refresh()
	}
	refreshFormatPane()

	setHandle := func(nh *storage.Handle) {
		h = nh
		if h != nil {
			board.Dash = h.Dash
			board.Refresh()
			history.Clear()
			w.SetTitle(fmt.Sprintf("Go Dashboard Studio — %s", filepath.Base(h.Path)))
			status.SetText("Opened " + h.Path)
			touchRecents(h, l)
		}
		refreshFormatPane()
	}

	saveCurrent := func() {
		if h == nil {
			dialog.ShowInformation("Save", "No dashboard file open. Use Save As.", w)
			return
		}
		if err := storage.Save(h); err != nil {
			dialog.ShowError(err, w)
			return
		}
		status.SetText("Saved " + h.Path)
		touchRecents(h, l)
	}

	// Insert menu from the widget catalog, grouped like the picker in the
	// original prototype.
	insertMenu := fyne.NewMenu("Insert", catalogMenuItems(func(entry dashboard.CatalogEntry) {
		pushSnapshot("add " + string(entry.Kind))
		id := board.Dash.AddWidget(entry.Kind)
		board.Refresh()
		refreshFormatPane()
		status.SetText("Added " + entry.Name + " (" + id + ")")
	})...)

	newItem := fyne.NewMenuItem("New", func() {
		if !board.Dash.IsDefaultState() {
			dialog.NewConfirm("New dashboard", "Discard the current dashboard?", func(ok bool) {
				if !ok {
					return
				}
				board.Dash.Reset()
				history.Clear()
				h = nil
				w.SetTitle("Go Dashboard Studio")
				board.Refresh()
				refreshFormatPane()
				status.SetText("New dashboard")
			}, w).Show()
			return
		}
		board.Dash.Reset()
		board.Refresh()
		status.SetText("New dashboard")
	})
	openItem := fyne.NewMenuItem("Open…", func() {
		open := dialog.NewFileOpen(func(uc fyne.URIReadCloser, err error) {
			if err != nil || uc == nil {
				return
			}
			path := uc.URI().Path()
			_ = uc.Close()
			nh, oerr := storage.Open(path)
			if oerr != nil {
				dialog.ShowError(oerr, w)
				return
			}
			setHandle(nh)
		}, w)
		open.SetFilter(fstorage.NewExtensionFileFilter([]string{".json"}))
		open.Show()
	})
	saveItem := fyne.NewMenuItem("Save", saveCurrent)
	saveAsItem := fyne.NewMenuItem("Save As…", func() {
		save := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
			if err != nil || uc == nil {
				return
			}
			path := uc.URI().Path()
			_ = uc.Close()
			if h == nil {
				nh, cerr := storage.Create(path, board.Dash)
				if cerr != nil {
					dialog.ShowError(cerr, w)
					return
				}
				setHandle(nh)
				return
			}
			if serr := storage.SaveAs(h, path); serr != nil {
				dialog.ShowError(serr, w)
				return
			}
			setHandle(h)
		}, w)
		save.SetFileName("dashboard.json")
		save.SetFilter(fstorage.NewExtensionFileFilter([]string{".json"}))
		save.Show()
	})
	fileMenu := fyne.NewMenu("File", newItem, openItem, saveItem, saveAsItem)

	undoItem := fyne.NewMenuItem("Undo", func() {
		cur, ok := captureSnapshot("")
		if !ok {
			return
		}
		if s, ok := history.Undo(cur); ok {
			applySnapshot(s)
			refreshFormatPane()
			status.SetText("Undid " + s.Label)
		} else {
			status.SetText("Nothing to undo")
		}
	})
	redoItem := fyne.NewMenuItem("Redo", func() {
		cur, ok := captureSnapshot("")
		if !ok {
			return
		}
		if s, ok := history.Redo(cur); ok {
			applySnapshot(s)
			refreshFormatPane()
			status.SetText("Redid " + s.Label)
		} else {
			status.SetText("Nothing to redo")
		}
	})
	deleteItem := fyne.NewMenuItem("Delete Visual", func() {
		id := board.Dash.SelectedID()
		if id == "" {
			status.SetText("Nothing selected")
			return
		}
		pushSnapshot("delete " + id)
		board.Dash.RemoveWidget(id)
		board.Refresh()
		refreshFormatPane()
		status.SetText("Deleted " + id)
	})
	editMenu := fyne.NewMenu("Edit", undoItem, redoItem, fyne.NewMenuItemSeparator(), deleteItem)

	var canvasItems []*fyne.MenuItem
	for _, p := range dashboard.Presets() {
		p := p
		canvasItems = append(canvasItems, fyne.NewMenuItem(
			fmt.Sprintf("%s (%d×%d)", p.Name, p.Width, p.Height), func() {
				pushSnapshot("canvas preset " + p.Name)
				board.Dash.SetCanvasSize(p.Width, p.Height)
				board.Refresh()
				status.SetText("Canvas: " + p.Name)
			}))
	}
	canvasItems = append(canvasItems, fyne.NewMenuItemSeparator())
	canvasItems = append(canvasItems, fyne.NewMenuItem("Import Background…", func() {
		open := dialog.NewFileOpen(func(uc fyne.URIReadCloser, err error) {
			if err != nil || uc == nil {
				return
			}
			path := uc.URI().Path()
			_ = uc.Close()
			raw, rerr := os.ReadFile(path)
			if rerr != nil {
				dialog.ShowError(rerr, w)
				return
			}
			pushSnapshot("import background")
			board.Dash.ImportBackgroundJSON(raw)
			board.Refresh()
			status.SetText("Background imported")
		}, w)
		open.SetFilter(fstorage.NewExtensionFileFilter([]string{".json"}))
		open.Show()
	}))
	canvasMenu := fyne.NewMenu("Canvas", canvasItems...)

	var themeWatcher *theme.Watcher
	importTheme := fyne.NewMenuItem("Import Theme…", func() {
		open := dialog.NewFileOpen(func(uc fyne.URIReadCloser, err error) {
			if err != nil || uc == nil {
				return
			}
			path := uc.URI().Path()
			_ = uc.Close()
			raw, rerr := os.ReadFile(path)
			if rerr != nil {
				dialog.ShowError(rerr, w)
				return
			}
			th, terr := theme.Parse(raw)
			if terr != nil {
				dialog.ShowError(fmt.Errorf("theme not imported, keeping current: %w", terr), w)
				return
			}
			pushSnapshot("import theme")
			board.Dash.SetTheme(th)
			board.Refresh()
			refreshFormatPane()
			status.SetText("Theme: " + board.Dash.Theme().Name)
		}, w)
		open.SetFilter(fstorage.NewExtensionFileFilter([]string{".json"}))
		open.Show()
	})
	resetTheme := fyne.NewMenuItem("Reset Theme", func() {
		pushSnapshot("reset theme")
		board.Dash.ResetTheme()
		board.Refresh()
		refreshFormatPane()
		status.SetText("Theme reset to default")
	})
	watchTheme := fyne.NewMenuItem("Watch Theme File…", func() {
		open := dialog.NewFileOpen(func(uc fyne.URIReadCloser, err error) {
			if err != nil || uc == nil {
				return
			}
			path := uc.URI().Path()
			_ = uc.Close()
			if themeWatcher != nil {
				_ = themeWatcher.Close()
			}
			tw, werr := theme.Watch(path, func(th theme.Theme) {
				fyne.Do(func() {
					board.Dash.SetTheme(th)
					board.Refresh()
					status.SetText("Theme reloaded: " + th.Name)
				})
			})
			if werr != nil {
				dialog.ShowError(werr, w)
				return
			}
			themeWatcher = tw
			status.SetText("Watching " + path)
		}, w)
		open.SetFilter(fstorage.NewExtensionFileFilter([]string{".json"}))
		open.Show()
	})
	sampleTheme := fyne.NewMenuItem("Save Sample Theme…", func() {
		save := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
			if err != nil || uc == nil {
				return
			}
			path := uc.URI().Path()
			_ = uc.Close()
			if serr := storage.WriteSampleTheme(path); serr != nil {
				dialog.ShowError(serr, w)
				return
			}
			status.SetText("Sample theme written to " + path)
		}, w)
		save.SetFileName("sample-theme.json")
		save.Show()
	})
	themeMenu := fyne.NewMenu("Theme", importTheme, resetTheme, watchTheme, fyne.NewMenuItemSeparator(), sampleTheme)

	exportPNG := fyne.NewMenuItem("Export PNG…", func() {
		save := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
			if err != nil || uc == nil {
				return
			}
			path := uc.URI().Path()
			_ = uc.Close()
			if eerr := export.WritePNG(board.Dash, path, export.PNGOptions{}); eerr != nil {
				dialog.ShowError(eerr, w)
				return
			}
			status.SetText("Exported " + path)
		}, w)
		save.SetFileName("dashboard.png")
		save.SetFilter(fstorage.NewExtensionFileFilter([]string{".png"}))
		save.Show()
	})
	exportSVG := fyne.NewMenuItem("Export SVG…", func() {
		save := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
			if err != nil || uc == nil {
				return
			}
			path := uc.URI().Path()
			_ = uc.Close()
			if eerr := export.WriteSVG(board.Dash, path); eerr != nil {
				dialog.ShowError(eerr, w)
				return
			}
			status.SetText("Exported " + path)
		}, w)
		save.SetFileName("dashboard.svg")
		save.SetFilter(fstorage.NewExtensionFileFilter([]string{".svg"}))
		save.Show()
	})
	exportPDF := fyne.NewMenuItem("Export PDF…", func() {
		save := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
			if err != nil || uc == nil {
				return
			}
			path := uc.URI().Path()
			_ = uc.Close()
			if eerr := export.WritePDF(board.Dash, path, export.PDFOptions{Title: "Dashboard"}); eerr != nil {
				dialog.ShowError(eerr, w)
				return
			}
			status.SetText("Exported " + path)
		}, w)
		save.SetFileName("dashboard.pdf")
		save.SetFilter(fstorage.NewExtensionFileFilter([]string{".pdf"}))
		save.Show()
	})
	exportMenu := fyne.NewMenu("Export", exportPNG, exportSVG, exportPDF)

	aboutItem := fyne.NewMenuItem("About Go Dashboard Studio", func() {
		exe, _ := os.Executable()
		info := fmt.Sprintf("Go Dashboard Studio\nVersion: %s\nOS: %s\nArch: %s\nGo: %s\nExecutable: %s",
			version.String(), runtime.GOOS, runtime.GOARCH, runtime.Version(), exe)
		dialog.ShowInformation("About", info, w)
	})
	aboutMenu := fyne.NewMenu("About", aboutItem)

	w.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, insertMenu, canvasMenu, themeMenu, exportMenu, aboutMenu))

	right := container.NewVBox(widget.NewLabel("Format"), widget.NewSeparator(), formatBox)
	content := container.NewBorder(nil, status, nil, container.NewVScroll(right), board)
	w.SetContent(content)

	w.SetCloseIntercept(func() {
		sz := w.Canvas().Size()
		prefs.SetInt("window.width", int(sz.Width))
		prefs.SetInt("window.height", int(sz.Height))
		if themeWatcher != nil {
			_ = themeWatcher.Close()
		}
		w.Close()
	})

	if dashboardFile != "" {
		abs, _ := filepath.Abs(dashboardFile)
		nh, err := storage.Open(abs)
		if err != nil {
			l.Error("auto-open failed", slog.Any("err", err))
		} else {
			setHandle(nh)
		}
	}

	w.ShowAndRun()
	return nil
}

func touchRecents(h *storage.Handle, l *slog.Logger) {
	r, err := storage.OpenRecents()
	if err != nil {
		l.Error("open recents failed", slog.Any("err", err))
		return
	}
	defer func() { _ = r.Close() }()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := r.Touch(ctx, h.Path, h.Dash.WidgetCount()); err != nil {
		l.Error("touch recents failed", slog.Any("err", err))
	}
}

// catalogMenuItems builds the Insert menu tree from the visual catalog, one
// submenu per catalog section.
func catalogMenuItems(onAdd func(dashboard.CatalogEntry)) []*fyne.MenuItem {
	var items []*fyne.MenuItem
	for _, sec := range dashboard.Catalog() {
		var kids []*fyne.MenuItem
		for _, entry := range sec.Items {
			entry := entry
			kids = append(kids, fyne.NewMenuItem(entry.Name, func() {
				onAdd(entry)
			}))
		}
		group := fyne.NewMenuItem(sec.Category, nil)
		group.ChildMenu = fyne.NewMenu(sec.Category, kids...)
		items = append(items, group)
	}
	return items
}

// BoardCanvas shows the dashboard as a live raster preview and forwards
// pointer gestures to the interaction state machine. The preview is drawn by
// the same renderer the exports use, so what you see is what you export.
type BoardCanvas struct {
	widget.BaseWidget

	Dash *dashboard.Dashboard
	// OnSelect fires when the selection changes through the canvas.
	OnSelect func(id string)
	// OnBegin fires when a drag or resize gesture starts, before any
	// geometry changes.
	OnBegin func(id string)
	// OnCommit fires after a drag or resize actually changed geometry.
	OnCommit func(id string)

	inter    *dashboard.Interaction
	dragging bool
}

func NewBoardCanvas() *BoardCanvas {
	b := &BoardCanvas{Dash: dashboard.New()}
	b.inter = dashboard.NewInteraction(b.Dash)
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardCanvas) PreferredSize() fyne.Size { return fyne.NewSize(900, 620) }

// fitScale returns the scale used to letterbox the canvas into the widget.
func (b *BoardCanvas) fitScale() float64 {
	sz := b.Size()
	if sz.Width <= 0 || sz.Height <= 0 {
		return 1
	}
	return b.Dash.FitScale(float64(sz.Width), float64(sz.Height))
}

// origin returns the top-left of the scaled canvas inside the widget.
func (b *BoardCanvas) origin() (float64, float64, float64) {
	scale := b.fitScale()
	cw, ch := b.Dash.CanvasSize()
	sz := b.Size()
	ox := (float64(sz.Width) - float64(cw)*scale) / 2
	oy := (float64(sz.Height) - float64(ch)*scale) / 2
	return ox, oy, scale
}

func (b *BoardCanvas) toCanvas(pos fyne.Position) (float64, float64) {
	ox, oy, scale := b.origin()
	if scale <= 0 {
		scale = 1
	}
	return (float64(pos.X) - ox) / scale, (float64(pos.Y) - oy) / scale
}

// Tapped selects the frontmost widget under the pointer, or clears the
// selection on empty canvas.
func (b *BoardCanvas) Tapped(e *fyne.PointEvent) {
	x, y := b.toCanvas(e.Position)
	hit := b.Dash.HitTest(x, y)
	b.Dash.Select(hit.ID)
	if b.OnSelect != nil {
		b.OnSelect(hit.ID)
	}
	b.Refresh()
}

func (b *BoardCanvas) Dragged(e *fyne.DragEvent) {
	_, _, scale := b.origin()
	if !b.dragging {
		startX := float64(e.Position.X - e.Dragged.DX)
		startY := float64(e.Position.Y - e.Dragged.DY)
		cx, cy := b.toCanvas(fyne.NewPos(float32(startX), float32(startY)))
		hit := b.Dash.HitTest(cx, cy)
		switch hit.Region {
		case dashboard.RegionHandle:
			b.dragging = b.inter.BeginResize(hit.ID, hit.Handle, startX, startY, scale)
		case dashboard.RegionHeader, dashboard.RegionBody:
			b.dragging = b.inter.BeginDrag(hit.ID, startX, startY, scale)
		default:
			return
		}
		if b.dragging {
			if b.OnBegin != nil {
				b.OnBegin(hit.ID)
			}
			if b.OnSelect != nil {
				b.OnSelect(hit.ID)
			}
		}
	}
	if b.dragging {
		b.inter.Move(float64(e.Position.X), float64(e.Position.Y))
		b.Refresh()
	}
}

func (b *BoardCanvas) DragEnd() {
	if !b.dragging {
		return
	}
	b.dragging = false
	id, changed := b.inter.End()
	if changed && b.OnCommit != nil {
		b.OnCommit(id)
	}
	b.Refresh()
}

// CancelInteraction reverts an in-flight drag or resize (Escape).
func (b *BoardCanvas) CancelInteraction() {
	if !b.dragging {
		return
	}
	b.dragging = false
	b.inter.Cancel()
	b.Refresh()
}

func (b *BoardCanvas) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(color.RGBA{R: 18, G: 20, B: 26, A: 255})
	preview := canvas.NewImageFromImage(render.Image(b.Dash, 1))
	preview.FillMode = canvas.ImageFillStretch
	sel := canvas.NewRectangle(color.RGBA{})
	sel.StrokeColor = color.RGBA{R: 59, G: 130, B: 246, A: 255}
	sel.StrokeWidth = 2
	sel.Hide()
	return &boardRenderer{b: b, bg: bg, preview: preview, sel: sel}
}

type boardRenderer struct {
	b       *BoardCanvas
	bg      *canvas.Rectangle
	preview *canvas.Image
	sel     *canvas.Rectangle
}

func (r *boardRenderer) Destroy() {}
func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.preview, r.sel}
}
func (r *boardRenderer) MinSize() fyne.Size { return fyne.NewSize(480, 320) }

func (r *boardRenderer) Refresh() {
	r.preview.Image = render.Image(r.b.Dash, r.b.fitScale())
	r.Layout(r.b.Size())
	r.preview.Refresh()
	canvas.Refresh(r.b)
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))

	ox, oy, scale := r.b.origin()
	cw, ch := r.b.Dash.CanvasSize()
	r.preview.Resize(fyne.NewSize(float32(float64(cw)*scale), float32(float64(ch)*scale)))
	r.preview.Move(fyne.NewPos(float32(ox), float32(oy)))

	id := r.b.Dash.SelectedID()
	if wd, ok := r.b.Dash.Widget(id); ok {
		r.sel.Show()
		r.sel.Resize(fyne.NewSize(float32(wd.Rect.W*scale), float32(wd.Rect.H*scale)))
		r.sel.Move(fyne.NewPos(float32(ox+wd.Rect.X*scale), float32(oy+wd.Rect.Y*scale)))
	} else {
		r.sel.Hide()
	}
}
