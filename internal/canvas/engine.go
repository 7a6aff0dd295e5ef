/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package canvas implements the invitation composition engine: a view-model
// over one live document with bounded linear undo/redo, ephemeral selection
// and gesture sessions.
//
// All mutations are expected on the goroutine that owns the Engine (the UI
// frame loop); there is no internal locking because there is no concurrent
// writer. Operations on unknown element ids are silent no-ops.
package canvas

import (
	"log/slog"

	"github.com/google/uuid"

	"nuviacanvas/internal/domain"
	"nuviacanvas/internal/history"
	applog "nuviacanvas/internal/log"
	"nuviacanvas/internal/template"
)

// Config controls engine construction.
type Config struct {
	CanvasSize   domain.Size
	HistoryDepth int // 0 picks history.DefaultMaxDepth
}

// Engine owns the live document, its history and the ephemeral selection.
type Engine struct {
	doc      domain.Document
	hist     *history.Manager
	selected string // empty means no selection

	gesture *gestureSession

	subs      map[int]func(Event)
	nextSubID int

	log *slog.Logger
}

// NewEngine creates an engine over an empty document of the given size.
func NewEngine(size domain.Size) *Engine {
	return NewEngineWith(Config{CanvasSize: size})
}

// NewEngineWith creates an engine with explicit configuration.
func NewEngineWith(cfg Config) *Engine {
	if cfg.CanvasSize == (domain.Size{}) {
		cfg.CanvasSize = domain.DefaultCanvasSize
	}
	return &Engine{
		doc:  domain.NewDocument(cfg.CanvasSize),
		hist: history.NewManager(history.Config{MaxDepth: cfg.HistoryDepth}),
		subs: make(map[int]func(Event)),
		log:  applog.WithComponent("canvas"),
	}
}

// Document returns a deep copy of the live document, safe to hand to a
// renderer or exporter on another goroutine.
func (e *Engine) Document() domain.Document { return e.doc.Clone() }

// SelectedElementID returns the current selection, empty when none.
func (e *Engine) SelectedElementID() string { return e.selected }

// CanUndo reports whether an undo step is available.
func (e *Engine) CanUndo() bool { return e.hist.CanUndo() }

// CanRedo reports whether a redo step is available.
func (e *Engine) CanRedo() bool { return e.hist.CanRedo() }

// AddElement appends the element, overriding its z-index with max+1 so new
// elements always land on top, and selects it. Returns the element id.
func (e *Engine) AddElement(el domain.Element) string {
	e.hist.Push(e.doc)
	el = el.Clone()
	if el.ID == "" || e.doc.IndexOf(el.ID) >= 0 {
		el.ID = uuid.NewString()
	}
	el.Transform.ZIndex = e.doc.MaxZIndex() + 1
	el.Transform = el.Transform.Normalized()
	e.doc.Elements = append(e.doc.Elements, el)
	e.selected = el.ID
	e.emit(Event{Kind: EventElementAdded, ElementID: el.ID})
	return el.ID
}

// RemoveElement deletes the element with the given id. The selection is
// cleared if it pointed at the removed element.
func (e *Engine) RemoveElement(id string) {
	e.hist.Push(e.doc)
	i := e.doc.IndexOf(id)
	if i < 0 {
		return
	}
	e.doc.Elements = append(e.doc.Elements[:i], e.doc.Elements[i+1:]...)
	if e.selected == id {
		e.selected = ""
	}
	e.emit(Event{Kind: EventElementRemoved, ElementID: id})
}

// DuplicateElement inserts a copy of the element with a fresh identity,
// offset by (+20, +20) and placed on top, and selects it. Returns the new id,
// or empty when the source id is unknown.
func (e *Engine) DuplicateElement(id string) string {
	src, ok := e.doc.Find(id)
	if !ok {
		return ""
	}
	e.hist.Push(e.doc)
	dup := src.Clone()
	dup.ID = uuid.NewString()
	dup.Transform.Offset = src.Transform.Offset.Add(domain.Offset{Dx: 20, Dy: 20})
	dup.Transform.ZIndex = e.doc.MaxZIndex() + 1
	e.doc.Elements = append(e.doc.Elements, dup)
	e.selected = dup.ID
	e.emit(Event{Kind: EventElementAdded, ElementID: dup.ID})
	return dup.ID
}

// UpdateElement replaces the element at the id's position in place; the slice
// position is preserved. The replacement keeps the original identity.
func (e *Engine) UpdateElement(id string, el domain.Element) {
	e.hist.Push(e.doc)
	i := e.doc.IndexOf(id)
	if i < 0 {
		return
	}
	el = el.Clone()
	el.ID = id
	el.Transform = el.Transform.Normalized()
	e.doc.Elements[i] = el
	e.emit(Event{Kind: EventElementUpdated, ElementID: id})
}

// SelectElement changes the selection without touching history. The id is not
// validated against the document; an empty id deselects.
func (e *Engine) SelectElement(id string) {
	if e.selected == id {
		return
	}
	e.selected = id
	e.emit(Event{Kind: EventSelectionChanged, ElementID: id})
}

// DeselectAll clears the selection.
func (e *Engine) DeselectAll() { e.SelectElement("") }

// UpdateTransform replaces an element's transform without a history push.
// Gesture application calls this once per frame; commits happen on gesture
// end. The scale is clamped on every call.
func (e *Engine) UpdateTransform(id string, t domain.Transform) {
	i := e.doc.IndexOf(id)
	if i < 0 {
		return
	}
	t.Scale = domain.ClampScale(t.Scale)
	e.doc.Elements[i].Transform = t
}

// BringToFront raises the element above every other by z-index.
func (e *Engine) BringToFront(id string) {
	e.hist.Push(e.doc)
	i := e.doc.IndexOf(id)
	if i < 0 {
		return
	}
	e.doc.Elements[i].Transform.ZIndex = e.doc.MaxZIndex() + 1
	e.emit(Event{Kind: EventElementUpdated, ElementID: id})
}

// SendToBack lowers the element below every other by z-index.
func (e *Engine) SendToBack(id string) {
	e.hist.Push(e.doc)
	i := e.doc.IndexOf(id)
	if i < 0 {
		return
	}
	e.doc.Elements[i].Transform.ZIndex = e.doc.MinZIndex() - 1
	e.emit(Event{Kind: EventElementUpdated, ElementID: id})
}

// LayerDirection names the two MoveLayer directions.
type LayerDirection string

const (
	LayerUp   LayerDirection = "up"
	LayerDown LayerDirection = "down"
)

// MoveLayer is the convenience layer control: "up" behaves like BringToFront,
// "down" like SendToBack but only while the current minimum z-index is
// positive, so repeated taps cannot drift z-indices without bound below zero.
// The upward direction is deliberately unguarded.
func (e *Engine) MoveLayer(id string, dir LayerDirection) {
	switch dir {
	case LayerUp:
		e.BringToFront(id)
	case LayerDown:
		if e.doc.MinZIndex() <= 0 {
			return
		}
		e.SendToBack(id)
	}
}

// SetBackgroundColor replaces the background color.
func (e *Engine) SetBackgroundColor(c domain.Color) {
	e.hist.Push(e.doc)
	e.doc.BackgroundColor = c
	e.emit(Event{Kind: EventBackgroundSet})
}

// SetBackgroundImage replaces the background image bytes; nil clears it.
// Undecodable bytes are accepted (rendering is the external renderer's
// concern) but logged.
func (e *Engine) SetBackgroundImage(data []byte) {
	e.hist.Push(e.doc)
	if data == nil {
		e.doc.BackgroundImage = nil
	} else {
		e.doc.BackgroundImage = append([]byte(nil), data...)
		if dims, err := domain.ProbeImage(data); err != nil {
			e.log.Warn("background image not decodable", slog.Any("err", err))
		} else {
			e.log.Debug("background image set",
				slog.Int("w", dims.Width), slog.Int("h", dims.Height), slog.String("format", dims.Format))
		}
	}
	e.emit(Event{Kind: EventBackgroundSet})
}

// ClearCanvas removes every element and the selection.
func (e *Engine) ClearCanvas() {
	e.hist.Push(e.doc)
	e.doc.Elements = []domain.Element{}
	e.selected = ""
	e.emit(Event{Kind: EventDocumentReplaced})
}

// Undo steps back one history entry. Returns false when there is none.
func (e *Engine) Undo() bool {
	d, ok := e.hist.Undo(e.doc)
	if !ok {
		return false
	}
	e.replaceDocument(d)
	return true
}

// Redo steps forward one history entry. Returns false when there is none.
func (e *Engine) Redo() bool {
	d, ok := e.hist.Redo(e.doc)
	if !ok {
		return false
	}
	e.replaceDocument(d)
	return true
}

// replaceDocument swaps in a restored document. Snapshots do not carry the
// selection; it survives a time-travel step unless its element is gone.
func (e *Engine) replaceDocument(d domain.Document) {
	e.doc = d
	if e.selected != "" && e.doc.IndexOf(e.selected) < 0 {
		e.selected = ""
	}
	e.emit(Event{Kind: EventDocumentReplaced})
}

// ExportState serializes the document (not selection or history) to its
// canonical JSON form.
func (e *Engine) ExportState() ([]byte, error) {
	return domain.EncodeDocument(e.doc)
}

// ImportState replaces the document from serialized bytes. The pre-import
// document is pushed to history first, so an import can itself be undone.
// Malformed bytes surface an error wrapping domain.ErrDocumentDecode and
// leave the engine untouched.
func (e *Engine) ImportState(b []byte) error {
	d, err := domain.DecodeDocument(b)
	if err != nil {
		e.log.Warn("import rejected", slog.Any("err", err))
		return err
	}
	e.hist.Push(e.doc)
	e.replaceDocument(d)
	e.log.Info("document imported", slog.Int("elements", len(d.Elements)))
	return nil
}

// LoadTemplate replaces the document with a fresh instantiation of the
// template at the current canvas size and clears the selection.
func (e *Engine) LoadTemplate(t template.Template, ctx template.Context) {
	e.hist.Push(e.doc)
	e.doc = t.Instantiate(ctx, e.doc.CanvasSize)
	e.selected = ""
	e.emit(Event{Kind: EventDocumentReplaced})
	e.log.Info("template loaded", slog.String("template", t.Name), slog.Int("elements", len(e.doc.Elements)))
}

// HasPremiumContent reports whether the live document uses premium assets;
// callers gate export behind their entitlement check with it.
func (e *Engine) HasPremiumContent() bool { return e.doc.HasPremiumContent() }
