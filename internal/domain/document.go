/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package domain

import (
	"bytes"
	"fmt"
	"sort"
)

// Document is the complete serializable state of one invitation design:
// an ordered element collection, a background and a fixed canvas size.
// Slice order is insertion order; paint order is derived (see PaintOrder).
// If both background color and image are set, the image wins at render time;
// that choice belongs to the external renderer.
type Document struct {
	Elements        []Element `json:"elements"`
	CanvasSize      Size      `json:"canvasSize"`
	BackgroundColor Color     `json:"backgroundColor"`
	BackgroundImage []byte    `json:"backgroundImageData,omitempty"`
}

// DefaultCanvasSize matches the portrait invitation card the app ships with.
var DefaultCanvasSize = Size{Width: 375, Height: 550}

// NewDocument returns an empty document with a white background.
func NewDocument(size Size) Document {
	return Document{Elements: []Element{}, CanvasSize: size, BackgroundColor: White}
}

// Clone returns a deep copy sharing no element payloads or byte slices.
func (d Document) Clone() Document {
	c := d
	c.Elements = make([]Element, len(d.Elements))
	for i, e := range d.Elements {
		c.Elements[i] = e.Clone()
	}
	if d.BackgroundImage != nil {
		c.BackgroundImage = append([]byte(nil), d.BackgroundImage...)
	}
	return c
}

// Equal reports deep structural equality.
func (d Document) Equal(o Document) bool {
	if d.CanvasSize != o.CanvasSize || d.BackgroundColor != o.BackgroundColor {
		return false
	}
	if !bytes.Equal(d.BackgroundImage, o.BackgroundImage) {
		return false
	}
	if len(d.Elements) != len(o.Elements) {
		return false
	}
	for i := range d.Elements {
		if !d.Elements[i].Equal(o.Elements[i]) {
			return false
		}
	}
	return true
}

// IndexOf returns the slice position of the element with the given id, or -1.
func (d Document) IndexOf(id string) int {
	for i := range d.Elements {
		if d.Elements[i].ID == id {
			return i
		}
	}
	return -1
}

// Find returns a copy of the element with the given id.
func (d Document) Find(id string) (Element, bool) {
	if i := d.IndexOf(id); i >= 0 {
		return d.Elements[i].Clone(), true
	}
	return Element{}, false
}

// MaxZIndex returns the highest paint-order key, or 0 for an empty document.
func (d Document) MaxZIndex() int {
	m := 0
	for i, e := range d.Elements {
		if i == 0 || e.Transform.ZIndex > m {
			m = e.Transform.ZIndex
		}
	}
	return m
}

// MinZIndex returns the lowest paint-order key, or 0 for an empty document.
func (d Document) MinZIndex() int {
	m := 0
	for i, e := range d.Elements {
		if i == 0 || e.Transform.ZIndex < m {
			m = e.Transform.ZIndex
		}
	}
	return m
}

// PaintOrder returns the elements sorted ascending by z-index. The sort is
// stable so insertion order breaks ties.
func (d Document) PaintOrder() []Element {
	out := make([]Element, len(d.Elements))
	copy(out, d.Elements)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Transform.ZIndex < out[j].Transform.ZIndex
	})
	return out
}

// HasPremiumContent reports whether any sticker element is premium. Callers
// use this to gate export or import behind an external entitlement check;
// the document itself carries no entitlement logic.
func (d Document) HasPremiumContent() bool {
	for _, e := range d.Elements {
		if e.IsPremium() {
			return true
		}
	}
	return false
}

// Validate checks the document invariants: well-formed elements and unique ids.
func (d Document) Validate() error {
	seen := make(map[string]struct{}, len(d.Elements))
	for _, e := range d.Elements {
		if err := e.Validate(); err != nil {
			return err
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("duplicate element id %s", e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	return nil
}
