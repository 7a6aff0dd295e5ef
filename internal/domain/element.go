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

	"github.com/google/uuid"
)

// Kind discriminates the element variants.
type Kind string

const (
	KindText    Kind = "text"
	KindImage   Kind = "image"
	KindShape   Kind = "shape"
	KindSticker Kind = "sticker"
)

// Element is one visual object on the canvas. It is a tagged union: Kind
// names the variant and exactly one of the payload pointers is non-nil.
// ID is generated at creation and never reused or mutated.
type Element struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Transform Transform `json:"transform"`

	Text    *TextPayload    `json:"text,omitempty"`
	Image   *ImagePayload   `json:"image,omitempty"`
	Shape   *ShapePayload   `json:"shape,omitempty"`
	Sticker *StickerPayload `json:"sticker,omitempty"`
}

// TextPayload is the content of a text element.
type TextPayload struct {
	Content string    `json:"content"`
	Color   Color     `json:"color"`
	Style   TextStyle `json:"style"`
}

// ImagePayload is the content of an image element.
type ImagePayload struct {
	Data   []byte `json:"data"`
	Filter string `json:"filter,omitempty"`
}

// ShapePayload is the content of a shape element.
type ShapePayload struct {
	Shape       ShapeKind `json:"shape"`
	FillColor   *Color    `json:"fillColor,omitempty"`
	StrokeColor *Color    `json:"strokeColor,omitempty"`
	StrokeWidth float64   `json:"strokeWidth,omitempty"`
}

// StickerPayload is the content of a sticker element.
type StickerPayload struct {
	AssetName string `json:"assetName"`
	IsPremium bool   `json:"isPremium"`
}

// NewText creates a text element with a fresh identity and identity transform.
func NewText(content string, color Color, style TextStyle) Element {
	return Element{
		ID:        uuid.NewString(),
		Kind:      KindText,
		Transform: NewTransform(),
		Text:      &TextPayload{Content: content, Color: color, Style: style},
	}
}

// NewImage creates an image element with a fresh identity.
func NewImage(data []byte) Element {
	return Element{
		ID:        uuid.NewString(),
		Kind:      KindImage,
		Transform: NewTransform(),
		Image:     &ImagePayload{Data: data},
	}
}

// NewShape creates a shape element with a fresh identity.
func NewShape(kind ShapeKind, fill, stroke *Color, strokeWidth float64) Element {
	return Element{
		ID:        uuid.NewString(),
		Kind:      KindShape,
		Transform: NewTransform(),
		Shape:     &ShapePayload{Shape: kind, FillColor: fill, StrokeColor: stroke, StrokeWidth: strokeWidth},
	}
}

// NewSticker creates a sticker element with a fresh identity.
func NewSticker(assetName string, premium bool) Element {
	return Element{
		ID:        uuid.NewString(),
		Kind:      KindSticker,
		Transform: NewTransform(),
		Sticker:   &StickerPayload{AssetName: assetName, IsPremium: premium},
	}
}

// WithTransform returns a copy with the transform replaced. Identity and
// payload are preserved untouched; layer-reordering relies on this.
func (e Element) WithTransform(t Transform) Element {
	c := e.Clone()
	c.Transform = t
	return c
}

// Clone returns a deep copy; payload pointers and byte slices are never shared.
func (e Element) Clone() Element {
	c := e
	if e.Text != nil {
		t := *e.Text
		c.Text = &t
	}
	if e.Image != nil {
		i := ImagePayload{Filter: e.Image.Filter}
		if e.Image.Data != nil {
			i.Data = append([]byte(nil), e.Image.Data...)
		}
		c.Image = &i
	}
	if e.Shape != nil {
		s := *e.Shape
		if e.Shape.FillColor != nil {
			f := *e.Shape.FillColor
			s.FillColor = &f
		}
		if e.Shape.StrokeColor != nil {
			st := *e.Shape.StrokeColor
			s.StrokeColor = &st
		}
		c.Shape = &s
	}
	if e.Sticker != nil {
		s := *e.Sticker
		c.Sticker = &s
	}
	return c
}

// IsPremium reports whether the element is a premium sticker.
func (e Element) IsPremium() bool {
	return e.Kind == KindSticker && e.Sticker != nil && e.Sticker.IsPremium
}

// Equal reports deep structural equality, identity included.
func (e Element) Equal(o Element) bool {
	if e.ID != o.ID || e.Kind != o.Kind || e.Transform != o.Transform {
		return false
	}
	return e.payloadEqual(o)
}

// ContentEqual reports equality of variant and payload, ignoring identity and
// transform. Duplication preserves content in this sense.
func (e Element) ContentEqual(o Element) bool {
	return e.Kind == o.Kind && e.payloadEqual(o)
}

func (e Element) payloadEqual(o Element) bool {
	switch {
	case e.Text != nil || o.Text != nil:
		return e.Text != nil && o.Text != nil && *e.Text == *o.Text
	case e.Image != nil || o.Image != nil:
		return e.Image != nil && o.Image != nil &&
			e.Image.Filter == o.Image.Filter && bytes.Equal(e.Image.Data, o.Image.Data)
	case e.Shape != nil || o.Shape != nil:
		if e.Shape == nil || o.Shape == nil {
			return false
		}
		if e.Shape.Shape != o.Shape.Shape || e.Shape.StrokeWidth != o.Shape.StrokeWidth {
			return false
		}
		return colorPtrEqual(e.Shape.FillColor, o.Shape.FillColor) &&
			colorPtrEqual(e.Shape.StrokeColor, o.Shape.StrokeColor)
	case e.Sticker != nil || o.Sticker != nil:
		return e.Sticker != nil && o.Sticker != nil && *e.Sticker == *o.Sticker
	}
	return true
}

func colorPtrEqual(a, b *Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Validate checks that the element has an identity and that exactly the
// payload matching its kind is present.
func (e Element) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("element has no id")
	}
	set := 0
	for _, p := range []bool{e.Text != nil, e.Image != nil, e.Shape != nil, e.Sticker != nil} {
		if p {
			set++
		}
	}
	ok := false
	switch e.Kind {
	case KindText:
		ok = e.Text != nil
	case KindImage:
		ok = e.Image != nil
	case KindShape:
		ok = e.Shape != nil
	case KindSticker:
		ok = e.Sticker != nil
	}
	if set != 1 || !ok {
		return fmt.Errorf("element %s: kind %q does not match payload", e.ID, e.Kind)
	}
	if e.Kind == KindShape && !e.Shape.Shape.Valid() {
		return fmt.Errorf("element %s: unknown shape kind %q", e.ID, e.Shape.Shape)
	}
	return nil
}
