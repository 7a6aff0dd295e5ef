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

// This file defines the value types shared by the invitation canvas model:
// colors, geometry, text styling and the element transform. All of them are
// plain JSON-serializable structs; the document and element types build on top.

// Color is an 8-bit RGBA color.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

var (
	Black = Color{0, 0, 0, 255}
	White = Color{255, 255, 255, 255}
)

// Offset is a displacement in canvas-local units, relative to the canvas center.
type Offset struct {
	Dx float64 `json:"dx"`
	Dy float64 `json:"dy"`
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(p Offset) Offset { return Offset{Dx: o.Dx + p.Dx, Dy: o.Dy + p.Dy} }

// Size is a width/height pair in canvas units.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Scale bounds. Any mutator clamps into this range; a transform is never
// stored with a scale outside it.
const (
	MinScale = 0.1
	MaxScale = 5.0
)

// ClampScale coerces s into [MinScale, MaxScale].
func ClampScale(s float64) float64 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}

// Transform describes an element's placement: offset from canvas center,
// uniform scale, rotation in radians, and an integer paint-order key.
// ZIndex has no uniqueness requirement; paint order sorts ascending with
// insertion order breaking ties.
type Transform struct {
	Offset   Offset  `json:"offset"`
	Scale    float64 `json:"scale"`
	Rotation float64 `json:"rotation"`
	ZIndex   int     `json:"zIndex"`
}

// NewTransform returns the identity placement.
func NewTransform() Transform { return Transform{Scale: 1} }

// Translated returns a copy displaced by (dx, dy).
func (t Transform) Translated(dx, dy float64) Transform {
	t.Offset.Dx += dx
	t.Offset.Dy += dy
	return t
}

// Scaled returns a copy with the scale multiplied by factor, clamped.
func (t Transform) Scaled(factor float64) Transform {
	t.Scale = ClampScale(t.Scale * factor)
	return t
}

// Rotated returns a copy rotated by delta radians.
func (t Transform) Rotated(delta float64) Transform {
	t.Rotation += delta
	return t
}

// WithZIndex returns a copy with the paint-order key replaced.
func (t Transform) WithZIndex(z int) Transform {
	t.ZIndex = z
	return t
}

// Normalized returns a copy with the scale coerced into its valid range.
// Decoders apply this so out-of-range input is repaired, not rejected.
func (t Transform) Normalized() Transform {
	if t.Scale == 0 {
		t.Scale = 1
	}
	t.Scale = ClampScale(t.Scale)
	return t
}

// TextStyle carries the typography settings of a text element.
type TextStyle struct {
	FontFamily    string    `json:"fontFamily,omitempty"`
	FontSize      float64   `json:"fontSize"`
	FontWeight    string    `json:"fontWeight,omitempty"` // regular, medium, semibold, bold
	LetterSpacing float64   `json:"letterSpacing,omitempty"`
	LineHeight    float64   `json:"lineHeight,omitempty"`
	Alignment     Alignment `json:"alignment,omitempty"`
}

// Alignment is the horizontal text alignment.
type Alignment string

const (
	AlignLeading  Alignment = "leading"
	AlignCenter   Alignment = "center"
	AlignTrailing Alignment = "trailing"
)

// ShapeKind enumerates the supported shape geometries.
type ShapeKind string

const (
	ShapeRectangle ShapeKind = "rectangle"
	ShapeCircle    ShapeKind = "circle"
	ShapeEllipse   ShapeKind = "ellipse"
	ShapeLine      ShapeKind = "line"
	ShapeDivider   ShapeKind = "divider"
	ShapeHeart     ShapeKind = "heart"
	ShapeStar      ShapeKind = "star"
	ShapeDiamond   ShapeKind = "diamond"
)

// ShapeKinds lists all valid shape kinds, in declaration order.
var ShapeKinds = []ShapeKind{
	ShapeRectangle, ShapeCircle, ShapeEllipse, ShapeLine,
	ShapeDivider, ShapeHeart, ShapeStar, ShapeDiamond,
}

// Valid reports whether k is a known shape kind.
func (k ShapeKind) Valid() bool {
	for _, s := range ShapeKinds {
		if k == s {
			return true
		}
	}
	return false
}
