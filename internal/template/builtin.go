/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package template

import (
	"strings"

	"nuviacanvas/internal/domain"
)

// Built-in templates. Coordinates are offsets from the center of the default
// 375x550 portrait card.

var (
	blushPink = domain.Color{R: 247, G: 230, B: 231, A: 255}
	deepRose  = domain.Color{R: 164, G: 68, B: 83, A: 255}
	ivory     = domain.Color{R: 252, G: 249, B: 242, A: 255}
	charcoal  = domain.Color{R: 54, G: 54, B: 56, A: 255}
	gold      = domain.Color{R: 190, G: 158, B: 92, A: 255}
)

// DefaultWedding is the classic invitation the editor opens with. It is the
// one template that consumes the caller context (names and date).
func DefaultWedding() Template {
	heartFill := deepRose
	return Template{
		Name:            "Classic Wedding",
		BackgroundColor: &blushPink,
		Elements: []domain.Element{
			placedText("We're getting married", charcoal, domain.TextStyle{
				FontSize: 16, FontWeight: "medium", LetterSpacing: 2, Alignment: domain.AlignCenter,
			}, 0, -180),
			placedText(PlaceholderNames, deepRose, domain.TextStyle{
				FontFamily: "Serif", FontSize: 34, FontWeight: "bold", Alignment: domain.AlignCenter,
			}, 0, -110),
			placedShape(domain.ShapeHeart, &heartFill, nil, 0, 0, 0),
			placedText(PlaceholderDate, charcoal, domain.TextStyle{
				FontSize: 18, FontWeight: "regular", LetterSpacing: 1, Alignment: domain.AlignCenter,
			}, 0, 120),
		},
	}
}

// Minimal is an understated single-line design.
func Minimal() Template {
	return Template{
		Name:            "Minimal",
		BackgroundColor: &ivory,
		Elements: []domain.Element{
			placedText(PlaceholderNames, charcoal, domain.TextStyle{
				FontSize: 28, FontWeight: "semibold", Alignment: domain.AlignCenter,
			}, 0, -20),
			placedShape(domain.ShapeDivider, nil, &charcoal, 0, 30, 1),
			placedText(PlaceholderDate, charcoal, domain.TextStyle{
				FontSize: 14, FontWeight: "regular", LetterSpacing: 3, Alignment: domain.AlignCenter,
			}, 0, 70),
		},
	}
}

// GoldenFrame is the premium sample with gilded decoration.
func GoldenFrame() Template {
	goldFill := gold
	return Template{
		Name:            "Golden Frame",
		BackgroundColor: &ivory,
		IsPremium:       true,
		Elements: []domain.Element{
			placedShape(domain.ShapeStar, &goldFill, nil, 0, -200, 0),
			placedText(PlaceholderNames, gold, domain.TextStyle{
				FontFamily: "Serif", FontSize: 32, FontWeight: "bold", Alignment: domain.AlignCenter,
			}, 0, -80),
			placedText(PlaceholderDate, charcoal, domain.TextStyle{
				FontSize: 16, Alignment: domain.AlignCenter,
			}, 0, 60),
			placedSticker("flourish-gold", true, 0, 180),
		},
	}
}

// Builtin lists every template shipped with the app, the default first.
func Builtin() []Template {
	return []Template{DefaultWedding(), Minimal(), GoldenFrame()}
}

// ByName finds a built-in template, matching case-insensitively.
func ByName(name string) (Template, bool) {
	for _, t := range Builtin() {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return Template{}, false
}

func placedText(content string, c domain.Color, style domain.TextStyle, dx, dy float64) domain.Element {
	e := domain.NewText(content, c, style)
	e.Transform = e.Transform.Translated(dx, dy)
	return e
}

func placedShape(kind domain.ShapeKind, fill, stroke *domain.Color, dx, dy, strokeWidth float64) domain.Element {
	e := domain.NewShape(kind, fill, stroke, strokeWidth)
	e.Transform = e.Transform.Translated(dx, dy)
	return e
}

func placedSticker(asset string, premium bool, dx, dy float64) domain.Element {
	e := domain.NewSticker(asset, premium)
	e.Transform = e.Transform.Translated(dx, dy)
	return e
}
