/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package template defines predefined invitation designs and instantiates
// them into fresh documents.
package template

import (
	"strings"

	"github.com/google/uuid"

	"nuviacanvas/internal/domain"
)

// Template is a predefined set of elements and background used to initialize
// a document.
type Template struct {
	Name            string           `json:"name"`
	BackgroundColor *domain.Color    `json:"backgroundColor,omitempty"`
	Elements        []domain.Element `json:"elements"`
	IsPremium       bool             `json:"isPremium"`
}

// Context carries the caller data merged into template text, currently only
// used by the default wedding invitation.
type Context struct {
	PartnerNames []string
	Date         string
}

// Names joins the partner names for display.
func (c Context) Names() string {
	if len(c.PartnerNames) == 0 {
		return ""
	}
	return strings.Join(c.PartnerNames, " & ")
}

// Instantiate builds a fresh document of the given canvas size from the
// template. Elements receive new identities and sequential z-indices so a
// template can be loaded repeatedly without id collisions.
func (t Template) Instantiate(ctx Context, size domain.Size) domain.Document {
	doc := domain.NewDocument(size)
	if t.BackgroundColor != nil {
		doc.BackgroundColor = *t.BackgroundColor
	}
	for i, el := range t.Elements {
		e := el.Clone()
		e.ID = uuid.NewString()
		e.Transform = e.Transform.Normalized().WithZIndex(i + 1)
		if e.Kind == domain.KindText && e.Text != nil {
			e.Text.Content = expand(e.Text.Content, ctx)
		}
		doc.Elements = append(doc.Elements, e)
	}
	return doc
}

// Placeholders recognized in template text content.
const (
	PlaceholderNames = "{{names}}"
	PlaceholderDate  = "{{date}}"
)

func expand(s string, ctx Context) string {
	s = strings.ReplaceAll(s, PlaceholderNames, ctx.Names())
	s = strings.ReplaceAll(s, PlaceholderDate, ctx.Date)
	return s
}
