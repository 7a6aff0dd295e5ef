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
	"testing"

	"nuviacanvas/internal/domain"
)

func TestContextNames(t *testing.T) {
	if got := (Context{}).Names(); got != "" {
		t.Fatalf("empty context should render empty names, got %q", got)
	}
	if got := (Context{PartnerNames: []string{"Ada"}}).Names(); got != "Ada" {
		t.Fatalf("single name wrong: %q", got)
	}
	if got := (Context{PartnerNames: []string{"Ada", "Lin"}}).Names(); got != "Ada & Lin" {
		t.Fatalf("pair wrong: %q", got)
	}
}

func TestInstantiateExpandsPlaceholders(t *testing.T) {
	ctx := Context{PartnerNames: []string{"Mira", "Jonas"}, Date: "August 9, 2026"}
	doc := DefaultWedding().Instantiate(ctx, domain.DefaultCanvasSize)

	if err := doc.Validate(); err != nil {
		t.Fatalf("instantiated document invalid: %v", err)
	}

	var joined []string
	for _, el := range doc.Elements {
		if el.Text != nil {
			joined = append(joined, el.Text.Content)
		}
	}
	all := strings.Join(joined, "\n")
	if !strings.Contains(all, "Mira & Jonas") || !strings.Contains(all, "August 9, 2026") {
		t.Fatalf("placeholders not expanded:\n%s", all)
	}
	if strings.Contains(all, "{{") {
		t.Fatalf("unexpanded placeholder survived:\n%s", all)
	}
}

func TestInstantiateFreshIdentitiesAndZ(t *testing.T) {
	tpl := DefaultWedding()
	a := tpl.Instantiate(Context{}, domain.DefaultCanvasSize)
	b := tpl.Instantiate(Context{}, domain.DefaultCanvasSize)

	ids := map[string]bool{}
	for _, el := range append(a.Elements, b.Elements...) {
		if ids[el.ID] {
			t.Fatalf("instantiation reused id %s", el.ID)
		}
		ids[el.ID] = true
	}
	for i, el := range a.Elements {
		if el.Transform.ZIndex != i+1 {
			t.Fatalf("z-indices should be sequential from 1, got %d at %d", el.Transform.ZIndex, i)
		}
	}
	// template itself is untouched
	for _, el := range tpl.Elements {
		if el.Transform.ZIndex != 0 {
			t.Fatalf("instantiation mutated the template")
		}
	}

	if a.BackgroundColor != blushPink {
		t.Fatalf("template background not applied")
	}
	if a.CanvasSize != domain.DefaultCanvasSize {
		t.Fatalf("canvas size not applied")
	}
}

func TestBuiltinAndByName(t *testing.T) {
	all := Builtin()
	if len(all) != 3 || all[0].Name != "Classic Wedding" {
		t.Fatalf("builtin set wrong: %+v", all)
	}
	for _, tpl := range all {
		doc := tpl.Instantiate(Context{PartnerNames: []string{"A", "B"}, Date: "x"}, domain.DefaultCanvasSize)
		if err := doc.Validate(); err != nil {
			t.Fatalf("template %q instantiates invalid document: %v", tpl.Name, err)
		}
	}

	if _, ok := ByName("classic wedding"); !ok {
		t.Fatalf("ByName should match case-insensitively")
	}
	if _, ok := ByName("No Such"); ok {
		t.Fatalf("ByName matched a missing template")
	}
}

func TestGoldenFrameCarriesPremiumContent(t *testing.T) {
	doc := GoldenFrame().Instantiate(Context{}, domain.DefaultCanvasSize)
	if !doc.HasPremiumContent() {
		t.Fatalf("premium template should yield premium content")
	}
	if GoldenFrame().IsPremium != true {
		t.Fatalf("premium flag lost")
	}

	if DefaultWedding().Instantiate(Context{}, domain.DefaultCanvasSize).HasPremiumContent() {
		t.Fatalf("default template must stay free")
	}
}
