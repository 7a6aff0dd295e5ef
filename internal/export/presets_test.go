/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package export

import (
	"errors"
	"path/filepath"
	"testing"

	"nuviacanvas/internal/domain"
)

func TestPixelSizePresets(t *testing.T) {
	canvas := domain.Size{Width: 375, Height: 550}
	cases := []struct {
		opts Options
		w, h int
	}{
		{Options{Format: FormatPNG, Resolution: ResolutionStandard}, 375, 550},
		{Options{Format: FormatPNG, Resolution: ResolutionHigh}, 750, 1100},
		{Options{Format: FormatPDF, Resolution: ResolutionPrint}, 1563, 2292}, // 300/72 scale, rounded
		{Options{Format: FormatJPEG, Resolution: ResolutionCustom, CustomWidth: 100, CustomHeight: 200}, 100, 200},
	}
	for _, c := range cases {
		w, h, err := c.opts.PixelSize(canvas)
		if err != nil {
			t.Fatalf("%+v: %v", c.opts, err)
		}
		if w != c.w || h != c.h {
			t.Fatalf("%+v: got %dx%d, want %dx%d", c.opts, w, h, c.w, c.h)
		}
	}
}

func TestOptionsValidate(t *testing.T) {
	bad := []Options{
		{Format: "gif", Resolution: ResolutionStandard},
		{Format: FormatPNG, Resolution: "huge"},
		{Format: FormatPNG, Resolution: ResolutionCustom},                                    // missing dims
		{Format: FormatPNG, Resolution: ResolutionCustom, CustomWidth: -1, CustomHeight: 10}, // negative
	}
	for _, o := range bad {
		if err := o.Validate(); err == nil {
			t.Fatalf("%+v should not validate", o)
		}
	}
	if err := (Options{Format: FormatJPEG, Resolution: ResolutionHigh}).Validate(); err != nil {
		t.Fatalf("valid options rejected: %v", err)
	}
}

func TestPixelSizeRejectsDegenerateCanvas(t *testing.T) {
	o := Options{Format: FormatPNG, Resolution: ResolutionStandard}
	if _, _, err := o.PixelSize(domain.Size{}); err == nil {
		t.Fatalf("zero canvas accepted")
	}
}

func TestOutputPath(t *testing.T) {
	if got := OutputPath("out", "invite", FormatJPEG); got != filepath.Join("out", "invite.jpg") {
		t.Fatalf("jpeg extension wrong: %s", got)
	}
	if got := OutputPath("out", "invite.json", FormatPNG); got != filepath.Join("out", "invite.png") {
		t.Fatalf("existing extension should be replaced: %s", got)
	}
	if got := OutputPath("out", "invite", FormatPDF); got != filepath.Join("out", "invite.pdf") {
		t.Fatalf("pdf extension wrong: %s", got)
	}
}

func TestEnsureAllowed(t *testing.T) {
	free := domain.NewDocument(domain.DefaultCanvasSize)
	if err := EnsureAllowed(free, false); err != nil {
		t.Fatalf("free document should always export: %v", err)
	}

	premium := domain.NewDocument(domain.DefaultCanvasSize)
	premium.Elements = append(premium.Elements, domain.NewSticker("flourish-gold", true))
	if err := EnsureAllowed(premium, false); !errors.Is(err, ErrPremiumLocked) {
		t.Fatalf("unentitled premium export should be locked, got %v", err)
	}
	if err := EnsureAllowed(premium, true); err != nil {
		t.Fatalf("entitled premium export should pass: %v", err)
	}
}
