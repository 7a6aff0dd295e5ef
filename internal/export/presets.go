/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package export defines the outbound rendering contract: output formats,
// resolution presets and the premium gate. Rasterization itself lives in
// external renderer implementations; this package only guarantees they get a
// complete job description.
package export

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"nuviacanvas/internal/domain"
)

// Format is the requested output container.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatPDF  Format = "pdf"
)

// Resolution is a named output size preset.
type Resolution string

const (
	ResolutionStandard Resolution = "standard" // canvas size as-is
	ResolutionHigh     Resolution = "high"     // 2x for retina sharing
	ResolutionPrint    Resolution = "print"    // approximates 300 DPI over the 72 DPI canvas
	ResolutionCustom   Resolution = "custom"
)

// Preset multipliers applied to the canvas point size.
const (
	scaleStandard = 1.0
	scaleHigh     = 2.0
	scalePrint    = 300.0 / 72.0
)

// Options describes one export job.
type Options struct {
	Format     Format
	Resolution Resolution
	// CustomWidth/CustomHeight are the pixel dimensions for ResolutionCustom;
	// ignored for the named presets.
	CustomWidth  int
	CustomHeight int
}

// Validate checks format and resolution values.
func (o Options) Validate() error {
	switch o.Format {
	case FormatPNG, FormatJPEG, FormatPDF:
	default:
		return fmt.Errorf("unknown export format %q", o.Format)
	}
	switch o.Resolution {
	case ResolutionStandard, ResolutionHigh, ResolutionPrint:
	case ResolutionCustom:
		if o.CustomWidth <= 0 || o.CustomHeight <= 0 {
			return fmt.Errorf("custom resolution requires positive dimensions, got %dx%d", o.CustomWidth, o.CustomHeight)
		}
	default:
		return fmt.Errorf("unknown resolution preset %q", o.Resolution)
	}
	return nil
}

// PixelSize resolves the output pixel dimensions for a given canvas size.
func (o Options) PixelSize(canvas domain.Size) (w, h int, err error) {
	if err := o.Validate(); err != nil {
		return 0, 0, err
	}
	switch o.Resolution {
	case ResolutionCustom:
		return o.CustomWidth, o.CustomHeight, nil
	case ResolutionHigh:
		return scaled(canvas, scaleHigh)
	case ResolutionPrint:
		return scaled(canvas, scalePrint)
	default:
		return scaled(canvas, scaleStandard)
	}
}

func scaled(canvas domain.Size, factor float64) (int, int, error) {
	if canvas.Width <= 0 || canvas.Height <= 0 {
		return 0, 0, fmt.Errorf("invalid canvas size %gx%g", canvas.Width, canvas.Height)
	}
	return int(math.Round(canvas.Width * factor)), int(math.Round(canvas.Height * factor)), nil
}

// OutputPath joins dir and base with the extension matching the format.
func OutputPath(dir, base string, f Format) string {
	ext := string(f)
	if f == FormatJPEG {
		ext = "jpg"
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+"."+ext)
}

// Renderer turns a document snapshot into binary output. Implementations
// live outside this module (rasterizers, PDF writers); the document handed
// over is a deep copy and safe to read from any goroutine.
type Renderer interface {
	Render(doc domain.Document, opts Options) ([]byte, error)
}

// ErrPremiumLocked reports that a document uses premium assets and the
// caller's entitlement check did not pass.
var ErrPremiumLocked = errors.New("design uses premium content")

// EnsureAllowed gates an export on the premium check. The entitlement itself
// is decided by the caller; this only connects it to the document contents.
func EnsureAllowed(doc domain.Document, entitled bool) error {
	if doc.HasPremiumContent() && !entitled {
		return ErrPremiumLocked
	}
	return nil
}
