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
	"image"

	// Decoders for the formats users drop onto the canvas.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageDims describes the pixel geometry of encoded image bytes.
type ImageDims struct {
	Width  int
	Height int
	Format string // png, jpeg, gif, bmp, tiff, webp
}

// ProbeImage reports the dimensions and container format of encoded image
// bytes without decoding the full pixel data.
func ProbeImage(data []byte) (ImageDims, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return ImageDims{}, fmt.Errorf("probe image: %w", err)
	}
	return ImageDims{Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}
