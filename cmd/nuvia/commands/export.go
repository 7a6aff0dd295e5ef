/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"nuviacanvas/internal/export"
	"nuviacanvas/internal/storage"
	"nuviacanvas/internal/telemetry"
)

func exportCmd() *cobra.Command {
	var format string
	var resolution string
	var width, height int
	var outDir string

	cmd := &cobra.Command{
		Use:   "export <dir>",
		Short: "Resolve an export job for a design",
		Long: "Export validates the requested format and resolution preset, applies the premium\n" +
			"content gate and prints the resolved render job. Rasterization itself is handed\n" +
			"off to an external renderer.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := storage.Open(args[0])
			if err != nil {
				return err
			}
			opts := export.Options{
				Format:       export.Format(format),
				Resolution:   export.Resolution(resolution),
				CustomWidth:  width,
				CustomHeight: height,
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			if err := export.EnsureAllowed(h.Doc, entitlementToken != ""); err != nil {
				return err
			}
			w, ht, err := opts.PixelSize(h.Doc.CanvasSize)
			if err != nil {
				return err
			}
			out := export.OutputPath(filepath.Join(h.Root, outDir), filepath.Base(h.Root), opts.Format)
			telemetry.ExportPlanned(string(opts.Format), w, ht)
			fmt.Printf("Export job: %s %dx%d -> %s\n", opts.Format, w, ht, out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "png", "output format: png|jpeg|pdf")
	cmd.Flags().StringVarP(&resolution, "resolution", "r", "standard", "resolution preset: standard|high|print|custom")
	cmd.Flags().IntVar(&width, "width", 0, "pixel width for the custom preset")
	cmd.Flags().IntVar(&height, "height", 0, "pixel height for the custom preset")
	cmd.Flags().StringVarP(&outDir, "out", "o", storage.ExportsDirName, "output directory, relative to the design root")
	return cmd
}
