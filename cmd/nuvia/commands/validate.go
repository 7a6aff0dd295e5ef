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
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"nuviacanvas/internal/domain"
	"nuviacanvas/internal/storage"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <path>",
		Short: "Validate a design manifest against the document schema",
		Long:  "Validate accepts either a design project directory or a manifest JSON file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if fi, err := os.Stat(path); err == nil && fi.IsDir() {
				path = filepath.Join(path, storage.ManifestFileName)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			if err := storage.ValidateManifest(data); err != nil {
				return fmt.Errorf("schema validation failed: %w", err)
			}
			doc, err := domain.DecodeDocument(data)
			if err != nil {
				return err
			}
			fmt.Printf("%s: valid (%d elements)\n", path, len(doc.Elements))
			return nil
		},
	}
}
