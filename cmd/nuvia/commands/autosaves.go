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
	"time"

	"github.com/spf13/cobra"

	"nuviacanvas/internal/storage"
	"nuviacanvas/internal/telemetry"
)

func autosavesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autosaves",
		Short: "Manage a design's autosave snapshots",
	}
	cmd.AddCommand(autosavesSaveCmd(), autosavesListCmd(), autosavesRestoreCmd())
	return cmd
}

func autosavesSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <dir>",
		Short: "Record an autosave snapshot of the design",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := storage.Open(args[0])
			if err != nil {
				return err
			}
			if err := storage.SaveAutosave(cmd.Context(), h, cfg.Editor.AutosaveKeep); err != nil {
				return err
			}
			telemetry.DesignAutosaved(len(h.Doc.Elements))
			fmt.Printf("Autosaved %s (%d elements, keeping at most %d)\n", h.Root, len(h.Doc.Elements), cfg.Editor.AutosaveKeep)
			return nil
		},
	}
}

func autosavesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <dir>",
		Short: "List recorded autosave snapshots, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := storage.Open(args[0])
			if err != nil {
				return err
			}
			stamps, err := storage.ListAutosaves(cmd.Context(), h, cfg.Editor.AutosaveKeep)
			if err != nil {
				return err
			}
			if len(stamps) == 0 {
				fmt.Println("No autosaves recorded.")
				return nil
			}
			for _, ts := range stamps {
				fmt.Println(ts.Local().Format(time.RFC3339))
			}
			return nil
		},
	}
}

func autosavesRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <dir>",
		Short: "Restore the design manifest from the newest autosave",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := storage.Open(args[0])
			if err != nil {
				return err
			}
			doc, ts, ok, err := storage.LatestAutosave(cmd.Context(), h)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no autosaves recorded for %s", h.Root)
			}
			h.Doc = doc
			if err := storage.Save(h); err != nil {
				return err
			}
			fmt.Printf("Restored %s from autosave taken at %s\n", h.Root, ts.Local().Format(time.RFC3339))
			return nil
		},
	}
}
