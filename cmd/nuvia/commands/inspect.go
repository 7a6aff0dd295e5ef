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

	"github.com/spf13/cobra"

	"nuviacanvas/internal/domain"
	"nuviacanvas/internal/storage"
)

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <dir>",
		Short: "Summarize a design project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := storage.Open(args[0])
			if err != nil {
				return err
			}
			doc := h.Doc
			fmt.Printf("Design: %s\n", h.Root)
			fmt.Printf("Canvas: %.0fx%.0f\n", doc.CanvasSize.Width, doc.CanvasSize.Height)
			counts := map[domain.Kind]int{}
			for _, el := range doc.Elements {
				counts[el.Kind]++
			}
			fmt.Printf("Elements: %d", len(doc.Elements))
			for _, k := range []domain.Kind{domain.KindText, domain.KindImage, domain.KindShape, domain.KindSticker} {
				if counts[k] > 0 {
					fmt.Printf(" %s=%d", k, counts[k])
				}
			}
			fmt.Println()
			if doc.HasPremiumContent() {
				fmt.Println("Premium content: yes")
			}
			if len(doc.BackgroundImage) > 0 {
				if info, err := domain.ProbeImage(doc.BackgroundImage); err == nil {
					fmt.Printf("Background image: %s %dx%d\n", info.Format, info.Width, info.Height)
				} else {
					fmt.Printf("Background image: %d bytes (undecodable: %v)\n", len(doc.BackgroundImage), err)
				}
			}
			return nil
		},
	}
}
