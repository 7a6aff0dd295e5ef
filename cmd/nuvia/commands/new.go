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
	"strings"

	"github.com/spf13/cobra"

	"nuviacanvas/internal/domain"
	"nuviacanvas/internal/storage"
	"nuviacanvas/internal/telemetry"
	"nuviacanvas/internal/template"
)

func newCmd() *cobra.Command {
	var tplName string
	var names string
	var date string

	cmd := &cobra.Command{
		Use:   "new <dir>",
		Short: "Scaffold a design project from a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tpl, ok := template.ByName(tplName)
			if !ok {
				return fmt.Errorf("unknown template %q (see 'nuvia templates')", tplName)
			}
			ctx := template.Context{Date: date}
			for _, n := range strings.Split(names, ",") {
				if n = strings.TrimSpace(n); n != "" {
					ctx.PartnerNames = append(ctx.PartnerNames, n)
				}
			}
			size := domain.Size{Width: cfg.Editor.CanvasWidth, Height: cfg.Editor.CanvasHeight}
			doc := tpl.Instantiate(ctx, size)
			h, err := storage.InitDesign(args[0], doc)
			if err != nil {
				return err
			}
			telemetry.DesignCreated(tpl.Name, len(h.Doc.Elements))
			fmt.Printf("Created design at %s (%d elements)\n", h.Root, len(h.Doc.Elements))
			return nil
		},
	}

	cmd.Flags().StringVarP(&tplName, "template", "t", "Classic Wedding", "built-in template name")
	cmd.Flags().StringVar(&names, "names", "", "partner names, comma separated")
	cmd.Flags().StringVar(&date, "date", "", "wedding date text")
	return cmd
}
