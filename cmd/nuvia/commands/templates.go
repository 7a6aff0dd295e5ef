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

	"nuviacanvas/internal/template"
)

func templatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List built-in templates and manage template packs",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range template.Builtin() {
				mark := ""
				if t.IsPremium {
					mark = " (premium)"
				}
				fmt.Printf("%s%s: %d elements\n", t.Name, mark, len(t.Elements))
			}
			return nil
		},
	}
	cmd.AddCommand(templatesExportCmd(), templatesInstallCmd())
	return cmd
}

func templatesExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <project-dir> <pack.zip>",
		Short: "Export a project's templates directory as a shareable pack",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := template.ExportPack(args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", args[1])
			return nil
		},
	}
}

func templatesInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install <project-dir> <pack.zip>",
		Short: "Install templates from a pack into a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := template.InstallPack(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Installed %d template(s)\n", n)
			return nil
		},
	}
}
