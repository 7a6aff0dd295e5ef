/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package commands wires the nuvia CLI: design scaffolding, inspection,
// validation and template pack handling.
package commands

import (
	"github.com/spf13/cobra"

	"nuviacanvas/internal/config"
	applog "nuviacanvas/internal/log"
)

var (
	cfg config.AppConfig

	// entitlementToken unlocks premium-gated flows such as export.
	entitlementToken string
)

func Execute() error {
	root := &cobra.Command{
		Use:           "nuvia",
		Short:         "Nuvia invitation canvas tooling",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, entitlementToken, err = config.Load()
			if err != nil {
				cfg = config.Defaults()
				entitlementToken = ""
			}
			applog.Init(applog.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				File:   cfg.Logging.File,
			})
			return nil
		},
	}

	root.AddCommand(versionCmd(), newCmd(), inspectCmd(), validateCmd(), templatesCmd(), autosavesCmd(), exportCmd())
	return root.Execute()
}
