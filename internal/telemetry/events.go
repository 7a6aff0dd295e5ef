/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package telemetry

// Event names for the invitation canvas tooling. Props carry only counts and
// built-in identifiers, never user content.
const (
	eventDesignCreated   = "design_created"
	eventDesignAutosaved = "design_autosaved"
	eventExportPlanned   = "export_planned"
)

// DesignCreated records that a design was scaffolded from a built-in template.
func (c *Client) DesignCreated(template string, elements int) {
	c.Event(eventDesignCreated, map[string]any{
		"template": template,
		"elements": elements,
	})
}

// DesignAutosaved records that an autosave snapshot was written to the design index.
func (c *Client) DesignAutosaved(elements int) {
	c.Event(eventDesignAutosaved, map[string]any{"elements": elements})
}

// ExportPlanned records a resolved export job with its output dimensions.
func (c *Client) ExportPlanned(format string, width, height int) {
	c.Event(eventExportPlanned, map[string]any{
		"format": format,
		"width":  width,
		"height": height,
	})
}

// DesignCreated using the default client.
func DesignCreated(template string, elements int) {
	InitDefault()
	defaultClient.DesignCreated(template, elements)
}

// DesignAutosaved using the default client.
func DesignAutosaved(elements int) {
	InitDefault()
	defaultClient.DesignAutosaved(elements)
}

// ExportPlanned using the default client.
func ExportPlanned(format string, width, height int) {
	InitDefault()
	defaultClient.ExportPlanned(format, width, height)
}
