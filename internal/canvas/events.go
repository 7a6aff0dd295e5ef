/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package canvas

// Engine mutations are announced through a small observer store instead of a
// UI-framework binding, so feedback layers (haptics, toolbars) can react
// without the engine knowing about them.

// EventKind names a category of engine mutation.
type EventKind string

const (
	EventElementAdded     EventKind = "element_added"
	EventElementRemoved   EventKind = "element_removed"
	EventElementUpdated   EventKind = "element_updated"
	EventSelectionChanged EventKind = "selection_changed"
	EventBackgroundSet    EventKind = "background_set"
	EventDocumentReplaced EventKind = "document_replaced"
)

// Event describes one engine mutation after it has been applied.
// ElementID is empty for document-wide events.
type Event struct {
	Kind      EventKind
	ElementID string
}

// Subscribe registers fn to be called synchronously after each mutation, on
// the engine's owning goroutine. The returned function cancels the
// subscription.
func (e *Engine) Subscribe(fn func(Event)) (cancel func()) {
	id := e.nextSubID
	e.nextSubID++
	e.subs[id] = fn
	return func() { delete(e.subs, id) }
}

func (e *Engine) emit(ev Event) {
	for _, fn := range e.subs {
		fn(ev)
	}
}
