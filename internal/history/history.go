/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package history provides linear undo/redo over full document snapshots.
package history

import (
	"sync"

	"nuviacanvas/internal/domain"
)

// DefaultMaxDepth bounds the undo stack. When exceeded, the oldest entry is
// evicted first (ring-buffer semantics, not truncation of the newest).
const DefaultMaxDepth = 50

// Config controls the undo depth cap.
type Config struct {
	// MaxDepth limits the number of undo snapshots kept (0 picks the default).
	MaxDepth int
}

// Manager keeps two bounded stacks of document snapshots. Every snapshot is a
// deep copy taken on push and handed back as a deep copy on pop, so entries
// are never aliased with the live document. It is safe for concurrent use.
type Manager struct {
	cfg  Config
	mu   sync.Mutex
	undo []domain.Document
	redo []domain.Document
}

func NewManager(cfg Config) *Manager {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	return &Manager{cfg: cfg}
}

// Push records the pre-mutation document on the undo stack and clears redo:
// any new edit after an undo abandons the redone-away future.
func (m *Manager) Push(d domain.Document) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.undo = append(m.undo, d.Clone())
	if len(m.undo) > m.cfg.MaxDepth {
		over := len(m.undo) - m.cfg.MaxDepth
		m.undo = append([]domain.Document{}, m.undo[over:]...)
	}
	m.redo = nil
}

// Undo pops the most recent snapshot, pushing the given live document onto
// the redo stack. Returns false when there is nothing to undo.
func (m *Manager) Undo(live domain.Document) (domain.Document, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.undo) == 0 {
		return domain.Document{}, false
	}
	s := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	m.redo = append(m.redo, live.Clone())
	return s.Clone(), true
}

// Redo pops the most recent redo snapshot, pushing the given live document
// back onto the undo stack. Returns false when there is nothing to redo.
func (m *Manager) Redo(live domain.Document) (domain.Document, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.redo) == 0 {
		return domain.Document{}, false
	}
	s := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	m.undo = append(m.undo, live.Clone())
	return s.Clone(), true
}

// CanUndo reports whether the undo stack is non-empty.
func (m *Manager) CanUndo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.undo) > 0
}

// CanRedo reports whether the redo stack is non-empty.
func (m *Manager) CanRedo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.redo) > 0
}

// Clear drops both stacks, e.g. when a new design is opened.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.undo = nil
	m.redo = nil
}

// Depths returns current stack sizes for diagnostics.
func (m *Manager) Depths() (undo, redo int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.undo), len(m.redo)
}
