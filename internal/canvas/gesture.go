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

import "nuviacanvas/internal/domain"

// A gesture session brackets a continuous interaction (drag, pinch, rotate)
// on one element. Deltas are always computed against the transform captured
// at gesture start, never against the live transform, so per-frame callbacks
// cannot accumulate drift. History sees the whole session as one entry,
// committed on EndGesture.

// GestureKind names the interaction driving a session.
type GestureKind string

const (
	GestureDrag     GestureKind = "drag"
	GestureScale    GestureKind = "scale"
	GestureRotate   GestureKind = "rotate"
	GestureCombined GestureKind = "combined"
)

type gestureSession struct {
	elementID string
	kind      GestureKind
	start     domain.Transform
	preDoc    domain.Document // deep copy taken at gesture start, committed on end
}

// BeginGesture captures the element's current transform as the session
// origin. Unknown ids are ignored. History is not touched.
func (e *Engine) BeginGesture(id string, kind GestureKind) {
	el, ok := e.doc.Find(id)
	if !ok {
		return
	}
	e.gesture = &gestureSession{
		elementID: id,
		kind:      kind,
		start:     el.Transform,
		preDoc:    e.doc.Clone(),
	}
}

// ApplyDrag moves the element by delta relative to the gesture origin.
func (e *Engine) ApplyDrag(id string, delta domain.Offset) {
	s := e.activeSession(id)
	if s == nil {
		return
	}
	e.UpdateTransform(id, s.start.Translated(delta.Dx, delta.Dy))
}

// ApplyScale multiplies the origin scale by factor, clamped.
func (e *Engine) ApplyScale(id string, factor float64) {
	s := e.activeSession(id)
	if s == nil {
		return
	}
	e.UpdateTransform(id, s.start.Scaled(factor))
}

// ApplyRotation rotates the element by delta radians from the gesture origin.
func (e *Engine) ApplyRotation(id string, delta float64) {
	s := e.activeSession(id)
	if s == nil {
		return
	}
	e.UpdateTransform(id, s.start.Rotated(delta))
}

// ApplyCombinedGesture applies translation, scale and rotation deltas in one
// step, all relative to the gesture origin.
func (e *Engine) ApplyCombinedGesture(id string, delta domain.Offset, factor, angle float64) {
	s := e.activeSession(id)
	if s == nil {
		return
	}
	e.UpdateTransform(id, s.start.Translated(delta.Dx, delta.Dy).Scaled(factor).Rotated(angle))
}

// EndGesture commits the session as exactly one history entry and closes it.
// The entry is pushed whenever a session was open, even if no delta was ever
// applied; a tap-and-release therefore records a no-op entry. Without an open
// session for the id this is a no-op. A session abandoned without EndGesture leaves its
// live changes applied but uncommitted.
func (e *Engine) EndGesture(id string) {
	if e.activeSession(id) == nil {
		return
	}
	e.hist.Push(e.gesture.preDoc)
	e.emit(Event{Kind: EventElementUpdated, ElementID: e.gesture.elementID})
	e.gesture = nil
}

// ActiveGesture returns the element id and kind of the open session, if any.
func (e *Engine) ActiveGesture() (id string, kind GestureKind, ok bool) {
	if e.gesture == nil {
		return "", "", false
	}
	return e.gesture.elementID, e.gesture.kind, true
}

func (e *Engine) activeSession(id string) *gestureSession {
	if e.gesture == nil || e.gesture.elementID != id {
		return nil
	}
	return e.gesture
}
