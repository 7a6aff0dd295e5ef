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

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

func TestDomainEventHelpers(t *testing.T) {
	var mu sync.Mutex
	var got []map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		var m map[string]any
		_ = json.Unmarshal(b, &m)
		mu.Lock()
		got = append(got, m)
		mu.Unlock()
	}))
	defer srv.Close()

	c := New(Config{OptIn: true, EventsURL: srv.URL, Timeout: time.Second})
	defer c.Close()

	c.DesignCreated("Minimal", 3)
	c.DesignAutosaved(4)
	c.ExportPlanned("png", 750, 1100)
	c.Flush(context.Background())

	deadline := time.Now().Add(2 * time.Second)
	for {
		mu.Lock()
		n := len(got)
		mu.Unlock()
		if n >= 3 || time.Now().After(deadline) {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 3 {
		t.Fatalf("expected 3 delivered events, got %d", len(got))
	}
	names := make(map[string]map[string]any, len(got))
	for _, ev := range got {
		name, _ := ev["name"].(string)
		names[name] = ev
	}
	created, ok := names["design_created"]
	if !ok || created["template"] != "Minimal" || created["elements"] != float64(3) {
		t.Fatalf("design_created event malformed: %v", created)
	}
	saved, ok := names["design_autosaved"]
	if !ok || saved["elements"] != float64(4) {
		t.Fatalf("design_autosaved event malformed: %v", saved)
	}
	planned, ok := names["export_planned"]
	if !ok || planned["format"] != "png" || planned["width"] != float64(750) || planned["height"] != float64(1100) {
		t.Fatalf("export_planned event malformed: %v", planned)
	}
	for name, ev := range names {
		if ev["app"] != "nuvia-canvas" {
			t.Fatalf("%s missing app identifier: %v", name, ev)
		}
	}
}
