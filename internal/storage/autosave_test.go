/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"nuviacanvas/internal/domain"
)

func TestIndexInitCreatesDatabase(t *testing.T) {
	root := t.TempDir()
	db, err := InitOrOpenIndex(root)
	if err != nil {
		t.Fatalf("init index: %v", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := os.Stat(IndexPath(root)); err != nil {
		t.Fatalf("index file missing: %v", err)
	}
	var schema int
	if err := db.QueryRow(`SELECT schema FROM version WHERE id=1`).Scan(&schema); err != nil {
		t.Fatalf("version row: %v", err)
	}
	if schema != 1 {
		t.Fatalf("unexpected schema version %d", schema)
	}
}

func TestAutosaveRoundTripAndPrune(t *testing.T) {
	ctx := context.Background()
	h, err := InitDesign(filepath.Join(t.TempDir(), "d"), testDoc())
	if err != nil {
		t.Fatalf("init design: %v", err)
	}

	if _, _, ok, err := LatestAutosave(ctx, h); err != nil || ok {
		t.Fatalf("empty index should report no autosave: ok=%v err=%v", ok, err)
	}

	for i := 0; i < 5; i++ {
		h.Doc.Elements = append(h.Doc.Elements,
			domain.NewText(fmt.Sprintf("line %d", i), domain.Black, domain.TextStyle{}))
		if err := SaveAutosave(ctx, h, 3); err != nil {
			t.Fatalf("autosave %d: %v", i, err)
		}
	}

	doc, ts, ok, err := LatestAutosave(ctx, h)
	if err != nil || !ok {
		t.Fatalf("latest autosave: ok=%v err=%v", ok, err)
	}
	if ts.IsZero() {
		t.Fatalf("autosave timestamp missing")
	}
	if !doc.Equal(h.Doc) {
		t.Fatalf("latest autosave should match the live document")
	}

	stamps, err := ListAutosaves(ctx, h, 10)
	if err != nil {
		t.Fatalf("list autosaves: %v", err)
	}
	if len(stamps) != 3 {
		t.Fatalf("prune should keep 3 rows, got %d", len(stamps))
	}
	for i := 1; i < len(stamps); i++ {
		if stamps[i].After(stamps[i-1]) {
			t.Fatalf("timestamps should be newest first: %v", stamps)
		}
	}
}
