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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"nuviacanvas/internal/domain"
)

func testDoc() domain.Document {
	d := domain.NewDocument(domain.DefaultCanvasSize)
	d.Elements = append(d.Elements,
		domain.NewText("Save the Date", domain.Black, domain.TextStyle{FontSize: 24}),
		domain.NewShape(domain.ShapeHeart, &domain.Color{R: 164, G: 68, B: 83, A: 255}, nil, 0),
	)
	return d
}

func TestInitDesignScaffoldsAndPersists(t *testing.T) {
	root := filepath.Join(t.TempDir(), "our-wedding")
	h, err := InitDesign(root, testDoc())
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	for _, d := range []string{"assets", "exports", "templates", "backups"} {
		if fi, err := os.Stat(filepath.Join(root, d)); err != nil || !fi.IsDir() {
			t.Fatalf("missing scaffold dir %s: %v", d, err)
		}
	}
	if _, err := os.Stat(h.ManifestPath); err != nil {
		t.Fatalf("manifest not written: %v", err)
	}

	got, err := Open(root)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !h.Doc.Equal(got.Doc) {
		t.Fatalf("reopened document differs")
	}
}

func TestSaveKeepsTimestampedBackup(t *testing.T) {
	root := filepath.Join(t.TempDir(), "d")
	h, err := InitDesign(root, testDoc())
	if err != nil {
		t.Fatalf("init: %v", err)
	}

	h.Doc.Elements = append(h.Doc.Elements, domain.NewSticker("ring", false))
	if err := Save(h); err != nil {
		t.Fatalf("save: %v", err)
	}

	ents, err := os.ReadDir(filepath.Join(root, BackupsDirName))
	if err != nil {
		t.Fatalf("read backups: %v", err)
	}
	if len(ents) == 0 {
		t.Fatalf("second save should leave a backup of the first manifest")
	}

	got, err := Open(root)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if len(got.Doc.Elements) != 3 {
		t.Fatalf("manifest should hold the latest save, got %d elements", len(got.Doc.Elements))
	}
}

func TestOpenFallsBackToBackupOnCorruptManifest(t *testing.T) {
	root := filepath.Join(t.TempDir(), "d")
	h, err := InitDesign(root, testDoc())
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := Save(h); err != nil { // creates a backup of the good manifest
		t.Fatalf("save: %v", err)
	}
	if err := os.WriteFile(h.ManifestPath, []byte("{corrupt"), 0o644); err != nil {
		t.Fatalf("corrupt manifest: %v", err)
	}

	got, err := Open(root)
	if err != nil {
		t.Fatalf("open with backup should succeed: %v", err)
	}
	if !got.Doc.Equal(h.Doc) {
		t.Fatalf("backup fallback restored the wrong document")
	}
}

func TestOpenWithoutManifestOrBackupFails(t *testing.T) {
	if _, err := Open(t.TempDir()); err == nil {
		t.Fatalf("open of an empty dir should fail")
	}
}

func TestValidateManifestRejectsWrongShape(t *testing.T) {
	// structurally valid JSON that is not a design document
	err := ValidateManifest([]byte(`{"foo": 1}`))
	if !errors.Is(err, domain.ErrDocumentDecode) {
		t.Fatalf("schema failure should wrap ErrDocumentDecode, got %v", err)
	}

	good, mErr := domain.EncodeDocument(testDoc())
	if mErr != nil {
		t.Fatalf("encode: %v", mErr)
	}
	if err := ValidateManifest(good); err != nil {
		t.Fatalf("valid manifest rejected: %v", err)
	}
}

func TestSaveAs(t *testing.T) {
	h, err := InitDesign(filepath.Join(t.TempDir(), "a"), testDoc())
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	newRoot := filepath.Join(t.TempDir(), "b")
	if err := SaveAs(h, newRoot); err != nil {
		t.Fatalf("save as: %v", err)
	}
	if h.Root != newRoot {
		t.Fatalf("handle not rebased: %s", h.Root)
	}
	if _, err := Open(newRoot); err != nil {
		t.Fatalf("new root unreadable: %v", err)
	}
}

func TestAutosaveCrashSnapshot(t *testing.T) {
	h, err := InitDesign(filepath.Join(t.TempDir(), "d"), testDoc())
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	path, err := AutosaveCrashSnapshot(h)
	if err != nil {
		t.Fatalf("crash snapshot: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	doc, err := domain.DecodeDocument(b)
	if err != nil {
		t.Fatalf("snapshot not decodable: %v", err)
	}
	if !doc.Equal(h.Doc) {
		t.Fatalf("snapshot differs from live document")
	}
}
