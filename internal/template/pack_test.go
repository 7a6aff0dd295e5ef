/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package template

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadFileRoundTrip(t *testing.T) {
	root := t.TempDir()
	tpl := Minimal()

	path, err := SaveFile(root, tpl)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if filepath.Base(path) != "minimal.json" {
		t.Fatalf("derived file name wrong: %s", path)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Name != tpl.Name || len(got.Elements) != len(tpl.Elements) {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestLoadFileRejectsNameless(t *testing.T) {
	root := t.TempDir()
	p := filepath.Join(root, "anon.json")
	if err := os.WriteFile(p, []byte(`{"elements":[]}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFile(p); err == nil {
		t.Fatalf("nameless template accepted")
	}
}

func TestExportAndInstallPack(t *testing.T) {
	src := t.TempDir()
	if _, err := SaveFile(src, Minimal()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := SaveFile(src, GoldenFrame()); err != nil {
		t.Fatalf("save: %v", err)
	}

	pack := filepath.Join(t.TempDir(), "pack.zip")
	if err := ExportPack(src, pack); err != nil {
		t.Fatalf("export: %v", err)
	}

	// the archive carries the manifest plus both templates
	zr, err := zip.OpenReader(pack)
	if err != nil {
		t.Fatalf("open zip: %v", err)
	}
	names := map[string]bool{}
	for _, f := range zr.File {
		names[f.Name] = true
	}
	_ = zr.Close()
	if !names["templatepack.manifest.txt"] || !names["templates/minimal.json"] || !names["templates/golden-frame.json"] {
		t.Fatalf("archive contents wrong: %v", names)
	}

	dst := t.TempDir()
	n, err := InstallPack(dst, pack)
	if err != nil {
		t.Fatalf("install: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 installed files, got %d", n)
	}
	if _, err := LoadFile(filepath.Join(dst, "templates", "minimal.json")); err != nil {
		t.Fatalf("installed template unreadable: %v", err)
	}

	// a second install with the same pack skips everything
	n, err = InstallPack(dst, pack)
	if err != nil {
		t.Fatalf("reinstall: %v", err)
	}
	if n != 0 {
		t.Fatalf("reinstall should skip existing files, got %d", n)
	}
}

func TestInstallPackIgnoresForeignEntries(t *testing.T) {
	dir := t.TempDir()
	pack := filepath.Join(dir, "evil.zip")
	zf, err := os.Create(pack)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	zw := zip.NewWriter(zf)
	for _, name := range []string{
		"templates/../escape.json",
		"templates/readme.txt",
		"outside.json",
	} {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip create: %v", err)
		}
		if _, err := w.Write([]byte(`{"name":"x","elements":[]}`)); err != nil {
			t.Fatalf("zip write: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip writer: %v", err)
	}
	if err := zf.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	dst := t.TempDir()
	n, err := InstallPack(dst, pack)
	if err != nil {
		t.Fatalf("install: %v", err)
	}
	if n != 0 {
		t.Fatalf("no entry should have been installed, got %d", n)
	}
	if _, err := os.Stat(filepath.Join(dst, "escape.json")); !os.IsNotExist(err) {
		t.Fatalf("path traversal escaped the templates dir")
	}
}
