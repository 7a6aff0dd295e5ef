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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	applog "nuviacanvas/internal/log"
)

// Template packs bundle the JSON template files of a design project's
// templates directory into a single shareable .zip archive.

const packManifestName = "templatepack.manifest.txt"

// ExportPack zips the project's templates directory (<project>/templates)
// into destZipPath, adding a small manifest at the archive root. An empty or
// missing templates directory still yields an archive with only the manifest.
func ExportPack(projectRoot, destZipPath string) error {
	l := applog.WithOperation(applog.WithComponent("templatepack"), "export").With(slog.String("project", projectRoot))
	if strings.TrimSpace(projectRoot) == "" {
		return errors.New("projectRoot is required")
	}
	if strings.TrimSpace(destZipPath) == "" {
		return errors.New("destZipPath is required")
	}
	tplDir := filepath.Join(projectRoot, "templates")
	if err := os.MkdirAll(tplDir, 0o755); err != nil {
		return fmt.Errorf("ensure templates dir: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(destZipPath), 0o755); err != nil {
		return fmt.Errorf("ensure zip dir: %w", err)
	}
	_ = os.Remove(destZipPath)

	zf, err := os.Create(destZipPath)
	if err != nil {
		return fmt.Errorf("create zip: %w", err)
	}
	defer func() { _ = zf.Close() }()
	zw := zip.NewWriter(zf)
	defer func() { _ = zw.Close() }()

	manifest := fmt.Sprintf("Nuvia Template Pack\nCreated: %s\nProject: %s\n\nContents mirror the project's /templates directory.\n",
		time.Now().Format(time.RFC3339), projectRoot)
	w, err := zw.Create(packManifestName)
	if err != nil {
		return fmt.Errorf("add manifest: %w", err)
	}
	if _, err := w.Write([]byte(manifest)); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	added := 0
	err = filepath.Walk(tplDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(projectRoot, path)
		if err != nil {
			return err
		}
		fw, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		if _, err := io.Copy(fw, f); err != nil {
			return err
		}
		added++
		return nil
	})
	if err != nil {
		l.Error("zip build failed", slog.Any("err", err))
		return fmt.Errorf("build zip: %w", err)
	}
	l.Info("template pack exported", slog.Int("files", added), slog.String("zip", destZipPath))
	return nil
}

// InstallPack extracts a .zip pack into the project's templates directory.
// Existing files are skipped, never overwritten. Entries that are not
// template JSON files under templates/ are ignored, including the manifest.
// Returns the count of files installed.
func InstallPack(projectRoot, packZipPath string) (int, error) {
	l := applog.WithOperation(applog.WithComponent("templatepack"), "install").With(slog.String("project", projectRoot))
	if strings.TrimSpace(projectRoot) == "" {
		return 0, errors.New("projectRoot is required")
	}
	if strings.TrimSpace(packZipPath) == "" {
		return 0, errors.New("packZipPath is required")
	}
	tplDir := filepath.Join(projectRoot, "templates")
	if err := os.MkdirAll(tplDir, 0o755); err != nil {
		return 0, fmt.Errorf("ensure templates dir: %w", err)
	}

	zr, err := zip.OpenReader(packZipPath)
	if err != nil {
		return 0, fmt.Errorf("open pack: %w", err)
	}
	defer func() { _ = zr.Close() }()

	installed := 0
	for _, f := range zr.File {
		name := filepath.ToSlash(f.Name)
		if !strings.HasPrefix(name, "templates/") || strings.Contains(name, "..") {
			continue
		}
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		dest := filepath.Join(projectRoot, filepath.FromSlash(name))
		if _, err := os.Stat(dest); err == nil {
			continue // never overwrite
		}
		if err := extractPackFile(f, dest); err != nil {
			return installed, err
		}
		installed++
	}
	l.Info("template pack installed", slog.Int("files", installed))
	return installed, nil
}

// LoadFile parses one template JSON file.
func LoadFile(path string) (Template, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("read template: %w", err)
	}
	var t Template
	if err := json.Unmarshal(b, &t); err != nil {
		return Template{}, fmt.Errorf("parse template %s: %w", filepath.Base(path), err)
	}
	if strings.TrimSpace(t.Name) == "" {
		return Template{}, fmt.Errorf("template %s has no name", filepath.Base(path))
	}
	return t, nil
}

// SaveFile writes a template as indented JSON under the project's templates
// directory, deriving the file name from the template name.
func SaveFile(projectRoot string, t Template) (string, error) {
	if strings.TrimSpace(t.Name) == "" {
		return "", errors.New("template has no name")
	}
	tplDir := filepath.Join(projectRoot, "templates")
	if err := os.MkdirAll(tplDir, 0o755); err != nil {
		return "", fmt.Errorf("ensure templates dir: %w", err)
	}
	b, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal template: %w", err)
	}
	name := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(t.Name), " ", "-")) + ".json"
	path := filepath.Join(tplDir, name)
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write template: %w", err)
	}
	return path, nil
}

func extractPackFile(f *zip.File, dest string) (err error) {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := rc.Close(); err == nil {
			err = cerr
		}
	}()
	df, err := os.OpenFile(dest, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := df.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = io.Copy(df, rc)
	return err
}
