/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// memKeyring stubs the OS keyring for tests.
type memKeyring struct {
	store map[string]string
}

func (m *memKeyring) key(service, k string) string { return service + "/" + k }
func (m *memKeyring) Get(service, k string) (string, error) {
	v, ok := m.store[m.key(service, k)]
	if !ok {
		return "", errors.New("not found")
	}
	return v, nil
}
func (m *memKeyring) Set(service, k, v string) error {
	m.store[m.key(service, k)] = v
	return nil
}
func (m *memKeyring) Delete(service, k string) error {
	delete(m.store, m.key(service, k))
	return nil
}

func withTestEnv(t *testing.T) *memKeyring {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, v := range []string{EnvTelemetryOptIn, EnvHistoryDepth, EnvLogLevel, EnvLogFormat, EnvLogFile} {
		t.Setenv(v, "")
		_ = os.Unsetenv(v)
	}
	mk := &memKeyring{store: map[string]string{}}
	prev := tokenStore
	tokenStore = mk
	t.Cleanup(func() { tokenStore = prev })
	return mk
}

func TestDefaultsWhenNoFile(t *testing.T) {
	withTestEnv(t)
	cfg, tok, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tok != "" {
		t.Fatalf("no token expected, got %q", tok)
	}
	want := Defaults()
	if cfg != want {
		t.Fatalf("defaults not applied:\n got %+v\nwant %+v", cfg, want)
	}
	if cfg.Editor.HistoryDepth != 50 || cfg.Editor.CanvasWidth != 375 || cfg.Editor.CanvasHeight != 550 {
		t.Fatalf("editor defaults wrong: %+v", cfg.Editor)
	}
}

func TestSaveLoadRoundTripWithToken(t *testing.T) {
	mk := withTestEnv(t)

	cfg := Defaults()
	cfg.General.Theme = "dark"
	cfg.General.TelemetryOptIn = true
	cfg.Editor.HistoryDepth = 25
	cfg.Logging.Level = "debug"

	if err := Save(cfg, "tok-123"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if len(mk.store) != 1 {
		t.Fatalf("token not stored in keyring")
	}

	got, tok, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tok != "tok-123" {
		t.Fatalf("token lost: %q", tok)
	}
	if got.General.Theme != "dark" || !got.General.TelemetryOptIn || got.Editor.HistoryDepth != 25 || got.Logging.Level != "debug" {
		t.Fatalf("round trip lost fields: %+v", got)
	}
	// unset fields fall back to defaults
	if got.Editor.CanvasWidth != 375 {
		t.Fatalf("merge dropped a default: %+v", got.Editor)
	}

	if err := ClearToken(); err != nil {
		t.Fatalf("clear token: %v", err)
	}
	if _, tok, _ := Load(); tok != "" {
		t.Fatalf("token survived ClearToken: %q", tok)
	}
}

func TestPartialFileMergesOverDefaults(t *testing.T) {
	withTestEnv(t)
	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	partial := "editor:\n  history_depth: 10\nlogging:\n  level: WARN\n"
	if err := os.WriteFile(path, []byte(partial), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, _, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Editor.HistoryDepth != 10 {
		t.Fatalf("file override lost: %d", cfg.Editor.HistoryDepth)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("level should be lowercased: %q", cfg.Logging.Level)
	}
	if cfg.Editor.AutosaveKeep != 20 || cfg.General.Theme != "system" {
		t.Fatalf("unset fields lost their defaults: %+v", cfg)
	}
}

func TestEnvOverridesWinOverFile(t *testing.T) {
	withTestEnv(t)
	t.Setenv(EnvHistoryDepth, "7")
	t.Setenv(EnvLogLevel, "ERROR")
	t.Setenv(EnvTelemetryOptIn, "yes")

	cfg, _, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Editor.HistoryDepth != 7 {
		t.Fatalf("env depth override lost: %d", cfg.Editor.HistoryDepth)
	}
	if cfg.Logging.Level != "error" {
		t.Fatalf("env level override lost: %q", cfg.Logging.Level)
	}
	if !cfg.General.TelemetryOptIn {
		t.Fatalf("truthy telemetry override lost")
	}

	t.Setenv(EnvHistoryDepth, "not-a-number")
	cfg, _, _ = Load()
	if cfg.Editor.HistoryDepth != 50 {
		t.Fatalf("garbage env value should be ignored: %d", cfg.Editor.HistoryDepth)
	}
}

func TestIsTruthy(t *testing.T) {
	for _, v := range []string{"1", "true", "TRUE", "on", "yes"} {
		if !isTruthy(v) {
			t.Fatalf("%q should be truthy", v)
		}
	}
	for _, v := range []string{"0", "false", "off", "no", ""} {
		if isTruthy(v) {
			t.Fatalf("%q should be falsy", v)
		}
	}
}
