// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile_defaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), false)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	expected := &Config{
		Deck: DeckConfig{
			TagPrefix: "eggrolls-JLPT10k-v3::",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Fatalf("LoadFile (-want, +got):\n%s", diff)
	}
}

func TestLoadFile_yaml(t *testing.T) {
	path := writeConfig(t, `
data_dirs:
  - /srv/decks
  - /home/me/decks
deck:
  tag_column: 40
  tag_prefix: "jlpt::"
log:
  level: debug
  format: json
`)

	cfg, err := LoadFile(path, true)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	expected := &Config{
		DataDirs: []string{"/srv/decks", "/home/me/decks"},
		Deck: DeckConfig{
			TagColumn: 40,
			TagPrefix: "jlpt::",
		},
		Log: LogConfig{
			Level:  "debug",
			Format: "json",
		},
	}
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Fatalf("LoadFile (-want, +got):\n%s", diff)
	}
}

func TestLoadFile_env(t *testing.T) {
	t.Setenv("TANGO_DATA_DIR", "/a:/b")
	t.Setenv("TANGO_LOG_LEVEL", "error")

	path := writeConfig(t, "log:\n  level: debug\n")
	cfg, err := LoadFile(path, true)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if diff := cmp.Diff([]string{"/a", "/b"}, cfg.DataDirs); diff != "" {
		t.Errorf("DataDirs (-want, +got):\n%s", diff)
	}
	if got, want := cfg.Log.Level, "error"; got != want {
		t.Errorf("Log.Level: got %q, want %q", got, want)
	}
}

func TestLoadFile_missingRequired(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), true)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("LoadFile: got %v, want %v", err, os.ErrNotExist)
	}
}

func TestLoadFile_invalid(t *testing.T) {
	path := writeConfig(t, "log:\n  level: loud\n  format: xml\n")
	if _, err := LoadFile(path, true); err == nil {
		t.Fatal("LoadFile: expected error")
	}
}

func TestLoad_envPath(t *testing.T) {
	path := writeConfig(t, "deck:\n  tag_prefix: \"x::\"\n")
	t.Setenv(EnvPath, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := cfg.Deck.TagPrefix, "x::"; got != want {
		t.Errorf("Deck.TagPrefix: got %q, want %q", got, want)
	}
}

func TestEnvDataDirs(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		expected []string
	}{
		{
			name:     "unset",
			env:      "",
			expected: nil,
		},
		{
			name:     "list",
			env:      "/srv/decks:/home/me/decks",
			expected: []string{"/srv/decks", "/home/me/decks"},
		},
		{
			name:     "empty entries",
			env:      ":/srv/decks:: ",
			expected: []string{"/srv/decks"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Setenv(EnvDataDir, test.env)
			if diff := cmp.Diff(test.expected, EnvDataDirs()); diff != "" {
				t.Errorf("EnvDataDirs (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestEnvDataDirs_matchesConfig(t *testing.T) {
	t.Setenv(EnvPath, "")
	t.Setenv(EnvDataDir, "/a:/b")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), false)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if diff := cmp.Diff(cfg.DataDirs, EnvDataDirs()); diff != "" {
		t.Errorf("EnvDataDirs differs from Config.DataDirs (-config, +env):\n%s", diff)
	}
}
