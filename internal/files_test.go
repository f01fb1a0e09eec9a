// Copyright (c) 2026 Fraunhofer AISEC
// Fraunhofer-Gesellschaft zur Foerderung der angewandten Forschung e.V.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package internal

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadSource(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "dsdt.dsl")
	if err := os.WriteFile(file, []byte("from file"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"File", file, "from file", false},
		{"Stdin", "", "from stdin", false},
		{"Missing File", filepath.Join(dir, "missing.dsl"), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadSource(tt.path, strings.NewReader("from stdin"))
			if (err != nil) != tt.wantErr {
				t.Errorf("ReadSource() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				var ie *InputError
				if !errors.As(err, &ie) {
					t.Errorf("ReadSource() error = %v, want InputError", err)
				}
				if !errors.Is(err, os.ErrNotExist) {
					t.Errorf("ReadSource() error = %v, want wrapped %v", err, os.ErrNotExist)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ReadSource() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetFilePath(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(file, []byte("{}"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	got, err := GetFilePath(file)
	if err != nil {
		t.Fatalf("GetFilePath() error = %v", err)
	}
	if got != file {
		t.Errorf("GetFilePath() = %v, want %v", got, file)
	}

	if _, err := GetFilePath(file + ".missing"); err == nil {
		t.Errorf("GetFilePath() expected error for missing file")
	}
	if _, err := GetFilePath(""); err == nil {
		t.Errorf("GetFilePath() expected error for empty name")
	}
}
