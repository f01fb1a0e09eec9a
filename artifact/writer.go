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

package artifact

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Fraunhofer-AISEC/wmiextract/acpi"
)

var log = logrus.WithField("service", "artifact")

const (
	BinSuffix = ".bin"

	defaultPerm = 0644
)

var ErrNameInvalid = errors.New("invalid output name")

// Writer writes the text and binary artifacts of decoded buffers into
// an output directory
type Writer struct {
	dir    string
	atomic bool
	perm   os.FileMode
}

type Options struct {
	// Dir is the output directory, defaults to the current working directory
	Dir string
	// Atomic writes both artifacts to temporary files first and only renames
	// them to their final names once both have been written
	Atomic bool
	// Perm of the created files, 0644 if not set
	Perm os.FileMode
}

func NewWriter(opts Options) (*Writer, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access output directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("output path %v is not a directory", dir)
	}
	perm := opts.Perm
	if perm == 0 {
		perm = defaultPerm
	}
	return &Writer{dir: dir, atomic: opts.Atomic, perm: perm}, nil
}

// Write resolves the output name of buf via the registry and writes the
// comma-separated tokens to <name> and the raw bytes to <name>.bin. On
// failure, neither of the two files is left behind.
func (w *Writer) Write(reg *Registry, buf *acpi.Buffer) (string, error) {
	name := reg.Resolve(buf.Name)

	// Identifiers may carry an ACPI path prefix such as \_SB.
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrNameInvalid, name)
	}

	log.Infof("Writing %v in %v and %v%v", buf.Name, name, name, BinSuffix)

	text := filepath.Join(w.dir, name)
	bin := filepath.Join(w.dir, name+BinSuffix)
	files := []struct {
		path string
		data []byte
	}{
		{text, []byte(strings.Join(buf.Tokens, ","))},
		{bin, buf.Data},
	}

	if !w.atomic {
		for i, f := range files {
			if err := w.writeFile(f.path, f.data); err != nil {
				for _, written := range files[:i] {
					os.Remove(written.path)
				}
				return "", err
			}
		}
		return name, nil
	}

	tmps := make([]string, 0, len(files))
	cleanup := func() {
		for _, tmp := range tmps {
			os.Remove(tmp)
		}
	}
	for _, f := range files {
		tmp, err := w.writeTemp(f.data)
		if err != nil {
			cleanup()
			return "", err
		}
		tmps = append(tmps, tmp)
	}

	for i, f := range files {
		if err := os.Rename(tmps[i], f.path); err != nil {
			for _, renamed := range files[:i] {
				os.Remove(renamed.path)
			}
			cleanup()
			return "", fmt.Errorf("failed to rename %v: %w", f.path, err)
		}
	}

	return name, nil
}

func (w *Writer) writeFile(path string, data []byte) error {
	log.Tracef("Writing %v (%v bytes)", path, len(data))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, w.perm)
	if err != nil {
		return fmt.Errorf("failed to create %v: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write %v: %w", path, err)
	}
	return f.Close()
}

func (w *Writer) writeTemp(data []byte) (string, error) {
	tmp, err := os.CreateTemp(w.dir, ".wmiextract-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer tmp.Close()

	log.Tracef("Writing %v (%v bytes)", tmp.Name(), len(data))

	if _, err := tmp.Write(data); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := tmp.Chmod(w.perm); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to close temporary file: %w", err)
	}
	return tmp.Name(), nil
}
