// Copyright (c) 2021 Fraunhofer AISEC
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
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("service", "internal")

// InputError is returned if the ACPI source cannot be read
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("failed to read input %v: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// ReadSource reads the complete ACPI source from the file at p or, if p
// is empty, from stdin
func ReadSource(p string, stdin io.Reader) (string, error) {
	if p == "" {
		log.Debug("Reading source from stdin")
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", &InputError{Path: "<stdin>", Err: err}
		}
		return string(data), nil
	}

	log.Debugf("Reading source from %v", p)
	data, err := os.ReadFile(p)
	if err != nil {
		return "", &InputError{Path: p, Err: err}
	}
	return string(data), nil
}

// Tries to retrieve a filepath from an absolute path, or path relative to
// the current working directory or the running binary
func GetFilePath(file string) (string, error) {
	if file == "" {
		return "", fmt.Errorf("empty filename passed")
	}

	log.Tracef("Get path of '%v'", file)

	// Search for the absolute path
	if path.IsAbs(file) && FileExists(file) {
		log.Tracef("Got: %v (absolute path)", file)
		return file, nil
	}

	// Search relative to the working directory
	rf, err := filepath.Abs(file)
	if err == nil && FileExists(rf) {
		log.Tracef("Got: %v (relative to working directory)", rf)
		return rf, nil
	}

	// Search relative to the running binary
	bin, err := GetBinaryPath()
	if err != nil {
		return "", err
	}
	f, err := filepath.Abs(filepath.Join(bin, file))
	if err == nil && FileExists(f) {
		log.Tracef("Got: %v (relative to binary)", f)
		return f, nil
	}

	return "", fmt.Errorf("failed to find file. Places searched: %v, %v", rf, f)
}

func FileExists(f string) bool {
	if _, err := os.Stat(f); err == nil {
		return true
	}
	return false
}

func GetBinaryPath() (string, error) {
	bin, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to get path of executable: %w", err)
	}
	d := filepath.Dir(bin)
	return d, nil
}
