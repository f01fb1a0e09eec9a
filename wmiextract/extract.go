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

package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/Fraunhofer-AISEC/wmiextract/acpi"
	"github.com/Fraunhofer-AISEC/wmiextract/artifact"
	"github.com/Fraunhofer-AISEC/wmiextract/internal"
)

func extract(ctx context.Context, cmd *cli.Command) error {
	c, err := getConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to get config: %w", err)
	}

	if cmd.Args().Len() > 1 {
		return fmt.Errorf("expected at most one input file, got %v", cmd.Args().Len())
	}

	src, err := internal.ReadSource(cmd.Args().First(), cmd.Root().Reader)
	if err != nil {
		return err
	}

	matchers, err := acpi.NewMatchers(c.Names, c.Literal)
	if err != nil {
		return fmt.Errorf("failed to parse buffer names: %w", err)
	}

	w, err := artifact.NewWriter(artifact.Options{Dir: c.OutDir, Atomic: c.Atomic})
	if err != nil {
		return fmt.Errorf("failed to create writer: %w", err)
	}

	n, err := extractBuffers(src, matchers, w, artifact.NewRegistry())
	if err != nil {
		return err
	}

	log.Debugf("Extracted %v buffers", n)

	return nil
}

// extractBuffers writes all buffers matching one of the matchers, ordered
// by matcher first and by source position second. Extraction stops at the
// first buffer that cannot be decoded or written.
func extractBuffers(src string, matchers []acpi.Matcher, w *artifact.Writer, reg *artifact.Registry) (int, error) {
	n := 0
	for _, m := range matchers {
		found := 0
		for rec := range acpi.Locate(src, m) {
			buf, err := acpi.Decode(rec)
			if err != nil {
				return n, fmt.Errorf("failed to decode buffer: %w", err)
			}
			if _, err := w.Write(reg, buf); err != nil {
				return n, fmt.Errorf("failed to write buffer %v: %w", rec.Name, err)
			}
			found++
		}
		if found == 0 {
			log.Debugf("No buffers matching %v found", m)
		}
		n += found
	}
	return n, nil
}
