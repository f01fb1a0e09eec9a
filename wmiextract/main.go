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
	"os"

	"github.com/urfave/cli/v3"
)

func newCommand() *cli.Command {
	return &cli.Command{
		Name: "wmiextract",
		Usage: "Extracts named buffers such as the WMI _WDG GUID mapping and the WQxx binary MOF " +
			"data blocks from disassembled ACPI tables (e.g. DSDT.dsl) into <name> and <name>.bin",
		ArgsUsage: "[DSDT.dsl]",
		Flags:     globalFlags(),
		Action:    extract,
		Commands: []*cli.Command{
			newWdgCommand(),
		},
	}
}

func main() {
	err := newCommand().Run(context.Background(), os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
