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
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/exp/maps"

	"github.com/Fraunhofer-AISEC/wmiextract/acpi"
	"github.com/Fraunhofer-AISEC/wmiextract/internal"
	"github.com/Fraunhofer-AISEC/wmiextract/wmi"
)

const (
	formatFlag = "format"
	asciiFlag  = "ascii"

	textFormat = "text"
)

var serializers = map[string]wmi.Serializer{
	"json": wmi.JsonSerializer{},
	"cbor": wmi.CborSerializer{},
}

func newWdgCommand() *cli.Command {
	return &cli.Command{
		Name:      "wdg",
		Usage:     "parse an extracted _WDG buffer into its WMI GUID blocks",
		ArgsUsage: "[_WDG.bin]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name: formatFlag,
				Usage: fmt.Sprintf("output format. Possible: %v,%v",
					textFormat, strings.Join(maps.Keys(serializers), ",")),
				Value: textFormat,
			},
			&cli.BoolFlag{
				Name:  asciiFlag,
				Usage: "input is a comma-separated hex token listing instead of raw bytes",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			err := parseWdg(cmd)
			if err != nil {
				return fmt.Errorf("failed to parse _WDG: %w", err)
			}
			return nil
		},
	}
}

func parseWdg(cmd *cli.Command) error {
	setLogLevel(cmd.String(logLevelFlag))

	if cmd.Args().Len() > 1 {
		return fmt.Errorf("expected at most one input file, got %v", cmd.Args().Len())
	}

	format := strings.ToLower(cmd.String(formatFlag))
	s, ok := serializers[format]
	if !ok && format != textFormat {
		return fmt.Errorf("unknown output format %q", cmd.String(formatFlag))
	}

	in, err := internal.ReadSource(cmd.Args().First(), cmd.Root().Reader)
	if err != nil {
		return err
	}

	data := []byte(in)
	if cmd.Bool(asciiFlag) {
		tokens := acpi.Tokenize(acpi.StripComments(in))
		data, err = acpi.ParseTokens("_WDG", tokens)
		if err != nil {
			return err
		}
	}

	blocks, err := wmi.ParseWdg(data)
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	if format == textFormat {
		return wmi.WriteText(out, blocks)
	}

	raw, err := s.Marshal(blocks)
	if err != nil {
		return fmt.Errorf("failed to marshal GUID blocks: %w", err)
	}
	if _, err := out.Write(raw); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
