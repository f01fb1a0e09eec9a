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

// Package wmi parses the _WDG buffer of ACPI-WMI devices, which maps GUIDs
// to the methods, data blocks and events a WMI device provides.
package wmi

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("service", "wmi")

const (
	FlagExpensive = 0x1 // Data collection must be enabled and disabled explicitly
	FlagMethod    = 0x2
	FlagString    = 0x4 // Method takes and returns a string
	FlagEvent     = 0x8
)

// BlockSize is the size of a single GUID block within _WDG
const BlockSize = 20

var flagNames = []struct {
	flag uint8
	name string
}{
	{FlagExpensive, "ACPI_WMI_EXPENSIVE"},
	{FlagMethod, "ACPI_WMI_METHOD"},
	{FlagString, "ACPI_WMI_STRING"},
	{FlagEvent, "ACPI_WMI_EVENT"},
}

// GuidBlock is a single decoded _WDG entry
type GuidBlock struct {
	Guid          string   `json:"guid"`
	ObjectId      string   `json:"objectId"`
	NotifyId      uint8    `json:"notifyId"`
	Reserved      uint8    `json:"reserved"`
	InstanceCount uint8    `json:"instanceCount"`
	Flags         uint8    `json:"flags"`
	FlagNames     []string `json:"flagNames,omitempty"`
}

// FlagNames returns the names of all known flags set in flags
func FlagNames(flags uint8) []string {
	var names []string
	for _, f := range flagNames {
		if flags&f.flag != 0 {
			names = append(names, f.name)
		}
	}
	return names
}

// ParseWdg parses the raw _WDG buffer into GUID blocks. Trailing bytes
// not filling a complete block are ignored.
func ParseWdg(data []byte) ([]GuidBlock, error) {
	total := len(data) / BlockSize
	if rem := len(data) % BlockSize; rem != 0 {
		log.Warnf("Ignoring %v trailing bytes of _WDG buffer", rem)
	}

	blocks := make([]GuidBlock, 0, total)
	for i := 0; i < total; i++ {
		b := data[i*BlockSize : (i+1)*BlockSize]
		guid, err := ParseGuid(b[:16])
		if err != nil {
			return nil, fmt.Errorf("failed to read GUID block %v: %w", i, err)
		}
		// Bytes 16 and 17 hold the object ID, or for events the notify ID
		// and a reserved byte
		blocks = append(blocks, GuidBlock{
			Guid:          guid.String(),
			ObjectId:      string(b[16:18]),
			NotifyId:      b[16],
			Reserved:      b[17],
			InstanceCount: b[18],
			Flags:         b[19],
			FlagNames:     FlagNames(b[19]),
		})
	}

	log.Debugf("Parsed %v GUID blocks", len(blocks))

	return blocks, nil
}

// WriteText prints the GUID blocks in the traditional wmidump layout
func WriteText(w io.Writer, blocks []GuidBlock) error {
	for _, b := range blocks {
		flags := "0"
		if b.Flags != 0 {
			flags = fmt.Sprintf("%#x %v ", b.Flags, strings.Join(b.FlagNames, " "))
		}
		_, err := fmt.Fprintf(w,
			"%v:\n\tobject_id: %v\n\tnotify_id: %02X\n\treserved: %02X\n\tinstance_count: %d\n\tflags: %v\n",
			b.Guid, b.ObjectId, b.NotifyId, b.Reserved, b.InstanceCount, flags)
		if err != nil {
			return fmt.Errorf("failed to write GUID block: %w", err)
		}
	}
	return nil
}
