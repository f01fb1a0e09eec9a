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

package wmi

import (
	"bytes"
	"reflect"
	"testing"
)

var (
	// ASUS WMI method block "BC" followed by an event block with notify ID 0xD2
	wdg = []byte{
		0xD0, 0x5E, 0x84, 0x97, 0x6D, 0x4E, 0xDE, 0x11,
		0x8A, 0x39, 0x08, 0x00, 0x20, 0x0C, 0x9A, 0x66,
		0x42, 0x43, 0x01, 0x02,
		0x72, 0x0F, 0xBC, 0xAB, 0xA1, 0x8E, 0xD1, 0x11,
		0x00, 0xA0, 0xC9, 0x06, 0x29, 0x10, 0x00, 0x00,
		0xD2, 0x00, 0x01, 0x08,
	}

	wdgBlocks = []GuidBlock{
		{
			Guid:          "97845ED0-4E6D-11DE-8A39-0800200C9A66",
			ObjectId:      "BC",
			NotifyId:      0x42,
			Reserved:      0x43,
			InstanceCount: 1,
			Flags:         FlagMethod,
			FlagNames:     []string{"ACPI_WMI_METHOD"},
		},
		{
			Guid:          "ABBC0F72-8EA1-11D1-00A0-C90629100000",
			ObjectId:      "\xd2\x00",
			NotifyId:      0xD2,
			Reserved:      0x00,
			InstanceCount: 1,
			Flags:         FlagEvent,
			FlagNames:     []string{"ACPI_WMI_EVENT"},
		},
	}
)

func TestParseWdg(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want []GuidBlock
	}{
		{"Two Blocks", wdg, wdgBlocks},
		{"Trailing Bytes", append(append([]byte{}, wdg...), 0x01, 0x02), wdgBlocks},
		{"Short", wdg[:BlockSize-1], []GuidBlock{}},
		{"Empty", nil, []GuidBlock{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWdg(tt.data)
			if err != nil {
				t.Fatalf("ParseWdg() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseWdg() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFlagNames(t *testing.T) {
	got := FlagNames(FlagExpensive | FlagString | FlagEvent)
	want := []string{"ACPI_WMI_EXPENSIVE", "ACPI_WMI_STRING", "ACPI_WMI_EVENT"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FlagNames() = %v, want %v", got, want)
	}
	if got := FlagNames(0); got != nil {
		t.Errorf("FlagNames(0) = %v, want nil", got)
	}
}

func TestWriteText(t *testing.T) {
	blocks := []GuidBlock{
		wdgBlocks[0],
		{Guid: "05901221-D566-11D1-B2F0-00A0C9062910", ObjectId: "AA"},
	}
	want := "97845ED0-4E6D-11DE-8A39-0800200C9A66:\n" +
		"\tobject_id: BC\n" +
		"\tnotify_id: 42\n" +
		"\treserved: 43\n" +
		"\tinstance_count: 1\n" +
		"\tflags: 0x2 ACPI_WMI_METHOD \n" +
		"05901221-D566-11D1-B2F0-00A0C9062910:\n" +
		"\tobject_id: AA\n" +
		"\tnotify_id: 00\n" +
		"\treserved: 00\n" +
		"\tinstance_count: 0\n" +
		"\tflags: 0\n"

	var buf bytes.Buffer
	if err := WriteText(&buf, blocks); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	if got := buf.String(); got != want {
		t.Errorf("WriteText() = %q, want %q", got, want)
	}
}

func TestGuid(t *testing.T) {
	g, err := ParseGuid(wdg[:16])
	if err != nil {
		t.Fatalf("ParseGuid() error = %v", err)
	}
	if got := g.String(); got != "97845ED0-4E6D-11DE-8A39-0800200C9A66" {
		t.Errorf("String() = %v", got)
	}
	if _, err := ParseGuid(wdg[:8]); err == nil {
		t.Errorf("ParseGuid() expected error for short input")
	}
}

func TestSerializers(t *testing.T) {
	tests := []struct {
		name string
		s    Serializer
	}{
		{"JSON", JsonSerializer{}},
		{"CBOR", CborSerializer{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.s.Marshal(wdgBlocks[:1])
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			var got []GuidBlock
			if err := tt.s.Unmarshal(data, &got); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if !reflect.DeepEqual(got, wdgBlocks[:1]) {
				t.Errorf("Unmarshal() = %+v, want %+v", got, wdgBlocks[:1])
			}
		})
	}
}
