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
	"encoding/binary"
	"fmt"
)

// Guid represents a GUID in its mixed-endian binary layout
type Guid struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]uint8
}

// String returns the canonical XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX form
func (guid Guid) String() string {
	return fmt.Sprintf("%08X-%04X-%04X-%02X%02X-%02X%02X%02X%02X%02X%02X",
		guid.Data1, guid.Data2, guid.Data3,
		guid.Data4[0], guid.Data4[1], guid.Data4[2], guid.Data4[3],
		guid.Data4[4], guid.Data4[5], guid.Data4[6], guid.Data4[7])
}

// ParseGuid decodes the 16 byte little-endian GUID at the start of data
func ParseGuid(data []byte) (Guid, error) {
	var guid Guid
	err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &guid)
	if err != nil {
		return Guid{}, fmt.Errorf("failed to parse GUID: %w", err)
	}
	return guid, nil
}
