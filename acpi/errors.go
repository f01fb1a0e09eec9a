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

package acpi

import "fmt"

// TokenFormatError is returned if a buffer data token is not a valid
// 8-bit hexadecimal value
type TokenFormatError struct {
	Record string
	Token  string
	Err    error
}

func (e *TokenFormatError) Error() string {
	return fmt.Sprintf("buffer %v: invalid hex token %q: %v", e.Record, e.Token, e.Err)
}

func (e *TokenFormatError) Unwrap() error {
	return e.Err
}
