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

import (
	"iter"
	"regexp"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("service", "acpi")

// BufferRecord is a single buffer declaration found in ACPI source language
type BufferRecord struct {
	Name        string
	SizeLiteral string
	DataSegment string
}

// Name ( <ID>, Buffer ( <size> ) { <data> } )
//
// The data segment ends at the first closing brace, buffers with nested
// braces are not supported.
var declaration = regexp.MustCompile(
	`(?s)Name\s*\(\s*([^\s,()]+)\s*,\s*Buffer\s*\(\s*((?:0[xX])?[0-9A-Fa-f]+)\s*\)\s*\{(.*?)\}\s*\)`)

// Locate lazily yields all buffer declarations in src whose identifier
// is accepted by m, in source order. A source without matching declarations
// yields nothing.
func Locate(src string, m Matcher) iter.Seq[BufferRecord] {
	return func(yield func(BufferRecord) bool) {
		rest := src
		for {
			loc := declaration.FindStringSubmatchIndex(rest)
			if loc == nil {
				return
			}
			name := rest[loc[2]:loc[3]]
			if !m.Match(name) {
				// The data segment of a foreign declaration may run into the
				// next one, so only skip its identifier
				rest = rest[loc[3]:]
				continue
			}
			rec := BufferRecord{
				Name:        name,
				SizeLiteral: rest[loc[4]:loc[5]],
				DataSegment: rest[loc[6]:loc[7]],
			}
			log.Tracef("Found buffer %v (size %v) matching %v", rec.Name, rec.SizeLiteral, m)
			if !yield(rec) {
				return
			}
			rest = rest[loc[1]:]
		}
	}
}
