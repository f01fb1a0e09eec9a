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
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Buffer is a decoded buffer declaration. Tokens holds the literal data
// tokens as found in the source, Data the corresponding bytes.
type Buffer struct {
	Name   string
	Tokens []string
	Data   []byte
}

var comment = regexp.MustCompile(`(?s)\s*(?://[^\n]*|/\*.*?\*/)\s*`)

// StripComments removes all block comments together with the surrounding
// whitespace. Line comments, as emitted by newer iasl versions after each
// row of buffer data, are removed as well. If removing a comment would join
// two tokens, a comma is inserted instead.
func StripComments(s string) string {
	locs := comment.FindAllStringIndex(s, -1)
	if locs == nil {
		return s
	}

	var b strings.Builder
	prev := 0
	for _, loc := range locs {
		b.WriteString(s[prev:loc[0]])
		out := b.String()
		if len(out) > 0 && !isSeparator(rune(out[len(out)-1])) &&
			loc[1] < len(s) && !isSeparator(rune(s[loc[1]])) {
			b.WriteByte(',')
		}
		prev = loc[1]
	}
	b.WriteString(s[prev:])

	return b.String()
}

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// Tokenize splits a comment-free data segment on commas and whitespace,
// empty tokens are dropped
func Tokenize(s string) []string {
	return strings.FieldsFunc(s, isSeparator)
}

// ParseToken parses a single hexadecimal byte token with or without 0x prefix
func ParseToken(token string) (byte, error) {
	t := token
	if len(t) > 1 && t[0] == '0' && (t[1] == 'x' || t[1] == 'X') {
		t = t[2:]
	}
	if t == "" {
		return 0, errors.New("empty value")
	}
	v, err := strconv.ParseUint(t, 16, 8)
	if err != nil {
		return 0, err
	}
	return byte(v), nil
}

// ParseTokens parses all tokens of the buffer name in order
func ParseTokens(name string, tokens []string) ([]byte, error) {
	data := make([]byte, 0, len(tokens))
	for _, t := range tokens {
		b, err := ParseToken(t)
		if err != nil {
			return nil, &TokenFormatError{Record: name, Token: t, Err: err}
		}
		data = append(data, b)
	}
	return data, nil
}

// Decode strips comments from the data segment of rec, tokenizes it and
// parses the tokens into bytes
func Decode(rec BufferRecord) (*Buffer, error) {
	tokens := Tokenize(StripComments(rec.DataSegment))

	data, err := ParseTokens(rec.Name, tokens)
	if err != nil {
		return nil, err
	}

	log.Tracef("Decoded buffer %v: %v bytes", rec.Name, len(data))

	return &Buffer{
		Name:   rec.Name,
		Tokens: tokens,
		Data:   data,
	}, nil
}
