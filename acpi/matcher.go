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
	"fmt"
	"regexp"
)

// Matcher selects buffer declarations by their identifier. Matching is
// case-sensitive and always covers the complete identifier.
type Matcher interface {
	Match(id string) bool
	String() string
}

// ExactMatcher matches a single literal identifier
type ExactMatcher struct {
	Name string
}

func (m ExactMatcher) Match(id string) bool {
	return id == m.Name
}

func (m ExactMatcher) String() string {
	return m.Name
}

// PatternMatcher matches identifiers against an anchored regular expression,
// e.g. WQ[A-Z]{2} for the WMI data blocks WQAA..WQZZ
type PatternMatcher struct {
	expr string
	re   *regexp.Regexp
}

func NewPatternMatcher(expr string) (*PatternMatcher, error) {
	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return nil, fmt.Errorf("failed to compile name pattern %q: %w", expr, err)
	}
	return &PatternMatcher{expr: expr, re: re}, nil
}

func (m *PatternMatcher) Match(id string) bool {
	return m.re.MatchString(id)
}

func (m *PatternMatcher) String() string {
	return m.expr
}

// NewMatcher returns an ExactMatcher for plain identifiers and a
// PatternMatcher if the name contains regular expression syntax. With
// literal set, the name is always matched verbatim.
func NewMatcher(name string, literal bool) (Matcher, error) {
	if name == "" {
		return nil, fmt.Errorf("empty name pattern")
	}
	if literal || regexp.QuoteMeta(name) == name {
		return ExactMatcher{Name: name}, nil
	}
	return NewPatternMatcher(name)
}

// NewMatchers converts a list of names or name patterns into matchers
func NewMatchers(names []string, literal bool) ([]Matcher, error) {
	matchers := make([]Matcher, 0, len(names))
	for _, n := range names {
		m, err := NewMatcher(n, literal)
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
	}
	return matchers, nil
}
