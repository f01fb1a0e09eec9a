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

package artifact

import "strconv"

// Registry hands out collision-free output names for the lifetime of a
// single extraction run. The first occurrence of a name is returned
// unmodified, subsequent occurrences get the suffixes 1, 2, ...
type Registry struct {
	counts map[string]int
}

func NewRegistry() *Registry {
	return &Registry{
		counts: make(map[string]int),
	}
}

// Resolve returns the output base name for the next occurrence of name
func (r *Registry) Resolve(name string) string {
	n, ok := r.counts[name]
	if !ok {
		r.counts[name] = 0
		return name
	}
	n++
	r.counts[name] = n
	return name + strconv.Itoa(n)
}
