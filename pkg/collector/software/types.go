// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package software

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// FactKey is the ansible_facts key the inventory is returned under.
const FactKey = "audit_software"

// PackageRecord is one installed package as reported by the package manager.
type PackageRecord struct {
	Name         string `json:"name" yaml:"name"`
	Version      string `json:"version" yaml:"version"`
	Architecture string `json:"architecture" yaml:"architecture"`
	Description  string `json:"description" yaml:"description"`
}

// PackageCatalog maps package name to its record. It is built once per run
// and only read afterwards.
type PackageCatalog map[string]PackageRecord

// Has reports whether the named package is installed.
func (c PackageCatalog) Has(name string) bool {
	_, ok := c[name]
	return ok
}

// SoftwareFact is the collected state of one known software. Modules and
// Servers are nil when they were not collected; an empty, non-nil list is
// still emitted.
type SoftwareFact struct {
	Version string   `json:"version" yaml:"version"`
	Modules []string `json:"modules" yaml:"modules"`
	Servers []string `json:"servers" yaml:"servers"`
}

// softwareFactDoc is the wire shape of SoftwareFact. A nil pointer drops
// the key, a pointer to an empty list keeps it.
type softwareFactDoc struct {
	Version string    `json:"version" yaml:"version"`
	Modules *[]string `json:"modules,omitempty" yaml:"modules,omitempty"`
	Servers *[]string `json:"servers,omitempty" yaml:"servers,omitempty"`
}

func (f SoftwareFact) doc() softwareFactDoc {
	d := softwareFactDoc{Version: f.Version}
	if f.Modules != nil {
		d.Modules = &f.Modules
	}
	if f.Servers != nil {
		d.Servers = &f.Servers
	}
	return d
}

// MarshalJSON emits modules and servers only when they were collected.
func (f SoftwareFact) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.doc())
}

// MarshalYAML emits modules and servers only when they were collected.
func (f SoftwareFact) MarshalYAML() (any, error) {
	return f.doc(), nil
}

// Software maps a human readable software name to its fact. Software that is
// not installed has no key.
type Software map[string]SoftwareFact

// KnownSoftwareEntry names a software and the package names that provide it,
// in order of preference.
type KnownSoftwareEntry struct {
	Name     string   `json:"name" yaml:"name"`
	Packages []string `json:"packages" yaml:"packages"`
}

// KnownSoftware is an ordered known-software table for one OS family.
type KnownSoftware []KnownSoftwareEntry

// Validate checks that every entry is named, unique and has candidates.
func (k KnownSoftware) Validate() error {
	seen := make(map[string]struct{}, len(k))
	for i, e := range k {
		if strings.TrimSpace(e.Name) == "" {
			return fmt.Errorf("entry %d: name cannot be empty", i)
		}
		if _, dup := seen[e.Name]; dup {
			return fmt.Errorf("entry %q: duplicate name", e.Name)
		}
		seen[e.Name] = struct{}{}
		if len(e.Packages) == 0 {
			return fmt.Errorf("entry %q: at least one package is required", e.Name)
		}
		for _, p := range e.Packages {
			if strings.TrimSpace(p) == "" {
				return fmt.Errorf("entry %q: package name cannot be empty", e.Name)
			}
		}
	}
	return nil
}

// With returns a deep copy of the table with extra entries appended. Extra
// entries whose name is already present are ignored.
func (k KnownSoftware) With(extra KnownSoftware) KnownSoftware {
	out := make(KnownSoftware, 0, len(k)+len(extra))
	names := make(map[string]struct{}, len(k)+len(extra))
	for _, e := range slices.Concat(k, extra) {
		if _, ok := names[e.Name]; ok {
			continue
		}
		names[e.Name] = struct{}{}
		out = append(out, KnownSoftwareEntry{Name: e.Name, Packages: slices.Clone(e.Packages)})
	}
	return out
}
