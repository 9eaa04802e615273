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

// Software names that receive enrichment.
const (
	NameApache2     = "Apache2"
	NamePHP         = "PHP"
	NameZabbixAgent = "Zabbix (agent)"
)

// Match cross-references known software against installed packages. For each
// entry the first candidate present in pkgs, in declared order, supplies the
// version. Entries with no installed candidate are left out.
func Match(known KnownSoftware, pkgs PackageCatalog) Software {
	software := make(Software)
	for _, entry := range known {
		for _, candidate := range entry.Packages {
			rec, ok := pkgs[candidate]
			if !ok {
				continue
			}
			software[entry.Name] = SoftwareFact{Version: rec.Version}
			break
		}
	}
	return software
}
