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
	"context"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/NVIDIA/hostaudit/pkg/collector/file"
	"github.com/NVIDIA/hostaudit/pkg/executor"
)

// zabbixServerKey is the passive check directive. ServerActive is a
// different directive and is not matched.
const zabbixServerKey = "Server"

// apacheModules lists loaded Apache modules via `apachectl -t -D DUMP_MODULES`.
func apacheModules(ctx context.Context, r executor.Runner, apachectl string) ([]string, error) {
	res, err := executor.RunChecked(ctx, r, apachectl, "-t", "-D", "DUMP_MODULES")
	if err != nil {
		return nil, err
	}
	return ParseApacheModules(res.Stdout), nil
}

// ParseApacheModules extracts module names from DUMP_MODULES output. Only
// indented lines carry a module; the "_module" suffix is removed. Order and
// duplicates are preserved.
func ParseApacheModules(out string) []string {
	lines := file.NewParser(file.WithTrimLines(false), file.WithSkipComments(false)).SplitLines(out)

	modules := make([]string, 0, len(lines))
	for _, line := range lines {
		if !strings.HasPrefix(line, " ") && !strings.HasPrefix(line, "\t") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		modules = append(modules, strings.TrimSuffix(fields[0], "_module"))
	}
	return modules
}

// phpModules lists compiled PHP modules via `php -m`.
func phpModules(ctx context.Context, r executor.Runner, php string) ([]string, error) {
	res, err := executor.RunChecked(ctx, r, php, "-m")
	if err != nil {
		return nil, err
	}
	return ParsePHPModules(res.Stdout), nil
}

// ParsePHPModules extracts module names from `php -m` output. Section
// headers such as "[Zend Modules]" are skipped and repeated names are
// dropped, keeping first-seen order.
func ParsePHPModules(out string) []string {
	lines := file.NewParser(file.WithSkipComments(false)).SplitLines(out)

	seen := sets.New[string]()
	modules := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(line, "[") || seen.Has(line) {
			continue
		}
		seen.Insert(line)
		modules = append(modules, line)
	}
	return modules
}

// zabbixServers reads the Server directive from the Zabbix agent config.
// It returns nil when the directive is absent.
func zabbixServers(path string) ([]string, error) {
	kv, err := file.NewParser().GetMap(path)
	if err != nil {
		return nil, err
	}
	value, ok := kv[zabbixServerKey]
	if !ok {
		return nil, nil
	}
	return SplitServers(value), nil
}

// SplitServers splits a comma separated server list, trimming entries and
// dropping empty ones.
func SplitServers(value string) []string {
	parts := strings.Split(value, ",")
	servers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			servers = append(servers, p)
		}
	}
	return servers
}
