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

package collector

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/NVIDIA/hostaudit/pkg/collector/disks"
	"github.com/NVIDIA/hostaudit/pkg/collector/kernel"
	"github.com/NVIDIA/hostaudit/pkg/collector/network"
	"github.com/NVIDIA/hostaudit/pkg/collector/software"
	"github.com/NVIDIA/hostaudit/pkg/collector/systemd"
	"github.com/NVIDIA/hostaudit/pkg/collector/users"
	"github.com/NVIDIA/hostaudit/pkg/errors"
)

// Collector gathers one module's facts.
type Collector interface {
	Collect(ctx context.Context) (map[string]any, error)
}

// Module identifies a collector by its Ansible module name and CLI command.
type Module struct {
	// Name is the Ansible module name, also used for argv[0] dispatch.
	Name string
	// Command is the CLI subcommand.
	Command string
	// Usage is a one-line description.
	Usage string
}

// Modules in the order `all` collects them.
var (
	ModuleSoftware = Module{Name: software.ModuleName, Command: "software", Usage: "Inventory installed software"}
	ModuleNetwork  = Module{Name: network.ModuleName, Command: "network", Usage: "Report interfaces, routes and listening sockets"}
	ModuleUsers    = Module{Name: users.ModuleName, Command: "users", Usage: "Report local accounts"}
	ModuleDisks    = Module{Name: disks.ModuleName, Command: "disks", Usage: "Report filesystem usage"}
	ModuleKernel   = Module{Name: kernel.ModuleName, Command: "kernel", Usage: "Report kernel identification"}
	ModuleServices = Module{Name: systemd.ModuleName, Command: "services", Usage: "Report systemd unit states"}
)

// Modules lists every module.
var Modules = []Module{
	ModuleSoftware,
	ModuleNetwork,
	ModuleUsers,
	ModuleDisks,
	ModuleKernel,
	ModuleServices,
}

// Lookup finds a module by Ansible module name or CLI command.
func Lookup(name string) (Module, bool) {
	for _, m := range Modules {
		if m.Name == name || m.Command == name {
			return m, true
		}
	}
	return Module{}, false
}

// ModuleNames returns the sorted Ansible module names.
func ModuleNames() []string {
	names := make([]string, 0, len(Modules))
	for _, m := range Modules {
		names = append(names, m.Name)
	}
	sort.Strings(names)
	return names
}

// Factory creates collectors.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateSoftwareCollector() Collector
	CreateNetworkCollector() Collector
	CreateUsersCollector() Collector
	CreateDisksCollector() Collector
	CreateKernelCollector() Collector
	CreateServicesCollector() Collector
}

// Create returns the collector for module m.
func Create(f Factory, m Module) (Collector, error) {
	switch m {
	case ModuleSoftware:
		return f.CreateSoftwareCollector(), nil
	case ModuleNetwork:
		return f.CreateNetworkCollector(), nil
	case ModuleUsers:
		return f.CreateUsersCollector(), nil
	case ModuleDisks:
		return f.CreateDisksCollector(), nil
	case ModuleKernel:
		return f.CreateKernelCollector(), nil
	case ModuleServices:
		return f.CreateServicesCollector(), nil
	default:
		return nil, errors.New(errors.ErrCodeNotFound,
			fmt.Sprintf("unknown module %q (available: %s)", m.Name, strings.Join(ModuleNames(), ", ")))
	}
}
