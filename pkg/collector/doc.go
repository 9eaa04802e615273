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

// Package collector defines the fact collector interface and the module
// registry that maps Ansible module names to collectors.
//
// # Core Interface
//
// The Collector interface defines a single method for gathering facts:
//
//	type Collector interface {
//	    Collect(ctx context.Context) (map[string]any, error)
//	}
//
// The returned map is placed under ansible_facts as-is. Collectors support
// context-based cancellation; a collector either returns all of its facts or
// an error, never a partial result.
//
// # Factory Pattern
//
// The Factory interface abstracts collector creation so tests can inject
// fakes:
//
//	factory := collector.NewDefaultFactory(
//	    collector.WithConfig(cfg),
//	    collector.WithRunner(runner),
//	)
//	c, err := factory.Create(collector.ModuleSoftware)
//
// # Available Modules
//
//   - audit-software: installed software matched against a known-software table
//   - audit-network: interface addresses, routes and listening sockets
//   - audit-users: local accounts and whether they can log in
//   - audit_disks: filesystem usage
//   - example: kernel identification from uname
//   - audit-services: systemd unit states
package collector
