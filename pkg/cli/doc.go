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

// Package cli implements the hostaudit command-line interface.
//
// # Commands
//
// software, network, users, disks, kernel, services - run one module:
//
//	hostaudit software --format json
//
// Each prints an AuditResult document with the module's facts under
// ansible_facts. Output defaults to stdout in YAML format.
//
// all - run every module:
//
//	hostaudit all --parallelism 3 --output facts.json
//
// module - run one module as an Ansible binary module:
//
//	hostaudit module audit-software /tmp/ansible_args
//
// The arguments file is validated, a single compact JSON document is printed
// and the exit status is 1 on failure. Invoking the binary under a module
// name (for example via a symlink named audit-software) does the same.
//
// show - re-render a saved result:
//
//	hostaudit show -f facts.json --format table
//
// modules - list available module names.
//
// # Global Flags
//
//	--config, -c        Config file (env HOSTAUDIT_CONFIG)
//	--log-level         Log level: debug, info, warn, error (env LOG_LEVEL)
//	--output, -o        Output file path (default: stdout)
//	--format, -t        Output format: yaml, json, table (default: yaml)
//	--metrics-file      Write Prometheus metrics in textfile format
//	--os-family         Override the detected OS family (debian, redhat)
//	--distribution      Override the detected distribution
//
// # Exit Codes
//
//	0  Success
//	1  Module failure, invalid arguments or I/O error
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/hostaudit/pkg/cli.version=1.0.0'"
package cli
