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

// Package systemd reports the state of selected systemd units over D-Bus.
//
// # Collected Data
//
// For each configured unit, the collector captures:
//   - load_state (loaded, not-found, masked)
//   - active_state (active, inactive, failed)
//   - sub_state (running, dead, exited)
//   - unit_file_state (enabled, disabled, static)
//
// # Usage
//
//	collector := &systemd.Collector{
//	    Units: []string{"ssh.service", "cron.service"},
//	}
//	facts, err := collector.Collect(ctx)
//
// Units default to the SSH and cron services under both their Debian and
// RedHat names. A unit unknown to systemd is reported with load_state
// "not-found" rather than failing.
//
// # Requirements
//
// The collector talks to the system bus, so the host must run systemd and
// the caller must be allowed to read unit properties.
package systemd
