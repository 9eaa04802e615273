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

// Package software collects the installed-software inventory of a host.
//
// # Overview
//
// Collection is a linear pipeline driven by a per-family Strategy:
//
//  1. The strategy selector maps the detected platform.Family to a Strategy.
//     Families without a strategy get one that fails every call with
//     ErrCodeUnsupportedPlatform.
//  2. Packages runs the family's package-listing command (dpkg -l or rpm -qa)
//     and parses it into a PackageCatalog keyed by package name.
//  3. Match walks the family's KnownSoftware table. Each entry lists one or
//     more candidate package names; the first candidate present in the catalog
//     wins and its version becomes the SoftwareFact. Entries without a match
//     are omitted.
//  4. Enrichment helpers attach module lists (Apache2, PHP) and monitoring
//     server lists (Zabbix agent) to facts that exist.
//
// Any command failure or unreadable file aborts the whole collection; there
// is no partial result. Malformed package lines are skipped with a warning.
//
// # Output
//
//	audit_software:
//	  Apache2:
//	    version: 2.4.52-1ubuntu4
//	    modules: [core, so, mpm_prefork, ...]
//	  Nginx:
//	    version: 1.18.0
//	  Zabbix (agent):
//	    version: 1:5.0.17
//	    servers: [10.0.0.5, zabbix.example.com]
package software
