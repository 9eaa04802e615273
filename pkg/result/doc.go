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

// Package result implements the Ansible module result protocol.
//
// A module prints exactly one JSON document on stdout. On success:
//
//	{"changed": false, "ansible_facts": {"audit_software": {...}}}
//
// On failure the document carries "failed": true and a "msg", and the
// process exits with status 1. Every result also carries an inline header
// (kind, apiVersion and run metadata) that the controller ignores.
//
// Binary modules receive the path of an arguments file as their only
// argument. The hostaudit modules take no parameters, so any key that is
// not an internal "_ansible_" key is rejected the same way Ansible rejects
// unsupported parameters.
package result
