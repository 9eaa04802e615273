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

// Package header provides the common header attached to hostaudit documents.
//
// The Header is embedded inline in the audit result so saved documents carry
// their kind, API version and run metadata alongside the facts:
//
//	{
//	  "kind": "AuditResult",
//	  "apiVersion": "hostaudit.nvidia.com/v1alpha1",
//	  "metadata": {
//	    "timestamp": "2025-12-30T10:30:00Z",
//	    "version": "v1.0.0",
//	    "run-id": "6f1c...",
//	    "hostname": "web-01"
//	  },
//	  "changed": false,
//	  "ansible_facts": { ... }
//	}
//
// Ansible ignores the extra keys; they only surface in registered variables.
package header
