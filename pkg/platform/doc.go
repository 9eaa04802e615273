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

// Package platform detects the host's OS family and distribution.
//
// Detection is a one-shot lookup through gopsutil's host information, which
// reads /etc/os-release and related release files. The result feeds the
// software strategy selector; it is never recomputed during a run.
//
//	info, err := platform.NewDetector().Detect(ctx)
//	// info.Platform = "Linux", info.Distribution = "Ubuntu", info.Family = platform.FamilyDebian
//
// Families that hostaudit has no strategy for resolve to FamilyUnknown.
package platform
