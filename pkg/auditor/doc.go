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

// Package auditor runs fact modules and assembles their output into a
// single result document.
//
// # Core Types
//
// Auditor: runs one or more modules and serializes the result
//
//	type Auditor struct {
//	    Version     string                // Tool version stamped in the header
//	    Factory     collector.Factory     // Collector factory (optional)
//	    Serializer  serializer.Serializer // Output serializer (optional)
//	    Parallelism int                   // Modules collected at once (default 1)
//	}
//
// # Usage
//
// One module with defaults (stdout JSON):
//
//	a := &auditor.Auditor{Version: "v1.0.0"}
//	res := a.Run(ctx, collector.ModuleSoftware)
//	os.Exit(res.ExitCode())
//
// All modules, two at a time:
//
//	a := &auditor.Auditor{
//	    Version:     "v1.0.0",
//	    Factory:     collector.NewDefaultFactory(collector.WithConfig(cfg)),
//	    Parallelism: 2,
//	}
//	res, err := a.Audit(ctx, collector.Modules...)
//
// # Failure Semantics
//
// The first module error cancels the remaining modules and the whole audit
// fails; no partial facts are returned. Run turns the error into a failed
// result document so that stdout always carries exactly one document.
//
// # Metrics
//
// Collection is instrumented with Prometheus metrics registered on the
// default registry. WriteMetrics saves them in the node_exporter textfile
// format.
package auditor
