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

// Package executor runs the fixed inspection commands used by the collectors.
//
// Collectors depend on the Runner interface rather than on os/exec so tests
// can swap in a scripted double. The production ExecRunner is backed by
// k8s.io/utils/exec, which also provides the FakeExec used in this package's
// tests.
//
// A command that starts and exits non-zero is not an error from Run: the exit
// code is reported in Result. RunChecked turns a non-zero exit into an
// ErrCodeCommandFailed error, which is what every collector uses since a
// failed inspection command aborts the whole collection.
package executor
