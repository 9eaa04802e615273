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

// Package errors provides structured error types used across hostaudit.
//
// Every fatal condition raised by a collector is a *StructuredError carrying
// an ErrorCode. Callers classify failures with CodeOf instead of matching on
// message text:
//
//	if errors.CodeOf(err) == errors.ErrCodeCommandFailed {
//	    // a required inspection command exited non-zero
//	}
//
// The message surfaced to Ansible is produced by UserMessage, which drops the
// code prefix that Error() adds for logs.
package errors
