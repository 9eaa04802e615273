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

// Package logging provides structured logging utilities for hostaudit.
//
// # Overview
//
// This package wraps the standard library slog package with hostaudit defaults
// so every command and collector logs the same way. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages, including skipped malformed lines
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("hostaudit", version)
//	    slog.Info("collecting software inventory", "family", "debian")
//	}
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity when no
// explicit level is given:
//
//	LOG_LEVEL=debug hostaudit software
//
// # Output Format
//
// All logs are written to stderr in JSON format. Stdout is reserved for
// collected facts so that the Ansible module protocol stays a single JSON
// document.
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "collecting software inventory",
//	    "module": "hostaudit",
//	    "version": "v1.0.0",
//	    "family": "debian"
//	}
package logging
