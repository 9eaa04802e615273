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

// Package serializer provides encoding and decoding of audit results in
// multiple formats.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, indented by default
//   - The only format an Ansible controller accepts on module stdout
//
// YAML:
//   - Human-readable with preserved structure
//   - Default for interactive CLI use
//
// Table:
//   - Flattened dotted keys with their values, one per row
//   - Suitable for terminal viewing and grep
//   - Write-only (no deserialization support)
//
// # Usage - Encoding
//
//	w, err := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	if err := w.Serialize(ctx, result); err != nil {
//	    return err
//	}
//
// An empty path writes to stdout.
//
// # Usage - Decoding
//
//	res, err := serializer.FromFile[result.Result]("facts.yaml")
//
// The format is detected from the file extension.
package serializer
