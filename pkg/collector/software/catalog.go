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

package software

import (
	"fmt"
	"strings"

	"github.com/NVIDIA/hostaudit/pkg/errors"
)

// ParseError describes a package listing line that could not be parsed.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// Err wraps the parse error into a structured error with ErrCodeParse.
func (e *ParseError) Err() error {
	return errors.WrapWithContext(errors.ErrCodeParse, "malformed package line", e,
		map[string]any{"line": e.Line})
}

// lineParser parses one line of package manager output. A non-empty reason
// marks the line malformed; a nil record with no reason means the line does
// not describe an installed package.
type lineParser func(line string) (*PackageRecord, string)

// buildCatalog parses out line by line. Malformed lines are collected and
// skipped. When a package name repeats the later record wins.
func buildCatalog(out string, parse lineParser) (PackageCatalog, []*ParseError) {
	catalog := make(PackageCatalog)
	var skipped []*ParseError

	for i, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		rec, reason := parse(line)
		if reason != "" {
			skipped = append(skipped, &ParseError{Line: i + 1, Text: line, Reason: reason})
			continue
		}
		if rec == nil {
			continue
		}
		catalog[rec.Name] = *rec
	}

	return catalog, skipped
}

// ParseDpkgList parses `dpkg -l` output. Only installed packages (lines
// starting with "ii") are considered; the description is the rest of the
// line with whitespace collapsed.
func ParseDpkgList(out string) (PackageCatalog, []*ParseError) {
	return buildCatalog(out, parseDpkgLine)
}

func parseDpkgLine(line string) (*PackageRecord, string) {
	if !strings.HasPrefix(line, "ii") {
		return nil, ""
	}
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return nil, fmt.Sprintf("expected at least 4 fields, got %d", len(fields))
	}
	return &PackageRecord{
		Name:         fields[1],
		Version:      fields[2],
		Architecture: fields[3],
		Description:  strings.Join(fields[4:], " "),
	}, ""
}

// ParseRpmList parses `rpm -qa --qf` output produced with the tab separated
// query format in defaults.RpmQueryFormat.
func ParseRpmList(out string) (PackageCatalog, []*ParseError) {
	return buildCatalog(out, parseRpmLine)
}

func parseRpmLine(line string) (*PackageRecord, string) {
	if strings.TrimSpace(line) == "" {
		return nil, ""
	}
	parts := strings.SplitN(line, "\t", 4)
	if len(parts) < 4 {
		return nil, fmt.Sprintf("expected 4 tab separated fields, got %d", len(parts))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if parts[0] == "" || parts[1] == "" {
		return nil, "package name and version are required"
	}
	return &PackageRecord{
		Name:         parts[0],
		Version:      parts[1],
		Architecture: parts[2],
		Description:  parts[3],
	}, ""
}
