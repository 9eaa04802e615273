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

package file

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/NVIDIA/hostaudit/pkg/defaults"
	"github.com/NVIDIA/hostaudit/pkg/errors"
)

// Option configures a Parser.
type Option func(*Parser)

// Parser parses line oriented system files with customizable settings.
type Parser struct {
	delimiter       string
	maxSize         int
	skipComments    bool
	trimLines       bool
	kvDelimiter     string
	vTrimChars      string
	skipEmptyValues bool
}

// WithDelimiter sets the delimiter used to split entries in the file.
// Default is newline ("\n").
func WithDelimiter(delim string) Option {
	return func(p *Parser) {
		p.delimiter = delim
	}
}

// WithMaxSize sets the maximum size (in bytes) of the file to be parsed.
// Default is defaults.FileMaxSize.
func WithMaxSize(size int) Option {
	return func(p *Parser) {
		p.maxSize = size
	}
}

// WithSkipComments sets whether to skip lines starting with '#'.
// Default is true.
func WithSkipComments(skip bool) Option {
	return func(p *Parser) {
		p.skipComments = skip
	}
}

// WithTrimLines sets whether surrounding whitespace is removed from each line.
// Default is true. Blank lines are always dropped.
func WithTrimLines(trim bool) Option {
	return func(p *Parser) {
		p.trimLines = trim
	}
}

// WithKVDelimiter sets the key-value delimiter used in GetMap.
// Default is "=".
func WithKVDelimiter(kvDelim string) Option {
	return func(p *Parser) {
		p.kvDelimiter = kvDelim
	}
}

// WithVTrimChars sets characters to trim from values in GetMap.
// Default is no trimming.
func WithVTrimChars(trimChars string) Option {
	return func(p *Parser) {
		p.vTrimChars = trimChars
	}
}

// WithSkipEmptyValues sets whether GetMap drops keys with empty values.
// Default is false.
func WithSkipEmptyValues(skip bool) Option {
	return func(p *Parser) {
		p.skipEmptyValues = skip
	}
}

// NewParser creates a new file parser with the provided options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		delimiter:    "\n",
		maxSize:      defaults.FileMaxSize,
		skipComments: true,
		trimLines:    true,
		kvDelimiter:  "=",
	}

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetMap reads the file at path and splits each line on the key-value
// delimiter. Lines without the delimiter are skipped. When a key repeats,
// the last occurrence wins.
func (p *Parser) GetMap(path string) (map[string]string, error) {
	lines, err := p.GetLines(path)
	if err != nil {
		return nil, err
	}

	result := make(map[string]string)
	for _, line := range lines {
		key, value, found := strings.Cut(line, p.kvDelimiter)
		if !found {
			slog.Debug("skipping line without key-value delimiter",
				slog.String("path", path),
				slog.String("delimiter", p.kvDelimiter))
			continue
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if p.vTrimChars != "" {
			value = strings.Trim(value, p.vTrimChars)
		}

		if p.skipEmptyValues && value == "" {
			slog.Debug("skipping entry with empty value", slog.String("key", key))
			continue
		}

		result[key] = value
	}

	return result, nil
}

// GetRecords reads the file at path and splits every line into fields on sep.
// Field counts are not validated; callers decide what a well-formed record is.
func (p *Parser) GetRecords(path, sep string) ([][]string, error) {
	lines, err := p.GetLines(path)
	if err != nil {
		return nil, err
	}

	records := make([][]string, 0, len(lines))
	for _, line := range lines {
		records = append(records, strings.Split(line, sep))
	}
	return records, nil
}

// GetLines reads the file at path and splits its content into non-blank
// lines. An error is returned if the file cannot be read, exceeds the
// maximum size, or contains invalid UTF-8.
func (p *Parser) GetLines(path string) ([]string, error) {
	if path == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "file path cannot be empty")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeResourceAccess,
			fmt.Sprintf("failed to read %q", path), err,
			map[string]any{"path": path})
	}

	if len(b) > p.maxSize {
		return nil, errors.NewWithContext(errors.ErrCodeResourceAccess,
			fmt.Sprintf("file %q exceeds maximum size of %d bytes", path, p.maxSize),
			map[string]any{"path": path})
	}

	if !utf8.Valid(b) {
		return nil, errors.NewWithContext(errors.ErrCodeParse,
			fmt.Sprintf("content of file %q is not valid UTF-8", path),
			map[string]any{"path": path})
	}

	return p.SplitLines(string(b)), nil
}

// SplitLines applies the parser's line rules to content.
func (p *Parser) SplitLines(content string) []string {
	parts := strings.Split(content, p.delimiter)

	result := make([]string, 0, len(parts))
	for _, part := range parts {
		clean := strings.TrimSpace(part)
		if clean == "" {
			continue
		}
		if p.skipComments && strings.HasPrefix(clean, "#") {
			continue
		}
		if p.trimLines {
			result = append(result, clean)
			continue
		}
		result = append(result, strings.TrimRight(part, "\r"))
	}

	return result
}
