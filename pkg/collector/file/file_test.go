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
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/NVIDIA/hostaudit/pkg/defaults"
	"github.com/NVIDIA/hostaudit/pkg/errors"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.conf")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestNewParser(t *testing.T) {
	tests := []struct {
		name                    string
		opts                    []Option
		expectedDelimiter       string
		expectedMaxSize         int
		expectedSkipComments    bool
		expectedTrimLines       bool
		expectedKVDelimiter     string
		expectedVTrimChars      string
		expectedSkipEmptyValues bool
	}{
		{
			name:                 "default options",
			expectedDelimiter:    "\n",
			expectedMaxSize:      defaults.FileMaxSize,
			expectedSkipComments: true,
			expectedTrimLines:    true,
			expectedKVDelimiter:  "=",
		},
		{
			name: "all options",
			opts: []Option{
				WithDelimiter(";"),
				WithMaxSize(2048),
				WithSkipComments(false),
				WithTrimLines(false),
				WithKVDelimiter(":"),
				WithVTrimChars(`"'`),
				WithSkipEmptyValues(true),
			},
			expectedDelimiter:       ";",
			expectedMaxSize:         2048,
			expectedSkipComments:    false,
			expectedTrimLines:       false,
			expectedKVDelimiter:     ":",
			expectedVTrimChars:      `"'`,
			expectedSkipEmptyValues: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser(tt.opts...)
			if p.delimiter != tt.expectedDelimiter {
				t.Errorf("delimiter = %q, want %q", p.delimiter, tt.expectedDelimiter)
			}
			if p.maxSize != tt.expectedMaxSize {
				t.Errorf("maxSize = %d, want %d", p.maxSize, tt.expectedMaxSize)
			}
			if p.skipComments != tt.expectedSkipComments {
				t.Errorf("skipComments = %v, want %v", p.skipComments, tt.expectedSkipComments)
			}
			if p.trimLines != tt.expectedTrimLines {
				t.Errorf("trimLines = %v, want %v", p.trimLines, tt.expectedTrimLines)
			}
			if p.kvDelimiter != tt.expectedKVDelimiter {
				t.Errorf("kvDelimiter = %q, want %q", p.kvDelimiter, tt.expectedKVDelimiter)
			}
			if p.vTrimChars != tt.expectedVTrimChars {
				t.Errorf("vTrimChars = %q, want %q", p.vTrimChars, tt.expectedVTrimChars)
			}
			if p.skipEmptyValues != tt.expectedSkipEmptyValues {
				t.Errorf("skipEmptyValues = %v, want %v", p.skipEmptyValues, tt.expectedSkipEmptyValues)
			}
		})
	}
}

func TestGetLines(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		opts     []Option
		expected []string
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "simple newline-delimited",
			content:  "line1\nline2\nline3",
			expected: []string{"line1", "line2", "line3"},
		},
		{
			name:     "blank lines filtered",
			content:  "line1\n\n  \nline2\n\n",
			expected: []string{"line1", "line2"},
		},
		{
			name:     "comments skipped by default",
			content:  "# comment\nServer=10.0.0.1\n   # indented comment",
			expected: []string{"Server=10.0.0.1"},
		},
		{
			name:     "comments kept when disabled",
			content:  "# comment\nline",
			opts:     []Option{WithSkipComments(false)},
			expected: []string{"# comment", "line"},
		},
		{
			name:     "leading whitespace kept without trim",
			content:  "Loaded Modules:\n core_module (static)\r\n",
			opts:     []Option{WithTrimLines(false)},
			expected: []string{"Loaded Modules:", " core_module (static)"},
		},
		{
			name:     "custom delimiter",
			content:  "a;b;;c",
			opts:     []Option{WithDelimiter(";")},
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "empty file",
			content:  "",
			expected: []string{},
		},
		{
			name:    "file too large",
			content: strings.Repeat("a", 2000),
			opts:    []Option{WithMaxSize(1000)},
			wantErr: true,
			errMsg:  "exceeds maximum size",
		},
		{
			name:    "invalid UTF-8",
			content: "valid\xff\xfeinvalid",
			wantErr: true,
			errMsg:  "not valid UTF-8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, tt.content)
			result, err := NewParser(tt.opts...).GetLines(path)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("GetLines() expected error containing %q, got nil", tt.errMsg)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("GetLines() error = %q, want error containing %q", err.Error(), tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetLines() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("GetLines() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestGetLines_EmptyPath(t *testing.T) {
	_, err := NewParser().GetLines("")
	if err == nil {
		t.Fatal("GetLines(\"\") expected error, got nil")
	}
	if errors.CodeOf(err) != errors.ErrCodeInvalidRequest {
		t.Errorf("code = %q, want %q", errors.CodeOf(err), errors.ErrCodeInvalidRequest)
	}
}

func TestGetLines_NonExistentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.conf")
	_, err := NewParser().GetLines(path)
	if err == nil {
		t.Fatal("GetLines() with nonexistent file expected error, got nil")
	}
	if errors.CodeOf(err) != errors.ErrCodeResourceAccess {
		t.Errorf("code = %q, want %q", errors.CodeOf(err), errors.ErrCodeResourceAccess)
	}
	if !stderrors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist in chain, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q should name the path", err.Error())
	}
}

func TestGetMap(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		opts     []Option
		expected map[string]string
	}{
		{
			name:    "last occurrence wins",
			content: "Server=10.0.0.1\nHostname=web\nServer=10.0.0.2,10.0.0.3\n",
			expected: map[string]string{
				"Server":   "10.0.0.2,10.0.0.3",
				"Hostname": "web",
			},
		},
		{
			name:    "similar keys stay distinct",
			content: "ServerActive=zbx:10051\nServer=zbx\n",
			expected: map[string]string{
				"ServerActive": "zbx:10051",
				"Server":       "zbx",
			},
		},
		{
			name:    "value keeps later delimiters",
			content: "Include=/etc/zabbix/a=b.conf",
			expected: map[string]string{
				"Include": "/etc/zabbix/a=b.conf",
			},
		},
		{
			name:     "lines without delimiter skipped",
			content:  "garbage\nKEY = value \n",
			expected: map[string]string{"KEY": "value"},
		},
		{
			name:    "quoted values with trim",
			content: `NAME="Ubuntu"` + "\n" + `ID='ubuntu'` + "\nEMPTY=\n",
			opts:    []Option{WithVTrimChars(`"'`), WithSkipEmptyValues(true)},
			expected: map[string]string{
				"NAME": "Ubuntu",
				"ID":   "ubuntu",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, tt.content)
			got, err := NewParser(tt.opts...).GetMap(path)
			if err != nil {
				t.Fatalf("GetMap() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("GetMap() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetRecords(t *testing.T) {
	path := writeTemp(t, "root:x:0:0:root:/root:/bin/bash\nbroken\n")

	got, err := NewParser().GetRecords(path, ":")
	if err != nil {
		t.Fatalf("GetRecords() unexpected error: %v", err)
	}

	want := [][]string{
		{"root", "x", "0", "0", "root", "/root", "/bin/bash"},
		{"broken"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetRecords() = %q, want %q", got, want)
	}
}

func TestSplitLines(t *testing.T) {
	p := NewParser(WithSkipComments(false))
	got := p.SplitLines("[PHP Modules]\nCore\n\ndate\n")
	want := []string{"[PHP Modules]", "Core", "date"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitLines() = %q, want %q", got, want)
	}
}
