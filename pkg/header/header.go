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

package header

import (
	"time"
)

// Kind identifies the type of a hostaudit document.
type Kind string

const (
	// KindAuditResult marks the output of one or more fact modules.
	KindAuditResult Kind = "AuditResult"
)

// Metadata keys set by Init and by the auditor.
const (
	MetaTimestamp = "timestamp"
	MetaVersion   = "version"
	MetaRunID     = "run-id"
	MetaHostname  = "hostname"
)

func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether the kind is one hostaudit produces.
func (k *Kind) IsValid() bool {
	switch *k {
	case KindAuditResult:
		return true
	default:
		return false
	}
}

// Option configures a Header.
type Option func(*Header)

// WithMetadata sets a single metadata key.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithKind sets the document kind.
func WithKind(kind Kind) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// WithAPIVersion sets the document API version.
func WithAPIVersion(version string) Option {
	return func(h *Header) {
		h.APIVersion = version
	}
}

// New creates a header with the provided options applied.
func New(opts ...Option) *Header {
	s := &Header{
		Metadata: make(map[string]string),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Header is the common document header.
type Header struct {
	// Kind is the type of the document.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the API version of the document.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs describing the collection run.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init resets the header and stamps it with the current UTC time and the
// tool version.
func (h *Header) Init(kind Kind, apiVersion string, version string) {
	h.Kind = kind
	h.APIVersion = apiVersion
	h.Metadata = make(map[string]string)

	h.Metadata[MetaTimestamp] = time.Now().UTC().Format(time.RFC3339)
	if version != "" {
		h.Metadata[MetaVersion] = version
	}
}

// Set stores a metadata value, allocating the map if needed.
// Empty values are ignored.
func (h *Header) Set(key, value string) {
	if value == "" {
		return
	}
	if h.Metadata == nil {
		h.Metadata = make(map[string]string)
	}
	h.Metadata[key] = value
}
