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

package result

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/v3/host"

	"github.com/NVIDIA/hostaudit/pkg/errors"
	"github.com/NVIDIA/hostaudit/pkg/header"
)

// APIVersion of the AuditResult document.
const APIVersion = "hostaudit.nvidia.com/v1alpha1"

// internalArgPrefix marks arguments Ansible adds to every invocation.
const internalArgPrefix = "_ansible_"

// hostname is replaceable in tests.
var hostname = func() string {
	info, err := host.Info()
	if err == nil && info.Hostname != "" {
		return info.Hostname
	}
	name, _ := os.Hostname()
	return name
}

// Result is the document returned by a module.
type Result struct {
	header.Header `yaml:",inline"`

	Changed      bool           `json:"changed" yaml:"changed"`
	Failed       bool           `json:"failed,omitempty" yaml:"failed,omitempty"`
	Msg          string         `json:"msg,omitempty" yaml:"msg,omitempty"`
	AnsibleFacts map[string]any `json:"ansible_facts,omitempty" yaml:"ansible_facts,omitempty"`
}

// New creates an empty result stamped with a fresh run id, the host name
// and the tool version.
func New(version string) *Result {
	r := &Result{}
	r.Init(header.KindAuditResult, APIVersion, version)
	r.Set(header.MetaRunID, uuid.NewString())
	r.Set(header.MetaHostname, hostname())
	return r
}

// Success returns a result carrying facts.
func Success(version string, facts map[string]any) *Result {
	r := New(version)
	r.AnsibleFacts = facts
	if r.AnsibleFacts == nil {
		r.AnsibleFacts = map[string]any{}
	}
	return r
}

// Failure returns a failed result whose msg is err without error codes.
func Failure(version string, err error) *Result {
	r := New(version)
	r.Failed = true
	r.Msg = errors.UserMessage(err)
	return r
}

// Merge adds facts to the result. Later keys overwrite earlier ones.
func (r *Result) Merge(facts map[string]any) {
	if r.AnsibleFacts == nil {
		r.AnsibleFacts = make(map[string]any, len(facts))
	}
	for k, v := range facts {
		r.AnsibleFacts[k] = v
	}
}

// ExitCode is the process status for the result.
func (r *Result) ExitCode() int {
	if r.Failed {
		return 1
	}
	return 0
}

// ReadArgs reads the module arguments file. An empty path means no
// arguments.
func ReadArgs(path string) (map[string]any, error) {
	if path == "" {
		return map[string]any{}, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeResourceAccess,
			fmt.Sprintf("failed to read module arguments %q", path), err,
			map[string]any{"path": path})
	}

	args := map[string]any{}
	if len(strings.TrimSpace(string(b))) == 0 {
		return args, nil
	}
	if err := json.Unmarshal(b, &args); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest,
			"failed to parse module arguments as JSON", err)
	}
	return args, nil
}

// ValidateArgs rejects every argument except Ansible internal ones.
func ValidateArgs(module string, args map[string]any) error {
	var unsupported []string
	for k := range args {
		if strings.HasPrefix(k, internalArgPrefix) {
			continue
		}
		unsupported = append(unsupported, k)
	}
	if len(unsupported) == 0 {
		return nil
	}
	sort.Strings(unsupported)
	slog.Debug("rejecting module arguments", slog.Any("args", unsupported))
	return errors.NewWithContext(errors.ErrCodeInvalidRequest,
		fmt.Sprintf("Unsupported parameters for (%s) module: %s", module, strings.Join(unsupported, ", ")),
		map[string]any{"module": module})
}
