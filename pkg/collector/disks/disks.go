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

// Package disks collects filesystem usage as reported by df.
package disks

import (
	"context"
	"log/slog"
	"strings"

	"github.com/NVIDIA/hostaudit/pkg/defaults"
	"github.com/NVIDIA/hostaudit/pkg/executor"
)

// FactKey is the ansible_facts key the disk facts are returned under.
const FactKey = "audit_disks"

// ModuleName is the Ansible module name of the disks collector.
const ModuleName = "audit_disks"

// Usage holds human readable filesystem usage.
type Usage struct {
	Usage string `json:"usage" yaml:"usage"`
}

// Facts is the disk state of the host.
type Facts struct {
	FS Usage `json:"fs" yaml:"fs"`
}

// Collector gathers filesystem usage.
type Collector struct {
	Runner executor.Runner
}

// Collect runs `df --human --print-type` and returns its trimmed output.
func (c *Collector) Collect(ctx context.Context) (map[string]any, error) {
	slog.Info("collecting filesystem usage")

	runner := c.Runner
	if runner == nil {
		runner = executor.NewRunner()
	}

	res, err := executor.RunChecked(ctx, runner, defaults.DFBinary, "--human", "--print-type")
	if err != nil {
		return nil, err
	}

	return map[string]any{
		FactKey: &Facts{FS: Usage{Usage: strings.Trim(res.Stdout, "\n")}},
	}, nil
}
