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

// Package kernel reports the kernel identification string. It backs the
// "example" module.
package kernel

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/NVIDIA/hostaudit/pkg/defaults"
	"github.com/NVIDIA/hostaudit/pkg/errors"
	"github.com/NVIDIA/hostaudit/pkg/executor"
)

// FactKey is the top-level ansible_facts key holding `uname -a` output.
const FactKey = "uname"

// ModuleName is the Ansible module name of the kernel collector.
const ModuleName = "example"

// Collector runs `uname -a`.
type Collector struct {
	Runner executor.Runner
}

// Collect returns stdout and stderr of `uname -a`, untrimmed.
func (c *Collector) Collect(ctx context.Context) (map[string]any, error) {
	slog.Info("collecting kernel identification")

	runner := c.Runner
	if runner == nil {
		runner = executor.NewRunner()
	}

	res, err := executor.RunChecked(ctx, runner, defaults.UnameBinary, "-a")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCommandFailed,
			fmt.Sprintf("unable to launch %s. Exception message", defaults.UnameBinary), err)
	}

	return map[string]any{FactKey: res.Combined()}, nil
}
