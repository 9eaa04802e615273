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

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/hostaudit/pkg/auditor"
	"github.com/NVIDIA/hostaudit/pkg/collector"
	"github.com/NVIDIA/hostaudit/pkg/config"
	"github.com/NVIDIA/hostaudit/pkg/errors"
	"github.com/NVIDIA/hostaudit/pkg/result"
	"github.com/NVIDIA/hostaudit/pkg/serializer"
)

func moduleCmd() *cli.Command {
	return &cli.Command{
		Name:      "module",
		Usage:     "Run a module with the Ansible module protocol",
		ArgsUsage: "<module-name> [args-file]",
		Description: `Run one module the way Ansible runs a binary module.

The optional args-file is the JSON arguments file Ansible passes to binary
modules. The modules take no parameters; anything but internal _ansible_
keys is rejected. Exactly one compact JSON document is written to stdout
and the exit status is 1 when the module failed.

Modules: audit-software, audit-network, audit-users, audit_disks, example,
audit-services.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < 1 {
				return errors.New(errors.ErrCodeInvalidRequest, "module name is required")
			}
			m, ok := collector.Lookup(cmd.Args().Get(0))
			if !ok {
				return errors.New(errors.ErrCodeNotFound,
					fmt.Sprintf("unknown module %q", cmd.Args().Get(0)))
			}
			code := runModule(ctx, m, cmd.Args().Get(1), cmd.String(configFlag.Name), cmd.Root().Writer)
			if code != 0 {
				return cli.Exit("", code)
			}
			return nil
		},
	}
}

// runModule executes m with the Ansible protocol and returns the process
// exit status. Every failure, including bad arguments or config, is
// reported as a failed result on out.
func runModule(ctx context.Context, m collector.Module, argsPath, configPath string, out io.Writer) int {
	w := serializer.NewWriter(serializer.FormatJSON, out, serializer.WithCompactJSON())

	fail := func(err error) int {
		slog.Error("module failed", slog.String("module", m.Name), slog.String("error", err.Error()))
		res := result.Failure(version, err)
		if serr := w.Serialize(context.WithoutCancel(ctx), res); serr != nil {
			slog.Error("failed to write result", slog.String("error", serr.Error()))
		}
		return res.ExitCode()
	}

	args, err := result.ReadArgs(argsPath)
	if err != nil {
		return fail(err)
	}
	if err := result.ValidateArgs(m.Name, args); err != nil {
		return fail(err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fail(err)
	}

	a := &auditor.Auditor{
		Version:    version,
		Factory:    collector.NewDefaultFactory(collector.WithConfig(cfg)),
		Serializer: w,
	}

	res, err := a.Run(ctx, m)
	if err != nil {
		slog.Error("failed to write result", slog.String("error", err.Error()))
		return 1
	}
	return res.ExitCode()
}
