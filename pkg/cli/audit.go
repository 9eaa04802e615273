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
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/hostaudit/pkg/auditor"
	"github.com/NVIDIA/hostaudit/pkg/collector"
	"github.com/NVIDIA/hostaudit/pkg/collector/software"
	"github.com/NVIDIA/hostaudit/pkg/config"
	"github.com/NVIDIA/hostaudit/pkg/errors"
	"github.com/NVIDIA/hostaudit/pkg/platform"
	"github.com/NVIDIA/hostaudit/pkg/serializer"
)

var parallelismFlag = &cli.IntFlag{
	Name:    "parallelism",
	Aliases: []string{"p"},
	Usage:   "Number of modules collected at once (default from config, 1 if unset)",
	Sources: cli.EnvVars("HOSTAUDIT_PARALLELISM"),
}

func auditCmd(m collector.Module) *cli.Command {
	return &cli.Command{
		Name:  m.Command,
		Usage: m.Usage,
		Description: fmt.Sprintf(`Run the %s module and print its facts.

The result is the same document the Ansible module returns, rendered in
the requested format.`, m.Name),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runAudit(ctx, cmd, m)
		},
	}
}

func allCmd() *cli.Command {
	return &cli.Command{
		Name:  "all",
		Usage: "Run every module and merge their facts",
		Description: `Run all modules and print one document with every fact.

The first failing module cancels the rest and no facts are printed.`,
		Flags: []cli.Flag{parallelismFlag},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runAudit(ctx, cmd, collector.Modules...)
		},
	}
}

func runAudit(ctx context.Context, cmd *cli.Command, modules ...collector.Module) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.Load(cmd.String(configFlag.Name))
	if err != nil {
		return err
	}

	factory, err := newFactory(cmd, cfg)
	if err != nil {
		return err
	}

	w, err := serializer.NewFileWriterOrStdout(format, cmd.String(outputFlag.Name))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil {
			slog.Warn("failed to close output", slog.String("error", cerr.Error()))
		}
	}()

	parallelism := cfg.Collection.Parallelism
	if cmd.IsSet(parallelismFlag.Name) {
		parallelism = int(cmd.Int(parallelismFlag.Name))
		if parallelism < 1 {
			return errors.New(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("parallelism must be at least 1, got %d", parallelism))
		}
	}

	a := &auditor.Auditor{
		Version:     version,
		Factory:     factory,
		Serializer:  w,
		Parallelism: parallelism,
	}

	res, err := a.Run(ctx, modules...)
	if err != nil {
		return err
	}

	if err := writeMetrics(cmd); err != nil {
		return err
	}

	if res.Failed {
		return cli.Exit(res.Msg, res.ExitCode())
	}
	return nil
}

// newFactory builds the collector factory from config and platform flags.
func newFactory(cmd *cli.Command, cfg *config.Config) (*collector.DefaultFactory, error) {
	var family platform.Family
	if s := cmd.String(osFamilyFlag.Name); s != "" {
		f, ok := platform.ParseFamily(s)
		if !ok || !software.Supported(f) {
			return nil, errors.New(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("unknown OS family %q (supported: debian, redhat)", s))
		}
		family = f
	}

	return collector.NewDefaultFactory(
		collector.WithConfig(cfg),
		collector.WithPlatformOverrides(family, cmd.String(distributionFlag.Name)),
	), nil
}

func writeMetrics(cmd *cli.Command) error {
	path := cmd.String(metricsFileFlag.Name)
	if path == "" {
		return nil
	}
	return auditor.WriteMetrics(path)
}

// parseOutputFormat reads and validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	return serializer.ParseFormat(cmd.String(formatFlag.Name))
}
