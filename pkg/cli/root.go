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
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/hostaudit/pkg/collector"
	"github.com/NVIDIA/hostaudit/pkg/logging"
	"github.com/NVIDIA/hostaudit/pkg/serializer"
)

const (
	name           = "hostaudit"
	versionDefault = "dev"

	envConfig = "HOSTAUDIT_CONFIG"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to the YAML config file",
		Sources: cli.EnvVars(envConfig),
	}
	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level (debug, info, warn, error); defaults to $LOG_LEVEL or info",
	}
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
		Sources: cli.EnvVars("HOSTAUDIT_OUTPUT"),
	}
	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   fmt.Sprintf("Output format (%v)", serializer.SupportedFormats()),
		Value:   string(serializer.FormatYAML),
		Sources: cli.EnvVars("HOSTAUDIT_FORMAT"),
	}
	metricsFileFlag = &cli.StringFlag{
		Name:    "metrics-file",
		Usage:   "Write collection metrics to this file in Prometheus textfile format",
		Sources: cli.EnvVars("HOSTAUDIT_METRICS_FILE"),
	}
	osFamilyFlag = &cli.StringFlag{
		Name:    "os-family",
		Usage:   "Override the detected OS family (debian, redhat)",
		Sources: cli.EnvVars("HOSTAUDIT_OS_FAMILY"),
	}
	distributionFlag = &cli.StringFlag{
		Name:    "distribution",
		Usage:   "Override the detected distribution (e.g. ubuntu, centos)",
		Sources: cli.EnvVars("HOSTAUDIT_DISTRIBUTION"),
	}
)

// newRootCmd builds the command tree.
func newRootCmd() *cli.Command {
	cmds := make([]*cli.Command, 0, len(collector.Modules)+4)
	for _, m := range collector.Modules {
		cmds = append(cmds, auditCmd(m))
	}
	cmds = append(cmds, allCmd(), moduleCmd(), showCmd(), modulesCmd())

	return &cli.Command{
		Name:    name,
		Usage:   "Collect read-only host facts",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Description: `hostaudit inspects the current host and reports facts about installed
software, network configuration, local accounts, disks, the kernel and
systemd services. It never changes the host.

Every command can also run as an Ansible binary module, see "hostaudit module".`,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			configFlag,
			logLevelFlag,
			outputFlag,
			formatFlag,
			metricsFileFlag,
			osFamilyFlag,
			distributionFlag,
		},
		// Exit codes are resolved by execute so deferred cleanup runs.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			initLogger(cmd.String(logLevelFlag.Name))
			return ctx, nil
		},
		Commands: cmds,
	}
}

// initLogger configures slog once flags are parsed so --log-level takes
// effect before any command executes.
func initLogger(level string) {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date)
}

// Execute runs the CLI, or the Ansible module named by argv[0].
// This is called by main.main().
func Execute() {
	os.Exit(execute())
}

// execute returns the process exit status so deferred cleanup runs
// before the process exits.
func execute() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case <-sigCh:
			fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
			cancel()
		case <-ctx.Done():
		}
	}()

	if m, ok := moduleFromArgv0(os.Args[0]); ok {
		initLogger("")
		var argsPath string
		if len(os.Args) > 1 {
			argsPath = os.Args[1]
		}
		return runModule(ctx, m, argsPath, os.Getenv(envConfig), os.Stdout)
	}

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		return exitCode(err)
	}
	return 0
}

// exitCode prints err and maps it to a process exit status.
func exitCode(err error) int {
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(os.Stderr, msg)
	}
	var coder cli.ExitCoder
	if stderrors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

// moduleFromArgv0 matches the executable name against Ansible module names.
// A trailing extension, as Ansible adds to copied modules, is ignored.
func moduleFromArgv0(argv0 string) (collector.Module, bool) {
	base := filepath.Base(argv0)
	if ext := filepath.Ext(base); ext != "" {
		base = base[:len(base)-len(ext)]
	}
	for _, m := range collector.Modules {
		if m.Name == base {
			return m, true
		}
	}
	return collector.Module{}, false
}
