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

package executor

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	utilexec "k8s.io/utils/exec"

	"github.com/NVIDIA/hostaudit/pkg/errors"
)

// Result holds the captured output of a finished command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Combined returns stdout followed by stderr.
func (r *Result) Combined() string {
	return r.Stdout + r.Stderr
}

// Runner executes an external command and captures its output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (*Result, error)
}

// Option configures an ExecRunner.
type Option func(*ExecRunner)

// WithExec sets the exec implementation. Tests pass a FakeExec here.
func WithExec(e utilexec.Interface) Option {
	return func(r *ExecRunner) {
		r.exec = e
	}
}

// WithTimeout bounds every command. Zero means no bound beyond ctx.
func WithTimeout(d time.Duration) Option {
	return func(r *ExecRunner) {
		r.timeout = d
	}
}

// ExecRunner is the production Runner.
type ExecRunner struct {
	exec    utilexec.Interface
	timeout time.Duration
}

// NewRunner creates an ExecRunner backed by the host's process execution.
func NewRunner(opts ...Option) *ExecRunner {
	r := &ExecRunner{
		exec: utilexec.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes name with args. It returns an error only when the command
// could not be started or the context ended; a non-zero exit is reported
// through Result.ExitCode.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	line := CommandLine(name, args...)
	slog.Debug("running command", slog.String("command", line))

	cmd := r.exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.SetStdout(&stdout)
	cmd.SetStderr(&stderr)

	start := time.Now()
	err := cmd.Run()
	commandDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	res := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err == nil {
		commandExecutions.WithLabelValues(name, statusSuccess).Inc()
		return res, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		commandExecutions.WithLabelValues(name, statusStartError).Inc()
		if stderrors.Is(ctxErr, context.DeadlineExceeded) {
			return nil, errors.Wrap(errors.ErrCodeTimeout, fmt.Sprintf("command %q timed out", line), ctxErr)
		}
		return nil, ctxErr
	}

	var exitErr utilexec.ExitError
	if stderrors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitStatus()
		commandExecutions.WithLabelValues(name, statusExitError).Inc()
		slog.Debug("command exited non-zero",
			slog.String("command", line),
			slog.Int("exitCode", res.ExitCode))
		return res, nil
	}

	commandExecutions.WithLabelValues(name, statusStartError).Inc()
	return nil, errors.WrapWithContext(errors.ErrCodeCommandFailed,
		fmt.Sprintf("unable to run %q", line), err,
		map[string]any{"command": name})
}

// RunChecked runs the command and fails if it exits non-zero.
func RunChecked(ctx context.Context, r Runner, name string, args ...string) (*Result, error) {
	res, err := r.Run(ctx, name, args...)
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		line := CommandLine(name, args...)
		msg := fmt.Sprintf("command %q exited with status %d", line, res.ExitCode)
		if se := strings.TrimSpace(res.Stderr); se != "" {
			msg = fmt.Sprintf("%s: %s", msg, se)
		}
		return nil, errors.NewWithContext(errors.ErrCodeCommandFailed, msg,
			map[string]any{"command": name, "exitCode": res.ExitCode})
	}
	return res, nil
}

// CommandLine renders a command for messages and logs.
func CommandLine(name string, args ...string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
