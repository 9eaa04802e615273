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
	"context"
	"fmt"
	"sync"

	"github.com/NVIDIA/hostaudit/pkg/errors"
)

// FakeRunner is a scripted Runner for tests. Commands are keyed by their
// CommandLine rendering. Unscripted commands fail as if not installed.
type FakeRunner struct {
	mu       sync.Mutex
	results  map[string]*Result
	errs     map[string]error
	Commands []string
}

// NewFakeRunner creates an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		results: make(map[string]*Result),
		errs:    make(map[string]error),
	}
}

// On scripts the result of a command.
func (f *FakeRunner) On(res *Result, name string, args ...string) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results[CommandLine(name, args...)] = res
	return f
}

// OnStdout scripts a successful command printing stdout.
func (f *FakeRunner) OnStdout(stdout string, name string, args ...string) *FakeRunner {
	return f.On(&Result{Stdout: stdout}, name, args...)
}

// OnError scripts a command that cannot be started.
func (f *FakeRunner) OnError(err error, name string, args ...string) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[CommandLine(name, args...)] = err
	return f
}

// Run implements Runner.
func (f *FakeRunner) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	line := CommandLine(name, args...)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.Commands = append(f.Commands, line)

	if err, ok := f.errs[line]; ok {
		return nil, err
	}
	if res, ok := f.results[line]; ok {
		out := *res
		return &out, nil
	}
	return nil, errors.New(errors.ErrCodeCommandFailed,
		fmt.Sprintf("unable to run %q: executable file not found", line))
}

// Ran reports whether the command was run.
func (f *FakeRunner) Ran(name string, args ...string) bool {
	line := CommandLine(name, args...)
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.Commands {
		if c == line {
			return true
		}
	}
	return false
}
