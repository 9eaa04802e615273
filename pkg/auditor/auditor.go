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

package auditor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/hostaudit/pkg/collector"
	"github.com/NVIDIA/hostaudit/pkg/defaults"
	"github.com/NVIDIA/hostaudit/pkg/errors"
	"github.com/NVIDIA/hostaudit/pkg/result"
	"github.com/NVIDIA/hostaudit/pkg/serializer"
)

// Auditor runs fact modules on the current host.
type Auditor struct {
	// Version is the tool version stamped in the result header.
	Version string

	// Factory is the collector factory to use. If nil, the default factory is used.
	Factory collector.Factory

	// Serializer is used by Run. If nil, a stdout JSON writer is used.
	Serializer serializer.Serializer

	// Parallelism is the number of modules collected at once.
	Parallelism int
}

// Audit runs modules and merges their facts in module order. If any module
// fails the others are canceled and the error is returned.
func (a *Auditor) Audit(ctx context.Context, modules ...collector.Module) (*result.Result, error) {
	if len(modules) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "no modules requested")
	}
	if a.Factory == nil {
		a.Factory = collector.NewDefaultFactory()
	}
	limit := a.Parallelism
	if limit < 1 {
		limit = defaults.Parallelism
	}

	slog.Debug("starting audit", slog.Int("modules", len(modules)), slog.Int("parallelism", limit))

	start := time.Now()
	defer func() {
		auditDuration.Observe(time.Since(start).Seconds())
	}()

	// Each module writes only its own slot.
	facts := make([]map[string]any, len(modules))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, m := range modules {
		g.Go(func() error {
			moduleStart := time.Now()
			defer func() {
				moduleDuration.WithLabelValues(m.Name).Observe(time.Since(moduleStart).Seconds())
			}()

			c, err := collector.Create(a.Factory, m)
			if err != nil {
				return err
			}

			f, err := c.Collect(gctx)
			if err != nil {
				moduleErrors.WithLabelValues(m.Name, errorCode(err)).Inc()
				slog.Error("module failed",
					slog.String("module", m.Name),
					slog.String("error", err.Error()))
				return err
			}
			facts[i] = f
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		auditTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	res := result.Success(a.Version, nil)
	for _, f := range facts {
		res.Merge(f)
	}

	auditTotal.WithLabelValues("success").Inc()
	factCount.Set(float64(len(res.AnsibleFacts)))

	slog.Debug("audit complete", slog.Int("facts", len(res.AnsibleFacts)))
	return res, nil
}

// Run audits modules and serializes the outcome. A failed audit is written
// as a failed result; the returned result tells the caller how to exit.
// The error is non-nil only when the result could not be written.
func (a *Auditor) Run(ctx context.Context, modules ...collector.Module) (*result.Result, error) {
	res, err := a.Audit(ctx, modules...)
	if err != nil {
		res = result.Failure(a.Version, err)
	}

	if a.Serializer == nil {
		a.Serializer = serializer.NewStdoutWriter(serializer.FormatJSON)
	}

	if err := a.Serializer.Serialize(context.WithoutCancel(ctx), res); err != nil {
		slog.Error("failed to serialize", slog.String("error", err.Error()))
		return res, fmt.Errorf("failed to serialize: %w", err)
	}

	return res, nil
}

// WriteMetrics writes all registered metrics to path in the textfile
// collector format.
func WriteMetrics(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return errors.WrapWithContext(errors.ErrCodeResourceAccess,
			fmt.Sprintf("failed to write metrics to %q", path), err,
			map[string]any{"path": path})
	}
	return nil
}
