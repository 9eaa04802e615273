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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/NVIDIA/hostaudit/pkg/errors"
)

var (
	auditDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hostaudit_audit_duration_seconds",
			Help:    "Time taken to run all requested modules",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60},
		},
	)

	auditTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hostaudit_audit_total",
			Help: "Total number of audits by outcome",
		},
		[]string{"status"}, // success or error
	)

	moduleDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hostaudit_module_duration_seconds",
			Help:    "Time taken by individual modules",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"module"},
	)

	moduleErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hostaudit_module_errors_total",
			Help: "Module failures by error code",
		},
		[]string{"module", "code"},
	)

	factCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hostaudit_facts",
			Help: "Number of top-level facts in the last audit result",
		},
	)
)

func errorCode(err error) string {
	if code := errors.CodeOf(err); code != "" {
		return string(code)
	}
	return string(errors.ErrCodeInternal)
}
