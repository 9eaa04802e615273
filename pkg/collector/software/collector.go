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

package software

import (
	"context"
	"log/slog"

	"github.com/NVIDIA/hostaudit/pkg/executor"
	"github.com/NVIDIA/hostaudit/pkg/platform"
)

// Collector gathers the software inventory of the current host.
type Collector struct {
	Runner   executor.Runner
	Detector platform.Detector

	// Family and Distribution override detection when set.
	Family       platform.Family
	Distribution string

	ApacheCtl    string
	PHP          string
	ZabbixConfig string

	// Catalog holds extra known-software entries per family.
	Catalog map[platform.Family]KnownSoftware
}

// Collect detects the platform, selects its strategy and returns the
// inventory under FactKey.
func (c *Collector) Collect(ctx context.Context) (map[string]any, error) {
	slog.Info("collecting installed software")

	detector := c.Detector
	if detector == nil {
		detector = platform.NewDetector()
	}
	info, err := detector.Detect(ctx)
	if err != nil {
		return nil, err
	}
	info = info.WithOverrides(c.Family, c.Distribution)

	strategy := NewStrategy(info, Options{
		Runner:       c.Runner,
		ApacheCtl:    c.ApacheCtl,
		PHP:          c.PHP,
		ZabbixConfig: c.ZabbixConfig,
		Extra:        c.Catalog[info.Family],
	})

	software, err := strategy.Software(ctx)
	if err != nil {
		return nil, err
	}

	return map[string]any{FactKey: software}, nil
}
