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

package collector

import (
	"github.com/NVIDIA/hostaudit/pkg/collector/disks"
	"github.com/NVIDIA/hostaudit/pkg/collector/kernel"
	"github.com/NVIDIA/hostaudit/pkg/collector/network"
	"github.com/NVIDIA/hostaudit/pkg/collector/software"
	"github.com/NVIDIA/hostaudit/pkg/collector/systemd"
	"github.com/NVIDIA/hostaudit/pkg/collector/users"
	"github.com/NVIDIA/hostaudit/pkg/config"
	"github.com/NVIDIA/hostaudit/pkg/executor"
	"github.com/NVIDIA/hostaudit/pkg/platform"
)

// Option configures a DefaultFactory.
type Option func(*DefaultFactory)

// WithConfig sets the configuration collectors are built from.
func WithConfig(cfg *config.Config) Option {
	return func(f *DefaultFactory) {
		if cfg != nil {
			f.Config = cfg
		}
	}
}

// WithRunner sets the command runner shared by all collectors.
func WithRunner(r executor.Runner) Option {
	return func(f *DefaultFactory) {
		f.Runner = r
	}
}

// WithDetector sets the platform detector used by the software collector.
func WithDetector(d platform.Detector) Option {
	return func(f *DefaultFactory) {
		f.Detector = d
	}
}

// WithPlatformOverrides sets the family and distribution used instead of
// the detected ones. Empty values keep detection.
func WithPlatformOverrides(family platform.Family, distribution string) Option {
	return func(f *DefaultFactory) {
		f.Family = family
		f.Distribution = distribution
	}
}

// DefaultFactory creates collectors with production dependencies.
type DefaultFactory struct {
	Config   *config.Config
	Runner   executor.Runner
	Detector platform.Detector

	Family       platform.Family
	Distribution string
}

// NewDefaultFactory creates a factory with default settings. Configured
// platform overrides apply unless WithPlatformOverrides sets others.
func NewDefaultFactory(opts ...Option) *DefaultFactory {
	f := &DefaultFactory{
		Config: config.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.Family == platform.FamilyUnknown {
		f.Family = f.Config.Family()
	}
	if f.Distribution == "" {
		f.Distribution = f.Config.Platform.Distribution
	}
	if f.Runner == nil {
		f.Runner = executor.NewRunner(executor.WithTimeout(f.Config.Collection.CommandTimeout))
	}
	if f.Detector == nil {
		f.Detector = platform.NewDetector()
	}
	return f
}

// CreateSoftwareCollector creates the software inventory collector.
func (f *DefaultFactory) CreateSoftwareCollector() Collector {
	return &software.Collector{
		Runner:       f.Runner,
		Detector:     f.Detector,
		Family:       f.Family,
		Distribution: f.Distribution,
		ApacheCtl:    f.Config.Software.ApacheCtl,
		PHP:          f.Config.Software.PHP,
		ZabbixConfig: f.Config.Software.ZabbixConfig,
		Catalog:      f.Config.Catalog(),
	}
}

// CreateNetworkCollector creates the network collector.
func (f *DefaultFactory) CreateNetworkCollector() Collector {
	return &network.Collector{Runner: f.Runner}
}

// CreateUsersCollector creates the local accounts collector.
func (f *DefaultFactory) CreateUsersCollector() Collector {
	return &users.Collector{
		PasswdFile: f.Config.Users.PasswdFile,
		ShadowFile: f.Config.Users.ShadowFile,
	}
}

// CreateDisksCollector creates the filesystem usage collector.
func (f *DefaultFactory) CreateDisksCollector() Collector {
	return &disks.Collector{Runner: f.Runner}
}

// CreateKernelCollector creates the uname collector.
func (f *DefaultFactory) CreateKernelCollector() Collector {
	return &kernel.Collector{Runner: f.Runner}
}

// CreateServicesCollector creates the systemd unit collector.
func (f *DefaultFactory) CreateServicesCollector() Collector {
	return &systemd.Collector{Units: f.Config.Services.Units}
}
