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

	"github.com/NVIDIA/hostaudit/pkg/defaults"
	"github.com/NVIDIA/hostaudit/pkg/executor"
	"github.com/NVIDIA/hostaudit/pkg/platform"
)

// Strategy collects software for one OS family.
type Strategy interface {
	// Packages lists installed packages.
	Packages(ctx context.Context) (PackageCatalog, error)
	// Software matches installed packages against the known-software table
	// and enriches the matches.
	Software(ctx context.Context) (Software, error)
	// ApacheModules lists loaded Apache modules.
	ApacheModules(ctx context.Context) ([]string, error)
	// PHPModules lists compiled PHP modules.
	PHPModules(ctx context.Context) ([]string, error)
	// ZabbixServers lists the servers allowed to query the Zabbix agent.
	ZabbixServers(ctx context.Context) ([]string, error)
}

// Options configures a Strategy.
type Options struct {
	Runner       executor.Runner
	ApacheCtl    string
	PHP          string
	ZabbixConfig string
	// Extra entries appended to the family's known-software table.
	Extra KnownSoftware
}

func (o Options) withDefaults() Options {
	if o.Runner == nil {
		o.Runner = executor.NewRunner()
	}
	if o.ApacheCtl == "" {
		o.ApacheCtl = defaults.ApacheCtlBinary
	}
	if o.PHP == "" {
		o.PHP = defaults.PHPBinary
	}
	if o.ZabbixConfig == "" {
		o.ZabbixConfig = defaults.ZabbixAgentConfig
	}
	return o
}

type constructor func(opts Options) Strategy

// strategies maps supported families to their strategy.
var strategies = map[platform.Family]constructor{
	platform.FamilyDebian: newDebianStrategy,
	platform.FamilyRedHat: newRedHatStrategy,
}

// NewStrategy selects the strategy for the platform's family. Unsupported
// families get a strategy whose every call fails.
func NewStrategy(info *platform.Info, opts Options) Strategy {
	if c, ok := strategies[info.Family]; ok {
		return c(opts.withDefaults())
	}
	return &unsupportedStrategy{platform: info.String()}
}

// Supported reports whether the family has a strategy.
func Supported(family platform.Family) bool {
	_, ok := strategies[family]
	return ok
}

// packageLister runs a package manager and parses its output.
type packageLister struct {
	name  string
	args  []string
	parse func(out string) (PackageCatalog, []*ParseError)
}

// enricher attaches extra data to an existing software fact.
type enricher struct {
	software string
	apply    func(ctx context.Context, s Strategy, fact *SoftwareFact) error
}

var (
	apacheEnricher = enricher{
		software: NameApache2,
		apply: func(ctx context.Context, s Strategy, fact *SoftwareFact) error {
			modules, err := s.ApacheModules(ctx)
			if err != nil {
				return err
			}
			fact.Modules = nonNil(modules)
			return nil
		},
	}

	phpEnricher = enricher{
		software: NamePHP,
		apply: func(ctx context.Context, s Strategy, fact *SoftwareFact) error {
			modules, err := s.PHPModules(ctx)
			if err != nil {
				return err
			}
			fact.Modules = nonNil(modules)
			return nil
		},
	}

	zabbixEnricher = enricher{
		software: NameZabbixAgent,
		apply: func(ctx context.Context, s Strategy, fact *SoftwareFact) error {
			servers, err := s.ZabbixServers(ctx)
			if err != nil {
				return err
			}
			// An absent Server directive reports no servers key.
			if servers != nil {
				fact.Servers = servers
			}
			return nil
		},
	}
)

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

// packageStrategy is the Strategy shared by package-manager based families.
// Families differ in their lister, known-software table and enrichers.
type packageStrategy struct {
	opts      Options
	family    platform.Family
	lister    packageLister
	known     KnownSoftware
	enrichers []enricher
}

func (s *packageStrategy) Packages(ctx context.Context) (PackageCatalog, error) {
	res, err := executor.RunChecked(ctx, s.opts.Runner, s.lister.name, s.lister.args...)
	if err != nil {
		return nil, err
	}

	catalog, skipped := s.lister.parse(res.Stdout)
	for _, perr := range skipped {
		slog.Warn("skipping malformed package line",
			slog.String("family", s.family.String()),
			slog.Int("line", perr.Line),
			slog.Any("error", perr.Err()))
	}

	slog.Debug("package catalog built",
		slog.String("family", s.family.String()),
		slog.Int("packages", len(catalog)),
		slog.Int("skipped", len(skipped)))

	return catalog, nil
}

func (s *packageStrategy) Software(ctx context.Context) (Software, error) {
	pkgs, err := s.Packages(ctx)
	if err != nil {
		return nil, err
	}

	software := Match(s.known, pkgs)
	for _, e := range s.enrichers {
		fact, ok := software[e.software]
		if !ok {
			continue
		}
		if err := e.apply(ctx, s, &fact); err != nil {
			return nil, err
		}
		software[e.software] = fact
	}

	slog.Debug("software matched",
		slog.String("family", s.family.String()),
		slog.Int("count", len(software)))

	return software, nil
}

func (s *packageStrategy) ApacheModules(ctx context.Context) ([]string, error) {
	return apacheModules(ctx, s.opts.Runner, s.opts.ApacheCtl)
}

func (s *packageStrategy) PHPModules(ctx context.Context) ([]string, error) {
	return phpModules(ctx, s.opts.Runner, s.opts.PHP)
}

func (s *packageStrategy) ZabbixServers(_ context.Context) ([]string, error) {
	return zabbixServers(s.opts.ZabbixConfig)
}
