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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/hostaudit/pkg/collector/kernel"
	"github.com/NVIDIA/hostaudit/pkg/collector/software"
	"github.com/NVIDIA/hostaudit/pkg/collector/systemd"
	"github.com/NVIDIA/hostaudit/pkg/collector/users"
	"github.com/NVIDIA/hostaudit/pkg/config"
	"github.com/NVIDIA/hostaudit/pkg/defaults"
	"github.com/NVIDIA/hostaudit/pkg/errors"
	"github.com/NVIDIA/hostaudit/pkg/executor"
	"github.com/NVIDIA/hostaudit/pkg/platform"
)

func TestNewDefaultFactory_Defaults(t *testing.T) {
	f := NewDefaultFactory()
	assert.NotNil(t, f.Config)
	assert.NotNil(t, f.Runner)
	assert.NotNil(t, f.Detector)
	assert.Equal(t, platform.FamilyUnknown, f.Family)
}

func TestNewDefaultFactory_ConfigOverrides(t *testing.T) {
	cfg := config.Default()
	cfg.Platform.Family = "redhat"
	cfg.Platform.Distribution = "centos"

	f := NewDefaultFactory(WithConfig(cfg))
	assert.Equal(t, platform.FamilyRedHat, f.Family)
	assert.Equal(t, "centos", f.Distribution)

	f = NewDefaultFactory(WithConfig(cfg), WithPlatformOverrides(platform.FamilyDebian, "ubuntu"))
	assert.Equal(t, platform.FamilyDebian, f.Family)
	assert.Equal(t, "ubuntu", f.Distribution)
}

func TestDefaultFactory_CreateSoftwareCollector(t *testing.T) {
	cfg := config.Default()
	cfg.Software.PHP = "php8.1"
	cfg.Software.Catalog = map[string]software.KnownSoftware{
		"debian": {{Name: "HAProxy", Packages: []string{"haproxy"}}},
	}
	runner := executor.NewFakeRunner()

	col := NewDefaultFactory(WithConfig(cfg), WithRunner(runner)).CreateSoftwareCollector()

	sc, ok := col.(*software.Collector)
	require.True(t, ok)
	assert.Same(t, runner, sc.Runner)
	assert.Equal(t, "php8.1", sc.PHP)
	assert.Len(t, sc.Catalog[platform.FamilyDebian], 1)
}

func TestDefaultFactory_CreateServicesCollector(t *testing.T) {
	cfg := config.Default()
	cfg.Services.Units = []string{"test.service"}

	col := NewDefaultFactory(WithConfig(cfg)).CreateServicesCollector()

	sc, ok := col.(*systemd.Collector)
	require.True(t, ok)
	assert.Equal(t, []string{"test.service"}, sc.Units)
}

func TestDefaultFactory_CreateUsersCollector(t *testing.T) {
	col := NewDefaultFactory().CreateUsersCollector()
	uc, ok := col.(*users.Collector)
	require.True(t, ok)
	assert.Equal(t, defaults.PasswdFile, uc.PasswdFile)
}

func TestCreate_AllModules(t *testing.T) {
	f := NewDefaultFactory(WithRunner(executor.NewFakeRunner()))
	for _, m := range Modules {
		t.Run(m.Name, func(t *testing.T) {
			c, err := Create(f, m)
			require.NoError(t, err)
			assert.NotNil(t, c)
		})
	}

	_, err := Create(f, Module{Name: "audit-nothing"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNotFound, errors.CodeOf(err))
}

func TestCreate_KernelUsesRunner(t *testing.T) {
	runner := executor.NewFakeRunner().OnStdout("Linux\n", defaults.UnameBinary, "-a")
	c, err := Create(NewDefaultFactory(WithRunner(runner)), ModuleKernel)
	require.NoError(t, err)

	facts, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Linux\n", facts[kernel.FactKey])
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want Module
		ok   bool
	}{
		{"audit-software", ModuleSoftware, true},
		{"software", ModuleSoftware, true},
		{"audit_disks", ModuleDisks, true},
		{"example", ModuleKernel, true},
		{"kernel", ModuleKernel, true},
		{"audit-services", ModuleServices, true},
		{"audit-disks", Module{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModuleNames(t *testing.T) {
	assert.Equal(t, []string{
		"audit-network", "audit-services", "audit-software", "audit-users", "audit_disks", "example",
	}, ModuleNames())
}
