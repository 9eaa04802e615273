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

package config

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/NVIDIA/hostaudit/pkg/collector/software"
	"github.com/NVIDIA/hostaudit/pkg/defaults"
	"github.com/NVIDIA/hostaudit/pkg/errors"
	"github.com/NVIDIA/hostaudit/pkg/platform"
)

// Config is the complete hostaudit configuration.
type Config struct {
	Software   SoftwareConfig   `json:"software" yaml:"software"`
	Platform   PlatformConfig   `json:"platform" yaml:"platform"`
	Users      UsersConfig      `json:"users" yaml:"users"`
	Services   ServicesConfig   `json:"services" yaml:"services"`
	Collection CollectionConfig `json:"collection" yaml:"collection"`
}

// SoftwareConfig configures the software inventory.
type SoftwareConfig struct {
	ApacheCtl    string `json:"apachectl,omitempty" yaml:"apachectl,omitempty"`
	PHP          string `json:"php,omitempty" yaml:"php,omitempty"`
	ZabbixConfig string `json:"zabbixConfig,omitempty" yaml:"zabbixConfig,omitempty"`

	// Catalog maps a family name to extra known-software entries.
	Catalog map[string]software.KnownSoftware `json:"catalog,omitempty" yaml:"catalog,omitempty"`
}

// PlatformConfig overrides platform detection.
type PlatformConfig struct {
	Family       string `json:"family,omitempty" yaml:"family,omitempty"`
	Distribution string `json:"distribution,omitempty" yaml:"distribution,omitempty"`
}

// UsersConfig locates the account files.
type UsersConfig struct {
	PasswdFile string `json:"passwdFile,omitempty" yaml:"passwdFile,omitempty"`
	ShadowFile string `json:"shadowFile,omitempty" yaml:"shadowFile,omitempty"`
}

// ServicesConfig lists the systemd units to report.
type ServicesConfig struct {
	Units []string `json:"units,omitempty" yaml:"units,omitempty"`
}

// CollectionConfig controls how modules are run.
type CollectionConfig struct {
	// Parallelism is the number of modules collected at once.
	Parallelism int `json:"parallelism,omitempty" yaml:"parallelism,omitempty"`
	// CommandTimeout bounds each inspection command. Zero means unbounded.
	CommandTimeout time.Duration `json:"commandTimeout,omitempty" yaml:"commandTimeout,omitempty"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.Software.ApacheCtl == "" {
		c.Software.ApacheCtl = defaults.ApacheCtlBinary
	}
	if c.Software.PHP == "" {
		c.Software.PHP = defaults.PHPBinary
	}
	if c.Software.ZabbixConfig == "" {
		c.Software.ZabbixConfig = defaults.ZabbixAgentConfig
	}
	if c.Users.PasswdFile == "" {
		c.Users.PasswdFile = defaults.PasswdFile
	}
	if c.Users.ShadowFile == "" {
		c.Users.ShadowFile = defaults.ShadowFile
	}
	if len(c.Services.Units) == 0 {
		c.Services.Units = append([]string(nil), defaults.SystemdUnits...)
	}
	if c.Collection.Parallelism == 0 {
		c.Collection.Parallelism = defaults.Parallelism
	}
}

// Load reads the file at path. An empty path returns Default.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		code := errors.ErrCodeResourceAccess
		if stderrors.Is(err, fs.ErrNotExist) {
			code = errors.ErrCodeNotFound
		}
		return nil, errors.WrapWithContext(code,
			fmt.Sprintf("failed to open config file %q", path), err,
			map[string]any{"path": path})
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes configuration from r, applies defaults and validates it.
func Parse(r io.Reader) (*Config, error) {
	c := &Config{}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to decode config", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// supportedFamily reports whether name is a canonical family the software
// module has a strategy for.
func supportedFamily(name string) bool {
	f, ok := platform.ParseFamily(name)
	return ok && software.Supported(f)
}

// Validate checks the configuration for values no collector can use.
func (c *Config) Validate() error {
	if c.Platform.Family != "" {
		if !supportedFamily(c.Platform.Family) {
			return invalid("platform.family: unknown family %q (supported: %s)",
				c.Platform.Family, familyNames())
		}
	}

	for name, table := range c.Software.Catalog {
		if !supportedFamily(name) {
			return invalid("software.catalog: unknown family %q (supported: %s)", name, familyNames())
		}
		if err := table.Validate(); err != nil {
			return invalid("software.catalog.%s: %v", name, err)
		}
	}

	units := sets.New[string]()
	for _, u := range c.Services.Units {
		if strings.TrimSpace(u) == "" {
			return invalid("services.units: unit name cannot be empty")
		}
		if units.Has(u) {
			return invalid("services.units: duplicate unit %q", u)
		}
		units.Insert(u)
	}

	if c.Collection.Parallelism < 1 {
		return invalid("collection.parallelism: must be at least 1, got %d", c.Collection.Parallelism)
	}
	if c.Collection.CommandTimeout < 0 {
		return invalid("collection.commandTimeout: cannot be negative")
	}
	return nil
}

// Family returns the configured family override, or FamilyUnknown.
func (c *Config) Family() platform.Family {
	f, _ := platform.ParseFamily(c.Platform.Family)
	return f
}

// Catalog returns the catalog extensions keyed by family.
func (c *Config) Catalog() map[platform.Family]software.KnownSoftware {
	out := make(map[platform.Family]software.KnownSoftware, len(c.Software.Catalog))
	for name, table := range c.Software.Catalog {
		if f, ok := platform.ParseFamily(name); ok {
			out[f] = table
		}
	}
	return out
}

func invalid(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidRequest, fmt.Sprintf(format, args...))
}

func familyNames() string {
	names := make([]string, 0, len(platform.Families))
	for _, f := range platform.Families {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}
