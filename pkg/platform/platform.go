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

package platform

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/NVIDIA/hostaudit/pkg/errors"
)

// Family is an OS family with a software collection strategy.
type Family string

const (
	FamilyUnknown Family = ""
	FamilyDebian  Family = "debian"
	FamilyRedHat  Family = "redhat"
)

// Families lists every family with a registered strategy.
var Families = []Family{FamilyDebian, FamilyRedHat}

func (f Family) String() string {
	if f == FamilyUnknown {
		return "unknown"
	}
	return string(f)
}

// familyAliases maps gopsutil platform and family identifiers to a Family.
var familyAliases = map[string]Family{
	"debian":    FamilyDebian,
	"ubuntu":    FamilyDebian,
	"linuxmint": FamilyDebian,
	"raspbian":  FamilyDebian,
	"rhel":      FamilyRedHat,
	"redhat":    FamilyRedHat,
	"centos":    FamilyRedHat,
	"fedora":    FamilyRedHat,
	"rocky":     FamilyRedHat,
	"almalinux": FamilyRedHat,
	"oracle":    FamilyRedHat,
	"amazon":    FamilyRedHat,
}

// FamilyOf resolves an identifier such as "ubuntu" or "rhel".
func FamilyOf(id string) Family {
	return familyAliases[strings.ToLower(strings.TrimSpace(id))]
}

// ParseFamily accepts only canonical family names.
func ParseFamily(s string) (Family, bool) {
	for _, f := range Families {
		if string(f) == strings.ToLower(strings.TrimSpace(s)) {
			return f, true
		}
	}
	return FamilyUnknown, false
}

// Info describes the detected host.
type Info struct {
	// Platform is the kernel platform, e.g. "Linux".
	Platform string `json:"platform" yaml:"platform"`
	// Distribution is the human readable distribution name, e.g. "Ubuntu".
	Distribution string `json:"distribution,omitempty" yaml:"distribution,omitempty"`
	// Family selects the software strategy.
	Family Family `json:"family,omitempty" yaml:"family,omitempty"`
	// Version is the distribution release.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	// Hostname of the host.
	Hostname string `json:"hostname,omitempty" yaml:"hostname,omitempty"`
}

// String renders the platform as "Linux (Ubuntu)", or just "Linux" when the
// distribution is unknown.
func (i *Info) String() string {
	if i.Distribution == "" {
		return i.Platform
	}
	return fmt.Sprintf("%s (%s)", i.Platform, i.Distribution)
}

// WithOverrides returns a copy with non-empty overrides applied.
// An overridden distribution also re-derives the family unless one is given.
func (i *Info) WithOverrides(family Family, distribution string) *Info {
	out := *i
	if distribution != "" {
		out.Distribution = title(distribution)
		out.Family = FamilyOf(distribution)
	}
	if family != FamilyUnknown {
		out.Family = family
	}
	return &out
}

// Detector finds the platform of the current host.
type Detector interface {
	Detect(ctx context.Context) (*Info, error)
}

// HostDetector is the gopsutil-backed Detector.
type HostDetector struct {
	info func(ctx context.Context) (*host.InfoStat, error)
}

// NewDetector returns a Detector for the current host.
func NewDetector() *HostDetector {
	return &HostDetector{info: host.InfoWithContext}
}

// Detect reads host information once and maps it to Info.
func (d *HostDetector) Detect(ctx context.Context) (*Info, error) {
	stat, err := d.info(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to detect host platform", err)
	}
	info := FromHostInfo(stat)
	slog.Debug("detected platform",
		slog.String("platform", info.Platform),
		slog.String("distribution", info.Distribution),
		slog.String("family", info.Family.String()))
	return info, nil
}

// FromHostInfo maps gopsutil host information to Info. The family is
// resolved from the platform id first, then from the platform family.
func FromHostInfo(stat *host.InfoStat) *Info {
	goos := stat.OS
	if goos == "" {
		goos = runtime.GOOS
	}

	family := FamilyOf(stat.Platform)
	if family == FamilyUnknown {
		family = FamilyOf(stat.PlatformFamily)
	}

	return &Info{
		Platform:     title(goos),
		Distribution: title(stat.Platform),
		Family:       family,
		Version:      stat.PlatformVersion,
		Hostname:     stat.Hostname,
	}
}

func title(s string) string {
	return cases.Title(language.English).String(strings.TrimSpace(s))
}
