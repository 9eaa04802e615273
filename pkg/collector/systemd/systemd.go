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

package systemd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/coreos/go-systemd/v22/dbus"

	"github.com/NVIDIA/hostaudit/pkg/defaults"
	"github.com/NVIDIA/hostaudit/pkg/errors"
)

// FactKey is the ansible_facts key the unit states are returned under.
const FactKey = "audit_services"

// ModuleName is the Ansible module name of the services collector.
const ModuleName = "audit-services"

// Unit properties read for every unit.
const (
	propLoadState     = "LoadState"
	propActiveState   = "ActiveState"
	propSubState      = "SubState"
	propUnitFileState = "UnitFileState"
)

// UnitState is the reported state of one unit.
type UnitState struct {
	LoadState     string `json:"load_state" yaml:"load_state"`
	ActiveState   string `json:"active_state" yaml:"active_state"`
	SubState      string `json:"sub_state" yaml:"sub_state"`
	UnitFileState string `json:"unit_file_state" yaml:"unit_file_state"`
}

// unitConn is the subset of the systemd D-Bus connection the collector uses.
type unitConn interface {
	GetUnitPropertiesContext(ctx context.Context, unit string) (map[string]any, error)
	Close()
}

// Collector gathers the state of systemd units.
type Collector struct {
	Units []string

	connect func(ctx context.Context) (unitConn, error)
}

func connectSystemd(ctx context.Context) (unitConn, error) {
	return dbus.NewSystemdConnectionContext(ctx)
}

// Collect reads each unit's state and returns the states under FactKey.
func (s *Collector) Collect(ctx context.Context) (map[string]any, error) {
	slog.Info("collecting systemd unit states")

	units := s.Units
	if len(units) == 0 {
		units = defaults.SystemdUnits
	}

	connect := s.connect
	if connect == nil {
		connect = connectSystemd
	}

	conn, err := connect(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "failed to connect to systemd", err)
	}
	defer conn.Close()

	states := make(map[string]*UnitState, len(units))
	for _, unit := range units {
		props, err := conn.GetUnitPropertiesContext(ctx, unit)
		if err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeInternal,
				fmt.Sprintf("failed to get properties of unit %s", unit), err,
				map[string]any{"unit": unit})
		}

		state := &UnitState{
			LoadState:     stringProp(props, propLoadState),
			ActiveState:   stringProp(props, propActiveState),
			SubState:      stringProp(props, propSubState),
			UnitFileState: stringProp(props, propUnitFileState),
		}
		slog.Debug("unit state",
			slog.String("unit", unit),
			slog.String("load", state.LoadState),
			slog.String("active", state.ActiveState))

		states[unit] = state
	}

	return map[string]any{FactKey: states}, nil
}

func stringProp(props map[string]any, key string) string {
	v, ok := props[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
