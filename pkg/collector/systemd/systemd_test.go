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
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/hostaudit/pkg/defaults"
	"github.com/NVIDIA/hostaudit/pkg/errors"
)

type fakeConn struct {
	units  map[string]map[string]any
	err    error
	closed bool
}

func (f *fakeConn) GetUnitPropertiesContext(_ context.Context, unit string) (map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	if props, ok := f.units[unit]; ok {
		return props, nil
	}
	return map[string]any{
		propLoadState:     "not-found",
		propActiveState:   "inactive",
		propSubState:      "dead",
		propUnitFileState: "",
	}, nil
}

func (f *fakeConn) Close() { f.closed = true }

func withConn(c *fakeConn) func(context.Context) (unitConn, error) {
	return func(context.Context) (unitConn, error) { return c, nil }
}

func TestCollector_Collect(t *testing.T) {
	conn := &fakeConn{units: map[string]map[string]any{
		"ssh.service": {
			propLoadState:     "loaded",
			propActiveState:   "active",
			propSubState:      "running",
			propUnitFileState: "enabled",
			"MainPID":         uint32(901),
		},
	}}
	c := &Collector{
		Units:   []string{"ssh.service", "telnet.service"},
		connect: withConn(conn),
	}

	facts, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.True(t, conn.closed)

	states, ok := facts[FactKey].(map[string]*UnitState)
	require.True(t, ok)
	assert.Equal(t, &UnitState{LoadState: "loaded", ActiveState: "active", SubState: "running", UnitFileState: "enabled"}, states["ssh.service"])
	assert.Equal(t, "not-found", states["telnet.service"].LoadState)
}

func TestCollector_DefaultUnits(t *testing.T) {
	c := &Collector{connect: withConn(&fakeConn{})}

	facts, err := c.Collect(context.Background())
	require.NoError(t, err)

	states := facts[FactKey].(map[string]*UnitState)
	for _, unit := range defaults.SystemdUnits {
		assert.Contains(t, states, unit)
	}
}

func TestCollector_ConnectFailure(t *testing.T) {
	c := &Collector{
		connect: func(context.Context) (unitConn, error) {
			return nil, stderrors.New("dial unix /run/dbus/system_bus_socket: connect: no such file or directory")
		},
	}

	_, err := c.Collect(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUnavailable, errors.CodeOf(err))
}

func TestCollector_PropertyFailure(t *testing.T) {
	conn := &fakeConn{err: stderrors.New("access denied")}
	c := &Collector{Units: []string{"ssh.service"}, connect: withConn(conn)}

	_, err := c.Collect(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ssh.service")
	assert.True(t, conn.closed)
}

func TestStringProp(t *testing.T) {
	props := map[string]any{"a": "x", "b": 3, "c": nil}
	assert.Equal(t, "x", stringProp(props, "a"))
	assert.Equal(t, "3", stringProp(props, "b"))
	assert.Empty(t, stringProp(props, "c"))
	assert.Empty(t, stringProp(props, "missing"))
}

func TestCollector_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	c := &Collector{Units: []string{"ssh.service"}}
	facts, err := c.Collect(context.Background())
	if err != nil {
		assert.Equal(t, errors.ErrCodeUnavailable, errors.CodeOf(err))
		t.Logf("systemd unavailable: %v", err)
		return
	}
	assert.Contains(t, facts[FactKey], "ssh.service")
}
