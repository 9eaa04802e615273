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
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/hostaudit/pkg/collector"
	"github.com/NVIDIA/hostaudit/pkg/errors"
	"github.com/NVIDIA/hostaudit/pkg/serializer"
)

type funcCollector func(ctx context.Context) (map[string]any, error)

func (f funcCollector) Collect(ctx context.Context) (map[string]any, error) {
	return f(ctx)
}

func facts(key string, v any) collector.Collector {
	return funcCollector(func(context.Context) (map[string]any, error) {
		return map[string]any{key: v}, nil
	})
}

func failing(code errors.ErrorCode, msg string) collector.Collector {
	return funcCollector(func(context.Context) (map[string]any, error) {
		return nil, errors.New(code, msg)
	})
}

// mockFactory returns the same collector for every module unless overridden.
type mockFactory struct {
	software, network, users, disks, kernel, services collector.Collector
}

func (m *mockFactory) CreateSoftwareCollector() collector.Collector { return m.software }
func (m *mockFactory) CreateNetworkCollector() collector.Collector  { return m.network }
func (m *mockFactory) CreateUsersCollector() collector.Collector    { return m.users }
func (m *mockFactory) CreateDisksCollector() collector.Collector    { return m.disks }
func (m *mockFactory) CreateKernelCollector() collector.Collector   { return m.kernel }
func (m *mockFactory) CreateServicesCollector() collector.Collector { return m.services }

func allOK() *mockFactory {
	return &mockFactory{
		software: facts("audit_software", map[string]any{}),
		network:  facts("audit_network", map[string]any{}),
		users:    facts("audit_users", map[string]any{}),
		disks:    facts("audit_disks", map[string]any{}),
		kernel:   facts("uname", "Linux"),
		services: facts("audit_services", map[string]any{}),
	}
}

func TestAuditor_Audit_AllModules(t *testing.T) {
	before := testutil.ToFloat64(auditTotal.WithLabelValues("success"))

	a := &Auditor{Version: "v1.0.0", Factory: allOK(), Parallelism: 3}
	res, err := a.Audit(context.Background(), collector.Modules...)
	require.NoError(t, err)

	assert.False(t, res.Failed)
	assert.Len(t, res.AnsibleFacts, 6)
	assert.Equal(t, "Linux", res.AnsibleFacts["uname"])
	assert.Equal(t, before+1, testutil.ToFloat64(auditTotal.WithLabelValues("success")))
	assert.Equal(t, float64(6), testutil.ToFloat64(factCount))
}

func TestAuditor_Audit_NoModules(t *testing.T) {
	_, err := (&Auditor{Factory: allOK()}).Audit(context.Background())
	assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
}

func TestAuditor_Audit_FailureIsFatal(t *testing.T) {
	f := allOK()
	f.software = failing(errors.ErrCodeUnsupportedPlatform,
		"audit-software module cannot be used on platform Linux (Arch)")

	before := testutil.ToFloat64(moduleErrors.WithLabelValues("audit-software", "UNSUPPORTED_PLATFORM"))

	res, err := (&Auditor{Factory: f}).Audit(context.Background(), collector.Modules...)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Equal(t, errors.ErrCodeUnsupportedPlatform, errors.CodeOf(err))
	assert.Equal(t, before+1, testutil.ToFloat64(moduleErrors.WithLabelValues("audit-software", "UNSUPPORTED_PLATFORM")))
}

func TestAuditor_Audit_FailureCancelsOthers(t *testing.T) {
	f := allOK()
	f.software = failing(errors.ErrCodeCommandFailed, "dpkg failed")
	f.network = funcCollector(func(ctx context.Context) (map[string]any, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(5 * time.Second):
			return map[string]any{"audit_network": "late"}, nil
		}
	})

	start := time.Now()
	_, err := (&Auditor{Factory: f, Parallelism: 2}).Audit(context.Background(),
		collector.ModuleSoftware, collector.ModuleNetwork)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeCommandFailed, errors.CodeOf(err))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestAuditor_Audit_SequentialByDefault(t *testing.T) {
	var running, peak int32
	track := funcCollector(func(context.Context) (map[string]any, error) {
		n := atomic.AddInt32(&running, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&running, -1)
		return map[string]any{}, nil
	})
	f := &mockFactory{software: track, network: track, users: track, disks: track, kernel: track, services: track}

	_, err := (&Auditor{Factory: f}).Audit(context.Background(), collector.Modules...)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&peak))
}

func TestAuditor_Run(t *testing.T) {
	var buf bytes.Buffer
	a := &Auditor{
		Version:    "dev",
		Factory:    allOK(),
		Serializer: serializer.NewWriter(serializer.FormatJSON, &buf),
	}

	res, err := a.Run(context.Background(), collector.ModuleKernel)
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode())

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, false, doc["changed"])
	assert.Equal(t, map[string]any{"uname": "Linux"}, doc["ansible_facts"])
}

func TestAuditor_Run_Failure(t *testing.T) {
	f := allOK()
	f.kernel = failing(errors.ErrCodeCommandFailed, "unable to launch uname. Exception message: boom")

	var buf bytes.Buffer
	a := &Auditor{Factory: f, Serializer: serializer.NewWriter(serializer.FormatJSON, &buf)}

	res, err := a.Run(context.Background(), collector.ModuleKernel)
	require.NoError(t, err)
	assert.Equal(t, 1, res.ExitCode())

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, true, doc["failed"])
	assert.Equal(t, "unable to launch uname. Exception message: boom", doc["msg"])
	assert.NotContains(t, doc, "ansible_facts")
}

func TestWriteMetrics(t *testing.T) {
	_, err := (&Auditor{Factory: allOK()}).Audit(context.Background(), collector.ModuleDisks)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "hostaudit.prom")
	require.NoError(t, WriteMetrics(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "hostaudit_audit_total")
	assert.Contains(t, string(b), `hostaudit_module_duration_seconds_bucket{module="audit_disks"`)

	err = WriteMetrics(filepath.Join(t.TempDir(), "missing", "x.prom"))
	assert.Equal(t, errors.ErrCodeResourceAccess, errors.CodeOf(err))
}
