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

package result

import (
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/hostaudit/pkg/errors"
	"github.com/NVIDIA/hostaudit/pkg/header"
)

func init() {
	hostname = func() string { return "test-host" }
}

func TestNew(t *testing.T) {
	r := New("v1.2.3")

	assert.Equal(t, header.KindAuditResult, r.Kind)
	assert.Equal(t, APIVersion, r.APIVersion)
	assert.Equal(t, "v1.2.3", r.Metadata[header.MetaVersion])
	assert.Equal(t, "test-host", r.Metadata[header.MetaHostname])
	assert.NotEmpty(t, r.Metadata[header.MetaTimestamp])

	_, err := uuid.Parse(r.Metadata[header.MetaRunID])
	assert.NoError(t, err)

	assert.NotEqual(t, r.Metadata[header.MetaRunID], New("").Metadata[header.MetaRunID])
}

func TestSuccess_JSON(t *testing.T) {
	r := Success("dev", map[string]any{"uname": "Linux"})

	b, err := json.Marshal(r)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.Equal(t, false, doc["changed"])
	assert.NotContains(t, doc, "failed")
	assert.NotContains(t, doc, "msg")
	assert.Equal(t, map[string]any{"uname": "Linux"}, doc["ansible_facts"])
	assert.Equal(t, "AuditResult", doc["kind"])
	assert.Equal(t, 0, r.ExitCode())
}

func TestSuccess_NilFacts(t *testing.T) {
	assert.NotNil(t, Success("", nil).AnsibleFacts)
}

func TestFailure(t *testing.T) {
	err := errors.Wrap(errors.ErrCodeCommandFailed, "unable to launch uname. Exception message",
		stderrors.New("exit status 1"))

	r := Failure("dev", err)

	assert.True(t, r.Failed)
	assert.False(t, r.Changed)
	assert.Equal(t, "unable to launch uname. Exception message: exit status 1", r.Msg)
	assert.Nil(t, r.AnsibleFacts)
	assert.Equal(t, 1, r.ExitCode())

	b, jerr := json.Marshal(r)
	require.NoError(t, jerr)
	assert.NotContains(t, string(b), "ansible_facts")
	assert.Contains(t, string(b), `"failed":true`)
}

func TestMerge(t *testing.T) {
	r := New("")
	r.Merge(map[string]any{"a": 1})
	r.Merge(map[string]any{"b": 2, "a": 3})
	assert.Equal(t, map[string]any{"a": 3, "b": 2}, r.AnsibleFacts)
}

func TestReadArgs(t *testing.T) {
	dir := t.TempDir()

	args, err := ReadArgs("")
	require.NoError(t, err)
	assert.Empty(t, args)

	path := filepath.Join(dir, "args")
	require.NoError(t, os.WriteFile(path, []byte(`{"_ansible_check_mode": false, "foo": 1}`), 0o600))
	args, err = ReadArgs(path)
	require.NoError(t, err)
	assert.Len(t, args, 2)

	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(empty, []byte("\n"), 0o600))
	args, err = ReadArgs(empty)
	require.NoError(t, err)
	assert.Empty(t, args)

	bad := filepath.Join(dir, "bad")
	require.NoError(t, os.WriteFile(bad, []byte("foo=bar"), 0o600))
	_, err = ReadArgs(bad)
	assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))

	_, err = ReadArgs(filepath.Join(dir, "missing"))
	assert.Equal(t, errors.ErrCodeResourceAccess, errors.CodeOf(err))
}

func TestValidateArgs(t *testing.T) {
	assert.NoError(t, ValidateArgs("audit-software", nil))
	assert.NoError(t, ValidateArgs("audit-software", map[string]any{
		"_ansible_check_mode": false,
		"_ansible_verbosity":  0,
	}))

	err := ValidateArgs("audit-software", map[string]any{
		"_ansible_debug": false,
		"zeta":           1,
		"alpha":          "x",
	})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
	assert.Equal(t, "Unsupported parameters for (audit-software) module: alpha, zeta", errors.UserMessage(err))
}
