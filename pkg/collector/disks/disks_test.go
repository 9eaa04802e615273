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

package disks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/hostaudit/pkg/defaults"
	"github.com/NVIDIA/hostaudit/pkg/errors"
	"github.com/NVIDIA/hostaudit/pkg/executor"
)

const dfOutput = `Filesystem     Type   Size  Used Avail Use% Mounted on
/dev/sda1      ext4    40G   12G   26G  32% /
tmpfs          tmpfs  2.0G     0  2.0G   0% /dev/shm
`

func TestCollector_Collect(t *testing.T) {
	runner := executor.NewFakeRunner().
		OnStdout(dfOutput, defaults.DFBinary, "--human", "--print-type")

	facts, err := (&Collector{Runner: runner}).Collect(context.Background())
	require.NoError(t, err)

	got, ok := facts[FactKey].(*Facts)
	require.True(t, ok)
	assert.Equal(t, dfOutput[:len(dfOutput)-1], got.FS.Usage)
}

func TestCollector_Failure(t *testing.T) {
	runner := executor.NewFakeRunner().
		On(&executor.Result{ExitCode: 1, Stderr: "df: /mnt/nfs: Stale file handle"}, defaults.DFBinary, "--human", "--print-type")

	_, err := (&Collector{Runner: runner}).Collect(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeCommandFailed, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "Stale file handle")
}
