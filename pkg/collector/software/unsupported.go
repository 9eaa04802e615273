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
	"fmt"

	"github.com/NVIDIA/hostaudit/pkg/errors"
)

// ModuleName is the Ansible module name of the software collector.
const ModuleName = "audit-software"

// unsupportedStrategy is selected for families without a strategy.
type unsupportedStrategy struct {
	platform string
}

func (s *unsupportedStrategy) err() error {
	return errors.NewWithContext(errors.ErrCodeUnsupportedPlatform,
		fmt.Sprintf("%s module cannot be used on platform %s", ModuleName, s.platform),
		map[string]any{"platform": s.platform})
}

func (s *unsupportedStrategy) Packages(context.Context) (PackageCatalog, error) {
	return nil, s.err()
}

func (s *unsupportedStrategy) Software(context.Context) (Software, error) {
	return nil, s.err()
}

func (s *unsupportedStrategy) ApacheModules(context.Context) ([]string, error) {
	return nil, s.err()
}

func (s *unsupportedStrategy) PHPModules(context.Context) ([]string, error) {
	return nil, s.err()
}

func (s *unsupportedStrategy) ZabbixServers(context.Context) ([]string, error) {
	return nil, s.err()
}
