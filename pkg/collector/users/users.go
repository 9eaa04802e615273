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

package users

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/NVIDIA/hostaudit/pkg/collector/file"
	"github.com/NVIDIA/hostaudit/pkg/defaults"
	"github.com/NVIDIA/hostaudit/pkg/errors"
)

// FactKey is the ansible_facts key the accounts are returned under.
const FactKey = "audit_users"

// ModuleName is the Ansible module name of the users collector.
const ModuleName = "audit-users"

var (
	// noLoginShells never allow an interactive login.
	noLoginShells = sets.New("/usr/sbin/nologin", "/sbin/nologin", "/bin/false")

	// lockedPrefixes mark a shadow password that cannot be used.
	lockedPrefixes = []string{"x", "*", "!"}
)

// User is one local account.
type User struct {
	UID      string `json:"uid" yaml:"uid"`
	GID      string `json:"gid" yaml:"gid"`
	Home     string `json:"home" yaml:"home"`
	Shell    string `json:"shell" yaml:"shell"`
	CanLogin bool   `json:"can_login" yaml:"can_login"`
}

// Collector gathers local accounts.
type Collector struct {
	PasswdFile string
	ShadowFile string
}

// Collect reads both account files and returns the accounts under FactKey.
func (c *Collector) Collect(_ context.Context) (map[string]any, error) {
	slog.Info("collecting local user accounts")

	passwdPath := c.PasswdFile
	if passwdPath == "" {
		passwdPath = defaults.PasswdFile
	}
	shadowPath := c.ShadowFile
	if shadowPath == "" {
		shadowPath = defaults.ShadowFile
	}

	parser := file.NewParser()

	passwd, err := parser.GetRecords(passwdPath, ":")
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeResourceAccess,
				fmt.Sprintf("%s does not exist", passwdPath), err)
		}
		return nil, err
	}

	shadow, err := parser.GetRecords(shadowPath, ":")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeResourceAccess,
			fmt.Sprintf("unable to open %s", shadowPath), err)
	}

	users := ParsePasswd(passwd)
	ApplyShadow(users, shadow)

	return map[string]any{FactKey: users}, nil
}

// ParsePasswd builds accounts from passwd records. Records with fewer than
// seven fields are skipped.
func ParsePasswd(records [][]string) map[string]*User {
	users := make(map[string]*User, len(records))
	for _, r := range records {
		if len(r) < 7 {
			slog.Warn("skipping malformed passwd entry", slog.String("user", r[0]))
			continue
		}
		users[r[0]] = &User{
			UID:      r[2],
			GID:      r[3],
			Home:     r[5],
			Shell:    r[6],
			CanLogin: !noLoginShells.Has(r[6]),
		}
	}
	return users
}

// ApplyShadow clears CanLogin for accounts whose password is empty or
// locked. Shadow entries without a passwd account are ignored.
func ApplyShadow(users map[string]*User, records [][]string) {
	for _, r := range records {
		u, ok := users[r[0]]
		if !ok {
			continue
		}
		password := ""
		if len(r) > 1 {
			password = r[1]
		}
		if locked(password) {
			u.CanLogin = false
		}
	}
}

func locked(password string) bool {
	if password == "" {
		return true
	}
	for _, p := range lockedPrefixes {
		if strings.HasPrefix(password, p) {
			return true
		}
	}
	return false
}
