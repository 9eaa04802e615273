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

package defaults

// Inspection binaries. Config may point these at absolute paths.
const (
	DpkgBinary      = "dpkg"
	RpmBinary       = "rpm"
	ApacheCtlBinary = "apachectl"
	PHPBinary       = "php"
	IPBinary        = "ip"
	SSBinary        = "ss"
	DFBinary        = "df"
	UnameBinary     = "uname"
)

// RpmQueryFormat emits one tab separated record per installed package.
const RpmQueryFormat = "%{name}\t%{version}\t%{arch}\t%{summary}\n"

// System file locations.
const (
	ZabbixAgentConfig = "/etc/zabbix/zabbix_agentd.conf"
	PasswdFile        = "/etc/passwd"
	ShadowFile        = "/etc/shadow"
)

// FileMaxSize bounds any configuration or account file read by a collector.
const FileMaxSize = 4 << 20

// SystemdUnits is the default unit list reported by the services module.
var SystemdUnits = []string{
	"ssh.service",
	"sshd.service",
	"cron.service",
	"crond.service",
}

// Parallelism is the default number of modules collected at once by `all`.
const Parallelism = 1
