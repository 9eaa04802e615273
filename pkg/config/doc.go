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

// Package config loads the hostaudit configuration file.
//
// The file is YAML. Every field is optional; missing fields take the values
// in pkg/defaults. Unknown fields are rejected.
//
//	software:
//	  apachectl: /usr/sbin/apachectl
//	  php: php7.4
//	  zabbixConfig: /etc/zabbix/zabbix_agentd.conf
//	  catalog:
//	    debian:
//	      - name: HAProxy
//	        packages: [haproxy]
//	platform:
//	  family: debian
//	  distribution: ubuntu
//	users:
//	  passwdFile: /etc/passwd
//	  shadowFile: /etc/shadow
//	services:
//	  units: [ssh.service, cron.service]
//	collection:
//	  parallelism: 2
//	  commandTimeout: 30s
//
// Catalog entries are appended to the built-in known-software table of the
// named family. An entry whose name already exists is ignored.
package config
