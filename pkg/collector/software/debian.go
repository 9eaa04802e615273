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
	"github.com/NVIDIA/hostaudit/pkg/defaults"
	"github.com/NVIDIA/hostaudit/pkg/platform"
)

func newDebianStrategy(opts Options) Strategy {
	return &packageStrategy{
		opts:   opts,
		family: platform.FamilyDebian,
		lister: packageLister{
			name:  defaults.DpkgBinary,
			args:  []string{"-l"},
			parse: ParseDpkgList,
		},
		known:     debianKnownSoftware.With(opts.Extra),
		enrichers: []enricher{apacheEnricher, phpEnricher, zabbixEnricher},
	}
}

// debianKnownSoftware is the Debian family table. Where several packages are
// listed the earlier one is preferred.
var debianKnownSoftware = KnownSoftware{
	{Name: NameApache2, Packages: []string{"apache2", "apache2-mpm-prefork"}},
	{Name: "Exim4", Packages: []string{"exim4-daemon-light", "exim4-daemon-heavy"}},
	{Name: "Git", Packages: []string{"git"}},
	{Name: "Lsyncd", Packages: []string{"lsyncd"}},
	{Name: "MariaDB (server)", Packages: []string{"mariadb-server"}},
	{Name: "Mercurial", Packages: []string{"mercurial"}},
	{Name: "Minetest (server)", Packages: []string{"minetest-server"}},
	{Name: "MySQL (server)", Packages: []string{"mysql-server"}},
	{Name: "Nginx", Packages: []string{"nginx"}},
	{Name: "OpenSSH (server)", Packages: []string{"openssh-server"}},
	{Name: NamePHP, Packages: []string{"php5", "php7.0"}},
	{Name: "PHP (fpm)", Packages: []string{"php5-fpm", "php7.0-fpm"}},
	{Name: "Python 2", Packages: []string{"python"}},
	{Name: "Python 3", Packages: []string{"python3"}},
	{Name: "Redis (server)", Packages: []string{"redis-server"}},
	{Name: "Rsyslog", Packages: []string{"rsyslog"}},
	{Name: "Ruby", Packages: []string{"ruby"}},
	{Name: "SQLite", Packages: []string{"sqlite3"}},
	{Name: "Supervisor", Packages: []string{"supervisor"}},
	{Name: NameZabbixAgent, Packages: []string{"zabbix-agent"}},
}
