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

// newRedHatStrategy builds the RedHat strategy. The Zabbix agent is matched
// but its servers are not read.
func newRedHatStrategy(opts Options) Strategy {
	return &packageStrategy{
		opts:   opts,
		family: platform.FamilyRedHat,
		lister: packageLister{
			name:  defaults.RpmBinary,
			args:  []string{"-qa", "--qf", defaults.RpmQueryFormat},
			parse: ParseRpmList,
		},
		known:     redhatKnownSoftware.With(opts.Extra),
		enrichers: []enricher{apacheEnricher, phpEnricher},
	}
}

// redhatKnownSoftware is the RedHat family table. Names are independent of
// the Debian table; "nginx" and "ntpd" keep their lowercase spelling.
var redhatKnownSoftware = KnownSoftware{
	{Name: "Ansible", Packages: []string{"ansible"}},
	{Name: NameApache2, Packages: []string{"httpd"}},
	{Name: "ClamAV", Packages: []string{"clamav"}},
	{Name: "Csync2", Packages: []string{"csync2"}},
	{Name: "Memcached", Packages: []string{"memcached"}},
	{Name: "Mercurial", Packages: []string{"mercurial"}},
	{Name: "Munin", Packages: []string{"munin"}},
	{Name: "MySQL (server)", Packages: []string{"mysql-server"}},
	{Name: "Nagios", Packages: []string{"nagios-common"}},
	{Name: "nginx", Packages: []string{"nginx"}},
	{Name: "ntpd", Packages: []string{"ntp"}},
	{Name: "OpenSSH (server)", Packages: []string{"openssh-server"}},
	{Name: "Perl", Packages: []string{"perl"}},
	{Name: NamePHP, Packages: []string{"php"}},
	{Name: "Postfix", Packages: []string{"postfix"}},
	{Name: "Python 2", Packages: []string{"python"}},
	{Name: "Rsyslog", Packages: []string{"rsyslog"}},
	{Name: "Samba (client)", Packages: []string{"samba-client"}},
	{Name: "Sphinx", Packages: []string{"sphinx"}},
	{Name: "SQLite", Packages: []string{"sqlite"}},
	{Name: "SQLite2", Packages: []string{"sqlite2"}},
	{Name: "Subversion", Packages: []string{"subversion"}},
	{Name: "vsftpd", Packages: []string{"vsftpd"}},
	{Name: "xinetd", Packages: []string{"xinetd"}},
	{Name: NameZabbixAgent, Packages: []string{"zabbix-agent"}},
}
