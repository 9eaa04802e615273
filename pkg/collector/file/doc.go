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

// Package file reads and splits the system files inspected by collectors.
//
// A Parser is configured with functional options and then used to read a
// file as lines (GetLines), key/value pairs (GetMap) or delimited records
// (GetRecords). SplitLines applies the same line rules to text that did not
// come from a file, such as captured command output.
//
//	p := file.NewParser(file.WithKVDelimiter("="))
//	conf, err := p.GetMap("/etc/zabbix/zabbix_agentd.conf")
//	if err != nil {
//	    return nil, err // ErrCodeResourceAccess, carries the path
//	}
//	servers := conf["Server"] // last occurrence in the file wins
//
// Read failures are returned as ErrCodeResourceAccess errors that keep the
// underlying *fs.PathError in the chain, so errors.Is(err, fs.ErrNotExist)
// and errors.Is(err, fs.ErrPermission) work for callers.
package file
