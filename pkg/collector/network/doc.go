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

// Package network collects network interface addresses, the routing table
// and listening TCP/UDP sockets.
//
// The facts are returned under the audit_network key:
//
//	audit_network:
//	  interfaces:
//	    lo: [127.0.0.1, ::1]
//	    eth0: [10.0.0.12, fe80::5054:ff:fe12:3456]
//	  routes: |-
//	    default via 10.0.0.1 dev eth0
//	    10.0.0.0/24 dev eth0 proto kernel scope link src 10.0.0.12
//	  sockets:
//	    - {type: tcp, state: listen, address: 0.0.0.0, port: "22", process: sshd}
//
// Three commands are run in order: `ip address show`, `ip route show` and
// `ss -altupn`. Any of them failing aborts collection.
package network
