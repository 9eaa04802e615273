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

package network

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/NVIDIA/hostaudit/pkg/defaults"
	"github.com/NVIDIA/hostaudit/pkg/executor"
)

// FactKey is the ansible_facts key the network facts are returned under.
const FactKey = "audit_network"

// ModuleName is the Ansible module name of the network collector.
const ModuleName = "audit-network"

var (
	interfaceHeader = regexp.MustCompile(`^\d+:\s([^:]+):`)
	interfaceAddr   = regexp.MustCompile(`^\s+(inet|inet6)\s([a-z0-9:.]+)/`)
	socketProcess   = regexp.MustCompile(`users:\(\("([^"]*)"`)
)

// Socket is a listening TCP or UDP socket.
type Socket struct {
	Type    string `json:"type" yaml:"type"`
	State   string `json:"state" yaml:"state"`
	Address string `json:"address" yaml:"address"`
	Port    string `json:"port" yaml:"port"`
	Process string `json:"process" yaml:"process"`
}

// Facts is the network state of the host.
type Facts struct {
	Interfaces map[string][]string `json:"interfaces" yaml:"interfaces"`
	Routes     string              `json:"routes" yaml:"routes"`
	Sockets    []Socket            `json:"sockets" yaml:"sockets"`
}

// Collector gathers network facts.
type Collector struct {
	Runner executor.Runner
}

// Collect runs the inspection commands and returns the facts under FactKey.
func (c *Collector) Collect(ctx context.Context) (map[string]any, error) {
	slog.Info("collecting network configuration")

	runner := c.Runner
	if runner == nil {
		runner = executor.NewRunner()
	}

	addrs, err := executor.RunChecked(ctx, runner, defaults.IPBinary, "address", "show")
	if err != nil {
		return nil, err
	}

	routes, err := executor.RunChecked(ctx, runner, defaults.IPBinary, "route", "show")
	if err != nil {
		return nil, err
	}

	sockets, err := executor.RunChecked(ctx, runner, defaults.SSBinary, "-altupn")
	if err != nil {
		return nil, err
	}

	facts := &Facts{
		Interfaces: ParseInterfaces(addrs.Stdout),
		Routes:     strings.Trim(routes.Stdout, "\n"),
		Sockets:    ParseSockets(sockets.Stdout),
	}

	return map[string]any{FactKey: facts}, nil
}

// ParseInterfaces maps interface names to their addresses from
// `ip address show` output. Interfaces without addresses map to an empty
// list. Address lines before the first interface header are ignored.
func ParseInterfaces(out string) map[string][]string {
	interfaces := make(map[string][]string)
	current := ""

	for _, line := range strings.Split(out, "\n") {
		if m := interfaceHeader.FindStringSubmatch(line); m != nil {
			current = m[1]
			interfaces[current] = []string{}
			continue
		}
		if current == "" {
			continue
		}
		if m := interfaceAddr.FindStringSubmatch(line); m != nil {
			interfaces[current] = append(interfaces[current], m[2])
		}
	}

	return interfaces
}

// ParseSockets parses `ss -altupn` output. Only tcp and udp lines are
// considered; lines with too few columns are skipped.
func ParseSockets(out string) []Socket {
	sockets := make([]Socket, 0)

	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "tcp") && !strings.HasPrefix(line, "udp") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 5 {
			slog.Warn("skipping malformed socket line", slog.String("line", line))
			continue
		}

		i := strings.LastIndex(fields[4], ":")
		if i < 0 {
			slog.Warn("skipping socket without port", slog.String("line", line))
			continue
		}

		s := Socket{
			Type:    fields[0],
			State:   strings.ToLower(fields[1]),
			Address: fields[4][:i],
			Port:    fields[4][i+1:],
		}
		if len(fields) > 6 {
			if m := socketProcess.FindStringSubmatch(strings.Join(fields[6:], " ")); m != nil {
				s.Process = m[1]
			}
		}

		sockets = append(sockets, s)
	}

	return sockets
}
