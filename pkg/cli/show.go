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

package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/hostaudit/pkg/collector"
	"github.com/NVIDIA/hostaudit/pkg/errors"
	"github.com/NVIDIA/hostaudit/pkg/header"
	"github.com/NVIDIA/hostaudit/pkg/result"
	"github.com/NVIDIA/hostaudit/pkg/serializer"
)

func showCmd() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Render a previously saved result",
		Description: `Load a result saved with --output (JSON or YAML, detected from the file
extension) and print it in the requested format.

Examples:
  hostaudit all -o facts.json
  hostaudit show -f facts.json -t table`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Required: true,
				Usage:    "Path to a saved result",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			res, err := serializer.FromFile[result.Result](cmd.String("file"))
			if err != nil {
				return err
			}
			if res.Kind != header.KindAuditResult {
				return errors.New(errors.ErrCodeInvalidRequest,
					fmt.Sprintf("invalid kind %q, expected %q", res.Kind, header.KindAuditResult))
			}

			w, err := serializer.NewFileWriterOrStdout(format, cmd.String(outputFlag.Name))
			if err != nil {
				return err
			}
			defer w.Close()

			return w.Serialize(ctx, res)
		},
	}
}

func modulesCmd() *cli.Command {
	return &cli.Command{
		Name:  "modules",
		Usage: "List available modules",
		Action: func(_ context.Context, cmd *cli.Command) error {
			out := cmd.Root().Writer
			if out == nil {
				out = os.Stdout
			}
			for _, m := range collector.Modules {
				fmt.Fprintf(out, "%-16s %-10s %s\n", m.Name, m.Command, m.Usage)
			}
			fmt.Fprintf(out, "\nformats: %s\n", strings.Join(serializer.SupportedFormats(), ", "))
			return nil
		},
	}
}
