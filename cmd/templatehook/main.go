// Copyright 2025 Kadir Pekel
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

// Command templatehook operates instance template overrides outside a
// host agent process.
//
// Usage:
//
//	templatehook inspect templates/task-42.yaml
//	templatehook apply --instance-id task-42 --templates-dir ./templates
//	templatehook apply --config settings.yaml
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/kadirpekel/templatehook/pkg/config"
)

// CLI defines the command-line interface.
type CLI struct {
	Version VersionCmd `cmd:"" help:"Show version information."`
	Inspect InspectCmd `cmd:"" help:"Inspect an override file and report the matched key path."`
	Apply   ApplyCmd   `cmd:"" help:"Apply an instance override to a fresh agent and print the result."`

	Config    string `short:"c" help:"Path to settings file." type:"path"`
	LogLevel  string `help:"Log level (debug, info, warn, error)." default:"info"`
	LogFile   string `help:"Log file path (empty = stderr)."`
	LogFormat string `help:"Log format (simple, verbose)." default:"simple"`
}

func main() {
	if err := config.LoadEnvFiles(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("templatehook"),
		kong.Description("Per-instance system template overrides for agents."),
		kong.UsageOnError(),
	)

	cleanup, err := initLogger(cli.LogLevel, cli.LogFile, cli.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if cleanup != nil {
		defer cleanup()
	}

	err = ctx.Run(cli)
	ctx.FatalIfErrorf(err)
}
