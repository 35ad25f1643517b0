// Mgmt
// Copyright (C) 2013-2024+ James Shubin and the project contributors
// Written by James Shubin <james@shubin.ca> and the project contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package cli handles all of the core command line parsing. It's the first
// entry point after the real main function.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"

	cliUtil "github.com/specmc-lang/specmc/cli/util"
	"github.com/specmc-lang/specmc/infer"
	"github.com/specmc-lang/specmc/ir"
	"github.com/specmc-lang/specmc/printer"

	"github.com/alexflint/go-arg"
)

// CLI is the entry point for using specmc from the command line.
func CLI(ctx context.Context, data *cliUtil.Data) error {
	if data == nil {
		return fmt.Errorf("this CLI was not run correctly")
	}
	if data.Program == "" || data.Version == "" {
		return fmt.Errorf("program was not compiled correctly")
	}

	args := Args{}
	args.version = data.Version

	config := arg.Config{
		Program: data.Program,
	}
	parser, err := arg.NewParser(config, &args)
	if err != nil {
		return fmt.Errorf("cli config error: %w", err)
	}
	err = parser.Parse(data.Args[1:]) // args[0] is the program name
	if err == arg.ErrHelp {
		parser.WriteHelp(os.Stdout)
		return nil
	}
	if err == arg.ErrVersion {
		fmt.Printf("%s\n", data.Version)
		return nil
	}
	if err != nil {
		return cliUtil.NewCliParseError(err)
	}

	if cmd := args.InferCmd; cmd != nil {
		return cmd.Run(ctx, data)
	}

	parser.WriteHelp(os.Stdout)
	return nil
}

// Args is the top-level CLI parsing structure.
type Args struct {
	InferCmd *InferArgs `arg:"subcommand:infer" help:"infer the read/update effect of every definition in a module"`

	// version is a private handle for our version string.
	version string `arg:"-"` // ignored from parsing
}

// Version returns the version string. Part of the go-arg API contract.
func (obj *Args) Version() string {
	return obj.version
}

// InferArgs is the `specmc infer <path>` subcommand.
type InferArgs struct {
	Path    string `arg:"positional,required" help:"path to a module yaml file"`
	Verbose bool   `arg:"--verbose" help:"show Pure effects explicitly instead of eliding them"`
}

// Run loads the module at Path, runs inference over every definition, and
// prints the result. It returns a *cliUtil.Error on any failure so main
// can translate it into a process exit code.
func (obj *InferArgs) Run(ctx context.Context, data *cliUtil.Data) error {
	raw, err := os.ReadFile(obj.Path)
	if err != nil {
		return cliUtil.NewError(fmt.Errorf("could not read %s: %w", obj.Path, err))
	}

	cfg, err := ir.ParseModuleConfig(raw)
	if err != nil {
		return cliUtil.NewError(err)
	}
	module, err := cfg.ToModule()
	if err != nil {
		return cliUtil.NewError(err)
	}
	if err := module.Validate(); err != nil {
		return cliUtil.NewError(err)
	}

	res := infer.Infer(module)

	fmt.Print(printer.Module(module, res, obj.Verbose))

	if failing := printer.FailingDefs(module, res); len(failing) > 0 {
		var merr *multierror.Error
		for _, name := range failing {
			merr = multierror.Append(merr, fmt.Errorf("definition %s failed to infer", name))
		}
		data.Logf("%s", merr.Error())
		return cliUtil.NewError(merr)
	}

	return nil
}
