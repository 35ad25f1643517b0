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

// Command specmc is the effect-inference CLI: `specmc infer <module.yaml>`
// loads a module, computes the read/update effect of every definition, and
// prints the result.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/specmc-lang/specmc/cli"
	cliUtil "github.com/specmc-lang/specmc/cli/util"
)

// program and version are set at compile time via -ldflags.
var (
	program = "specmc"
	version = "unknown"
)

func main() {
	logf := func(format string, v ...interface{}) {
		log.Printf("specmc: "+format, v...)
	}

	data := &cliUtil.Data{
		Program: cliUtil.SafeProgram(program),
		Version: version,
		Logf:    logf,
		Args:    os.Args,
	}

	err := cli.CLI(context.Background(), data)
	if err == nil {
		return
	}

	switch e := err.(type) {
	case *cliUtil.CliParseError:
		fmt.Fprintln(os.Stderr, e.Error())
		os.Exit(e.Status)
	case *cliUtil.Error:
		fmt.Fprintln(os.Stderr, e.Error())
		os.Exit(e.Status)
	default:
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
