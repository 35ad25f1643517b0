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

// Package util has some CLI related utility code.
package util

import (
	"strings"

	"github.com/specmc-lang/specmc/util/errwrap"
)

// Error is a status-carrying error: a process exit code plus a message,
// so that main can translate a returned error directly into os.Exit(n)
// without re-inspecting its text.
type Error struct {
	Status  int
	Message string
}

// Error fulfills the error interface of this type.
func (e *Error) Error() string { return e.Message }

// CliParseError marks a failure as having happened during argument
// parsing rather than during inference, so main can use the conventional
// "bad usage" exit code (2) instead of the general failure code (1).
type CliParseError struct {
	parseError
}

// parseError is embedded under an alias so that the embedded field is not
// named Error, which would hide the promoted Error() method and stop
// *CliParseError from satisfying the error interface.
type parseError = Error

// NewCliParseError wraps a go-arg parse failure as a consistent, typed
// CLI error.
func NewCliParseError(err error) *CliParseError {
	return &CliParseError{Error{Status: 2, Message: errwrap.Wrapf(err, "cli parse error").Error()}}
}

// NewError wraps a general execution failure (inference or I/O) with the
// conventional general-failure exit code.
func NewError(err error) *Error {
	return &Error{Status: 1, Message: err.Error()}
}

// Data is the set of values the top-level main function constructs at
// compile/startup time and hands down to CLI. Library code never imports a
// logging package directly; it's always given Logf, the same callback
// injection the rest of this module's ambient stack uses.
type Data struct {
	Program string
	Version string
	Logf    func(format string, v ...interface{})
	Args    []string // os.Args usually
}

// SafeProgram returns the correct program string when given a buggy variant
// that may have a subcommand name appended with a space.
func SafeProgram(program string) string {
	return strings.Split(program, " ")[0]
}
