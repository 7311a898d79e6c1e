// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package matrix is a metapackage for commands
// that dealt with genome similarity matrices.
package matrix

import (
	"github.com/js-arias/command"
	"github.com/js-arias/genocmp/cmd/genocmp/matrix/add"
	"github.com/js-arias/genocmp/cmd/genocmp/matrix/cmpcmd"
	"github.com/js-arias/genocmp/cmd/genocmp/matrix/heat"
	"github.com/js-arias/genocmp/cmd/genocmp/matrix/hist"
	"github.com/js-arias/genocmp/cmd/genocmp/matrix/sym"
)

var Command = &command.Command{
	Usage: "matrix <command> [<argument>...]",
	Short: "commands for similarity matrices",
}

func init() {
	Command.Add(add.Command)
	Command.Add(cmpcmd.Command)
	Command.Add(heat.Command)
	Command.Add(hist.Command)
	Command.Add(sym.Command)
}
