// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package genome is a metapackage for commands
// that dealt with genome assemblies.
package genome

import (
	"github.com/js-arias/command"
	"github.com/js-arias/genocmp/cmd/genocmp/genome/stats"
)

var Command = &command.Command{
	Usage: "genome <command> [<argument>...]",
	Short: "commands for genome assemblies",
}

func init() {
	Command.Add(stats.Command)
}
