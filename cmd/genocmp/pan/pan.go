// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package pan is a metapackage for commands
// that dealt with pan-genomes.
package pan

import (
	"github.com/js-arias/command"
	"github.com/js-arias/genocmp/cmd/genocmp/pan/add"
	"github.com/js-arias/genocmp/cmd/genocmp/pan/curve"
	"github.com/js-arias/genocmp/cmd/genocmp/pan/pantree"
	"github.com/js-arias/genocmp/cmd/genocmp/pan/stats"
)

var Command = &command.Command{
	Usage: "pan <command> [<argument>...]",
	Short: "commands for pan-genomes",
}

func init() {
	Command.Add(add.Command)
	Command.Add(curve.Command)
	Command.Add(pantree.Command)
	Command.Add(stats.Command)
}
