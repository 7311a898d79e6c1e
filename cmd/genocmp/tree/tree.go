// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree is a metapackage for commands
// that dealt with genome trees.
package tree

import (
	"github.com/js-arias/command"
	"github.com/js-arias/genocmp/cmd/genocmp/tree/add"
	"github.com/js-arias/genocmp/cmd/genocmp/tree/draw"
	"github.com/js-arias/genocmp/cmd/genocmp/tree/list"
	"github.com/js-arias/genocmp/cmd/genocmp/tree/remove"
	"github.com/js-arias/genocmp/cmd/genocmp/tree/terms"
	"github.com/js-arias/genocmp/cmd/genocmp/tree/upgma"
)

var Command = &command.Command{
	Usage: "tree <command> [<argument>...]",
	Short: "commands for genome trees",
}

func init() {
	Command.Add(add.Command)
	Command.Add(draw.Command)
	Command.Add(list.Command)
	Command.Add(remove.Command)
	Command.Add(terms.Command)
	Command.Add(upgma.Command)
}
