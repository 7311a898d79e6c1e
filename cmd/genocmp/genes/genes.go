// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package genes is a metapackage for commands
// that dealt with resistance and virulence genes.
package genes

import (
	"github.com/js-arias/command"
	"github.com/js-arias/genocmp/cmd/genocmp/genes/add"
	"github.com/js-arias/genocmp/cmd/genocmp/genes/net"
)

var Command = &command.Command{
	Usage: "genes <command> [<argument>...]",
	Short: "commands for resistance and virulence genes",
}

func init() {
	Command.Add(add.Command)
	Command.Add(net.Command)
}
