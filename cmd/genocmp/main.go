// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Genocmp is a tool for comparative analysis
// of microbial genomes.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/genocmp/cmd/genocmp/genes"
	"github.com/js-arias/genocmp/cmd/genocmp/genome"
	"github.com/js-arias/genocmp/cmd/genocmp/matrix"
	"github.com/js-arias/genocmp/cmd/genocmp/pan"
	"github.com/js-arias/genocmp/cmd/genocmp/tree"
)

var app = &command.Command{
	Usage: "genocmp <command> [<argument>...]",
	Short: "a tool for comparative analysis of microbial genomes",
}

func init() {
	app.Add(genes.Command)
	app.Add(genome.Command)
	app.Add(matrix.Command)
	app.Add(pan.Command)
	app.Add(tree.Command)
}

func main() {
	app.Main()
}
