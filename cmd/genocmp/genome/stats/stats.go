// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package stats implements a command to calculate
// the statistics of a set of genome assemblies.
package stats

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/js-arias/command"
	"github.com/js-arias/genocmp/assembly"
	"github.com/js-arias/genocmp/project"
)

var Command = &command.Command{
	Usage: `stats [--cpu <number>] [-o|--output <file>]
	[--add <project-file>] [<directory>]`,
	Short: "calculate genome assembly statistics",
	Long: `
Command stats reads the genome assemblies in a directory and prints the
statistics of each assembly: its size in base pairs, the GC content, the
number of contigs, the N50, the longest and shortest contigs, and the mean
contig length.

The argument of the command is the directory with the assemblies, as FASTA
files (with the extensions ".fasta", ".fa", or ".fna").

If the flag --add is defined with a project file, the directory will be added
to the project as the assemblies directory. If no directory is given, the
assemblies directory of the project will be used.

By default, all available processors will be used to read the files. Use the
flag --cpu to define a different number of processors.

By default the result will be printed in the standard output. Use the flag
--output, or -o, to define an output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var numCPU int
var projectFile string
var output string

func setFlags(c *command.Command) {
	c.Flags().IntVar(&numCPU, "cpu", runtime.NumCPU(), "")
	c.Flags().StringVar(&projectFile, "add", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) (err error) {
	var p *project.Project
	if projectFile != "" {
		p, err = openProject(projectFile)
		if err != nil {
			return err
		}
	}

	start := time.Now()
	var dir string
	var stats []assembly.Stats
	switch {
	case len(args) > 0:
		dir = args[0]
		stats, err = assembly.Dir(context.Background(), dir, numCPU)
	case p != nil:
		dir = p.Path(project.Assemblies)
		stats, err = p.Assemblies(context.Background(), numCPU)
	default:
		return c.UsageError("expecting assemblies directory")
	}
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Fprintf(c.Stderr(), "WARNING: no assemblies found in %q\n", dir)
	}
	fmt.Fprintf(c.Stderr(), "# %d assemblies read in %v\n", len(stats), time.Since(start))

	var w io.Writer = c.Stdout()
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer func() {
			e := f.Close()
			if e != nil && err == nil {
				err = e
			}
		}()
		w = f
		fmt.Fprintf(w, "# assembly statistics of %q\n", dir)
		fmt.Fprintf(w, "# date: %s\n", time.Now().Format(time.RFC3339))
	}
	if err := assembly.TSV(w, stats); err != nil {
		return err
	}

	if p != nil && p.Path(project.Assemblies) != dir {
		p.Add(project.Assemblies, dir)
		if err := p.Write(); err != nil {
			return err
		}
	}
	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}
