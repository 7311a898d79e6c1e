// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add
// a similarity matrix to a genocmp project.
package add

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/genocmp/matrix"
	"github.com/js-arias/genocmp/project"
)

var Command = &command.Command{
	Usage: "add [--set <dataset>] <project-file> <matrix-file>",
	Short: "add a similarity matrix to a project",
	Long: `
Command add reads a similarity matrix from a file, and if it is a valid
matrix, adds it to a genocmp project.

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

The second argument is the name of the matrix file. See 'genocmp help
matrix-files' for the format of the file.

By default, the matrix will be stored as an average nucleotide identity
matrix ("ani"). Use the flag --set to define a different kind of matrix.
Valid values are "ani", "aai", and "ddh".

If the matrix has missing values, or its values are not symmetric, a warning
will be printed in the standard error.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var setFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&setFlag, "set", string(project.ANI), "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if len(args) < 2 {
		return c.UsageError("expecting matrix file")
	}
	set, err := project.ParseMatrix(setFlag)
	if err != nil {
		return c.UsageError(err.Error())
	}

	p, err := openProject(args[0])
	if err != nil {
		return err
	}

	m, err := readMatrix(args[1])
	if err != nil {
		return err
	}

	var missing, asym int
	for i := 0; i < m.Len(); i++ {
		for j := i + 1; j < m.Len(); j++ {
			a, b := m.At(i, j), m.At(j, i)
			if math.IsNaN(a) || math.IsNaN(b) {
				missing++
				continue
			}
			if math.Abs(a-b) > matrix.Tolerance {
				asym++
			}
		}
	}
	if missing > 0 {
		fmt.Fprintf(c.Stderr(), "WARNING: %d pairs with missing values\n", missing)
	}
	if asym > 0 {
		fmt.Fprintf(c.Stderr(), "WARNING: %d asymmetric pairs\n", asym)
	}

	p.Add(set, args[1])
	if err := p.Write(); err != nil {
		return err
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

func readMatrix(name string) (*matrix.Matrix, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := matrix.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return m, nil
}
