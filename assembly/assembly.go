// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package assembly implements basic statistics
// of genome assemblies
// stored in FASTA files.
package assembly

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"golang.org/x/sync/errgroup"
)

// Stats are the statistics of a genome assembly.
type Stats struct {
	// Name of the isolate
	Name string

	// Size is the total length of the assembly
	// in base pairs.
	Size int

	// GC content,
	// as a percentage.
	GC float64

	// Number of contigs
	Contigs int

	// N50 is the length of the shortest contig
	// such that the contigs of that length or longer
	// cover at least half of the assembly.
	N50 int

	// Longest and shortest contig lengths
	Longest  int
	Shortest int

	// Mean contig length
	Mean float64
}

// Read reads the contigs of an assembly
// from a FASTA file
// and returns its statistics.
func Read(r io.Reader, name string) (Stats, error) {
	t := linear.NewSeq("", nil, alphabet.DNA)
	sc := seqio.NewScanner(fasta.NewReader(r, t))

	var lens []int
	var gc int
	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			continue
		}
		lens = append(lens, s.Len())
		for _, l := range s.Seq {
			switch l {
			case 'G', 'C', 'g', 'c':
				gc++
			}
		}
	}
	if err := sc.Error(); err != nil {
		return Stats{}, fmt.Errorf("assembly %q: %v", name, err)
	}

	return calcStats(name, lens, gc), nil
}

func calcStats(name string, lens []int, gc int) Stats {
	st := Stats{
		Name:    name,
		Contigs: len(lens),
	}
	if len(lens) == 0 {
		return st
	}

	slices.Sort(lens)
	slices.Reverse(lens)
	for _, l := range lens {
		st.Size += l
	}
	st.Longest = lens[0]
	st.Shortest = lens[len(lens)-1]
	st.Mean = float64(st.Size) / float64(len(lens))
	if st.Size > 0 {
		st.GC = float64(gc) / float64(st.Size) * 100
	}

	var cum int
	for _, l := range lens {
		cum += l
		if 2*cum >= st.Size {
			st.N50 = l
			break
		}
	}
	return st
}

// Extensions are the file extensions
// accepted as FASTA files
// when reading a directory.
var Extensions = []string{".fasta", ".fa", ".fna"}

// Dir reads all FASTA files in a directory
// using up to cpu concurrent readers,
// and returns the statistics of each file
// sorted by file name.
// The name of each assembly is the file name
// without the extension.
func Dir(ctx context.Context, dir string, cpu int) ([]Stats, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if !slices.Contains(Extensions, ext) {
			continue
		}
		files = append(files, e.Name())
	}
	slices.Sort(files)

	if cpu < 1 {
		cpu = 1
	}
	stats := make([]Stats, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cpu)
	for i, fn := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			st, err := readFile(filepath.Join(dir, fn))
			if err != nil {
				return err
			}
			stats[i] = st
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

func readFile(name string) (Stats, error) {
	f, err := os.Open(name)
	if err != nil {
		return Stats{}, err
	}
	defer f.Close()

	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	st, err := Read(f, base)
	if err != nil {
		return Stats{}, fmt.Errorf("on file %q: %v", name, err)
	}
	return st, nil
}

var header = []string{
	"isolate",
	"size",
	"gc",
	"contigs",
	"n50",
	"longest",
	"shortest",
	"mean",
}

// TSV writes the statistics of a set of assemblies
// as a TSV file.
func TSV(w io.Writer, stats []Stats) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}
	for _, st := range stats {
		row := []string{
			st.Name,
			strconv.Itoa(st.Size),
			strconv.FormatFloat(st.GC, 'f', 6, 64),
			strconv.Itoa(st.Contigs),
			strconv.Itoa(st.N50),
			strconv.Itoa(st.Longest),
			strconv.Itoa(st.Shortest),
			strconv.FormatFloat(st.Mean, 'f', 6, 64),
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
