// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(geneFilesGuide)
	app.Add(matrixFilesGuide)
	app.Add(presenceFilesGuide)
	app.Add(projectsGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
Genocmp requires several files to read and process genomic data. To reduce the
burden of keeping track of many files, a single project file is used to hold
the reference of all files required in the analysis. This guide explains the
structure of the file, but most of the time, the best and most secure way to
edit or view this file is by using genocmp commands.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# genocmp project files
	dataset	path
	ani	ani-matrix.tab
	ddh	ggdc-matrix.tab
	presence	gene_presence_absence.csv
	trees	trees.tab

The valid file types are:

- Similarity matrices. Defined by the dataset keywords "ani" (average
  nucleotide identity), "aai" (average amino acid identity), and "ddh"
  (digital DNA-DNA hybridization). Each file contains a square matrix of
  pairwise similarities in the form of a tab-delimited file. The recommended
  way to add a matrix is by using the command 'genocmp matrix add'.
- Genome assemblies. Defined by the dataset keyword "assemblies". It is a
  directory with the assemblies of the genomes as FASTA files.
- Gene presence-absence table. Defined by the dataset keyword "presence". A
  comma-delimited file with the genes of the pan-genome.
- Resistance and virulence genes. Defined by the dataset keywords
  "resistance" and "virulence". Tab-delimited files with the genes found in
  each isolate.
- Trees. Defined by the dataset keyword "trees". This file contains one or
  more trees in the form of a tab-delimited file. Trees are added with the
  commands 'genocmp tree upgma', 'genocmp pan tree', or 'genocmp tree add'.
	`,
}

var matrixFilesGuide = &command.Command{
	Usage: "matrix-files",
	Short: "about similarity matrix files",
	Long: `
A similarity matrix file is a tab-delimited file with a square matrix of
pairwise similarities between genomes, usually as a percentage (e.g., the
average nucleotide identity, or the digital DNA-DNA hybridization). The
first row is the header, and the first field of the header is ignored. The
other fields are the names of the genomes. Each additional row starts with
the name of a genome, followed by the similarity values in the order of the
header. Rows and columns can be in different order, but they must have the
same set of genomes.

Here is an example file:

	genome	A	B	C	D
	A	100	90	10	10
	B	90	100	10	10
	C	10	10	100	80
	D	10	10	80	100

Missing values can be indicated with "NA", "-", or an empty field.

As many tools produce values that differ between the two directions of a
comparison (i.e., the value of A against B, is not the same as the value of
B against A), before building a tree, the matrix is made symmetric. By
default, the mean of the two values is used. If one of the values is
missing, the other value is used.

To build a tree, the similarity is transformed into a distance, as the scale
minus the similarity. By default the scale is 100, the maximum possible
percentage. A different scale can be set, or the maximum value of the matrix
can be used instead.
	`,
}

var presenceFilesGuide = &command.Command{
	Usage: "presence-files",
	Short: "about gene presence-absence files",
	Long: `
A gene presence-absence file is a comma-delimited file, as produced by the
pan-genome tools Roary or Panaroo. The first column is the gene (or
orthologous group) identifier, followed by a set of annotation columns, that
are ignored (by default 3 columns). The remaining columns are the genomes. A
non-empty cell indicates that the gene is present in the genome.

Here is an example file:

	Gene,Non-unique Gene name,Annotation,No. isolates,A,B,C
	group_1,,hypothetical protein,3,A_0001,B_0001,C_0001
	group_2,,transposase,1,,B_0002,

Genes are classified as core (present in 99% or more of the genomes), soft
core (95% to 99%), shell (15% to 95%), and cloud (less than 15%).
	`,
}

var geneFilesGuide = &command.Command{
	Usage: "gene-files",
	Short: "about resistance and virulence gene files",
	Long: `
A resistance or virulence gene file is a tab-delimited file with the genes
found in each isolate, as produced by the summary of abricate. The first
column is the isolate name, and each additional column is a gene. A column
called "NUM_FOUND" is ignored.

Here is an example file:

	#FILE	NUM_FOUND	blaTEM-1	tet(A)
	isolate1	2	100.00	99.87
	isolate2	1	.	100.00

A gene is absent if the cell is empty, a dot, or zero. Any other value
indicates that the gene is present.
	`,
}
