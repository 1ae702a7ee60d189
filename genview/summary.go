package main

// RunSummary stores the summary of one genview invocation.
type RunSummary struct {
	// Version stores genview version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// Gene is the 1-based catalog number of the decoded gene.
	Gene int `json:"gene,omitempty"`
	// LocusTag is the RefSeq locus tag of the decoded gene.
	LocusTag string `json:"locusTag,omitempty"`
	// Product is the annotated gene product.
	Product string `json:"product,omitempty"`
	// ReverseStrand is true if the gene was reverse-complemented.
	ReverseStrand bool `json:"reverseStrand,omitempty"`
	// GeneLength is the gene length in nucleotides.
	GeneLength int `json:"geneLength,omitempty"`
	// ProteinLength is the protein length in residues.
	ProteinLength int `json:"proteinLength,omitempty"`
	// Protein is the one-letter protein sequence.
	Protein string `json:"protein,omitempty"`
	// Time is the running time in seconds.
	Time float64 `json:"time"`
}
