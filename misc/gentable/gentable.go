// gentable is a tool to generate the 64-character codon table
// constant of the codon package from the codon to amino acid map in
// the bio package. The table entries are ordered by the base
// ordinals T=0, C=1, A=2, G=3, index = 16*b0 + 4*b1 + b2.
package main

import (
	"fmt"
	"os"

	"github.com/plasmidtools/genview/bio"
)

var alphabet = [...]byte{'T', 'C', 'A', 'G'}

func main() {
	table := make([]byte, 0, 64)
	for _, b0 := range alphabet {
		for _, b1 := range alphabet {
			for _, b2 := range alphabet {
				c := string([]byte{b0, b1, b2})
				aa, ok := bio.GeneticCode[c]
				if !ok {
					fmt.Fprintf(os.Stderr, "codon %s missing from bio.GeneticCode\n", c)
					os.Exit(1)
				}
				table = append(table, aa)
			}
		}
	}

	fmt.Println("package codon")
	fmt.Println()
	fmt.Println("// code is NCBI translation table 1/11 indexed by 16*b0 + 4*b1 + b2")
	fmt.Println("// over the base ordinals T=0, C=1, A=2, G=3.")
	fmt.Printf("const code = %q\n", table)
}
