/*

Genview decodes protein-coding genes of the Yersinia pestis pPCP1
plasmid (RefSeq NC_005816.1) and displays both the nucleotide and the
protein sequence in a numbered, fixed-width layout.

The basic usage of genview looks like this:

	genview sequence.fasta

, this will list the annotated genes and ask which one to decode.
The selection can be given up front instead:

	genview -gene 5 sequence.fasta

Reverse-strand genes are reverse-complemented before translation. The
decoded gene and protein can be saved as FASTA with -out, a GC-content
chart of the gene can be written with -plot, and a run log of decoded
genes can be kept in a bolt database with -db.

To see all the options run:

	genview -h

*/
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"

	"github.com/plasmidtools/genview/bio"
	"github.com/plasmidtools/genview/codon"
	"github.com/plasmidtools/genview/gcplot"
	"github.com/plasmidtools/genview/genes"
	"github.com/plasmidtools/genview/runlog"
	"github.com/plasmidtools/genview/seqfmt"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("genview")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	// application
	app = kingpin.New("genview", "plasmid gene viewer and translator").Version(version)

	// input
	fastaFileName = app.Arg("fasta", "FASTA file with the plasmid sequence").Default("sequence.fasta").String()

	// selection
	geneNumber = app.Flag("gene", "gene number to decode (1-9); asks interactively if not given").Default("0").Int()

	// charting
	plotF   = app.Flag("plot", "write a per-window GC-content chart of the gene to a file").String()
	gcWidth = app.Flag("window", "GC-content window width in nucleotides").Default("50").Int()

	// output
	outFastaF = app.Flag("out", "write the decoded gene and protein to a FASTA file").String()

	// run log
	dbFileName = app.Flag("db", "bolt database file keeping a log of decoded genes").String()

	// input/output
	outLogF  = app.Flag("log", "write log to a file").String()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")
	jsonF = app.Flag("json", "write json summary to a file").String()
)

// decodeGene extracts one gene from the plasmid record, prints the
// DNA and both protein forms and fills in the run summary.
func decodeGene(rec bio.Sequence, n int, rl *runlog.IO, summary *RunSummary) {
	g, err := genes.Select(n)
	if err != nil {
		log.Fatal(err)
	}

	s, err := g.Extract(rec.Sequence)
	if err != nil {
		log.Fatal(err)
	}
	if g.Reverse {
		log.Infof("Gene %s is on the reverse strand, using the reverse complement", g.LocusTag)
	}

	fmt.Println("\nDNA sequence:")
	fmt.Print(seqfmt.Format(s, seqfmt.DNA))
	fmt.Printf("Length: %d\n\n", len(s))

	peptide1, err := codon.TranslateSequence(s, codon.OneLetter)
	if err != nil {
		log.Fatal(err)
	}
	peptide3, err := codon.TranslateSequence(s, codon.ThreeLetter)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("One-letter code:")
	fmt.Print(seqfmt.Format(peptide1, seqfmt.Protein1))
	fmt.Println("\nThree-letter code:")
	fmt.Print(seqfmt.Format(peptide3, seqfmt.Protein3))
	fmt.Printf("Length: %d\n\n", len(peptide1))

	if *outFastaF != "" {
		out := bio.Sequences{
			{Name: fmt.Sprintf("%s %s", g.LocusTag, g.Product), Sequence: s},
			{Name: fmt.Sprintf("%s_prot %s", g.LocusTag, g.Product), Sequence: peptide1},
		}
		f, err := os.Create(*outFastaF)
		if err != nil {
			log.Fatal("Error creating FASTA output file:", err)
		}
		if _, err := f.WriteString(out.String() + "\n"); err != nil {
			log.Error("Error writing FASTA output:", err)
		}
		f.Close()
		log.Noticef("Gene and protein written to '%s'", *outFastaF)
	}

	if *plotF != "" {
		title := fmt.Sprintf("%s GC content", g.LocusTag)
		err = gcplot.Save(s, *gcWidth, title, *plotF)
		if err != nil {
			log.Fatal("Error saving GC-content chart:", err)
		}
		log.Noticef("GC-content chart written to '%s'", *plotF)
	}

	// a repeated decode of the same gene is worth pointing out
	if _, err := rl.Last(g.LocusTag); err != nil {
		log.Error("Error reading run log:", err)
	}
	err = rl.Save(&runlog.Entry{
		LocusTag:      g.LocusTag,
		Product:       g.Product,
		GeneLength:    len(s),
		ProteinLength: len(peptide1),
		Protein:       peptide1,
		Time:          time.Now(),
	})
	if err != nil {
		log.Error("Error writing run log:", err)
	}

	summary.Gene = n
	summary.LocusTag = g.LocusTag
	summary.Product = g.Product
	summary.ReverseStrand = g.Reverse
	summary.GeneLength = len(s)
	summary.ProteinLength = len(peptide1)
	summary.Protein = peptide1
}

func run() (summary *RunSummary) {
	startTime := time.Now()
	summary = &RunSummary{}

	fastaFile, err := os.Open(*fastaFileName)
	if err != nil {
		log.Fatal(err)
	}
	defer fastaFile.Close()

	log.Noticef("Reading FASTA records from file '%s'...", *fastaFileName)
	seqs, err := bio.ParseFasta(fastaFile)
	if err != nil {
		log.Fatal(err)
	}

	var db *bolt.DB
	if *dbFileName != "" {
		db, err = bolt.Open(*dbFileName, 0644, nil)
		if err != nil {
			log.Fatal("Error opening run log database:", err)
		}
		defer db.Close()
	}
	rl := runlog.NewIO(db)

	for _, rec := range seqs {
		fmt.Printf("\nSequence ID: %s\n", rec.ID())
		fmt.Printf("Sequence description:\n%s\n", rec.Description())

		if rec.ID() != genes.PlasmidID {
			continue
		}

		fmt.Printf("\nFrom 'https://www.ncbi.nlm.nih.gov/nuccore/NC_005816',\n")
		fmt.Printf("we know that this piece of DNA encodes %d genes.\n\n", len(genes.Catalog))
		for i, g := range genes.Catalog {
			fmt.Printf("%d) %s: %s\n", i+1, g.LocusTag, g.Product)
		}

		n := *geneNumber
		if n == 0 {
			n, err = promptSelection(os.Stdin, os.Stdout)
			if err != nil {
				log.Fatal(err)
			}
		}

		decodeGene(rec, n, rl, summary)
	}

	summary.Time = time.Since(startTime).Seconds()
	return summary
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(level, "genview")
	logging.SetLevel(level, "runlog")

	// print revision
	log.Info(version)

	// print commandline
	log.Info("Command line:", os.Args)

	summary := run()
	summary.Version = version
	summary.CommandLine = os.Args

	// output summary in json format
	if *jsonF != "" {
		j, err := json.Marshal(summary)
		if err != nil {
			log.Error(err)
		} else {
			log.Debug(string(j))
			f, err := os.Create(*jsonF)
			if err != nil {
				log.Error("Error creating json output file:", err)
			} else {
				f.Write(j)
				f.Close()
			}
		}
	}
}
