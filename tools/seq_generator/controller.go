package seq_generator

import (
	"compress/gzip"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"
)

// Options describes one generated protein FASTA file.
type Options struct {
	Count       int
	MinLength   int
	MaxLength   int
	NonStandard float64 // per-residue probability of an X/U/Z/O/B code
	Prefix      string  // record ids are <Prefix>_<n>
	Seed        int64
}

// WriteFasta writes opts.Count random protein records to w, 60 residues per line.
func WriteFasta(w io.Writer, opts Options) error {
	if opts.Count < 1 {
		return fmt.Errorf("count must be at least 1")
	}
	if opts.MinLength < 1 || opts.MaxLength < opts.MinLength {
		return fmt.Errorf("invalid length range %d-%d", opts.MinLength, opts.MaxLength)
	}
	if opts.NonStandard < 0 || opts.NonStandard > 1 {
		return fmt.Errorf("non_standard must be between 0 and 1")
	}

	r := rand.New(rand.NewSource(opts.Seed))
	for i := 1; i <= opts.Count; i++ {
		length := opts.MinLength + r.Intn(opts.MaxLength-opts.MinLength+1)
		seq := GenerateProtein(r, length, opts.NonStandard)
		if _, err := fmt.Fprintf(w, ">%s_%d length=%d\n%s", opts.Prefix, i, length, WrapFasta(seq, 60)); err != nil {
			return err
		}
	}
	return nil
}

// Run executes the generate tool, which writes random protein FASTA input for
// batch classification and benchmarking.
func Run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(out)

	count := fs.Int("count", 10, "Number of protein records")
	minLen := fs.Int("min_len", 50, "Minimum sequence length")
	maxLen := fs.Int("max_len", 500, "Maximum sequence length")
	nonStd := fs.Float64("non_standard", 0, "Per-residue probability of a non-standard code (X, U, Z, O, B)")
	name := fs.String("name", "random_protein", "Record id prefix")
	seed := fs.Int64("seed", 0, "Random seed (0: time based)")
	outFile := fs.String("out_file", "", "Output FASTA file (default: stdout)")
	gzipOut := fs.Bool("gzip", false, "Compress output with gzip")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 { // If unparsed arguments remain:
		return fmt.Errorf("unrecognized arguments: %v (use -h to view valid flags)", fs.Args())
	}

	opts := Options{Count: *count, MinLength: *minLen, MaxLength: *maxLen, NonStandard: *nonStd, Prefix: *name, Seed: *seed}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	if *outFile == "" {
		if *gzipOut {
			return fmt.Errorf("cannot gzip to stdout, specify -out_file")
		}
		return WriteFasta(out, opts)
	}

	path := *outFile
	if *gzipOut {
		path += ".gz"
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	var w io.Writer = file
	var gz *gzip.Writer
	if *gzipOut {
		gz = gzip.NewWriter(file)
		w = gz
	}
	if err := WriteFasta(w, opts); err != nil {
		return err
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			return err
		}
	}
	if err := file.Close(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %d protein records to %s\n", opts.Count, path)
	return nil
}
