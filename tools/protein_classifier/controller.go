package protein_classifier

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"prot_classifier_go/config"
)

// ModelFlags are the artifact overrides shared by the classify and serve tools.
type ModelFlags struct {
	bundle    *string
	labels    *string
	backend   *string
	onnxModel *string
	onnxLib   *string
}

// RegisterModelFlags adds the artifact override flags to fs.
func RegisterModelFlags(fs *flag.FlagSet) *ModelFlags {
	return &ModelFlags{
		bundle:    fs.String("bundle", "", "Classifier bundle (JSON, optionally gzipped); overrides PROTCLASS_BUNDLE"),
		labels:    fs.String("labels", "", "Label encoder (JSON, optionally gzipped); overrides PROTCLASS_LABELS"),
		backend:   fs.String("backend", "", "Classifier backend 'trees' or 'onnx'; overrides PROTCLASS_BACKEND"),
		onnxModel: fs.String("onnx_model", "", "ONNX classifier graph; overrides PROTCLASS_ONNX_MODEL"),
		onnxLib:   fs.String("onnx_lib", "", "onnxruntime shared library; overrides PROTCLASS_ONNX_LIB"),
	}
}

// Apply copies every flag that was given onto s.
func (m *ModelFlags) Apply(s *config.Settings) error {
	if *m.bundle != "" {
		s.BundlePath = *m.bundle
	}
	if *m.labels != "" {
		s.LabelsPath = *m.labels
	}
	if *m.backend != "" {
		s.Backend = *m.backend
	}
	if *m.onnxModel != "" {
		s.ONNXModelPath = *m.onnxModel
	}
	if *m.onnxLib != "" {
		s.ONNXLibPath = *m.onnxLib
	}
	return s.Validate()
}

// LoadService loads the artifacts named by s and builds a Service on them.
// The caller closes the returned Artifacts.
func LoadService(s *config.Settings) (*Service, *Artifacts, error) {
	arts, err := LoadArtifacts(PathsFromSettings(s))
	if err != nil {
		return nil, nil, err
	}
	pred, err := arts.Predictor()
	if err != nil {
		arts.Close()
		return nil, nil, fmt.Errorf("%w: %v", ErrArtifact, err)
	}
	return NewService(pred), arts, nil
}

// Run executes the classify tool: one sequence from -seq or -preset, or a
// whole FASTA file from -in_file.
func Run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("classify", flag.ContinueOnError) // Isolated flag set specifically for "classify" subcommand
	fs.SetOutput(out)

	seq := fs.String("seq", "", "Protein sequence to classify (letters only)")
	preset := fs.Int("preset", -1, "Index of a preset example sequence (see -list_presets)")
	listPresets := fs.Bool("list_presets", false, "List the preset example sequences")
	listClasses := fs.Bool("list_classes", false, "List the protein classes known to the model")
	inFile := fs.String("in_file", "", "Protein FASTA file to classify record by record")
	outFile := fs.String("out_file", "protein_classes", "Prefix for output files")
	csvOut := fs.Bool("csv_out", false, "Write the code frequency table to <out_file>_freq.csv")
	chartOut := fs.String("chart_out", "", "Write the code frequency bar chart (SVG) to this path")
	jsonOut := fs.Bool("json", false, "Print the report as JSON")
	workers := fs.Int("workers", 0, "Worker goroutines for -in_file (default: number of CPUs)")
	progress := fs.Bool("progress", true, "Show a progress bar for -in_file")
	model := RegisterModelFlags(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 { // If unparsed arguments remain:
		return fmt.Errorf("unrecognized arguments: %v (use -h to view valid flags)", fs.Args())
	}

	if *listPresets {
		for i, p := range Presets {
			fmt.Fprintf(out, "%d\t%d aa\t%s\n", i, len(p), p)
		}
		return nil
	}

	modes := 0
	for _, set := range []bool{*seq != "", *preset >= 0, *inFile != ""} {
		if set {
			modes++
		}
	}
	if modes > 1 {
		return fmt.Errorf("use only one of -seq, -preset or -in_file")
	}
	if modes == 0 && !*listClasses {
		return fmt.Errorf("one of -seq, -preset or -in_file is required")
	}

	settings, err := config.Load()
	if err != nil {
		return err
	}
	if err := model.Apply(settings); err != nil {
		return err
	}
	svc, arts, err := LoadService(settings)
	if err != nil {
		return err
	}
	defer arts.Close()

	if *listClasses {
		for i, c := range arts.Labels.Classes() {
			fmt.Fprintf(out, "%d\t%s\n", i, c)
		}
		return nil
	}

	if *inFile != "" {
		opts := BatchOptions{Workers: *workers}
		if *progress {
			opts.Progress = os.Stderr
		}
		return runBatch(svc, *inFile, *outFile, opts, out)
	}

	req := FreeText(*seq)
	if *preset >= 0 {
		req = PresetChoice(*preset)
	}
	rep, err := svc.Classify(req)
	if err != nil {
		if msg := UserMessage(err); msg != "" {
			return fmt.Errorf("%s (%w)", msg, err)
		}
		return err
	}

	if *jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return err
		}
	} else {
		PrintReport(out, rep)
	}

	if *csvOut {
		path := *outFile + "_freq.csv"
		if err := writeFileWith(path, func(w io.Writer) error { return WriteFrequencyCSV(w, rep.Frequencies) }); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
		fmt.Fprintf(out, "Wrote code frequencies to CSV file: %s\n", path)
	}
	if *chartOut != "" {
		svg, err := FrequencyChartSVG(rep.Frequencies)
		if err != nil {
			return fmt.Errorf("failed to generate frequency chart: %w", err)
		}
		if err := os.WriteFile(*chartOut, []byte(svg), 0644); err != nil {
			return fmt.Errorf("failed to write chart: %w", err)
		}
		fmt.Fprintf(out, "Wrote code frequency chart: %s\n", *chartOut)
	}
	return nil
}

func runBatch(svc *Service, inFile, outFile string, opts BatchOptions, out io.Writer) error {
	results, err := svc.ClassifyFasta(inFile, opts)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return errors.New("no FASTA records found in " + inFile)
	}

	path := outFile + "_predictions.csv"
	if err := writeFileWith(path, func(w io.Writer) error { return WritePredictionsCSV(w, results) }); err != nil {
		return fmt.Errorf("failed to write predictions CSV: %w", err)
	}

	PrintSummary(out, Summarize(results))
	fmt.Fprintf(out, "Wrote per-record predictions to CSV file: %s\n", path)
	return nil
}

// PrintReport displays one classification the way the form does.
func PrintReport(out io.Writer, rep *Report) {
	fmt.Fprintln(out, "Prediction")
	fmt.Fprintf(out, "Class: %s\n", rep.Label)
	fmt.Fprintf(out, "Confidence score: %.2f %%\n", rep.ConfidencePercent)
	if rep.KmerFeatures == 0 {
		fmt.Fprintln(out, "Warning: no known k-mers in this sequence, the class reflects the model prior")
	}

	if len(rep.Top) > 1 {
		fmt.Fprintln(out, "\nMost likely classes:")
		for _, c := range rep.Top {
			fmt.Fprintf(out, "  %-28s %6.2f%%\n", c.Label, RoundPercent(c.Probability))
		}
	}

	fmt.Fprintf(out, "\nTotal unique codes: %d\n", rep.UniqueCodes)
	fmt.Fprintln(out, "Code\tFreq")
	for _, c := range rep.Frequencies.Codes {
		fmt.Fprintf(out, "%s\t%d\n", c.Code, c.Count)
	}
}

// PrintSummary displays the aggregate of a batch run.
func PrintSummary(out io.Writer, sum BatchSummary) {
	fmt.Fprintln(out, "Batch classification summary")
	fmt.Fprintf(out, "Records: %d\n", sum.Records)
	fmt.Fprintf(out, "Classified: %d\n", sum.Classified)
	if sum.Failed > 0 {
		fmt.Fprintf(out, "Failed: %d\n", sum.Failed)
	}
	if sum.Classified > 0 {
		fmt.Fprintf(out, "Mean confidence: %.2f %% (sd %.2f)\n", sum.MeanConfidence*100, sum.StdConfidence*100)
		fmt.Fprintln(out, "\nPredicted classes:")
		for _, l := range sum.Labels {
			fmt.Fprintf(out, "  %-28s %d\n", l.Label, l.Count)
		}
	}
}
