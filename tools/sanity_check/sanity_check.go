package sanity_check

import (
	"flag"
	"fmt"
	"io"

	"prot_classifier_go/config" // Version control and runtime settings
	pc "prot_classifier_go/tools/protein_classifier"
)

// Run checks that the model artifacts load and that a preset sequence
// classifies, printing what was loaded along with the version number.
func Run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(out)
	preset := fs.Int("preset", 0, "Preset sequence used for the test prediction")
	model := pc.RegisterModelFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	fmt.Fprintf(out, "Protein Classifier sanity check (%s, artifact format %s)\n", config.Main_version, config.Artifact_Format)

	settings, err := config.Load()
	if err != nil {
		return err
	}
	if err := model.Apply(settings); err != nil {
		return err
	}
	svc, arts, err := pc.LoadService(settings)
	if err != nil {
		return err
	}
	defer arts.Close()

	fmt.Fprintf(out, "Bundle:\t\t%s\n", settings.BundlePath)
	fmt.Fprintf(out, "Labels:\t\t%s\n", settings.LabelsPath)
	fmt.Fprintf(out, "Backend:\t%s\n", arts.Backend)
	fmt.Fprintf(out, "Features:\t%d\n", arts.Vectorizer.Dim())
	fmt.Fprintf(out, "Classes:\t%d\n", arts.Labels.Len())

	rep, err := svc.Classify(pc.PresetChoice(*preset))
	if err != nil {
		return fmt.Errorf("test prediction failed: %w", err)
	}
	fmt.Fprintf(out, "Preset %d:\t%s (%.2f %%)\n", *preset, rep.Label, rep.ConfidencePercent)
	fmt.Fprintln(out, "Successfully running Protein Classifier!")
	return nil
}
