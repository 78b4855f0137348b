package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"prot_classifier_go/benchmark"
	"prot_classifier_go/config"
	"prot_classifier_go/tools/protein_classifier"
	"prot_classifier_go/tools/protein_server"
	"prot_classifier_go/tools/sanity_check"
	"prot_classifier_go/tools/seq_generator"
)

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Println(`Protein Classifier - Custom Help Menu
Usage:
  prot_classifier <tool> [options]

Tools:
  classify		Classify a protein sequence, preset or FASTA file
  serve			Run the web form and JSON API
  check			Load the model and run a test prediction
  generate		Write random protein FASTA for batch runs

Global Flags:
  -h, -help		Show this help message
  -v, -version		Show version information

Model artifacts:
  Read from PROTCLASS_BUNDLE and PROTCLASS_LABELS (or a .env file);
  every tool also accepts -bundle, -labels and -backend.

Benchmarking:
  -benchmark		Must be used in association with a tool.
			Displays computational resource usage and
			pertinent operating system information
  `,
	)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("Protein Classifier - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tProtein Classifier:\t%s\n", config.Main_version)
	fmt.Printf("\nModular tools:\n")
	fmt.Printf("\tClassify:\t\t%s\n", config.Protein_Classifier)
	fmt.Printf("\tServer:\t\t\t%s\n", config.Protein_Server)
	fmt.Printf("\tSanity Check:\t\t%s\n", config.Sanity_check)
	fmt.Printf("\tSequence Generator:\t%s\n", config.Seq_Generator)
	fmt.Printf("\tBenchmark:\t\t%s\n", config.Benchmark)
	fmt.Printf("\nArtifact format:\t\t%s\n", config.Artifact_Format)

	fmt.Println("")

	os.Exit(0)
}

// Main controller
func main() {

	// If no arguments are given, show help
	if len(os.Args) < 2 {
		printCustomHelp()
	}

	// Top-level help only; tools print their own flag help
	if len(os.Args) == 2 && (os.Args[1] == "-h" || os.Args[1] == "-help") {
		printCustomHelp()
	}

	// Version request
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "-version" {
			printVersion()
		}
	}

	toolName := os.Args[1]
	toolArgs := os.Args[2:]

	// Check for global -benchmark flag
	benchmarking := false
	var cleanedArgs []string
	for _, arg := range toolArgs {
		if arg == "-benchmark" {
			benchmarking = true
		} else {
			cleanedArgs = append(cleanedArgs, arg)
		}
	}

	// Tool execution wrapper
	run := func() error {
		switch toolName {
		case "classify":
			return protein_classifier.Run(cleanedArgs, os.Stdout)
		case "serve":
			return protein_server.Run(cleanedArgs, os.Stdout)
		case "check":
			return sanity_check.Run(cleanedArgs, os.Stdout)
		case "generate":
			return seq_generator.Run(cleanedArgs, os.Stdout)
		default:
			return fmt.Errorf("unknown tool: %s (use -h to list tools)", toolName)
		}
	}

	var err error
	if benchmarking {
		label := fmt.Sprintf("prot_classifier %s %s", toolName, strings.Join(cleanedArgs, " "))
		_, err = benchmark.Run(label, os.Stdout, run)
	} else {
		err = run()
	}
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
