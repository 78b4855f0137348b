package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v1.1.0"

	// Modular tools
	Benchmark          = "v1.0.1"
	Protein_Classifier = "v1.2.0"
	Protein_Server     = "v1.1.0"
	Sanity_check       = "v1.1.0"
	Seq_Generator      = "v1.1.0"

	// Artifact layout understood by the loader
	Artifact_Format = "v1"
)
