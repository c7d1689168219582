package config

import (
	"rocmclean/pkg/log"
)

// Config represents the rocmclean configuration.
type Config struct {
	// Logging contains the logging related config.
	Logging log.Config

	// Output selects the rendering for command results: text, json or yaml.
	Output string

	// ProfileFile is the path to an optional TOML profile with additional
	// prune directories. Empty means use the system profile if present.
	ProfileFile string

	Prune struct {
		DryRun   bool
		TorchDir string
	}

	List struct {
		PyTorchOnly bool
	}

	Resolve struct {
		Hints bool
	}
}
