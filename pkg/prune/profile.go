package prune

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// Profile is an optional TOML file naming additional directories to prune,
// for installations outside the standard locations:
//
//	[paths]
//	base_dirs = ["/opt/rocm/lib/rocblas/library"]
//	dir_trees = ["/opt/rocm/{shortversion}"]
type Profile struct {
	Paths struct {
		BaseDirs []string `toml:"base_dirs"`
		DirTrees []string `toml:"dir_trees"`
	} `toml:"paths"`
}

// LoadProfile reads a TOML profile. An empty path yields an empty profile.
func LoadProfile(fs afero.Fs, path string) (*Profile, error) {
	profile := &Profile{}

	if path == "" {
		return profile, nil
	}

	contents, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}

	if err := toml.Unmarshal(contents, profile); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}

	return profile, nil
}

// Apply appends the profile's directories to the config.
func (p *Profile) Apply(cfg *Config) {
	cfg.BaseDirs = append(cfg.BaseDirs, p.Paths.BaseDirs...)
	cfg.DirTrees = append(cfg.DirTrees, p.Paths.DirTrees...)
}
