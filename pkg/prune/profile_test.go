package prune_test

import (
	"testing"

	"rocmclean/pkg/prune"

	g "github.com/onsi/gomega"
	"github.com/spf13/afero"
)

func TestLoadProfile_emptyPath(t *testing.T) {
	g.RegisterTestingT(t)

	profile, err := prune.LoadProfile(afero.NewMemMapFs(), "")

	g.Expect(err).NotTo(g.HaveOccurred())
	g.Expect(profile.Paths.BaseDirs).To(g.BeEmpty())
	g.Expect(profile.Paths.DirTrees).To(g.BeEmpty())
}

func TestLoadProfile_missingFile(t *testing.T) {
	g.RegisterTestingT(t)

	_, err := prune.LoadProfile(afero.NewMemMapFs(), "/etc/rocmclean/rocmclean.toml")

	g.Expect(err).To(g.HaveOccurred())
}

func TestLoadProfile_appliesToConfig(t *testing.T) {
	g.RegisterTestingT(t)

	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/etc/rocmclean/rocmclean.toml", `
[paths]
base_dirs = ["/opt/rocm/lib/rocblas/library"]
dir_trees = ["/opt/rocm/{shortversion}"]
`)

	profile, err := prune.LoadProfile(fs, "/etc/rocmclean/rocmclean.toml")
	g.Expect(err).NotTo(g.HaveOccurred())

	cfg := &prune.Config{
		BaseDirs: []string{"/usr/lib64/rocblas/library"},
		DirTrees: []string{"/usr/lib64/rocm/{shortversion}"},
	}
	profile.Apply(cfg)

	g.Expect(cfg.BaseDirs).To(g.Equal([]string{
		"/usr/lib64/rocblas/library",
		"/opt/rocm/lib/rocblas/library",
	}))
	g.Expect(cfg.DirTrees).To(g.Equal([]string{
		"/usr/lib64/rocm/{shortversion}",
		"/opt/rocm/{shortversion}",
	}))
}

func TestLoadProfile_invalidTOML(t *testing.T) {
	g.RegisterTestingT(t)

	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/etc/rocmclean/rocmclean.toml", "not [valid toml")

	_, err := prune.LoadProfile(fs, "/etc/rocmclean/rocmclean.toml")

	g.Expect(err).To(g.HaveOccurred())
}
