//go:build linux || darwin

package diskspace_test

import (
	"testing"

	"rocmclean/pkg/diskspace"

	g "github.com/onsi/gomega"
)

func TestFree(t *testing.T) {
	g.RegisterTestingT(t)

	free, err := diskspace.Free(t.TempDir())

	g.Expect(err).NotTo(g.HaveOccurred())
	g.Expect(free).To(g.BeNumerically(">", 0))
}

func TestFree_missingPath(t *testing.T) {
	g.RegisterTestingT(t)

	_, err := diskspace.Free("/does/not/exist/anywhere")

	g.Expect(err).To(g.HaveOccurred())
}
