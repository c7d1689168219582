package isa_test

import (
	"testing"

	"rocmclean/pkg/isa"

	g "github.com/onsi/gomega"
)

func TestFeature_ordinals(t *testing.T) {
	g.RegisterTestingT(t)

	// The runtime convention fixes these values.
	g.Expect(int(isa.FeatureUnsupported)).To(g.Equal(0))
	g.Expect(int(isa.FeatureAny)).To(g.Equal(1))
	g.Expect(int(isa.FeatureDisabled)).To(g.Equal(2))
	g.Expect(int(isa.FeatureEnabled)).To(g.Equal(3))
}

func TestFeature_string(t *testing.T) {
	g.RegisterTestingT(t)

	g.Expect(isa.FeatureUnsupported.String()).To(g.Equal("unsupported"))
	g.Expect(isa.FeatureAny.String()).To(g.Equal("any"))
	g.Expect(isa.FeatureDisabled.String()).To(g.Equal("disabled"))
	g.Expect(isa.FeatureEnabled.String()).To(g.Equal("enabled"))
	g.Expect(isa.Feature(42).String()).To(g.Equal("feature(42)"))
}

func TestEntry_shortForms(t *testing.T) {
	g.RegisterTestingT(t)

	entry, err := isa.Default().Lookup("gfx906:sramecc+:xnack-")

	g.Expect(err).NotTo(g.HaveOccurred())
	g.Expect(entry.ShortISA()).To(g.Equal("gfx906"))
	g.Expect(entry.ShortGfx()).To(g.Equal("gfx9"))
}

func TestEntry_shortFormsWithoutSuffix(t *testing.T) {
	g.RegisterTestingT(t)

	entry, err := isa.Default().Lookup("gfx1030")

	g.Expect(err).NotTo(g.HaveOccurred())
	g.Expect(entry.ShortISA()).To(g.Equal("gfx1030"))
	g.Expect(entry.ShortGfx()).To(g.Equal("gfx10"))
}

func TestEntry_hsaOverrideVersion(t *testing.T) {
	g.RegisterTestingT(t)

	// The step of gfx90a is 10, not the literal "a".
	entry, err := isa.Default().Lookup("gfx90a")

	g.Expect(err).NotTo(g.HaveOccurred())
	g.Expect(entry.HSAOverrideVersion()).To(g.Equal("9.0.10"))
}
