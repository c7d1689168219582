package isa

import (
	"fmt"
	"strconv"
	"strings"
)

// Feature describes the gating state of a hardware feature (XNACK page-fault
// retry, SRAMECC memory protection) for an ISA variant. The ordinal values
// follow the ROCR runtime convention (src/core/inc/isa.h) and must not be
// reordered.
type Feature int

const (
	FeatureUnsupported Feature = iota
	FeatureAny
	FeatureDisabled
	FeatureEnabled
)

func (f Feature) String() string {
	switch f {
	case FeatureUnsupported:
		return "unsupported"
	case FeatureAny:
		return "any"
	case FeatureDisabled:
		return "disabled"
	case FeatureEnabled:
		return "enabled"
	default:
		return fmt.Sprintf("feature(%d)", int(f))
	}
}

// Entry is one GPU ISA variant known to the ROCm runtime.
type Entry struct {
	// Name is the canonical identifier, e.g. "gfx906:sramecc+:xnack-".
	Name string
	// Major, Minor and Step are the version components of the ISA.
	Major int
	Minor int
	Step  int
	// SRAMECC and XNACK describe the feature gating of this variant.
	SRAMECC Feature
	XNACK   Feature
	// WavefrontSize is 32 or 64 depending on the hardware generation.
	WavefrontSize int
	// PyTorchSupport marks variants that upstream PyTorch ROCm builds ship
	// kernels for. Informational only; resolution never branches on it.
	PyTorchSupport bool
}

// ShortISA returns the variant family without feature suffixes,
// e.g. "gfx906" for "gfx906:xnack-". Support file names carry this short
// form, never the suffixed one.
func (e Entry) ShortISA() string {
	name, _, _ := strings.Cut(e.Name, ":")

	return name
}

// ShortGfx returns the coarse gfx version ("gfx" + major), e.g. "gfx9" for
// every gfx9xx variant. Whole directory trees are named after it.
func (e Entry) ShortGfx() string {
	return "gfx" + strconv.Itoa(e.Major)
}

// HSAOverrideVersion returns the value to use with HSA_OVERRIDE_GFX_VERSION.
func (e Entry) HSAOverrideVersion() string {
	return fmt.Sprintf("%d.%d.%d", e.Major, e.Minor, e.Step)
}

func (e Entry) String() string {
	return fmt.Sprintf("%s (version %s, wavefront %d, sramecc %s, xnack %s)",
		e.Name, e.HSAOverrideVersion(), e.WavefrontSize, e.SRAMECC, e.XNACK)
}
