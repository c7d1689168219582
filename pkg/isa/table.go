package isa

// The table below follows the ROCR runtime and LLVM processor lists:
//
//	https://github.com/ROCm/ROCR-Runtime/blob/master/src/core/runtime/isa.cpp
//	https://llvm.org/docs/AMDGPUUsage.html#processors
//	https://rocm.docs.amd.com/projects/install-on-linux/en/develop/reference/system-requirements.html
//
// PyTorch support flags were collected from a ROCm build of PyTorch with
// "find site-packages/torch/lib -type f | grep -oE 'gfx[^.]*' | sort -u".
var knownISAs = []Entry{
	{"gfx700", 7, 0, 0, FeatureUnsupported, FeatureUnsupported, 64, false},
	{"gfx701", 7, 0, 1, FeatureUnsupported, FeatureUnsupported, 64, false},
	{"gfx702", 7, 0, 2, FeatureUnsupported, FeatureUnsupported, 64, false},
	{"gfx801", 8, 0, 1, FeatureUnsupported, FeatureAny, 64, false},
	{"gfx801:xnack-", 8, 0, 1, FeatureUnsupported, FeatureDisabled, 64, false},
	{"gfx801:xnack+", 8, 0, 1, FeatureUnsupported, FeatureEnabled, 64, false},
	{"gfx802", 8, 0, 2, FeatureUnsupported, FeatureUnsupported, 64, false},
	{"gfx803", 8, 0, 3, FeatureUnsupported, FeatureUnsupported, 64, false},
	{"gfx805", 8, 0, 5, FeatureUnsupported, FeatureUnsupported, 64, false},
	{"gfx810", 8, 1, 0, FeatureUnsupported, FeatureAny, 64, false},
	{"gfx810:xnack-", 8, 1, 0, FeatureUnsupported, FeatureDisabled, 64, false},
	{"gfx810:xnack+", 8, 1, 0, FeatureUnsupported, FeatureEnabled, 64, false},
	// Radeon Vega 56/64; PyTorch ships gfx900
	{"gfx900", 9, 0, 0, FeatureUnsupported, FeatureAny, 64, true},
	{"gfx900:xnack-", 9, 0, 0, FeatureUnsupported, FeatureDisabled, 64, false},
	{"gfx900:xnack+", 9, 0, 0, FeatureUnsupported, FeatureEnabled, 64, false},
	{"gfx902", 9, 0, 2, FeatureUnsupported, FeatureAny, 64, false},
	{"gfx902:xnack-", 9, 0, 2, FeatureUnsupported, FeatureDisabled, 64, false},
	{"gfx902:xnack+", 9, 0, 2, FeatureUnsupported, FeatureEnabled, 64, false},
	{"gfx904", 9, 0, 4, FeatureUnsupported, FeatureAny, 64, false},
	{"gfx904:xnack-", 9, 0, 4, FeatureUnsupported, FeatureDisabled, 64, false},
	{"gfx904:xnack+", 9, 0, 4, FeatureUnsupported, FeatureEnabled, 64, false},
	// Radeon Instinct MI50, MI60; PyTorch ships gfx906 with xnack-
	{"gfx906", 9, 0, 6, FeatureAny, FeatureAny, 64, true},
	{"gfx906:xnack-", 9, 0, 6, FeatureAny, FeatureDisabled, 64, true},
	{"gfx906:xnack+", 9, 0, 6, FeatureAny, FeatureEnabled, 64, false},
	{"gfx906:sramecc-", 9, 0, 6, FeatureDisabled, FeatureAny, 64, false},
	{"gfx906:sramecc+", 9, 0, 6, FeatureEnabled, FeatureAny, 64, false},
	{"gfx906:sramecc-:xnack-", 9, 0, 6, FeatureDisabled, FeatureDisabled, 64, true},
	{"gfx906:sramecc-:xnack+", 9, 0, 6, FeatureDisabled, FeatureEnabled, 64, false},
	{"gfx906:sramecc+:xnack-", 9, 0, 6, FeatureEnabled, FeatureDisabled, 64, true},
	{"gfx906:sramecc+:xnack+", 9, 0, 6, FeatureEnabled, FeatureEnabled, 64, false},
	// AMD Instinct MI100 (CDNA); PyTorch ships gfx908 with xnack-
	{"gfx908", 9, 0, 8, FeatureAny, FeatureAny, 64, true},
	{"gfx908:xnack-", 9, 0, 8, FeatureAny, FeatureDisabled, 64, true},
	{"gfx908:xnack+", 9, 0, 8, FeatureAny, FeatureEnabled, 64, false},
	{"gfx908:sramecc-", 9, 0, 8, FeatureDisabled, FeatureAny, 64, false},
	{"gfx908:sramecc+", 9, 0, 8, FeatureEnabled, FeatureAny, 64, false},
	{"gfx908:sramecc-:xnack-", 9, 0, 8, FeatureDisabled, FeatureDisabled, 64, true},
	{"gfx908:sramecc-:xnack+", 9, 0, 8, FeatureDisabled, FeatureEnabled, 64, false},
	{"gfx908:sramecc+:xnack-", 9, 0, 8, FeatureEnabled, FeatureDisabled, 64, true},
	{"gfx908:sramecc+:xnack+", 9, 0, 8, FeatureEnabled, FeatureEnabled, 64, false},
	{"gfx909", 9, 0, 9, FeatureUnsupported, FeatureAny, 64, false},
	{"gfx909:xnack-", 9, 0, 9, FeatureUnsupported, FeatureDisabled, 64, false},
	{"gfx909:xnack+", 9, 0, 9, FeatureUnsupported, FeatureEnabled, 64, false},
	// AMD Instinct MI210, MI250, MI250X (CDNA2); PyTorch ships gfx90a with xnack-, xnack+
	{"gfx90a", 9, 0, 10, FeatureAny, FeatureAny, 64, true},
	{"gfx90a:xnack-", 9, 0, 10, FeatureAny, FeatureDisabled, 64, true},
	{"gfx90a:xnack+", 9, 0, 10, FeatureAny, FeatureEnabled, 64, true},
	{"gfx90a:sramecc-", 9, 0, 10, FeatureDisabled, FeatureAny, 64, false},
	{"gfx90a:sramecc+", 9, 0, 10, FeatureEnabled, FeatureAny, 64, false},
	{"gfx90a:sramecc-:xnack-", 9, 0, 10, FeatureDisabled, FeatureDisabled, 64, true},
	{"gfx90a:sramecc-:xnack+", 9, 0, 10, FeatureDisabled, FeatureEnabled, 64, true},
	{"gfx90a:sramecc+:xnack-", 9, 0, 10, FeatureEnabled, FeatureDisabled, 64, true},
	{"gfx90a:sramecc+:xnack+", 9, 0, 10, FeatureEnabled, FeatureEnabled, 64, true},
	// Ryzen APU (e.g. Ryzen 7 4700G)
	{"gfx90c", 9, 0, 12, FeatureUnsupported, FeatureAny, 64, false},
	{"gfx90c:xnack-", 9, 0, 12, FeatureUnsupported, FeatureDisabled, 64, false},
	{"gfx90c:xnack+", 9, 0, 12, FeatureUnsupported, FeatureEnabled, 64, false},
	{"gfx940", 9, 4, 0, FeatureAny, FeatureAny, 64, false},
	{"gfx940:xnack-", 9, 4, 0, FeatureAny, FeatureDisabled, 64, false},
	{"gfx940:xnack+", 9, 4, 0, FeatureAny, FeatureEnabled, 64, false},
	{"gfx940:sramecc-", 9, 4, 0, FeatureDisabled, FeatureAny, 64, false},
	{"gfx940:sramecc+", 9, 4, 0, FeatureEnabled, FeatureAny, 64, false},
	{"gfx940:sramecc-:xnack-", 9, 4, 0, FeatureDisabled, FeatureDisabled, 64, false},
	{"gfx940:sramecc-:xnack+", 9, 4, 0, FeatureDisabled, FeatureEnabled, 64, false},
	{"gfx940:sramecc+:xnack-", 9, 4, 0, FeatureEnabled, FeatureDisabled, 64, false},
	{"gfx940:sramecc+:xnack+", 9, 4, 0, FeatureEnabled, FeatureEnabled, 64, false},
	{"gfx941", 9, 4, 1, FeatureAny, FeatureAny, 64, false},
	{"gfx941:xnack-", 9, 4, 1, FeatureAny, FeatureDisabled, 64, false},
	{"gfx941:xnack+", 9, 4, 1, FeatureAny, FeatureEnabled, 64, false},
	{"gfx941:sramecc-", 9, 4, 1, FeatureDisabled, FeatureAny, 64, false},
	{"gfx941:sramecc+", 9, 4, 1, FeatureEnabled, FeatureAny, 64, false},
	{"gfx941:sramecc-:xnack-", 9, 4, 1, FeatureDisabled, FeatureDisabled, 64, false},
	{"gfx941:sramecc-:xnack+", 9, 4, 1, FeatureDisabled, FeatureEnabled, 64, false},
	{"gfx941:sramecc+:xnack-", 9, 4, 1, FeatureEnabled, FeatureDisabled, 64, false},
	{"gfx941:sramecc+:xnack+", 9, 4, 1, FeatureEnabled, FeatureEnabled, 64, false},
	// AMD Instinct MI300A, MI300X (CDNA3); PyTorch 6.0 ships gfx942
	{"gfx942", 9, 4, 2, FeatureAny, FeatureAny, 64, true},
	{"gfx942:xnack-", 9, 4, 2, FeatureAny, FeatureDisabled, 64, false},
	{"gfx942:xnack+", 9, 4, 2, FeatureAny, FeatureEnabled, 64, false},
	{"gfx942:sramecc-", 9, 4, 2, FeatureDisabled, FeatureAny, 64, false},
	{"gfx942:sramecc+", 9, 4, 2, FeatureEnabled, FeatureAny, 64, false},
	{"gfx942:sramecc-:xnack-", 9, 4, 2, FeatureDisabled, FeatureDisabled, 64, false},
	{"gfx942:sramecc-:xnack+", 9, 4, 2, FeatureDisabled, FeatureEnabled, 64, false},
	{"gfx942:sramecc+:xnack-", 9, 4, 2, FeatureEnabled, FeatureDisabled, 64, false},
	{"gfx942:sramecc+:xnack+", 9, 4, 2, FeatureEnabled, FeatureEnabled, 64, false},
	// Radeon RX 5700, 5600 (RDNA)
	{"gfx1010", 10, 1, 0, FeatureUnsupported, FeatureAny, 32, false},
	{"gfx1010:xnack-", 10, 1, 0, FeatureUnsupported, FeatureDisabled, 32, false},
	{"gfx1010:xnack+", 10, 1, 0, FeatureUnsupported, FeatureEnabled, 32, false},
	// Radeon Pro V520
	{"gfx1011", 10, 1, 1, FeatureUnsupported, FeatureAny, 32, false},
	{"gfx1011:xnack-", 10, 1, 1, FeatureUnsupported, FeatureDisabled, 32, false},
	{"gfx1011:xnack+", 10, 1, 1, FeatureUnsupported, FeatureEnabled, 32, false},
	// Radeon RX 5500
	{"gfx1012", 10, 1, 2, FeatureUnsupported, FeatureAny, 32, false},
	{"gfx1012:xnack-", 10, 1, 2, FeatureUnsupported, FeatureDisabled, 32, false},
	{"gfx1012:xnack+", 10, 1, 2, FeatureUnsupported, FeatureEnabled, 32, false},
	{"gfx1013", 10, 1, 3, FeatureUnsupported, FeatureAny, 32, false},
	{"gfx1013:xnack-", 10, 1, 3, FeatureUnsupported, FeatureDisabled, 32, false},
	{"gfx1013:xnack+", 10, 1, 3, FeatureUnsupported, FeatureEnabled, 32, false},
	// Radeon RX 6800 to 6900 XT; Radeon PRO W6800 (RDNA2); PyTorch ships gfx1030
	{"gfx1030", 10, 3, 0, FeatureUnsupported, FeatureUnsupported, 32, true},
	// Radeon RX 6700 XT
	{"gfx1031", 10, 3, 1, FeatureUnsupported, FeatureUnsupported, 32, false},
	{"gfx1032", 10, 3, 2, FeatureUnsupported, FeatureUnsupported, 32, false},
	{"gfx1033", 10, 3, 3, FeatureUnsupported, FeatureUnsupported, 32, false},
	{"gfx1034", 10, 3, 4, FeatureUnsupported, FeatureUnsupported, 32, false},
	{"gfx1035", 10, 3, 5, FeatureUnsupported, FeatureUnsupported, 32, false},
	{"gfx1036", 10, 3, 6, FeatureUnsupported, FeatureUnsupported, 32, false},
	// Radeon RX 7900 XT, XTX; Radeon PRO W7800, W7900 (RDNA3); PyTorch ships gfx1100
	{"gfx1100", 11, 0, 0, FeatureUnsupported, FeatureUnsupported, 32, true},
	{"gfx1101", 11, 0, 1, FeatureUnsupported, FeatureUnsupported, 32, false},
	{"gfx1102", 11, 0, 2, FeatureUnsupported, FeatureUnsupported, 32, false},
	{"gfx1103", 11, 0, 3, FeatureUnsupported, FeatureUnsupported, 32, false},
	{"gfx1150", 11, 5, 0, FeatureUnsupported, FeatureUnsupported, 32, false},
	{"gfx1151", 11, 5, 1, FeatureUnsupported, FeatureUnsupported, 32, false},
}
