package defaults

const (
	// ConfigurationDir is the default system configuration directory.
	ConfigurationDir = "/etc/rocmclean"

	// ProfileFile is the name of the optional paths profile file.
	ProfileFile = "rocmclean.toml"
)

// BaseDirs are the directories that hold per-ISA support files, such as
// rocBLAS kernel libraries. Entries may contain the {torch} placeholder,
// which expands to the discovered PyTorch installation directory.
var BaseDirs = []string{
	"/usr/lib/rocblas/library",
	"/usr/lib64/rocblas/library",
	"{torch}/lib/rocblas/library",
	"{torch}/lib/hipblaslt/library",
}

// DirTrees are directory name patterns removed as whole trees when their gfx
// version is not kept. The {shortversion} placeholder expands to a coarse
// version such as "gfx9".
var DirTrees = []string{
	"/usr/lib/rocm/{shortversion}",
	"/usr/lib64/rocm/{shortversion}",
}
