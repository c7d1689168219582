package flags

import (
	"rocmclean/internal/config"

	"github.com/spf13/cobra"
)

const (
	outputFlag   = "output"
	profileFlag  = "profile"
	dryRunFlag   = "dry-run"
	torchDirFlag = "torch-dir"
	pytorchFlag  = "pytorch"
	hintsFlag    = "hints"
)

// AddOutputFlagsToCommand will add the output format flag to the supplied command.
func AddOutputFlagsToCommand(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().StringVarP(&cfg.Output,
		outputFlag,
		"o",
		"text",
		"The output format. Can be 'text', 'json' or 'yaml'.")
}

// AddProfileFlagsToCommand will add the paths profile flag to the supplied command.
func AddProfileFlagsToCommand(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().StringVar(&cfg.ProfileFile,
		profileFlag,
		"",
		"Path to a TOML profile with additional prune directories.")
}

// AddPruneFlagsToCommand will add the prune specific flags to the supplied command.
func AddPruneFlagsToCommand(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().BoolVar(&cfg.Prune.DryRun,
		dryRunFlag,
		false,
		"Plan and print removals without deleting anything.")

	cmd.Flags().StringVar(&cfg.Prune.TorchDir,
		torchDirFlag,
		"",
		"The PyTorch installation directory. Skips discovery.")
}

// AddListFlagsToCommand will add the list specific flags to the supplied command.
func AddListFlagsToCommand(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().BoolVar(&cfg.List.PyTorchOnly,
		pytorchFlag,
		false,
		"Only list ISAs that PyTorch ROCm builds ship kernels for.")
}

// AddResolveFlagsToCommand will add the resolve specific flags to the supplied command.
func AddResolveFlagsToCommand(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().BoolVar(&cfg.Resolve.Hints,
		hintsFlag,
		false,
		"Include an HSA_OVERRIDE_GFX_VERSION hint for every resolved entry.")
}
