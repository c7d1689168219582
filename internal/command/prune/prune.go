package prune

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	cmdflags "rocmclean/internal/command/flags"
	"rocmclean/internal/config"
	"rocmclean/pkg/defaults"
	"rocmclean/pkg/diskspace"
	"rocmclean/pkg/flags"
	"rocmclean/pkg/isa"
	"rocmclean/pkg/log"
	"rocmclean/pkg/prune"
	"rocmclean/pkg/pytorch"

	units "github.com/docker/go-units"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func NewCommand(cfg *config.Config) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "prune TARGETS",
		Short: "Remove GPU support files not needed by the given gfx targets",
		Long: `Prune removes the ROCm support files and directory trees for every GPU ISA
that is not in the semicolon separated target list. Targets must match known
ISA names exactly, including feature suffixes; an unknown target aborts the
run before anything is removed.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(c *cobra.Command, _ []string) error {
			flags.BindCommandToViper(c)

			return nil
		},
		RunE: func(c *cobra.Command, args []string) error {
			return run(c.Context(), c.OutOrStdout(), cfg, args[0])
		},
	}

	cmdflags.AddPruneFlagsToCommand(cmd, cfg)
	cmdflags.AddProfileFlagsToCommand(cmd, cfg)

	return cmd, nil
}

func run(ctx context.Context, w io.Writer, cfg *config.Config, targets string) error {
	logger := log.GetLogger(ctx)
	fs := afero.NewOsFs()

	res, err := isa.Default().Resolve(targets)
	if err != nil {
		return fmt.Errorf("resolving gfx targets: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"isas":     res.SortedShortISAs(),
		"versions": res.SortedShortVersions(),
	}).Info("keeping gfx targets")

	if free, err := diskspace.Free("/"); err == nil {
		logger.WithField("free", units.HumanSize(float64(free))).Debug("free disk space before prune")
	}

	pruneCfg, err := pruneConfig(ctx, fs, cfg)
	if err != nil {
		return err
	}

	pruner := prune.New(pruneCfg, isa.Default(), fs)

	plan, err := pruner.Plan(ctx, res)
	if err != nil {
		return fmt.Errorf("planning removal: %w", err)
	}

	if plan.Empty() {
		fmt.Fprintln(w, "Nothing to remove.")

		return nil
	}

	if cfg.Prune.DryRun {
		for _, action := range plan.Actions {
			fmt.Fprintf(w, "would remove %s %s (%s)\n",
				action.Kind, action.Path, units.HumanSize(float64(action.Size)))
		}

		fmt.Fprintf(w, "Would reclaim %s in %d removals.\n",
			units.HumanSize(float64(plan.TotalSize())), len(plan.Actions))

		return nil
	}

	for _, action := range plan.Actions {
		fmt.Fprintf(w, "removing %s %s (%s)\n",
			action.Kind, action.Path, units.HumanSize(float64(action.Size)))
	}

	result, err := pruner.Apply(ctx, plan)
	if err != nil {
		return fmt.Errorf("applying removal plan: %w", err)
	}

	fmt.Fprintf(w, "Reclaimed %s (%d files, %d trees).\n",
		units.HumanSize(float64(result.Reclaimed)), result.RemovedFiles, result.RemovedTrees)

	if free, err := diskspace.Free("/"); err == nil {
		logger.WithField("free", units.HumanSize(float64(free))).Debug("free disk space after prune")
	}

	return nil
}

// pruneConfig assembles the directories to prune from the defaults, the
// optional profile and the PyTorch discovery.
func pruneConfig(ctx context.Context, fs afero.Fs, cfg *config.Config) (*prune.Config, error) {
	logger := log.GetLogger(ctx)

	profilePath := cfg.ProfileFile
	if profilePath == "" {
		candidate := filepath.Join(defaults.ConfigurationDir, defaults.ProfileFile)
		if exists, _ := afero.Exists(fs, candidate); exists {
			profilePath = candidate
		}
	}

	profile, err := prune.LoadProfile(fs, profilePath)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	discoverer := pytorch.New(fs, os.Getenv("VIRTUAL_ENV"), nil)

	torchDir, err := discoverer.Discover(ctx, cfg.Prune.TorchDir)
	if err != nil {
		return nil, fmt.Errorf("discovering pytorch: %w", err)
	}

	if torchDir != "" {
		logger.WithField("dir", torchDir).Info("pytorch installation found")
	}

	pruneCfg := &prune.Config{
		BaseDirs: defaults.BaseDirs,
		DirTrees: defaults.DirTrees,
		TorchDir: torchDir,
	}
	profile.Apply(pruneCfg)

	return pruneCfg, nil
}
