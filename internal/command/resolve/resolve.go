package resolve

import (
	"context"
	"fmt"
	"io"
	"strings"

	cmdflags "rocmclean/internal/command/flags"
	"rocmclean/internal/command/output"
	"rocmclean/internal/config"
	"rocmclean/pkg/flags"
	"rocmclean/pkg/isa"
	"rocmclean/pkg/log"

	"github.com/spf13/cobra"
)

// result is the structured form of a resolution for json and yaml output.
type result struct {
	ShortISAs     []string `json:"short_isas"     yaml:"short_isas"`
	ShortVersions []string `json:"short_versions" yaml:"short_versions"`
	Entries       []entry  `json:"entries"        yaml:"entries"`
}

type entry struct {
	Name           string `json:"name"                               yaml:"name"`
	ShortISA       string `json:"short_isa"                          yaml:"short_isa"`
	ShortVersion   string `json:"short_version"                      yaml:"short_version"`
	SRAMECC        string `json:"sramecc"                            yaml:"sramecc"`
	XNACK          string `json:"xnack"                              yaml:"xnack"`
	WavefrontSize  int    `json:"wavefront_size"                     yaml:"wavefront_size"`
	PyTorchSupport bool   `json:"pytorch_support"                    yaml:"pytorch_support"`
	HSAOverride    string `json:"hsa_override_gfx_version,omitempty" yaml:"hsa_override_gfx_version,omitempty"`
}

func NewCommand(cfg *config.Config) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "resolve TARGETS",
		Short: "Resolve a gfx target list into the ISA families and versions it keeps",
		Long: `Resolve a semicolon separated gfx target list, such as the build targets
of a ROCm library, into the set of short ISA names and coarse gfx versions
those targets keep on disk. Every target must match a known ISA exactly,
including feature suffixes like ":xnack-".`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(c *cobra.Command, _ []string) error {
			flags.BindCommandToViper(c)

			return nil
		},
		RunE: func(c *cobra.Command, args []string) error {
			return run(c.Context(), c.OutOrStdout(), cfg, args[0])
		},
	}

	cmdflags.AddOutputFlagsToCommand(cmd, cfg)
	cmdflags.AddResolveFlagsToCommand(cmd, cfg)

	return cmd, nil
}

func run(ctx context.Context, w io.Writer, cfg *config.Config, targets string) error {
	res, err := isa.Default().Resolve(targets)
	if err != nil {
		return fmt.Errorf("resolving gfx targets: %w", err)
	}

	logger := log.GetLogger(ctx)
	for _, e := range res.Entries {
		logger.Trace(e.String())
	}

	return output.Render(w, cfg.Output, toResult(res, cfg.Resolve.Hints), func(w io.Writer) error {
		return renderText(w, res, cfg.Resolve.Hints)
	})
}

func toResult(res *isa.Resolution, hints bool) result {
	out := result{
		ShortISAs:     res.SortedShortISAs(),
		ShortVersions: res.SortedShortVersions(),
		Entries:       make([]entry, 0, len(res.Entries)),
	}

	for _, e := range res.Entries {
		item := entry{
			Name:           e.Name,
			ShortISA:       e.ShortISA(),
			ShortVersion:   e.ShortGfx(),
			SRAMECC:        e.SRAMECC.String(),
			XNACK:          e.XNACK.String(),
			WavefrontSize:  e.WavefrontSize,
			PyTorchSupport: e.PyTorchSupport,
		}

		if hints {
			item.HSAOverride = e.HSAOverrideVersion()
		}

		out.Entries = append(out.Entries, item)
	}

	return out
}

func renderText(w io.Writer, res *isa.Resolution, hints bool) error {
	fmt.Fprintf(w, "Keep ISAs:     %s\n", strings.Join(res.SortedShortISAs(), " "))
	fmt.Fprintf(w, "Keep versions: %s\n", strings.Join(res.SortedShortVersions(), " "))

	for _, e := range res.Entries {
		fmt.Fprintf(w, "  %s\n", e)

		if hints {
			fmt.Fprintf(w, "    HSA_OVERRIDE_GFX_VERSION=%s\n", e.HSAOverrideVersion())
		}
	}

	return nil
}
