package list

import (
	"fmt"
	"io"

	cmdflags "rocmclean/internal/command/flags"
	"rocmclean/internal/command/output"
	"rocmclean/internal/config"
	"rocmclean/pkg/flags"
	"rocmclean/pkg/isa"

	"github.com/spf13/cobra"
)

type row struct {
	Name           string `json:"name"            yaml:"name"`
	Version        string `json:"version"         yaml:"version"`
	SRAMECC        string `json:"sramecc"         yaml:"sramecc"`
	XNACK          string `json:"xnack"           yaml:"xnack"`
	WavefrontSize  int    `json:"wavefront_size"  yaml:"wavefront_size"`
	PyTorchSupport bool   `json:"pytorch_support" yaml:"pytorch_support"`
}

func NewCommand(cfg *config.Config) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the GPU ISAs known to this build",
		PreRunE: func(c *cobra.Command, _ []string) error {
			flags.BindCommandToViper(c)

			return nil
		},
		RunE: func(c *cobra.Command, _ []string) error {
			return run(c.OutOrStdout(), cfg)
		},
	}

	cmdflags.AddOutputFlagsToCommand(cmd, cfg)
	cmdflags.AddListFlagsToCommand(cmd, cfg)

	return cmd, nil
}

func run(w io.Writer, cfg *config.Config) error {
	entries := isa.Default().All()

	if cfg.List.PyTorchOnly {
		kept := entries[:0]

		for _, entry := range entries {
			if entry.PyTorchSupport {
				kept = append(kept, entry)
			}
		}

		entries = kept
	}

	rows := make([]row, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, row{
			Name:           entry.Name,
			Version:        entry.HSAOverrideVersion(),
			SRAMECC:        entry.SRAMECC.String(),
			XNACK:          entry.XNACK.String(),
			WavefrontSize:  entry.WavefrontSize,
			PyTorchSupport: entry.PyTorchSupport,
		})
	}

	return output.Render(w, cfg.Output, rows, func(w io.Writer) error {
		return renderText(w, rows)
	})
}

func renderText(w io.Writer, rows []row) error {
	fmt.Fprintf(w, "%-24s %-8s %-12s %-12s %-10s %s\n",
		"NAME", "VERSION", "SRAMECC", "XNACK", "WAVEFRONT", "PYTORCH")

	for _, r := range rows {
		pytorch := ""
		if r.PyTorchSupport {
			pytorch = "yes"
		}

		fmt.Fprintf(w, "%-24s %-8s %-12s %-12s %-10d %s\n",
			r.Name, r.Version, r.SRAMECC, r.XNACK, r.WavefrontSize, pytorch)
	}

	return nil
}
