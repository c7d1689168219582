package command

import (
	"fmt"

	"rocmclean/internal/command/list"
	"rocmclean/internal/command/prune"
	"rocmclean/internal/command/resolve"
	"rocmclean/internal/config"
	"rocmclean/internal/version"
	"rocmclean/pkg/defaults"
	"rocmclean/pkg/flags"
	"rocmclean/pkg/log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewRootCommand() (*cobra.Command, error) {
	cfg := &config.Config{}

	cmd := &cobra.Command{
		Use:   "rocmclean",
		Short: "Reclaim disk space by removing unused ROCm GPU support files",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			flags.BindCommandToViper(cmd)

			if err := log.Configure(&cfg.Logging); err != nil {
				return fmt.Errorf("configuring logging: %w", err)
			}

			return nil
		},
		RunE: func(c *cobra.Command, _ []string) error {
			return c.Help()
		},
	}

	log.AddFlagsToCommand(cmd, &cfg.Logging)

	if err := addRootSubCommands(cmd, cfg); err != nil {
		return nil, fmt.Errorf("adding subcommands: %w", err)
	}

	cobra.OnInitialize(initCobra)

	return cmd, nil
}

func initCobra() {
	viper.SetEnvPrefix("ROCMCLEAN")
	viper.AutomaticEnv()
	viper.SetConfigType("yaml")
	viper.SetConfigName("config")
	viper.AddConfigPath(defaults.ConfigurationDir)
	viper.AddConfigPath("$HOME/.config/rocmclean/")

	_ = viper.ReadInConfig()
}

func addRootSubCommands(cmd *cobra.Command, cfg *config.Config) error {
	pruneCmd, err := prune.NewCommand(cfg)
	if err != nil {
		return fmt.Errorf("creating prune cobra command: %w", err)
	}

	resolveCmd, err := resolve.NewCommand(cfg)
	if err != nil {
		return fmt.Errorf("creating resolve command: %w", err)
	}

	listCmd, err := list.NewCommand(cfg)
	if err != nil {
		return fmt.Errorf("creating list command: %w", err)
	}

	cmd.AddCommand(pruneCmd)
	cmd.AddCommand(resolveCmd)
	cmd.AddCommand(listCmd)
	cmd.AddCommand(versionCommand())

	return nil
}

func versionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of rocmclean",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				long, short bool
				err         error
			)

			if long, err = cmd.Flags().GetBool("long"); err != nil {
				return err
			}

			if short, err = cmd.Flags().GetBool("short"); err != nil {
				return err
			}

			if short {
				fmt.Fprintln(cmd.OutOrStdout(), version.Version)

				return nil
			}

			if long {
				fmt.Fprintf(
					cmd.OutOrStdout(),
					"%s\n  Version:    %s\n  CommitHash: %s\n  BuildDate:  %s\n",
					version.PackageName,
					version.Version,
					version.CommitHash,
					version.BuildDate,
				)

				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", version.PackageName, version.Version)

			return nil
		},
	}

	_ = cmd.Flags().Bool("long", false, "Print long version information")
	_ = cmd.Flags().Bool("short", false, "Print short version information")

	return cmd
}
