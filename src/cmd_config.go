package src

import (
	"encoding/json"
	"fmt"

	"github.com/ironsmile/brainz/src/config"
	"github.com/ironsmile/brainz/src/version"
	"github.com/spf13/cobra"
)

func (a *app) configCommand() *cobra.Command {
	var initialize bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the configuration in use",
		Long: `Show the configuration in use as JSON. With --init a configuration file with
the defaults is created in place of the user configuration.`,
		Args: usageArgs(cobra.NoArgs),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if initialize {
				return nil
			}
			return a.setup(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if initialize {
				path := a.configPath
				if path == "" {
					var err error
					path, err = config.UserConfigPath()
					if err != nil {
						return err
					}
				}

				if err := config.Write(a.fs, path, config.Defaults()); err != nil {
					return err
				}

				fmt.Fprintf(a.stdout, "Configuration created in %s\n", path)
				return nil
			}

			data, err := json.MarshalIndent(a.cfg, "", "    ")
			if err != nil {
				return err
			}

			fmt.Fprintln(a.stdout, string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&initialize, "init", false, "create a configuration file with the defaults")
	return cmd
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  usageArgs(cobra.NoArgs),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			version.Print(a.stdout)
		},
	}
}
