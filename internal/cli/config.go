package cli

import (
	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// configCommand creates the config command that prints the effective settings.
func (c *CLI) configCommand() *cobra.Command {
	var registryURL string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Long: `Print the configuration pkgstat would use, after reading the config file
and applying defaults. The output is valid input for --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			applyInfoOverrides(&cfg, infoOpts{registry: registryURL})
			if err := cfg.Validate(); err != nil {
				return err
			}
			return toml.NewEncoder(c.out).Encode(cfg)
		},
	}

	cmd.Flags().StringVar(&registryURL, "registry", "", "registry base URL (overrides config)")

	return cmd
}
