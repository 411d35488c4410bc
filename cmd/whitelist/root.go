package whitelist

import (
	"github.com/spf13/cobra"

	"github.com/mar-cial/whitelist/config"
)

// BuildWhitelistCmd assembles the whitelist CLI.
func BuildWhitelistCmd() *cobra.Command {
	var envFile string

	cmd := cobra.Command{
		Use:   "whitelist",
		Short: "Client for the on-chain whitelist registry",
		Long:  ``,
	}

	cmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "Path to the env file holding the client configuration")

	cmd.AddCommand(buildServeCmd(&envFile))
	cmd.AddCommand(buildStatusCmd(&envFile))
	cmd.AddCommand(buildJoinCmd(&envFile))

	return &cmd
}
