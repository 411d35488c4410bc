package whitelist

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mar-cial/whitelist/config"
)

func buildStatusCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the registry's state for the configured endpoint",
		Long:  ``,
		RunE: func(cmd *cobra.Command, args []string) error {
			lggr, err := newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = lggr.Sync() }()

			cfg, err := config.Load(*envFile)
			if err != nil {
				return err
			}

			provider, err := cfg.Provider(lggr)
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			conn, err := provider.Connect(ctx)
			if err != nil {
				return err
			}
			defer conn.Close()

			count, err := conn.Inspector().NumWhitelisted(ctx)
			if err != nil {
				return err
			}

			limit, err := conn.Inspector().MaxWhitelisted(ctx)
			if err != nil {
				return err
			}

			chain := provider.Chain()
			fmt.Printf("Network:    %s (chain id %d)\n", chain.Name, chain.EvmChainID)
			fmt.Printf("Contract:   %s\n", cfg.ContractAddr())
			fmt.Printf("Registered: %d of %d\n", count, limit)

			if conn.ReadOnly() {
				return nil
			}

			member, err := conn.Inspector().IsWhitelisted(ctx, conn.Account())
			if err != nil {
				return err
			}

			fmt.Printf("Account:    %s\n", conn.Account())
			fmt.Printf("Member:     %t\n", member)

			return nil
		},
	}
}
