package whitelist

import (
	"fmt"

	"github.com/spf13/cobra"
)

func buildJoinCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "join",
		Short: "Register the configured account on the whitelist",
		Long:  `Connects with the configured signer, submits the registration transaction, and waits for it to be confirmed on chain.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lggr, err := newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = lggr.Sync() }()

			session, _, err := buildSession(*envFile, lggr)
			if err != nil {
				return err
			}
			defer session.Close()

			ctx := cmd.Context()

			if err := session.Connect(ctx); err != nil {
				return err
			}

			snap := session.Snapshot()
			if snap.State.JoinedWhitelist {
				fmt.Printf("Account %s is already registered\n", snap.Account)
				return nil
			}

			if err := session.Join(ctx); err != nil {
				return err
			}

			snap = session.Snapshot()
			fmt.Printf("Account %s joined the whitelist (%d registered)\n", snap.Account, snap.State.NumberOfWhitelisted)

			return nil
		},
	}
}
