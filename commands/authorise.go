package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gsuite-tools/sheets-records/log"
)

// NewAuthoriseCmd runs the OAuth2 consent flow for the configured credentials and caches
// the tokens in the working directory.
func NewAuthoriseCmd(options *Options) *cobra.Command {
	var credentials string

	cmd := &cobra.Command{
		Use:     "authorise",
		Aliases: []string{"authorize"},
		Short:   "Authorises sheets-records to access Google Sheets and Google Drive",
		Example: `  sheets-records authorise --credentials .google/credentials.json`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := options.load()
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("credentials") {
				conf.Credentials = credentials
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			if _, err := authorize(ctx, conf, cmd); err != nil {
				return err
			}

			log.Infof("Authorised - tokens saved to %s", conf.TokensFile())
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", conf.TokensFile())

			return nil
		},
	}

	cmd.Flags().StringVar(&credentials, "credentials", "", "Path for the 'credentials.json' file")

	return cmd
}
