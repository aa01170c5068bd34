package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"hbsreport/config"
	"hbsreport/hubstaff"
)

var orgsCmd = &cobra.Command{
	Use:   "orgs",
	Short: "List organizations accessible to the configured account",
	Example: `
  hbsreport orgs
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		logger, closeLogger, err := newLogger(logFile)
		if err != nil {
			return err
		}
		defer closeLogger()

		ctx := context.Background()
		client, err := hubstaff.Authenticate(ctx, clientConfig(cfg, logger))
		if err != nil {
			return err
		}

		orgs, err := client.GetOrganizations(ctx)
		if err != nil {
			return err
		}

		writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(writer, "ID\tNAME")
		for _, org := range orgs.Organizations {
			fmt.Fprintf(writer, "%d\t%s\n", org.ID, org.Name)
		}
		return writer.Flush()
	},
}

func init() {
	rootCmd.AddCommand(orgsCmd)
}
