package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the hbsreport configuration file.",
	Long: `Create and inspect the hbsreport configuration file.

The configuration stores the API connection values and report limits:
- api.url / api.email / api.password / api.app_token
- report.max_pages / report.timeout / report.requests_per_second

Environment variables with the HUBSTAFF_ prefix override file values.`,
	Example: `
  # Create default config in $HOME/.hbsreport.yaml
  hbsreport config create

  # Show the active configuration
  hbsreport config show
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
