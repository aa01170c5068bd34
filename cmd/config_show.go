package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hbsreport/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values. Secrets are
redacted.`,
	Example: `
  # Show active configuration
  hbsreport config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		} else {
			fmt.Println("No config file in use; values come from defaults and environment.")
		}
		fmt.Println("Configuration:")
		fmt.Printf("api.url: %s\n", cfg.API.URL)
		fmt.Printf("api.email: %s\n", cfg.API.Email)
		fmt.Printf("api.password: %s\n", redact(cfg.API.Password))
		fmt.Printf("api.app_token: %s\n", redact(cfg.API.AppToken))
		fmt.Printf("report.max_pages: %d\n", cfg.Report.MaxPages)
		fmt.Printf("report.timeout: %s\n", cfg.Report.Timeout)
		fmt.Printf("report.requests_per_second: %g\n", cfg.Report.RequestsPerSecond)
	},
}

func redact(value string) string {
	if value == "" {
		return "(unset)"
	}
	return "********"
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
