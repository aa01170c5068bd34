package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hbsreport/config"
)

var (
	cfgFile string
	logFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hbsreport",
	Short: "Generate tracked-time reports from the Hubstaff API.",
	Long: `hbsreport signs in to the Hubstaff API, retrieves daily activity data for
every organization the account can see, and cross-tabulates tracked time into
a project-by-user table per organization.

Credentials come from the environment (HUBSTAFF_API_URL, HUBSTAFF_API_EMAIL,
HUBSTAFF_API_PASSWORD, HUBSTAFF_API_APP_TOKEN) or from a YAML config file.
The rendered document goes to standard output by default.`,
	Example: `
  # Create configuration file
  hbsreport config create

  # Report for yesterday, HTML to stdout
  hbsreport generate

  # Report for an explicit date range
  hbsreport generate --date-start 2024-09-02 --date-end 2024-09-03

  # CSV report into a file
  hbsreport generate --format csv --output report.csv

  # List accessible organizations
  hbsreport orgs
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.hbsreport.yaml, then ./.hbsreport.yaml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "logFile", "hbsreport.log", "Log file path (\"-\" logs to stderr)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".hbsreport" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".hbsreport")
	}

	// Config file is optional; the environment alone is enough.
	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		fmt.Fprintf(os.Stderr, "Cannot read config file %s: %v\n", cfgFile, err)
	}
}
