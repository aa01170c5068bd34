package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"hbsreport/config"
	"hbsreport/hubstaff"
	"hbsreport/internal/timeutil"
	"hbsreport/output"
	"hbsreport/report"
)

var (
	generateDateStart string
	generateDateEnd   string
	generateFormat    string
	generateOutput    string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a tracked-time report across all organizations",
	Long: `Retrieve daily activity data from the Hubstaff API for every accessible
organization and render a report with one project-by-user time table per
organization.

The date range defaults to yesterday; an omitted end date falls back to the
start date. Any retrieval or validation failure aborts the run without
writing a partial document.`,
	Example: `
  # Yesterday's report, HTML to stdout
  hbsreport generate

  # Explicit range, Excel workbook
  hbsreport generate --date-start 2024-09-02 --date-end 2024-09-06 --format excel --output report.xlsx
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		dateStart, dateEnd, err := resolveDateRange(generateDateStart, generateDateEnd)
		if err != nil {
			return err
		}

		writer, err := output.WriterForFormat(generateFormat)
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
			logger.Error("authentication failed", "error", err)
			return err
		}

		generator := report.NewGenerator(client, logger)
		rpt, err := generator.Generate(ctx, dateStart, dateEnd)
		if err != nil {
			logger.Error("report generation failed", "error", err)
			return err
		}

		out, closeOutput, err := openOutput(generateOutput)
		if err != nil {
			return err
		}
		defer closeOutput()

		if err := writer.Write(out, rpt); err != nil {
			logger.Error("report rendering failed", "error", err)
			return err
		}

		logger.Info("report generated",
			"date_start", timeutil.FormatDay(dateStart),
			"date_end", timeutil.FormatDay(dateEnd),
			"organizations", len(rpt.TrackedActivities),
			"format", generateFormat,
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateDateStart, "date-start", "", "Start date (YYYY-MM-DD), default: yesterday")
	generateCmd.Flags().StringVar(&generateDateEnd, "date-end", "", "End date (YYYY-MM-DD), default: start date")
	generateCmd.Flags().StringVar(&generateFormat, "format", "html", "Output format: html, csv, or excel")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "-", "Output file (\"-\" writes to stdout)")
}
