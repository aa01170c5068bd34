package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"hbsreport/config"
	"hbsreport/hubstaff"
	"hbsreport/internal/timeutil"
)

// newLogger writes structured JSON logs to the configured log file so the
// rendered document on stdout stays clean. "-" selects stderr.
func newLogger(path string) (*slog.Logger, func(), error) {
	var out io.Writer = os.Stderr
	cleanup := func() {}

	if path != "" && path != "-" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
		}
		out = file
		cleanup = func() { file.Close() }
	}

	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelInfo}))
	return logger, cleanup, nil
}

// resolveDateRange applies the CLI defaulting rules: start falls back to
// yesterday, end falls back to start.
func resolveDateRange(startValue, endValue string) (time.Time, time.Time, error) {
	start := timeutil.Yesterday()
	if startValue != "" {
		parsed, err := timeutil.ParseDay(startValue)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = parsed
	}

	end := start
	if endValue != "" {
		parsed, err := timeutil.ParseDay(endValue)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = parsed
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date %s is before start date %s",
			timeutil.FormatDay(end), timeutil.FormatDay(start))
	}
	return start, end, nil
}

func clientConfig(cfg *config.Config, logger *slog.Logger) hubstaff.ClientConfig {
	return hubstaff.ClientConfig{
		BaseURL:           cfg.API.URL,
		AppToken:          cfg.API.AppToken,
		Email:             cfg.API.Email,
		Password:          cfg.API.Password,
		Timeout:           cfg.Report.Timeout,
		MaxPages:          cfg.Report.MaxPages,
		RequestsPerSecond: cfg.Report.RequestsPerSecond,
		Logger:            logger,
	}
}

// openOutput returns the destination for the rendered document. "-" selects
// stdout.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file %s: %w", path, err)
	}
	return file, func() { file.Close() }, nil
}
