package report

import (
	"context"
	"log/slog"
	"time"

	"hbsreport/hubstaff"
)

// Report is the renderer input: one matrix per organization name, keyed to
// the report date.
type Report struct {
	ReportDate        time.Time
	TrackedActivities map[string]Matrix
}

type Generator struct {
	client hubstaff.Client
	logger *slog.Logger
}

func NewGenerator(client hubstaff.Client, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{client: client, logger: logger}
}

// Generate pulls daily activities for every organization, strictly in
// sequence, and aggregates each into a matrix. Any failure aborts the whole
// run; there is no partial report.
func (g *Generator) Generate(ctx context.Context, dateStart, dateEnd time.Time) (Report, error) {
	orgs, err := g.client.GetOrganizations(ctx)
	if err != nil {
		return Report{}, err
	}
	g.logger.Info("organizations retrieved", "count", len(orgs.Organizations))

	tracked := make(map[string]Matrix, len(orgs.Organizations))
	for _, org := range orgs.Organizations {
		g.logger.Info("fetching daily activities",
			"organization", org.Name,
			"organization_id", org.ID,
		)
		operations, err := g.client.GetOperationsByDay(ctx, org.ID, dateStart, dateEnd)
		if err != nil {
			return Report{}, err
		}
		matrix, err := Accumulate(operations)
		if err != nil {
			return Report{}, err
		}
		tracked[org.Name] = matrix
	}

	return Report{ReportDate: dateStart, TrackedActivities: tracked}, nil
}
