package service

import (
	"fleetmeter/internal/server/aggregator"
	"fleetmeter/internal/server/display"
	"fleetmeter/internal/types"

	"go.uber.org/zap"
)

// ReportService represents the report service
type ReportService interface {
	IngestReport(report types.Report) error
	ListReports() []types.ListedReport
	MergeReports(ids []string) *types.MergedSummary
}

// _ implements ReportService
var _ ReportService = (*Service)(nil)

// IngestReport stores or replaces the latest report for an agent
func (s *Service) IngestReport(report types.Report) error {
	if err := s.store.Put(report.ID, report); err != nil {
		return err
	}

	s.logger.Debug("report ingested",
		zap.String("agent_id", report.ID),
		zap.String("hostname", report.Hostname))
	return nil
}

// ListReports returns the presentation snapshot of every live entry,
// annotated with the offline flag and cosmetic renames
func (s *Service) ListReports() []types.ListedReport {
	snaps := s.store.List()

	out := make([]types.ListedReport, 0, len(snaps))
	for _, snap := range snaps {
		out = append(out, display.Annotate(snap, s.config.Store.OfflineThreshold, s.maps))
	}
	return out
}

// MergeReports aggregates the fresh reports, optionally restricted to
// ids. The fresh set is copied out of the store first; Merge itself holds
// no lock. Nil means no fresh data qualified.
func (s *Service) MergeReports(ids []string) *types.MergedSummary {
	return aggregator.Merge(s.store.Fresh(ids))
}
