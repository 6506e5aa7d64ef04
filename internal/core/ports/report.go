package ports

import "go.trai.ch/sourcerer/internal/core/domain"

// ReportStore persists merged reports and their analysis.
//
//go:generate mockgen -source=report.go -destination=mocks/mock_report.go -package=mocks
type ReportStore interface {
	WriteReport(path string, report domain.Report) error
	ReadReport(path string) (domain.Report, error)
	WriteAnalysis(path string, analysis domain.Analysis) error
}
