package services

import (
	"fintrack/internal/ledger"
	"fintrack/internal/report"
)

// reportService derives summaries and report artifacts from the
// transaction store. Each call takes one snapshot of the full list and
// then runs pure computation over it, so a concurrent write can at worst
// make the result one snapshot stale, never internally inconsistent.
type reportService struct {
	transactions TransactionServicer
}

// NewReportService creates a new ReportServicer backed by the given store.
func NewReportService(transactions TransactionServicer) ReportServicer {
	return &reportService{transactions: transactions}
}

// Summary computes income, expense, and balance totals over all transactions.
func (s *reportService) Summary() (ledger.Summary, error) {
	snapshot, err := s.transactions.ListAllTransactions()
	if err != nil {
		return ledger.Summary{}, err
	}
	return ledger.Aggregate(snapshot), nil
}

// CategorySummary computes per-category income and expense buckets.
func (s *reportService) CategorySummary() ([]ledger.CategoryTotal, error) {
	snapshot, err := s.transactions.ListAllTransactions()
	if err != nil {
		return nil, err
	}
	return ledger.ByCategory(snapshot), nil
}

// BuildReport filters the snapshot by the criteria and returns the
// formatted rows with their net total, for the report preview.
func (s *reportService) BuildReport(criteria ledger.Criteria) (*Report, error) {
	snapshot, err := s.transactions.ListAllTransactions()
	if err != nil {
		return nil, err
	}

	subset := ledger.Filter(snapshot, criteria)
	return &Report{
		Description: criteria.Describe(),
		Rows:        report.FormatRows(subset),
		Total:       ledger.Total(subset),
	}, nil
}

// ExportReport filters the snapshot and renders it in the requested format.
func (s *reportService) ExportReport(criteria ledger.Criteria, format report.Format) (*report.Artifact, error) {
	snapshot, err := s.transactions.ListAllTransactions()
	if err != nil {
		return nil, err
	}

	subset := ledger.Filter(snapshot, criteria)
	return report.Export(subset, ledger.Total(subset), criteria, format)
}
