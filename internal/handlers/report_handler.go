package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/ledger"
	"fintrack/internal/report"
	"fintrack/internal/services"
)

// ReportHandler handles summary and report requests.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetSummary returns income, expense, and balance totals over all transactions.
func (h *ReportHandler) GetSummary(c *gin.Context) {
	summary, err := h.reportService.Summary()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetCategorySummary returns per-category income and expense totals,
// which back the category breakdown chart.
func (h *ReportHandler) GetCategorySummary(c *gin.Context) {
	totals, err := h.reportService.CategorySummary()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": totals})
}

// GetReport returns the filtered report preview: formatted rows and total.
func (h *ReportHandler) GetReport(c *gin.Context) {
	criteria, err := parseReportCriteria(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.reportService.BuildReport(criteria)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": result})
}

// ExportReport streams the filtered report as a downloadable file in the
// requested format (xlsx, csv, or txt).
func (h *ReportHandler) ExportReport(c *gin.Context) {
	criteria, err := parseReportCriteria(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	format, err := report.ParseFormat(c.DefaultQuery("format", string(report.FormatDocument)))
	if err != nil {
		respondWithError(c, err)
		return
	}

	artifact, err := h.reportService.ExportReport(criteria, format)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

// parseReportCriteria reads the optional year, month, and date query
// parameters. Values must parse, but any combination of constraints is
// accepted; an impossible combination just produces an empty report.
func parseReportCriteria(c *gin.Context) (ledger.Criteria, error) {
	var criteria ledger.Criteria

	if v := c.Query("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return criteria, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid year")
		}
		criteria.Year = &year
	}

	if v := c.Query("month"); v != "" {
		month, err := strconv.Atoi(v)
		if err != nil {
			return criteria, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid month")
		}
		criteria.Month = &month
	}

	if v := c.Query("date"); v != "" {
		date, err := parseFlexibleTime(v)
		if err != nil {
			return criteria, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid date, use YYYY-MM-DD")
		}
		criteria.Date = &date
	}

	return criteria, nil
}
