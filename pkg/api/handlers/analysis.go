package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/variantlab/abtest/pkg/analysis"
	"github.com/variantlab/abtest/pkg/api/errors"
)

// AnalysisHandler handles the statistical analysis endpoints
type AnalysisHandler struct {
	analysisService *analysis.Service
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisService *analysis.Service) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// Significance godoc
// @Summary Statistical significance
// @Description Run the two-proportion z-test of every variant against control.
// @Tags Analysis
// @Produce json
// @Security BearerAuth
// @Param id path integer true "Experiment ID"
// @Success 200 {object} analysis.SignificanceReport "Significance report"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Failure 422 {object} models.ErrorResponse "No control variant"
// @Router /experiments/{id}/significance [get]
func (h *AnalysisHandler) Significance(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errors.ValidationError(c, err)
	}

	report, err := h.analysisService.CalculateStatisticalSignificance(c.Request().Context(), id)
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

// CompletionEstimate godoc
// @Summary Time-to-completion estimate
// @Description Project the days left until the experiment reaches its required sample size.
// @Tags Analysis
// @Produce json
// @Security BearerAuth
// @Param id path integer true "Experiment ID"
// @Param daily_traffic query integer true "Expected impressions per day across all variants"
// @Success 200 {object} analysis.CompletionEstimate "Completion estimate"
// @Failure 400 {object} models.ErrorResponse "Invalid daily traffic"
// @Router /experiments/{id}/completion-estimate [get]
func (h *AnalysisHandler) CompletionEstimate(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errors.ValidationError(c, err)
	}

	dailyTraffic, err := strconv.Atoi(c.QueryParam("daily_traffic"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	estimate, err := h.analysisService.EstimateTimeToCompletion(c.Request().Context(), id, dailyTraffic)
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, estimate)
}

// MetricsOverTime godoc
// @Summary Metrics over time
// @Description Per-variant impressions and conversions bucketed by day, week, or month.
// @Tags Analysis
// @Produce json
// @Security BearerAuth
// @Param id path integer true "Experiment ID"
// @Param interval query string false "Bucket size (day, week, month)" default(day)
// @Success 200 {object} analysis.TimeSeriesReport "Time series report"
// @Failure 400 {object} models.ErrorResponse "Invalid interval"
// @Router /experiments/{id}/metrics-over-time [get]
func (h *AnalysisHandler) MetricsOverTime(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errors.ValidationError(c, err)
	}

	interval := c.QueryParam("interval")
	if interval == "" {
		interval = "day"
	}

	report, err := h.analysisService.MetricsOverTime(c.Request().Context(), id, interval)
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, report)
}
