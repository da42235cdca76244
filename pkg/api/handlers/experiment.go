package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/variantlab/abtest/ent"
	"github.com/variantlab/abtest/pkg/api/errors"
	"github.com/variantlab/abtest/pkg/experiments"
	"github.com/variantlab/abtest/pkg/export"
	"github.com/variantlab/abtest/pkg/metrics"
	"github.com/variantlab/abtest/pkg/models"
)

// ExperimentHandler handles experiment management endpoints
type ExperimentHandler struct {
	experimentService *experiments.Service
	exportService     *export.Service
	metrics           *metrics.Metrics
	validator         *validator.Validate
}

// NewExperimentHandler creates a new experiment handler
func NewExperimentHandler(experimentService *experiments.Service, exportService *export.Service, m *metrics.Metrics) *ExperimentHandler {
	return &ExperimentHandler{
		experimentService: experimentService,
		exportService:     exportService,
		metrics:           m,
		validator:         validator.New(),
	}
}

// Create godoc
// @Summary Create an experiment
// @Description Create an experiment with its variants. The experiment starts in draft status.
// @Tags Experiments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateExperimentRequest true "Experiment definition"
// @Success 201 {object} ent.Experiment "Created experiment"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /experiments [post]
func (h *ExperimentHandler) Create(c echo.Context) error {
	var req models.CreateExperimentRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	exp, err := h.experimentService.Create(c.Request().Context(), &req)
	if err != nil {
		return errors.Respond(c, err)
	}

	return c.JSON(http.StatusCreated, exp)
}

// List godoc
// @Summary List experiments
// @Description List all experiments, newest first, optionally filtered by status.
// @Tags Experiments
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter (draft, running, paused, completed, archived)"
// @Success 200 {array} ent.Experiment "Experiments"
// @Router /experiments [get]
func (h *ExperimentHandler) List(c echo.Context) error {
	exps, err := h.experimentService.FindAll(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, exps)
}

// GetByID godoc
// @Summary Get an experiment
// @Description Get one experiment with its variants.
// @Tags Experiments
// @Produce json
// @Security BearerAuth
// @Param id path integer true "Experiment ID"
// @Success 200 {object} ent.Experiment "Experiment"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /experiments/{id} [get]
func (h *ExperimentHandler) GetByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errors.ValidationError(c, err)
	}

	exp, err := h.experimentService.FindByID(c.Request().Context(), id)
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, exp)
}

// Update godoc
// @Summary Update an experiment
// @Description Apply a partial update. Variants can only be replaced while the experiment is draft.
// @Tags Experiments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path integer true "Experiment ID"
// @Param request body models.UpdateExperimentRequest true "Fields to update"
// @Success 200 {object} ent.Experiment "Updated experiment"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Failure 422 {object} models.ErrorResponse "Variants locked after start"
// @Router /experiments/{id} [patch]
func (h *ExperimentHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errors.ValidationError(c, err)
	}

	var req models.UpdateExperimentRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	exp, err := h.experimentService.Update(c.Request().Context(), id, &req)
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, exp)
}

// UpdateVariant godoc
// @Summary Update a variant
// @Description Apply a partial update to one variant of an experiment.
// @Tags Experiments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path integer true "Experiment ID"
// @Param variantId path integer true "Variant ID"
// @Param request body models.UpdateVariantRequest true "Fields to update"
// @Success 200 {object} ent.ExperimentVariant "Updated variant"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /experiments/{id}/variants/{variantId} [patch]
func (h *ExperimentHandler) UpdateVariant(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errors.ValidationError(c, err)
	}
	variantID, err := strconv.Atoi(c.Param("variantId"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	var req models.UpdateVariantRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	v, err := h.experimentService.UpdateVariant(c.Request().Context(), id, variantID, &req)
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

// Delete godoc
// @Summary Delete an experiment
// @Description Delete an experiment with its variants, assignments, and results.
// @Tags Experiments
// @Security BearerAuth
// @Param id path integer true "Experiment ID"
// @Success 204 "Deleted"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /experiments/{id} [delete]
func (h *ExperimentHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errors.ValidationError(c, err)
	}

	if err := h.experimentService.Remove(c.Request().Context(), id); err != nil {
		return errors.Respond(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Start godoc
// @Summary Start an experiment
// @Description Transition a draft or paused experiment to running.
// @Tags Experiments
// @Produce json
// @Security BearerAuth
// @Param id path integer true "Experiment ID"
// @Success 200 {object} ent.Experiment "Running experiment"
// @Failure 422 {object} models.ErrorResponse "Illegal transition"
// @Router /experiments/{id}/start [post]
func (h *ExperimentHandler) Start(c echo.Context) error {
	return h.transition(c, h.experimentService.Start)
}

// Pause godoc
// @Summary Pause an experiment
// @Description Transition a running experiment to paused.
// @Tags Experiments
// @Produce json
// @Security BearerAuth
// @Param id path integer true "Experiment ID"
// @Success 200 {object} ent.Experiment "Paused experiment"
// @Failure 422 {object} models.ErrorResponse "Illegal transition"
// @Router /experiments/{id}/pause [post]
func (h *ExperimentHandler) Pause(c echo.Context) error {
	return h.transition(c, h.experimentService.Pause)
}

// Complete godoc
// @Summary Complete an experiment
// @Description Transition a running or paused experiment to completed.
// @Tags Experiments
// @Produce json
// @Security BearerAuth
// @Param id path integer true "Experiment ID"
// @Success 200 {object} ent.Experiment "Completed experiment"
// @Failure 422 {object} models.ErrorResponse "Illegal transition"
// @Router /experiments/{id}/complete [post]
func (h *ExperimentHandler) Complete(c echo.Context) error {
	return h.transition(c, h.experimentService.Complete)
}

// Archive godoc
// @Summary Archive an experiment
// @Description Archive any experiment that is not currently running.
// @Tags Experiments
// @Produce json
// @Security BearerAuth
// @Param id path integer true "Experiment ID"
// @Success 200 {object} ent.Experiment "Archived experiment"
// @Failure 422 {object} models.ErrorResponse "Illegal transition"
// @Router /experiments/{id}/archive [post]
func (h *ExperimentHandler) Archive(c echo.Context) error {
	return h.transition(c, h.experimentService.Archive)
}

// DeclareWinner godoc
// @Summary Declare a winning variant
// @Description Mark one of the experiment's variants as the winner.
// @Tags Experiments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path integer true "Experiment ID"
// @Param request body models.DeclareWinnerRequest true "Winning variant"
// @Success 200 {object} ent.Experiment "Experiment with winner"
// @Failure 400 {object} models.ErrorResponse "Variant belongs to another experiment"
// @Router /experiments/{id}/winner [post]
func (h *ExperimentHandler) DeclareWinner(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errors.ValidationError(c, err)
	}

	var req models.DeclareWinnerRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	exp, err := h.experimentService.DeclareWinner(c.Request().Context(), id, req.VariantID)
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, exp)
}

// Results godoc
// @Summary Experiment results
// @Description Aggregated per-variant counts, conversion rates, and revenue.
// @Tags Experiments
// @Produce json
// @Security BearerAuth
// @Param id path integer true "Experiment ID"
// @Success 200 {object} experiments.ExperimentReport "Aggregated results"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /experiments/{id}/results [get]
func (h *ExperimentHandler) Results(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errors.ValidationError(c, err)
	}

	report, err := h.experimentService.Results(c.Request().Context(), id)
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

// Export godoc
// @Summary Export results as XLSX
// @Description Download an XLSX workbook with the experiment summary and per-variant results.
// @Tags Experiments
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path integer true "Experiment ID"
// @Success 200 {file} binary "Workbook"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /experiments/{id}/export [get]
func (h *ExperimentHandler) Export(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errors.ValidationError(c, err)
	}

	f, err := h.exportService.BuildResultsWorkbook(c.Request().Context(), id)
	if err != nil {
		return errors.Respond(c, err)
	}
	defer f.Close()

	if h.metrics != nil {
		h.metrics.RecordExportCreated()
	}

	filename := fmt.Sprintf("experiment-%d-results-%s.xlsx", id, time.Now().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Response().WriteHeader(http.StatusOK)

	if err := f.Write(c.Response().Writer); err != nil {
		return err
	}
	return nil
}

func (h *ExperimentHandler) transition(c echo.Context, fn func(ctx context.Context, id int) (*ent.Experiment, error)) error {
	id, err := parseID(c)
	if err != nil {
		return errors.ValidationError(c, err)
	}

	exp, err := fn(c.Request().Context(), id)
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, exp)
}

func parseID(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}
