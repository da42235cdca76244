package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/variantlab/abtest/pkg/api/errors"
	"github.com/variantlab/abtest/pkg/assignment"
	"github.com/variantlab/abtest/pkg/models"
)

// accepted is the fixed response body of every tracking endpoint
var accepted = map[string]string{"status": "accepted"}

// AssignmentHandler handles the public assignment and tracking endpoints
type AssignmentHandler struct {
	assignmentService *assignment.Service
	validator         *validator.Validate
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(assignmentService *assignment.Service) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
		validator:         validator.New(),
	}
}

// Assign godoc
// @Summary Get or create an assignment
// @Description Bucket a visitor into a variant of a running experiment. Idempotent per identity.
// @Tags Assignments
// @Accept json
// @Produce json
// @Param request body models.AssignmentRequest true "Experiment and visitor identity"
// @Success 200 {object} ent.ExperimentAssignment "Assignment"
// @Failure 400 {object} models.ErrorResponse "Missing identity"
// @Failure 404 {object} models.ErrorResponse "Experiment not found"
// @Failure 422 {object} models.ErrorResponse "Experiment not running"
// @Router /assignments [post]
func (h *AssignmentHandler) Assign(c echo.Context) error {
	var req models.AssignmentRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	a, err := h.assignmentService.GetOrCreateAssignment(c.Request().Context(), req.ExperimentID, req.UserID, req.SessionID)
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

// List godoc
// @Summary List a visitor's assignments
// @Description List assignments by user ID or session ID, newest first.
// @Tags Assignments
// @Produce json
// @Param user_id query string false "User ID"
// @Param session_id query string false "Session ID"
// @Success 200 {array} ent.ExperimentAssignment "Assignments"
// @Failure 400 {object} models.ErrorResponse "Missing identity"
// @Router /assignments [get]
func (h *AssignmentHandler) List(c echo.Context) error {
	assignments, err := h.assignmentService.GetUserAssignments(c.Request().Context(), c.QueryParam("user_id"), c.QueryParam("session_id"))
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, assignments)
}

// VariantConfiguration godoc
// @Summary Batch variant configuration
// @Description Assign the visitor to every running experiment of a type and return the variant configuration per experiment. Never fails; trouble yields null.
// @Tags Assignments
// @Produce json
// @Param type query string true "Experiment type"
// @Param user_id query string false "User ID"
// @Param session_id query string false "Session ID"
// @Success 200 {object} map[int]assignment.VariantConfiguration "Configurations keyed by experiment ID"
// @Router /variant-config [get]
func (h *AssignmentHandler) VariantConfiguration(c echo.Context) error {
	configs := h.assignmentService.GetVariantConfiguration(
		c.Request().Context(),
		c.QueryParam("type"),
		c.QueryParam("user_id"),
		c.QueryParam("session_id"),
	)
	return c.JSON(http.StatusOK, configs)
}

// TrackImpression godoc
// @Summary Track an impression
// @Description Record that the visitor saw their variant. Always accepted.
// @Tags Tracking
// @Produce json
// @Param id path integer true "Assignment ID"
// @Success 202 {object} map[string]string "Accepted"
// @Router /assignments/{id}/impression [post]
func (h *AssignmentHandler) TrackImpression(c echo.Context) error {
	if id, err := strconv.Atoi(c.Param("id")); err == nil {
		h.assignmentService.TrackImpression(c.Request().Context(), id)
	}
	return c.JSON(http.StatusAccepted, accepted)
}

// TrackInteraction godoc
// @Summary Track an interaction
// @Description Record a click or comparable interaction. Always accepted.
// @Tags Tracking
// @Accept json
// @Produce json
// @Param id path integer true "Assignment ID"
// @Param request body models.TrackInteractionRequest false "Interaction details"
// @Success 202 {object} map[string]string "Accepted"
// @Router /assignments/{id}/interaction [post]
func (h *AssignmentHandler) TrackInteraction(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusAccepted, accepted)
	}

	var req models.TrackInteractionRequest
	if err := c.Bind(&req); err == nil {
		h.assignmentService.TrackInteraction(c.Request().Context(), id, req.Context, req.Metadata)
	}
	return c.JSON(http.StatusAccepted, accepted)
}

// TrackConversion godoc
// @Summary Track a conversion
// @Description Record a conversion, optionally with a monetary value. Always accepted.
// @Tags Tracking
// @Accept json
// @Produce json
// @Param id path integer true "Assignment ID"
// @Param request body models.TrackConversionRequest false "Conversion details"
// @Success 202 {object} map[string]string "Accepted"
// @Router /assignments/{id}/conversion [post]
func (h *AssignmentHandler) TrackConversion(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusAccepted, accepted)
	}

	var req models.TrackConversionRequest
	if err := c.Bind(&req); err == nil {
		h.assignmentService.TrackConversion(c.Request().Context(), id, req.Value, req.Context, req.Metadata)
	}
	return c.JSON(http.StatusAccepted, accepted)
}

// TrackCustomEvent godoc
// @Summary Track a custom event
// @Description Record an arbitrary named event against an assignment. Always accepted.
// @Tags Tracking
// @Accept json
// @Produce json
// @Param id path integer true "Assignment ID"
// @Param request body models.TrackCustomEventRequest true "Event details"
// @Success 202 {object} map[string]string "Accepted"
// @Router /assignments/{id}/events [post]
func (h *AssignmentHandler) TrackCustomEvent(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusAccepted, accepted)
	}

	var req models.TrackCustomEventRequest
	if err := c.Bind(&req); err == nil && req.EventType != "" {
		h.assignmentService.TrackCustomEvent(c.Request().Context(), id, req.EventType, req.Value, req.Context, req.Metadata)
	}
	return c.JSON(http.StatusAccepted, accepted)
}
