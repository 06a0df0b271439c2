package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"appraisal/internal/model"
	"appraisal/internal/service"
)

// ExperienceHandler handles experience endpoints.
type ExperienceHandler struct {
	academicService service.AcademicService
}

// NewExperienceHandler creates a new experience handler.
func NewExperienceHandler(academicService service.AcademicService) *ExperienceHandler {
	return &ExperienceHandler{academicService: academicService}
}

// ExperienceRequest carries the editable fields of an experience.
type ExperienceRequest struct {
	Institution string `json:"institution" validate:"required,max=200"`
	Role        string `json:"role" validate:"required,max=100"`
	Duration    string `json:"duration" validate:"required,max=50"`
	Description string `json:"description"`
}

func (r ExperienceRequest) fields() model.ExperienceFields {
	return model.ExperienceFields{
		Institution: r.Institution,
		Role:        r.Role,
		Duration:    r.Duration,
		Description: r.Description,
	}
}

// ListExperiences godoc
// @Summary List a faculty member's experiences
// @Tags experiences
// @Produce json
// @Security BearerAuth
// @Param username path string true "Faculty username"
// @Success 200 {array} model.Experience
// @Failure 401 {object} errors.ErrorResponse
// @Router /faculty/{username}/experiences [get]
func (h *ExperienceHandler) ListExperiences(c echo.Context) error {
	exps, err := h.academicService.ListExperiences(c.Request().Context(), sessionFrom(c), c.Param("username"))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, exps)
}

// AddExperience godoc
// @Summary Add an experience
// @Tags experiences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param username path string true "Faculty username"
// @Param request body ExperienceRequest true "Experience data"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /faculty/{username}/experiences [post]
func (h *ExperienceHandler) AddExperience(c echo.Context) error {
	var req ExperienceRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	id, err := h.academicService.AddExperience(c.Request().Context(), sessionFrom(c), c.Param("username"), req.fields())
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{
		Success: true,
		Message: "Experience added successfully!",
		ID:      id,
	})
}

// UpdateExperience godoc
// @Summary Update an experience
// @Tags experiences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Experience ID"
// @Param request body ExperienceRequest true "Experience data"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /experiences/{id} [put]
func (h *ExperienceHandler) UpdateExperience(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req ExperienceRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.academicService.UpdateExperience(c.Request().Context(), sessionFrom(c), id, req.fields()); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, ok("Experience updated successfully!"))
}

// DeleteExperience godoc
// @Summary Delete an experience
// @Tags experiences
// @Produce json
// @Security BearerAuth
// @Param id path int true "Experience ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /experiences/{id} [delete]
func (h *ExperienceHandler) DeleteExperience(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.academicService.DeleteExperience(c.Request().Context(), sessionFrom(c), id); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, ok("Experience deleted!"))
}
