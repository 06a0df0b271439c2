package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"appraisal/internal/model"
	"appraisal/internal/service"
)

// PublicationHandler handles publication endpoints.
type PublicationHandler struct {
	academicService service.AcademicService
}

// NewPublicationHandler creates a new publication handler.
func NewPublicationHandler(academicService service.AcademicService) *PublicationHandler {
	return &PublicationHandler{academicService: academicService}
}

// PublicationRequest carries the editable fields of a publication.
type PublicationRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Journal string `json:"journal" validate:"required,max=200"`
	Year    int    `json:"year" validate:"required"`
	DOI     string `json:"doi" validate:"max=100"`
}

func (r PublicationRequest) fields() model.PublicationFields {
	return model.PublicationFields{Title: r.Title, Journal: r.Journal, Year: r.Year, DOI: r.DOI}
}

// ListPublications godoc
// @Summary List a faculty member's publications
// @Tags publications
// @Produce json
// @Security BearerAuth
// @Param username path string true "Faculty username"
// @Success 200 {array} model.Publication
// @Failure 401 {object} errors.ErrorResponse
// @Router /faculty/{username}/publications [get]
func (h *PublicationHandler) ListPublications(c echo.Context) error {
	pubs, err := h.academicService.ListPublications(c.Request().Context(), sessionFrom(c), c.Param("username"))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, pubs)
}

// AddPublication godoc
// @Summary Add a publication
// @Tags publications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param username path string true "Faculty username"
// @Param request body PublicationRequest true "Publication data"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /faculty/{username}/publications [post]
func (h *PublicationHandler) AddPublication(c echo.Context) error {
	var req PublicationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	id, err := h.academicService.AddPublication(c.Request().Context(), sessionFrom(c), c.Param("username"), req.fields())
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{
		Success: true,
		Message: "Publication added successfully!",
		ID:      id,
	})
}

// UpdatePublication godoc
// @Summary Update a publication
// @Tags publications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Publication ID"
// @Param request body PublicationRequest true "Publication data"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /publications/{id} [put]
func (h *PublicationHandler) UpdatePublication(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req PublicationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.academicService.UpdatePublication(c.Request().Context(), sessionFrom(c), id, req.fields()); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, ok("Publication updated successfully!"))
}

// DeletePublication godoc
// @Summary Delete a publication
// @Tags publications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Publication ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /publications/{id} [delete]
func (h *PublicationHandler) DeletePublication(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.academicService.DeletePublication(c.Request().Context(), sessionFrom(c), id); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, ok("Publication deleted!"))
}
