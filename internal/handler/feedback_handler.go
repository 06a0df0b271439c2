package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"appraisal/internal/service"
)

// FeedbackHandler handles feedback endpoints.
type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// FeedbackRequest represents a feedback submission.
type FeedbackRequest struct {
	Rating   float64 `json:"rating" validate:"required,min=1,max=5"`
	Comment  string  `json:"comment"`
	Semester string  `json:"semester"`
}

// SubmitFeedbackResponse represents a feedback submission response.
type SubmitFeedbackResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	ID       uint   `json:"id"`
	Semester string `json:"semester"`
}

// SubmitFeedback godoc
// @Summary Rate a faculty member
// @Description Students may rate each faculty member once per semester. Semester defaults to the current one.
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param username path string true "Faculty username"
// @Param request body FeedbackRequest true "Feedback data"
// @Success 201 {object} SubmitFeedbackResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /faculty/{username}/feedback [post]
func (h *FeedbackHandler) SubmitFeedback(c echo.Context) error {
	var req FeedbackRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	result, err := h.feedbackService.Submit(c.Request().Context(), sessionFrom(c), service.SubmitFeedbackInput{
		Subject:  c.Param("username"),
		Rating:   req.Rating,
		Comment:  req.Comment,
		Semester: req.Semester,
	})
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusCreated, SubmitFeedbackResponse{
		Success:  result.Success,
		Message:  result.Message,
		ID:       result.Feedback.ID,
		Semester: result.Feedback.Semester,
	})
}

// Summary godoc
// @Summary Feedback summary for a faculty member
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Param username path string true "Faculty username"
// @Success 200 {object} model.FeedbackSummary
// @Failure 403 {object} errors.ErrorResponse
// @Router /faculty/{username}/feedback/summary [get]
func (h *FeedbackHandler) Summary(c echo.Context) error {
	summary, err := h.feedbackService.Summarize(c.Request().Context(), sessionFrom(c), c.Param("username"))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, summary)
}

// Status godoc
// @Summary Feedback status of the calling student
// @Description Lists every faculty member with whether the caller rated them this semester.
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.FeedbackStatus
// @Failure 403 {object} errors.ErrorResponse
// @Router /feedback/status [get]
func (h *FeedbackHandler) Status(c echo.Context) error {
	statuses, err := h.feedbackService.Statuses(c.Request().Context(), sessionFrom(c))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, statuses)
}
