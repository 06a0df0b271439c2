package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"appraisal/internal/service"
)

// FacultyHandler serves the faculty directory and semester lookups.
type FacultyHandler struct {
	identityService service.IdentityService
	feedbackService service.FeedbackService
	reportService   service.ReportService
}

// NewFacultyHandler creates a new faculty handler.
func NewFacultyHandler(identityService service.IdentityService, feedbackService service.FeedbackService, reportService service.ReportService) *FacultyHandler {
	return &FacultyHandler{
		identityService: identityService,
		feedbackService: feedbackService,
		reportService:   reportService,
	}
}

// SemesterResponse represents the current semester.
type SemesterResponse struct {
	Semester string `json:"semester"`
}

// ListFaculty godoc
// @Summary List faculty members
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.FacultySummary
// @Failure 401 {object} errors.ErrorResponse
// @Router /faculty [get]
func (h *FacultyHandler) ListFaculty(c echo.Context) error {
	if err := sessionFrom(c).Require(); err != nil {
		return fail(err)
	}
	faculty, err := h.identityService.ListFaculty(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, faculty)
}

// CurrentSemester godoc
// @Summary Current semester token
// @Tags faculty
// @Produce json
// @Success 200 {object} SemesterResponse
// @Router /semester/current [get]
func (h *FacultyHandler) CurrentSemester(c echo.Context) error {
	return c.JSON(http.StatusOK, SemesterResponse{Semester: h.feedbackService.CurrentSemester()})
}

// Report godoc
// @Summary Download a faculty appraisal workbook
// @Tags faculty
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param username path string true "Faculty username"
// @Success 200 {file} file
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /faculty/{username}/report.xlsx [get]
func (h *FacultyHandler) Report(c echo.Context) error {
	buf, filename, err := h.reportService.FacultyReport(c.Request().Context(), sessionFrom(c), c.Param("username"))
	if err != nil {
		return fail(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
