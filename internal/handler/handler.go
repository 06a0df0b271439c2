package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"appraisal/internal/auth"
	"appraisal/internal/errors"
	"appraisal/internal/session"
)

// ClaimsContextKey is where the JWT middleware stores the parsed access claims.
const ClaimsContextKey = "user"

// MessageResponse is the body of a mutation that returns only a status.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CreatedResponse is returned when a record is created.
type CreatedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

func ok(message string) MessageResponse {
	return MessageResponse{Success: true, Message: message}
}

// claimsFrom returns the access claims of the request, or nil on public routes.
func claimsFrom(c echo.Context) *auth.Claims {
	claims, _ := c.Get(ClaimsContextKey).(*auth.Claims)
	return claims
}

// sessionFrom rebuilds the caller's session from the verified access token.
func sessionFrom(c echo.Context) session.Context {
	claims := claimsFrom(c)
	if claims == nil {
		return session.Anonymous()
	}
	return session.Anonymous().Login(claims.Username, claims.Role)
}

// fail converts a domain error into the JSON error envelope.
func fail(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// bind decodes and validates the request body into req.
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return fail(errors.ErrValidation)
	}
	if err := c.Validate(req); err != nil {
		return fail(errors.ErrValidation)
	}
	return nil
}

// idParam parses the :id path parameter.
func idParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, fail(errors.ErrRecordNotFound)
	}
	return uint(id), nil
}
