package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"appraisal/internal/errors"
	"appraisal/internal/model"
	"appraisal/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	identityService service.IdentityService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(identityService service.IdentityService) *AuthHandler {
	return &AuthHandler{identityService: identityService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required,max=100"`
	Role     string `json:"role" validate:"required"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// RefreshRequest represents a token refresh request.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest represents a logout request.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	Username string     `json:"username"`
	Name     string     `json:"name"`
	Role     model.Role `json:"role"`
}

// RegisterResponse represents a registration response.
type RegisterResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// AuthResponse represents an authentication response.
type AuthResponse struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message,omitempty"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token,omitempty"`
	User         *UserResponse `json:"user,omitempty"`
}

func toUserResponse(u *model.User) UserResponse {
	return UserResponse{Username: u.Username, Name: u.Name, Role: u.Role}
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.identityService.Register(c.Request().Context(), req.Username, req.Password, req.Name, model.Role(req.Role))
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusCreated, RegisterResponse{
		Success: true,
		Message: "Registration successful! Please login.",
		User:    toUserResponse(user),
	})
}

// Login godoc
// @Summary Login user
// @Description Username, password and role must all match a registered user.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	result, err := h.identityService.Login(c.Request().Context(), req.Username, req.Password, model.Role(req.Role))
	if err != nil {
		return fail(err)
	}

	user := toUserResponse(result.User)
	return c.JSON(http.StatusOK, AuthResponse{
		Success:      true,
		Message:      "Login successful!",
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		User:         &user,
	})
}

// Refresh godoc
// @Summary Refresh access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	accessToken, err := h.identityService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, AuthResponse{
		Success:     true,
		AccessToken: accessToken,
	})
}

// Logout godoc
// @Summary Logout user
// @Description Revokes the refresh token and the access token used for the call.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body LogoutRequest true "Refresh token"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var req LogoutRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.identityService.Logout(c.Request().Context(), req.RefreshToken, claimsFrom(c)); err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, ok("Logged out."))
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := h.identityService.CurrentIdentity(c.Request().Context(), sessionFrom(c))
	if err != nil {
		return fail(err)
	}
	if user == nil {
		return fail(errors.ErrUserNotFound)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}
