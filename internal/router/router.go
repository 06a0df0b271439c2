package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"appraisal/docs"
	"appraisal/internal/auth"
	"appraisal/internal/config"
	"appraisal/internal/errors"
	"appraisal/internal/handler"
)

// Handlers groups the HTTP handlers mounted by Register.
type Handlers struct {
	Auth         *handler.AuthHandler
	Faculty      *handler.FacultyHandler
	Publications *handler.PublicationHandler
	Experiences  *handler.ExperienceHandler
	Feedback     *handler.FeedbackHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	h Handlers,
) {
	e.Use(RequestLogger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/refresh", h.Auth.Refresh)
	api.GET("/semester/current", h.Faculty.CurrentSemester)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		ContextKey:     handler.ClaimsContextKey,
		TokenLookup:    "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: accessTokenParser(jwtService, tokenStore),
		ErrorHandler: func(c echo.Context, err error) error {
			resp := errors.NewHTTPError(http.StatusUnauthorized, "Please login to continue.", "UNAUTHORIZED")
			return echo.NewHTTPError(resp.StatusCode, resp.ToErrorResponse())
		},
	}))

	secured.POST("/auth/logout", h.Auth.Logout)
	secured.GET("/me", h.Auth.Me)

	// Faculty directory
	secured.GET("/faculty", h.Faculty.ListFaculty)
	secured.GET("/faculty/:username/report.xlsx", h.Faculty.Report)

	// Publication routes
	secured.GET("/faculty/:username/publications", h.Publications.ListPublications)
	secured.POST("/faculty/:username/publications", h.Publications.AddPublication)
	secured.PUT("/publications/:id", h.Publications.UpdatePublication)
	secured.DELETE("/publications/:id", h.Publications.DeletePublication)

	// Experience routes
	secured.GET("/faculty/:username/experiences", h.Experiences.ListExperiences)
	secured.POST("/faculty/:username/experiences", h.Experiences.AddExperience)
	secured.PUT("/experiences/:id", h.Experiences.UpdateExperience)
	secured.DELETE("/experiences/:id", h.Experiences.DeleteExperience)

	// Feedback routes
	secured.POST("/faculty/:username/feedback", h.Feedback.SubmitFeedback)
	secured.GET("/faculty/:username/feedback/summary", h.Feedback.Summary)
	secured.GET("/feedback/status", h.Feedback.Status)
}

// accessTokenParser validates an access token and rejects blacklisted ones.
// The parsed *auth.Claims is stored under handler.ClaimsContextKey.
func accessTokenParser(jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) func(echo.Context, string) (interface{}, error) {
	return func(c echo.Context, token string) (interface{}, error) {
		claims, err := jwtService.ValidateAccessToken(token)
		if err != nil {
			return nil, err
		}
		revoked, err := tokenStore.IsAccessTokenBlacklisted(c.Request().Context(), claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, errors.ErrInvalidRefreshToken
		}
		return claims, nil
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
