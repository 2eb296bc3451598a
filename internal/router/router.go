package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"matchtrack/internal/auth"
	"matchtrack/internal/config"
	apperrors "matchtrack/internal/errors"
	"matchtrack/internal/handler"
	"matchtrack/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	matchHandler *handler.MatchHandler,
	playerHandler *handler.PlayerHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = errorHandler

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)

	// Routes requiring any valid identity
	authed := api.Group("", jwtMiddleware(cfg.JWTSecret))
	authed.GET("/auth/me", authHandler.Me)
	authed.GET("/matches", matchHandler.List)
	authed.GET("/players", playerHandler.List)
	// Self-or-admin check lives in the handler.
	authed.PUT("/users/:id/password", userHandler.ResetPassword)

	// Admin-only routes
	admin := authed.Group("", requireAdmin)
	admin.POST("/auth/register", authHandler.Register)
	admin.GET("/users", userHandler.List)
	admin.DELETE("/users/:id", userHandler.Delete)
	admin.POST("/matches", matchHandler.Create)
	admin.DELETE("/matches/:id", matchHandler.Delete)
	admin.POST("/players", playerHandler.Create)
	admin.DELETE("/players/:id", playerHandler.Delete)
}

// jwtMiddleware validates the bearer token and stores parsed session claims
// in the context. Missing or malformed tokens always yield 401, never 400.
func jwtMiddleware(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(secret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "Unauthorized",
				Code:  "UNAUTHORIZED",
			})
		},
	})
}

// requireAdmin rejects authenticated callers whose role is not admin.
func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := handler.CurrentClaims(c)
		if claims == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "Unauthorized",
				Code:  "UNAUTHORIZED",
			})
		}
		if claims.Role != model.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
				Error: "Unauthorized - Admin only",
				Code:  "ADMIN_ONLY",
			})
		}
		return next(c)
	}
}

// errorHandler renders every failure, including unmatched routes, as an
// {error, code} JSON body.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	body := apperrors.ErrorResponse{Error: "internal server error", Code: "INTERNAL_ERROR"}

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		switch m := he.Message.(type) {
		case apperrors.ErrorResponse:
			body = m
		case string:
			body = apperrors.ErrorResponse{Error: m}
		default:
			body = apperrors.ErrorResponse{Error: http.StatusText(code)}
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, body)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
