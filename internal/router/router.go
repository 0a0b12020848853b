package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // Echo web framework used for routing

	"github.com/petmart/petmart-api/internal/handler"
	"github.com/petmart/petmart-api/internal/middleware"
)

// RegisterRoutes registers routes that do not depend on any handler state:
// the health check used by load balancers, and the static file route for
// product images stored under the upload directory.
func RegisterRoutes(e *echo.Echo, uploadDir string) {
	e.GET("/healthz", handler.Health)
	e.Static("/product-images", uploadDir)
}

// RegisterAuth registers authentication routes. Unauthenticated operations
// live under /api/auth; /api/me and /api/auth/logout require a valid access
// token. The optional rate limiter guards the credential endpoints against
// brute forcing.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, limiter echo.MiddlewareFunc) {
	g := e.Group("/api/auth")
	if limiter != nil {
		g.Use(limiter)
	}
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout, middleware.JWTAuth(jwtSecret))

	e.GET("/api/me", a.Me, middleware.JWTAuth(jwtSecret))
}
