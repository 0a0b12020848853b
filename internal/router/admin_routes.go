package router

import (
	"github.com/labstack/echo/v4"

	"github.com/petmart/petmart-api/internal/handler"
	"github.com/petmart/petmart-api/internal/middleware"
	"github.com/petmart/petmart-api/internal/model"
)

// RegisterAdmin registers the ADMIN-scoped control surface under
// /api/admin. All routes require a valid JWT and the ADMIN role; anything
// else is rejected with 403 before a handler runs.
func RegisterAdmin(
	e *echo.Echo,
	prod *handler.AdminProductHandler,
	res *handler.AdminReservationHandler,
	con *handler.ContactHandler,
	jwtSecret string,
) {
	g := e.Group(
		"/api/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin),
	)

	// ---- Catalog ----
	g.POST("/products", prod.Create)
	g.PUT("/products/:code", prod.Update)
	g.DELETE("/products/:code", prod.Delete)

	// ---- Reservation triage ----
	g.GET("/reservations", res.List)
	g.PUT("/reservations/:id/status", res.SetStatus)

	// ---- Contact inbox ----
	g.GET("/contacts", con.ListAll)
}
