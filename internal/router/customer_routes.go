package router

import (
	"github.com/labstack/echo/v4"

	"github.com/petmart/petmart-api/internal/handler"
	"github.com/petmart/petmart-api/internal/middleware"
)

// RegisterPublic registers unauthenticated browse endpoints: the paged
// catalog, product lookup, and the contact form. The optional cache
// middleware wraps the catalog reads so repeated browses are served from
// Redis.
func RegisterPublic(e *echo.Echo, cat *handler.CatalogHandler, con *handler.ContactHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/api")
	if cache != nil {
		g.GET("/products", cat.List, cache)
		g.GET("/products/:code", cat.Get, cache)
	} else {
		g.GET("/products", cat.List)
		g.GET("/products/:code", cat.Get)
	}
	g.POST("/contact", con.Create)
}

// RegisterCustomer registers the authenticated customer endpoints: the cart
// and the customer's own reservations. Any authenticated account may use
// them, admins included.
func RegisterCustomer(e *echo.Echo, cart *handler.CartHandler, res *handler.ReservationHandler, jwtSecret string) {
	g := e.Group("/api", middleware.JWTAuth(jwtSecret))

	// ---- Cart ----
	g.GET("/cart", cart.Get)
	g.POST("/cart/add", cart.Add)
	g.POST("/cart/update", cart.Update)
	g.POST("/cart/remove", cart.Remove)
	g.DELETE("/cart", cart.Clear)

	// ---- Reservations ----
	g.POST("/reservations", res.Create)
	g.GET("/reservations/me", res.ListOwn)
	g.DELETE("/reservations/:id", res.Withdraw)
}
