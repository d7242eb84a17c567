// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"webshop/internal/delivery/http/middleware"
	"webshop/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers to register, injected by Fx.
type RouterParams struct {
	fx.In

	CategoryHandler *handler.CategoryHandler
	ProductHandler  *handler.ProductHandler
	OrderHandler    *handler.OrderHandler
	FeedbackHandler *handler.FeedbackHandler
	ProfileHandler  *handler.ProfileHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// crudHandler is the operation set every entity handler exposes.
type crudHandler interface {
	GetByID(echo.Context) error
	GetPage(echo.Context) error
	Add(echo.Context) error
	Update(echo.Context) error
	Delete(echo.Context) error
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint, outside the authenticated surface.
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.Use(r.params.AuthMiddleware.Authenticate)

	registerCRUD(api.Group("/Category"), r.params.CategoryHandler)
	registerCRUD(api.Group("/Product"), r.params.ProductHandler)
	registerCRUD(api.Group("/Order"), r.params.OrderHandler)
	registerCRUD(api.Group("/Feedback"), r.params.FeedbackHandler)
	registerCRUD(api.Group("/Profile"), r.params.ProfileHandler)
}

// registerCRUD wires the shared operation set under an entity group.
func registerCRUD(g *echo.Group, h crudHandler) {
	g.GET("/GetById/:id", h.GetByID)
	g.GET("/GetPage", h.GetPage)
	g.POST("/Add", h.Add)
	g.PUT("/Update", h.Update)
	g.DELETE("/Delete/:id", h.Delete)
}
