// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"catalog/internal/delivery/api/middleware"
	"catalog/internal/delivery/api/router/handler"
	"catalog/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CategoryHandler *handler.CategoryHandler
	ProductHandler  *handler.ProductHandler
	VendorHandler   *handler.VendorHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	categoryHandler *handler.CategoryHandler
	productHandler  *handler.ProductHandler
	vendorHandler   *handler.VendorHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		categoryHandler: params.CategoryHandler,
		productHandler:  params.ProductHandler,
		vendorHandler:   params.VendorHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	requireAdmin := r.authMiddleware.RequireRole(entity.RoleAdmin)

	// Category routes: reads are public, writes are admin only
	categoriesGroup := apiV1.Group("/categories")
	{
		categoriesGroup.GET("/tree", r.categoryHandler.GetTree)
		categoriesGroup.GET("/id/:id", r.categoryHandler.GetByID)
		categoriesGroup.GET("/:slug", r.categoryHandler.GetBySlug)

		categoriesGroup.POST("", r.categoryHandler.CreateCategory, r.authMiddleware.Authenticate, requireAdmin)
		categoriesGroup.PATCH("/:id", r.categoryHandler.UpdateCategory, r.authMiddleware.Authenticate, requireAdmin)
		categoriesGroup.DELETE("/:id", r.categoryHandler.DeleteCategory, r.authMiddleware.Authenticate, requireAdmin)
	}

	// Product routes: listing and detail are public
	productsGroup := apiV1.Group("/products")
	{
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.GET("/:slug", r.productHandler.GetProduct)

		productsGroup.POST("", r.productHandler.CreateProduct,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleVendor))
		productsGroup.PATCH("/variants/:id/stock", r.productHandler.UpdateStock,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleVendor, entity.RoleAdmin))
	}

	// Vendor routes all require authentication
	vendorsGroup := apiV1.Group("/vendors")
	vendorsGroup.Use(r.authMiddleware.Authenticate)
	{
		vendorsGroup.POST("/onboarding", r.vendorHandler.Onboard)
		vendorsGroup.GET("/me", r.vendorHandler.GetMine)

		vendorsGroup.GET("/pending", r.vendorHandler.ListPending, requireAdmin)
		vendorsGroup.PATCH("/:id/status", r.vendorHandler.UpdateStatus, requireAdmin)
	}
}
