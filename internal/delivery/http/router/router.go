// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bistro/internal/delivery/http/middleware"
	"bistro/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	RestaurantHandler *handler.RestaurantHandler
	StoreHandler      *handler.StoreHandler
	HeroOfferHandler  *handler.HeroOfferHandler
	SpotlightHandler  *handler.SpotlightHandler
	CorporateHandler  *handler.CorporateHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	userHandler       *handler.UserHandler
	restaurantHandler *handler.RestaurantHandler
	storeHandler      *handler.StoreHandler
	heroOfferHandler  *handler.HeroOfferHandler
	spotlightHandler  *handler.SpotlightHandler
	corporateHandler  *handler.CorporateHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		userHandler:       params.UserHandler,
		restaurantHandler: params.RestaurantHandler,
		storeHandler:      params.StoreHandler,
		heroOfferHandler:  params.HeroOfferHandler,
		spotlightHandler:  params.SpotlightHandler,
		corporateHandler:  params.CorporateHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Liveness and health check endpoints
	e.GET("/", handler.Liveness)
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	authenticate := r.authMiddleware.Authenticate
	requireAdmin := r.authMiddleware.RequireAdmin

	// Restaurant routes: reads are public, writes are role-guarded.
	restaurants := api.Group("/restaurants")
	{
		restaurants.GET("", r.restaurantHandler.List)
		restaurants.GET("/:id", r.restaurantHandler.Get)
		restaurants.POST("", r.restaurantHandler.Create, authenticate, requireAdmin)
		restaurants.PUT("/:id", r.restaurantHandler.Update, authenticate)
		restaurants.DELETE("/:id", r.restaurantHandler.Delete, authenticate)
	}

	// Store routes: reads are public, deletion is owner-or-admin.
	stores := api.Group("/stores")
	{
		stores.GET("", r.storeHandler.List)
		stores.GET("/:id", r.storeHandler.Get)
		stores.DELETE("/:id", r.storeHandler.Delete, authenticate)
	}

	// Home hero offer routes.
	heroOffers := api.Group("/homeherooffers")
	{
		heroOffers.GET("", r.heroOfferHandler.List)
		heroOffers.POST("", r.heroOfferHandler.Create, authenticate, requireAdmin)
		heroOffers.POST("/upload", r.heroOfferHandler.Upload, authenticate, requireAdmin)
		heroOffers.DELETE("/:id", r.heroOfferHandler.Delete, authenticate, requireAdmin)
	}

	// Spotlight routes. The static reorder path is registered before the
	// numeric id path on the same method.
	spotlight := api.Group("/spotlight")
	{
		spotlight.GET("", r.spotlightHandler.List)
		spotlight.POST("", r.spotlightHandler.Create, authenticate, requireAdmin)
		spotlight.PUT("/reorder", r.spotlightHandler.Reorder, authenticate, requireAdmin)
		spotlight.PUT("/:id", r.spotlightHandler.Update, authenticate, requireAdmin)
		spotlight.DELETE("/:id", r.spotlightHandler.Delete, authenticate, requireAdmin)
	}

	// Corporate routes are admin-only end to end.
	corporates := api.Group("/corporates", authenticate, requireAdmin)
	{
		corporates.POST("", r.corporateHandler.Create)
		corporates.GET("/:id", r.corporateHandler.Get)
		corporates.POST("/:id/employees", r.corporateHandler.MergeEmployees)
		corporates.DELETE("/:id/employees/:userId", r.corporateHandler.RemoveEmployee)
	}

	// Profile routes require a session but no particular role.
	user := api.Group("/user", authenticate)
	{
		user.PUT("/details", r.userHandler.UpdateDetails)
	}

	// Session issuing and account provisioning.
	auth := api.Group("/auth")
	{
		auth.POST("/login-or-register", r.authHandler.LoginOrRegister)
		auth.POST("/accounts", r.authHandler.CreateAccounts, authenticate, requireAdmin)
	}
}
