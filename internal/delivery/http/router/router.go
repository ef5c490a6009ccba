// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"assetverse/internal/delivery/http/middleware"
	"assetverse/internal/delivery/http/router/handler"
	"assetverse/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AssetHandler   *handler.AssetHandler
	UserHandler    *handler.UserHandler
	RequestHandler *handler.RequestHandler
	HRHandler      *handler.HRHandler
	TeamHandler    *handler.TeamHandler
	PaymentHandler *handler.PaymentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	assetHandler   *handler.AssetHandler
	userHandler    *handler.UserHandler
	requestHandler *handler.RequestHandler
	hrHandler      *handler.HRHandler
	teamHandler    *handler.TeamHandler
	paymentHandler *handler.PaymentHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		assetHandler:   params.AssetHandler,
		userHandler:    params.UserHandler,
		requestHandler: params.RequestHandler,
		hrHandler:      params.HRHandler,
		teamHandler:    params.TeamHandler,
		paymentHandler: params.PaymentHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Inventory routes, no auth
	e.GET("/assets-collection", r.assetHandler.ListAssets)
	e.POST("/assets-collection", r.assetHandler.CreateAsset)
	e.PATCH("/assets-collection/:id", r.assetHandler.AdjustQuantity)
	e.DELETE("/assets-collection/:id", r.assetHandler.DeleteAsset)

	// Asset request routes; listing is open, mutations need a token
	e.GET("/requests", r.requestHandler.ListRequests)
	e.POST("/requests", r.requestHandler.CreateRequest, r.authMiddleware.Authenticate)
	e.PATCH("/requests/:id", r.requestHandler.UpdateRequestStatus, r.authMiddleware.Authenticate)

	// User routes
	e.POST("/users", r.userHandler.RegisterUser)
	e.GET("/users", r.userHandler.SearchUsers, r.authMiddleware.Authenticate)
	e.GET("/users/:email/role", r.userHandler.GetUserRole, r.authMiddleware.Authenticate)
	e.PATCH("/users/:id/role", r.userHandler.UpdateUserRole,
		r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin))

	// HR application routes
	hrGroup := e.Group("/hr")
	{
		hrGroup.POST("/register", r.hrHandler.RegisterApplication)
		hrGroup.GET("", r.hrHandler.ListApplications)
		hrGroup.PATCH("/approve/:id", r.hrHandler.Approve)
		hrGroup.PATCH("/reject/:id", r.hrHandler.Reject)
	}

	// Team roster routes
	teamGroup := e.Group("/team")
	{
		teamGroup.POST("", r.teamHandler.AddMember)
		teamGroup.GET("", r.teamHandler.ListMembers)
		teamGroup.DELETE("/:id", r.teamHandler.RemoveMember)
	}

	// Checkout flow; initiation needs a token, confirmation is the open
	// redirect landing callback
	e.POST("/payment", r.paymentHandler.InitiateCheckout, r.authMiddleware.Authenticate)
	e.POST("/confirm-payment", r.paymentHandler.ConfirmPayment)
}
