// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"library/internal/delivery/http/middleware"
	"library/internal/delivery/http/router/handler"
	"library/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	AuthorHandler    *handler.AuthorHandler
	BookHandler      *handler.BookHandler
	UserBookHandler  *handler.UserBookHandler
	AuthMiddleware   *middleware.AuthMiddleware
	LoggerMiddleware *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	authorHandler    *handler.AuthorHandler
	bookHandler      *handler.BookHandler
	userBookHandler  *handler.UserBookHandler
	authMiddleware   *middleware.AuthMiddleware
	loggerMiddleware *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		authorHandler:    params.AuthorHandler,
		bookHandler:      params.BookHandler,
		userBookHandler:  params.UserBookHandler,
		authMiddleware:   params.AuthMiddleware,
		loggerMiddleware: params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
	}

	// Catalog write operations require the Admin role; updating an author is
	// also open to Managers.
	requireAdmin := r.authMiddleware.RequireClaim(entity.ClaimTypeRole, entity.RoleAdmin)
	requireAdminOrManager := r.authMiddleware.RequireClaim(entity.ClaimTypeRole, entity.RoleAdmin, entity.RoleManager)

	authorGroup := api.Group("/authors")
	{
		authorGroup.GET("", r.authorHandler.List)
		authorGroup.GET("/:id", r.authorHandler.Get)
		authorGroup.GET("/:id/books", r.authorHandler.ListBooks)
		authorGroup.POST("", r.authorHandler.Create, r.authMiddleware.Authenticate, requireAdmin)
		authorGroup.PUT("/:id", r.authorHandler.Update, r.authMiddleware.Authenticate, requireAdminOrManager)
		authorGroup.DELETE("/:id", r.authorHandler.Delete, r.authMiddleware.Authenticate, requireAdmin)
	}

	bookGroup := api.Group("/books")
	{
		bookGroup.GET("", r.bookHandler.List)
		bookGroup.GET("/:idOrIsbn", r.bookHandler.Get)
		bookGroup.POST("", r.bookHandler.Create, r.authMiddleware.Authenticate, requireAdmin)
		bookGroup.PUT("/:id", r.bookHandler.Update, r.authMiddleware.Authenticate, requireAdmin)
		bookGroup.DELETE("/:id", r.bookHandler.Delete, r.authMiddleware.Authenticate, requireAdmin)
	}

	// Borrowing routes scoped to the authenticated user
	meGroup := api.Group("/me/books")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("", r.userBookHandler.ListBorrowed)
		meGroup.POST("/:bookID", r.userBookHandler.Borrow)
		meGroup.DELETE("/:bookID", r.userBookHandler.Return)
	}
}
