package routes

import (
	"shopcart_backend/internal/auth"
	"shopcart_backend/internal/handlers"
	"shopcart_backend/internal/middleware"
	"shopcart_backend/internal/repositories"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes registers every HTTP route under /api/v1. Auth routes are
// public; everything else requires a valid access token.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokenManager *auth.TokenManager,
	userRepo repositories.UserRepository,
) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)

		authorized := api.Group("")
		authorized.Use(middleware.AuthMiddleware(tokenManager, userRepo))
		{
			appHandlers.UserHandler.RegisterRoutes(authorized)
			appHandlers.ProfileHandler.RegisterRoutes(authorized)
			appHandlers.ItemHandler.RegisterRoutes(authorized)
			appHandlers.CartHandler.RegisterRoutes(authorized)
		}
	}

	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
