// @title           shopcart API
// @version         1.0
// @description     Account management and shopping cart API (Swagger documentation).
// @contact.name    shopcart team
// @contact.email   support@shopcart.example
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8000
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"shopcart_backend/internal/app"

	_ "shopcart_backend/docs"

	"github.com/joho/godotenv"
)

func main() {
	// Missing .env is fine; real deployments use environment variables.
	_ = godotenv.Load()

	app.Run()
}
