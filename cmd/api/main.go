package main

import (
	_ "nbtech_pricing/docs"
	"nbtech_pricing/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           NB Tech Pricing API
// @version         1.0
// @description     Pricing core: regional ICMS tables, product resale quotes and service/contract quotes.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
