package main

import (
	_ "webquote/docs"
	"webquote/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Webquote API
// @version         1.0
// @description     Quotation (견적서) rendering service backed by Notion databases.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
