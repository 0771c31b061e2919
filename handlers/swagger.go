package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the food service.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg gin.IRouter) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>cardapio — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "cardapio food service", "version": "v0.1.0" },
  "components": {
    "schemas": {
      "FoodRequest": {
        "type": "object",
        "required": ["name"],
        "properties": { "name": {"type":"string"}, "image": {"type":"string"}, "price": {"type":"number"} }
      },
      "FoodResponse": {
        "type": "object",
        "properties": { "id": {"type":"string"}, "name": {"type":"string"}, "image": {"type":"string"}, "price": {"type":"number"} }
      }
    }
  },
  "paths": {
    "/food": {
      "post": {
        "summary": "Create a food record",
        "requestBody": { "required": true, "content": { "application/json": { "schema": { "$ref": "#/components/schemas/FoodRequest" } } } },
        "responses": { "200": { "description": "stored" }, "400": { "description": "invalid body" }, "500": { "description": "storage failure" } }
      },
      "get": {
        "summary": "List all food records",
        "responses": { "200": { "description": "all records", "content": { "application/json": { "schema": { "type": "array", "items": { "$ref": "#/components/schemas/FoodResponse" } } } } }, "500": { "description": "storage failure" } }
      }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "metrics" } } } }
  }
}`
