package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
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
    <title>mon-blog legal pages - Swagger</title>
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
  "info": { "title": "mon-blog legal pages", "version": "v0.2.0" },
  "components": {
    "securitySchemes": { "bearer": { "type": "http", "scheme": "bearer", "bearerFormat": "JWT" } },
    "schemas": {
      "Slug": { "type": "string", "enum": ["cookies", "privacy", "terms"] },
      "PublicPage": { "type": "object", "properties": { "slug": {"$ref": "#/components/schemas/Slug"}, "title": {"type":"string"}, "body": {"type":"string"}, "updatedAt": {"type":"string","format":"date-time"} } },
      "Page": { "type": "object", "properties": { "id": {"type":"string"}, "slug": {"$ref": "#/components/schemas/Slug"}, "title": {"type":"string"}, "body": {"type":"string"}, "published": {"type":"boolean"}, "createdAt": {"type":"string","format":"date-time"}, "updatedAt": {"type":"string","format":"date-time"} } }
    }
  },
  "paths": {
    "/api/legal-pages": {
      "get": { "summary": "List published legal pages", "responses": { "200": { "description": "published pages ordered by slug" } } }
    },
    "/api/legal-pages/{slug}": {
      "get": { "summary": "Get a published legal page", "parameters": [{"name":"slug","in":"path","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "page" }, "404": { "description": "missing or not published" } } }
    },
    "/api/admin/legal-pages": {
      "get": { "summary": "List all legal pages", "security": [{"bearer": []}], "responses": { "200": { "description": "all pages ordered by slug" }, "401": { "description": "unauthenticated" }, "403": { "description": "missing admin role" } } }
    },
    "/api/admin/legal-pages/{slug}": {
      "get": { "summary": "Get a legal page, drafts included", "security": [{"bearer": []}], "parameters": [{"name":"slug","in":"path","required":true,"schema":{"$ref":"#/components/schemas/Slug"}}], "responses": { "200": { "description": "page" }, "400": { "description": "unknown slug" }, "404": { "description": "not found" } } },
      "put": { "summary": "Create or update a legal page", "security": [{"bearer": []}], "parameters": [{"name":"slug","in":"path","required":true,"schema":{"$ref":"#/components/schemas/Slug"}}], "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["title"],"properties":{"title":{"type":"string"},"body":{"type":"string"}}}}}}, "responses": { "200": { "description": "saved page" }, "400": { "description": "invalid slug or content" } } }
    },
    "/api/admin/legal-pages/{slug}/publish": {
      "patch": { "summary": "Publish or unpublish a legal page", "security": [{"bearer": []}], "parameters": [{"name":"slug","in":"path","required":true,"schema":{"$ref":"#/components/schemas/Slug"}}], "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["published"],"properties":{"published":{"type":"boolean"}}}}}}, "responses": { "200": { "description": "updated page" }, "404": { "description": "not found" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "text exposition" } } } }
  }
}`
