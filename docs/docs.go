// Package docs registers the swagger document served under /swag/swagger.
// Regenerate with: swag init -g cmd/art_studio/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/auth/admin/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Admin login",
                "parameters": [
                    {"description": "Credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "401": {"description": "Invalid email or password", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/auth/admin/logout": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Admin logout",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/auth/verify": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Verify token",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/artworks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["artworks"],
                "summary": "List artworks",
                "parameters": [
                    {"type": "string", "description": "Artwork UUID", "name": "id", "in": "query"},
                    {"type": "string", "description": "Matches title, description and medium", "name": "search", "in": "query"},
                    {"type": "string", "description": "Exact category, case-insensitive", "name": "category", "in": "query"},
                    {"type": "boolean", "description": "Only featured / non-featured", "name": "featured", "in": "query"},
                    {"type": "integer", "description": "1..100, default 50", "name": "limit", "in": "query"},
                    {"type": "boolean", "description": "Include inactive (admin only)", "name": "all", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["artworks"],
                "summary": "Create artwork",
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["artworks"],
                "summary": "Update artwork",
                "parameters": [{"type": "string", "description": "Artwork UUID", "name": "id", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["artworks"],
                "summary": "Delete artwork",
                "parameters": [{"type": "string", "description": "Artwork UUID", "name": "id", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/api/artworks/order": {
            "patch": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["artworks"],
                "summary": "Reorder artworks",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/api/services": {
            "get": {
                "produces": ["application/json"],
                "tags": ["services"],
                "summary": "List services",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["services"],
                "summary": "Create service",
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["services"],
                "summary": "Update service",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["services"],
                "summary": "Delete service",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/api/services/order": {
            "patch": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["services"],
                "summary": "Reorder services",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/api/testimonials": {
            "get": {"tags": ["testimonials"], "summary": "List testimonials", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["testimonials"], "summary": "Create testimonial", "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "put": {"security": [{"ApiKeyAuth": []}], "tags": ["testimonials"], "summary": "Update testimonial", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "delete": {"security": [{"ApiKeyAuth": []}], "tags": ["testimonials"], "summary": "Delete testimonial", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/api/awards": {
            "get": {"tags": ["awards"], "summary": "List awards", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["awards"], "summary": "Create award", "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "put": {"security": [{"ApiKeyAuth": []}], "tags": ["awards"], "summary": "Update award", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "delete": {"security": [{"ApiKeyAuth": []}], "tags": ["awards"], "summary": "Delete award", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/api/contacts": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["contacts"], "summary": "List contact requests", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "post": {"tags": ["contacts"], "summary": "Submit contact form", "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "patch": {"security": [{"ApiKeyAuth": []}], "tags": ["contacts"], "summary": "Change contact status", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "delete": {"security": [{"ApiKeyAuth": []}], "tags": ["contacts"], "summary": "Delete contact request", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/api/profile": {
            "get": {"tags": ["profile"], "summary": "Active profile", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "put": {"security": [{"ApiKeyAuth": []}], "consumes": ["application/json", "multipart/form-data"], "tags": ["profile"], "summary": "Update profile", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}
        }
    },
    "definitions": {
        "request.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {},
                "message": {"type": "string"},
                "error": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Art Studio API",
	Description:      "Portfolio content, contact requests and the admin back-office.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
