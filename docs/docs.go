// Package docs registers the OpenAPI description served at /swagger/*any.
// Regenerate with: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "Bearer": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/api/v1/items": {
            "get": {"tags": ["Catalog"], "summary": "All items", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Catalog"], "summary": "List an item for sale", "security": [{"Bearer": []}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}}
        },
        "/api/v1/items/available": {
            "get": {"tags": ["Catalog"], "summary": "Available items", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/items/{id}": {
            "get": {"tags": ["Catalog"], "summary": "Item detail",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/items/{id}/purchase": {
            "post": {"tags": ["Escrow"], "summary": "Request a purchase", "security": [{"Bearer": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"201": {"description": "Created"}, "402": {"description": "Payment Required"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}}
        },
        "/api/v1/me/listed": {
            "get": {"tags": ["Catalog"], "summary": "Caller's listings", "security": [{"Bearer": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/me/purchased": {
            "get": {"tags": ["Catalog"], "summary": "Caller's purchases", "security": [{"Bearer": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/me/balance": {
            "get": {"tags": ["Ledger"], "summary": "Caller's balance", "security": [{"Bearer": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/me/ledger": {
            "get": {"tags": ["Ledger"], "summary": "Caller's ledger entries", "security": [{"Bearer": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/escrow/summary": {
            "get": {"tags": ["Ledger"], "summary": "Item count and funds held in custody", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/pending-purchases": {
            "get": {"tags": ["Escrow"], "summary": "Open pending purchases", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/pending-purchases/{id}": {
            "get": {"tags": ["Escrow"], "summary": "Pending purchase detail",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/pending-purchases/{id}/approve": {
            "post": {"tags": ["Escrow"], "summary": "Approve a pending purchase", "security": [{"Bearer": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}}
        },
        "/api/v1/pending-purchases/{id}/reject": {
            "post": {"tags": ["Escrow"], "summary": "Reject a pending purchase", "security": [{"Bearer": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}}
        },
        "/api/v1/owner": {
            "get": {"tags": ["Escrow"], "summary": "Marketplace owner", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/events": {
            "get": {"tags": ["Events"], "summary": "Recent events",
                "parameters": [{"name": "limit", "in": "query", "type": "integer"}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/uploads": {
            "post": {"tags": ["Metadata"], "summary": "Upload item media", "security": [{"Bearer": []}],
                "consumes": ["multipart/form-data"],
                "parameters": [{"name": "file", "in": "formData", "required": true, "type": "file"}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "413": {"description": "Request Entity Too Large"}}}
        },
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "OK"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "OK"}, "503": {"description": "Store unavailable"}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "OK"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Escrow Marketplace API",
	Description:      "Peer-to-peer digital goods marketplace with owner-approved escrow.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
