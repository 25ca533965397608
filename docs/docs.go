// Package docs holds the Swagger document served at /swagger/index.html.
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
        "/status": {
            "get": {
                "description": "Liveness probe for the sharing API. Does not require authentication.",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "API status",
                "responses": {
                    "200": {
                        "description": "{\"status\": \"OK\", \"message\": \"Sharing API is running\"}",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/shares": {
            "post": {
                "security": [{"SessionCookie": []}, {"BearerAuth": []}],
                "description": "Creates a pending share from the authenticated user to another user.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["shares"],
                "summary": "Share a media item",
                "parameters": [
                    {
                        "description": "Share Info",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.CreateShareInput"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.ShareResponse"}},
                    "400": {"description": "MISSING_FIELDS, INVALID_SHARE or VALIDATION_ERROR", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/shares/sent": {
            "get": {
                "security": [{"SessionCookie": []}, {"BearerAuth": []}],
                "description": "Lists shares sent by the authenticated user, newest first.",
                "produces": ["application/json"],
                "tags": ["shares"],
                "summary": "List sent shares",
                "parameters": [
                    {"enum": ["all", "pending", "watched", "archived"], "type": "string", "description": "Filter by status", "name": "status", "in": "query"},
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 20, "description": "Page size", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ShareListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/shares/received": {
            "get": {
                "security": [{"SessionCookie": []}, {"BearerAuth": []}],
                "description": "Lists shares received by the authenticated user, newest first.",
                "produces": ["application/json"],
                "tags": ["shares"],
                "summary": "List received shares",
                "parameters": [
                    {"enum": ["all", "pending", "watched", "archived"], "type": "string", "description": "Filter by status", "name": "status", "in": "query"},
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 20, "description": "Page size", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ShareListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/shares/stats": {
            "get": {
                "security": [{"SessionCookie": []}, {"BearerAuth": []}],
                "description": "Counts the authenticated user's sent and received shares by status.",
                "produces": ["application/json"],
                "tags": ["shares"],
                "summary": "Share statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.StatsResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/shares/{id}": {
            "get": {
                "security": [{"SessionCookie": []}, {"BearerAuth": []}],
                "description": "Returns a share the authenticated user sent or received.",
                "produces": ["application/json"],
                "tags": ["shares"],
                "summary": "Get a share",
                "parameters": [{"type": "string", "description": "Share ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ShareResponse"}},
                    "400": {"description": "INVALID_ID", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "SHARE_NOT_FOUND", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"SessionCookie": []}, {"BearerAuth": []}],
                "description": "Permanently removes a share the authenticated user sent or received.",
                "produces": ["application/json"],
                "tags": ["shares"],
                "summary": "Delete a share",
                "parameters": [{"type": "string", "description": "Share ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "patch": {
                "security": [{"SessionCookie": []}, {"BearerAuth": []}],
                "description": "Marks a share watched (recipient only) or archived (either party).",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["shares"],
                "summary": "Update share status",
                "parameters": [
                    {"type": "string", "description": "Share ID", "name": "id", "in": "path", "required": true},
                    {"description": "New status", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.UpdateShareInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ShareResponse"}},
                    "400": {"description": "INVALID_ID or INVALID_STATUS", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.CreateShareInput": {
            "type": "object",
            "properties": {
                "mediaId": {"type": "string", "example": "7c9e6679-7425-40de-944b-e07fc1f90ae7"},
                "message": {"type": "string", "example": "Check out this awesome video!"},
                "toUserId": {"type": "string", "example": "550e8400-e29b-41d4-a716-446655440002"}
            }
        },
        "handler.UpdateShareInput": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["watched", "archived"], "example": "watched"}
            }
        },
        "handler.ErrorBody": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "SHARE_NOT_FOUND"},
                "message": {"type": "string", "example": "Share not found"}
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handler.ErrorBody"},
                "success": {"type": "boolean", "example": false}
            }
        },
        "handler.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Share deleted successfully"},
                "success": {"type": "boolean", "example": true}
            }
        },
        "handler.PaginationMeta": {
            "type": "object",
            "properties": {
                "hasNext": {"type": "boolean"},
                "limit": {"type": "integer"},
                "page": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "handler.ShareListResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/models.Share"}},
                "pagination": {"$ref": "#/definitions/handler.PaginationMeta"},
                "success": {"type": "boolean", "example": true}
            }
        },
        "handler.ShareResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/models.Share"},
                "success": {"type": "boolean", "example": true}
            }
        },
        "handler.StatsResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/service.Stats"},
                "success": {"type": "boolean", "example": true}
            }
        },
        "models.Share": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "fromUserId": {"type": "string"},
                "id": {"type": "string"},
                "mediaId": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "watched", "archived"]},
                "toUserId": {"type": "string"},
                "updatedAt": {"type": "string"},
                "watchedAt": {"type": "string"}
            }
        },
        "service.Stats": {
            "type": "object",
            "properties": {
                "received": {"$ref": "#/definitions/store.StatusCounts"},
                "sent": {"$ref": "#/definitions/store.StatusCounts"}
            }
        },
        "store.StatusCounts": {
            "type": "object",
            "properties": {
                "archived": {"type": "integer"},
                "pending": {"type": "integer"},
                "total": {"type": "integer"},
                "watched": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"},
        "SessionCookie": {"type": "apiKey", "name": "Cookie", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8372",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "WatchThis Sharing API",
	Description:      "Share media items between users and track whether they were watched.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
