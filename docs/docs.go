// Package docs registers the bookme OpenAPI document with swag.
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
    "securityDefinitions": {
        "AdminToken": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy"}}
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready"},
                    "503": {"description": "Database unreachable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/event-types": {
            "get": {
                "produces": ["application/json"],
                "tags": ["EventType"],
                "summary": "List event types",
                "parameters": [
                    {"type": "integer", "description": "Page size (default: 20)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Page offset (default: 0)", "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/event-types/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["EventType"],
                "summary": "Get event type",
                "parameters": [{"type": "string", "description": "Event type slug", "name": "slug", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/event-types/{slug}/slots": {
            "get": {
                "description": "Returns the bookable start times of an event type on one date, in the caller's timezone.",
                "produces": ["application/json"],
                "tags": ["Booking"],
                "summary": "List open slots",
                "parameters": [
                    {"type": "string", "description": "Event type slug", "name": "slug", "in": "path", "required": true},
                    {"type": "string", "description": "Date (YYYY-MM-DD, today, tomorrow, next monday)", "name": "date", "in": "query", "required": true},
                    {"type": "string", "description": "IANA timezone (default: UTC)", "name": "tz", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "502": {"description": "Calendar unavailable", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "503": {"description": "Scheduling temporarily unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/event-types/{slug}/bookings": {
            "post": {
                "description": "Reserves one of the open slots and creates the calendar event.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Booking"],
                "summary": "Book a slot",
                "parameters": [
                    {"type": "string", "description": "Event type slug", "name": "slug", "in": "path", "required": true},
                    {"description": "Booking", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.bookReq"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "409": {"description": "Slot no longer available", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "502": {"description": "Calendar unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/bookings/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Booking"],
                "summary": "Get booking",
                "parameters": [{"type": "string", "description": "Booking ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/bookings/{id}/invite.ics": {
            "get": {
                "description": "Returns the booking as an iCalendar REQUEST.",
                "produces": ["text/calendar"],
                "tags": ["Booking"],
                "summary": "Download invitation",
                "parameters": [{"type": "string", "description": "Booking ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "iCalendar document", "schema": {"type": "string"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "409": {"description": "Booking not confirmed", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/admin/schedule": {
            "get": {
                "security": [{"AdminToken": []}],
                "produces": ["application/json"],
                "tags": ["Schedule"],
                "summary": "Get weekly schedule",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "put": {
                "security": [{"AdminToken": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Schedule"],
                "summary": "Replace weekly schedule",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/admin/event-types": {
            "post": {
                "security": [{"AdminToken": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["EventType"],
                "summary": "Create an event type",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "409": {"description": "Conflict - name already exists", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/admin/event-types/{id}": {
            "put": {
                "security": [{"AdminToken": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["EventType"],
                "summary": "Update an event type",
                "parameters": [{"type": "string", "description": "Event type ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "delete": {
                "security": [{"AdminToken": []}],
                "produces": ["application/json"],
                "tags": ["EventType"],
                "summary": "Delete an event type",
                "parameters": [{"type": "string", "description": "Event type ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        }
    },
    "definitions": {
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        },
        "http.bookReq": {
            "type": "object",
            "required": ["start", "name", "email"],
            "properties": {
                "start": {"type": "string", "format": "date-time"},
                "timezone": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "description": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "bookme API",
	Description:      "Meeting booking: weekly availability, open slots and calendar-backed reservations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
