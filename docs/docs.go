// Package docs registers the OpenAPI document for the events API. It is
// maintained by hand alongside the controller annotations.
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
        "/events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List all events",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Event"}}},
                    "404": {"description": "code: not_found", "schema": {"$ref": "#/definitions/helpers.APIError"}}
                }
            },
            "post": {
                "description": "Creates an event. The id is assigned by the server.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Create a new event",
                "parameters": [
                    {"description": "Event data", "name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.EventCreate"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Event"}},
                    "400": {"description": "msg: validation message", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "500": {"description": "code: not_created", "schema": {"$ref": "#/definitions/helpers.APIError"}}
                }
            }
        },
        "/events/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Get an event by id",
                "parameters": [
                    {"type": "string", "description": "Event ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Event"}},
                    "404": {"description": "code: not_found", "schema": {"$ref": "#/definitions/helpers.APIError"}}
                }
            },
            "put": {
                "description": "Merges the given fields into the event. Omitted fields are unchanged. PUT and PATCH behave the same.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Update event fields",
                "parameters": [
                    {"type": "string", "description": "Event ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to update (at least one)", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.EventUpdate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Event"}},
                    "400": {"description": "msg: validation message", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "404": {"description": "code: not_found", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "500": {"description": "code: not_updated", "schema": {"$ref": "#/definitions/helpers.APIError"}}
                }
            },
            "patch": {
                "description": "Merges the given fields into the event. Omitted fields are unchanged. PUT and PATCH behave the same.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Update event fields",
                "parameters": [
                    {"type": "string", "description": "Event ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to update (at least one)", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.EventUpdate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Event"}},
                    "400": {"description": "msg: validation message", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "404": {"description": "code: not_found", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "500": {"description": "code: not_updated", "schema": {"$ref": "#/definitions/helpers.APIError"}}
                }
            },
            "delete": {
                "description": "Deletes the event and returns it as it was right before deletion.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Delete an event",
                "parameters": [
                    {"type": "string", "description": "Event ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Event"}},
                    "404": {"description": "code: not_found", "schema": {"$ref": "#/definitions/helpers.APIError"}},
                    "500": {"description": "code: not_deleted", "schema": {"$ref": "#/definitions/helpers.APIError"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness and store reachability",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/helpers.APIError"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Event": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "date": {"type": "string"},
                "location": {"type": "string"},
                "organizer": {"type": "string"}
            }
        },
        "domain.EventCreate": {
            "type": "object",
            "required": ["date", "description", "location", "organizer", "title"],
            "properties": {
                "title": {"type": "string", "maxLength": 200},
                "description": {"type": "string"},
                "date": {"type": "string"},
                "location": {"type": "string"},
                "organizer": {"type": "string"}
            }
        },
        "domain.EventUpdate": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "maxLength": 200},
                "description": {"type": "string"},
                "date": {"type": "string"},
                "location": {"type": "string"},
                "organizer": {"type": "string"}
            }
        },
        "helpers.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "msg": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Events API",
	Description:      "CRUD backend for events.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
