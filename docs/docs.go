// Package docs holds the Swagger 2.0 document served under /swagger/*.
// Keep it in step with the swag annotations on the handlers.
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
        "/api/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [{"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/api/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "List accounts",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.accountResponse"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Create account",
                "parameters": [{"description": "Account", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createAccountRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.accountResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/users/{username}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Get account",
                "parameters": [{"type": "string", "description": "Account username", "name": "username", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.accountResponse"}},
                    "403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Update account message or password",
                "parameters": [
                    {"type": "string", "description": "Account username", "name": "username", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateAccountRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.accountResponse"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["accounts"],
                "summary": "Delete account",
                "parameters": [
                    {"type": "string", "description": "Account username", "name": "username", "in": "path", "required": true},
                    {"type": "boolean", "description": "Must be true", "name": "confirm", "in": "query", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "428": {"description": "Precondition Required", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/name_surnames/{username}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["persons"],
                "summary": "List invited persons of an account",
                "parameters": [{"type": "string", "description": "Account username", "name": "username", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.personResponse"}}}}
            }
        },
        "/api/namesurnames": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["persons"],
                "summary": "List all invited persons",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.personResponse"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["persons"],
                "summary": "Add invited person",
                "parameters": [{"description": "Person", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.addPersonRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.personResponse"}},
                    "204": {"description": "No Content"},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/namesurnames/{name_surname}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["persons"],
                "summary": "Delete invited person",
                "parameters": [
                    {"type": "string", "description": "Exact name", "name": "name_surname", "in": "path", "required": true},
                    {"type": "string", "description": "Owning account", "name": "user_username", "in": "query", "required": true},
                    {"type": "boolean", "description": "Must be true", "name": "confirm", "in": "query", "required": true}
                ],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/api/guest/view": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["responses"],
                "summary": "Guest view",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.guestViewResponse"}}}
            }
        },
        "/api/form_responses": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["responses"],
                "summary": "List responses",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.RSVPResponse"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["responses"],
                "summary": "Submit response",
                "parameters": [{"description": "Response", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.responseRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.RSVPResponse"}}}
            }
        },
        "/api/form_responses/batch": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["responses"],
                "summary": "Submit all responses",
                "parameters": [{"description": "Responses", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.batchRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.batchResponse"}},
                    "207": {"description": "Multi-Status", "schema": {"$ref": "#/definitions/handler.batchResponse"}}
                }
            }
        },
        "/api/form_responses/{username}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["responses"],
                "summary": "List responses of an account",
                "parameters": [{"type": "string", "description": "Account username", "name": "username", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.RSVPResponse"}}}}
            }
        },
        "/api/comments": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "List comments",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Comment"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "Leave a message",
                "parameters": [{"description": "Comment", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.commentRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Comment"}}}
            }
        },
        "/api/comments/{username}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "List comments of an account",
                "parameters": [{"type": "string", "description": "Account username", "name": "username", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Comment"}}}}
            }
        },
        "/api/admin/summary": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Admin summary",
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        },
        "/api/activity": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Activity log",
                "parameters": [
                    {"type": "string", "description": "Filter by account", "name": "username", "in": "query"},
                    {"type": "integer", "description": "Max entries (default 50, max 500)", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Activity"}}}}
            }
        }
    },
    "definitions": {
        "domain.Activity": {
            "type": "object",
            "properties": {
                "user_username": {"type": "string"},
                "actor": {"type": "string"},
                "kind": {"type": "string"},
                "detail": {"type": "string"},
                "occurred_at": {"type": "string"}
            }
        },
        "domain.Comment": {
            "type": "object",
            "properties": {
                "seq": {"type": "integer"},
                "user_username": {"type": "string"},
                "comment": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "domain.RSVPResponse": {
            "type": "object",
            "properties": {
                "person_id": {"type": "string"},
                "user_username": {"type": "string"},
                "name_surname": {"type": "string"},
                "accepted": {"type": "boolean", "x-nullable": true},
                "menu_option": {"type": "string", "enum": ["", "fish", "meat"]},
                "allergies": {"type": "string"},
                "comment": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "handler.accountResponse": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "role": {"type": "string"},
                "message": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "handler.addPersonRequest": {
            "type": "object",
            "required": ["user_username"],
            "properties": {
                "user_username": {"type": "string"},
                "name_surname": {"type": "string"}
            }
        },
        "handler.batchItemResponse": {
            "type": "object",
            "properties": {
                "person_id": {"type": "string"},
                "name_surname": {"type": "string"},
                "ok": {"type": "boolean"},
                "error": {"type": "string"}
            }
        },
        "handler.batchRequest": {
            "type": "object",
            "required": ["responses"],
            "properties": {
                "responses": {"type": "array", "items": {"$ref": "#/definitions/handler.responseRequest"}}
            }
        },
        "handler.batchResponse": {
            "type": "object",
            "properties": {
                "results": {"type": "array", "items": {"$ref": "#/definitions/handler.batchItemResponse"}},
                "has_accepted": {"type": "boolean"},
                "error": {"type": "string"}
            }
        },
        "handler.commentRequest": {
            "type": "object",
            "required": ["comment"],
            "properties": {
                "comment": {"type": "string", "maxLength": 2000}
            }
        },
        "handler.createAccountRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "username": {"type": "string", "maxLength": 64},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["guest", "admin"]},
                "message": {"type": "string"}
            }
        },
        "handler.guestViewResponse": {
            "type": "object",
            "properties": {
                "account": {"$ref": "#/definitions/handler.accountResponse"},
                "records": {"type": "array", "items": {"$ref": "#/definitions/domain.RSVPResponse"}},
                "has_accepted": {"type": "boolean"}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.loginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "expires_at": {"type": "string"},
                "username": {"type": "string"},
                "role": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handler.personResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "user_username": {"type": "string"},
                "name_surname": {"type": "string"}
            }
        },
        "handler.responseRequest": {
            "type": "object",
            "properties": {
                "person_id": {"type": "string"},
                "name_surname": {"type": "string"},
                "accepted": {"type": "boolean", "x-nullable": true},
                "menu_option": {"type": "string", "enum": ["fish", "meat"]},
                "allergies": {"type": "string", "maxLength": 500},
                "comment": {"type": "string", "maxLength": 2000}
            }
        },
        "handler.updateAccountRequest": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "password": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
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
	Title:            "Wedding RSVP API",
	Description:      "Guest accounts, invited persons, RSVP responses and guest messages.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
