// Package docs holds the OpenAPI document served under /swagger. Keep it in
// step with the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/author": {
            "get": {
                "description": "Get every author with their books. Responds 404 when there are none.",
                "produces": ["application/json"],
                "tags": ["authors"],
                "summary": "List authors",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AuthorListResponse"}},
                    "404": {"description": "No authors", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Create a new author. The email must not be used by another author.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["authors"],
                "summary": "Create an author",
                "parameters": [
                    {"description": "Author to create", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.Author"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AuthorResponse"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Duplicate email or internal error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/author/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["authors"],
                "summary": "Get author by ID",
                "parameters": [
                    {"type": "integer", "description": "Author ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AuthorResponse"}},
                    "400": {"description": "Invalid ID", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Author not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "put": {
                "description": "Overwrite an author's fields. The email can not be changed.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["authors"],
                "summary": "Update an author",
                "parameters": [
                    {"type": "integer", "description": "Author ID", "name": "id", "in": "path", "required": true},
                    {"description": "Author fields", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.Author"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AuthorResponse"}},
                    "400": {"description": "Invalid ID or validation error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Author not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Email changed or internal error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Delete an author by ID. Their books are kept without an author.",
                "tags": ["authors"],
                "summary": "Delete an author",
                "parameters": [
                    {"type": "integer", "description": "Author ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Invalid ID", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Author not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/book": {
            "get": {
                "description": "Get every book with its author. Responds 404 when there are none.",
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "List books",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.BookListResponse"}},
                    "404": {"description": "No books", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Create a new book, optionally linked to an existing author.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Create a book",
                "parameters": [
                    {"description": "Book to create", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.Book"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.BookResponse"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Author not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/book/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Get book by ID",
                "parameters": [
                    {"type": "integer", "description": "Book ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.BookResponse"}},
                    "400": {"description": "Invalid ID", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Book not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "put": {
                "description": "Overwrite every field of a book. Omitting the author detaches it.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Update a book",
                "parameters": [
                    {"type": "integer", "description": "Book ID", "name": "id", "in": "path", "required": true},
                    {"description": "Book fields", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.Book"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.BookResponse"}},
                    "400": {"description": "Invalid ID or validation error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Book or author not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["books"],
                "summary": "Delete a book",
                "parameters": [
                    {"type": "integer", "description": "Book ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Invalid ID", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Book not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}
                }
            }
        },
        "/ready": {
            "get": {
                "description": "Reports whether the database answers a ping",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.Author": {
            "type": "object",
            "required": ["email"],
            "properties": {
                "books": {"type": "array", "items": {"$ref": "#/definitions/dto.BookSummary"}},
                "email": {"type": "string", "maxLength": 255, "example": "shubham@gmail.com"},
                "id": {"type": "integer"},
                "name": {"type": "string", "maxLength": 255, "example": "Shubham"}
            }
        },
        "dto.AuthorSummary": {
            "type": "object",
            "required": ["id"],
            "properties": {
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "dto.Book": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "author": {"$ref": "#/definitions/dto.AuthorSummary"},
                "id": {"type": "integer"},
                "price": {"type": "string", "example": "2000.00"},
                "publication": {"type": "string", "maxLength": 255, "example": "AH Publications"},
                "publishDate": {"type": "string", "example": "2025-02-10"},
                "title": {"type": "string", "maxLength": 255, "example": "Atomic Habits"}
            }
        },
        "dto.BookSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "price": {"type": "string", "example": "2000.00"},
                "publication": {"type": "string"},
                "publishDate": {"type": "string", "example": "2025-02-10"},
                "title": {"type": "string"}
            }
        },
        "handler.APIError": {
            "type": "object",
            "properties": {
                "errors": {"type": "array", "items": {"$ref": "#/definitions/validation.FieldError"}},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "handler.AuthorListResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/dto.Author"}},
                "error": {"$ref": "#/definitions/handler.APIError"},
                "timestamp": {"type": "string"}
            }
        },
        "handler.AuthorResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/dto.Author"},
                "error": {"$ref": "#/definitions/handler.APIError"},
                "timestamp": {"type": "string"}
            }
        },
        "handler.BookListResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/dto.Book"}},
                "error": {"$ref": "#/definitions/handler.APIError"},
                "timestamp": {"type": "string"}
            }
        },
        "handler.BookResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/dto.Book"},
                "error": {"$ref": "#/definitions/handler.APIError"},
                "timestamp": {"type": "string"}
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/handler.APIError"},
                "timestamp": {"type": "string"}
            }
        },
        "handler.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/handler.APIError"},
                "timestamp": {"type": "string"}
            }
        },
        "validation.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"},
                "rule": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Library Catalogue API",
	Description:      "API for managing authors and books in the library catalogue.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
