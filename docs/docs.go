// Package docs holds the Swagger document served under /swagger.
// It follows the swag annotations on the handlers; regenerate it with go generate ./cmd/server.
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
        "/games": {
            "get": {
                "description": "Retrieves every game with its genre names.",
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Get all games",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.Game"}}},
                    "404": {"description": "No games exist", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "put": {
                "description": "Updates the game identified by the ID in the body and replaces its genres.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Update a game",
                "parameters": [
                    {"description": "Game", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.Game"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Game"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Game not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Game name already taken", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Creates a new game. Genres are referenced by name and created when they don't exist yet.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Create a new game",
                "parameters": [
                    {"description": "Game Info", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateGame"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.Game"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Game already exists", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/games/{id}": {
            "delete": {
                "description": "Deletes a game and unlinks it from its genres. The genres themselves are kept.",
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Delete a game",
                "parameters": [
                    {"type": "string", "description": "Game ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Game not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Game could not be deleted", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/games/{idOrName}": {
            "get": {
                "description": "The parameter is treated as an ID when it is a valid UUID, otherwise as the game name.",
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Get a single game by ID or name",
                "parameters": [
                    {"type": "string", "description": "Game ID or name", "name": "idOrName", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Game"}},
                    "404": {"description": "Game not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/games-by-genre/{idOrName}": {
            "get": {
                "description": "Accepts either the genre ID or its name. A genre without games yields an empty list.",
                "produces": ["application/json"],
                "tags": ["genres"],
                "summary": "List the games of a genre",
                "parameters": [
                    {"type": "string", "description": "Genre ID or name", "name": "idOrName", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.Game"}}},
                    "404": {"description": "Genre not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/genres": {
            "put": {
                "description": "Renames the genre identified by the ID in the body.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["genres"],
                "summary": "Update a genre",
                "parameters": [
                    {"description": "Genre", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.Genre"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Genre"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Genre not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Genre name already taken", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Creates a genre that no game references yet.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["genres"],
                "summary": "Create a new genre",
                "parameters": [
                    {"description": "Genre Info", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateGenre"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.Genre"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Genre already exists", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/genres/{id}": {
            "delete": {
                "description": "Deletes a genre and unlinks it from its games. The games themselves are kept.",
                "produces": ["application/json"],
                "tags": ["genres"],
                "summary": "Delete a genre",
                "parameters": [
                    {"type": "string", "description": "Genre ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Genre not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Genre could not be deleted", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/genres/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["genres"],
                "summary": "Get a genre by name",
                "parameters": [
                    {"type": "string", "description": "Genre name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Genre"}},
                    "404": {"description": "Genre not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CreateGame": {
            "type": "object",
            "required": ["developer", "genres", "name"],
            "properties": {
                "developer": {"type": "string", "example": "id Software"},
                "genres": {"type": "array", "items": {"type": "string"}, "example": ["FPS", "Horror"]},
                "name": {"type": "string", "example": "Doom"}
            }
        },
        "dto.CreateGenre": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string", "example": "FPS"}
            }
        },
        "dto.Game": {
            "type": "object",
            "required": ["developer", "genres", "id", "name"],
            "properties": {
                "developer": {"type": "string", "example": "id Software"},
                "genres": {"type": "array", "items": {"type": "string"}, "example": ["FPS", "Horror"]},
                "id": {"type": "string", "example": "0b6f3c1e-5d2a-4e7b-9c1f-2a3b4c5d6e7f"},
                "name": {"type": "string", "example": "Doom"}
            }
        },
        "dto.Genre": {
            "type": "object",
            "required": ["id", "name"],
            "properties": {
                "id": {"type": "string", "example": "6a1d2e3f-4b5c-4d6e-8f7a-9b0c1d2e3f4a"},
                "name": {"type": "string", "example": "FPS"}
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "An error message"}
            }
        },
        "handler.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Game deleted"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Game Catalog API",
	Description:      "CRUD API for games and their genres.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
