// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/main.go -o docs
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Collection counts and upcoming tournaments",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/players": {
            "get": {
                "produces": ["application/json"],
                "tags": ["players"],
                "summary": "List players",
                "parameters": [
                    {"type": "string", "description": "Search text", "name": "q", "in": "query"},
                    {"type": "string", "description": "name, club, nation, level or age", "name": "sort", "in": "query"},
                    {"type": "string", "description": "asc or desc", "name": "dir", "in": "query"},
                    {"type": "integer", "description": "Page, starting at 1", "name": "page", "in": "query"},
                    {"type": "integer", "description": "10, 20, 50 or 100", "name": "perPage", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["players"],
                "summary": "Create a player",
                "parameters": [{"description": "Player", "name": "body", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "502": {"description": "Bad Gateway"}}
            }
        },
        "/players/{playerID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["players"],
                "summary": "Get a player with age and evaluations",
                "parameters": [{"type": "string", "description": "Player ID", "name": "playerID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["players"],
                "summary": "Delete a player",
                "parameters": [
                    {"type": "string", "description": "Player ID", "name": "playerID", "in": "path", "required": true},
                    {"type": "boolean", "description": "Must be true", "name": "confirm", "in": "query", "required": true}
                ],
                "responses": {"204": {"description": "No Content"}, "428": {"description": "Confirmation missing"}}
            }
        },
        "/venues": {
            "get": {
                "produces": ["application/json"],
                "tags": ["venues"],
                "summary": "List venues",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["venues"],
                "summary": "Create a venue",
                "parameters": [{"description": "Venue with pitches", "name": "body", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/tournaments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tournaments"],
                "summary": "List tournaments",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tournaments"],
                "summary": "Create a tournament",
                "parameters": [{"description": "Tournament", "name": "body", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/tournaments/suggestions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tournaments"],
                "summary": "Venue and participant suggestions for the tournament form",
                "parameters": [
                    {"type": "string", "description": "Venue search", "name": "venue", "in": "query"},
                    {"type": "string", "description": "Player search", "name": "player", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Participant ids already chosen", "name": "chosen", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/tournaments/{tournamentID}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tournaments"],
                "summary": "Update a tournament and its participants",
                "parameters": [
                    {"type": "string", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true},
                    {"description": "Tournament", "name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/tournaments/{tournamentID}/{tab}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["editor"],
                "summary": "Tournament view with one tab loaded",
                "parameters": [
                    {"type": "string", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true},
                    {"type": "string", "description": "overview, teams, games or evaluation", "name": "tab", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/tournaments/{tournamentID}/teams": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["editor"],
                "summary": "Update the team builder or create the team",
                "parameters": [
                    {"type": "string", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true},
                    {"description": "Form state and action (save, add-row, remove-row:N, create)", "name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}, "201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/tournaments/{tournamentID}/games": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["editor"],
                "summary": "Create or update a game",
                "parameters": [
                    {"type": "string", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true},
                    {"description": "Game form; id set when editing", "name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}, "201": {"description": "Created"}, "400": {"description": "Missing team A, invalid or out of range kickoff"}}
            }
        },
        "/tournaments/{tournamentID}/games/{gameID}/video": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Upload a game video",
                "parameters": [
                    {"type": "string", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true},
                    {"type": "string", "description": "Game ID", "name": "gameID", "in": "path", "required": true},
                    {"type": "file", "description": "Video file", "name": "video", "in": "formData", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/tournaments/{tournamentID}/evaluations": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["editor"],
                "summary": "Record an evaluation of a participant",
                "parameters": [
                    {"type": "string", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true},
                    {"description": "Evaluation", "name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/admin/seed": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Seed demo players or venues on the backend",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "502": {"description": "Bad Gateway"}}
            }
        },
        "/admin/dedupe": {
            "post": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Remove duplicate players on the backend",
                "responses": {"200": {"description": "OK"}, "502": {"description": "Bad Gateway"}}
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
	Title:            "Scouting System API",
	Description:      "JSON views of the scouting front-end: players, venues, tournaments and the tournament editor.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
