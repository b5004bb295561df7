package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	APITitle   = "Simple Notes API"
	APIVersion = "1.0.0"
)

type obj = map[string]interface{}

func schemaRef(name string) obj {
	return obj{"$ref": "#/components/schemas/" + name}
}

func jsonContent(schema obj) obj {
	return obj{"application/json": obj{"schema": schema}}
}

func errorResponse(description string) obj {
	return obj{"description": description, "content": jsonContent(schemaRef("HTTPError"))}
}

var noteIDParameter = obj{
	"name":     "note_id",
	"in":       "path",
	"required": true,
	"schema":   obj{"type": "string", "format": "uuid"},
}

var healthOperation = obj{
	"tags":    []string{"health"},
	"summary": "Health Check",
	"responses": obj{
		"200": obj{"description": "Service is healthy", "content": jsonContent(schemaRef("Health"))},
	},
}

// openAPIDocument describes the routes registered in setupRouter.
var openAPIDocument = obj{
	"openapi": "3.1.0",
	"info": obj{
		"title":       APITitle,
		"description": "A minimal backend providing CRUD operations for notes.",
		"version":     APIVersion,
	},
	"tags": []obj{
		{"name": "health", "description": "Service health and readiness endpoints."},
		{"name": "notes", "description": "CRUD endpoints for managing notes."},
	},
	"paths": obj{
		"/":       obj{"get": healthOperation},
		"/health": obj{"get": healthOperation},
		"/notes": obj{
			"get": obj{
				"tags":    []string{"notes"},
				"summary": "List notes",
				"responses": obj{
					"200": obj{"description": "All stored notes", "content": jsonContent(obj{"type": "array", "items": schemaRef("Note")})},
				},
			},
			"post": obj{
				"tags":        []string{"notes"},
				"summary":     "Create a note",
				"requestBody": obj{"required": true, "content": jsonContent(schemaRef("NoteCreate"))},
				"responses": obj{
					"201": obj{"description": "Created", "content": jsonContent(schemaRef("Note"))},
					"422": errorResponse("Validation Error"),
				},
			},
		},
		"/notes/{note_id}": obj{
			"parameters": []obj{noteIDParameter},
			"get": obj{
				"tags":    []string{"notes"},
				"summary": "Get a note",
				"responses": obj{
					"200": obj{"description": "The note", "content": jsonContent(schemaRef("Note"))},
					"404": errorResponse("Note not found"),
					"422": errorResponse("Validation Error"),
				},
			},
			"put": obj{
				"tags":        []string{"notes"},
				"summary":     "Update a note",
				"requestBody": obj{"required": true, "content": jsonContent(schemaRef("NoteUpdate"))},
				"responses": obj{
					"200": obj{"description": "The updated note", "content": jsonContent(schemaRef("Note"))},
					"400": errorResponse("No fields to update"),
					"404": errorResponse("Note not found"),
					"422": errorResponse("Validation Error"),
				},
			},
			"delete": obj{
				"tags":    []string{"notes"},
				"summary": "Delete a note",
				"responses": obj{
					"204": obj{"description": "Note deleted successfully"},
					"404": errorResponse("Note not found"),
					"422": errorResponse("Validation Error"),
				},
			},
		},
	},
	"components": obj{
		"schemas": obj{
			"Health": obj{
				"type":       "object",
				"properties": obj{"status": obj{"type": "string"}},
			},
			"Note": obj{
				"type":     "object",
				"required": []string{"id", "title", "content", "created_at", "updated_at"},
				"properties": obj{
					"id":         obj{"type": "string", "format": "uuid"},
					"title":      obj{"type": "string", "minLength": 1, "maxLength": 200},
					"content":    obj{"type": "string", "minLength": 1},
					"created_at": obj{"type": "string", "format": "date-time"},
					"updated_at": obj{"type": "string", "format": "date-time"},
				},
			},
			"NoteCreate": obj{
				"type":     "object",
				"required": []string{"title", "content"},
				"properties": obj{
					"title":   obj{"type": "string", "minLength": 1, "maxLength": 200},
					"content": obj{"type": "string", "minLength": 1},
				},
			},
			"NoteUpdate": obj{
				"type": "object",
				"properties": obj{
					"title":   obj{"type": "string", "minLength": 1, "maxLength": 200},
					"content": obj{"type": "string", "minLength": 1},
				},
			},
			"HTTPError": obj{
				"type":       "object",
				"properties": obj{"detail": obj{}},
			},
		},
	},
}

func OpenAPIHandler(c *gin.Context) {
	c.JSON(http.StatusOK, openAPIDocument)
}
