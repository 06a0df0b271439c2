// Package docs registers the OpenAPI document served under /swagger.
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
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Register a new user", "consumes": ["application/json"], "produces": ["application/json"],
            "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.RegisterRequest"}}],
            "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.RegisterResponse"}},
                "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Login user", "consumes": ["application/json"], "produces": ["application/json"],
            "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.LoginRequest"}}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AuthResponse"}},
                "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}},
        "/auth/refresh": {"post": {"tags": ["auth"], "summary": "Refresh access token", "consumes": ["application/json"], "produces": ["application/json"],
            "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.RefreshRequest"}}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AuthResponse"}},
                "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}},
        "/auth/logout": {"post": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Logout user", "consumes": ["application/json"], "produces": ["application/json"],
            "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.LogoutRequest"}}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}}}}},
        "/me": {"get": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Current user", "produces": ["application/json"],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.UserResponse"}}}}},
        "/semester/current": {"get": {"tags": ["faculty"], "summary": "Current semester token", "produces": ["application/json"],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SemesterResponse"}}}}},
        "/faculty": {"get": {"security": [{"BearerAuth": []}], "tags": ["faculty"], "summary": "List faculty members", "produces": ["application/json"],
            "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.FacultySummary"}}}}}},
        "/faculty/{username}/report.xlsx": {"get": {"security": [{"BearerAuth": []}], "tags": ["faculty"], "summary": "Download a faculty appraisal workbook",
            "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
            "parameters": [{"type": "string", "name": "username", "in": "path", "required": true}],
            "responses": {"200": {"description": "OK", "schema": {"type": "file"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}},
        "/faculty/{username}/publications": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["publications"], "summary": "List a faculty member's publications", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "username", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Publication"}}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["publications"], "summary": "Add a publication", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "username", "in": "path", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.PublicationRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.CreatedResponse"}}}}},
        "/publications/{id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["publications"], "summary": "Update a publication", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.PublicationRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["publications"], "summary": "Delete a publication", "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}}}}},
        "/faculty/{username}/experiences": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["experiences"], "summary": "List a faculty member's experiences", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "username", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Experience"}}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["experiences"], "summary": "Add an experience", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "username", "in": "path", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.ExperienceRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.CreatedResponse"}}}}},
        "/experiences/{id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["experiences"], "summary": "Update an experience", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.ExperienceRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["experiences"], "summary": "Delete an experience", "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}}}}},
        "/faculty/{username}/feedback": {"post": {"security": [{"BearerAuth": []}], "tags": ["feedback"], "summary": "Rate a faculty member", "consumes": ["application/json"], "produces": ["application/json"],
            "parameters": [{"type": "string", "name": "username", "in": "path", "required": true},
                {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.FeedbackRequest"}}],
            "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.SubmitFeedbackResponse"}},
                "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}},
        "/faculty/{username}/feedback/summary": {"get": {"security": [{"BearerAuth": []}], "tags": ["feedback"], "summary": "Feedback summary for a faculty member", "produces": ["application/json"],
            "parameters": [{"type": "string", "name": "username", "in": "path", "required": true}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.FeedbackSummary"}}}}},
        "/feedback/status": {"get": {"security": [{"BearerAuth": []}], "tags": ["feedback"], "summary": "Feedback status of the calling student", "produces": ["application/json"],
            "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.FeedbackStatus"}}}}}}
    },
    "definitions": {
        "errors.ErrorResponse": {"type": "object", "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}, "code": {"type": "string"}}},
        "handler.RegisterRequest": {"type": "object", "required": ["username", "password", "name", "role"],
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}, "name": {"type": "string"}, "role": {"type": "string", "enum": ["faculty", "evaluator", "student"]}}},
        "handler.LoginRequest": {"type": "object", "required": ["username", "password", "role"],
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}, "role": {"type": "string"}}},
        "handler.RefreshRequest": {"type": "object", "required": ["refresh_token"], "properties": {"refresh_token": {"type": "string"}}},
        "handler.LogoutRequest": {"type": "object", "required": ["refresh_token"], "properties": {"refresh_token": {"type": "string"}}},
        "handler.UserResponse": {"type": "object", "properties": {"username": {"type": "string"}, "name": {"type": "string"}, "role": {"type": "string"}}},
        "handler.RegisterResponse": {"type": "object", "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}, "user": {"$ref": "#/definitions/handler.UserResponse"}}},
        "handler.AuthResponse": {"type": "object", "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}, "access_token": {"type": "string"}, "refresh_token": {"type": "string"}, "user": {"$ref": "#/definitions/handler.UserResponse"}}},
        "handler.MessageResponse": {"type": "object", "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}}},
        "handler.CreatedResponse": {"type": "object", "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}, "id": {"type": "integer"}}},
        "handler.SemesterResponse": {"type": "object", "properties": {"semester": {"type": "string"}}},
        "handler.PublicationRequest": {"type": "object", "required": ["title", "journal", "year"],
            "properties": {"title": {"type": "string"}, "journal": {"type": "string"}, "year": {"type": "integer"}, "doi": {"type": "string"}}},
        "handler.ExperienceRequest": {"type": "object", "required": ["institution", "role", "duration"],
            "properties": {"institution": {"type": "string"}, "role": {"type": "string"}, "duration": {"type": "string"}, "description": {"type": "string"}}},
        "handler.FeedbackRequest": {"type": "object", "required": ["rating"],
            "properties": {"rating": {"type": "number", "minimum": 1, "maximum": 5}, "comment": {"type": "string"}, "semester": {"type": "string"}}},
        "handler.SubmitFeedbackResponse": {"type": "object", "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}, "id": {"type": "integer"}, "semester": {"type": "string"}}},
        "model.FacultySummary": {"type": "object", "properties": {"username": {"type": "string"}, "name": {"type": "string"}}},
        "model.Publication": {"type": "object", "properties": {"id": {"type": "integer"}, "title": {"type": "string"}, "journal": {"type": "string"}, "year": {"type": "integer"}, "doi": {"type": "string"}, "faculty_username": {"type": "string"}}},
        "model.Experience": {"type": "object", "properties": {"id": {"type": "integer"}, "institution": {"type": "string"}, "role": {"type": "string"}, "duration": {"type": "string"}, "description": {"type": "string"}, "faculty_username": {"type": "string"}}},
        "model.FeedbackView": {"type": "object", "properties": {"id": {"type": "integer"}, "faculty_username": {"type": "string"}, "student_username": {"type": "string"}, "evaluator_username": {"type": "string"}, "rating": {"type": "number"}, "comment": {"type": "string"}, "semester": {"type": "string"}, "timestamp": {"type": "string"}}},
        "model.FeedbackSummary": {"type": "object", "properties": {"avg_rating": {"type": "number"}, "student_count": {"type": "integer"}, "evaluator_count": {"type": "integer"}, "feedback": {"type": "array", "items": {"$ref": "#/definitions/model.FeedbackView"}}}},
        "model.FeedbackStatus": {"type": "object", "properties": {"faculty_username": {"type": "string"}, "faculty_name": {"type": "string"}, "status": {"type": "string"}, "semester": {"type": "string"}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"description": "Type \"Bearer\" followed by a space and JWT token.", "type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Faculty Appraisal API",
	Description:      "Faculty appraisal API: publications, experiences and semester feedback with JWT authentication.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
