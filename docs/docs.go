// Package docs registers the Swagger document served at /swagger/index.html.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "support@example.com"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Returns every project that is not soft-deleted, newest first, with lead number and customer name.",
                "produces": ["application/json"],
                "tags": ["projects"],
                "summary": "List projects",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ProjectListResult"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ProjectListResult"}}
                }
            },
            "post": {
                "description": "Fields that are not supplied are stored as NULL, except is_insured (false), approval_status (PENDING) and completion (0).",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["projects"],
                "summary": "Create a project",
                "parameters": [
                    {"description": "Project fields", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/models.ProjectInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.ProjectResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ProjectResult"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ProjectResult"}}
                }
            }
        },
        "/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["projects"],
                "summary": "Get a project",
                "parameters": [
                    {"type": "integer", "description": "Project ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ProjectResult"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ProjectResult"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ProjectResult"}}
                }
            },
            "put": {
                "description": "Fields that are not supplied keep their stored value. updated_by is always overwritten.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["projects"],
                "summary": "Update a project",
                "parameters": [
                    {"type": "integer", "description": "Project ID", "name": "id", "in": "path", "required": true},
                    {"description": "Project fields", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/models.ProjectInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ProjectResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ProjectResult"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ProjectResult"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ProjectResult"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["projects"],
                "summary": "Soft delete a project",
                "parameters": [
                    {"type": "integer", "description": "Project ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.DeletedProjectResult"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.DeletedProjectResult"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.DeletedProjectResult"}}
                }
            }
        },
        "/{id}/hard": {
            "delete": {
                "description": "Removes the row whether or not it was soft-deleted.",
                "produces": ["application/json"],
                "tags": ["projects"],
                "summary": "Permanently delete a project",
                "parameters": [
                    {"type": "integer", "description": "Project ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.DeletedProjectResult"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.DeletedProjectResult"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.DeletedProjectResult"}}
                }
            }
        }
    },
    "definitions": {
        "models.DeletedProject": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"}
            }
        },
        "models.DeletedProjectResult": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "statusCode": {"type": "integer"},
                "data": {"$ref": "#/definitions/models.DeletedProject"},
                "clientMessage": {"type": "string"},
                "devMessage": {"type": "string"}
            }
        },
        "models.Project": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "project_number": {"type": "string"},
                "name": {"type": "string"},
                "lead_id": {"type": "integer"},
                "project_type": {"type": "string"},
                "customer_id": {"type": "integer"},
                "warehouse_id": {"type": "integer"},
                "project_species": {"type": "string"},
                "project_status": {"type": "string"},
                "estimated_start": {"type": "string"},
                "estimated_end": {"type": "string"},
                "actual_start": {"type": "string"},
                "actual_end": {"type": "string"},
                "price_customer": {"type": "string"},
                "estimated_price": {"type": "string"},
                "actual_price": {"type": "string"},
                "kick_off": {"type": "string"},
                "comment_baseline": {"type": "string"},
                "comment_other": {"type": "string"},
                "project_template_id": {"type": "integer"},
                "location": {"type": "string"},
                "project_address": {"type": "string"},
                "is_insured": {"type": "boolean"},
                "insurance_no": {"type": "string"},
                "insurance_from_date": {"type": "string"},
                "insurance_to_date": {"type": "string"},
                "approval_status": {"type": "string"},
                "approval_comment": {"type": "string"},
                "approved_by": {"type": "integer"},
                "approved_on": {"type": "string"},
                "completion": {"type": "number"},
                "created_by": {"type": "integer"},
                "updated_by": {"type": "integer"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"},
                "is_active": {"type": "boolean"},
                "is_deleted": {"type": "boolean"},
                "lead_number": {"type": "string"},
                "customer_name": {"type": "string"}
            }
        },
        "models.ProjectInput": {
            "type": "object",
            "properties": {
                "project_number": {"type": "string"},
                "name": {"type": "string"},
                "lead_id": {"type": "integer"},
                "project_type": {"type": "string"},
                "customer_id": {"type": "integer"},
                "warehouse_id": {"type": "integer"},
                "project_species": {"type": "string"},
                "project_status": {"type": "string"},
                "estimated_start": {"type": "string", "example": "2025-03-01"},
                "estimated_end": {"type": "string"},
                "actual_start": {"type": "string"},
                "actual_end": {"type": "string"},
                "price_customer": {"type": "string"},
                "estimated_price": {"type": "string"},
                "actual_price": {"type": "string"},
                "kick_off": {"type": "string"},
                "comment_baseline": {"type": "string"},
                "comment_other": {"type": "string"},
                "project_template_id": {"type": "integer"},
                "location": {"type": "string"},
                "project_address": {"type": "string"},
                "is_insured": {"type": "boolean"},
                "insurance_no": {"type": "string"},
                "insurance_from_date": {"type": "string"},
                "insurance_to_date": {"type": "string"},
                "approval_status": {"type": "string", "example": "PENDING"},
                "approval_comment": {"type": "string"},
                "approved_by": {"type": "integer"},
                "approved_on": {"type": "string"},
                "completion": {"type": "number"},
                "created_by": {"type": "integer"},
                "updated_by": {"type": "integer"},
                "is_active": {"type": "boolean"}
            }
        },
        "models.ProjectListResult": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "statusCode": {"type": "integer"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/models.Project"}},
                "clientMessage": {"type": "string"},
                "devMessage": {"type": "string"}
            }
        },
        "models.ProjectResult": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "statusCode": {"type": "integer"},
                "data": {"$ref": "#/definitions/models.Project"},
                "clientMessage": {"type": "string"},
                "devMessage": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:3000",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Project Management API",
	Description:      "CRUD API for project records. Every response uses the same envelope: success, statusCode, data, clientMessage, devMessage.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
