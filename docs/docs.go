// Package docs Subway Path Service API.
//
// Поиск кратчайшего пути между станциями метро и расчет стоимости проезда.
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
        "/paths": {
            "get": {
                "description": "Кратчайший путь по расстоянию или времени, суммарные расстояние и время, стоимость проезда",
                "produces": ["application/json"],
                "tags": ["Paths"],
                "summary": "Кратчайший путь между станциями",
                "parameters": [
                    {"type": "integer", "description": "ID станции отправления", "name": "source", "in": "query", "required": true},
                    {"type": "integer", "description": "ID станции назначения", "name": "target", "in": "query", "required": true},
                    {"type": "string", "default": "DISTANCE", "description": "Метрика: DISTANCE или DURATION", "name": "weightType", "in": "query"},
                    {"type": "string", "description": "Bearer токен", "name": "Authorization", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PathResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/paths/time": {
            "get": {
                "description": "То же, что /paths с weightType=DURATION",
                "produces": ["application/json"],
                "tags": ["Paths"],
                "summary": "Путь с минимальным временем в пути",
                "parameters": [
                    {"type": "integer", "description": "ID станции отправления", "name": "source", "in": "query", "required": true},
                    {"type": "integer", "description": "ID станции назначения", "name": "target", "in": "query", "required": true},
                    {"type": "string", "description": "Bearer токен", "name": "Authorization", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PathResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.StationResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "dto.PathResponse": {
            "type": "object",
            "properties": {
                "stations": {"type": "array", "items": {"$ref": "#/definitions/dto.StationResponse"}},
                "distance": {"type": "integer"},
                "duration": {"type": "integer"},
                "fare": {"type": "integer"}
            }
        },
        "errors.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/errors.AppError"}
            }
        },
        "utils.SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "meta": {"type": "object"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Subway Path Service API",
	Description:      "Поиск кратчайшего пути между станциями метро и расчет стоимости проезда.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
