// Package docs registra el spec de swagger del API.
// Regenerar con: swag init -g cmd/api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "summary": "Healthcheck",
                "responses": {
                    "200": {"description": "ok"}
                }
            }
        },
        "/pets/{petID}": {
            "get": {
                "tags": ["pets"],
                "summary": "Obtener mascota",
                "parameters": [
                    {"type": "string", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "pet not found"}
                }
            },
            "post": {
                "tags": ["pets"],
                "summary": "Crear mascota",
                "description": "Describe la foto subida, genera y guarda el avatar, genera las notas de cuidado y persiste el perfil.",
                "parameters": [
                    {"type": "string", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "invalid input"},
                    "500": {"description": "pet creation failed"}
                }
            },
            "put": {
                "tags": ["pets"],
                "summary": "Actualizar notas de cuidado",
                "parameters": [
                    {"type": "string", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "invalid input"},
                    "404": {"description": "pet not found"}
                }
            }
        },
        "/pets/{petID}/diaries/{date}": {
            "get": {
                "tags": ["diaries"],
                "summary": "Obtener diario",
                "parameters": [
                    {"type": "string", "name": "petID", "in": "path", "required": true},
                    {"type": "string", "name": "date", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "diary not found"}
                }
            },
            "post": {
                "tags": ["diaries"],
                "summary": "Crear diario",
                "description": "Genera tareas y consejo del día y persiste la entrada. Una por (mascota, fecha).",
                "parameters": [
                    {"type": "string", "name": "petID", "in": "path", "required": true},
                    {"type": "string", "name": "date", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "invalid input"},
                    "500": {"description": "diary creation failed"}
                }
            },
            "put": {
                "tags": ["diaries"],
                "summary": "Actualizar diario",
                "parameters": [
                    {"type": "string", "name": "petID", "in": "path", "required": true},
                    {"type": "string", "name": "date", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "invalid input"},
                    "404": {"description": "diary not found"}
                }
            }
        },
        "/pets/{petID}/chat": {
            "get": {
                "tags": ["chat"],
                "summary": "Historial del chat",
                "parameters": [
                    {"type": "string", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "pet not found"},
                    "404": {"description": "no chat history"}
                }
            },
            "post": {
                "tags": ["chat"],
                "summary": "Enviar mensaje al asistente",
                "parameters": [
                    {"type": "string", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "invalid input / pet not found"},
                    "502": {"description": "assistant failed"}
                }
            }
        },
        "/images/presigned-url": {
            "post": {
                "tags": ["images"],
                "summary": "Emitir URL prefirmada",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "invalid input"}
                }
            }
        },
        "/users/{userID}": {
            "get": {
                "tags": ["users"],
                "summary": "Obtener usuario",
                "parameters": [
                    {"type": "string", "name": "userID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "user not found"}
                }
            },
            "post": {
                "tags": ["users"],
                "summary": "Crear usuario",
                "parameters": [
                    {"type": "string", "name": "userID", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "invalid input"}
                }
            },
            "put": {
                "tags": ["users"],
                "summary": "Actualizar usuario",
                "parameters": [
                    {"type": "string", "name": "userID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "invalid input"},
                    "404": {"description": "user not found"}
                }
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
	Title:            "Pet Care Journal API",
	Description:      "Backend del diario de cuidado de mascotas: perfiles con avatar generado, diarios con tareas y consejo del día, y asistente de chat por mascota.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
