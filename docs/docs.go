// Package docs holds the swagger document served under /swagger/*,
// written to match the handler annotations in controller/dashboard.
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
        "/api/currency": {
            "get": {
                "tags": ["currency"],
                "summary": "Display currency",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dashboard.CurrencyResponse"}
                    }
                }
            },
            "put": {
                "tags": ["currency"],
                "summary": "Change the display currency",
                "parameters": [
                    {
                        "description": "New currency",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dashboard.CurrencyRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dashboard.CurrencyResponse"}
                    },
                    "400": {
                        "description": "unsupported currency",
                        "schema": {"$ref": "#/definitions/model.APIResponse"}
                    }
                }
            }
        },
        "/api/dashboard": {
            "get": {
                "description": "settings, status, totals and snapshots rendered in the display currency",
                "tags": ["dashboard"],
                "summary": "Dashboard view",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1600000000,
                        "description": "Unix timestamp, defaults to now",
                        "name": "end",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dashboard.View"}
                    }
                }
            }
        },
        "/api/icons": {
            "get": {
                "tags": ["dashboard"],
                "summary": "Registered icon identifiers",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"type": "string"}}
                    }
                }
            }
        },
        "/api/rates": {
            "get": {
                "tags": ["rates"],
                "summary": "Cached exchange rates",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dashboard.RatesResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "dashboard.CurrencyRequest": {
            "type": "object",
            "required": ["currency"],
            "properties": {
                "currency": {"type": "string"}
            }
        },
        "dashboard.CurrencyResponse": {
            "type": "object",
            "properties": {
                "currency": {"type": "string"},
                "supported": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dashboard.RatesResponse": {
            "type": "object",
            "properties": {
                "sc": {"type": "object", "additionalProperties": {"type": "number"}},
                "sf": {"type": "object", "additionalProperties": {"type": "number"}}
            }
        },
        "dashboard.SettingsView": {
            "type": "object",
            "properties": {
                "contract_price": {"type": "string"},
                "download_price": {"type": "string"},
                "settings": {"type": "object", "description": "average host settings as received"},
                "storage_price": {"type": "string"},
                "upload_price": {"type": "string"}
            }
        },
        "dashboard.View": {
            "type": "object",
            "properties": {
                "currency": {"type": "string"},
                "errors": {"type": "object", "additionalProperties": {"type": "string"}},
                "exchange_rate_sc": {"type": "object", "additionalProperties": {"type": "number"}},
                "exchange_rate_sf": {"type": "object", "additionalProperties": {"type": "number"}},
                "settings": {"$ref": "#/definitions/dashboard.SettingsView"},
                "snapshots": {"type": "array", "items": {"type": "object"}},
                "status": {"type": "object", "description": "status body as received"},
                "totals": {"type": "object", "description": "totals body as received"}
            }
        },
        "model.APIResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "type": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8885",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Host stats dashboard",
	Description:      "Storage network statistics rendered in a display currency",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
