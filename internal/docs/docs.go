// Package docs registra el documento OpenAPI que sirve /swagger/.
// Regenerar con `swag init -g cmd/api/main.go -o internal/docs` al cambiar anotaciones.
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
		"/api/owners/": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"owners"
				],
				"summary": "List owners",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/clinic.ownerResponse"
							}
						}
					},
					"404": {
						"description": "Not Found"
					}
				}
			},
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"owners"
				],
				"summary": "Create owners",
				"parameters": [
					{
						"description": "payload",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/clinic.ownerPayload"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/clinic.ownerResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/validation.FieldError"
							}
						}
					}
				}
			}
		},
		"/api/owners/{ownerId}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"owners"
				],
				"summary": "Get owners",
				"parameters": [
					{
						"type": "integer",
						"description": "id",
						"name": "ownerId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clinic.ownerResponse"
						}
					},
					"404": {
						"description": "Not Found"
					}
				}
			},
			"put": {
				"consumes": [
					"application/json"
				],
				"tags": [
					"owners"
				],
				"summary": "Update owners",
				"parameters": [
					{
						"type": "integer",
						"description": "id",
						"name": "ownerId",
						"in": "path",
						"required": true
					},
					{
						"description": "payload",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/clinic.ownerPayload"
						}
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/validation.FieldError"
							}
						}
					},
					"404": {
						"description": "Not Found"
					}
				}
			},
			"delete": {
				"tags": [
					"owners"
				],
				"summary": "Delete owners",
				"parameters": [
					{
						"type": "integer",
						"description": "id",
						"name": "ownerId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Not Found"
					}
				}
			}
		},
		"/api/pets/": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"pets"
				],
				"summary": "List pets",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/clinic.petResponse"
							}
						}
					},
					"404": {
						"description": "Not Found"
					}
				}
			},
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"pets"
				],
				"summary": "Create pets",
				"parameters": [
					{
						"description": "payload",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/clinic.petPayload"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/clinic.petResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/validation.FieldError"
							}
						}
					}
				}
			}
		},
		"/api/pets/{petId}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"pets"
				],
				"summary": "Get pets",
				"parameters": [
					{
						"type": "integer",
						"description": "id",
						"name": "petId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clinic.petResponse"
						}
					},
					"404": {
						"description": "Not Found"
					}
				}
			},
			"put": {
				"consumes": [
					"application/json"
				],
				"tags": [
					"pets"
				],
				"summary": "Update pets",
				"parameters": [
					{
						"type": "integer",
						"description": "id",
						"name": "petId",
						"in": "path",
						"required": true
					},
					{
						"description": "payload",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/clinic.petPayload"
						}
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/validation.FieldError"
							}
						}
					},
					"404": {
						"description": "Not Found"
					}
				}
			},
			"delete": {
				"tags": [
					"pets"
				],
				"summary": "Delete pets",
				"parameters": [
					{
						"type": "integer",
						"description": "id",
						"name": "petId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Not Found"
					}
				}
			}
		},
		"/api/visits/": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"visits"
				],
				"summary": "List visits",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/clinic.visitResponse"
							}
						}
					},
					"404": {
						"description": "Not Found"
					}
				}
			},
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"visits"
				],
				"summary": "Create visits",
				"parameters": [
					{
						"description": "payload",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/clinic.visitPayload"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/clinic.visitResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/validation.FieldError"
							}
						}
					}
				}
			}
		},
		"/api/visits/{visitId}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"visits"
				],
				"summary": "Get visits",
				"parameters": [
					{
						"type": "integer",
						"description": "id",
						"name": "visitId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clinic.visitResponse"
						}
					},
					"404": {
						"description": "Not Found"
					}
				}
			},
			"put": {
				"consumes": [
					"application/json"
				],
				"tags": [
					"visits"
				],
				"summary": "Update visits",
				"parameters": [
					{
						"type": "integer",
						"description": "id",
						"name": "visitId",
						"in": "path",
						"required": true
					},
					{
						"description": "payload",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/clinic.visitPayload"
						}
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/validation.FieldError"
							}
						}
					},
					"404": {
						"description": "Not Found"
					}
				}
			},
			"delete": {
				"tags": [
					"visits"
				],
				"summary": "Delete visits",
				"parameters": [
					{
						"type": "integer",
						"description": "id",
						"name": "visitId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Not Found"
					}
				}
			}
		},
		"/api/vets/": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"vets"
				],
				"summary": "List vets",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/clinic.vetResponse"
							}
						}
					},
					"404": {
						"description": "Not Found"
					}
				}
			},
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"vets"
				],
				"summary": "Create vets",
				"parameters": [
					{
						"description": "payload",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/clinic.vetPayload"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/clinic.vetResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/validation.FieldError"
							}
						}
					}
				}
			}
		},
		"/api/vets/{vetId}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"vets"
				],
				"summary": "Get vets",
				"parameters": [
					{
						"type": "integer",
						"description": "id",
						"name": "vetId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clinic.vetResponse"
						}
					},
					"404": {
						"description": "Not Found"
					}
				}
			},
			"put": {
				"consumes": [
					"application/json"
				],
				"tags": [
					"vets"
				],
				"summary": "Update vets",
				"parameters": [
					{
						"type": "integer",
						"description": "id",
						"name": "vetId",
						"in": "path",
						"required": true
					},
					{
						"description": "payload",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/clinic.vetPayload"
						}
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/validation.FieldError"
							}
						}
					},
					"404": {
						"description": "Not Found"
					}
				}
			},
			"delete": {
				"tags": [
					"vets"
				],
				"summary": "Delete vets",
				"parameters": [
					{
						"type": "integer",
						"description": "id",
						"name": "vetId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Not Found"
					}
				}
			}
		},
		"/api/pettypes/": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"pettypes"
				],
				"summary": "List pettypes",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/clinic.petTypeResponse"
							}
						}
					},
					"404": {
						"description": "Not Found"
					}
				}
			},
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"pettypes"
				],
				"summary": "Create pettypes",
				"parameters": [
					{
						"description": "payload",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/clinic.namedPayload"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/clinic.petTypeResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/validation.FieldError"
							}
						}
					}
				}
			}
		},
		"/api/pettypes/{petTypeId}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"pettypes"
				],
				"summary": "Get pettypes",
				"parameters": [
					{
						"type": "integer",
						"description": "id",
						"name": "petTypeId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clinic.petTypeResponse"
						}
					},
					"404": {
						"description": "Not Found"
					}
				}
			},
			"put": {
				"consumes": [
					"application/json"
				],
				"tags": [
					"pettypes"
				],
				"summary": "Update pettypes",
				"parameters": [
					{
						"type": "integer",
						"description": "id",
						"name": "petTypeId",
						"in": "path",
						"required": true
					},
					{
						"description": "payload",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/clinic.namedPayload"
						}
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/validation.FieldError"
							}
						}
					},
					"404": {
						"description": "Not Found"
					}
				}
			},
			"delete": {
				"tags": [
					"pettypes"
				],
				"summary": "Delete pettypes",
				"parameters": [
					{
						"type": "integer",
						"description": "id",
						"name": "petTypeId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Not Found"
					}
				}
			}
		},
		"/api/specialties/": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"specialties"
				],
				"summary": "List specialties",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/clinic.specialtyResponse"
							}
						}
					},
					"404": {
						"description": "Not Found"
					}
				}
			},
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"specialties"
				],
				"summary": "Create specialties",
				"parameters": [
					{
						"description": "payload",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/clinic.namedPayload"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/clinic.specialtyResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/validation.FieldError"
							}
						}
					}
				}
			}
		},
		"/api/specialties/{specialtyId}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"specialties"
				],
				"summary": "Get specialties",
				"parameters": [
					{
						"type": "integer",
						"description": "id",
						"name": "specialtyId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clinic.specialtyResponse"
						}
					},
					"404": {
						"description": "Not Found"
					}
				}
			},
			"put": {
				"consumes": [
					"application/json"
				],
				"tags": [
					"specialties"
				],
				"summary": "Update specialties",
				"parameters": [
					{
						"type": "integer",
						"description": "id",
						"name": "specialtyId",
						"in": "path",
						"required": true
					},
					{
						"description": "payload",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/clinic.namedPayload"
						}
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/validation.FieldError"
							}
						}
					},
					"404": {
						"description": "Not Found"
					}
				}
			},
			"delete": {
				"tags": [
					"specialties"
				],
				"summary": "Delete specialties",
				"parameters": [
					{
						"type": "integer",
						"description": "id",
						"name": "specialtyId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Not Found"
					}
				}
			}
		},
		"/api/owners/*/lastname/{lastName}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"owners"
				],
				"summary": "Find owners by last name prefix",
				"parameters": [
					{
						"type": "string",
						"name": "lastName",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/clinic.ownerResponse"
							}
						}
					},
					"404": {
						"description": "Not Found"
					}
				}
			}
		},
		"/api/pets/pettypes": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"pets"
				],
				"summary": "Cached pet types",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/clinic.petTypeResponse"
							}
						}
					}
				}
			}
		},
		"/api/pets/{petId}/visits": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"pets"
				],
				"summary": "Visits of a pet",
				"parameters": [
					{
						"type": "integer",
						"name": "petId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/clinic.visitResponse"
							}
						}
					},
					"404": {
						"description": "Not Found"
					}
				}
			}
		},
		"/api/users/": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Create or replace user",
				"parameters": [
					{
						"description": "payload",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/users.userPayload"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/users.userResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/validation.FieldError"
							}
						}
					},
					"401": {
						"description": "Unauthorized"
					},
					"403": {
						"description": "Forbidden"
					}
				}
			}
		}
	},
	"definitions": {
		"clinic.entityRef": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				}
			}
		},
		"clinic.ownerPayload": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"firstName": {
					"type": "string"
				},
				"lastName": {
					"type": "string"
				},
				"address": {
					"type": "string"
				},
				"city": {
					"type": "string"
				},
				"telephone": {
					"type": "string"
				}
			}
		},
		"clinic.ownerResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"firstName": {
					"type": "string"
				},
				"lastName": {
					"type": "string"
				},
				"address": {
					"type": "string"
				},
				"city": {
					"type": "string"
				},
				"telephone": {
					"type": "string"
				},
				"pets": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/clinic.petResponse"
					}
				}
			}
		},
		"clinic.petPayload": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"birthDate": {
					"type": "string",
					"example": "2012/09/04"
				},
				"type": {
					"$ref": "#/definitions/clinic.entityRef"
				},
				"owner": {
					"$ref": "#/definitions/clinic.entityRef"
				}
			}
		},
		"clinic.petResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"birthDate": {
					"type": "string"
				},
				"type": {
					"$ref": "#/definitions/clinic.petTypeResponse"
				},
				"owner": {
					"$ref": "#/definitions/clinic.ownerRefResponse"
				},
				"visits": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/clinic.visitResponse"
					}
				}
			}
		},
		"clinic.visitPayload": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"date": {
					"type": "string",
					"example": "2013/01/01"
				},
				"description": {
					"type": "string"
				},
				"pet": {
					"$ref": "#/definitions/clinic.entityRef"
				}
			}
		},
		"clinic.visitResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"date": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"pet": {
					"$ref": "#/definitions/clinic.petRefResponse"
				}
			}
		},
		"clinic.ownerRefResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"firstName": {
					"type": "string"
				},
				"lastName": {
					"type": "string"
				},
				"address": {
					"type": "string"
				},
				"city": {
					"type": "string"
				},
				"telephone": {
					"type": "string"
				}
			}
		},
		"clinic.petRefResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"birthDate": {
					"type": "string"
				},
				"type": {
					"$ref": "#/definitions/clinic.petTypeResponse"
				},
				"owner": {
					"$ref": "#/definitions/clinic.ownerRefResponse"
				}
			}
		},
		"clinic.vetPayload": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"firstName": {
					"type": "string"
				},
				"lastName": {
					"type": "string"
				},
				"specialties": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/clinic.entityRef"
					}
				}
			}
		},
		"clinic.vetResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"firstName": {
					"type": "string"
				},
				"lastName": {
					"type": "string"
				},
				"specialties": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/clinic.specialtyResponse"
					}
				}
			}
		},
		"clinic.namedPayload": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				}
			}
		},
		"clinic.petTypeResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				}
			}
		},
		"clinic.specialtyResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				}
			}
		},
		"users.userPayload": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"enabled": {
					"type": "boolean"
				},
				"roles": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"users.userResponse": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				},
				"enabled": {
					"type": "boolean"
				},
				"roles": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"validation.FieldError": {
			"type": "object",
			"properties": {
				"objectName": {
					"type": "string"
				},
				"fieldName": {
					"type": "string"
				},
				"fieldValue": {},
				"errorMessage": {
					"type": "string"
				}
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
	Title:            "Petclinic API",
	Description:      "Owners, mascotas, visitas, veterinarios y catálogos de la clínica.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
