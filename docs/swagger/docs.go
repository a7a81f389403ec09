// Package swagger registers the OpenAPI document served at
// /swagger/doc.json.  It is maintained by hand: the metric routes are
// mounted from generic handlers that swag cannot annotate, so `swag init`
// must not be run over this package.  docs_test.go checks that every route
// in telemetry.Handler.Routes is documented.
package swagger

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
        "/api/water-level": {
            "post": {
                "description": "Stores one reading; the timestamp is assigned by the database.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "water-level"
                ],
                "summary": "Record a reading",
                "parameters": [
                    {
                        "description": "Reading",
                        "name": "reading",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/telemetry.waterLevelRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "message": {
                                    "type": "string",
                                    "example": "Data stored"
                                },
                                "data": {
                                    "$ref": "#/definitions/models.WaterLevelReading"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/water-level/day": {
            "get": {
                "description": "Readings for the current UTC day.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "water-level"
                ],
                "summary": "Readings for one day",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "date": {
                                    "type": "string",
                                    "example": "2024-06-12"
                                },
                                "count": {
                                    "type": "integer"
                                },
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.WaterLevelReading"
                                    }
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/water-level/day/{date}": {
            "get": {
                "description": "Returns readings between <date>T00:00:00Z and <date>T23:59:59Z ordered by timestamp ascending.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "water-level"
                ],
                "summary": "Readings for one day",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "date": {
                                    "type": "string",
                                    "example": "2024-06-12"
                                },
                                "count": {
                                    "type": "integer"
                                },
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.WaterLevelReading"
                                    }
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "example": "2024-06-12",
                        "description": "Date (YYYY-MM-DD)",
                        "name": "date",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/water-level/week": {
            "get": {
                "description": "Returns readings from Monday 00:00:00Z to Sunday 23:59:59Z of the current ISO week.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "water-level"
                ],
                "summary": "Readings for the current ISO week",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "week_start": {
                                    "type": "string",
                                    "example": "2024-06-10T00:00:00Z"
                                },
                                "week_end": {
                                    "type": "string",
                                    "example": "2024-06-16T23:59:59Z"
                                },
                                "count": {
                                    "type": "integer"
                                },
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.WaterLevelReading"
                                    }
                                }
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/pet-bpm": {
            "post": {
                "description": "Stores one reading; the timestamp is assigned by the database.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "heart-rate"
                ],
                "summary": "Record a reading",
                "parameters": [
                    {
                        "description": "Reading",
                        "name": "reading",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/telemetry.heartRateRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "message": {
                                    "type": "string",
                                    "example": "Data stored"
                                },
                                "data": {
                                    "$ref": "#/definitions/models.HeartRateReading"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/pet-bpm/day": {
            "get": {
                "description": "Readings for the current UTC day.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "heart-rate"
                ],
                "summary": "Readings for one day",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "date": {
                                    "type": "string",
                                    "example": "2024-06-12"
                                },
                                "count": {
                                    "type": "integer"
                                },
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.HeartRateReading"
                                    }
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/pet-bpm/day/{date}": {
            "get": {
                "description": "Returns readings between <date>T00:00:00Z and <date>T23:59:59Z ordered by timestamp ascending.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "heart-rate"
                ],
                "summary": "Readings for one day",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "date": {
                                    "type": "string",
                                    "example": "2024-06-12"
                                },
                                "count": {
                                    "type": "integer"
                                },
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.HeartRateReading"
                                    }
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "example": "2024-06-12",
                        "description": "Date (YYYY-MM-DD)",
                        "name": "date",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/pet-bpm/week": {
            "get": {
                "description": "Returns readings from Monday 00:00:00Z to Sunday 23:59:59Z of the current ISO week.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "heart-rate"
                ],
                "summary": "Readings for the current ISO week",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "week_start": {
                                    "type": "string",
                                    "example": "2024-06-10T00:00:00Z"
                                },
                                "week_end": {
                                    "type": "string",
                                    "example": "2024-06-16T23:59:59Z"
                                },
                                "count": {
                                    "type": "integer"
                                },
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.HeartRateReading"
                                    }
                                }
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/pet-location": {
            "post": {
                "description": "Stores one reading; the timestamp is assigned by the database.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "location"
                ],
                "summary": "Record a reading",
                "parameters": [
                    {
                        "description": "Reading",
                        "name": "reading",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/telemetry.roamingPathRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "message": {
                                    "type": "string",
                                    "example": "Data stored"
                                },
                                "data": {
                                    "$ref": "#/definitions/models.RoamingPathPoint"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/pet-location/day": {
            "get": {
                "description": "Readings for the current UTC day.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "location"
                ],
                "summary": "Readings for one day",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "date": {
                                    "type": "string",
                                    "example": "2024-06-12"
                                },
                                "count": {
                                    "type": "integer"
                                },
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.RoamingPathPoint"
                                    }
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/pet-location/day/{date}": {
            "get": {
                "description": "Returns readings between <date>T00:00:00Z and <date>T23:59:59Z ordered by timestamp ascending.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "location"
                ],
                "summary": "Readings for one day",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "date": {
                                    "type": "string",
                                    "example": "2024-06-12"
                                },
                                "count": {
                                    "type": "integer"
                                },
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.RoamingPathPoint"
                                    }
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "example": "2024-06-12",
                        "description": "Date (YYYY-MM-DD)",
                        "name": "date",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/pet-location/week": {
            "get": {
                "description": "Returns readings from Monday 00:00:00Z to Sunday 23:59:59Z of the current ISO week.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "location"
                ],
                "summary": "Readings for the current ISO week",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "week_start": {
                                    "type": "string",
                                    "example": "2024-06-10T00:00:00Z"
                                },
                                "week_end": {
                                    "type": "string",
                                    "example": "2024-06-16T23:59:59Z"
                                },
                                "count": {
                                    "type": "integer"
                                },
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.RoamingPathPoint"
                                    }
                                }
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/pet-food-weight": {
            "post": {
                "description": "Stores one reading; the timestamp is assigned by the database.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "food-weight"
                ],
                "summary": "Record a reading",
                "parameters": [
                    {
                        "description": "Reading",
                        "name": "reading",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/telemetry.foodWeightRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "message": {
                                    "type": "string",
                                    "example": "Data stored"
                                },
                                "data": {
                                    "$ref": "#/definitions/models.FoodWeightReading"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/pet-food-weight/day": {
            "get": {
                "description": "Readings for the current UTC day.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "food-weight"
                ],
                "summary": "Readings for one day",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "date": {
                                    "type": "string",
                                    "example": "2024-06-12"
                                },
                                "count": {
                                    "type": "integer"
                                },
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.FoodWeightReading"
                                    }
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/pet-food-weight/day/{date}": {
            "get": {
                "description": "Returns readings between <date>T00:00:00Z and <date>T23:59:59Z ordered by timestamp ascending.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "food-weight"
                ],
                "summary": "Readings for one day",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "date": {
                                    "type": "string",
                                    "example": "2024-06-12"
                                },
                                "count": {
                                    "type": "integer"
                                },
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.FoodWeightReading"
                                    }
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "example": "2024-06-12",
                        "description": "Date (YYYY-MM-DD)",
                        "name": "date",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/pet-food-weight/week": {
            "get": {
                "description": "Returns readings from Monday 00:00:00Z to Sunday 23:59:59Z of the current ISO week.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "food-weight"
                ],
                "summary": "Readings for the current ISO week",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "week_start": {
                                    "type": "string",
                                    "example": "2024-06-10T00:00:00Z"
                                },
                                "week_end": {
                                    "type": "string",
                                    "example": "2024-06-16T23:59:59Z"
                                },
                                "count": {
                                    "type": "integer"
                                },
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.FoodWeightReading"
                                    }
                                }
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/pet-spo2": {
            "post": {
                "description": "Stores one reading; the timestamp is assigned by the database.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "blood-oxygen"
                ],
                "summary": "Record a reading",
                "parameters": [
                    {
                        "description": "Reading",
                        "name": "reading",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/telemetry.bloodOxygenRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "message": {
                                    "type": "string",
                                    "example": "Data stored"
                                },
                                "data": {
                                    "$ref": "#/definitions/models.BloodOxygenReading"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/pet-spo2/day": {
            "get": {
                "description": "Readings for the current UTC day.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "blood-oxygen"
                ],
                "summary": "Readings for one day",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "date": {
                                    "type": "string",
                                    "example": "2024-06-12"
                                },
                                "count": {
                                    "type": "integer"
                                },
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.BloodOxygenReading"
                                    }
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/pet-spo2/day/{date}": {
            "get": {
                "description": "Returns readings between <date>T00:00:00Z and <date>T23:59:59Z ordered by timestamp ascending.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "blood-oxygen"
                ],
                "summary": "Readings for one day",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "date": {
                                    "type": "string",
                                    "example": "2024-06-12"
                                },
                                "count": {
                                    "type": "integer"
                                },
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.BloodOxygenReading"
                                    }
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "example": "2024-06-12",
                        "description": "Date (YYYY-MM-DD)",
                        "name": "date",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/pet-spo2/week": {
            "get": {
                "description": "Returns readings from Monday 00:00:00Z to Sunday 23:59:59Z of the current ISO week.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "blood-oxygen"
                ],
                "summary": "Readings for the current ISO week",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "week_start": {
                                    "type": "string",
                                    "example": "2024-06-10T00:00:00Z"
                                },
                                "week_end": {
                                    "type": "string",
                                    "example": "2024-06-16T23:59:59Z"
                                },
                                "count": {
                                    "type": "integer"
                                },
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/models.BloodOxygenReading"
                                    }
                                }
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/pet-data": {
            "post": {
                "description": "Stores food weight and water level with derived statuses, plus location,\nheart rate and blood oxygen when gps, bpm and spo2 are all present.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ingest"
                ],
                "summary": "Ingest a device snapshot",
                "parameters": [
                    {
                        "description": "Device snapshot",
                        "name": "snapshot",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/telemetry.Snapshot"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/telemetry.MessageResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/telemetry.errorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "models.WaterLevelReading": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "adc_value": {
                    "type": "integer"
                },
                "percent": {
                    "type": "number"
                },
                "status": {
                    "type": "string",
                    "example": "medium"
                },
                "timestamp": {
                    "type": "string",
                    "example": "2024-06-12T08:30:00Z"
                }
            }
        },
        "models.HeartRateReading": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "bpm": {
                    "type": "number"
                },
                "timestamp": {
                    "type": "string",
                    "example": "2024-06-12T08:30:00Z"
                }
            }
        },
        "models.RoamingPathPoint": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "latitude": {
                    "type": "number"
                },
                "longitude": {
                    "type": "number"
                },
                "altitude": {
                    "type": "number"
                },
                "timestamp": {
                    "type": "string",
                    "example": "2024-06-12T08:30:00Z"
                }
            }
        },
        "models.FoodWeightReading": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "weight_grams": {
                    "type": "number"
                },
                "status": {
                    "type": "string",
                    "example": "half"
                },
                "timestamp": {
                    "type": "string",
                    "example": "2024-06-12T08:30:00Z"
                }
            }
        },
        "models.BloodOxygenReading": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "spo2": {
                    "type": "number"
                },
                "timestamp": {
                    "type": "string",
                    "example": "2024-06-12T08:30:00Z"
                }
            }
        },
        "telemetry.waterLevelRequest": {
            "type": "object",
            "required": [
                "adcValue",
                "percent",
                "status"
            ],
            "properties": {
                "adcValue": {
                    "type": "integer"
                },
                "percent": {
                    "type": "number"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "telemetry.heartRateRequest": {
            "type": "object",
            "required": [
                "bpm"
            ],
            "properties": {
                "bpm": {
                    "type": "number"
                }
            }
        },
        "telemetry.roamingPathRequest": {
            "type": "object",
            "required": [
                "latitude",
                "longitude",
                "altitude"
            ],
            "properties": {
                "latitude": {
                    "type": "number"
                },
                "longitude": {
                    "type": "number"
                },
                "altitude": {
                    "type": "number"
                }
            }
        },
        "telemetry.foodWeightRequest": {
            "type": "object",
            "required": [
                "food_weight"
            ],
            "properties": {
                "food_weight": {
                    "type": "number"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "telemetry.bloodOxygenRequest": {
            "type": "object",
            "required": [
                "spo2"
            ],
            "properties": {
                "spo2": {
                    "type": "number"
                }
            }
        },
        "telemetry.GPS": {
            "type": "object",
            "properties": {
                "lat": {
                    "type": "number"
                },
                "lng": {
                    "type": "number"
                },
                "alt": {
                    "type": "number"
                }
            }
        },
        "telemetry.Snapshot": {
            "type": "object",
            "required": [
                "mode",
                "pump",
                "waterLevel",
                "weight"
            ],
            "properties": {
                "mode": {
                    "type": "string",
                    "example": "auto"
                },
                "pump": {
                    "type": "boolean"
                },
                "waterLevel": {
                    "type": "number"
                },
                "weight": {
                    "type": "number"
                },
                "gps": {
                    "$ref": "#/definitions/telemetry.GPS"
                },
                "bpm": {
                    "type": "number"
                },
                "spo2": {
                    "type": "number"
                }
            }
        },
        "telemetry.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "Data stored"
                }
            }
        },
        "telemetry.errorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "Missing required fields"
                }
            }
        }
    }
}`

// SwaggerInfo holds the document metadata; Host may be overridden at startup.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "PetCare API",
	Description:      "Pet-monitoring telemetry ingestion and retrieval.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
