// Package docs Code generated by swaggo/swag. DO NOT EDIT
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/assignments": {
            "get": {
                "description": "List assignments by user ID or session ID, newest first.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Assignments"
                ],
                "summary": "List a visitor's assignments",
                "parameters": [
                    {
                        "type": "string",
                        "description": "User ID",
                        "name": "user_id",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "session_id",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Assignments",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/ent.ExperimentAssignment"
                            }
                        }
                    },
                    "400": {
                        "description": "Missing identity",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Bucket a visitor into a variant of a running experiment. Idempotent per identity.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Assignments"
                ],
                "summary": "Get or create an assignment",
                "parameters": [
                    {
                        "description": "Experiment and visitor identity",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.AssignmentRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Assignment",
                        "schema": {
                            "$ref": "#/definitions/ent.ExperimentAssignment"
                        }
                    },
                    "400": {
                        "description": "Missing identity",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Experiment not found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Experiment not running",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/assignments/{id}/conversion": {
            "post": {
                "description": "Record a conversion, optionally with a monetary value. Always accepted.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Tracking"
                ],
                "summary": "Track a conversion",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Assignment ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Conversion details",
                        "name": "request",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/models.TrackConversionRequest"
                        }
                    }
                ],
                "responses": {
                    "202": {
                        "description": "Accepted",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/assignments/{id}/events": {
            "post": {
                "description": "Record an arbitrary named event against an assignment. Always accepted.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Tracking"
                ],
                "summary": "Track a custom event",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Assignment ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Event details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.TrackCustomEventRequest"
                        }
                    }
                ],
                "responses": {
                    "202": {
                        "description": "Accepted",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/assignments/{id}/impression": {
            "post": {
                "description": "Record that the visitor saw their variant. Always accepted.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Tracking"
                ],
                "summary": "Track an impression",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Assignment ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "202": {
                        "description": "Accepted",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/assignments/{id}/interaction": {
            "post": {
                "description": "Record a click or comparable interaction. Always accepted.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Tracking"
                ],
                "summary": "Track an interaction",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Assignment ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Interaction details",
                        "name": "request",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/models.TrackInteractionRequest"
                        }
                    }
                ],
                "responses": {
                    "202": {
                        "description": "Accepted",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/experiments": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "List all experiments, newest first, optionally filtered by status.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Experiments"
                ],
                "summary": "List experiments",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Status filter (draft, running, paused, completed, archived)",
                        "name": "status",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Experiments",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/ent.Experiment"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Create an experiment with its variants. The experiment starts in draft status.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Experiments"
                ],
                "summary": "Create an experiment",
                "parameters": [
                    {
                        "description": "Experiment definition",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.CreateExperimentRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created experiment",
                        "schema": {
                            "$ref": "#/definitions/ent.Experiment"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/experiments/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get one experiment with its variants.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Experiments"
                ],
                "summary": "Get an experiment",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Experiment ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Experiment",
                        "schema": {
                            "$ref": "#/definitions/ent.Experiment"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Delete an experiment with its variants, assignments, and results.",
                "tags": [
                    "Experiments"
                ],
                "summary": "Delete an experiment",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Experiment ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            },
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Apply a partial update. Variants can only be replaced while the experiment is draft.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Experiments"
                ],
                "summary": "Update an experiment",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Experiment ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to update",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.UpdateExperimentRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated experiment",
                        "schema": {
                            "$ref": "#/definitions/ent.Experiment"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Variants locked after start",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/experiments/{id}/archive": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Archive any experiment that is not currently running.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Experiments"
                ],
                "summary": "Archive an experiment",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Experiment ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Archived experiment",
                        "schema": {
                            "$ref": "#/definitions/ent.Experiment"
                        }
                    },
                    "422": {
                        "description": "Illegal transition",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/experiments/{id}/complete": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Transition a running or paused experiment to completed.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Experiments"
                ],
                "summary": "Complete an experiment",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Experiment ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Completed experiment",
                        "schema": {
                            "$ref": "#/definitions/ent.Experiment"
                        }
                    },
                    "422": {
                        "description": "Illegal transition",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/experiments/{id}/completion-estimate": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Project the days left until the experiment reaches its required sample size.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analysis"
                ],
                "summary": "Time-to-completion estimate",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Experiment ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Expected impressions per day across all variants",
                        "name": "daily_traffic",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Completion estimate",
                        "schema": {
                            "$ref": "#/definitions/analysis.CompletionEstimate"
                        }
                    },
                    "400": {
                        "description": "Invalid daily traffic",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/experiments/{id}/export": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Download an XLSX workbook with the experiment summary and per-variant results.",
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "tags": [
                    "Experiments"
                ],
                "summary": "Export results as XLSX",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Experiment ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Workbook",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/experiments/{id}/metrics-over-time": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Per-variant impressions and conversions bucketed by day, week, or month.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analysis"
                ],
                "summary": "Metrics over time",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Experiment ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "default": "day",
                        "description": "Bucket size (day, week, month)",
                        "name": "interval",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Time series report",
                        "schema": {
                            "$ref": "#/definitions/analysis.TimeSeriesReport"
                        }
                    },
                    "400": {
                        "description": "Invalid interval",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/experiments/{id}/pause": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Transition a running experiment to paused.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Experiments"
                ],
                "summary": "Pause an experiment",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Experiment ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Paused experiment",
                        "schema": {
                            "$ref": "#/definitions/ent.Experiment"
                        }
                    },
                    "422": {
                        "description": "Illegal transition",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/experiments/{id}/results": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Aggregated per-variant counts, conversion rates, and revenue.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Experiments"
                ],
                "summary": "Experiment results",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Experiment ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Aggregated results",
                        "schema": {
                            "$ref": "#/definitions/experiments.ExperimentReport"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/experiments/{id}/significance": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Run the two-proportion z-test of every variant against control.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analysis"
                ],
                "summary": "Statistical significance",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Experiment ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Significance report",
                        "schema": {
                            "$ref": "#/definitions/analysis.SignificanceReport"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "No control variant",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/experiments/{id}/start": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Transition a draft or paused experiment to running.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Experiments"
                ],
                "summary": "Start an experiment",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Experiment ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Running experiment",
                        "schema": {
                            "$ref": "#/definitions/ent.Experiment"
                        }
                    },
                    "422": {
                        "description": "Illegal transition",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/experiments/{id}/variants/{variantId}": {
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Apply a partial update to one variant of an experiment.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Experiments"
                ],
                "summary": "Update a variant",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Experiment ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Variant ID",
                        "name": "variantId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to update",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.UpdateVariantRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated variant",
                        "schema": {
                            "$ref": "#/definitions/ent.ExperimentVariant"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/experiments/{id}/winner": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Mark one of the experiment's variants as the winner.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Experiments"
                ],
                "summary": "Declare a winning variant",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Experiment ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Winning variant",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.DeclareWinnerRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Experiment with winner",
                        "schema": {
                            "$ref": "#/definitions/ent.Experiment"
                        }
                    },
                    "400": {
                        "description": "Variant belongs to another experiment",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/variant-config": {
            "get": {
                "description": "Assign the visitor to every running experiment of a type and return the variant configuration per experiment. Never fails; trouble yields null.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Assignments"
                ],
                "summary": "Batch variant configuration",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Experiment type",
                        "name": "type",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "User ID",
                        "name": "user_id",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "session_id",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Configurations keyed by experiment ID",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "$ref": "#/definitions/assignment.VariantConfiguration"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "analysis.CompletionEstimate": {
            "type": "object",
            "properties": {
                "baseline_conversion_rate": {
                    "type": "number"
                },
                "current_impressions": {
                    "type": "integer"
                },
                "estimated_completion_date": {
                    "type": "string"
                },
                "estimated_days_remaining": {
                    "type": "integer"
                },
                "experiment_id": {
                    "type": "integer"
                },
                "experiment_name": {
                    "type": "string"
                },
                "min_detectable_effect": {
                    "type": "number"
                },
                "remaining_impressions": {
                    "type": "integer"
                },
                "required_sample_size_per_variant": {
                    "type": "integer"
                },
                "required_sample_size_total": {
                    "type": "integer"
                }
            }
        },
        "analysis.MetricPoint": {
            "type": "object",
            "properties": {
                "conversion_rate": {
                    "type": "number"
                },
                "conversions": {
                    "type": "integer"
                },
                "impressions": {
                    "type": "integer"
                },
                "period": {
                    "type": "string"
                },
                "start": {
                    "type": "string"
                }
            }
        },
        "analysis.SignificanceReport": {
            "type": "object",
            "properties": {
                "experiment_id": {
                    "type": "integer"
                },
                "experiment_name": {
                    "type": "string"
                },
                "results": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analysis.VariantSignificance"
                    }
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "analysis.TimeSeriesReport": {
            "type": "object",
            "properties": {
                "experiment_id": {
                    "type": "integer"
                },
                "interval": {
                    "type": "string"
                },
                "variants": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analysis.VariantSeries"
                    }
                }
            }
        },
        "analysis.VariantSeries": {
            "type": "object",
            "properties": {
                "is_control": {
                    "type": "boolean"
                },
                "points": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analysis.MetricPoint"
                    }
                },
                "variant_id": {
                    "type": "integer"
                },
                "variant_name": {
                    "type": "string"
                }
            }
        },
        "analysis.VariantSignificance": {
            "type": "object",
            "properties": {
                "confidence_level": {
                    "type": "number"
                },
                "conversion_rate": {
                    "type": "number"
                },
                "conversions": {
                    "type": "integer"
                },
                "impressions": {
                    "type": "integer"
                },
                "improvement": {
                    "type": "number"
                },
                "is_control": {
                    "type": "boolean"
                },
                "is_winner": {
                    "type": "boolean"
                },
                "p_value": {
                    "type": "number"
                },
                "significant": {
                    "type": "boolean"
                },
                "variant_id": {
                    "type": "integer"
                },
                "variant_name": {
                    "type": "string"
                },
                "z_score": {
                    "type": "number"
                }
            }
        },
        "assignment.VariantConfiguration": {
            "type": "object",
            "properties": {
                "assignment_id": {
                    "type": "integer"
                },
                "configuration": {
                    "type": "object",
                    "additionalProperties": true
                },
                "variant_id": {
                    "type": "integer"
                },
                "variant_name": {
                    "type": "string"
                }
            }
        },
        "ent.Experiment": {
            "type": "object",
            "properties": {
                "audience_percentage": {
                    "description": "Share of matched traffic included in the experiment; null means 100%",
                    "type": "number"
                },
                "created_at": {
                    "description": "Creation timestamp",
                    "type": "string"
                },
                "description": {
                    "description": "Experiment description",
                    "type": "string"
                },
                "edges": {
                    "description": "Edges holds the relations/edges for other nodes in the graph.\nThe values are being populated by the ExperimentQuery when eager-loading is set.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.ExperimentEdges"
                        }
                    ]
                },
                "end_date": {
                    "description": "When the experiment completed",
                    "type": "string"
                },
                "has_winner": {
                    "description": "Whether a winning variant has been declared",
                    "type": "boolean"
                },
                "hypothesis": {
                    "description": "What the experiment is expected to show",
                    "type": "string"
                },
                "id": {
                    "description": "ID of the ent.",
                    "type": "integer"
                },
                "min_detectable_effect": {
                    "description": "Declared minimum detectable effect (relative lift) for power analysis",
                    "type": "number"
                },
                "name": {
                    "description": "Experiment name",
                    "type": "string"
                },
                "primary_metric": {
                    "description": "Primary metric to measure (e.g., conversion_rate, revenue)",
                    "type": "string"
                },
                "secondary_metrics": {
                    "description": "Ordered list of secondary metric names",
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "segmentation": {
                    "description": "Segmentation rules, interpreted by the consuming feature",
                    "type": "object",
                    "additionalProperties": true
                },
                "start_date": {
                    "description": "When the experiment started running",
                    "type": "string"
                },
                "status": {
                    "description": "Lifecycle status",
                    "allOf": [
                        {
                            "$ref": "#/definitions/experiment.Status"
                        }
                    ]
                },
                "target_audience": {
                    "description": "Free-text audience segment descriptor",
                    "type": "string"
                },
                "type": {
                    "description": "Which product surface the experiment targets",
                    "allOf": [
                        {
                            "$ref": "#/definitions/experiment.Type"
                        }
                    ]
                },
                "updated_at": {
                    "description": "Last update timestamp",
                    "type": "string"
                },
                "winning_variant_id": {
                    "description": "ID of the winning variant, valid only when has_winner is true",
                    "type": "integer"
                }
            }
        },
        "ent.ExperimentAssignment": {
            "type": "object",
            "properties": {
                "created_at": {
                    "description": "Assignment timestamp",
                    "type": "string"
                },
                "edges": {
                    "description": "Edges holds the relations/edges for other nodes in the graph.\nThe values are being populated by the ExperimentAssignmentQuery when eager-loading is set.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.ExperimentAssignmentEdges"
                        }
                    ]
                },
                "experiment_id": {
                    "description": "Experiment this assignment belongs to",
                    "type": "integer"
                },
                "has_conversion": {
                    "description": "Set once on the visitor's first conversion",
                    "type": "boolean"
                },
                "has_impression": {
                    "description": "Set once when the visitor first sees the variant",
                    "type": "boolean"
                },
                "has_interaction": {
                    "description": "Set once on the visitor's first interaction",
                    "type": "boolean"
                },
                "id": {
                    "description": "ID of the ent.",
                    "type": "integer"
                },
                "metadata": {
                    "description": "Opaque assignment metadata",
                    "type": "object",
                    "additionalProperties": true
                },
                "session_id": {
                    "description": "Anonymous session identity (null when user_id is set)",
                    "type": "string"
                },
                "updated_at": {
                    "description": "Last update timestamp",
                    "type": "string"
                },
                "user_id": {
                    "description": "Authenticated visitor identity (null for anonymous sessions)",
                    "type": "string"
                },
                "variant_id": {
                    "description": "Variant the visitor was bucketed into",
                    "type": "integer"
                }
            }
        },
        "ent.ExperimentAssignmentEdges": {
            "type": "object",
            "properties": {
                "experiment": {
                    "description": "Experiment this assignment belongs to",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.Experiment"
                        }
                    ]
                },
                "variant": {
                    "description": "Assigned variant",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.ExperimentVariant"
                        }
                    ]
                }
            }
        },
        "ent.ExperimentEdges": {
            "type": "object",
            "properties": {
                "assignments": {
                    "description": "Visitor assignments to this experiment",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ent.ExperimentAssignment"
                    }
                },
                "variants": {
                    "description": "Variants owned by this experiment",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ent.ExperimentVariant"
                    }
                }
            }
        },
        "ent.ExperimentResult": {
            "type": "object",
            "properties": {
                "context": {
                    "description": "Where the event happened (e.g., search_results, product_page)",
                    "type": "string"
                },
                "created_at": {
                    "description": "Event timestamp",
                    "type": "string"
                },
                "edges": {
                    "description": "Edges holds the relations/edges for other nodes in the graph.\nThe values are being populated by the ExperimentResultQuery when eager-loading is set.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.ExperimentResultEdges"
                        }
                    ]
                },
                "id": {
                    "description": "ID of the ent.",
                    "type": "integer"
                },
                "metadata": {
                    "description": "Opaque event metadata",
                    "type": "object",
                    "additionalProperties": true
                },
                "result_type": {
                    "description": "Kind of tracked event",
                    "allOf": [
                        {
                            "$ref": "#/definitions/experimentresult.ResultType"
                        }
                    ]
                },
                "session_id": {
                    "description": "Visitor session identity, if known",
                    "type": "string"
                },
                "user_id": {
                    "description": "Visitor user identity, if known",
                    "type": "string"
                },
                "value": {
                    "description": "Numeric value, meaningful for revenue and custom events",
                    "type": "number"
                },
                "variant_id": {
                    "description": "Variant the event was recorded against",
                    "type": "integer"
                }
            }
        },
        "ent.ExperimentResultEdges": {
            "type": "object",
            "properties": {
                "variant": {
                    "description": "Variant the event belongs to",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.ExperimentVariant"
                        }
                    ]
                }
            }
        },
        "ent.ExperimentVariant": {
            "type": "object",
            "properties": {
                "confidence_level": {
                    "description": "Latest computed confidence level vs control (percent)",
                    "type": "number"
                },
                "configuration": {
                    "description": "Opaque configuration payload interpreted by the consuming feature",
                    "type": "object",
                    "additionalProperties": true
                },
                "created_at": {
                    "description": "Creation timestamp",
                    "type": "string"
                },
                "description": {
                    "description": "Variant description",
                    "type": "string"
                },
                "edges": {
                    "description": "Edges holds the relations/edges for other nodes in the graph.\nThe values are being populated by the ExperimentVariantQuery when eager-loading is set.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.ExperimentVariantEdges"
                        }
                    ]
                },
                "experiment_id": {
                    "description": "Experiment this variant belongs to",
                    "type": "integer"
                },
                "id": {
                    "description": "ID of the ent.",
                    "type": "integer"
                },
                "improvement_rate": {
                    "description": "Latest computed relative conversion-rate improvement vs control",
                    "type": "number"
                },
                "is_control": {
                    "description": "Whether this is the control arm",
                    "type": "boolean"
                },
                "is_winner": {
                    "description": "Whether this variant was declared the winner",
                    "type": "boolean"
                },
                "name": {
                    "description": "Variant name (e.g., control, blue_button)",
                    "type": "string"
                },
                "updated_at": {
                    "description": "Last update timestamp",
                    "type": "string"
                }
            }
        },
        "ent.ExperimentVariantEdges": {
            "type": "object",
            "properties": {
                "assignments": {
                    "description": "Assignments routed to this variant",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ent.ExperimentAssignment"
                    }
                },
                "experiment": {
                    "description": "Owning experiment",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.Experiment"
                        }
                    ]
                },
                "results": {
                    "description": "Tracked events recorded against this variant",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ent.ExperimentResult"
                    }
                }
            }
        },
        "experiment.Status": {
            "type": "string",
            "enum": [
                "draft",
                "draft",
                "running",
                "paused",
                "completed",
                "archived"
            ],
            "x-enum-varnames": [
                "DefaultStatus",
                "StatusDraft",
                "StatusRunning",
                "StatusPaused",
                "StatusCompleted",
                "StatusArchived"
            ]
        },
        "experiment.Type": {
            "type": "string",
            "enum": [
                "search_algorithm",
                "ui_component",
                "personalization",
                "recommendation",
                "pricing",
                "content",
                "feature_flag"
            ],
            "x-enum-varnames": [
                "TypeSearchAlgorithm",
                "TypeUIComponent",
                "TypePersonalization",
                "TypeRecommendation",
                "TypePricing",
                "TypeContent",
                "TypeFeatureFlag"
            ]
        },
        "experimentresult.ResultType": {
            "type": "string",
            "enum": [
                "impression",
                "click",
                "conversion",
                "revenue",
                "engagement",
                "custom"
            ],
            "x-enum-varnames": [
                "ResultTypeImpression",
                "ResultTypeClick",
                "ResultTypeConversion",
                "ResultTypeRevenue",
                "ResultTypeEngagement",
                "ResultTypeCustom"
            ]
        },
        "experiments.ExperimentReport": {
            "type": "object",
            "properties": {
                "end_date": {
                    "type": "string"
                },
                "experiment_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "start_date": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "total_assignments": {
                    "type": "integer"
                },
                "variants": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/experiments.VariantSummary"
                    }
                }
            }
        },
        "experiments.VariantSummary": {
            "type": "object",
            "properties": {
                "assignments": {
                    "type": "integer"
                },
                "conversion_rate": {
                    "type": "number"
                },
                "conversions": {
                    "type": "integer"
                },
                "impressions": {
                    "type": "integer"
                },
                "interactions": {
                    "type": "integer"
                },
                "is_control": {
                    "type": "boolean"
                },
                "is_winner": {
                    "type": "boolean"
                },
                "revenue": {
                    "type": "number"
                },
                "variant_id": {
                    "type": "integer"
                },
                "variant_name": {
                    "type": "string"
                }
            }
        },
        "models.AssignmentRequest": {
            "type": "object",
            "required": [
                "experiment_id"
            ],
            "properties": {
                "experiment_id": {
                    "type": "integer"
                },
                "session_id": {
                    "type": "string"
                },
                "user_id": {
                    "type": "string"
                }
            }
        },
        "models.CreateExperimentRequest": {
            "type": "object",
            "required": [
                "name",
                "type",
                "variants"
            ],
            "properties": {
                "audience_percentage": {
                    "type": "number",
                    "maximum": 100,
                    "minimum": 0
                },
                "description": {
                    "type": "string"
                },
                "end_date": {
                    "type": "string"
                },
                "hypothesis": {
                    "type": "string"
                },
                "min_detectable_effect": {
                    "type": "number"
                },
                "name": {
                    "type": "string"
                },
                "primary_metric": {
                    "type": "string"
                },
                "secondary_metrics": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "segmentation": {
                    "type": "object",
                    "additionalProperties": true
                },
                "start_date": {
                    "type": "string"
                },
                "target_audience": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "search_algorithm",
                        "ui_component",
                        "personalization",
                        "recommendation",
                        "pricing",
                        "content",
                        "feature_flag"
                    ]
                },
                "variants": {
                    "type": "array",
                    "minItems": 1,
                    "items": {
                        "$ref": "#/definitions/models.VariantRequest"
                    }
                }
            }
        },
        "models.DeclareWinnerRequest": {
            "type": "object",
            "required": [
                "variant_id"
            ],
            "properties": {
                "variant_id": {
                    "type": "integer"
                }
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "models.TrackConversionRequest": {
            "type": "object",
            "properties": {
                "context": {
                    "type": "string"
                },
                "metadata": {
                    "type": "object",
                    "additionalProperties": true
                },
                "value": {
                    "type": "number"
                }
            }
        },
        "models.TrackCustomEventRequest": {
            "type": "object",
            "required": [
                "event_type"
            ],
            "properties": {
                "context": {
                    "type": "string"
                },
                "event_type": {
                    "type": "string"
                },
                "metadata": {
                    "type": "object",
                    "additionalProperties": true
                },
                "value": {
                    "type": "number"
                }
            }
        },
        "models.TrackInteractionRequest": {
            "type": "object",
            "properties": {
                "context": {
                    "type": "string"
                },
                "metadata": {
                    "type": "object",
                    "additionalProperties": true
                }
            }
        },
        "models.UpdateExperimentRequest": {
            "type": "object",
            "properties": {
                "audience_percentage": {
                    "type": "number",
                    "maximum": 100,
                    "minimum": 0
                },
                "description": {
                    "type": "string"
                },
                "end_date": {
                    "type": "string"
                },
                "hypothesis": {
                    "type": "string"
                },
                "min_detectable_effect": {
                    "type": "number"
                },
                "name": {
                    "type": "string"
                },
                "primary_metric": {
                    "type": "string"
                },
                "secondary_metrics": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "segmentation": {
                    "type": "object",
                    "additionalProperties": true
                },
                "start_date": {
                    "type": "string"
                },
                "target_audience": {
                    "type": "string"
                },
                "variants": {
                    "type": "array",
                    "minItems": 1,
                    "items": {
                        "$ref": "#/definitions/models.VariantRequest"
                    }
                }
            }
        },
        "models.UpdateVariantRequest": {
            "type": "object",
            "properties": {
                "configuration": {
                    "type": "object",
                    "additionalProperties": true
                },
                "description": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "models.VariantRequest": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "configuration": {
                    "type": "object",
                    "additionalProperties": true
                },
                "description": {
                    "type": "string"
                },
                "is_control": {
                    "type": "boolean"
                },
                "name": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "VariantLab API",
	Description:      "A/B testing engine: experiment lifecycle, visitor assignment, and statistical analysis.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
