// Package docs registers the Swagger document served at /swagger/. Keep it
// in step with the swag annotations on the handlers in internal/api.
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
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "System"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
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
        "/categories": {
            "get": {
                "description": "Returns the four question categories with the number of questions in each.",
                "produces": ["application/json"],
                "tags": ["Questions"],
                "summary": "List categories",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/api.CategoryResponse"}}
                    }
                }
            }
        },
        "/questions": {
            "get": {
                "description": "Returns every question in the bank, or those of one category. An unknown category yields an empty list.",
                "produces": ["application/json"],
                "tags": ["Questions"],
                "summary": "List questions",
                "parameters": [
                    {"type": "string", "description": "Category id, or all", "name": "category", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/api.QuestionDetailResponse"}}
                    }
                }
            }
        },
        "/questions/{questionID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Questions"],
                "summary": "Get a question",
                "parameters": [
                    {"type": "string", "description": "Question ID", "name": "questionID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.QuestionDetailResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/sessions": {
            "post": {
                "description": "Draws a random question set and starts a practice quiz or exam. Exams always draw from every category; an exam request naming one category is rejected with 400. When the category has no questions the response has state \"empty\" and no session is created.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Start a session",
                "parameters": [
                    {"description": "Session parameters", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/api.CreateSessionRequest"}}
                ],
                "responses": {
                    "200": {"description": "empty question pool", "schema": {"$ref": "#/definitions/api.SessionResponse"}},
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/api.SessionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/sessions/{sessionID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Get a session",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "sessionID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.SessionResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "tags": ["Sessions"],
                "summary": "Abandon a session",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "sessionID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/sessions/{sessionID}/answer": {
            "post": {
                "description": "Selecting again before submitting replaces the previous choice.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Select an answer",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "sessionID", "in": "path", "required": true},
                    {"description": "Option index", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.SelectAnswerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.SessionResponse"}},
                    "400": {"description": "invalid answer index", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "409": {"description": "answer already submitted", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/sessions/{sessionID}/submit": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Submit the current answer",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "sessionID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.SessionResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "422": {"description": "select an answer first", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/sessions/{sessionID}/advance": {
            "post": {
                "description": "After the last question the session is scored and the result recorded.",
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Advance",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "sessionID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.SessionResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/sessions/{sessionID}/restart": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Restart a session",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "sessionID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.SessionResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Progress"],
                "summary": "Get stats",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.StatsResponse"}}
                }
            },
            "patch": {
                "description": "Merges the supplied fields over the stored stats. Negative values, or a best score above 100, are rejected.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Progress"],
                "summary": "Patch stats",
                "parameters": [
                    {"description": "Fields to overwrite", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.PatchStatsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.StatsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Progress"],
                "summary": "Exam history",
                "parameters": [
                    {"type": "integer", "description": "Return at most this many results", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/api.ExamResultResponse"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/streak": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Progress"],
                "summary": "Daily streak",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.StreakResponse"}}
                }
            }
        },
        "/progress": {
            "get": {
                "description": "Weekly average scores for the last seven days, per-category averages, overall accuracy and the trend between the two most recent results.",
                "produces": ["application/json"],
                "tags": ["Progress"],
                "summary": "Progress overview",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.ProgressResponse"}}
                }
            },
            "delete": {
                "tags": ["Progress"],
                "summary": "Reset all progress",
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        }
    },
    "definitions": {
        "api.CategoryResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "road-signs"},
                "question_count": {"type": "integer", "example": 8},
                "title": {"type": "string", "example": "Road Signs"}
            }
        },
        "api.QuestionResponse": {
            "type": "object",
            "properties": {
                "category": {"type": "string", "example": "road-signs"},
                "id": {"type": "string", "example": "rs1"},
                "options": {"type": "array", "items": {"type": "string"}},
                "text": {"type": "string"}
            }
        },
        "api.QuestionDetailResponse": {
            "type": "object",
            "properties": {
                "category": {"type": "string", "example": "road-signs"},
                "correct_answer": {"type": "integer", "example": 0},
                "explanation": {"type": "string"},
                "id": {"type": "string", "example": "rs1"},
                "options": {"type": "array", "items": {"type": "string"}},
                "text": {"type": "string"}
            }
        },
        "api.CreateSessionRequest": {
            "type": "object",
            "properties": {
                "category": {"type": "string", "example": "road-signs"},
                "mode": {"type": "string", "example": "practice"},
                "question_count": {"type": "integer", "example": 10}
            }
        },
        "api.SelectAnswerRequest": {
            "type": "object",
            "properties": {
                "answer": {"type": "integer", "example": 1}
            }
        },
        "api.OptionReviewResponse": {
            "type": "object",
            "properties": {
                "correct": {"type": "boolean"},
                "index": {"type": "integer"},
                "selected": {"type": "boolean"},
                "text": {"type": "string"}
            }
        },
        "api.ReviewResponse": {
            "type": "object",
            "properties": {
                "correct_answer": {"type": "integer"},
                "explanation": {"type": "string"},
                "is_correct": {"type": "boolean"},
                "options": {"type": "array", "items": {"$ref": "#/definitions/api.OptionReviewResponse"}},
                "question_id": {"type": "string"},
                "selected": {"type": "integer"}
            }
        },
        "api.SessionResponse": {
            "type": "object",
            "properties": {
                "category": {"type": "string", "example": "all"},
                "completed_at": {"type": "string"},
                "correct_count": {"type": "integer"},
                "current": {"type": "integer"},
                "id": {"type": "string"},
                "mode": {"type": "string", "example": "practice"},
                "passed": {"type": "boolean"},
                "question": {"$ref": "#/definitions/api.QuestionResponse"},
                "review": {"$ref": "#/definitions/api.ReviewResponse"},
                "score": {"type": "integer"},
                "selected": {"type": "integer"},
                "started_at": {"type": "string"},
                "state": {"type": "string", "example": "in_progress"},
                "time_limit_seconds": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "api.StatsResponse": {
            "type": "object",
            "properties": {
                "accuracy": {"type": "integer", "example": 80},
                "best_score": {"type": "integer", "example": 80},
                "current_streak": {"type": "integer", "example": 3},
                "total_correct": {"type": "integer", "example": 8},
                "total_questions": {"type": "integer", "example": 10}
            }
        },
        "api.PatchStatsRequest": {
            "type": "object",
            "properties": {
                "best_score": {"type": "integer"},
                "current_streak": {"type": "integer"},
                "total_correct": {"type": "integer"},
                "total_questions": {"type": "integer"}
            }
        },
        "api.ExamResultResponse": {
            "type": "object",
            "properties": {
                "category": {"type": "string", "example": "mixed"},
                "date": {"type": "string"},
                "id": {"type": "string"},
                "questions_answered": {"type": "integer", "example": 10},
                "score": {"type": "integer", "example": 80},
                "time_spent": {"type": "integer", "example": 0}
            }
        },
        "api.StreakResponse": {
            "type": "object",
            "properties": {
                "last_study_date": {"type": "string", "example": "2026-10-17"},
                "streak": {"type": "integer", "example": 3}
            }
        },
        "api.DayScoreResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer", "example": 2},
                "date": {"type": "string", "example": "2026-10-17"},
                "score": {"type": "integer", "example": 80},
                "weekday": {"type": "string", "example": "Sat"}
            }
        },
        "api.CategoryScoreResponse": {
            "type": "object",
            "properties": {
                "category": {"type": "string", "example": "road-signs"},
                "count": {"type": "integer", "example": 1},
                "score": {"type": "integer", "example": 60},
                "title": {"type": "string", "example": "Road Signs"}
            }
        },
        "api.ProgressResponse": {
            "type": "object",
            "properties": {
                "accuracy": {"type": "integer", "example": 80},
                "categories": {"type": "array", "items": {"$ref": "#/definitions/api.CategoryScoreResponse"}},
                "stats": {"$ref": "#/definitions/api.StatsResponse"},
                "total_exams": {"type": "integer", "example": 4},
                "trend": {"type": "integer", "example": -5},
                "weekly": {"type": "array", "items": {"$ref": "#/definitions/api.DayScoreResponse"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "RoadReady API",
	Description:      "Driving-test practice: randomized quizzes, full practice exams, and progress tracking with streaks.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
