package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "EduTrack API",
        "description": "Classroom gradebook for a single teacher: students, grades, daily logs, comments and reports",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Teacher authentication"},
        {"name": "Students", "description": "Roster, grades, daily logs and comments"},
        {"name": "Classes", "description": "Classroom management"},
        {"name": "Overview", "description": "Aggregated views and attention suggestions"},
        {"name": "Import", "description": "Spreadsheet import"},
        {"name": "Reports", "description": "CSV and PDF exports"},
        {"name": "Templates", "description": "Reusable comment snippets"},
        {"name": "Advisor", "description": "AI comment drafting"},
        {"name": "Streak", "description": "Consecutive-day visit streak"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate the teacher account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Auth"],
                "summary": "Authenticated teacher profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List students",
                "parameters": [
                    {"name": "classId", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Create student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateStudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{id}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not Found"}
                }
            },
            "put": {
                "tags": ["Students"],
                "summary": "Update student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateStudentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Delete student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/students/{id}/grades": {
            "post": {
                "tags": ["Students"],
                "summary": "Record grade",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GradeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{id}/grades/{gradeId}": {
            "put": {
                "tags": ["Students"],
                "summary": "Update grade",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "gradeId", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GradeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Remove grade",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "gradeId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{id}/logs": {
            "post": {
                "tags": ["Students"],
                "summary": "Record daily log",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DailyLogRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{id}/logs/{logId}": {
            "delete": {
                "tags": ["Students"],
                "summary": "Remove daily log",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "logId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{id}/comments": {
            "post": {
                "tags": ["Students"],
                "summary": "Record comment",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CommentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{id}/comments/{commentId}": {
            "delete": {
                "tags": ["Students"],
                "summary": "Remove comment",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "commentId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{id}/goals": {
            "put": {
                "tags": ["Students"],
                "summary": "Set target goal and historical notes",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GoalsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{id}/overview": {
            "get": {
                "tags": ["Overview"],
                "summary": "Weighted average, subject breakdown and trend",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "semester", "in": "query", "type": "string", "enum": ["HK1", "HK2", "ALL"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/suggestions": {
            "get": {
                "tags": ["Overview"],
                "summary": "Students who most need attention today",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/classes": {
            "get": {
                "tags": ["Classes"],
                "summary": "List classrooms",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Classes"],
                "summary": "Create classroom",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ClassRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/classes/{id}": {
            "get": {
                "tags": ["Classes"],
                "summary": "Get classroom",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Classes"],
                "summary": "Update classroom",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ClassRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/classes/{id}/delete-request": {
            "post": {
                "tags": ["Classes"],
                "summary": "Preview deletion impact",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/classes/{id}/delete-confirm": {
            "post": {
                "tags": ["Classes"],
                "summary": "Delete classroom and unassign students",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/import": {
            "post": {
                "tags": ["Import"],
                "summary": "Import students and grades from a workbook",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "required": true, "type": "file"},
                    {"name": "classId", "in": "formData", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "Header row not found"}
                }
            }
        },
        "/import/template": {
            "get": {
                "tags": ["Import"],
                "summary": "Download a blank import workbook",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/reports/school.csv": {
            "get": {
                "tags": ["Reports"],
                "summary": "Export the whole roster as CSV",
                "parameters": [
                    {"name": "semester", "in": "query", "type": "string", "enum": ["HK1", "HK2", "ALL"]}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/reports/classes/{id}/pdf": {
            "get": {
                "tags": ["Reports"],
                "summary": "Export a classroom score table as PDF",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "semester", "in": "query", "type": "string", "enum": ["HK1", "HK2", "ALL"]}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/reports/students/{id}/pdf": {
            "get": {
                "tags": ["Reports"],
                "summary": "Export a per-student report card as PDF",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "semester", "in": "query", "type": "string", "enum": ["HK1", "HK2", "ALL"]}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/templates": {
            "get": {
                "tags": ["Templates"],
                "summary": "List comment templates",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Templates"],
                "summary": "Create comment template",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TemplateRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/templates/{id}": {
            "put": {
                "tags": ["Templates"],
                "summary": "Update comment template",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TemplateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Templates"],
                "summary": "Delete comment template",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/advisor/draft": {
            "post": {
                "tags": ["Advisor"],
                "summary": "Draft a report-card comment",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DraftRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "A draft is already in flight"}
                }
            }
        },
        "/advisor/expand": {
            "post": {
                "tags": ["Advisor"],
                "summary": "Expand keywords into a full comment",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ExpandKeywordsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/streak": {
            "get": {
                "tags": ["Streak"],
                "summary": "Read the current visit streak",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/streak/touch": {
            "post": {
                "tags": ["Streak"],
                "summary": "Record today's visit",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["email", "password"]
        },
        "CreateStudentRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "class_id": {"type": "string"},
                "avatar": {"type": "string"},
                "target_goal": {"type": "string"},
                "historical_notes": {"type": "string"}
            },
            "required": ["name"]
        },
        "UpdateStudentRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "class_id": {"type": "string"},
                "avatar": {"type": "string"},
                "target_goal": {"type": "string"},
                "historical_notes": {"type": "string"}
            },
            "required": ["name"]
        },
        "GradeRequest": {
            "type": "object",
            "properties": {
                "subject": {"type": "string", "enum": ["ALGEBRA", "GEOMETRY", "GENERAL"]},
                "exam_type": {"type": "string", "enum": ["REGULAR", "MONTHLY", "MIDTERM", "FINAL"]},
                "score": {"type": "number", "minimum": 0, "maximum": 10},
                "date": {"type": "string", "format": "date-time"},
                "note": {"type": "string"}
            },
            "required": ["exam_type", "score"]
        },
        "DailyLogRequest": {
            "type": "object",
            "properties": {
                "category": {"type": "string", "enum": ["KNOWLEDGE", "SKILL", "ATTITUDE"]},
                "content": {"type": "string"},
                "score": {"type": "number"}
            },
            "required": ["category", "content"]
        },
        "CommentRequest": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "source": {"type": "string", "enum": ["manual", "ai", "template"]}
            },
            "required": ["content"]
        },
        "GoalsRequest": {
            "type": "object",
            "properties": {
                "target_goal": {"type": "string"},
                "historical_notes": {"type": "string"}
            }
        },
        "ClassRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "grade_level": {"type": "string"},
                "year": {"type": "string"}
            },
            "required": ["name", "grade_level", "year"]
        },
        "TemplateRequest": {
            "type": "object",
            "properties": {
                "keyword": {"type": "string"},
                "content": {"type": "string"},
                "category": {"type": "string"}
            },
            "required": ["keyword", "content"]
        },
        "DraftRequest": {
            "type": "object",
            "properties": {
                "student_id": {"type": "string"},
                "semester": {"type": "string", "enum": ["HK1", "HK2", "ALL"]},
                "teacher_notes": {"type": "string"}
            },
            "required": ["student_id", "semester"]
        },
        "ExpandKeywordsRequest": {
            "type": "object",
            "properties": {
                "keywords": {"type": "string"}
            },
            "required": ["keywords"]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
