package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "basePath": "{{.BasePath}}",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Students", "description": "Student records"},
        {"name": "Courses", "description": "Course catalogue"},
        {"name": "Enrollments", "description": "Student ↔ course join-rows"}
    ],
    "paths": {
        "/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List students",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Student"}}},
                    "500": {"description": "Store error", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Create student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Student"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/Error"}},
                    "500": {"description": "Store error", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/students/{id}": {
            "put": {
                "tags": ["Students"],
                "summary": "Update student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Student"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/Error"}},
                    "500": {"description": "Store error", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Delete student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/Error"}},
                    "500": {"description": "Store error", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List courses",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Course"}}},
                    "500": {"description": "Store error", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "post": {
                "tags": ["Courses"],
                "summary": "Create course",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CourseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Course"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/Error"}},
                    "500": {"description": "Store error", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/courses/{id}": {
            "put": {
                "tags": ["Courses"],
                "summary": "Update course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CourseRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Course"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Course not found", "schema": {"$ref": "#/definitions/Error"}},
                    "500": {"description": "Store error", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "delete": {
                "tags": ["Courses"],
                "summary": "Delete course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Course not found", "schema": {"$ref": "#/definitions/Error"}},
                    "500": {"description": "Store error", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/enrollments": {
            "post": {
                "tags": ["Enrollments"],
                "summary": "Enroll student in course",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EnrollmentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Enrollment"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/Error"}},
                    "500": {"description": "Store error", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "delete": {
                "tags": ["Enrollments"],
                "summary": "Unenroll student from course",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EnrollmentRequest"}}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Enrollment not found", "schema": {"$ref": "#/definitions/Error"}},
                    "500": {"description": "Store error", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/enrollments/{studentId}": {
            "get": {
                "tags": ["Enrollments"],
                "summary": "List a student's courses",
                "parameters": [
                    {"name": "studentId", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Course"}}},
                    "400": {"description": "Invalid student id", "schema": {"$ref": "#/definitions/Error"}},
                    "500": {"description": "Store error", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/enrollments/{studentId}/export": {
            "get": {
                "tags": ["Enrollments"],
                "summary": "Export a student's courses",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "studentId", "in": "path", "required": true, "type": "integer"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File", "schema": {"type": "file"}},
                    "400": {"description": "Invalid student id or format", "schema": {"$ref": "#/definitions/Error"}},
                    "500": {"description": "Store error", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        }
    },
    "definitions": {
        "Student": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "StudentRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"}
            },
            "required": ["name", "email"]
        },
        "Course": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "credits": {"type": "integer"}
            }
        },
        "CourseRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "credits": {"type": "integer"}
            },
            "required": ["title", "credits"]
        },
        "Enrollment": {
            "type": "object",
            "properties": {
                "student_id": {"type": "integer"},
                "course_id": {"type": "integer"}
            }
        },
        "EnrollmentRequest": {
            "type": "object",
            "properties": {
                "student_id": {"type": "integer"},
                "course_id": {"type": "integer"}
            },
            "required": ["student_id", "course_id"]
        },
        "Error": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"},
                "detail": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it. BasePath
// follows API_PREFIX at startup.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Course Enrollment API",
	Description:      "Students, courses and enrollments over a relational store.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
