package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "SPVM Records API",
        "description": "Police records management: roster, ranks, penal code, reports, warrants, complaints and sanctions",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "tags": [
        {"name": "Auth", "description": "Login and session tokens"},
        {"name": "Members", "description": "Officer roster management"},
        {"name": "Ranks", "description": "Rank catalog"},
        {"name": "PenalCode", "description": "Penal code articles"},
        {"name": "Reports", "description": "Arrest and fine reports"},
        {"name": "Warrants", "description": "Warrant approval workflow"},
        {"name": "Complaints", "description": "Citizen complaints"},
        {"name": "Sanctions", "description": "Disciplinary sanctions"}
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
        "/api/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate an officer",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LoginResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/members": {
            "get": {
                "tags": ["Members"],
                "summary": "List officers",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Officer"}}}
                }
            },
            "post": {
                "tags": ["Members"],
                "summary": "Create officer (admin)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateOfficerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Officer"}},
                    "400": {"description": "Validation or duplicate", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/members/{id}": {
            "put": {
                "tags": ["Members"],
                "summary": "Update officer (admin)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateOfficerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Officer"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["Members"],
                "summary": "Delete officer (admin, no self-delete)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "400": {"description": "Self-deletion refused", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "409": {"description": "Officer has filed records", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/users/duty_status": {
            "put": {
                "tags": ["Members"],
                "summary": "Update own duty status",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SetDutyStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/ranks": {
            "get": {
                "tags": ["Ranks"],
                "summary": "List ranks",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Rank"}}}
                }
            },
            "post": {
                "tags": ["Ranks"],
                "summary": "Create rank (admin)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RankRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Rank"}}
                }
            }
        },
        "/api/ranks/{id}": {
            "put": {
                "tags": ["Ranks"],
                "summary": "Update rank (admin)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RankRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Rank"}}
                }
            },
            "delete": {
                "tags": ["Ranks"],
                "summary": "Delete rank (admin)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "409": {"description": "Rank still assigned", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/penal_code": {
            "get": {
                "tags": ["PenalCode"],
                "summary": "List penal code articles",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/PenalCodeArticle"}}}
                }
            },
            "post": {
                "tags": ["PenalCode"],
                "summary": "Create article (admin)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PenalCodeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/PenalCodeArticle"}}
                }
            }
        },
        "/api/penal_code/{id}": {
            "put": {
                "tags": ["PenalCode"],
                "summary": "Update article (admin)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PenalCodeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/PenalCodeArticle"}}
                }
            },
            "delete": {
                "tags": ["PenalCode"],
                "summary": "Delete article (admin)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "Deleted"}
                }
            }
        },
        "/api/warrants": {
            "get": {
                "tags": ["Warrants"],
                "summary": "List warrants",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Warrant"}}}
                }
            },
            "post": {
                "tags": ["Warrants"],
                "summary": "Request warrant",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateWarrantRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Warrant"}}
                }
            }
        },
        "/api/warrants/{id}": {
            "put": {
                "tags": ["Warrants"],
                "summary": "Approve, deny or execute a warrant",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TransitionWarrantRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Warrant"}},
                    "400": {"description": "Invalid transition", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "403": {"description": "Admin required for approve/deny", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/arrests": {
            "get": {
                "tags": ["Reports"],
                "summary": "List arrest reports",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/ArrestReport"}}}
                }
            },
            "post": {
                "tags": ["Reports"],
                "summary": "File arrest report",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateArrestRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ArrestReport"}}
                }
            }
        },
        "/api/arrests/export": {
            "get": {
                "tags": ["Reports"],
                "summary": "Export arrest reports (csv or pdf)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/api/fines": {
            "get": {
                "tags": ["Reports"],
                "summary": "List fine reports",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/FineReport"}}}
                }
            },
            "post": {
                "tags": ["Reports"],
                "summary": "File fine report",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateFineRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/FineReport"}}
                }
            }
        },
        "/api/fines/export": {
            "get": {
                "tags": ["Reports"],
                "summary": "Export fine reports (csv or pdf)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/api/complaints": {
            "get": {
                "tags": ["Complaints"],
                "summary": "List complaints",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Complaint"}}}
                }
            },
            "post": {
                "tags": ["Complaints"],
                "summary": "Submit complaint (public)",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateComplaintRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Complaint"}}
                }
            }
        },
        "/api/complaints/{id}": {
            "put": {
                "tags": ["Complaints"],
                "summary": "Resolve complaint (admin)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Complaint"}}
                }
            }
        },
        "/api/sanctions": {
            "get": {
                "tags": ["Sanctions"],
                "summary": "List sanctions",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Sanction"}}}
                }
            },
            "post": {
                "tags": ["Sanctions"],
                "summary": "Issue sanction (admin)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSanctionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Sanction"}}
                }
            }
        }
    },
    "definitions": {
        "ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "LoginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/OfficerInfo"}
            }
        },
        "OfficerInfo": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"},
                "full_name": {"type": "string"},
                "role": {"type": "string"},
                "badge_number": {"type": "string"}
            }
        },
        "Officer": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"},
                "full_name": {"type": "string"},
                "badge_number": {"type": "string"},
                "role": {"type": "string", "enum": ["officer", "admin"]},
                "rank_id": {"type": "integer"},
                "employment_status": {"type": "string", "enum": ["active", "inactive"]},
                "duty_status": {"type": "string"}
            }
        },
        "CreateOfficerRequest": {
            "type": "object",
            "required": ["username", "password", "full_name", "badge_number", "rank_id"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "full_name": {"type": "string"},
                "badge_number": {"type": "string"},
                "role": {"type": "string", "enum": ["officer", "admin"]},
                "rank_id": {"type": "integer"}
            }
        },
        "UpdateOfficerRequest": {
            "type": "object",
            "properties": {
                "full_name": {"type": "string"},
                "badge_number": {"type": "string"},
                "role": {"type": "string"},
                "rank_id": {"type": "integer"},
                "employment_status": {"type": "string"}
            }
        },
        "SetDutyStatusRequest": {
            "type": "object",
            "required": ["duty_status"],
            "properties": {
                "duty_status": {"type": "string", "enum": ["available", "unavailable", "patrol", "traffic-stop", "en-route"]}
            }
        },
        "Rank": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "RankRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"}
            }
        },
        "PenalCodeArticle": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "article": {"type": "string"},
                "description": {"type": "string"},
                "fine_amount": {"type": "integer"},
                "jail_time": {"type": "integer"}
            }
        },
        "PenalCodeRequest": {
            "type": "object",
            "required": ["article", "description"],
            "properties": {
                "article": {"type": "string"},
                "description": {"type": "string"},
                "fine_amount": {"type": "integer"},
                "jail_time": {"type": "integer"}
            }
        },
        "Warrant": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "suspect_name": {"type": "string"},
                "reason": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "approved", "denied", "executed"]},
                "officer_id": {"type": "integer"}
            }
        },
        "CreateWarrantRequest": {
            "type": "object",
            "required": ["suspect_name", "reason"],
            "properties": {
                "suspect_name": {"type": "string"},
                "reason": {"type": "string"}
            }
        },
        "TransitionWarrantRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string", "enum": ["approved", "denied", "executed"]}
            }
        },
        "ArrestReport": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "suspect_name": {"type": "string"},
                "charges": {"type": "string"},
                "details": {"type": "string"},
                "officer_id": {"type": "integer"}
            }
        },
        "CreateArrestRequest": {
            "type": "object",
            "required": ["suspect_name", "charges", "details"],
            "properties": {
                "suspect_name": {"type": "string"},
                "charges": {"type": "string"},
                "details": {"type": "string"}
            }
        },
        "FineReport": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "citizen_name": {"type": "string"},
                "amount": {"type": "integer"},
                "reason": {"type": "string"},
                "officer_id": {"type": "integer"}
            }
        },
        "CreateFineRequest": {
            "type": "object",
            "required": ["citizen_name", "amount", "reason"],
            "properties": {
                "citizen_name": {"type": "string"},
                "amount": {"type": "integer"},
                "reason": {"type": "string"}
            }
        },
        "Complaint": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "citizen_name": {"type": "string"},
                "officer_name": {"type": "string"},
                "description": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "resolved"]}
            }
        },
        "CreateComplaintRequest": {
            "type": "object",
            "required": ["citizen_name", "officer_name", "description"],
            "properties": {
                "citizen_name": {"type": "string"},
                "officer_name": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "Sanction": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "officer_id": {"type": "integer"},
                "issued_by": {"type": "integer"},
                "reason": {"type": "string"}
            }
        },
        "CreateSanctionRequest": {
            "type": "object",
            "required": ["officer_id", "reason"],
            "properties": {
                "officer_id": {"type": "integer"},
                "reason": {"type": "string"}
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
