// Package docs registers the OpenAPI document served under /swagger.
// The document is maintained by hand; keep it in sync with the handler
// annotations when routes change.
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
        "/health": {"get": {"tags": ["health"], "summary": "Health check", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/HealthResponse"}}}}},
        "/tiers": {"get": {"tags": ["tiers"], "summary": "List account tiers", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Tier"}}}}}},
        "/users": {"post": {"tags": ["users"], "summary": "Create user", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"in": "body", "name": "user", "required": true, "schema": {"$ref": "#/definitions/CreateUserRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/User"}}, "400": {"$ref": "#/responses/BadRequest"}, "409": {"$ref": "#/responses/Conflict"}, "500": {"$ref": "#/responses/Internal"}}}},
        "/users/email/{email}": {"get": {"tags": ["users"], "summary": "Get user by email", "produces": ["application/json"], "parameters": [{"in": "path", "name": "email", "type": "string", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}}, "404": {"$ref": "#/responses/NotFound"}, "500": {"$ref": "#/responses/Internal"}}}},
        "/users/{id}": {
            "get": {"tags": ["users"], "summary": "Get user by ID", "produces": ["application/json"], "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}}, "400": {"$ref": "#/responses/BadRequest"}, "404": {"$ref": "#/responses/NotFound"}, "500": {"$ref": "#/responses/Internal"}}},
            "put": {"tags": ["users"], "summary": "Update user", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "user", "required": true, "schema": {"$ref": "#/definitions/UpdateUserRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}}, "400": {"$ref": "#/responses/BadRequest"}, "404": {"$ref": "#/responses/NotFound"}, "409": {"$ref": "#/responses/Conflict"}, "500": {"$ref": "#/responses/Internal"}}},
            "delete": {"tags": ["users"], "summary": "Delete user", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"204": {"description": "No Content"}, "400": {"$ref": "#/responses/BadRequest"}, "404": {"$ref": "#/responses/NotFound"}, "500": {"$ref": "#/responses/Internal"}}}
        },
        "/users/{id}/transactions": {"get": {"tags": ["transactions"], "summary": "List user transactions", "produces": ["application/json"], "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Transaction"}}}, "400": {"$ref": "#/responses/BadRequest"}, "500": {"$ref": "#/responses/Internal"}}}},
        "/users/{id}/notifications": {"get": {"tags": ["notifications"], "summary": "List user notifications", "produces": ["application/json"], "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Notification"}}}, "400": {"$ref": "#/responses/BadRequest"}, "500": {"$ref": "#/responses/Internal"}}}},
        "/users/{id}/notifications/unread": {"get": {"tags": ["notifications"], "summary": "List unread notifications", "produces": ["application/json"], "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Notification"}}}, "400": {"$ref": "#/responses/BadRequest"}, "500": {"$ref": "#/responses/Internal"}}}},
        "/users/{id}/notifications/read-all": {"put": {"tags": ["notifications"], "summary": "Mark all notifications as read", "produces": ["application/json"], "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ReadAllResponse"}}, "400": {"$ref": "#/responses/BadRequest"}, "500": {"$ref": "#/responses/Internal"}}}},
        "/users/{id}/documents": {"get": {"tags": ["documents"], "summary": "List user document verifications", "produces": ["application/json"], "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/DocumentVerification"}}}, "400": {"$ref": "#/responses/BadRequest"}, "500": {"$ref": "#/responses/Internal"}}}},
        "/users/{id}/payments": {"get": {"tags": ["payments"], "summary": "List user payment submissions", "produces": ["application/json"], "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/PaymentSubmission"}}}, "400": {"$ref": "#/responses/BadRequest"}, "500": {"$ref": "#/responses/Internal"}}}},
        "/transactions": {"post": {"tags": ["transactions"], "summary": "Create transaction", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"in": "body", "name": "transaction", "required": true, "schema": {"$ref": "#/definitions/CreateTransactionRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Transaction"}}, "400": {"$ref": "#/responses/BadRequest"}, "500": {"$ref": "#/responses/Internal"}}}},
        "/transactions/{id}": {
            "get": {"tags": ["transactions"], "summary": "Get transaction", "produces": ["application/json"], "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Transaction"}}, "400": {"$ref": "#/responses/BadRequest"}, "404": {"$ref": "#/responses/NotFound"}, "500": {"$ref": "#/responses/Internal"}}},
            "put": {"tags": ["transactions"], "summary": "Update transaction", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "transaction", "required": true, "schema": {"$ref": "#/definitions/UpdateTransactionRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Transaction"}}, "400": {"$ref": "#/responses/BadRequest"}, "404": {"$ref": "#/responses/NotFound"}, "500": {"$ref": "#/responses/Internal"}}},
            "delete": {"tags": ["transactions"], "summary": "Delete transaction", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"204": {"description": "No Content"}, "400": {"$ref": "#/responses/BadRequest"}, "404": {"$ref": "#/responses/NotFound"}, "500": {"$ref": "#/responses/Internal"}}}
        },
        "/notifications": {"post": {"tags": ["notifications"], "summary": "Create notification", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"in": "body", "name": "notification", "required": true, "schema": {"$ref": "#/definitions/CreateNotificationRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Notification"}}, "400": {"$ref": "#/responses/BadRequest"}, "500": {"$ref": "#/responses/Internal"}}}},
        "/notifications/{id}": {
            "get": {"tags": ["notifications"], "summary": "Get notification", "produces": ["application/json"], "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Notification"}}, "400": {"$ref": "#/responses/BadRequest"}, "404": {"$ref": "#/responses/NotFound"}, "500": {"$ref": "#/responses/Internal"}}},
            "put": {"tags": ["notifications"], "summary": "Update notification", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "notification", "required": true, "schema": {"$ref": "#/definitions/UpdateNotificationRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Notification"}}, "400": {"$ref": "#/responses/BadRequest"}, "404": {"$ref": "#/responses/NotFound"}, "500": {"$ref": "#/responses/Internal"}}},
            "delete": {"tags": ["notifications"], "summary": "Delete notification", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"204": {"description": "No Content"}, "400": {"$ref": "#/responses/BadRequest"}, "404": {"$ref": "#/responses/NotFound"}, "500": {"$ref": "#/responses/Internal"}}}
        },
        "/notifications/{id}/read": {"put": {"tags": ["notifications"], "summary": "Mark notification as read", "produces": ["application/json"], "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/MessageResponse"}}, "400": {"$ref": "#/responses/BadRequest"}, "404": {"$ref": "#/responses/NotFound"}, "500": {"$ref": "#/responses/Internal"}}}},
        "/documents": {"post": {"tags": ["documents"], "summary": "Submit document for verification", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"in": "body", "name": "document", "required": true, "schema": {"$ref": "#/definitions/CreateDocumentRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/DocumentVerification"}}, "400": {"$ref": "#/responses/BadRequest"}, "500": {"$ref": "#/responses/Internal"}}}},
        "/documents/{id}": {
            "get": {"tags": ["documents"], "summary": "Get document verification", "produces": ["application/json"], "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/DocumentVerification"}}, "400": {"$ref": "#/responses/BadRequest"}, "404": {"$ref": "#/responses/NotFound"}, "500": {"$ref": "#/responses/Internal"}}},
            "put": {"tags": ["documents"], "summary": "Update document verification", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "document", "required": true, "schema": {"$ref": "#/definitions/UpdateDocumentRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/DocumentVerification"}}, "400": {"$ref": "#/responses/BadRequest"}, "404": {"$ref": "#/responses/NotFound"}, "500": {"$ref": "#/responses/Internal"}}},
            "delete": {"tags": ["documents"], "summary": "Delete document verification", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"204": {"description": "No Content"}, "400": {"$ref": "#/responses/BadRequest"}, "404": {"$ref": "#/responses/NotFound"}, "500": {"$ref": "#/responses/Internal"}}}
        },
        "/payments": {"post": {"tags": ["payments"], "summary": "Submit payment", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"in": "body", "name": "payment", "required": true, "schema": {"$ref": "#/definitions/CreatePaymentRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/PaymentSubmission"}}, "400": {"$ref": "#/responses/BadRequest"}, "500": {"$ref": "#/responses/Internal"}}}},
        "/payments/{id}": {
            "get": {"tags": ["payments"], "summary": "Get payment submission", "produces": ["application/json"], "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/PaymentSubmission"}}, "400": {"$ref": "#/responses/BadRequest"}, "404": {"$ref": "#/responses/NotFound"}, "500": {"$ref": "#/responses/Internal"}}},
            "put": {"tags": ["payments"], "summary": "Update payment submission", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "payment", "required": true, "schema": {"$ref": "#/definitions/UpdatePaymentRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/PaymentSubmission"}}, "400": {"$ref": "#/responses/BadRequest"}, "404": {"$ref": "#/responses/NotFound"}, "500": {"$ref": "#/responses/Internal"}}},
            "delete": {"tags": ["payments"], "summary": "Delete payment submission", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"204": {"description": "No Content"}, "400": {"$ref": "#/responses/BadRequest"}, "404": {"$ref": "#/responses/NotFound"}, "500": {"$ref": "#/responses/Internal"}}}
        },
        "/market": {
            "get": {"tags": ["market"], "summary": "List market quotes", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/MarketQuote"}}}, "500": {"$ref": "#/responses/Internal"}}},
            "post": {"tags": ["market"], "summary": "Create or replace market quote", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"in": "body", "name": "quote", "required": true, "schema": {"$ref": "#/definitions/UpsertQuoteRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/MarketQuote"}}, "400": {"$ref": "#/responses/BadRequest"}, "500": {"$ref": "#/responses/Internal"}}}
        },
        "/market/{symbol}": {
            "get": {"tags": ["market"], "summary": "Get market quote", "produces": ["application/json"], "parameters": [{"$ref": "#/parameters/symbol"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/MarketQuote"}}, "404": {"$ref": "#/responses/NotFound"}, "500": {"$ref": "#/responses/Internal"}}},
            "delete": {"tags": ["market"], "summary": "Delete market quote", "parameters": [{"$ref": "#/parameters/symbol"}], "responses": {"204": {"description": "No Content"}, "404": {"$ref": "#/responses/NotFound"}, "500": {"$ref": "#/responses/Internal"}}}
        }
    },
    "parameters": {
        "id": {"in": "path", "name": "id", "type": "integer", "required": true},
        "symbol": {"in": "path", "name": "symbol", "type": "string", "required": true, "description": "URL-escaped symbol, e.g. BTC%2FUSD"}
    },
    "responses": {
        "BadRequest": {"description": "Validation error", "schema": {"$ref": "#/definitions/ErrorResponse"}},
        "NotFound": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorResponse"}},
        "Conflict": {"description": "Conflict", "schema": {"$ref": "#/definitions/ErrorResponse"}},
        "Internal": {"description": "Internal server error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
    },
    "definitions": {
        "ErrorResponse": {"type": "object", "properties": {
            "success": {"type": "boolean"},
            "error": {"type": "object", "properties": {"code": {"type": "string"}, "message": {"type": "string"}, "details": {"type": "object"}, "timestamp": {"type": "string", "format": "date-time"}, "request_id": {"type": "string"}}},
            "timestamp": {"type": "string", "format": "date-time"},
            "request_id": {"type": "string"},
            "path": {"type": "string"},
            "method": {"type": "string"}}},
        "HealthResponse": {"type": "object", "properties": {"status": {"type": "string", "example": "healthy"}, "timestamp": {"type": "string", "format": "date-time"}}},
        "MessageResponse": {"type": "object", "properties": {"message": {"type": "string"}}},
        "ReadAllResponse": {"type": "object", "properties": {"message": {"type": "string"}, "updated": {"type": "boolean"}}},
        "Tier": {"type": "object", "properties": {"name": {"type": "string"}, "price": {"type": "integer"}, "bonus": {"type": "integer"}, "features": {"type": "array", "items": {"type": "string"}}}},
        "User": {"type": "object", "properties": {
            "id": {"type": "integer"}, "email": {"type": "string"}, "firstName": {"type": "string"}, "lastName": {"type": "string"},
            "phone": {"type": "string"}, "country": {"type": "string"}, "currency": {"type": "string"},
            "accountTier": {"type": "string", "enum": ["Bronze", "Silver", "Gold", "Platinum", "Diamond"]}, "isVerified": {"type": "boolean"},
            "invested": {"type": "string", "example": "0.00"}, "profit": {"type": "string", "example": "0.00"}, "bonus": {"type": "string", "example": "0.00"},
            "balance": {"type": "string", "example": "0.00"}, "btcEquivalent": {"type": "string", "example": "0.00000000"},
            "depositAddress": {"type": "string", "x-nullable": true},
            "createdAt": {"type": "string", "format": "date-time"}, "updatedAt": {"type": "string", "format": "date-time"}}},
        "CreateUserRequest": {"type": "object", "required": ["email", "firstName", "lastName", "phone", "country", "currency"], "properties": {
            "email": {"type": "string"}, "firstName": {"type": "string"}, "lastName": {"type": "string"}, "phone": {"type": "string"},
            "country": {"type": "string"}, "currency": {"type": "string"}, "accountTier": {"type": "string"}, "isVerified": {"type": "boolean"},
            "invested": {"type": "string"}, "profit": {"type": "string"}, "bonus": {"type": "string"}, "balance": {"type": "string"},
            "btcEquivalent": {"type": "string"}, "depositAddress": {"type": "string"}}},
        "UpdateUserRequest": {"type": "object", "description": "Any subset of CreateUserRequest; depositAddress may be null", "properties": {
            "email": {"type": "string"}, "firstName": {"type": "string"}, "lastName": {"type": "string"}, "phone": {"type": "string"},
            "country": {"type": "string"}, "currency": {"type": "string"}, "accountTier": {"type": "string"}, "isVerified": {"type": "boolean"},
            "invested": {"type": "string"}, "profit": {"type": "string"}, "bonus": {"type": "string"}, "balance": {"type": "string"},
            "btcEquivalent": {"type": "string"}, "depositAddress": {"type": "string", "x-nullable": true}}},
        "Transaction": {"type": "object", "properties": {
            "id": {"type": "integer"}, "userId": {"type": "integer"}, "type": {"type": "string", "enum": ["deposit", "withdrawal", "profit", "bonus"]},
            "amount": {"type": "string", "example": "250.00"}, "status": {"type": "string", "enum": ["pending", "completed", "failed", "cancelled"]},
            "description": {"type": "string", "x-nullable": true}, "reference": {"type": "string", "x-nullable": true},
            "createdAt": {"type": "string", "format": "date-time"}, "updatedAt": {"type": "string", "format": "date-time"}}},
        "CreateTransactionRequest": {"type": "object", "required": ["userId", "type", "amount"], "properties": {
            "userId": {"type": "integer"}, "type": {"type": "string"}, "amount": {"type": "string"}, "status": {"type": "string"},
            "description": {"type": "string"}, "reference": {"type": "string"}}},
        "UpdateTransactionRequest": {"type": "object", "properties": {
            "userId": {"type": "integer"}, "type": {"type": "string"}, "amount": {"type": "string"}, "status": {"type": "string"},
            "description": {"type": "string", "x-nullable": true}, "reference": {"type": "string", "x-nullable": true}}},
        "Notification": {"type": "object", "properties": {
            "id": {"type": "integer"}, "userId": {"type": "integer"}, "type": {"type": "string", "enum": ["success", "warning", "info", "trading"]},
            "title": {"type": "string"}, "message": {"type": "string"}, "isRead": {"type": "boolean"},
            "createdAt": {"type": "string", "format": "date-time"}}},
        "CreateNotificationRequest": {"type": "object", "required": ["userId", "type", "title", "message"], "properties": {
            "userId": {"type": "integer"}, "type": {"type": "string"}, "title": {"type": "string"}, "message": {"type": "string"}, "isRead": {"type": "boolean"}}},
        "UpdateNotificationRequest": {"type": "object", "properties": {
            "userId": {"type": "integer"}, "type": {"type": "string"}, "title": {"type": "string"}, "message": {"type": "string"}, "isRead": {"type": "boolean"}}},
        "DocumentVerification": {"type": "object", "properties": {
            "id": {"type": "integer"}, "userId": {"type": "integer"}, "documentType": {"type": "string", "enum": ["passport", "drivers_license", "national_id"]},
            "frontImageUrl": {"type": "string"}, "backImageUrl": {"type": "string"}, "status": {"type": "string", "enum": ["pending", "approved", "rejected"]},
            "submittedAt": {"type": "string", "format": "date-time"}, "reviewedAt": {"type": "string", "format": "date-time", "x-nullable": true},
            "reviewNotes": {"type": "string", "x-nullable": true}}},
        "CreateDocumentRequest": {"type": "object", "required": ["userId", "documentType", "frontImageUrl", "backImageUrl"], "properties": {
            "userId": {"type": "integer"}, "documentType": {"type": "string"}, "frontImageUrl": {"type": "string"}, "backImageUrl": {"type": "string"},
            "status": {"type": "string"}, "reviewNotes": {"type": "string"}}},
        "UpdateDocumentRequest": {"type": "object", "properties": {
            "userId": {"type": "integer"}, "documentType": {"type": "string"}, "frontImageUrl": {"type": "string"}, "backImageUrl": {"type": "string"},
            "status": {"type": "string"}, "reviewedAt": {"type": "string", "format": "date-time", "x-nullable": true}, "reviewNotes": {"type": "string", "x-nullable": true}}},
        "PaymentSubmission": {"type": "object", "properties": {
            "id": {"type": "integer"}, "userId": {"type": "integer"}, "amount": {"type": "string", "example": "500.00"}, "screenshotUrl": {"type": "string"},
            "status": {"type": "string", "enum": ["pending", "confirmed", "rejected"]}, "submittedAt": {"type": "string", "format": "date-time"},
            "processedAt": {"type": "string", "format": "date-time", "x-nullable": true}, "processingNotes": {"type": "string", "x-nullable": true}}},
        "CreatePaymentRequest": {"type": "object", "required": ["userId", "amount", "screenshotUrl"], "properties": {
            "userId": {"type": "integer"}, "amount": {"type": "string"}, "screenshotUrl": {"type": "string"}, "status": {"type": "string"}, "processingNotes": {"type": "string"}}},
        "UpdatePaymentRequest": {"type": "object", "properties": {
            "userId": {"type": "integer"}, "amount": {"type": "string"}, "screenshotUrl": {"type": "string"}, "status": {"type": "string"},
            "processedAt": {"type": "string", "format": "date-time", "x-nullable": true}, "processingNotes": {"type": "string", "x-nullable": true}}},
        "MarketQuote": {"type": "object", "properties": {
            "id": {"type": "integer"}, "symbol": {"type": "string", "example": "BTC/USD"}, "price": {"type": "string", "example": "42350.00000000"},
            "change24h": {"type": "string"}, "changePercent24h": {"type": "string"}, "volume24h": {"type": "string", "x-nullable": true},
            "lastUpdated": {"type": "string", "format": "date-time"}}},
        "UpsertQuoteRequest": {"type": "object", "required": ["symbol", "price", "change24h", "changePercent24h"], "properties": {
            "symbol": {"type": "string"}, "price": {"type": "string"}, "change24h": {"type": "string"}, "changePercent24h": {"type": "string"}, "volume24h": {"type": "string"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Trading Platform API",
	Description:      "Accounts, transactions, notifications, KYC documents, payment submissions and market quotes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
