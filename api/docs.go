// Package docs holds the OpenAPI document served at /docs.
//
// The document follows the swag annotations of the handlers. Update it
// together with them.
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
        "/": {
            "get": {
                "description": "Entrypoint for the API, listing all endpoints",
                "tags": [
                    "General"
                ],
                "summary": "API root",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.RootResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns the application health and, if not healthy, an error",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "General"
                ],
                "summary": "Get health",
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1": {
            "get": {
                "description": "Returns general information about the v1 API",
                "tags": [
                    "v1"
                ],
                "summary": "v1 API",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.V1Response"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "v1"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/accounts": {
            "get": {
                "description": "Returns all accounts sorted by name",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Accounts"
                ],
                "summary": "List accounts",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.AccountListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.AccountListResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates a new account",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Accounts"
                ],
                "summary": "Create account",
                "parameters": [
                    {
                        "description": "Account",
                        "name": "account",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.AccountEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.AccountResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.AccountResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.AccountResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Accounts"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/accounts/{id}": {
            "get": {
                "description": "Returns a specific account",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Accounts"
                ],
                "summary": "Get account",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.AccountResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.AccountResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.AccountResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.AccountResponse"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes an account. Accounts that transactions are booked to cannot be deleted.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Accounts"
                ],
                "summary": "Delete account",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Accounts"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "patch": {
                "description": "Updates an account. Only values to be updated need to be specified.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Accounts"
                ],
                "summary": "Update account",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Account",
                        "name": "account",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.AccountPatch"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.AccountResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.AccountResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.AccountResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.AccountResponse"
                        }
                    }
                }
            }
        },
        "/v1/categories": {
            "get": {
                "description": "Returns all categories sorted by name",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Categories"
                ],
                "summary": "List categories",
                "parameters": [
                    {
                        "enum": [
                            "income",
                            "expense"
                        ],
                        "type": "string",
                        "description": "Filter by type",
                        "name": "type",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryListResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates a new category",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Categories"
                ],
                "summary": "Create category",
                "parameters": [
                    {
                        "description": "Category",
                        "name": "category",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Categories"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/categories/{id}": {
            "get": {
                "description": "Returns a specific category",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Categories"
                ],
                "summary": "Get category",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a category. Default categories cannot be deleted.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Categories"
                ],
                "summary": "Delete category",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Categories"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "patch": {
                "description": "Updates a category. Only values to be updated need to be specified.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Categories"
                ],
                "summary": "Update category",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Category",
                        "name": "category",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryPatch"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    }
                }
            }
        },
        "/v1/glossary-terms": {
            "get": {
                "description": "Returns all glossary terms sorted by term",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Glossary Terms"
                ],
                "summary": "List glossary terms",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.GlossaryTermListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.GlossaryTermListResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates a new glossary term",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Glossary Terms"
                ],
                "summary": "Create glossary term",
                "parameters": [
                    {
                        "description": "Glossary term",
                        "name": "term",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.GlossaryTermEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.GlossaryTermResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.GlossaryTermResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.GlossaryTermResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Glossary Terms"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/glossary-terms/{id}": {
            "get": {
                "description": "Returns a specific glossary term",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Glossary Terms"
                ],
                "summary": "Get glossary term",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.GlossaryTermResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.GlossaryTermResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.GlossaryTermResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.GlossaryTermResponse"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a glossary term",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Glossary Terms"
                ],
                "summary": "Delete glossary term",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Glossary Terms"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "patch": {
                "description": "Updates a glossary term. Only values to be updated need to be specified.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Glossary Terms"
                ],
                "summary": "Update glossary term",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Glossary term",
                        "name": "term",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.GlossaryTermPatch"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.GlossaryTermResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.GlossaryTermResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.GlossaryTermResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.GlossaryTermResponse"
                        }
                    }
                }
            }
        },
        "/v1/transactions": {
            "get": {
                "description": "Returns a list of transactions, latest first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "List transactions",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by account ID",
                        "name": "account",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by category ID",
                        "name": "category",
                        "in": "query"
                    },
                    {
                        "enum": [
                            "income",
                            "expense"
                        ],
                        "type": "string",
                        "description": "Filter by type",
                        "name": "type",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by description. Supports * as wildcard, matches anywhere without wildcards",
                        "name": "description",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Transactions at and after this date, YYYY-MM-DD",
                        "name": "fromDate",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Transactions before and at this date, YYYY-MM-DD",
                        "name": "untilDate",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "The offset of the first Transaction returned. Defaults to 0.",
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Maximum number of Transactions to return. Defaults to 50, -1 for all.",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionListResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates a new transaction and updates the balance of its account.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Create transaction",
                "parameters": [
                    {
                        "description": "Transaction",
                        "name": "transaction",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Transactions"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/transactions/{id}": {
            "get": {
                "description": "Returns a specific transaction",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Get transaction",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a transaction and removes its effect from the balance of its account",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Delete transaction",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Transactions"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "patch": {
                "description": "Updates a transaction. Only values to be updated need to be specified.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Update transaction",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Transaction",
                        "name": "transaction",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionPatch"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    }
                }
            }
        },
        "/version": {
            "get": {
                "description": "Returns the software version of the API",
                "tags": [
                    "General"
                ],
                "summary": "API version",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.VersionResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        }
    },
    "definitions": {
        "httputil.HTTPError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "models.AccountType": {
            "type": "string",
            "enum": [
                "checking",
                "savings",
                "credit",
                "investment"
            ],
            "x-enum-varnames": [
                "AccountTypeChecking",
                "AccountTypeSavings",
                "AccountTypeCredit",
                "AccountTypeInvestment"
            ]
        },
        "models.TransactionType": {
            "type": "string",
            "enum": [
                "income",
                "expense"
            ],
            "x-enum-varnames": [
                "TransactionTypeIncome",
                "TransactionTypeExpense"
            ]
        },
        "router.RootLinks": {
            "type": "object",
            "properties": {
                "docs": {
                    "description": "Swagger API documentation",
                    "type": "string",
                    "example": "https://example.com/api/docs/index.html"
                },
                "healthz": {
                    "description": "Health of the backend",
                    "type": "string",
                    "example": "https://example.com/api/healthz"
                },
                "metrics": {
                    "description": "Prometheus metrics",
                    "type": "string",
                    "example": "https://example.com/api/metrics"
                },
                "v1": {
                    "description": "List endpoint for all v1 endpoints",
                    "type": "string",
                    "example": "https://example.com/api/v1"
                },
                "version": {
                    "description": "Endpoint returning the version of the backend",
                    "type": "string",
                    "example": "https://example.com/api/version"
                }
            }
        },
        "router.RootResponse": {
            "type": "object",
            "properties": {
                "links": {
                    "$ref": "#/definitions/router.RootLinks"
                }
            }
        },
        "router.V1Links": {
            "type": "object",
            "properties": {
                "accounts": {
                    "description": "URL of account list endpoint",
                    "type": "string",
                    "example": "https://example.com/api/v1/accounts"
                },
                "categories": {
                    "description": "URL of category list endpoint",
                    "type": "string",
                    "example": "https://example.com/api/v1/categories"
                },
                "glossaryTerms": {
                    "description": "URL of glossary term list endpoint",
                    "type": "string",
                    "example": "https://example.com/api/v1/glossary-terms"
                },
                "transactions": {
                    "description": "URL of transaction list endpoint",
                    "type": "string",
                    "example": "https://example.com/api/v1/transactions"
                }
            }
        },
        "router.V1Response": {
            "type": "object",
            "properties": {
                "links": {
                    "description": "Links for the v1 API",
                    "allOf": [
                        {
                            "$ref": "#/definitions/router.V1Links"
                        }
                    ]
                }
            }
        },
        "router.VersionObject": {
            "type": "object",
            "properties": {
                "version": {
                    "description": "the running version of the Pocket Ledger backend",
                    "type": "string",
                    "example": "1.1.0"
                }
            }
        },
        "router.VersionResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data object for the version endpoint",
                    "allOf": [
                        {
                            "$ref": "#/definitions/router.VersionObject"
                        }
                    ]
                }
            }
        },
        "v1.Account": {
            "type": "object",
            "properties": {
                "balance": {
                    "description": "Current balance with exactly two decimal places",
                    "type": "string",
                    "example": "2735.17"
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "format": "uuid",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "isDefault": {
                    "type": "boolean",
                    "example": true
                },
                "links": {
                    "$ref": "#/definitions/v1.AccountLinks"
                },
                "name": {
                    "type": "string",
                    "example": "Main Checking"
                },
                "type": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.AccountType"
                        }
                    ],
                    "example": "checking"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "v1.AccountEditable": {
            "type": "object",
            "required": [
                "name",
                "type"
            ],
            "properties": {
                "balance": {
                    "description": "Initial balance. Changes with every transaction afterwards",
                    "type": "string",
                    "example": "2500.00"
                },
                "isDefault": {
                    "description": "Transactions without an account are booked to the default account",
                    "type": "boolean",
                    "default": false,
                    "example": true
                },
                "name": {
                    "description": "Name of the account",
                    "type": "string",
                    "example": "Main Checking"
                },
                "type": {
                    "description": "Kind of the account",
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.AccountType"
                        }
                    ],
                    "example": "checking"
                }
            }
        },
        "v1.AccountLinks": {
            "type": "object",
            "properties": {
                "self": {
                    "description": "The account itself",
                    "type": "string",
                    "example": "https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"
                },
                "transactions": {
                    "description": "Transactions booked to the account",
                    "type": "string",
                    "example": "https://example.com/api/v1/transactions?account=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"
                }
            }
        },
        "v1.AccountListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of accounts",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Account"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.AccountPatch": {
            "type": "object",
            "properties": {
                "balance": {
                    "type": "string",
                    "example": "2735.17"
                },
                "isDefault": {
                    "type": "boolean",
                    "example": false
                },
                "name": {
                    "type": "string",
                    "example": "Main Checking"
                },
                "type": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.AccountType"
                        }
                    ],
                    "example": "savings"
                }
            }
        },
        "v1.AccountResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the account",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Account"
                        }
                    ]
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.Category": {
            "type": "object",
            "required": [
                "name",
                "type"
            ],
            "properties": {
                "color": {
                    "description": "Display color",
                    "type": "string",
                    "example": "#22c55e"
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "icon": {
                    "description": "Display icon",
                    "type": "string",
                    "example": "shopping-cart"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "format": "uuid",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "isDefault": {
                    "description": "Default categories cannot be deleted",
                    "type": "boolean",
                    "default": false,
                    "example": false
                },
                "links": {
                    "$ref": "#/definitions/v1.CategoryLinks"
                },
                "name": {
                    "description": "Name of the category",
                    "type": "string",
                    "example": "Groceries"
                },
                "type": {
                    "description": "Type of transactions the category is used for",
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.TransactionType"
                        }
                    ],
                    "example": "expense"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "v1.CategoryEditable": {
            "type": "object",
            "required": [
                "name",
                "type"
            ],
            "properties": {
                "color": {
                    "description": "Display color",
                    "type": "string",
                    "example": "#22c55e"
                },
                "icon": {
                    "description": "Display icon",
                    "type": "string",
                    "example": "shopping-cart"
                },
                "isDefault": {
                    "description": "Default categories cannot be deleted",
                    "type": "boolean",
                    "default": false,
                    "example": false
                },
                "name": {
                    "description": "Name of the category",
                    "type": "string",
                    "example": "Groceries"
                },
                "type": {
                    "description": "Type of transactions the category is used for",
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.TransactionType"
                        }
                    ],
                    "example": "expense"
                }
            }
        },
        "v1.CategoryLinks": {
            "type": "object",
            "properties": {
                "self": {
                    "description": "The category itself",
                    "type": "string",
                    "example": "https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"
                },
                "transactions": {
                    "description": "Transactions in the category",
                    "type": "string",
                    "example": "https://example.com/api/v1/transactions?category=3b1ea324-d438-4419-882a-2fc91d71772f"
                }
            }
        },
        "v1.CategoryListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of categories",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Category"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.CategoryPatch": {
            "type": "object",
            "properties": {
                "color": {
                    "type": "string",
                    "example": "#22c55e"
                },
                "icon": {
                    "type": "string",
                    "example": "shopping-cart"
                },
                "isDefault": {
                    "type": "boolean",
                    "example": false
                },
                "name": {
                    "type": "string",
                    "example": "Groceries"
                },
                "type": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.TransactionType"
                        }
                    ],
                    "example": "expense"
                }
            }
        },
        "v1.CategoryResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the category",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Category"
                        }
                    ]
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.GlossaryTerm": {
            "type": "object",
            "required": [
                "definition",
                "term"
            ],
            "properties": {
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "definition": {
                    "description": "What the term means",
                    "type": "string",
                    "example": "The value of everything you own minus everything you owe."
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "format": "uuid",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "links": {
                    "$ref": "#/definitions/v1.GlossaryTermLinks"
                },
                "term": {
                    "description": "The term",
                    "type": "string",
                    "example": "Net Worth"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "v1.GlossaryTermEditable": {
            "type": "object",
            "required": [
                "definition",
                "term"
            ],
            "properties": {
                "definition": {
                    "description": "What the term means",
                    "type": "string",
                    "example": "The value of everything you own minus everything you owe."
                },
                "term": {
                    "description": "The term",
                    "type": "string",
                    "example": "Net Worth"
                }
            }
        },
        "v1.GlossaryTermLinks": {
            "type": "object",
            "properties": {
                "self": {
                    "description": "The glossary term itself",
                    "type": "string",
                    "example": "https://example.com/api/v1/glossary-terms/9c8a4be1-8ae0-44f4-ab4d-e9c2d4c4d3ec"
                }
            }
        },
        "v1.GlossaryTermListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of glossary terms",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.GlossaryTerm"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.GlossaryTermPatch": {
            "type": "object",
            "properties": {
                "definition": {
                    "type": "string",
                    "example": "The value of everything you own minus everything you owe."
                },
                "term": {
                    "type": "string",
                    "example": "Net Worth"
                }
            }
        },
        "v1.GlossaryTermResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the glossary term",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.GlossaryTerm"
                        }
                    ]
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.Pagination": {
            "type": "object",
            "properties": {
                "count": {
                    "description": "The amount of records returned in this response",
                    "type": "integer",
                    "example": 25
                },
                "limit": {
                    "description": "The maximum amount of resources to return for this request",
                    "type": "integer",
                    "example": 25
                },
                "offset": {
                    "description": "The offset for the first record returned",
                    "type": "integer",
                    "example": 50
                },
                "total": {
                    "description": "The total number of resources matching the query",
                    "type": "integer",
                    "example": 827
                }
            }
        },
        "v1.Transaction": {
            "type": "object",
            "properties": {
                "accountId": {
                    "type": "string",
                    "format": "uuid",
                    "example": "af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"
                },
                "amount": {
                    "description": "The amount with exactly two decimal places",
                    "type": "string",
                    "example": "14.03"
                },
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "example": "0b2c7b39-9c4c-4b49-b4b0-4cf0b9dc0b57"
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "date": {
                    "type": "string",
                    "example": "1815-12-10T18:43:00.271152Z"
                },
                "description": {
                    "type": "string",
                    "example": "Weekly groceries"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "format": "uuid",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "links": {
                    "$ref": "#/definitions/v1.TransactionLinks"
                },
                "type": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.TransactionType"
                        }
                    ],
                    "example": "expense"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "v1.TransactionEditable": {
            "type": "object",
            "required": [
                "categoryId",
                "type"
            ],
            "properties": {
                "accountId": {
                    "description": "ID of the account. Defaults to the default account",
                    "type": "string",
                    "format": "uuid",
                    "example": "af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"
                },
                "amount": {
                    "description": "The amount, always positive. The type sets the direction",
                    "type": "string",
                    "minimum": 0,
                    "example": "14.03"
                },
                "categoryId": {
                    "description": "ID of the category. Its type must match the type of the transaction",
                    "type": "string",
                    "format": "uuid",
                    "example": "0b2c7b39-9c4c-4b49-b4b0-4cf0b9dc0b57"
                },
                "date": {
                    "description": "Date of the transaction. Defaults to now",
                    "type": "string",
                    "example": "1815-12-10T18:43:00.271152Z"
                },
                "description": {
                    "description": "A description of the transaction",
                    "type": "string",
                    "example": "Weekly groceries"
                },
                "type": {
                    "description": "Income adds to the account balance, expenses subtract from it",
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.TransactionType"
                        }
                    ],
                    "example": "expense"
                }
            }
        },
        "v1.TransactionLinks": {
            "type": "object",
            "properties": {
                "account": {
                    "description": "The account the transaction is booked to",
                    "type": "string",
                    "example": "https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"
                },
                "category": {
                    "description": "The category of the transaction",
                    "type": "string",
                    "example": "https://example.com/api/v1/categories/0b2c7b39-9c4c-4b49-b4b0-4cf0b9dc0b57"
                },
                "self": {
                    "description": "The transaction itself",
                    "type": "string",
                    "example": "https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"
                }
            }
        },
        "v1.TransactionListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of transactions",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Transaction"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                },
                "pagination": {
                    "description": "Pagination information",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Pagination"
                        }
                    ]
                }
            }
        },
        "v1.TransactionPatch": {
            "type": "object",
            "properties": {
                "accountId": {
                    "type": "string",
                    "format": "uuid",
                    "example": "af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"
                },
                "amount": {
                    "type": "string",
                    "example": "14.03"
                },
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "example": "0b2c7b39-9c4c-4b49-b4b0-4cf0b9dc0b57"
                },
                "date": {
                    "type": "string",
                    "example": "1815-12-10T18:43:00.271152Z"
                },
                "description": {
                    "type": "string",
                    "example": "Weekly groceries"
                },
                "type": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.TransactionType"
                        }
                    ],
                    "example": "expense"
                }
            }
        },
        "v1.TransactionResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the transaction",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Transaction"
                        }
                    ]
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.httpError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
