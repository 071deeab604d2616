// Package v1 implements the HTTP handlers of the v1 API.
package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/storage"
	ledger_uuid "github.com/pocket-ledger/backend/internal/uuid"
)

// Controller holds the dependencies of all handlers.
type Controller struct {
	Storage storage.Storage
}

type URIID struct {
	ID ledger_uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}

type Pagination struct {
	Count  int  `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int  `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int  `json:"total" example:"827"` // The total number of resources matching the query
}

// bindID binds the ID from the URI.
func bindID(c *gin.Context) (uuid.UUID, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return uuid.Nil, httputil.ErrInvalidUUID
	}
	return uri.ID.UUID, nil
}

// paginate returns the page of records selected by offset and limit.
// A negative limit returns all records after offset.
func paginate[T any](records []T, offset uint, limit int) []T {
	if offset >= uint(len(records)) {
		return records[:0]
	}

	records = records[offset:]
	if limit >= 0 && limit < len(records) {
		records = records[:limit]
	}
	return records
}
