package httputil

import (
	"fmt"

	"github.com/pocket-ledger/backend/internal/models"
)

var (
	ErrInvalidBody      = fmt.Errorf("%w: the body of your request contains invalid or un-parseable data. Please check and try again", models.ErrInvalid)
	ErrRequestBodyEmpty = fmt.Errorf("%w: the request body must not be empty", models.ErrInvalid)
	ErrInvalidUUID      = fmt.Errorf("%w: the specified resource ID is not a valid UUID", models.ErrInvalid)
	ErrInvalidQuery     = fmt.Errorf("%w: the query string contains unparseable data. Please check the values", models.ErrInvalid)
)

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}
