package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrAccountInUse) || errors.Is(err, models.ErrCategoryIsDefault) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

// message returns the error message for the response.
//
// Backend failures are already logged, the client only gets the request ID
// to report to the server administrator.
func message(c *gin.Context, err error) *string {
	s := err.Error()
	if errors.Is(err, models.ErrGeneral) {
		s = fmt.Sprintf("%s, please contact your server administrator. The request id is '%v', send this to your server administrator to help them finding the problem", models.ErrGeneral, requestid.Get(c))
	}
	return &s
}

// Transaction errors
var (
	errAmountNegative       = fmt.Errorf("%w: the amount must not be negative, use the type to set the direction", models.ErrInvalid)
	errCategoryUnknown      = fmt.Errorf("%w: the categoryId does not identify an existing category", models.ErrInvalid)
	errCategoryTypeMismatch = fmt.Errorf("%w: the type of the transaction must match the type of its category", models.ErrInvalid)
	errAccountUnknown       = fmt.Errorf("%w: the accountId does not identify an existing account", models.ErrInvalid)
	errNoDefaultAccount     = fmt.Errorf("%w: no accountId is set and there is no default account", models.ErrInvalid)
	errDateRange            = fmt.Errorf("%w: untilDate must not be before fromDate", models.ErrInvalid)
)
