package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"reflect"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/models"
	ledger_uuid "github.com/pocket-ledger/backend/internal/uuid"
	"github.com/rs/zerolog/log"
)

// ContextURL is the key of the external base URL of the API in the gin context.
const ContextURL = "baseURL"

// BaseURL returns the external base URL of the API, e.g. https://example.com/api.
func BaseURL(c *gin.Context) string {
	return c.GetString(ContextURL)
}

func init() {
	// Validation errors use the names of the JSON fields
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(fieldName)
	}
}

// fieldName returns the name of the field in JSON or query strings.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form", "uri"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

// BindData binds the JSON body of the request to data and validates it
// with the binding tags of data.
func BindData(c *gin.Context, data any) error {
	err := c.ShouldBindJSON(data)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return ErrRequestBodyEmpty
	}

	var jsonUnmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &jsonUnmarshalTypeError) {
		return fmt.Errorf("%w: %s must be of type %s", models.ErrInvalid, jsonUnmarshalTypeError.Field, jsonUnmarshalTypeError.Type)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %s", models.ErrInvalid, validationMessage(validationErrors))
	}

	log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	return ErrInvalidBody
}

// validationMessage describes all failed validations, e.g.
// "amount must be greater than or equal to 0".
func validationMessage(errs validator.ValidationErrors) string {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		field := e.Field()

		var m string
		switch e.Tag() {
		case "required":
			m = fmt.Sprintf("%s must be set", field)
		case "oneof":
			m = fmt.Sprintf("%s must be one of %s", field, strings.ReplaceAll(e.Param(), " ", ", "))
		case "min":
			if e.Kind() == reflect.String {
				m = fmt.Sprintf("%s must be at least %s characters long", field, e.Param())
				break
			}
			fallthrough
		case "gte":
			m = fmt.Sprintf("%s must be greater than or equal to %s", field, e.Param())
		default:
			m = fmt.Sprintf("%s failed the %s validation", field, e.Tag())
		}
		messages = append(messages, m)
	}
	return strings.Join(messages, ", ")
}

// UUIDFromString parses an ID from a query parameter.
func UUIDFromString(s string) (uuid.UUID, error) {
	u, err := ledger_uuid.Parse(s)
	if err != nil {
		return uuid.Nil, ErrInvalidUUID
	}

	return u.UUID, nil
}

// GetURLFields returns the names of all fields of filter whose
// query parameter (the "form" tag) is set in the URL.
//
// This allows filtering for zero values without using pointer fields.
func GetURLFields(url *url.URL, filter any) []string {
	var setFields []string

	query := url.Query()
	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i)
		if query.Has(field.Tag.Get("form")) {
			setFields = append(setFields, field.Name)
		}
	}
	return setFields
}
