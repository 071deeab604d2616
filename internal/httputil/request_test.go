package httputil_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

type payload struct {
	Name   string  `json:"name" binding:"required"`
	Kind   string  `json:"kind" binding:"omitempty,oneof=checking savings"`
	Amount float64 `json:"amount" binding:"gte=0"`
	Label  *string `json:"label" binding:"omitempty,min=2"`
}

func bind(body string) (payload, error) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "http://example.com", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var p payload
	err := httputil.BindData(c, &p)
	return p, err
}

func TestBindData(t *testing.T) {
	p, err := bind(`{"name": "Cash", "kind": "savings", "amount": 3.5}`)
	assert.Nil(t, err)
	assert.Equal(t, payload{Name: "Cash", Kind: "savings", Amount: 3.5}, p)
}

func TestBindDataErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		msg  string
	}{
		{"Empty", "", httputil.ErrRequestBodyEmpty, "the request body must not be empty"},
		{"Malformed", `{"name": `, httputil.ErrInvalidBody, "un-parseable data"},
		{"Wrong type", `{"name": 4}`, models.ErrInvalid, "name must be of type string"},
		{"Required", `{"amount": 1}`, models.ErrInvalid, "name must be set"},
		{"One of", `{"name": "Cash", "kind": "wallet"}`, models.ErrInvalid, "kind must be one of checking, savings"},
		{"Greater than", `{"name": "Cash", "amount": -1}`, models.ErrInvalid, "amount must be greater than or equal to 0"},
		{"String length", `{"name": "Cash", "label": "x"}`, models.ErrInvalid, "label must be at least 2 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bind(tt.body)
			assert.ErrorIs(t, err, tt.err)
			assert.ErrorIs(t, err, models.ErrInvalid)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestUUIDFromString(t *testing.T) {
	id := uuid.New()

	parsed, err := httputil.UUIDFromString(id.String())
	assert.Nil(t, err)
	assert.Equal(t, id, parsed)

	parsed, err = httputil.UUIDFromString("")
	assert.Nil(t, err)
	assert.Equal(t, uuid.Nil, parsed)

	_, err = httputil.UUIDFromString("1234")
	assert.ErrorIs(t, err, httputil.ErrInvalidUUID)
}

func TestGetURLFields(t *testing.T) {
	type filter struct {
		Account string `form:"account"`
		Limit   int    `form:"limit"`
		Offset  uint   `form:"offset"`
	}

	u, _ := url.Parse("http://example.com/v1/transactions?limit=0&account=")
	assert.Equal(t, []string{"Account", "Limit"}, httputil.GetURLFields(u, filter{}))

	u, _ = url.Parse("http://example.com/v1/transactions")
	assert.Empty(t, httputil.GetURLFields(u, &filter{}))
}

func TestOptions(t *testing.T) {
	tests := []struct {
		handler gin.HandlerFunc
		allow   string
	}{
		{httputil.OptionsGet, "OPTIONS, GET"},
		{httputil.OptionsGetPost, "OPTIONS, GET, POST"},
		{httputil.OptionsGetPatchDelete, "OPTIONS, GET, PATCH, DELETE"},
	}

	for _, tt := range tests {
		t.Run(tt.allow, func(t *testing.T) {
			w := httptest.NewRecorder()
			_, r := gin.CreateTestContext(w)
			r.OPTIONS("/", tt.handler)

			req, _ := http.NewRequest(http.MethodOptions, "http://example.com/", nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, tt.allow, w.Header().Get("allow"))
		})
	}
}
