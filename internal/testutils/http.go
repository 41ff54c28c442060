package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"newsbangla24/portal/pkg/response"
)

// Caller is the authenticated user injected into test requests
type Caller struct {
	UserID uint
	Name   string
	Email  string
	Role   string
}

// NewRouter returns a gin engine in test mode; when caller is non-nil every
// request carries its identity in the context the way the auth middleware sets it
func NewRouter(caller *Caller) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if caller != nil {
		r.Use(func(c *gin.Context) {
			c.Set("user_id", caller.UserID)
			c.Set("username", caller.Name)
			c.Set("email", caller.Email)
			c.Set("user_role", caller.Role)
			c.Next()
		})
	}
	return r
}

// DoJSON performs a request with an optional JSON body
func DoJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// DecodeResponse decodes the envelope and, when out is non-nil, its data field
func DecodeResponse(t *testing.T, w *httptest.ResponseRecorder, out any) response.Response {
	t.Helper()

	var envelope struct {
		Message string                `json:"message"`
		Code    response.ResponseCode `json:"code"`
		Data    json.RawMessage       `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String())

	if out != nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		require.NoError(t, json.Unmarshal(envelope.Data, out))
	}
	return response.Response{Message: envelope.Message, Code: envelope.Code}
}

// Serve runs a prepared request against the handler
func Serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}
