package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/invoicely/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testServer struct {
	router    *gin.Engine
	companies *mockCompanyService
	invoices  *mockInvoiceService
}

func newTestServer(t *testing.T) testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(ErrorHandlingMiddleware())

	companies := &mockCompanyService{}
	invoices := &mockInvoiceService{}
	NewServer(ServerParams{
		Gin:        router,
		Cfg:        config.Config{Environment: "test"},
		Log:        zap.NewNop(),
		CompanySvc: companies,
		InvoiceSvc: invoices,
	})

	t.Cleanup(func() {
		companies.AssertExpectations(t)
		invoices.AssertExpectations(t)
	})
	return testServer{router: router, companies: companies, invoices: invoices}
}

func (s testServer) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorPayload {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func TestUnknownRouteIsJSONNotFound(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/nope", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	payload := decodeError(t, w)
	assert.Equal(t, "not_found", payload.Type)
	assert.Equal(t, http.StatusNotFound, payload.Status)
}

func TestMapErrorHidesStoreErrors(t *testing.T) {
	status, payload := mapError(fmt.Errorf("dial tcp 10.0.0.1:5432: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", payload.Message)
}

func TestMapErrorValidationErrors(t *testing.T) {
	status, payload := mapError(invalidRequestError())

	assert.Equal(t, http.StatusBadRequest, status)
	require.Len(t, payload.Errors, 1)
	assert.Equal(t, "request", payload.Errors[0].Field)
}

func TestClassifyErrorForLog(t *testing.T) {
	errType, code := classifyErrorForLog(invalidRequestError())
	assert.Equal(t, "validation_error", errType)
	assert.Equal(t, "invalid_request", code)

	errType, code = classifyErrorForLog(ErrNotFound)
	assert.Equal(t, "not_found", errType)
	assert.Equal(t, "not_found", code)
}
