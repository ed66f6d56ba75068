package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/versionverse/backend/internal/common/constants"
	commonerrors "github.com/versionverse/backend/internal/common/errors"
	"github.com/versionverse/backend/internal/common/logger"
)

func newTestErrorHandler(t *testing.T) *ErrorHandler {
	t.Helper()

	log, err := logger.New("", "test", "ERROR")
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	return NewErrorHandler(log)
}

func TestHandleError_DomainErrorMapsToStatusAndEnvelope(t *testing.T) {
	h := newTestErrorHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/product/abc", nil)
	rec := httptest.NewRecorder()
	h.HandleError(rec, req, commonerrors.ErrProductNotFound)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var envelope ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if envelope.Code != "PRODUCT_NOT_FOUND" {
		t.Errorf("expected code PRODUCT_NOT_FOUND, got %s", envelope.Code)
	}
	if envelope.Message != "Product not found" {
		t.Errorf("expected fixed message, got %s", envelope.Message)
	}
}

func TestHandleError_CauseNeverLeaksToClient(t *testing.T) {
	h := newTestErrorHandler(t)

	cause := errors.New("pq: connection refused host=10.0.0.5")
	req := httptest.NewRequest(http.MethodGet, "/api/product", nil)
	rec := httptest.NewRecorder()
	h.HandleError(rec, req, commonerrors.ErrDatabaseError.WithCause(cause))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var envelope ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if envelope.Message != "database operation failed" {
		t.Errorf("expected fixed message, got %s", envelope.Message)
	}
	if strings.Contains(rec.Body.String(), "10.0.0.5") || strings.Contains(rec.Body.String(), "connection refused") {
		t.Errorf("wrapped cause leaked to client: %s", rec.Body.String())
	}
}

func TestHandleError_UnknownErrorIs500(t *testing.T) {
	h := newTestErrorHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/product", nil)
	rec := httptest.NewRecorder()
	h.HandleError(rec, req, errors.New("something unexpected"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var envelope ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if envelope.Message != "internal server error" {
		t.Errorf("expected generic message, got %s", envelope.Message)
	}
}

func TestHandleError_TraceIDPropagates(t *testing.T) {
	h := newTestErrorHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/product/abc", nil)
	ctx := context.WithValue(req.Context(), constants.TraceIDKey, "trace-123")
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	h.HandleError(rec, req, commonerrors.ErrProductNotFound)

	if got := rec.Header().Get("X-Trace-ID"); got != "trace-123" {
		t.Errorf("expected X-Trace-ID header trace-123, got %q", got)
	}

	var envelope ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if envelope.TraceID != "trace-123" {
		t.Errorf("expected trace id in envelope, got %q", envelope.TraceID)
	}
}

func TestHandleError_NilIsNoop(t *testing.T) {
	h := newTestErrorHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/product", nil)
	rec := httptest.NewRecorder()
	h.HandleError(rec, req, nil)

	if rec.Body.Len() != 0 {
		t.Errorf("expected no response body, got %s", rec.Body.String())
	}
}
