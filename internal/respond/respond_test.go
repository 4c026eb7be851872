package respond

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apiinternal "github.com/jardinverde/gardenia/internal/api"
)

func decodeEnvelope(t *testing.T, body []byte) apiinternal.Envelope[struct{}] {
	t.Helper()
	var env apiinternal.Envelope[struct{}]
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	return env
}

func TestNotFoundHandlerEnvelope(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	resp := httptest.NewRecorder()

	NotFoundHandler()(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	env := decodeEnvelope(t, resp.Body.Bytes())
	if env.Data != nil {
		t.Error("error envelope must carry null data")
	}
	if env.Error == nil || env.Error.Code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND error body, got %+v", env.Error)
	}
}

func TestMethodNotAllowedHandlerEnvelope(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/health", nil)
	resp := httptest.NewRecorder()

	MethodNotAllowedHandler()(resp, req)

	if resp.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.Code)
	}
	env := decodeEnvelope(t, resp.Body.Bytes())
	if env.Error == nil || env.Error.Code != "METHOD_NOT_ALLOWED" {
		t.Fatalf("expected METHOD_NOT_ALLOWED, got %+v", env.Error)
	}
}

func TestErrorStatusAndCode(t *testing.T) {
	se := Error(context.Background(), http.StatusConflict, "", "already exists", nil)
	if se.GetStatus() != http.StatusConflict {
		t.Fatalf("expected 409, got %d", se.GetStatus())
	}
	if se.Error() != "already exists" {
		t.Errorf("unexpected message %q", se.Error())
	}

	// An empty code falls back to the status-derived name.
	env, ok := se.(*statusEnvelopeError)
	if !ok {
		t.Fatalf("expected envelope error, got %T", se)
	}
	if env.Envelope.Error.Code != "CONFLICT" {
		t.Errorf("expected CONFLICT, got %q", env.Envelope.Error.Code)
	}
}

func TestErrorIncludesIssues(t *testing.T) {
	issues := []apiinternal.FieldIssue{{Field: "body.email", Issue: "required"}}
	se := Error(context.Background(), http.StatusUnprocessableEntity, "", "", issues, errors.New("validation failed"))

	env, ok := se.(*statusEnvelopeError)
	if !ok {
		t.Fatalf("expected envelope error, got %T", se)
	}
	if len(env.Envelope.Error.Details) != 1 || env.Envelope.Error.Details[0].Field != "body.email" {
		t.Fatalf("expected field issue, got %+v", env.Envelope.Error.Details)
	}
}

func TestRecovererRendersEnvelope(t *testing.T) {
	handler := Recoverer()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	env := decodeEnvelope(t, resp.Body.Bytes())
	if env.Error == nil || env.Error.Code != "INTERNAL_SERVER_ERROR" {
		t.Fatalf("expected INTERNAL_SERVER_ERROR, got %+v", env.Error)
	}
	if env.Error.Message != msgInternalServerErr {
		t.Errorf("panic details must not leak, got %q", env.Error.Message)
	}
}
