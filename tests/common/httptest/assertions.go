//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"pet-resort-api/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
)

// AssertSuccessResponse checks the status and, for 2xx replies, decodes the body into target.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if target == nil || expectedStatus < 200 || expectedStatus >= 300 {
		return
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "body is not valid JSON: %s", w.Body.String())
}

// AssertErrorResponse checks the status and that the error message contains expectedMsg.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var resp httperr.Response
	if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "error body is not valid JSON: %s", w.Body.String()) {
		return
	}
	if expectedMsg != "" {
		assert.Contains(t, resp.Error.Message, expectedMsg)
	}
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}
