//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// PerformRequest sends a JSON request, with a bearer token when authToken is set.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, authToken string) *httptest.ResponseRecorder {
	t.Helper()
	return serve(router, newJSONRequest(t, method, path, body, authToken))
}

// PerformRequestWithCookies authenticates through cookies instead of (or besides) the header.
func PerformRequestWithCookies(t *testing.T, router *gin.Engine, method, path string, body any, cookies []*http.Cookie, authToken string) *httptest.ResponseRecorder {
	t.Helper()

	req := newJSONRequest(t, method, path, body, authToken)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	return serve(router, req)
}

func PerformRequestWithHeaders(t *testing.T, router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := newJSONRequest(t, method, path, body, "")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return serve(router, req)
}

// PerformConcurrent releases n requests at once and waits for all of them.
// body and authToken are called with the index of each request.
func PerformConcurrent(t *testing.T, router *gin.Engine, n int, method, path string, body func(i int) any, authToken func(i int) string) []*httptest.ResponseRecorder {
	t.Helper()

	reqs := make([]*http.Request, n)
	for i := range n {
		reqs[i] = newJSONRequest(t, method, path, body(i), authToken(i))
	}

	recs := make([]*httptest.ResponseRecorder, n)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			recs[i] = serve(router, reqs[i])
		}()
	}
	close(start)
	wg.Wait()
	return recs
}

// StatusCounts tallies recorders by status code.
func StatusCounts(recs []*httptest.ResponseRecorder) map[int]int {
	counts := make(map[int]int)
	for _, rec := range recs {
		counts[rec.Code]++
	}
	return counts
}

func ExtractCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func newJSONRequest(t *testing.T, method, path string, body any, authToken string) *http.Request {
	t.Helper()

	var reqBody bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&reqBody).Encode(body), "Failed to encode request body to JSON")
	}

	req := httptest.NewRequest(method, path, &reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	return req
}
