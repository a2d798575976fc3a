package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/aretw0/strcalc"
	"github.com/aretw0/strcalc/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type addResponse struct {
	Success bool   `json:"success"`
	Result  *int64 `json:"result"`
	Input   string `json:"input"`
	Error   string `json:"error"`
	Kind    string `json:"kind"`
}

func postAdd(t *testing.T, handler http.Handler, payload any) (*httptest.ResponseRecorder, addResponse) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/add", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	var resp addResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	return rr, resp
}

func TestAdd_Success(t *testing.T) {
	handler := NewHandler(strcalc.New())

	tests := []struct {
		numbers string
		want    int64
	}{
		{"1,2,3", 6},
		{"", 0},
		{"//;\n1;2;3", 6},
		{"//[***]\n1***2***3", 6},
		{"//[*][%]\n1*2%3", 6},
		{"1\n2,3", 6},
	}
	for _, tt := range tests {
		rr, resp := postAdd(t, handler, map[string]string{"numbers": tt.numbers})
		assert.Equal(t, http.StatusOK, rr.Code, tt.numbers)
		assert.True(t, resp.Success)
		require.NotNil(t, resp.Result)
		assert.Equal(t, tt.want, *resp.Result)
		assert.Equal(t, tt.numbers, resp.Input)
	}
}

func TestAdd_LargeInput(t *testing.T) {
	handler := NewHandler(strcalc.New())

	parts := make([]string, 50)
	for i := range parts {
		parts[i] = strconv.Itoa(i + 1)
	}
	rr, resp := postAdd(t, handler, map[string]string{"numbers": strings.Join(parts, ",")})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(1275), *resp.Result)
}

func TestAdd_DomainErrors(t *testing.T) {
	handler := NewHandler(strcalc.New())

	tests := []struct {
		numbers string
		kind    string
		message string
	}{
		{"1,-2,3,-4", domain.KindNegativeNumber, "negative numbers not allowed: -2, -4"},
		{"1,a,3", domain.KindInvalidNumber, `"a"`},
		{"//[]\n1,2", domain.KindMalformedHeader, "empty bracket group"},
		{"//\n1,2", domain.KindMalformedHeader, "empty delimiter"},
		{"9223372036854775807,1", domain.KindSumOverflow, "sum overflows int64"},
	}
	for _, tt := range tests {
		rr, resp := postAdd(t, handler, map[string]string{"numbers": tt.numbers})
		assert.Equal(t, http.StatusBadRequest, rr.Code, tt.numbers)
		assert.False(t, resp.Success)
		assert.Nil(t, resp.Result)
		assert.Equal(t, tt.kind, resp.Kind)
		assert.Contains(t, resp.Error, tt.message)
	}
}

func TestAdd_RequestErrors(t *testing.T) {
	handler := NewHandler(strcalc.New())

	t.Run("missing field", func(t *testing.T) {
		rr, resp := postAdd(t, handler, map[string]string{})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.False(t, resp.Success)
		assert.Equal(t, "Missing required field: numbers", resp.Error)
	})

	t.Run("wrong content type", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/add", strings.NewReader("invalid"))
		req.Header.Set("Content-Type", "text/plain")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Content-Type must be application/json")
	})

	t.Run("invalid json", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/add", strings.NewReader(`{"invalid": json}`))
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), `"success":false`)
	})

	t.Run("wrong field type", func(t *testing.T) {
		rr, resp := postAdd(t, handler, map[string]int{"numbers": 12})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.False(t, resp.Success)
	})

	t.Run("method not allowed", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/add", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})
}

type failingCalculator struct{}

func (failingCalculator) Calculate(ctx context.Context, raw string) domain.Result {
	return domain.Result{Success: false, Input: raw, Error: "disk on fire", Kind: domain.KindInternal}
}

func TestAdd_InternalErrorHidesDetails(t *testing.T) {
	rr, resp := postAdd(t, NewHandler(failingCalculator{}), map[string]string{"numbers": "1"})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Internal server error", resp.Error)
	assert.NotContains(t, rr.Body.String(), "disk on fire")
}

func TestCORS(t *testing.T) {
	handler := NewHandler(strcalc.New())

	req := httptest.NewRequest("OPTIONS", "/api/add", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestGetHealth(t *testing.T) {
	handler := NewHandler(nil)

	req, _ := http.NewRequest("GET", "/api/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "String Calculator API", resp.Service)
	assert.NotEmpty(t, resp.Version)
}

func TestGetInfo(t *testing.T) {
	handler := NewHandler(nil)

	req, _ := http.NewRequest("GET", "/info", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp InfoResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "strcalc-http", resp.App)
	assert.NotEmpty(t, resp.Version)
	assert.Equal(t, "1.0.0", resp.APIVersion)
}

func TestGetRoot(t *testing.T) {
	handler := NewHandler(nil)

	req, _ := http.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	var resp RootResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "String Calculator API", resp.Message)
	assert.Contains(t, resp.Endpoints, "POST /api/add")
	assert.Contains(t, resp.Examples, "multiple_delimiters")
}

func TestOpenAPISpec(t *testing.T) {
	doc, err := GetSwagger()
	require.NoError(t, err)

	item := doc.Paths.Value("/api/add")
	require.NotNil(t, item)
	assert.NotNil(t, item.Post)
	assert.NotNil(t, doc.Paths.Value("/api/health"))

	handler := NewHandler(nil)
	req, _ := http.NewRequest("GET", "/openapi.yaml", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "openapi: 3.0.3")
}

func TestMetricsMount(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("strcalc_calculations_total 1\n"))
	})
	handler := NewHandler(nil, WithMetrics(metrics))

	req, _ := http.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "strcalc_calculations_total")

	rr = httptest.NewRecorder()
	NewHandler(nil).ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRateLimit(t *testing.T) {
	handler := NewHandler(strcalc.New(), WithRateLimit(1, 2))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		body := strings.NewReader(`{"numbers":"1,2"}`)
		req := httptest.NewRequest("POST", "/api/add", body)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// Health stays reachable.
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
