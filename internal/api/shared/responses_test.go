package shared

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithSuccess(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/product", nil)
	recorder := httptest.NewRecorder()

	RespondWithSuccess(recorder, req, http.StatusOK, "Product found", map[string]string{"name": "Shirt"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Product found", body["message"])
	// Optional envelope fields stay off the wire when unset.
	assert.NotContains(t, body, "totalCount")
	assert.NotContains(t, body, "error")
	assert.NotContains(t, body, "errors")
}

func TestRespondWithPage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/product", nil)
	recorder := httptest.NewRecorder()

	RespondWithPage(recorder, req, "Products found", []string{}, 5, 1, 2)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, float64(5), body["totalCount"])
	assert.Equal(t, float64(1), body["page"])
	assert.Equal(t, float64(2), body["limit"])
}

func TestRespondWithFieldErrors_ListKey(t *testing.T) {
	t.Parallel()

	fieldErrors := []FieldError{{Field: "productPrice", Message: "productPrice is required"}}

	tests := []struct {
		name       string
		legacyKey  bool
		presentKey string
		absentKey  string
	}{
		{name: "create paths use error", legacyKey: true, presentKey: "error", absentKey: "errors"},
		{name: "other paths use errors", legacyKey: false, presentKey: "errors", absentKey: "error"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/api/product", nil)
			recorder := httptest.NewRecorder()

			RespondWithFieldErrors(recorder, req, http.StatusBadRequest,
				"Validation failed for given parameters", fieldErrors, tt.legacyKey)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Contains(t, body, tt.presentKey)
			assert.NotContains(t, body, tt.absentKey)
		})
	}
}

func TestTraceID(t *testing.T) {
	t.Parallel()

	ctx := SetTraceID(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	traceID := GetTraceID(ctx)
	assert.Len(t, traceID, 32)

	other := GetTraceID(SetTraceID(ctx))
	assert.NotEqual(t, traceID, other)
}
