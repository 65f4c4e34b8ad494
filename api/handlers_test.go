package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	app, _ := newTestApplication(t)

	r := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	w := serve(app, r)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Status      string  `json:"status"`
		Timestamp   string  `json:"timestamp"`
		Uptime      float64 `json:"uptime"`
		Environment string  `json:"environment"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "test", resp.Environment)
	assert.NotEmpty(t, resp.Timestamp)
	assert.GreaterOrEqual(t, resp.Uptime, 0.0)
}
