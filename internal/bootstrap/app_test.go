package bootstrap

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-scorer/internal/shared/config"
)

func testConfig(t *testing.T) config.Config {
	return config.Config{
		Env:             "test",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		ScoringPreset:   "default",
		SamplesStore:    "local",
		SamplesDir:      t.TempDir(),
		RateLimitRPS:    100,
		RateLimitBurst:  100,
		MaxUploadBytes:  1 << 20,
		LinkedInAPIBase: "http://127.0.0.1:0",
	}
}

func TestBuildWithoutDatabase(t *testing.T) {
	app, err := Build(context.Background(), testConfig(t))
	require.NoError(t, err)
	defer app.Close()

	assert.Nil(t, app.DB)
	assert.Greater(t, app.Table.Len(), 0)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.NotEmpty(t, resp.Header().Get("X-Request-Id"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "disabled", body["database"])
}

func TestBuildServesAnalysisAndMetrics(t *testing.T) {
	app, err := Build(context.Background(), testConfig(t))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", strings.NewReader(`{"sampleId":"graduate-analyst","jobSampleId":"data-analyst"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Contains(t, resp.Body.String(), `"matchScore"`)

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp = httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "analysis_completed_total")
}

func TestBuildRejectsUnknownPreset(t *testing.T) {
	cfg := testConfig(t)
	cfg.ScoringPreset = "generous"
	_, err := Build(context.Background(), cfg)
	assert.Error(t, err)
}
