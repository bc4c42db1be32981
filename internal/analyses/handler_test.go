package analyses

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-scorer/internal/shared/server/respond"
)

func setupAnalysisRouter(t *testing.T, maxUpload int64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(newTestService(t, Options{}), maxUpload).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func postJSON(router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) respond.ErrorBody {
	t.Helper()
	var body respond.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Error
}

func multipartUpload(t *testing.T, fileName, contentType string, data []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestAnalyzeEndpoint(t *testing.T) {
	router := setupAnalysisRouter(t, 0)

	resp := postJSON(router, "/api/v1/analyses", map[string]string{
		"resumeText":     shortResume,
		"jobDescription": "Python SQL Docker",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var res Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.NotEmpty(t, res.ID)
	assert.False(t, res.Empty)
	require.NotNil(t, res.Match)
	assert.Equal(t, 100.0, res.Match.MatchScore)
	assert.NotEmpty(t, res.Messages)
}

func TestAnalyzeEndpointEmptyText(t *testing.T) {
	router := setupAnalysisRouter(t, 0)

	resp := postJSON(router, "/api/v1/analyses", map[string]string{"resumeText": "   "})
	require.Equal(t, http.StatusOK, resp.Code)

	var res Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.True(t, res.Empty)
	assert.Equal(t, ReasonEmptyInput, res.Reason)
	assert.Equal(t, 0.0, res.Scores.Overall)
}

func TestAnalyzeEndpointUnsupportedSample(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	svc := newTestService(t, Options{Samples: storeWithFiles(t, map[string][]byte{"resumes/legacy.png": pngSignature})})
	NewHandler(svc, 0).RegisterRoutes(router.Group("/api/v1"))

	resp := postJSON(router, "/api/v1/analyses", map[string]string{"sampleId": "legacy"})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var res Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.True(t, res.Empty)
	assert.Equal(t, ReasonUnsupportedFormat, res.Reason)
	assert.Equal(t, SourceSample, res.Source.Kind)
}

func TestAnalyzeEndpointErrors(t *testing.T) {
	router := setupAnalysisRouter(t, 0)

	tests := []struct {
		name    string
		payload map[string]string
		status  int
		code    string
	}{
		{name: "unknown preset", payload: map[string]string{"resumeText": "Go", "preset": "kind"}, status: http.StatusBadRequest, code: ErrorCodeUnknownPreset},
		{name: "missing sample", payload: map[string]string{"sampleId": "ghost"}, status: http.StatusNotFound, code: ErrorCodeNotFound},
		{name: "ambiguous", payload: map[string]string{"resumeText": "Go", "sampleId": "backend-engineer"}, status: http.StatusBadRequest, code: ErrorCodeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(router, "/api/v1/analyses", tt.payload)
			require.Equal(t, tt.status, resp.Code)
			assert.Equal(t, tt.code, decodeError(t, resp).Code)
		})
	}
}

func TestAnalyzeEndpointRejectsMalformedJSON(t *testing.T) {
	router := setupAnalysisRouter(t, 0)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, ErrorCodeValidation, decodeError(t, resp).Code)
}

func TestUploadEndpoint(t *testing.T) {
	router := setupAnalysisRouter(t, 0)

	tests := []struct {
		name        string
		fileName    string
		contentType string
		data        []byte
		status      int
		code        string
		reason      string
	}{
		{name: "plain text", fileName: "cv.txt", contentType: "text/plain", data: []byte(shortResume), status: http.StatusOK},
		{name: "image is empty", fileName: "cv.png", contentType: "image/png", data: []byte{0x89, 'P', 'N', 'G'}, status: http.StatusOK, reason: ReasonUnsupportedFormat},
		{name: "bad encoding", fileName: "cv.txt", contentType: "text/plain", data: []byte{0x66, 0xff, 0x6f}, status: http.StatusUnprocessableEntity, code: ErrorCodeDecode},
		{name: "corrupt pdf", fileName: "cv.pdf", contentType: "application/pdf", data: []byte("%PDF-broken"), status: http.StatusUnprocessableEntity, code: ErrorCodeExtractionFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, contentType := multipartUpload(t, tt.fileName, tt.contentType, tt.data, map[string]string{"preset": "lenient"})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses/upload", body)
			req.Header.Set("Content-Type", contentType)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			require.Equal(t, tt.status, resp.Code, resp.Body.String())
			if tt.code != "" {
				assert.Equal(t, tt.code, decodeError(t, resp).Code)
				return
			}
			var res Result
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
			assert.Equal(t, "lenient", res.Preset)
			assert.Equal(t, tt.reason, res.Reason)
			assert.Equal(t, SourceUpload, res.Source.Kind)
		})
	}
}

func TestUploadEndpointRequiresFile(t *testing.T) {
	router := setupAnalysisRouter(t, 0)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses/upload", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, ErrorCodeValidation, decodeError(t, resp).Code)
}

func TestMatchEndpoint(t *testing.T) {
	router := setupAnalysisRouter(t, 0)

	resp := postJSON(router, "/api/v1/match", map[string]string{
		"resumeText":     "I enjoy baking bread",
		"jobDescription": "Python SQL Docker",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	var res struct {
		MatchScore      float64  `json:"matchScore"`
		MissingKeywords []string `json:"missingKeywords"`
		Strategy        string   `json:"strategy"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, 0.0, res.MatchScore)
	assert.Equal(t, []string{"docker", "python"}, res.MissingKeywords)
	assert.Equal(t, "overlap", res.Strategy)

	resp = postJSON(router, "/api/v1/match", map[string]string{"resumeText": "a", "jobDescription": "b", "strategy": "magic"})
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestRecommendationsEndpoint(t *testing.T) {
	router := setupAnalysisRouter(t, 0)

	resp := postJSON(router, "/api/v1/recommendations", map[string]any{
		"scores": map[string]float64{"skills": 0, "completeness": 100, "readability": 90, "ats": 90, "actionVerbs": 90},
		"skills": []any{},
	})
	require.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Recommendations []string `json:"recommendations"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Recommendations)
	assert.Contains(t, body.Recommendations[0], "No technical skills found")
}

func TestCatalogEndpoints(t *testing.T) {
	router := setupAnalysisRouter(t, 0)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/presets", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	var presets struct {
		Presets []struct {
			Name    string `json:"name"`
			Default bool   `json:"default"`
		} `json:"presets"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&presets))
	require.Len(t, presets.Presets, 3)
	assert.Equal(t, "default", presets.Presets[0].Name)
	assert.True(t, presets.Presets[0].Default)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/skills", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"PostgreSQL"`)
}
