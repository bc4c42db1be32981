package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	profile Profile
	err     error
}

func (s stubFetcher) FetchProfile(_ context.Context, _ string) (Profile, error) {
	return s.profile, s.err
}

func serve(t *testing.T, h *Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h.RegisterRoutes(router.Group("/api/v1"))

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestScoreEndpoint(t *testing.T) {
	resp := serve(t, NewHandler(nil), "/api/v1/profiles/score", fullProfile())
	require.Equal(t, http.StatusOK, resp.Code)

	var res Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, 100, res.Score)
	assert.Empty(t, res.Tips)
}

func TestLinkedInRouteDisabledWithoutFetcher(t *testing.T) {
	resp := serve(t, NewHandler(nil), "/api/v1/profiles/linkedin", map[string]string{"accessToken": "t"})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestLinkedInEndpoint(t *testing.T) {
	tests := []struct {
		name    string
		fetcher stubFetcher
		payload map[string]string
		status  int
	}{
		{name: "ok", fetcher: stubFetcher{profile: Profile{Headline: "Engineer"}}, payload: map[string]string{"accessToken": "t"}, status: http.StatusOK},
		{name: "missing token", payload: map[string]string{}, status: http.StatusBadRequest},
		{name: "rejected", fetcher: stubFetcher{err: ErrUnauthorized}, payload: map[string]string{"accessToken": "t"}, status: http.StatusUnauthorized},
		{name: "upstream", fetcher: stubFetcher{err: ErrUpstream}, payload: map[string]string{"accessToken": "t"}, status: http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := serve(t, NewHandler(tt.fetcher), "/api/v1/profiles/linkedin", tt.payload)
			require.Equal(t, tt.status, resp.Code, resp.Body.String())
			if tt.status != http.StatusOK {
				return
			}
			var body struct {
				Score int      `json:"score"`
				Tips  []string `json:"tips"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, 15, body.Score)
			assert.Len(t, body.Tips, 3)
		})
	}
}
