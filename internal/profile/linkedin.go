package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

const maxProfileBytes = 1 << 20

// LinkedInClient fetches the member profile with a caller-supplied access token.
type LinkedInClient struct {
	BaseURL string
	// HTTPClient is the base transport; the oauth2 client wraps it.
	HTTPClient *http.Client
}

// NewLinkedInClient returns a client for baseURL, e.g. https://api.linkedin.com.
func NewLinkedInClient(baseURL string) *LinkedInClient {
	return &LinkedInClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type localized struct {
	Localized map[string]string `json:"localized"`
}

func (l localized) first() string {
	for _, v := range l.Localized {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

type memberResponse struct {
	LocalizedHeadline string     `json:"localizedHeadline"`
	Headline          localized  `json:"headline"`
	Summary           string     `json:"summary"`
	Positions         []Position `json:"positions"`
	Educations        []School   `json:"educations"`
	Skills            []string   `json:"skills"`
}

// FetchProfile calls GET {base}/v2/me and maps the response onto Profile.
func (c *LinkedInClient) FetchProfile(ctx context.Context, accessToken string) (Profile, error) {
	token := strings.TrimSpace(accessToken)
	if token == "" {
		return Profile{}, ErrUnauthorized
	}

	base := c.HTTPClient
	if base == nil {
		base = http.DefaultClient
	}
	httpClient := oauth2.NewClient(
		context.WithValue(ctx, oauth2.HTTPClient, base),
		oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
	)
	httpClient.Timeout = base.Timeout

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/v2/me", nil)
	if err != nil {
		return Profile{}, fmt.Errorf("build linkedin request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return Profile{}, ErrUnauthorized
	case resp.StatusCode >= 300:
		return Profile{}, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var body memberResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxProfileBytes)).Decode(&body); err != nil {
		return Profile{}, fmt.Errorf("%w: decode: %v", ErrUpstream, err)
	}

	headline := body.LocalizedHeadline
	if headline == "" {
		headline = body.Headline.first()
	}
	return Profile{
		Headline:   headline,
		Summary:    body.Summary,
		Experience: body.Positions,
		Education:  body.Educations,
		Skills:     body.Skills,
	}, nil
}
