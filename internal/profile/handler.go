package profile

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-scorer/internal/shared/server/respond"
)

// Fetcher loads a profile from an external provider.
type Fetcher interface {
	FetchProfile(ctx context.Context, accessToken string) (Profile, error)
}

// Handler exposes profile scoring over HTTP.
type Handler struct {
	Fetcher Fetcher
}

// NewHandler constructs a Handler. fetcher may be nil, which disables the
// LinkedIn route.
func NewHandler(fetcher Fetcher) *Handler {
	return &Handler{Fetcher: fetcher}
}

// RegisterRoutes attaches profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/profiles/score", h.score)
	if h.Fetcher != nil {
		rg.POST("/profiles/linkedin", h.linkedin)
	}
}

type linkedinRequest struct {
	AccessToken string `json:"accessToken" binding:"required,max=4096"`
}

func (h *Handler) score(c *gin.Context) {
	var p Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", err.Error())
		return
	}
	result, err := Evaluate(p)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	respond.OK(c, result)
}

func (h *Handler) linkedin(c *gin.Context) {
	var req linkedinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "accessToken is required", nil)
		return
	}

	p, err := h.Fetcher.FetchProfile(c.Request.Context(), req.AccessToken)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthorized):
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "the access token was rejected", nil)
		case errors.Is(err, ErrUpstream):
			respond.Error(c, http.StatusBadGateway, "upstream_error", "the profile provider is unavailable", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch profile", nil)
		}
		return
	}

	result, err := Evaluate(p)
	if err != nil {
		respond.Error(c, http.StatusBadGateway, "upstream_error", "the profile provider returned an invalid profile", nil)
		return
	}
	respond.OK(c, gin.H{"profile": p, "score": result.Score, "tips": result.Tips})
}
