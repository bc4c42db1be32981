package samples

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-scorer/internal/extract"
	"resume-scorer/internal/shared/server/respond"
)

// Handler exposes the sample catalog over HTTP.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches sample routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/samples", h.list)
	rg.GET("/samples/:id", h.get)
}

func (h *Handler) list(c *gin.Context) {
	kinds := []Kind{KindResume, KindJob}
	if raw := c.Query("kind"); raw != "" {
		kind, err := ParseKind(raw)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "kind must be resume or job", nil)
			return
		}
		kinds = []Kind{kind}
	}

	out := []Sample{}
	for _, kind := range kinds {
		items, err := h.Svc.List(c.Request.Context(), kind)
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list samples", nil)
			return
		}
		out = append(out, items...)
	}
	respond.OK(c, gin.H{"samples": out})
}

func (h *Handler) get(c *gin.Context) {
	kind := KindResume
	if raw := c.Query("kind"); raw != "" {
		parsed, err := ParseKind(raw)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "kind must be resume or job", nil)
			return
		}
		kind = parsed
	}

	id := c.Param("id")
	text, err := h.Svc.Text(c.Request.Context(), kind, id)
	if errors.Is(err, extract.ErrUnsupportedFormat) {
		respond.OK(c, gin.H{"id": id, "kind": kind, "text": "", "empty": true, "reason": "unsupported_format"})
		return
	}
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidID):
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid sample id", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "sample not found", nil)
		case errors.Is(err, extract.ErrDecode):
			respond.Error(c, http.StatusUnprocessableEntity, "decode_error", "the sample text could not be decoded", nil)
		case errors.Is(err, extract.ErrExtractionFailure):
			respond.Error(c, http.StatusUnprocessableEntity, "extraction_failed", "text could not be extracted from the sample", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read sample", nil)
		}
		return
	}
	respond.OK(c, gin.H{"id": id, "kind": kind, "text": text})
}
