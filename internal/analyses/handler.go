package analyses

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-scorer/internal/extract"
	"resume-scorer/internal/samples"
	"resume-scorer/internal/scoring"
	"resume-scorer/internal/shared/server/middleware"
	"resume-scorer/internal/shared/server/respond"
)

const defaultMaxUploadBytes = 5 << 20

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler. maxUploadBytes <= 0 selects 5 MiB.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.analyze)
	rg.POST("/analyses/upload", h.upload)
	rg.POST("/match", h.match)
	rg.POST("/recommendations", h.recommend)
	rg.GET("/skills", h.skills)
	rg.GET("/presets", h.presets)
}

func (h *Handler) analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid request body", err.Error())
		return
	}
	c.Set(middleware.PresetKey, req.Preset)

	result, err := h.Svc.Analyze(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set(middleware.AnalysisIDKey, result.ID)
	c.Set(middleware.PresetKey, result.Preset)
	respond.OK(c, result)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(c, http.StatusRequestEntityTooLarge, ErrorCodePayloadTooLarge, "file is too large", gin.H{"limitBytes": h.MaxUploadBytes})
			return
		}
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "unable to read file", nil)
		return
	}

	preset := c.PostForm("preset")
	c.Set(middleware.PresetKey, preset)
	doc := Document{
		Data:     data,
		MimeType: fileHeader.Header.Get("Content-Type"),
		FileName: fileHeader.Filename,
	}
	result, err := h.Svc.AnalyzeDocument(c.Request.Context(), doc, c.PostForm("jobDescription"), preset)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set(middleware.AnalysisIDKey, result.ID)
	c.Set(middleware.PresetKey, result.Preset)
	respond.OK(c, result)
}

func (h *Handler) match(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid request body", err.Error())
		return
	}
	result, err := h.Svc.Match(req)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, result)
}

func (h *Handler) recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid request body", err.Error())
		return
	}
	respond.OK(c, gin.H{"recommendations": h.Svc.Recommend(req)})
}

func (h *Handler) skills(c *gin.Context) {
	respond.OK(c, gin.H{"categories": h.Svc.Skills()})
}

func (h *Handler) presets(c *gin.Context) {
	respond.OK(c, gin.H{"presets": h.Svc.Presets()})
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, scoring.ErrUnknownPreset):
		respond.Error(c, http.StatusBadRequest, ErrorCodeUnknownPreset, err.Error(), nil)
	case errors.Is(err, ErrUnknownStrategy), errors.Is(err, ErrAmbiguousInput),
		errors.Is(err, samples.ErrInvalidID):
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, err.Error(), nil)
	case errors.Is(err, samples.ErrNotFound):
		respond.Error(c, http.StatusNotFound, ErrorCodeNotFound, "sample not found", nil)
	case errors.Is(err, extract.ErrDecode):
		respond.Error(c, http.StatusUnprocessableEntity, ErrorCodeDecode, "the document text could not be decoded", nil)
	case errors.Is(err, extract.ErrExtractionFailure):
		respond.Error(c, http.StatusUnprocessableEntity, ErrorCodeExtractionFailed, "text could not be extracted from the document", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "analysis failed", nil)
	}
}
