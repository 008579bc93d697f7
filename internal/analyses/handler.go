package analyses

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/reventhtv/careerscope-AI/internal/shared/server/middleware"
	"github.com/reventhtv/careerscope-AI/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.create)
	rg.GET("/analyses", h.list)
	rg.GET("/analyses/:id", h.get)
	rg.POST("/analyses/:id/suggestions", h.suggestions)
}

func (h *Handler) create(c *gin.Context) {
	guestID := middleware.GuestIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	req := AnalyzeRequest{
		GuestID:        guestID,
		FileName:       fileHeader.Filename,
		File:           file,
		JobDescription: strings.TrimSpace(c.PostForm("jobDescription")),
		Name:           strings.TrimSpace(c.PostForm("name")),
		Email:          strings.TrimSpace(c.PostForm("email")),
		Phone:          strings.TrimSpace(c.PostForm("phone")),
	}

	analysis, err := h.Svc.Analyze(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrStorageUnavailable):
			respond.Error(c, http.StatusServiceUnavailable, "storage_unavailable", "unable to store uploaded file", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze resume", nil)
		}
		return
	}

	c.Set("analysisId", analysis.ID)
	respond.JSON(c, http.StatusCreated, analysis)
}

func (h *Handler) get(c *gin.Context) {
	guestID := middleware.GuestIDFromContext(c)
	analysisID := c.Param("id")
	c.Set("analysisId", analysisID)

	analysis, err := h.Svc.Get(c.Request.Context(), guestID, analysisID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch analysis", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, analysis)
}

func (h *Handler) list(c *gin.Context) {
	guestID := middleware.GuestIDFromContext(c)

	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	items, err := h.Svc.List(c.Request.Context(), guestID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list analyses", nil)
		return
	}

	resp := make([]gin.H, 0, len(items))
	for _, analysis := range items {
		resp = append(resp, gin.H{
			"analysisId":      analysis.ID,
			"fileName":        analysis.FileName,
			"domain":          analysis.Result.Domain,
			"experienceLevel": analysis.Result.ExperienceLevel,
			"structureScore":  analysis.Result.StructureScore,
			"createdAt":       analysis.CreatedAt,
		})
	}

	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) suggestions(c *gin.Context) {
	guestID := middleware.GuestIDFromContext(c)
	analysisID := c.Param("id")
	c.Set("analysisId", analysisID)

	answer, err := h.Svc.Suggestions(c.Request.Context(), guestID, analysisID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to build suggestions", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"suggestions": answer})
}
