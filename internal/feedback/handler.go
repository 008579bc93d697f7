package feedback

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/reventhtv/careerscope-AI/internal/shared/server/middleware"
	"github.com/reventhtv/careerscope-AI/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches feedback routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/feedback", h.submit)
	rg.GET("/feedback/summary", h.summary)
}

type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *Handler) submit(c *gin.Context) {
	guestID := middleware.GuestIDFromContext(c)

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	fb, err := h.Svc.Submit(c.Request.Context(), SubmitRequest{
		GuestID: guestID,
		Name:    req.Name,
		Email:   req.Email,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "rating must be between 1 and 5", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save feedback", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, fb)
}

func (h *Handler) summary(c *gin.Context) {
	recentLimit := 5
	if v := c.Query("recent"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 50 {
			recentLimit = parsed
		}
	}

	summary, err := h.Svc.Summarize(c.Request.Context(), recentLimit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to summarize feedback", nil)
		return
	}

	respond.JSON(c, http.StatusOK, summary)
}
